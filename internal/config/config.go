package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

const DefaultSnapshotPath = "public/data/market_data.json"

type Config struct {
	SnapshotURL         string `validate:"omitempty,url"`
	SnapshotPath        string `validate:"required_without=SnapshotURL"`
	SnapshotTimeoutSecs int    `validate:"min=1"`

	HTTPPort       int    `validate:"min=1,max=65535"`
	SSHPort        int    `validate:"min=1,max=65535"`
	SSHHostKeyPath string `validate:"required"`

	// SSHAuthorizedKeys restricts SSH logins when set; otherwise any public key is accepted.
	SSHAuthorizedKeys string

	RedisURL     string
	CacheTTLSecs int `validate:"min=1"`

	TelegramBotToken string
	APIKey           string
	LogLevel         string `validate:"oneof=debug info warn error fatal"`
}

func Load() *Config {
	cfg := &Config{
		SnapshotURL:       strings.TrimSpace(os.Getenv("SNAPSHOT_URL")),
		SnapshotPath:      strings.TrimSpace(os.Getenv("SNAPSHOT_PATH")),
		SSHHostKeyPath:    strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH")),
		SSHAuthorizedKeys: strings.TrimSpace(os.Getenv("SSH_AUTHORIZED_KEYS")),
		RedisURL:          strings.TrimSpace(os.Getenv("REDIS_URL")),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		APIKey:            strings.TrimSpace(os.Getenv("API_KEY")),
		LogLevel:          strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))),
	}

	if cfg.SnapshotURL == "" && cfg.SnapshotPath == "" {
		cfg.SnapshotPath = DefaultSnapshotPath
	}
	if cfg.SnapshotURL == "" {
		log.Info("SNAPSHOT_URL not set, reading snapshot from file", "path", cfg.SnapshotPath)
	}
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/id_ed25519"
	}
	if cfg.TelegramBotToken == "" {
		log.Warn("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.RedisURL == "" {
		log.Warn("Warning: REDIS_URL not set, view cache disabled")
	}
	if cfg.APIKey == "" {
		log.Warn("Warning: API_KEY not set, /api routes are unauthenticated")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.SnapshotTimeoutSecs = positiveInt("SNAPSHOT_TIMEOUT_SECS", 20)
	cfg.HTTPPort = positiveInt("HTTP_PORT", 8080)
	cfg.SSHPort = positiveInt("SSH_PORT", 23234)
	cfg.CacheTTLSecs = positiveInt("CACHE_TTL_SECS", 300)

	return cfg
}

func positiveInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn(fmt.Sprintf("Warning: invalid %s=%q, defaulting to %d", key, v, def))
		return def
	}
	return n
}

var validate = validator.New()

// Validate checks ports, the snapshot source and the log level.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) SnapshotTimeout() time.Duration {
	return time.Duration(c.SnapshotTimeoutSecs) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

// Level maps LogLevel onto a charmbracelet/log level, defaulting to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
