package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kospi-dashboard/internal/dashboard"
	"kospi-dashboard/internal/loader"

	"github.com/charmbracelet/log"
	tele "gopkg.in/telebot.v3"
)

const (
	defaultSignalCount = 5
	maxSignalCount     = 20
	replyTimeout       = 10 * time.Second
)

// Viewer supplies the dashboard view model.
type Viewer interface {
	View(ctx context.Context) (*dashboard.Dashboard, error)
}

var (
	newBot   = tele.NewBot
	startBot = func(b *tele.Bot) { go b.Start() }
)

// StartTelegramBot registers the chat commands and starts long polling.
// An empty token skips startup.
func StartTelegramBot(token string, viewer Viewer) error {
	if token == "" {
		log.Info("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil
	}
	b, err := newBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("create Telegram bot: %w", err)
	}

	cmds := commands{viewer: viewer}
	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})
	b.Handle("/summary", cmds.handle(SummaryText))
	b.Handle("/decision", cmds.handle(DecisionText))
	b.Handle("/signals", cmds.handle(SignalsText))
	b.Handle("/levels", cmds.handle(LevelsText))

	log.Info("Telegram bot started")
	startBot(b)
	return nil
}

type commands struct {
	viewer Viewer
}

func (c commands) handle(build func(*dashboard.Dashboard, []string) string) tele.HandlerFunc {
	return func(tc tele.Context) error {
		return tc.Send(c.reply(build, tc.Args()))
	}
}

func (c commands) reply(build func(*dashboard.Dashboard, []string) string, args []string) string {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	view, err := c.viewer.View(ctx)
	if err != nil {
		return ErrorText(err)
	}
	return build(view, args)
}

// ErrorText explains why no dashboard is available.
func ErrorText(err error) string {
	var loadErr *loader.LoadError
	switch {
	case errors.Is(err, loader.ErrNotLoaded):
		return "Market data is still loading, try again shortly."
	case errors.As(err, &loadErr):
		return "Market data failed to load: " + loadErr.Message
	}
	return "Error: " + err.Error()
}

func SummaryText(view *dashboard.Dashboard, _ []string) string {
	h, m := view.Header, view.Metrics
	var b strings.Builder
	fmt.Fprintf(&b, "KOSPI %s %s (%s)\n", h.CloseText, h.ChangeText, h.ChangePctText)
	fmt.Fprintf(&b, "52W position %s (L %s / H %s)\n", h.Range.PositionText, h.Range.LowText, h.Range.HighText)
	for _, r := range h.Returns {
		fmt.Fprintf(&b, "%s 1Y %s\n", r.Name, r.Text)
	}
	for _, c := range h.Correlations {
		fmt.Fprintf(&b, "Corr %s %s (%s)\n", c.Pair, c.Text, c.Label)
	}
	fmt.Fprintf(&b, "Win rate %s | MDD %s | Sharpe %s\n", m.WinRate.Text, m.Drawdown.Text, m.Sharpe.Text)
	fmt.Fprintf(&b, "Signals %d (buy %d / sell %d)\n", m.Signals.Total, m.Signals.Buy, m.Signals.Sell)
	fmt.Fprintf(&b, "Updated %s", h.LastUpdatedText)
	return b.String()
}

func DecisionText(view *dashboard.Dashboard, _ []string) string {
	d := view.Decision
	if !d.Present {
		return "No decision data in the current snapshot."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", d.Label, d.State)
	fmt.Fprintf(&b, "%s\n", d.Advice)
	fmt.Fprintf(&b, "Cash %d%% / Equity %d%%\n", d.CashRatio, d.EquityRatio)
	fmt.Fprintf(&b, "Confidence %+d %s\n", d.Confidence.Confidence, dots(d.Confidence.Dots))
	for _, row := range d.Indicators {
		fmt.Fprintf(&b, "%s %s %s\n", row.Name, row.Value, row.Label)
	}
	if d.Strategy != "" {
		b.WriteString(d.Strategy)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SignalsText lists the newest signals. The optional argument sets the count.
func SignalsText(view *dashboard.Dashboard, args []string) string {
	n := defaultSignalCount
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return fmt.Sprintf("Usage: /signals [1-%d]", maxSignalCount)
		}
		n = min(v, maxSignalCount)
	}
	rows := view.RecentSignals("desc", n)
	if len(rows) == 0 {
		return "No signals in the current snapshot."
	}
	var b strings.Builder
	for _, s := range rows {
		fmt.Fprintf(&b, "%s %s %s %s", s.DateText, s.Type, s.PriceText, s.Reason)
		if s.Strength != "" {
			fmt.Fprintf(&b, " [%s]", s.Strength)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func LevelsText(view *dashboard.Dashboard, _ []string) string {
	d := view.Decision
	if len(d.Resistance) == 0 && len(d.Support) == 0 {
		levels := view.Charts.Main.Levels
		if len(levels) == 0 {
			return "No support or resistance levels in the current snapshot."
		}
		var b strings.Builder
		for _, l := range levels {
			b.WriteString(l.Label + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	var b strings.Builder
	for _, l := range d.Resistance {
		fmt.Fprintf(&b, "R %s %s\n", l.Label, l.Text)
	}
	fmt.Fprintf(&b, "Close %s\n", view.Header.CloseText)
	for _, l := range d.Support {
		fmt.Fprintf(&b, "S %s %s\n", l.Label, l.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func dots(n int) string {
	return strings.Repeat("●", n) + strings.Repeat("○", 4-n)
}
