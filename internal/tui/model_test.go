package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/dashboard"
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/loader"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guregu/null/v6"
)

type stubSource struct {
	view *dashboard.Dashboard
	err  error
}

func (s stubSource) View(context.Context) (*dashboard.Dashboard, error) { return s.view, s.err }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func TestModelLoadingThenSuccess(t *testing.T) {
	view := dashboard.Build(fixtureSnapshot(), chart.DefaultTheme())
	m := New(stubSource{view: view}, chart.DefaultTheme())
	m.SetSize(100, 40)

	if got := m.View(); !strings.Contains(got, "Loading market data") {
		t.Fatalf("expected loading screen, got %q", got)
	}

	msg := m.fetch()()
	m, _ = update(t, m, msg)
	got := m.View()
	if !strings.Contains(got, "KOSPI") || !strings.Contains(got, "2,625.00") {
		t.Fatalf("expected overview, got:\n%s", got)
	}
	if !strings.Contains(got, "Overview") || !strings.Contains(got, "q quit") {
		t.Fatalf("expected tab bar and help, got:\n%s", got)
	}
}

func TestModelKeepsPollingWhileLoading(t *testing.T) {
	m := New(stubSource{err: loader.ErrNotLoaded}, chart.DefaultTheme())

	m, cmd := update(t, m, viewMsg{err: loader.ErrNotLoaded})
	if cmd == nil {
		t.Fatal("expected a retry to be scheduled")
	}
	if m.failure != "" || m.view != nil {
		t.Fatalf("expected to remain loading, got failure=%q", m.failure)
	}

	_, cmd = update(t, m, retryMsg{})
	if cmd == nil {
		t.Fatal("expected a fetch after retry")
	}
	if msg, ok := cmd().(viewMsg); !ok || !errors.Is(msg.err, loader.ErrNotLoaded) {
		t.Fatalf("unexpected fetch result %#v", msg)
	}
}

func TestModelFailureIsTerminal(t *testing.T) {
	m := New(stubSource{}, chart.DefaultTheme())

	m, cmd := update(t, m, viewMsg{err: &loader.LoadError{Message: "HTTP 404: Not Found"}})
	if cmd != nil {
		t.Fatal("failure must not schedule a retry")
	}
	got := m.View()
	if !strings.Contains(got, "Failed to load market data") || !strings.Contains(got, "HTTP 404: Not Found") {
		t.Fatalf("unexpected failure screen:\n%s", got)
	}
}

func TestModelTabs(t *testing.T) {
	view := dashboard.Build(fixtureSnapshot(), chart.DefaultTheme())
	m := New(stubSource{}, chart.DefaultTheme())
	m.SetSize(120, 60)
	m, _ = update(t, m, viewMsg{view: view})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != TabCharts || !strings.Contains(m.View(), "RSI(14)") {
		t.Fatalf("expected charts tab, got tab %d:\n%s", m.tab, m.View())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if m.tab != TabDecision || !strings.Contains(m.View(), "BULLISH") {
		t.Fatalf("expected decision tab, got tab %d:\n%s", m.tab, m.View())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if m.tab != TabSignals || !strings.Contains(m.View(), "golden cross") {
		t.Fatalf("expected signals tab, got tab %d:\n%s", m.tab, m.View())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != TabOverview {
		t.Fatalf("expected tab to wrap to overview, got %d", m.tab)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != TabSignals {
		t.Fatalf("expected shift+tab to wrap backwards, got %d", m.tab)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestModelWindowResize(t *testing.T) {
	m := New(stubSource{}, chart.DefaultTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !m.ready || m.viewport.Width != 80 || m.viewport.Height != 22 {
		t.Fatalf("unexpected viewport %dx%d ready=%v", m.viewport.Width, m.viewport.Height, m.ready)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 1})
	if m.viewport.Width != 60 || m.viewport.Height != 1 {
		t.Fatalf("unexpected viewport after resize %dx%d", m.viewport.Width, m.viewport.Height)
	}
}

func TestRenderEmptyDashboard(t *testing.T) {
	view := dashboard.Build(&domain.Snapshot{}, chart.DefaultTheme())
	st := newStyles(chart.DefaultTheme())

	if got := renderDecision(view, st); !strings.Contains(got, "의사결정 데이터 없음") {
		t.Fatalf("unexpected decision placeholder: %q", got)
	}
	if got := renderSignals(view, st); !strings.Contains(got, "시그널 없음") {
		t.Fatalf("unexpected signals placeholder: %q", got)
	}
	if got := renderCharts(view, st, 80); !strings.Contains(got, chart.InsufficientCorrelationMessage) {
		t.Fatalf("expected correlation message, got:\n%s", got)
	}
	if got := renderOverview(view, st); !strings.Contains(got, "52주 범위") {
		t.Fatalf("unexpected overview:\n%s", got)
	}
}

func fixtureSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		OHLCV: []domain.Candle{
			{Date: "2024-01-02", Open: null.FloatFrom(2600), Close: null.FloatFrom(2610), Volume: null.FloatFrom(1e5)},
			{Date: "2024-01-03", Open: null.FloatFrom(2610), Close: null.FloatFrom(2625), Volume: null.FloatFrom(2e5)},
		},
		Indicators: domain.Indicators{
			domain.IndicatorRSI14: {{Date: "2024-01-02", Value: null.FloatFrom(48)}, {Date: "2024-01-03", Value: null.FloatFrom(55)}},
		},
		Signals: []domain.Signal{
			{Date: "2023-12-01", Type: domain.SignalBuy, Reason: "golden cross", Price: null.FloatFrom(2500)},
		},
		DecisionTree: &domain.DecisionTree{CurrentState: domain.StateBullish, Confidence: null.IntFrom(2)},
	}
}
