// Package tui is the terminal dashboard served over SSH.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/dashboard"
	"kospi-dashboard/internal/loader"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pollInterval = 500 * time.Millisecond
	fetchTimeout = 5 * time.Second
)

// Source supplies the dashboard view model.
type Source interface {
	View(ctx context.Context) (*dashboard.Dashboard, error)
}

type Tab int

const (
	TabOverview Tab = iota
	TabCharts
	TabDecision
	TabSignals
)

var tabNames = []string{"Overview", "Charts", "Decision", "Signals"}

type viewMsg struct {
	view *dashboard.Dashboard
	err  error
}

type retryMsg struct{}

type Model struct {
	source   Source
	styles   styles
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	tab      Tab
	view     *dashboard.Dashboard
	failure  string
}

func New(source Source, theme chart.Theme) Model {
	st := newStyles(theme)
	return Model{
		source:  source,
		styles:  st,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.accent)),
	}
}

// SetSize sizes the viewport below the tab bar and above the help line.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-2, 1)
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refresh()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		view, err := m.source.View(ctx)
		return viewMsg{view: view, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.selectTab((m.tab + 1) % Tab(len(tabNames)))
			return m, nil
		case "shift+tab", "left", "h":
			m.selectTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
			return m, nil
		case "1", "2", "3", "4":
			m.selectTab(Tab(msg.String()[0] - '1'))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.view != nil || m.failure != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case viewMsg:
		var loadErr *loader.LoadError
		switch {
		case msg.err == nil:
			m.view = msg.view
			m.refresh()
		case errors.Is(msg.err, loader.ErrNotLoaded):
			return m, tea.Tick(pollInterval, func(time.Time) tea.Msg { return retryMsg{} })
		case errors.As(msg.err, &loadErr):
			m.failure = loadErr.Message
		default:
			m.failure = msg.err.Error()
		}
		return m, nil

	case retryMsg:
		return m, m.fetch()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) selectTab(t Tab) {
	if t == m.tab {
		return
	}
	m.tab = t
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) refresh() {
	if !m.ready || m.view == nil {
		return
	}
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	switch m.tab {
	case TabCharts:
		return renderCharts(m.view, m.styles, m.width)
	case TabDecision:
		return renderDecision(m.view, m.styles)
	case TabSignals:
		return renderSignals(m.view, m.styles)
	}
	return renderOverview(m.view, m.styles)
}

func (m Model) View() string {
	if m.failure != "" {
		return m.styles.negative.Render("Failed to load market data") + "\n\n" +
			m.failure + "\n\n" + m.styles.muted.Render("q quit")
	}
	if m.view == nil {
		return m.spinner.View() + " Loading market data..."
	}
	if !m.ready {
		return renderOverview(m.view, m.styles)
	}
	return m.tabBar() + "\n" + m.viewport.View() + "\n" + m.help()
}

func (m Model) tabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if Tab(i) == m.tab {
			parts[i] = m.styles.activeTab.Render(label)
		} else {
			parts[i] = m.styles.tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) help() string {
	h := m.view.Header
	info := fmt.Sprintf("updated %s  %d%%", h.LastUpdatedText, int(m.viewport.ScrollPercent()*100))
	keys := "tab/1-4 switch  ↑/↓ scroll  q quit"
	gap := max(m.width-lipgloss.Width(keys)-lipgloss.Width(info), 1)
	return m.styles.muted.Render(keys + strings.Repeat(" ", gap) + info)
}
