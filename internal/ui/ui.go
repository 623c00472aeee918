// Package ui provides the terminal almanac clock using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/sexagesimal"
	"github.com/litescript/ls-almanac/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers a recomputation of the reading.
	TickMsg time.Time
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0AAFF"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7B2CBF")).
			Padding(0, 2)
)

// Model is the root Bubble Tea model.
type Model struct {
	observer astro.Observer
	refresh  time.Duration
	now      func() time.Time

	reading almanac.Reading
	err     error
	ready   bool
	width   int
}

// New creates a clock for the observer, refreshing every refresh.
func New(obs astro.Observer, refresh time.Duration) Model {
	return Model{
		observer: obs,
		refresh:  refresh,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests and replays.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return TickMsg(m.now())
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case TickMsg:
		m.reading, m.err = almanac.At(time.Time(msg), m.observer)
		m.ready = true
		return m, m.tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ls-almanac"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  v%s", version.Version)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String() + m.renderFooter()
	}

	b.WriteString(borderStyle.Render(m.renderReading()))
	b.WriteString("\n")
	return b.String() + m.renderFooter()
}

func (m Model) renderReading() string {
	r := m.reading

	deltaT := "n/a"
	if r.DeltaT != nil {
		deltaT = fmt.Sprintf("%.2f s", *r.DeltaT)
	}

	site := r.Site
	if site == "" {
		site = "observer"
	}

	rows := [][2]string{
		{"UTC", r.Time.Format("2006-01-02 15:04:05")},
		{"Weekday", fmt.Sprintf("%s (day %d)", r.Weekday, r.YearDay)},
		{"JD", fmt.Sprintf("%.5f", r.JD)},
		{"MJD", fmt.Sprintf("%.5f", r.MJD)},
		{"ΔT", deltaT},
		{"GMST", sexagesimal.FormatRA(r.GMSTRA)},
		{"LMST", fmt.Sprintf("%s  %s", sexagesimal.FormatRA(r.LMSTRA), mutedStyle.Render(site))},
		{"Longitude", sexagesimal.FormatDMS(astro.DegToDMS(m.observer.LonDeg))},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	return mutedStyle.Render(fmt.Sprintf("refresh %v · q quit", m.refresh))
}

func (m Model) tickCmd() tea.Cmd {
	now := m.now
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return TickMsg(now())
	})
}
