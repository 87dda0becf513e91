package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/sourcesift/internal/reporter"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewSummary ViewMode = iota
	ViewKept
	ViewRejected
)

// Model represents the report viewer state
type Model struct {
	report   reporter.Report
	mode     ViewMode
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel creates a new viewer model for a filter report
func NewModel(report reporter.Report) Model {
	return Model{
		report: report,
		mode:   ViewSummary,
	}
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.mode != ViewSummary {
				m.mode = ViewSummary
				m.viewport.SetContent(m.renderSummary())
				return m, nil
			}
			return m, tea.Quit

		case "f1", "k":
			m.mode = ViewKept
			m.viewport.SetContent(m.renderItems(true))
			m.viewport.GotoTop()
			return m, nil

		case "f2", "r":
			m.mode = ViewRejected
			m.viewport.SetContent(m.renderItems(false))
			m.viewport.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.renderSummary())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading report..."
	}

	header := FormatHeader(fmt.Sprintf("sourcesift report: %s", m.report.Kind))
	footer := FormatFooter(
		FormatKeybinding("f1", "kept"),
		FormatKeybinding("f2", "rejected"),
		FormatKeybinding("esc", "summary"),
		FormatKeybinding("q", "quit"),
	)

	return header + "\n" + m.viewport.View() + "\n" + footer
}

// renderSummary builds the summary view
func (m Model) renderSummary() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Summary") + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", m.report.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Filter: %s\n", m.report.Kind))
	if m.report.Query != "" {
		sb.WriteString(fmt.Sprintf("Query: %s\n", m.report.Query))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Titles checked: %s\n", StatStyle.Render(fmt.Sprintf("%d", m.report.TotalItems))))
	sb.WriteString(fmt.Sprintf("Titles kept: %s\n", SuccessStyle.Render(fmt.Sprintf("%d", m.report.TotalKept))))
	sb.WriteString(fmt.Sprintf("Titles rejected: %s\n", ErrorStyle.Render(fmt.Sprintf("%d", m.report.TotalItems-m.report.TotalKept))))

	return sb.String()
}

// renderItems builds the kept or rejected item list
func (m Model) renderItems(matched bool) string {
	var sb strings.Builder

	if matched {
		sb.WriteString(TitleStyle.Render("Kept titles") + "\n")
	} else {
		sb.WriteString(TitleStyle.Render("Rejected titles") + "\n")
	}

	count := 0
	for _, item := range m.report.Items {
		if item.Matched != matched {
			continue
		}
		count++

		marker := SuccessStyle.Render("KEEP:  ")
		if !matched {
			marker = ErrorStyle.Render("REJECT:")
		}

		annotations := ""
		if item.Quality != "" {
			annotations = " [" + item.Quality + "]"
		}
		if len(item.Info) > 0 {
			annotations += " [" + strings.Join(item.Info, " ") + "]"
		}

		sb.WriteString(fmt.Sprintf("%s %s%s\n", marker, item.Title, MutedStyle.Render(annotations)))
	}

	if count == 0 {
		sb.WriteString(MutedStyle.Render("(none)") + "\n")
	}

	return sb.String()
}

// Run starts the viewer for a report
func Run(report reporter.Report) error {
	p := tea.NewProgram(NewModel(report), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
