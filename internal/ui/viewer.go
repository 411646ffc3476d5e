package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

var (
	viewerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Padding(0, 1)
	viewerFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
)

// NewViewer returns a scrollable full-screen pager over already rendered
// content. The content keeps its ANSI styling.
func NewViewer(title, content string) tea.Model {
	return &viewerModel{title: title, content: content}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := viewerTitleStyle.Render(m.title)
	footer := viewerFooterStyle.Render(fmt.Sprintf("%3.0f%%  q to quit", m.viewport.ScrollPercent()*100))
	return strings.Join([]string{header, m.viewport.View(), footer}, "\n")
}

// RunViewer starts the pager in the alternate screen and blocks until the
// user quits.
func RunViewer(title, content string) error {
	p := tea.NewProgram(NewViewer(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
