package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/evm-assembler/dis"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	mnemonicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	operandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	name     string
	code     []byte
	viewport viewport.Model
	ready    bool
}

func runInteractive(name string, code []byte) error {
	m := &inspectorModel{name: name, code: code}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderListing())
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

func (m *inspectorModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := titleStyle.Render(fmt.Sprintf("%s (%d bytes)", m.name, len(m.code)))
	help := helpStyle.Render("up/down: scroll  q: quit")
	return header + "\n\n" + m.viewport.View() + "\n" + help
}

// renderListing colorizes the disassembly line by line.
func (m *inspectorModel) renderListing() string {
	listing := strings.TrimSuffix(dis.String(m.code), "\n")
	if listing == "" {
		return helpStyle.Render("(empty bytecode)")
	}

	var b strings.Builder
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.SplitN(line, " ", 3)
		b.WriteString(offsetStyle.Render(fields[0]))
		if len(fields) > 1 {
			b.WriteByte(' ')
			b.WriteString(mnemonicStyle.Render(fields[1]))
		}
		if len(fields) > 2 {
			b.WriteByte(' ')
			b.WriteString(operandStyle.Render(fields[2]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
