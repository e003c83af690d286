package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

const confirmWidth = 50

// Confirm is a yes/no dialog guarding a destructive action. Focus starts on
// Cancel so a stray enter never deletes anything.
type Confirm struct {
	Visible bool
	Title   string
	Message string

	onYes  tea.Msg
	yesSel bool
	theme  theme.Theme
}

func NewConfirm(t theme.Theme) Confirm {
	return Confirm{theme: t}
}

// Show opens the dialog; onYes is emitted if the user accepts.
func (c *Confirm) Show(title, message string, onYes tea.Msg) {
	*c = Confirm{Visible: true, Title: title, Message: message, onYes: onYes, theme: c.theme}
}

// answer hides the dialog and returns the app to normal mode, followed by
// onYes when accepted.
func (c Confirm) answer(yes bool) (Confirm, tea.Cmd) {
	c.Visible = false
	cmds := []tea.Cmd{func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }}
	if yes && c.onYes != nil {
		msg := c.onYes
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return c, tea.Batch(cmds...)
}

func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !c.Visible || !ok {
		return c, nil
	}
	switch key.String() {
	case "y":
		return c.answer(true)
	case "n", "esc":
		return c.answer(false)
	case "enter":
		return c.answer(c.yesSel)
	case "tab", "shift+tab", "left", "right", "h", "l":
		c.yesSel = !c.yesSel
	}
	return c, nil
}

func (c Confirm) button(label string, selected bool, fill lipgloss.Color) string {
	s := lipgloss.NewStyle().Padding(0, 3)
	if selected {
		return s.Background(fill).Foreground(c.theme.Base).Bold(true).Render(label)
	}
	return s.Background(c.theme.Surface).Foreground(c.theme.Subtext).Render(label)
}

func (c Confirm) View() string {
	if !c.Visible {
		return ""
	}

	line := lipgloss.NewStyle().Width(confirmWidth - 4).Align(lipgloss.Center)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		c.button("Delete (y)", c.yesSel, c.theme.Red),
		"  ",
		c.button("Cancel (n)", !c.yesSel, c.theme.Accent),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		line.Foreground(c.theme.Text).Bold(true).Render(c.Title),
		"",
		line.Foreground(c.theme.Subtext).Render(c.Message),
		"",
		line.Render(buttons),
	)

	return lipgloss.NewStyle().
		Width(confirmWidth).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.theme.Red).
		Background(c.theme.Surface).
		Foreground(c.theme.Text).
		Render(body)
}
