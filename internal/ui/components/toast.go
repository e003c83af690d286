package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastDismissMsg dismisses the toast shown with the same sequence number.
type toastDismissMsg struct {
	seq int
}

// Toast is an auto-dismiss notification.
type Toast struct {
	Visible bool
	text    string
	isError bool
	seq     int
	theme   theme.Theme
}

// NewToast creates a new toast component.
func NewToast(t theme.Theme) Toast {
	return Toast{theme: t}
}

// Show displays a toast message and returns a Cmd for auto-dismiss. A newer
// toast is not hidden by the timer of an older one.
func (m *Toast) Show(msg msgs.ToastMsg) tea.Cmd {
	m.Visible = true
	m.text = msg.Text
	m.isError = msg.IsError
	m.seq++

	d := msg.Duration
	if d <= 0 {
		d = defaultToastDuration
	}
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Text returns the message currently shown, or "".
func (m Toast) Text() string {
	if !m.Visible {
		return ""
	}
	return m.text
}

// IsError reports whether the visible toast is an error.
func (m Toast) IsError() bool {
	return m.Visible && m.isError
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if d, ok := msg.(toastDismissMsg); ok && d.seq == m.seq {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	fg := m.theme.Green
	if m.isError {
		fg = m.theme.Red
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(m.text)
}
