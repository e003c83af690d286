package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	mode     msgs.AppMode
	variant  string
	total    int
	selected int
	latest   time.Time
	now      func() time.Time
	message  string
	width    int
	theme    theme.Theme
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme) StatusBar {
	return StatusBar{
		theme: t,
		mode:  msgs.ModeNormal,
		now:   time.Now,
	}
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetVariant sets the tagging variant shown on the right.
func (m *StatusBar) SetVariant(v string) {
	m.variant = v
}

// SetHistory sets the history counters. latest is the creation time of the
// newest record, zero if unknown.
func (m *StatusBar) SetHistory(total, selected int, latest time.Time) {
	m.total = total
	m.selected = selected
	m.latest = latest
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a status message that replaces the counters.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// Summary returns the left-hand text without styling.
func (m StatusBar) Summary() string {
	if m.message != "" {
		return m.message
	}
	parts := []string{fmt.Sprintf("%d %s", m.total, plural(m.total, "link", "links"))}
	if m.selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", m.selected))
	}
	if !m.latest.IsZero() {
		parts = append(parts, "last "+humanize.RelTime(m.latest, m.now(), "ago", "from now"))
	}
	return strings.Join(parts, " │ ")
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	left := lipgloss.NewStyle().
		Foreground(m.theme.Subtext).
		Background(m.theme.Surface).
		Render(m.Summary())

	modeStr := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	right := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render(m.variant + "  ctrl+t:tabs  ctrl+c:quit")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(modeStr) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	line := " " + left + strings.Repeat(" ", gap/2) + modeStr + strings.Repeat(" ", gap-gap/2) + right
	return barStyle.Render(line)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
