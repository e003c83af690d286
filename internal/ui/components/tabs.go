package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

// TabBar renders the Generate / History switcher.
type TabBar struct {
	active msgs.Tab
	counts map[msgs.Tab]int
	width  int
	theme  theme.Theme
	styles theme.Styles
}

// NewTabBar creates a new tab bar.
func NewTabBar(t theme.Theme, s theme.Styles) TabBar {
	return TabBar{
		counts: make(map[msgs.Tab]int),
		theme:  t,
		styles: s,
	}
}

// SetActive sets the active tab.
func (m *TabBar) SetActive(tab msgs.Tab) {
	m.active = tab
}

// SetCount sets the badge shown next to a tab name.
func (m *TabBar) SetCount(tab msgs.Tab, n int) {
	m.counts[tab] = n
}

// SetWidth sets the available width.
func (m *TabBar) SetWidth(w int) {
	m.width = w
}

// View renders the tab bar.
func (m TabBar) View() string {
	sep := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("│")

	var parts []string
	for i, tab := range []msgs.Tab{msgs.TabGenerate, msgs.TabHistory} {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if n := m.counts[tab]; n > 0 {
			label += fmt.Sprintf(" (%d)", n)
		}
		if tab == m.active {
			parts = append(parts, m.styles.TabActive.Render(label))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(label))
		}
	}

	rendered := strings.Join(parts, sep)
	if w := lipgloss.Width(rendered); w < m.width {
		rendered += strings.Repeat(" ", m.width-w)
	}
	return rendered
}
