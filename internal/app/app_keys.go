package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/utmtag/internal/ui/msgs"
)

// handleGlobalKey handles keys that work on every tab. The bool reports
// whether the key was consumed.
func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, a.keys.ToggleTab):
		next := msgs.TabHistory
		if a.tab == msgs.TabHistory {
			next = msgs.TabGenerate
		}
		return switchTo(next), true
	}

	// digits and esc belong to the form inputs and the filter while typing
	if a.tab != msgs.TabHistory || a.list.Filtering() {
		if a.tab == msgs.TabGenerate && key.Matches(msg, a.keys.LeaveInput) {
			return switchTo(msgs.TabHistory), true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, a.keys.GotoForm):
		return switchTo(msgs.TabGenerate), true
	case key.Matches(msg, a.keys.GotoList):
		return switchTo(msgs.TabHistory), true
	}
	return nil, false
}

func (a App) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.tab {
	case msgs.TabHistory:
		a.list, cmd = a.list.Update(msg)
		// checks may have changed
		a.refresh()
	default:
		a.form, cmd = a.form.Update(msg)
	}
	return a, cmd
}

func switchTo(tab msgs.Tab) tea.Cmd {
	return func() tea.Msg { return msgs.SwitchTabMsg{Tab: tab} }
}
