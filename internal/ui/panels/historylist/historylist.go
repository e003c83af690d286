package historylist

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

// Model is the history panel: newest-first list with a checkbox per link.
type Model struct {
	records  []history.Record
	filtered []int // indices into records that match the filter
	cursor   int   // index into filtered
	checked  map[string]bool

	width  int
	height int

	filtering   bool
	filterInput textinput.Model

	styles theme.Styles
}

// New creates a new history panel.
func New(s theme.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 128

	return Model{
		checked:     make(map[string]bool),
		styles:      s,
		filterInput: ti,
	}
}

// SetRecords replaces the displayed records, given most recent first.
// Checks on records that no longer exist are dropped.
func (m *Model) SetRecords(records []history.Record) {
	m.records = records
	present := make(map[string]bool, len(records))
	for _, r := range records {
		present[r.ID] = true
	}
	for id := range m.checked {
		if !present[id] {
			delete(m.checked, id)
		}
	}
	m.applyFilter()
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// CheckedIDs returns the ids of checked records in display order.
func (m Model) CheckedIDs() []string {
	var ids []string
	for _, r := range m.records {
		if m.checked[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Matches returns how many records pass the current filter.
func (m Model) Matches() int {
	return len(m.filtered)
}

// Current returns the record under the cursor.
func (m Model) Current() (history.Record, bool) {
	if len(m.filtered) == 0 {
		return history.Record{}, false
	}
	return m.records[m.filtered[m.cursor]], true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.filtering {
		return m.updateFilter(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, tea.Batch(textinput.Blink, setMode(msgs.ModeFilter))
	case "a":
		for _, idx := range m.filtered {
			m.checked[m.records[idx].ID] = true
		}
		return m, nil
	case "A":
		m.checked = make(map[string]bool)
		return m, nil
	case "d", "delete":
		if ids := m.CheckedIDs(); len(ids) > 0 {
			return m, func() tea.Msg { return msgs.RequestDeleteMsg{IDs: ids} }
		}
		return m, nil
	case "e":
		if ids := m.CheckedIDs(); len(ids) > 0 {
			return m, func() tea.Msg { return msgs.ExportSelectedMsg{IDs: ids} }
		}
		return m, nil
	}

	cur, ok := m.Current()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.filtered) - 1
	case " ", "x":
		if m.checked[cur.ID] {
			delete(m.checked, cur.ID)
		} else {
			m.checked[cur.ID] = true
		}
	case "c", "y":
		return m, func() tea.Msg { return msgs.CopyMsg{Text: cur.URL} }
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filterInput.Blur()
			if msg.String() == "esc" {
				m.filterInput.SetValue("")
				m.applyFilter()
			}
			return m, setMode(msgs.ModeNormal)
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) applyFilter() {
	m.filtered = make([]int, 0, len(m.records))
	query := strings.TrimSpace(m.filterInput.Value())
	if query == "" {
		for i := range m.records {
			m.filtered = append(m.filtered, i)
		}
	} else {
		pos := make(map[string]int, len(m.records))
		for i, r := range m.records {
			pos[r.ID] = i
		}
		for _, r := range history.Search(m.records, query) {
			m.filtered = append(m.filtered, pos[r.ID])
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func setMode(mode msgs.AppMode) tea.Cmd {
	return func() tea.Msg { return msgs.SetModeMsg{Mode: mode} }
}

// View implements tea.Model.
func (m Model) View() string {
	innerW := max(1, m.width-2)
	innerH := max(1, m.height-2)

	var lines []string
	if len(m.records) == 0 {
		lines = append(lines, m.styles.Muted.Render("History is empty"))
	} else if len(m.filtered) == 0 {
		lines = append(lines, m.styles.Muted.Render("No matches"))
	}

	// each record takes two lines; keep the cursor in view
	perPage := max(1, (innerH-2)/2)
	start := 0
	if m.cursor >= perPage {
		start = m.cursor - perPage + 1
	}
	for vi := start; vi < len(m.filtered) && vi < start+perPage; vi++ {
		r := m.records[m.filtered[vi]]
		lines = append(lines, m.renderRecord(r, vi == m.cursor, innerW)...)
	}

	body := fitHeight(strings.Join(lines, "\n"), innerH-1)
	footer := m.styles.Hint.Render("space:check a/A:all/none d:delete e:export c:copy /:filter")
	if m.filtering {
		footer = m.filterInput.View()
	}

	return m.styles.FocusedBorder.
		Width(innerW).
		Height(innerH).
		Render(body + "\n" + footer)
}

func (m Model) renderRecord(r history.Record, isCursor bool, width int) []string {
	box := "[ ]"
	if m.checked[r.ID] {
		box = m.styles.Checked.Render("[x]")
	}

	meta := "source: " + r.Source + "  campaign: " + r.Campaign
	if r.Medium != nil {
		meta = "medium: " + *r.Medium + "  " + meta
	}

	first := box + " " + m.styles.Label.Render("["+r.Timestamp+"]") + " " + truncate(r.URL, width-lipgloss.Width(r.Timestamp)-8)
	second := "    " + m.styles.Muted.Render(truncate(meta, width-4))

	if isCursor {
		first = m.styles.Cursor.Width(width).Render(first)
	}
	return []string{first, second}
}

// fitHeight truncates or pads content to the given height.
func fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:max(0, h)]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, w int) string {
	if w < 2 {
		w = 2
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-1]) + "…"
}
