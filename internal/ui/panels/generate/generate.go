// Package generate is the link form: base URL plus tag fields, and the
// last generated result.
package generate

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/internal/core/utm"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

// Field indices.
const (
	FieldURL = iota
	FieldSource
	FieldMedium
	FieldCampaign
	FieldContent
	fieldCount
)

var labels = [fieldCount]string{"Link", "Source", "Medium", "Campaign", "Content"}

// Model is the generate form.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  int
	policy utm.Policy

	result string
	err    string

	width  int
	height int

	styles theme.Styles
}

// New creates the form. mediums are offered as completions for the medium
// field.
func New(s theme.Styles, pol utm.Policy, mediums []string) Model {
	m := Model{policy: pol, styles: s}

	placeholders := [fieldCount]string{
		"https://example.com/page",
		pol.DefaultSource,
		"cpc",
		pol.DefaultCampaign,
		"optional",
	}
	if pol.Variant == utm.VariantFixed {
		placeholders[FieldCampaign] = "required"
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 2048
		ti.Placeholder = placeholders[i]
		m.inputs[i] = ti
	}
	m.inputs[FieldMedium].SetSuggestions(mediums)
	m.inputs[FieldMedium].ShowSuggestions = len(mediums) > 0
	m.inputs[FieldURL].Focus()
	return m
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	for i := range m.inputs {
		m.inputs[i].Width = max(10, w-16)
	}
}

// Input returns the current form contents.
func (m Model) Input() linkbook.Input {
	return linkbook.Input{
		BaseURL: m.inputs[FieldURL].Value(),
		Params: utm.Params{
			Source:   m.inputs[FieldSource].Value(),
			Medium:   m.inputs[FieldMedium].Value(),
			Campaign: m.inputs[FieldCampaign].Value(),
			Content:  m.inputs[FieldContent].Value(),
		},
	}
}

// SetValue fills a field.
func (m *Model) SetValue(field int, v string) {
	m.inputs[field].SetValue(v)
}

// SetResult shows a generated link and clears any error.
func (m *Model) SetResult(url string) {
	m.result = url
	m.err = ""
}

// SetError shows a generation error. The previous result stays hidden.
func (m *Model) SetError(err error) {
	m.err = err.Error()
	m.result = ""
}

// Result returns the last generated link, or "".
func (m Model) Result() string {
	return m.result
}

func (m Model) editable(field int) bool {
	if m.policy.Variant != utm.VariantFixed {
		return true
	}
	return field != FieldMedium && field != FieldContent
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	for {
		m.focus = (m.focus + delta + fieldCount) % fieldCount
		if m.editable(m.focus) {
			break
		}
	}
	m.inputs[m.focus].Focus()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			// let the medium field accept its completion first
			if msg.String() == "tab" && m.focus == FieldMedium && m.hasCompletion() {
				break
			}
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			return m, func() tea.Msg { return msgs.GenerateMsg{} }
		case "ctrl+y":
			if m.result == "" {
				return m, nil
			}
			url := m.result
			return m, func() tea.Msg { return msgs.CopyMsg{Text: url} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) hasCompletion() bool {
	in := m.inputs[FieldMedium]
	v := in.Value()
	if v == "" {
		return false
	}
	s := in.CurrentSuggestion()
	return s != "" && s != v
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Build a tagged link"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := m.styles.Label.Render(padRight(labels[i], 10))
		if !m.editable(i) {
			fixed := m.policy.FixedMedium
			if i == FieldContent {
				fixed = m.policy.FixedContent
			}
			b.WriteString("  " + label + " " + m.styles.Muted.Render(fixed+" (fixed)") + "\n")
			continue
		}
		marker := "  "
		if i == m.focus {
			marker = m.styles.Label.Render("▸ ")
		}
		b.WriteString(marker + label + " " + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != "":
		b.WriteString(m.styles.Error.Render("✗ " + m.err))
	case m.result != "":
		b.WriteString(m.styles.Success.Render("✓ ") + m.styles.URL.Render(m.result))
		b.WriteString("\n" + m.styles.Hint.Render("ctrl+y: copy to clipboard"))
	default:
		b.WriteString(m.styles.Hint.Render("enter: generate  tab: next field"))
	}

	return m.styles.FocusedBorder.
		Width(max(1, m.width-2)).
		Height(max(1, m.height-2)).
		Render(b.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
