package generate

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/utmtag/internal/core/utm"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

func newFormForTest(v utm.Variant) Model {
	m := New(theme.NewStyles(theme.Default()), utm.DefaultPolicy(v), []string{"cpc", "email"})
	m.SetSize(80, 20)
	return m
}

func TestForm_TypingFillsFocusedField(t *testing.T) {
	m := newFormForTest(utm.VariantOpen)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("example.com")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("google")})

	in := m.Input()
	if in.BaseURL != "example.com" || in.Params.Source != "google" {
		t.Fatalf("Input() = %+v", in)
	}
}

func TestForm_FocusWraps(t *testing.T) {
	m := newFormForTest(utm.VariantOpen)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != FieldContent {
		t.Fatalf("focus = %d, want %d", m.focus, FieldContent)
	}
}

func TestForm_FixedVariantSkipsFixedFields(t *testing.T) {
	m := newFormForTest(utm.VariantFixed)

	var seen []int
	for i := 0; i < fieldCount; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		seen = append(seen, m.focus)
	}
	for _, f := range seen {
		if f == FieldMedium || f == FieldContent {
			t.Fatalf("focus reached fixed field %d", f)
		}
	}
	if !strings.Contains(m.View(), "referral (fixed)") {
		t.Error("view should show the fixed medium")
	}
}

func TestForm_EnterRequestsGenerate(t *testing.T) {
	m := newFormForTest(utm.VariantOpen)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(msgs.GenerateMsg); !ok {
		t.Fatalf("got %#v", cmd())
	}
}

func TestForm_CopyNeedsResult(t *testing.T) {
	m := newFormForTest(utm.VariantOpen)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY}); cmd != nil {
		t.Fatal("nothing to copy yet")
	}

	m.SetResult("https://example.com/?utm_source=x")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	if cp := cmd().(msgs.CopyMsg); cp.Text != "https://example.com/?utm_source=x" {
		t.Errorf("copied %q", cp.Text)
	}
}

func TestForm_ErrorReplacesResult(t *testing.T) {
	m := newFormForTest(utm.VariantOpen)
	m.SetResult("https://example.com/")
	m.SetError(errors.New("invalid url"))

	if m.Result() != "" {
		t.Error("error should clear the result")
	}
	if !strings.Contains(m.View(), "invalid url") {
		t.Error("view should show the error")
	}
}
