package historylist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/utmtag/internal/core/history"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

func newListForTest() Model {
	m := New(theme.NewStyles(theme.Default()))
	m.SetSize(100, 20)

	cpc := "cpc"
	m.SetRecords([]history.Record{
		{ID: "3", Timestamp: "16.10.2026, 14:03:05", URL: "https://shop.example/?utm_source=newsletter", Source: "newsletter", Medium: &cpc, Campaign: "autumn"},
		{ID: "2", Timestamp: "15.10.2026, 10:00:00", URL: "https://blog.example/?utm_source=google", Source: "google", Medium: &cpc, Campaign: "spring"},
		{ID: "1", Timestamp: "14.10.2026, 09:00:00", URL: "https://docs.example/?utm_source=twitter", Source: "twitter", Campaign: "launch"},
	})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHistoryList_CheckAndDelete(t *testing.T) {
	m := newListForTest()

	if _, cmd := m.Update(runes("d")); cmd != nil {
		t.Fatal("delete with nothing checked should be a no-op")
	}

	m, _ = m.Update(runes(" "))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("x"))

	if got := m.CheckedIDs(); len(got) != 2 || got[0] != "3" || got[1] != "1" {
		t.Fatalf("CheckedIDs() = %v, want [3 1]", got)
	}

	_, cmd := m.Update(runes("d"))
	if cmd == nil {
		t.Fatal("expected a delete request")
	}
	req, ok := cmd().(msgs.RequestDeleteMsg)
	if !ok || len(req.IDs) != 2 {
		t.Fatalf("got %#v", cmd())
	}
}

func TestHistoryList_CheckAllAndNone(t *testing.T) {
	m := newListForTest()
	m, _ = m.Update(runes("a"))
	if len(m.CheckedIDs()) != 3 {
		t.Fatalf("a should check all, got %v", m.CheckedIDs())
	}

	_, cmd := m.Update(runes("e"))
	if cmd == nil {
		t.Fatal("expected an export request")
	}
	if exp := cmd().(msgs.ExportSelectedMsg); len(exp.IDs) != 3 {
		t.Errorf("export ids = %v", exp.IDs)
	}

	m, _ = m.Update(runes("A"))
	if len(m.CheckedIDs()) != 0 {
		t.Fatal("A should clear all checks")
	}
}

func TestHistoryList_SetRecordsDropsStaleChecks(t *testing.T) {
	m := newListForTest()
	m, _ = m.Update(runes("a"))

	m.SetRecords(history.DeleteByIDs(m.records, []string{"3"}))
	if got := m.CheckedIDs(); len(got) != 2 {
		t.Fatalf("CheckedIDs() = %v", got)
	}
	if _, ok := m.checked["3"]; ok {
		t.Error("check on deleted record should be dropped")
	}
}

func TestHistoryList_CopyCurrent(t *testing.T) {
	m := newListForTest()
	m, _ = m.Update(runes("G"))

	_, cmd := m.Update(runes("c"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	cp := cmd().(msgs.CopyMsg)
	if cp.Text != "https://docs.example/?utm_source=twitter" {
		t.Errorf("copied %q", cp.Text)
	}
}

func TestHistoryList_Filter(t *testing.T) {
	m := newListForTest()

	m, cmd := m.Update(runes("/"))
	if !m.Filtering() || cmd == nil {
		t.Fatal("expected filtering mode")
	}

	for _, r := range "twitter" {
		m, _ = m.Update(runes(string(r)))
	}
	cur, ok := m.Current()
	if !ok || cur.ID != "1" {
		t.Fatalf("Current() = %+v, %v", cur, ok)
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Filtering() {
		t.Fatal("esc should leave filtering")
	}
	if mode := cmd().(msgs.SetModeMsg); mode.Mode != msgs.ModeNormal {
		t.Errorf("mode = %v", mode.Mode)
	}
	if len(m.filtered) != 3 {
		t.Errorf("esc should clear the filter, got %d rows", len(m.filtered))
	}
}

func TestHistoryList_View(t *testing.T) {
	m := newListForTest()
	out := m.View()
	for _, want := range []string{"14:03:05", "campaign: autumn", "medium: cpc"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := New(theme.NewStyles(theme.Default()))
	empty.SetSize(60, 10)
	if !strings.Contains(empty.View(), "History is empty") {
		t.Error("empty list should say so")
	}
}
