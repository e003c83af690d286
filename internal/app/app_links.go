package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/utmtag/internal/export"
	"github.com/sadopc/utmtag/internal/ui/msgs"
)

// ErrClipboard is reported when the system clipboard cannot be written.
var ErrClipboard = errors.New("clipboard unavailable")

func (a App) generate() (tea.Model, tea.Cmd) {
	rec, err := a.book.Generate(a.form.Input())
	if err != nil {
		a.form.SetError(err)
		return a, nil
	}

	a.form.SetResult(rec.URL)
	a.refresh()
	slog.Debug("link generated", "id", rec.ID, "url", rec.URL)
	cmd := a.toast.Show(msgs.ToastMsg{Text: "Link generated", Duration: 2 * time.Second})
	return a, tea.Batch(cmd, a.drainWarnings())
}

func (a App) copyCmd(text string) tea.Cmd {
	write := a.copy
	return func() tea.Msg {
		if err := write(text); err != nil {
			return msgs.ClipboardDoneMsg{Err: fmt.Errorf("%w: %v", ErrClipboard, err)}
		}
		return msgs.ClipboardDoneMsg{}
	}
}

func (a App) handleClipboardDone(msg msgs.ClipboardDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Warn("copy failed", "err", msg.Err)
		cmd := a.toast.Show(msgs.ToastMsg{Text: "Copy failed, copy the link manually", IsError: true})
		return a, cmd
	}
	cmd := a.toast.Show(msgs.ToastMsg{Text: "Copied to clipboard", Duration: 2 * time.Second})
	return a, cmd
}

func (a App) requestDelete(ids []string) (tea.Model, tea.Cmd) {
	if len(ids) == 0 {
		return a, nil
	}
	noun := "links"
	if len(ids) == 1 {
		noun = "link"
	}
	a.confirm.Show("Delete", fmt.Sprintf("Delete %d selected %s?", len(ids), noun), msgs.DeleteSelectedMsg{IDs: ids})
	a.setMode(msgs.ModeModal)
	return a, nil
}

func (a App) deleteSelected(ids []string) (tea.Model, tea.Cmd) {
	n := a.book.Delete(ids)
	a.refresh()
	if n == 0 {
		return a, nil
	}
	slog.Info("links deleted", "count", n)
	cmd := a.toast.Show(msgs.ToastMsg{Text: fmt.Sprintf("Deleted %d", n), Duration: 2 * time.Second})
	return a, tea.Batch(cmd, a.drainWarnings())
}

func (a App) exportSelected(ids []string) (tea.Model, tea.Cmd) {
	records := a.book.Select(ids)
	if len(records) == 0 {
		return a, nil
	}
	path, err := export.WriteFile(a.cfg.ExportDir, records, a.now())
	if err != nil {
		slog.Error("export failed", "err", err)
		cmd := a.toast.Show(msgs.ToastMsg{Text: "Export failed: " + err.Error(), IsError: true})
		return a, cmd
	}
	slog.Info("links exported", "count", len(records), "path", path)
	cmd := a.toast.Show(msgs.ToastMsg{Text: "Saved to " + path})
	return a, cmd
}

// drainWarnings turns collected storage warnings into UI messages.
func (a App) drainWarnings() tea.Cmd {
	if a.warnings == nil {
		return nil
	}
	errs := a.warnings.Drain()
	if len(errs) == 0 {
		return nil
	}
	// the newest warning is the one worth showing
	err := errs[len(errs)-1]
	return func() tea.Msg { return msgs.StorageWarningMsg{Err: err} }
}
