package app

import (
	"log/slog"
	"sync"
)

// WarningSink collects soft storage failures raised while the UI runs.
// Pass Add as the warning handler of the history store and the book.
type WarningSink struct {
	mu   sync.Mutex
	errs []error
}

// Add logs err and keeps it for the UI.
func (w *WarningSink) Add(err error) {
	slog.Warn("storage", "err", err)
	w.mu.Lock()
	w.errs = append(w.errs, err)
	w.mu.Unlock()
}

// Drain returns and forgets the collected warnings.
func (w *WarningSink) Drain() []error {
	w.mu.Lock()
	defer w.mu.Unlock()
	errs := w.errs
	w.errs = nil
	return errs
}
