package msgs

import "time"

// Tab identifies one of the top-level screens.
type Tab int

const (
	TabGenerate Tab = iota
	TabHistory
)

func (t Tab) String() string {
	switch t {
	case TabGenerate:
		return "Generate"
	case TabHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeInsert
	ModeModal
	ModeFilter
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeModal:
		return "MODAL"
	case ModeFilter:
		return "FILTER"
	default:
		return "UNKNOWN"
	}
}

// SwitchTabMsg switches to a specific tab.
type SwitchTabMsg struct {
	Tab Tab
}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// GenerateMsg tags the URL currently in the form.
type GenerateMsg struct{}

// CopyMsg copies Text to the clipboard.
type CopyMsg struct {
	Text string
}

// ClipboardDoneMsg reports the outcome of a clipboard write.
type ClipboardDoneMsg struct {
	Err error
}

// RequestDeleteMsg asks for confirmation before deleting IDs.
type RequestDeleteMsg struct {
	IDs []string
}

// DeleteSelectedMsg deletes the history records with the given IDs. It is
// sent by the confirmation dialog.
type DeleteSelectedMsg struct {
	IDs []string
}

// ExportSelectedMsg writes the history records with the given IDs to a
// text file.
type ExportSelectedMsg struct {
	IDs []string
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// StorageWarningMsg carries a soft storage failure to the UI.
type StorageWarningMsg struct {
	Err error
}
