package app

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/utmtag/internal/config"
	"github.com/sadopc/utmtag/internal/core/linkbook"
	"github.com/sadopc/utmtag/internal/ui/components"
	"github.com/sadopc/utmtag/internal/ui/msgs"
	"github.com/sadopc/utmtag/internal/ui/panels/generate"
	"github.com/sadopc/utmtag/internal/ui/panels/historylist"
	"github.com/sadopc/utmtag/internal/ui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	form generate.Model
	list historylist.Model

	tabBar    components.TabBar
	statusBar components.StatusBar
	toast     components.Toast
	confirm   components.Confirm

	book     *linkbook.Book
	warnings *WarningSink
	cfg      config.Config
	copy     func(string) error
	now      func() time.Time

	tab  msgs.Tab
	mode msgs.AppMode
	keys KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model over book. warnings may be nil; when set,
// soft storage failures collected there are surfaced as toasts.
func New(book *linkbook.Book, cfg config.Config, warnings *WarningSink) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)
	pol := book.Policy()

	a := App{
		form: generate.New(s, pol, cfg.Mediums),
		list: historylist.New(s),

		tabBar:    components.NewTabBar(t, s),
		statusBar: components.NewStatusBar(t),
		toast:     components.NewToast(t),
		confirm:   components.NewConfirm(t),

		book:     book,
		warnings: warnings,
		cfg:      cfg,
		copy:     clipboard.WriteAll,
		now:      time.Now,

		tab:  msgs.TabGenerate,
		mode: msgs.ModeInsert,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}

	a.statusBar.SetVariant(string(pol.Variant))
	a.statusBar.SetMode(a.mode)
	a.refresh()
	return a
}

func (a App) Init() tea.Cmd {
	return a.drainWarnings()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.confirm.Visible {
			var cmd tea.Cmd
			a.confirm, cmd = a.confirm.Update(msg)
			return a, cmd
		}
		if cmd, ok := a.handleGlobalKey(msg); ok {
			return a, cmd
		}
		return a.handlePanelKey(msg)

	case msgs.SwitchTabMsg:
		a.switchTab(msg.Tab)
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.GenerateMsg:
		return a.generate()

	case msgs.CopyMsg:
		return a, a.copyCmd(msg.Text)

	case msgs.ClipboardDoneMsg:
		return a.handleClipboardDone(msg)

	case msgs.RequestDeleteMsg:
		return a.requestDelete(msg.IDs)

	case msgs.DeleteSelectedMsg:
		return a.deleteSelected(msg.IDs)

	case msgs.ExportSelectedMsg:
		return a.exportSelected(msg.IDs)

	case msgs.StorageWarningMsg:
		cmd := a.toast.Show(msgs.ToastMsg{
			Text:    "Storage problem: " + msg.Err.Error(),
			IsError: true,
		})
		return a, cmd

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	return a, cmd
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
}

func (a *App) switchTab(tab msgs.Tab) {
	a.tab = tab
	a.tabBar.SetActive(tab)
	if tab == msgs.TabGenerate {
		a.setMode(msgs.ModeInsert)
	} else {
		a.setMode(msgs.ModeNormal)
	}
}

func (a *App) resizePanels() {
	// tab bar and status bar take one line each
	contentH := max(3, a.height-2)
	a.form.SetSize(a.width, contentH)
	a.list.SetSize(a.width, contentH)
	a.tabBar.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)
}

// refresh pushes the book's state into the list, tab bar and status bar.
func (a *App) refresh() {
	newest := a.book.Newest()
	a.list.SetRecords(newest)
	a.tabBar.SetCount(msgs.TabHistory, len(newest))

	var latest time.Time
	if len(newest) > 0 {
		if ts, err := time.ParseInLocation(a.timestampLayout(), newest[0].Timestamp, time.Local); err == nil {
			latest = ts
		}
	}
	a.statusBar.SetHistory(len(newest), len(a.list.CheckedIDs()), latest)

	status := ""
	if a.list.Filtering() {
		status = fmt.Sprintf("filter: %d of %d links match", a.list.Matches(), len(newest))
	}
	a.statusBar.SetMessage(status)
}

func (a App) timestampLayout() string {
	if a.cfg.TimestampLayout != "" {
		return a.cfg.TimestampLayout
	}
	return linkbook.DefaultTimestampLayout
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var content string
	switch a.tab {
	case msgs.TabHistory:
		content = a.list.View()
	default:
		content = a.form.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left, a.tabBar.View(), content, a.statusBar.View())

	if a.confirm.Visible {
		main = overlayCenter(main, a.confirm.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}
	return main
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := max(0, width-lipgloss.Width(overlay)-2)
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
