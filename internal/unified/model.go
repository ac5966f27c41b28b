package unified

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/controller"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/tui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// rows taken by the header, notice bar and help
const chromeHeight = 7

// Model is the catalog TUI. It renders controller snapshots and turns key
// presses into controller intents.
type Model struct {
	ctx  context.Context
	ctrl *controller.Controller
	feed *stateFeed
	log  *logrus.Entry

	state   controller.State
	table   table.Model
	cols    []table.Column
	form    tui.BookForm
	hasForm bool
	spinner spinner.Model
	help    help.Model
	keys    tui.CatalogKeys

	width     int
	height    int
	activeCmd string
}

// New creates the TUI model for ctrl. Remote calls made on behalf of the
// user run with ctx.
func New(ctx context.Context, ctrl *controller.Controller, log *logrus.Entry) Model {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tui.ColorYellow)

	const width, height = 80, 20
	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		feed:    newStateFeed(ctrl),
		log:     log,
		table:   tui.NewBookTable(width, height-chromeHeight),
		cols:    tui.BookColumns(width),
		spinner: sp,
		help:    help.New(),
		keys:    tui.NewCatalogKeys(),
		width:   width,
		height:  height,
	}
	m.apply(ctrl.Snapshot())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.feed.wait(), m.spinner.Tick, m.load())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.cols = tui.BookColumns(msg.Width)
		m.table.SetColumns(m.cols)
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		m.table.SetRows(tui.BookRows(m.state.Books, m.cols))
		return m, nil

	case StateMsg:
		m.apply(msg.State)
		return m, m.feed.wait()

	case OpDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, controller.ErrBusy) && !controller.IsLocalRejection(msg.Err) {
			m.log.WithError(msg.Err).WithField("op", msg.Op).Debug("operation failed")
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tui.ClearActiveCmdMsg:
		m.activeCmd = ""
		if m.hasForm {
			m.form, _ = m.form.Update(msg)
		}
		return m, nil

	case QuitAppMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch m.state.Dialog.(type) {
		case dialog.Editing:
			return m.updateEditing(msg)
		case dialog.Viewing:
			return m.updateViewing(msg)
		case dialog.ConfirmingDelete:
			return m.updateConfirming(msg)
		default:
			return m.updateTable(msg)
		}
	}

	// cursor blink and friends
	if m.hasForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// apply adopts a snapshot, keeping the local form in step with the dialog.
func (m *Model) apply(st controller.State) {
	prev, hadPrev := m.selected()
	m.state = st

	rows := tui.BookRows(st.Books, m.cols)
	m.table.SetRows(rows)
	if hadPrev {
		if i := catalog.IndexOf(st.Books, prev.ID); i >= 0 {
			m.table.SetCursor(i)
		}
	}
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	ed, editing := st.Dialog.(dialog.Editing)
	switch {
	case editing && !m.hasForm:
		m.form = tui.NewBookForm(ed.Draft, ed.HasTarget)
		m.hasForm = true
	case !editing:
		m.hasForm = false
	}
}

// refresh applies the current snapshot after a synchronous intent.
func (m Model) refresh() Model {
	m.apply(m.ctrl.Snapshot())
	return m
}

func (m Model) selected() (catalog.Book, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.state.Books) {
		return catalog.Book{}, false
	}
	return m.state.Books[c], true
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, func() tea.Msg { return QuitAppMsg{} }

	case key.Matches(msg, m.keys.New):
		m.ctrl.OpenCreate()
		m = m.refresh()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if b, ok := m.selected(); ok {
			if err := m.ctrl.OpenEdit(b.ID); err == nil {
				m = m.refresh()
				return m, m.form.Init()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if b, ok := m.selected(); ok {
			_ = m.ctrl.OpenDeleteConfirm(b.ID)
			m = m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Details):
		if b, ok := m.selected(); ok {
			return m, m.viewDetails(b.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.load()

	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.DismissNotice()
		m = m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, func() tea.Msg { return QuitAppMsg{} }

	case "esc":
		m.ctrl.Close()
		m = m.refresh()
		return m, nil

	case "enter":
		if m.state.Busy {
			return m, nil
		}
		m.ctrl.SetDraft(m.form.Draft())
		var hl tea.Cmd
		m.form, hl = m.form.MarkSubmit()
		return m, tea.Batch(m.run("save", m.ctrl.SubmitEditor), hl)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.ctrl.SetDraft(m.form.Draft())
	return m, cmd
}

func (m Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, func() tea.Msg { return QuitAppMsg{} }

	case "esc", "q", "enter":
		m.ctrl.Close()
		m = m.refresh()
		return m, nil

	case "e":
		v := m.state.Dialog.(dialog.Viewing)
		if err := m.ctrl.OpenEdit(v.Book.ID); err == nil {
			m.activeCmd = "e"
			m = m.refresh()
			return m, tea.Batch(m.form.Init(), tui.HighlightCmd())
		}
	}
	return m, nil
}

func (m Model) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, func() tea.Msg { return QuitAppMsg{} }

	case "esc", "n":
		m.ctrl.Close()
		m = m.refresh()
		return m, nil

	case "enter", "y":
		if m.state.Busy {
			return m, nil
		}
		m.activeCmd = "enter"
		return m, tea.Batch(m.run("delete", m.ctrl.ConfirmDelete), tui.HighlightCmd())
	}
	return m, nil
}

// run executes a remote-backed intent off the update loop.
func (m Model) run(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return OpDoneMsg{Op: op, Err: fn(ctx)}
	}
}

func (m Model) load() tea.Cmd {
	return m.run("load", m.ctrl.Load)
}

func (m Model) viewDetails(id int) tea.Cmd {
	ctrl := m.ctrl
	return m.run("details", func(ctx context.Context) error {
		return ctrl.ViewDetails(ctx, id)
	})
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch d := m.state.Dialog.(type) {
	case dialog.Editing:
		b.WriteString(m.form.View(m.state.Busy))
	case dialog.Viewing:
		b.WriteString(tui.RenderDetails(d.Book, m.activeCmd))
	case dialog.ConfirmingDelete:
		b.WriteString(tui.RenderDeleteConfirm(d.Book, m.state.Busy, m.activeCmd))
	default:
		b.WriteString(m.renderTable())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	if n := tui.RenderNotice(m.state.Notice, m.width); n != "" {
		b.WriteString("\n\n")
		b.WriteString(n)
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHeader() string {
	title := tui.StyleHeader.Render("Book Catalog")
	count := tui.StyleHelp.Render(fmt.Sprintf("%d books", len(m.state.Books)))
	if m.state.Loading {
		count = m.spinner.View() + " " + tui.StyleHelp.Render("Loading...")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(title + "  " + count)
}

func (m Model) renderTable() string {
	if len(m.state.Books) == 0 {
		msg := "No books registered"
		if m.state.Loading {
			msg = m.spinner.View() + " Loading books..."
		}
		return tui.RenderPanel(tui.StyleHelp.Render(msg))
	}
	return tui.StyleBorder.Render(m.table.View())
}
