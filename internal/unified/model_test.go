package unified

import (
	"context"
	"testing"
	"time"

	"github.com/blackwell-systems/bookctl/internal/api"
	"github.com/blackwell-systems/bookctl/internal/booktest"
	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/controller"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func books() []catalog.Book {
	return []catalog.Book{
		{ID: 1, Title: "Dune", Author: "Herbert", Year: catalog.IntPtr(1965)},
		{ID: 2, Title: "Solaris", Author: "Lem"},
	}
}

func newModel(t *testing.T, seed ...catalog.Book) (Model, *controller.Controller, *booktest.Server) {
	t.Helper()
	srv := booktest.New(t, seed...)
	ctrl := controller.New(api.New(srv.URL), controller.WithQueue(notify.New(0)))
	require.NoError(t, ctrl.Load(context.Background()))
	m := New(context.Background(), ctrl, nil)
	return m, ctrl, srv
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_EmptyCatalog(t *testing.T) {
	m, _, _ := newModel(t)
	assert.Contains(t, m.View(), "No books registered")
}

func TestView_ListsBooks(t *testing.T) {
	m, _, _ := newModel(t, books()...)
	out := m.View()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Solaris")
	assert.Contains(t, out, "2 books")
}

func TestNewKey_OpensCreateForm(t *testing.T) {
	m, ctrl, _ := newModel(t, books()...)

	m = press(t, m, runes("n"))
	assert.Equal(t, dialog.KindEditing, ctrl.Snapshot().Dialog.Kind())
	assert.Contains(t, m.View(), "New Book")

	m = press(t, m, runes("Ubik"))
	ed := ctrl.Snapshot().Dialog.(dialog.Editing)
	assert.Equal(t, "Ubik", ed.Draft.Title, "typing reaches the staged draft")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, dialog.KindClosed, ctrl.Snapshot().Dialog.Kind())
	assert.False(t, m.hasForm)
}

func TestEditKey_SeedsFormFromSelection(t *testing.T) {
	m, ctrl, _ := newModel(t, books()...)

	m = press(t, m, runes("e"))
	ed, ok := ctrl.Snapshot().Dialog.(dialog.Editing)
	require.True(t, ok)
	assert.Equal(t, "Dune", ed.Draft.Title)
	assert.Equal(t, "1965", ed.Draft.Year)
	assert.Contains(t, m.View(), "Edit Book")
}

func TestDeleteKey_ConfirmAndCancel(t *testing.T) {
	m, ctrl, srv := newModel(t, books()...)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("d"))
	cd, ok := ctrl.Snapshot().Dialog.(dialog.ConfirmingDelete)
	require.True(t, ok)
	assert.Equal(t, 2, cd.Book.ID, "confirm targets the selected row")
	assert.Contains(t, m.View(), `Delete "Solaris"?`)

	m = press(t, m, runes("n"))
	assert.Equal(t, dialog.KindClosed, ctrl.Snapshot().Dialog.Kind())
	assert.Len(t, srv.Books(), 2, "cancel deletes nothing")
	assert.Contains(t, m.View(), "Solaris")
}

func TestRun_DeliversOpDone(t *testing.T) {
	m, ctrl, srv := newModel(t, books()...)
	require.NoError(t, ctrl.OpenDeleteConfirm(1))

	msg := m.run("delete", ctrl.ConfirmDelete)()
	done, ok := msg.(OpDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "delete", done.Op)
	assert.NoError(t, done.Err)
	assert.Len(t, srv.Books(), 1)

	next, _ := m.Update(StateMsg{State: ctrl.Snapshot()})
	out := next.(Model).View()
	assert.NotContains(t, out, "Dune")
	assert.Contains(t, out, "Book deleted successfully")
}

func TestStateFeed_Coalesces(t *testing.T) {
	_, ctrl, _ := newModel(t, books()...)
	f := newStateFeed(ctrl)

	// must not block even with nobody waiting
	f.signal(controller.State{})
	f.signal(controller.State{})

	got := make(chan tea.Msg, 1)
	go func() { got <- f.wait()() }()

	select {
	case msg := <-got:
		st, ok := msg.(StateMsg)
		require.True(t, ok)
		assert.Len(t, st.State.Books, 2, "wait reads a fresh snapshot")
	case <-time.After(time.Second):
		t.Fatal("wait did not resolve")
	}

	assert.Empty(t, f.ch, "signals coalesce into one")
}

func TestDismissKey(t *testing.T) {
	m, ctrl, srv := newModel(t, books()...)
	srv.FailNext("GET", 500)
	_ = ctrl.Load(context.Background())
	require.True(t, ctrl.Snapshot().Notice.Open)

	m = press(t, m, runes("x"))
	assert.False(t, m.state.Notice.Open)
}

func TestApply_CursorFollowsSelectedBook(t *testing.T) {
	m, ctrl, _ := newModel(t, books()...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	sel, ok := m.selected()
	require.True(t, ok)
	require.Equal(t, 2, sel.ID)

	st := ctrl.Snapshot()
	st.Books = []catalog.Book{
		{ID: 2, Title: "Solaris", Author: "Lem"},
		{ID: 3, Title: "Ubik", Author: "Dick"},
		{ID: 1, Title: "Dune", Author: "Herbert"},
	}
	m.apply(st)

	sel, ok = m.selected()
	require.True(t, ok)
	assert.Equal(t, 2, sel.ID)
}
