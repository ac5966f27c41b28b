package tui

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/form"
	"github.com/blackwell-systems/bookctl/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

func TestBookColumns_FillWidth(t *testing.T) {
	cols := BookColumns(100)
	if len(cols) != 5 {
		t.Fatalf("got %d columns, want 5", len(cols))
	}
	total := 0
	for _, c := range cols {
		total += c.Width + 2
	}
	if total != 100 {
		t.Errorf("columns span %d cells, want 100", total)
	}
}

func TestBookColumns_Narrow(t *testing.T) {
	for _, c := range BookColumns(10) {
		if c.Width < 3 {
			t.Errorf("column %q width = %d, too narrow", c.Title, c.Width)
		}
	}
}

func TestBookRows_Placeholders(t *testing.T) {
	books := []catalog.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: catalog.IntPtr(1965), Genre: catalog.StringPtr("SF")},
		{ID: 2, Title: "Untitled", Author: "Anon"},
	}
	rows := BookRows(books, BookColumns(120))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][3] != "1965" || rows[0][4] != "SF" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][3] != Placeholder || rows[1][4] != Placeholder {
		t.Errorf("absent values should render %q, got %v", Placeholder, rows[1])
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Dune", 10, "Dune"},
		{"The Left Hand of Darkness", 8, "The Lef…"},
		{"anything", 0, ""},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.width); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestBookForm_SeedAndType(t *testing.T) {
	seed := form.Draft{Title: "Dune", Author: "Frank Herbert", Year: "1965"}
	m := NewBookForm(seed, true)

	if got := m.Draft(); got != seed {
		t.Fatalf("Draft() = %+v, want %+v", got, seed)
	}
	if m.Focused() != form.FieldTitle {
		t.Errorf("initial focus = %v, want title", m.Focused())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" Messiah")})
	if got := m.Draft().Title; got != "Dune Messiah" {
		t.Errorf("Title = %q, want %q", got, "Dune Messiah")
	}
}

func TestBookForm_Navigation(t *testing.T) {
	m := NewBookForm(form.Empty(), false)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != form.FieldAuthor {
		t.Fatalf("after tab focus = %v, want author", m.Focused())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Le Guin")})
	if got := m.Draft(); got.Author != "Le Guin" || got.Title != "" {
		t.Errorf("Draft() = %+v, typing should land in author only", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != form.FieldGenre {
		t.Errorf("shift+tab should wrap to genre, got %v", m.Focused())
	}
}

func TestBookForm_ViewLabels(t *testing.T) {
	create := NewBookForm(form.Empty(), false).View(false)
	if !strings.Contains(create, "New Book") || !strings.Contains(create, "Create") {
		t.Errorf("create form view missing title or submit label:\n%s", create)
	}

	edit := NewBookForm(form.Empty(), true).View(false)
	if !strings.Contains(edit, "Edit Book") || !strings.Contains(edit, "Update") {
		t.Errorf("edit form view missing title or submit label:\n%s", edit)
	}
}

func TestRenderDetails_NotSpecified(t *testing.T) {
	out := RenderDetails(catalog.Book{ID: 7, Title: "Solaris", Author: "Stanisław Lem"}, "")
	if !strings.Contains(out, "Solaris") {
		t.Errorf("details missing title:\n%s", out)
	}
	if strings.Count(out, NotSpecified) != 2 {
		t.Errorf("want year and genre rendered as %q:\n%s", NotSpecified, out)
	}
}

func TestRenderDeleteConfirm(t *testing.T) {
	out := RenderDeleteConfirm(catalog.Book{ID: 1, Title: "Dune", Author: "Frank Herbert"}, false, "")
	if !strings.Contains(out, `Delete "Dune"?`) {
		t.Errorf("confirm prompt missing:\n%s", out)
	}

	busy := RenderDeleteConfirm(catalog.Book{ID: 1, Title: "Dune"}, true, "")
	if !strings.Contains(busy, "Deleting...") {
		t.Errorf("busy prompt missing:\n%s", busy)
	}
}

func TestRenderNotice(t *testing.T) {
	if got := RenderNotice(notify.Notification{Message: "hidden"}, 80); got != "" {
		t.Errorf("closed notice rendered %q", got)
	}

	out := RenderNotice(notify.Notification{Message: "Book created successfully", Severity: notify.SeveritySuccess, Open: true}, 80)
	if !strings.Contains(out, "Book created successfully") {
		t.Errorf("open notice missing message: %q", out)
	}
}
