package dialog_test

import (
	"testing"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/form"
)

var dune = catalog.Book{ID: 1, Title: "Dune", Author: "Herbert", Year: catalog.IntPtr(1965)}

func TestNewController_Closed(t *testing.T) {
	c := dialog.NewController()
	if c.Current().Kind() != dialog.KindClosed {
		t.Errorf("initial state = %s, want closed", c.Current().Kind())
	}
}

func TestOpenCreate(t *testing.T) {
	c := dialog.NewController()
	c.OpenView(dune)
	c.OpenCreate()

	ed, ok := c.Current().(dialog.Editing)
	if !ok {
		t.Fatalf("state = %T, want Editing", c.Current())
	}
	if _, has := ed.Target(); has {
		t.Error("create form should have no target")
	}
	if ed.Draft != form.Empty() {
		t.Errorf("draft = %+v, want empty", ed.Draft)
	}
}

func TestOpenEdit_SeedsDraft(t *testing.T) {
	c := dialog.NewController()
	c.OpenEdit(dune)

	ed := c.Current().(dialog.Editing)
	if id, has := ed.Target(); !has || id != 1 {
		t.Errorf("target = %d/%v, want 1/true", id, has)
	}
	if ed.Draft.Year != "1965" || ed.Draft.Title != "Dune" {
		t.Errorf("draft = %+v", ed.Draft)
	}
}

func TestTransitions_DiscardPreviousData(t *testing.T) {
	c := dialog.NewController()
	c.OpenEdit(dune)
	c.SetField(form.FieldTitle, "changed")

	c.OpenDeleteConfirm(dune)
	if cd, ok := c.Current().(dialog.ConfirmingDelete); !ok || cd.Book.ID != 1 {
		t.Fatalf("state = %#v, want ConfirmingDelete(1)", c.Current())
	}

	c.OpenCreate()
	if ed := c.Current().(dialog.Editing); ed.Draft.Title != "" {
		t.Errorf("draft leaked across dialogs: %+v", ed.Draft)
	}

	c.OpenEdit(dune)
	if ed := c.Current().(dialog.Editing); ed.Draft.Title != "Dune" {
		t.Errorf("edit should reseed from the book, got %q", ed.Draft.Title)
	}
}

func TestClose(t *testing.T) {
	c := dialog.NewController()
	for _, open := range []func(){
		c.OpenCreate,
		func() { c.OpenEdit(dune) },
		func() { c.OpenView(dune) },
		func() { c.OpenDeleteConfirm(dune) },
	} {
		open()
		c.Close()
		if _, ok := c.Current().(dialog.Closed); !ok {
			t.Errorf("after Close state = %T", c.Current())
		}
	}
}

func TestSetField_OnlyWhileEditing(t *testing.T) {
	c := dialog.NewController()
	if c.SetField(form.FieldTitle, "x") {
		t.Error("SetField should fail when closed")
	}
	c.OpenView(dune)
	if c.SetField(form.FieldTitle, "x") {
		t.Error("SetField should fail while viewing")
	}

	c.OpenCreate()
	if !c.SetField(form.FieldGenre, "sci-fi") {
		t.Fatal("SetField should succeed while editing")
	}
	if !c.SetDraft(form.Draft{Title: "a", Author: "b"}) {
		t.Fatal("SetDraft should succeed while editing")
	}
	if ed := c.Current().(dialog.Editing); ed.Draft.Genre != "" || ed.Draft.Title != "a" {
		t.Errorf("SetDraft should replace the whole draft: %+v", ed.Draft)
	}
}
