// Package dialog tracks which modal dialog, if any, is active and the data
// it holds. Exactly one State is active at a time.
package dialog

import (
	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/form"
)

// Kind names the variant of a State.
type Kind string

const (
	KindClosed           Kind = "closed"
	KindEditing          Kind = "editing"
	KindViewing          Kind = "viewing"
	KindConfirmingDelete Kind = "confirming-delete"
)

// State is one of Closed, Editing, Viewing or ConfirmingDelete.
type State interface {
	Kind() Kind
	isState()
}

// Closed means no dialog is open.
type Closed struct{}

// Editing is the create/edit form. HasTarget is false when creating.
type Editing struct {
	Draft     form.Draft
	TargetID  int
	HasTarget bool
}

// Viewing shows the details of a book.
type Viewing struct {
	Book catalog.Book
}

// ConfirmingDelete asks before deleting Book.
type ConfirmingDelete struct {
	Book catalog.Book
}

func (Closed) Kind() Kind           { return KindClosed }
func (Editing) Kind() Kind          { return KindEditing }
func (Viewing) Kind() Kind          { return KindViewing }
func (ConfirmingDelete) Kind() Kind { return KindConfirmingDelete }

func (Closed) isState()           {}
func (Editing) isState()          {}
func (Viewing) isState()          {}
func (ConfirmingDelete) isState() {}

// Target returns the ID of the book being edited, if any.
func (e Editing) Target() (int, bool) {
	return e.TargetID, e.HasTarget
}
