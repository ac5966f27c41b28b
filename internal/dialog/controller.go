package dialog

import (
	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/form"
)

// Controller is the dialog state machine. Every Open* call replaces the
// active state outright; nothing carries over from the previous dialog.
// It is not safe for concurrent use.
type Controller struct {
	state State
}

// NewController starts Closed.
func NewController() *Controller {
	return &Controller{state: Closed{}}
}

// Current returns the active state.
func (c *Controller) Current() State {
	return c.state
}

// OpenCreate opens an empty form for a new book.
func (c *Controller) OpenCreate() {
	c.state = Editing{Draft: form.Empty()}
}

// OpenEdit opens the form seeded from b.
func (c *Controller) OpenEdit(b catalog.Book) {
	c.state = Editing{Draft: form.FromBook(b), TargetID: b.ID, HasTarget: true}
}

// OpenView shows the details of b.
func (c *Controller) OpenView(b catalog.Book) {
	c.state = Viewing{Book: b}
}

// OpenDeleteConfirm asks for confirmation before deleting b.
func (c *Controller) OpenDeleteConfirm(b catalog.Book) {
	c.state = ConfirmingDelete{Book: b}
}

// Close discards whatever is open, including any staged draft.
func (c *Controller) Close() {
	c.state = Closed{}
}

// SetField stages v into the open form. It reports false when no form is
// open.
func (c *Controller) SetField(f form.Field, v string) bool {
	ed, ok := c.state.(Editing)
	if !ok {
		return false
	}
	ed.Draft = ed.Draft.With(f, v)
	c.state = ed
	return true
}

// SetDraft replaces the whole staged draft. It reports false when no form
// is open.
func (c *Controller) SetDraft(d form.Draft) bool {
	ed, ok := c.state.(Editing)
	if !ok {
		return false
	}
	ed.Draft = d
	c.state = ed
	return true
}
