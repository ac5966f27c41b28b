package controller

import (
	"context"
	"errors"

	"github.com/blackwell-systems/bookctl/internal/api"
	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/form"
	"github.com/blackwell-systems/bookctl/internal/notify"
)

// User-facing messages.
const (
	MsgLoadFailed    = "Error loading books"
	MsgSaveFailed    = "Error saving book"
	MsgDeleteFailed  = "Error deleting book"
	MsgDetailsFailed = "Error loading book details"

	MsgCreated = "Book created successfully"
	MsgUpdated = "Book updated successfully"
	MsgDeleted = "Book deleted successfully"

	reloadFailedSuffix = ", but the list could not be reloaded"
)

// Load fetches the catalog. On failure an error notification is shown and
// the previous (initially empty) catalog is kept.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.store.Refresh(ctx); err != nil {
		c.log.WithError(err).Warn("loading catalog failed")
		c.notices.Show(failureMessage(err, MsgLoadFailed), notify.SeverityError)
		return err
	}
	c.log.WithField("books", c.store.Len()).Debug("catalog loaded")
	return nil
}

// OpenCreate opens an empty form.
func (c *Controller) OpenCreate() {
	c.mutate(c.dialog.OpenCreate)
}

// OpenEdit opens the form seeded from the cached copy of book id.
func (c *Controller) OpenEdit(id int) error {
	b, ok := c.store.Find(id)
	if !ok {
		return ErrUnknownBook
	}
	c.mutate(func() { c.dialog.OpenEdit(b) })
	return nil
}

// OpenDeleteConfirm asks for confirmation before deleting book id.
func (c *Controller) OpenDeleteConfirm(id int) error {
	b, ok := c.store.Find(id)
	if !ok {
		return ErrUnknownBook
	}
	c.mutate(func() { c.dialog.OpenDeleteConfirm(b) })
	return nil
}

// Close closes whatever dialog is open and drops any staged draft.
func (c *Controller) Close() {
	c.mutate(c.dialog.Close)
}

// SetField stages one field of the open form. It reports false when no
// form is open.
func (c *Controller) SetField(f form.Field, v string) bool {
	var ok bool
	c.mutate(func() { ok = c.dialog.SetField(f, v) })
	return ok
}

// SetDraft stages a whole draft into the open form.
func (c *Controller) SetDraft(d form.Draft) bool {
	var ok bool
	c.mutate(func() { ok = c.dialog.SetDraft(d) })
	return ok
}

// DismissNotice closes the current notification early.
func (c *Controller) DismissNotice() {
	c.notices.Dismiss()
}

// SubmitEditor validates the open form and creates or updates the book.
// A local rejection shows a warning and sends nothing. A remote failure
// shows an error and keeps the form and its draft for a retry.
func (c *Controller) SubmitEditor(ctx context.Context) error {
	c.mu.Lock()
	ed, ok := c.dialog.Current().(dialog.Editing)
	if !ok {
		c.mu.Unlock()
		return ErrNoForm
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	payload, err := form.Validate(ed.Draft)
	if err != nil {
		c.mu.Unlock()
		c.notices.Show(form.MsgRequired, notify.SeverityWarning)
		return err
	}
	c.busy = true
	c.mu.Unlock()
	c.emit()

	id, editing := ed.Target()
	success := MsgCreated
	if editing {
		success = MsgUpdated
		_, err = c.remote.Update(ctx, id, payload)
	} else {
		_, err = c.remote.Create(ctx, payload)
	}

	if err != nil {
		c.mutate(func() { c.busy = false })
		c.log.WithError(err).WithField("book_id", id).Warn("saving book failed")
		c.notices.Show(failureMessage(err, MsgSaveFailed), notify.SeverityError)
		return err
	}

	c.mutate(func() {
		c.busy = false
		c.dialog.Close()
	})
	c.log.WithField("book_id", id).Info(success)
	c.afterMutation(ctx, success)
	return nil
}

// ConfirmDelete deletes the book awaiting confirmation. On failure the
// confirmation stays open so the user can retry.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	cd, ok := c.dialog.Current().(dialog.ConfirmingDelete)
	if !ok {
		c.mu.Unlock()
		return ErrNoConfirm
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.mu.Unlock()
	c.emit()

	if err := c.remote.Delete(ctx, cd.Book.ID); err != nil {
		c.mutate(func() { c.busy = false })
		c.log.WithError(err).WithField("book_id", cd.Book.ID).Warn("deleting book failed")
		c.notices.Show(failureMessage(err, MsgDeleteFailed), notify.SeverityError)
		return err
	}

	c.mutate(func() {
		c.busy = false
		c.dialog.Close()
	})
	c.log.WithField("book_id", cd.Book.ID).Info(MsgDeleted)
	c.afterMutation(ctx, MsgDeleted)
	return nil
}

// ViewDetails fetches book id from the service and shows it. The cached
// copy is not used since it may be stale.
func (c *Controller) ViewDetails(ctx context.Context, id int) error {
	b, err := c.remote.Get(ctx, id)
	if err != nil {
		c.log.WithError(err).WithField("book_id", id).Warn("loading details failed")
		c.notices.Show(failureMessage(err, MsgDetailsFailed), notify.SeverityError)
		return err
	}
	c.mutate(func() { c.dialog.OpenView(b) })
	return nil
}

// afterMutation reloads the catalog and reports the outcome.
func (c *Controller) afterMutation(ctx context.Context, success string) {
	if err := c.store.Refresh(ctx); err != nil {
		c.log.WithError(err).Warn("reload after change failed")
		c.notices.Show(success+reloadFailedSuffix, notify.SeverityWarning)
		return
	}
	c.notices.Show(success, notify.SeveritySuccess)
}

// failureMessage picks the text shown for a failed remote call: the
// service detail when there is one, the generic message otherwise.
func failureMessage(err error, generic string) string {
	if api.IsTransport(err) {
		return generic
	}
	if detail, ok := api.DetailOf(err); ok {
		return detail
	}
	return generic
}

// IsLocalRejection reports whether err came from local validation.
func IsLocalRejection(err error) bool {
	var ve *form.ValidationError
	return errors.As(err, &ve)
}

var _ Remote = (*api.Client)(nil)
var _ catalog.Lister = (*api.Client)(nil)
