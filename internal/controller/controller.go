// Package controller turns user intents into remote calls and keeps the
// catalog cache, the dialog state and the notification in step.
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/logging"
	"github.com/blackwell-systems/bookctl/internal/notify"
	"github.com/sirupsen/logrus"
)

var (
	// ErrBusy is returned when a submit or delete is already in flight.
	ErrBusy = errors.New("another change is still in progress")
	// ErrNoForm is returned by SubmitEditor when no form is open.
	ErrNoForm = errors.New("no book form is open")
	// ErrNoConfirm is returned by ConfirmDelete when nothing awaits confirmation.
	ErrNoConfirm = errors.New("no delete is awaiting confirmation")
	// ErrUnknownBook is returned when an intent names a book missing from the cache.
	ErrUnknownBook = errors.New("book not in catalog")
)

// Remote is the resource service as seen by the controller.
type Remote interface {
	List(ctx context.Context) ([]catalog.Book, error)
	Get(ctx context.Context, id int) (catalog.Book, error)
	Create(ctx context.Context, p catalog.Payload) (catalog.Book, error)
	Update(ctx context.Context, id int, p catalog.Payload) (catalog.Book, error)
	Delete(ctx context.Context, id int) error
}

// State is an immutable snapshot handed to subscribers.
type State struct {
	Books   []catalog.Book
	Loading bool
	Busy    bool
	Dialog  dialog.State
	Notice  notify.Notification
}

// Option customizes a Controller.
type Option func(*Controller)

// WithQueue uses q for notifications instead of a default 4s queue.
func WithQueue(q *notify.Queue) Option {
	return func(c *Controller) { c.notices = q }
}

// WithLogger attaches a logger for operation outcomes.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the whole client state: catalog, dialog and notification.
// State transitions are serialized; remote calls run outside the lock, so
// intents may arrive while a call is outstanding.
type Controller struct {
	remote  Remote
	store   *catalog.Store
	notices *notify.Queue
	log     *logrus.Entry

	mu     sync.Mutex
	dialog *dialog.Controller
	busy   bool
	subs   map[int]func(State)
	nextID int
}

// New creates a controller with an empty catalog, no dialog and no
// notification. Call Load to fetch the catalog.
func New(remote Remote, opts ...Option) *Controller {
	c := &Controller{
		remote: remote,
		store:  catalog.NewStore(remote),
		dialog: dialog.NewController(),
		log:    logging.Discard(),
		subs:   make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notices == nil {
		c.notices = notify.New(notify.DefaultTimeout)
	}
	c.store.OnChange(c.emit)
	c.notices.OnChange(c.emit)
	return c
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned func unsubscribes. fn must not block.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	return State{
		Books:   c.store.Books(),
		Loading: c.store.Loading(),
		Busy:    c.busy,
		Dialog:  c.dialog.Current(),
		Notice:  c.notices.Current(),
	}
}

func (c *Controller) emit() {
	c.mu.Lock()
	st := c.snapshotLocked()
	subs := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// mutate runs fn under the lock and notifies subscribers.
func (c *Controller) mutate(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
	c.emit()
}
