// Package notify holds the single transient status message shown to the
// user, with auto-dismiss.
package notify

import (
	"sync"
	"time"
)

// DefaultTimeout is how long a notification stays open unless dismissed.
const DefaultTimeout = 4 * time.Second

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is the current message. Message and Severity survive a
// dismiss so a closing banner can still render its last text.
type Notification struct {
	Message  string
	Severity Severity
	Open     bool
}

// Stopper cancels a pending timer. *time.Timer satisfies it.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules fn after d. time.AfterFunc is the default.
type AfterFunc func(d time.Duration, fn func()) Stopper

// Option customizes a Queue.
type Option func(*Queue)

// WithAfterFunc replaces the timer source, mainly for tests.
func WithAfterFunc(af AfterFunc) Option {
	return func(q *Queue) { q.afterFunc = af }
}

// Queue keeps at most one live notification.
type Queue struct {
	timeout   time.Duration
	afterFunc AfterFunc

	mu       sync.Mutex
	current  Notification
	seq      uint64
	timer    Stopper
	onChange func()
}

// New creates a queue whose notifications close after timeout.
// A non-positive timeout disables auto-dismiss.
func New(timeout time.Duration, opts ...Option) *Queue {
	q := &Queue{
		timeout: timeout,
		afterFunc: func(d time.Duration, fn func()) Stopper {
			return time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// OnChange registers fn to be called after every change. fn runs without
// the queue lock held, possibly on the timer goroutine.
func (q *Queue) OnChange(fn func()) {
	q.mu.Lock()
	q.onChange = fn
	q.mu.Unlock()
}

// Show replaces the current notification and restarts the dismiss timer.
func (q *Queue) Show(message string, sev Severity) {
	q.mu.Lock()
	q.stopTimer()
	q.seq++
	seq := q.seq
	q.current = Notification{Message: message, Severity: sev, Open: true}
	if q.timeout > 0 {
		q.timer = q.afterFunc(q.timeout, func() { q.expire(seq) })
	}
	fn := q.onChange
	q.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Dismiss closes the current notification early.
func (q *Queue) Dismiss() {
	q.mu.Lock()
	if !q.current.Open {
		q.mu.Unlock()
		return
	}
	q.stopTimer()
	q.current.Open = false
	fn := q.onChange
	q.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Current returns the latest notification.
func (q *Queue) Current() Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// expire closes the notification only if it is still the one that armed
// the timer.
func (q *Queue) expire(seq uint64) {
	q.mu.Lock()
	if seq != q.seq || !q.current.Open {
		q.mu.Unlock()
		return
	}
	q.current.Open = false
	q.timer = nil
	fn := q.onChange
	q.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (q *Queue) stopTimer() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}
