package unified

import (
	"github.com/blackwell-systems/bookctl/internal/controller"
	tea "github.com/charmbracelet/bubbletea"
)

// stateFeed bridges controller change notifications into the program.
// Notifications coalesce into one pending signal and the waiting command
// reads a fresh snapshot when it wakes.
type stateFeed struct {
	ctrl *controller.Controller
	ch   chan struct{}
}

func newStateFeed(ctrl *controller.Controller) *stateFeed {
	return &stateFeed{ctrl: ctrl, ch: make(chan struct{}, 1)}
}

// signal never blocks, so it is safe to call from inside Update.
func (f *stateFeed) signal(controller.State) {
	select {
	case f.ch <- struct{}{}:
	default:
	}
}

// wait returns a command that resolves on the next change.
func (f *stateFeed) wait() tea.Cmd {
	return func() tea.Msg {
		<-f.ch
		return StateMsg{State: f.ctrl.Snapshot()}
	}
}
