package unified

import "github.com/blackwell-systems/bookctl/internal/controller"

// StateMsg carries a fresh controller snapshot into the update loop.
type StateMsg struct {
	State controller.State
}

// OpDoneMsg is emitted when a remote-backed intent returns.
type OpDoneMsg struct {
	Op  string
	Err error
}

// QuitAppMsg is emitted when the entire application should quit
type QuitAppMsg struct{}
