package unified

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/bookctl/internal/controller"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Run starts the full-screen catalog browser and blocks until the user quits
// or ctx is canceled.
func Run(ctx context.Context, ctrl *controller.Controller, log *logrus.Entry) error {
	m := New(ctx, ctrl, log)

	unsubscribe := ctrl.Subscribe(m.feed.signal)
	defer unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running catalog browser: %w", err)
	}
	return nil
}
