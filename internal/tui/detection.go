package tui

import (
	"github.com/blackwell-systems/bookctl/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should use interactive TUI mode.
// TUI mode is enabled when:
//   - stdin and stdout are terminals
//   - --no-interactive is not set
//   - no --format flag is set (indicates scripting intent)
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() || !util.IsInputTTY() {
		return false
	}

	if noInteractive, _ := cmd.Flags().GetBool("no-interactive"); noInteractive {
		return false
	}

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		return false
	}

	return true
}
