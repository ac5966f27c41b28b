package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/bookctl/internal/controller"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// stdin is read for confirmations; swapped in tests
var stdin io.Reader

func newDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a book from the catalog",
		Long: `Remove a book from the catalog.

This action cannot be undone. You are asked to confirm unless --yes is
given; without a terminal, --yes is required.

Examples:
  bookctl delete 3
  bookctl delete 3 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := ctrl.Load(cmd.Context()); err != nil {
				return failure(err)
			}
			if err := ctrl.OpenDeleteConfirm(id); err != nil {
				if errors.Is(err, controller.ErrUnknownBook) {
					return fmt.Errorf("book %d not found", id)
				}
				return err
			}
			cd := ctrl.Snapshot().Dialog.(dialog.ConfirmingDelete)

			if !skipConfirm {
				in := stdin
				if in == nil {
					if !util.IsInputTTY() {
						ctrl.Close()
						return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
					}
					in = cmd.InOrStdin()
				}

				fmt.Fprintf(stdout, "%s %s ", color.YellowString("Delete %q?", cd.Book.Title), "(y/N):")
				answer, _ := bufio.NewReader(in).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					ctrl.Close()
					fmt.Fprintln(stdout, color.YellowString("Cancelled."))
					return nil
				}
			}

			if err := ctrl.ConfirmDelete(cmd.Context()); err != nil {
				return failure(err)
			}
			report()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
