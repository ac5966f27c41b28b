package app

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/bookctl/internal/controller"
	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/form"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var flags form.Draft

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the fields of a book",
		Long: `Change the fields of a book. Only the flags you pass are changed;
pass an empty value to clear the year or genre.

Examples:
  bookctl edit 3 --year 1969
  bookctl edit 3 --genre ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			changed := changedFields(cmd)
			if len(changed) == 0 {
				return fmt.Errorf("nothing to change: pass at least one of --title, --author, --year, --genre")
			}

			if err := ctrl.Load(cmd.Context()); err != nil {
				return failure(err)
			}
			if err := ctrl.OpenEdit(id); err != nil {
				if errors.Is(err, controller.ErrUnknownBook) {
					return fmt.Errorf("book %d not found", id)
				}
				return err
			}

			ed := ctrl.Snapshot().Dialog.(dialog.Editing)
			d := ed.Draft
			for _, f := range changed {
				d = d.With(f, flags.Get(f))
			}
			ctrl.SetDraft(d)

			if err := ctrl.SubmitEditor(cmd.Context()); err != nil {
				return failure(err)
			}
			report()
			return nil
		},
	}

	bindDraftFlags(cmd, &flags)
	return cmd
}

// changedFields lists the fields whose flags were set on the command line.
func changedFields(cmd *cobra.Command) []form.Field {
	var out []form.Field
	for _, f := range form.Fields {
		if cmd.Flags().Changed(f.String()) {
			out = append(out, f)
		}
	}
	return out
}
