package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/bookctl/internal/dialog"
	"github.com/blackwell-systems/bookctl/internal/tui"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show the details of one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := ctrl.ViewDetails(cmd.Context(), id); err != nil {
				return failure(err)
			}
			v, ok := ctrl.Snapshot().Dialog.(dialog.Viewing)
			if !ok {
				return fmt.Errorf("book %d: no details to show", id)
			}
			defer ctrl.Close()

			b := v.Book
			header("Book: %d", b.ID)
			printField("title", b.Title)
			printField("author", b.Author)
			printField("year", orNotSpecified(b.YearText()))
			printField("genre", orNotSpecified(b.GenreText()))
			return nil
		},
	}
}

func orNotSpecified(s string) string {
	if s == "" {
		return tui.NotSpecified
	}
	return s
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q", arg)
	}
	return id, nil
}
