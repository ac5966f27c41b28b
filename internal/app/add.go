package app

import (
	"github.com/blackwell-systems/bookctl/internal/form"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var d form.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog. Title and author are required.

Examples:
  bookctl add --title "Dune" --author "Frank Herbert" --year 1965
  bookctl add --title "Solaris" --author "Stanisław Lem" --genre "Science fiction"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl.OpenCreate()
			ctrl.SetDraft(d)
			if err := ctrl.SubmitEditor(cmd.Context()); err != nil {
				return failure(err)
			}
			report()
			return nil
		},
	}

	bindDraftFlags(cmd, &d)
	return cmd
}

// bindDraftFlags registers one flag per editable field.
func bindDraftFlags(cmd *cobra.Command, d *form.Draft) {
	cmd.Flags().StringVar(&d.Title, "title", "", "Book title")
	cmd.Flags().StringVar(&d.Author, "author", "", "Author name")
	cmd.Flags().StringVar(&d.Year, "year", "", "Publication year (empty to clear)")
	cmd.Flags().StringVar(&d.Genre, "genre", "", "Genre (empty to clear)")
}
