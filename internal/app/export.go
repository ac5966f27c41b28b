package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/bookctl/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the catalog as a Markdown or HTML document",
		Long: `Render the catalog as a standalone document.

Examples:
  bookctl export > CATALOG.md
  bookctl export --format html -o catalog.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctrl.Load(cmd.Context()); err != nil {
				return failure(err)
			}
			books := ctrl.Snapshot().Books

			var doc string
			switch format {
			case "markdown", "md":
				doc = export.Markdown(books, time.Now())
			case "html":
				doc = export.HTML(books, time.Now())
			default:
				return fmt.Errorf("unknown format %q (want markdown or html)", format)
			}

			if output == "" || output == "-" {
				_, err := fmt.Fprint(stdout, doc)
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			ok("Exported %d books to %s", len(books), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown or html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
