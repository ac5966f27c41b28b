package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every book in the catalog",
		Long: `List every book in the catalog.

Examples:
  bookctl list
  bookctl list --format json
  bookctl list --format yaml > books.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctrl.Load(cmd.Context()); err != nil {
				return failure(err)
			}
			books := ctrl.Snapshot().Books

			switch format {
			case "", "table":
				if len(books) == 0 {
					warn("No books registered")
					return nil
				}
				fmt.Fprintln(stdout, renderBookTable(books))
				fmt.Fprintln(stdout, color.HiBlackString("%d books", len(books)))
				return nil
			case "json":
				data, err := catalog.MarshalJSON(books)
				if err != nil {
					return err
				}
				_, err = stdout.Write(data)
				return err
			case "yaml":
				data, err := catalog.Marshal(books)
				if err != nil {
					return err
				}
				_, err = stdout.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: table, json or yaml")
	return cmd
}

func renderBookTable(books []catalog.Book) string {
	rows := make([][]string, len(books))
	for i, b := range books {
		rows[i] = []string{
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			tui.OrPlaceholder(b.YearText()),
			tui.OrPlaceholder(b.GenreText()),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tui.ColorGray)).
		Headers("ID", "Title", "Author", "Year", "Genre").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
