package tui

import (
	"strconv"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
)

// Placeholder shown in table cells for absent values.
const Placeholder = "-"

const (
	idWidth   = 6
	yearWidth = 6
	minWidth  = 10
)

// BookColumns lays out the table columns to fill width.
func BookColumns(width int) []table.Column {
	// cell padding is one space on each side
	free := width - idWidth - yearWidth - 5*2
	if free < 3*minWidth {
		free = 3 * minWidth
	}
	title := free * 4 / 10
	author := free * 3 / 10
	genre := free - title - author

	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Title", Width: title},
		{Title: "Author", Width: author},
		{Title: "Year", Width: yearWidth},
		{Title: "Genre", Width: genre},
	}
}

// BookRows renders books as table rows, truncating each cell to its column.
func BookRows(books []catalog.Book, cols []table.Column) []table.Row {
	rows := make([]table.Row, len(books))
	for i, b := range books {
		cells := []string{
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			OrPlaceholder(b.YearText()),
			OrPlaceholder(b.GenreText()),
		}
		for j := range cells {
			if j < len(cols) {
				cells[j] = Truncate(cells[j], cols[j].Width)
			}
		}
		rows[i] = table.Row(cells)
	}
	return rows
}

// OrPlaceholder returns s, or Placeholder when s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// Truncate shortens s to at most width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// NewBookTable builds the focused book table.
func NewBookTable(width, height int) table.Model {
	cols := BookColumns(width)
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(StyleBorder.GetBorderStyle()).
		BorderForeground(ColorGray).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ColorYellow).
		Bold(true)
	t.SetStyles(s)
	return t
}
