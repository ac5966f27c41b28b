// Package export renders the catalog as standalone documents.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/bookctl/internal/catalog"
)

// Markdown renders books as a README-style document with a stats section
// and one table row per book.
func Markdown(books []catalog.Book, now time.Time) string {
	var s strings.Builder

	s.WriteString("# Book Catalog\n\n")
	s.WriteString("## Quick Stats\n\n")
	fmt.Fprintf(&s, "- **Books**: %d\n", len(books))
	fmt.Fprintf(&s, "- **Last Updated**: %s\n\n", now.Format("2006-01-02"))

	s.WriteString("## Books\n\n")
	if len(books) == 0 {
		s.WriteString("_No books registered._\n")
		return s.String()
	}

	s.WriteString("| ID | Title | Author | Year | Genre |\n")
	s.WriteString("|---:|-------|--------|-----:|-------|\n")
	for _, b := range books {
		fmt.Fprintf(&s, "| %d | %s | %s | %s | %s |\n",
			b.ID,
			escapeCell(b.Title),
			escapeCell(b.Author),
			orDash(b.YearText()),
			orDash(escapeCell(b.GenreText())),
		)
	}
	return s.String()
}

// escapeCell keeps a value on one table row.
func escapeCell(v string) string {
	v = strings.ReplaceAll(v, "|", `\|`)
	v = strings.ReplaceAll(v, "\r\n", " ")
	return strings.ReplaceAll(v, "\n", " ")
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
