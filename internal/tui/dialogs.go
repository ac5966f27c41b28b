package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// NotSpecified is shown in the details dialog for absent values.
const NotSpecified = "Not specified"

// RenderDetails renders the read-only details dialog for b.
func RenderDetails(b catalog.Book, activeCmd string) string {
	var s strings.Builder

	s.WriteString(StyleHeader.Render("Book Details"))
	s.WriteString("\n\n")

	year := b.YearText()
	if year == "" {
		year = NotSpecified
	}
	genre := b.GenreText()
	if genre == "" {
		genre = NotSpecified
	}

	rows := []struct{ label, value string }{
		{"ID", StyleMeta.Render(strconv.Itoa(b.ID))},
		{"Title", b.Title},
		{"Author", b.Author},
		{"Year", year},
		{"Genre", genre},
	}
	label := StyleHighlight.Width(8)
	for _, r := range rows {
		s.WriteString(label.Render(r.label + ":"))
		s.WriteString(" ")
		s.WriteString(r.value)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "e", Label: "e Edit"},
		{Key: "", Label: "esc Close"},
	}, activeCmd))
	s.WriteString("\n")

	return RenderPanel(s.String())
}

// RenderDeleteConfirm renders the confirmation dialog for deleting b.
func RenderDeleteConfirm(b catalog.Book, busy bool, activeCmd string) string {
	var s strings.Builder

	s.WriteString(StyleDanger.Render("Confirm Delete"))
	s.WriteString("\n\n")
	s.WriteString(StyleNormal.Render(fmt.Sprintf("Delete %q?", b.Title)))
	s.WriteString("\n")
	s.WriteString(StyleHelp.Render(fmt.Sprintf("#%d by %s", b.ID, b.Author)))
	s.WriteString("\n\n")
	s.WriteString(StyleDanger.Render("This cannot be undone"))
	s.WriteString("\n\n")

	if busy {
		s.WriteString(StyleHelp.Render("  Deleting..."))
	} else {
		s.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "enter", Label: "Enter/y Confirm"},
			{Key: "", Label: "Esc/n Cancel"},
		}, activeCmd))
	}
	s.WriteString("\n")

	return RenderPanel(s.String())
}

// RenderNotice renders the notification bar, or "" when none is open.
func RenderNotice(n notify.Notification, width int) string {
	if !n.Open {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(SeverityColor(n.Severity)).
		Bold(true).
		Padding(0, 1)

	hint := StyleHelp.Render("  x dismiss")
	msg := n.Message
	if width > 0 {
		msg = Truncate(msg, width-lipgloss.Width(hint)-2)
	}
	return style.Render(msg) + hint
}
