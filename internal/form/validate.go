package form

import (
	"strconv"
	"strings"

	"github.com/blackwell-systems/bookctl/internal/catalog"
)

// MsgRequired is shown when title or author is missing.
const MsgRequired = "Title and author are required"

// ValidationError is a local rejection; no request is made for it.
type ValidationError struct {
	Fields []Field
}

func (e *ValidationError) Error() string {
	return MsgRequired
}

// Validate normalizes d into a payload, or rejects it when a required field
// is blank. Year text that is empty or not an integer becomes null rather
// than an error; the service stays authoritative for ranges.
func Validate(d Draft) (catalog.Payload, error) {
	title := strings.TrimSpace(d.Title)
	author := strings.TrimSpace(d.Author)

	var missing []Field
	if title == "" {
		missing = append(missing, FieldTitle)
	}
	if author == "" {
		missing = append(missing, FieldAuthor)
	}
	if len(missing) > 0 {
		return catalog.Payload{}, &ValidationError{Fields: missing}
	}

	return catalog.Payload{
		Title:  title,
		Author: author,
		Year:   parseYear(d.Year),
		Genre:  optional(d.Genre),
	}, nil
}

func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
