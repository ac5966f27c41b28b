// Package form stages and validates the editable fields of a book while a
// create or edit dialog is open.
package form

import "github.com/blackwell-systems/bookctl/internal/catalog"

// Field identifies one editable field of a Draft.
type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldYear
	FieldGenre
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldTitle, FieldAuthor, FieldYear, FieldGenre}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldYear:
		return "year"
	case FieldGenre:
		return "genre"
	default:
		return "unknown"
	}
}

// Draft holds raw, unvalidated input for a book.
type Draft struct {
	Title  string
	Author string
	Year   string
	Genre  string
}

// Empty returns a blank draft for a new book.
func Empty() Draft {
	return Draft{}
}

// FromBook seeds a draft with the current values of b.
func FromBook(b catalog.Book) Draft {
	return Draft{
		Title:  b.Title,
		Author: b.Author,
		Year:   b.YearText(),
		Genre:  b.GenreText(),
	}
}

// Get returns the raw value of f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldAuthor:
		return d.Author
	case FieldYear:
		return d.Year
	case FieldGenre:
		return d.Genre
	}
	return ""
}

// With returns a copy of d with f set to v.
func (d Draft) With(f Field, v string) Draft {
	switch f {
	case FieldTitle:
		d.Title = v
	case FieldAuthor:
		d.Author = v
	case FieldYear:
		d.Year = v
	case FieldGenre:
		d.Genre = v
	}
	return d
}
