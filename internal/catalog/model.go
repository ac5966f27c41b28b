package catalog

import "strconv"

// Book is one entry of the remote collection. ID is assigned by the
// service; the client never sets or changes it.
type Book struct {
	ID     int     `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Author string  `json:"author" yaml:"author"`
	Year   *int    `json:"year" yaml:"year"`
	Genre  *string `json:"genre" yaml:"genre"`
}

// Payload is the body sent on create and update. Every field is sent;
// the service replaces the whole record.
type Payload struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   *int    `json:"year"`
	Genre  *string `json:"genre"`
}

// YearText returns the year as text, or "" when absent.
func (b Book) YearText() string {
	if b.Year == nil {
		return ""
	}
	return strconv.Itoa(*b.Year)
}

// GenreText returns the genre, or "" when absent.
func (b Book) GenreText() string {
	if b.Genre == nil {
		return ""
	}
	return *b.Genre
}

// Matches reports whether b carries exactly the fields of p.
func (b Book) Matches(p Payload) bool {
	return b.Title == p.Title &&
		b.Author == p.Author &&
		equalInt(b.Year, p.Year) &&
		equalString(b.Genre, p.Genre)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
