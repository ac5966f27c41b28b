package form_test

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/blackwell-systems/bookctl/internal/form"
)

func TestFromBook(t *testing.T) {
	b := catalog.Book{ID: 1, Title: "Dune", Author: "Herbert", Year: catalog.IntPtr(1965)}
	d := form.FromBook(b)
	want := form.Draft{Title: "Dune", Author: "Herbert", Year: "1965", Genre: ""}
	if d != want {
		t.Errorf("FromBook = %+v, want %+v", d, want)
	}
}

func TestDraft_WithAndGet(t *testing.T) {
	d := form.Empty()
	for i, f := range form.Fields {
		d = d.With(f, f.String())
		if got := d.Get(f); got != f.String() {
			t.Errorf("[%d] Get(%s) = %q", i, f, got)
		}
	}
	if d.Title != "title" || d.Genre != "genre" {
		t.Errorf("With did not set fields: %+v", d)
	}
}

func TestValidate_Required(t *testing.T) {
	cases := []struct {
		name  string
		draft form.Draft
		want  []form.Field
	}{
		{"empty", form.Draft{}, []form.Field{form.FieldTitle, form.FieldAuthor}},
		{"no title", form.Draft{Author: "Herbert"}, []form.Field{form.FieldTitle}},
		{"blank author", form.Draft{Title: "Dune", Author: "   "}, []form.Field{form.FieldAuthor}},
	}
	for _, c := range cases {
		_, err := form.Validate(c.draft)
		var ve *form.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: err = %v, want *ValidationError", c.name, err)
			continue
		}
		if len(ve.Fields) != len(c.want) {
			t.Errorf("%s: fields = %v, want %v", c.name, ve.Fields, c.want)
			continue
		}
		for i := range c.want {
			if ve.Fields[i] != c.want[i] {
				t.Errorf("%s: fields = %v, want %v", c.name, ve.Fields, c.want)
			}
		}
		if err.Error() != form.MsgRequired {
			t.Errorf("%s: message = %q", c.name, err.Error())
		}
	}
}

func TestValidate_Year(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"1999", catalog.IntPtr(1999)},
		{" 1965 ", catalog.IntPtr(1965)},
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"19x9", nil},
		{"-5", catalog.IntPtr(-5)},
	}
	for _, c := range cases {
		p, err := form.Validate(form.Draft{Title: "T", Author: "A", Year: c.in})
		if err != nil {
			t.Fatalf("Validate(year=%q): %v", c.in, err)
		}
		switch {
		case c.want == nil && p.Year != nil:
			t.Errorf("year %q -> %d, want null", c.in, *p.Year)
		case c.want != nil && (p.Year == nil || *p.Year != *c.want):
			t.Errorf("year %q -> %v, want %d", c.in, p.Year, *c.want)
		}
	}
}

func TestValidate_Normalizes(t *testing.T) {
	p, err := form.Validate(form.Draft{Title: "  Dune ", Author: "Herbert", Year: "1965", Genre: ""})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.Title != "Dune" {
		t.Errorf("Title = %q, want trimmed", p.Title)
	}
	if p.Genre != nil {
		t.Errorf("empty genre should be null, got %q", *p.Genre)
	}

	p, _ = form.Validate(form.Draft{Title: "Dune", Author: "Herbert", Genre: " sci-fi "})
	if p.Genre == nil || *p.Genre != "sci-fi" {
		t.Errorf("Genre = %v, want sci-fi", p.Genre)
	}
}
