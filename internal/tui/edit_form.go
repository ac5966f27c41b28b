package tui

import (
	"strings"

	"github.com/blackwell-systems/bookctl/internal/form"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BookForm is the text-input form behind the create and edit dialogs.
// It owns the keystrokes; the draft it produces is pushed to the controller
// by the caller after every update.
type BookForm struct {
	inputs    []textinput.Model
	focused   int
	editing   bool
	activeCmd string
}

type fieldSpec struct {
	label       string
	placeholder string
	limit       int
	width       int
}

var fieldSpecs = map[form.Field]fieldSpec{
	form.FieldTitle:  {label: "Title", placeholder: "Book title", limit: 200, width: 42},
	form.FieldAuthor: {label: "Author", placeholder: "Author name", limit: 100, width: 42},
	form.FieldYear:   {label: "Year", placeholder: "1965", limit: 4, width: 8},
	form.FieldGenre:  {label: "Genre", placeholder: "Science fiction", limit: 50, width: 42},
}

// NewBookForm creates a form seeded from d. editing selects the
// "Edit Book" title and "Update" submit label.
func NewBookForm(d form.Draft, editing bool) BookForm {
	m := BookForm{
		inputs:  make([]textinput.Model, len(form.Fields)),
		editing: editing,
	}

	for i, f := range form.Fields {
		def := fieldSpecs[f]
		in := textinput.New()
		in.Placeholder = def.placeholder
		in.CharLimit = def.limit
		in.Width = def.width
		in.Prompt = "│ "
		in.SetValue(d.Get(f))
		m.inputs[i] = in
	}
	m.inputs[0].Focus()

	return m
}

// Init starts the cursor blink.
func (m BookForm) Init() tea.Cmd {
	return textinput.Blink
}

// Focused returns the field holding the cursor.
func (m BookForm) Focused() form.Field {
	return form.Fields[m.focused]
}

// Draft returns the current raw input.
func (m BookForm) Draft() form.Draft {
	var d form.Draft
	for i, f := range form.Fields {
		d = d.With(f, m.inputs[i].Value())
	}
	return d
}

// Update handles field navigation and typing. Submit and cancel keys are
// left to the caller.
func (m BookForm) Update(msg tea.Msg) (BookForm, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focused--
			} else {
				m.focused++
			}

			if m.focused < 0 {
				m.focused = len(m.inputs) - 1
			} else if m.focused >= len(m.inputs) {
				m.focused = 0
			}

			cmds := make([]tea.Cmd, 0, 2)
			for i := range m.inputs {
				if i == m.focused {
					cmds = append(cmds, m.inputs[i].Focus())
				} else {
					m.inputs[i].Blur()
				}
			}
			m.activeCmd = "tab"
			cmds = append(cmds, HighlightCmd())
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// MarkSubmit highlights the submit shortcut.
func (m BookForm) MarkSubmit() (BookForm, tea.Cmd) {
	m.activeCmd = "enter"
	return m, HighlightCmd()
}

// View renders the form. busy disables the submit hint while a save runs.
func (m BookForm) View(busy bool) string {
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 54
	sep := sepStyle.Render(strings.Repeat("─", w))

	title, submit := "New Book", "Create"
	if m.editing {
		title, submit = "Edit Book", "Update"
	}

	var b strings.Builder

	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	for i, f := range form.Fields {
		label := fieldSpecs[f].label
		if f == form.FieldTitle || f == form.FieldAuthor {
			label += "*"
		}
		if i == m.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")

	if busy {
		b.WriteString(StyleHelp.Render("  Saving..."))
	} else {
		b.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "tab", Label: "Tab/↑↓ navigate"},
			{Key: "enter", Label: "enter " + submit},
			{Key: "", Label: "esc Cancel"},
		}, m.activeCmd))
	}
	b.WriteString("\n")

	return RenderPanel(b.String())
}
