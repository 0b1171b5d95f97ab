package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
	checkSymbol    = "✓"
)

var (
	errEmptyName = errors.New("Name cannot be empty")
	errBadYear   = errors.New("Year must be a whole number")
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// BookInput holds the raw values typed into the book form.
type BookInput struct {
	Name  string
	Owner string
	Year  string
}

func (b BookInput) Fields() []Field {
	return []Field{
		{Label: "Name", Value: strings.TrimSpace(b.Name)},
		{Label: "Author", Value: strings.TrimSpace(b.Owner), Optional: true},
		{Label: "Year", Value: strings.TrimSpace(b.Year)},
	}
}

func (b BookInput) ParsedYear() (int, error) {
	return ValidateYear(b.Year)
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errEmptyName
	}
	return nil
}

// ValidateYear accepts any integer, negative years included.
func ValidateYear(year string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, errBadYear
	}
	return n, nil
}

func NewBookForm(in *BookInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&in.Name).
				Validate(ValidateName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Value(&in.Owner),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Year").
				Value(&in.Year).
				Validate(func(s string) error {
					_, err := ValidateYear(s)
					return err
				}),
		),
	).WithTheme(WizardTheme())
}

type Field struct {
	Label    string
	Value    string
	Optional bool
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func RenderWizard(title string, fields []Field, activeIdx int) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for i, f := range fields {
		active := i == activeIdx
		if f.Value != "" || active {
			b.WriteString(renderField(f, active))
			b.WriteString("\n")
		}
	}

	if activeIdx >= 0 && activeIdx < len(fields) {
		b.WriteString(border.Render(borderSide))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

// RenderAdded summarizes a book that was added and who heard about it.
func RenderAdded(book string, notified []string) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(activeSymbol)
	b.WriteString(" Added ")
	b.WriteString(book)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, name := range notified {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(checkSymbol)
		b.WriteString(" notified ")
		b.WriteString(name)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field, active bool) string {
	var b strings.Builder

	if active {
		b.WriteString(activeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		if f.Optional {
			b.WriteString(" (optional)")
		}
	} else {
		b.WriteString(completeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
	}

	return b.String()
}
