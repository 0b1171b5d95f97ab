package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderWizard(t *testing.T) {
	t.Run("completed field renders collapsed with value", func(t *testing.T) {
		fields := []Field{{Label: "Name", Value: "Clean Code"}}
		output := stripANSI(RenderWizard("Title", fields, -1))

		assert.Contains(t, output, "◇ Name · Clean Code")
	})

	t.Run("active field renders with diamond and no value", func(t *testing.T) {
		fields := []Field{{Label: "Name"}}
		output := stripANSI(RenderWizard("Title", fields, 0))

		assert.Contains(t, output, "◆ Name")
		assert.NotContains(t, output, separator)
	})

	t.Run("optional active field renders with optional suffix", func(t *testing.T) {
		fields := []Field{{Label: "Author", Optional: true}}
		output := stripANSI(RenderWizard("Title", fields, 0))

		assert.Contains(t, output, "◆ Author (optional)")
	})

	t.Run("title renders after top border", func(t *testing.T) {
		fields := []Field{{Label: "Name", Value: "x"}}
		output := stripANSI(RenderWizard("Add a book", fields, -1))

		assert.Contains(t, output, "┌ Add a book")
		assert.Contains(t, output, "└")
	})

	t.Run("empty-value non-active field produces no output line", func(t *testing.T) {
		fields := []Field{
			{Label: "Name", Value: "x"},
			{Label: "Empty"},
		}
		output := stripANSI(RenderWizard("Title", fields, -1))

		assert.NotContains(t, output, "Empty")
	})
}

func TestBookInput_Fields(t *testing.T) {
	in := BookInput{Name: "  Refactoring ", Owner: "Martin Fowler", Year: " 1999"}
	output := stripANSI(RenderWizard("Add a book", in.Fields(), -1))

	assert.Contains(t, output, "◇ Name · Refactoring\n")
	assert.Contains(t, output, "◇ Author · Martin Fowler")
	assert.Contains(t, output, "◇ Year · 1999")
}

func TestRenderAdded(t *testing.T) {
	output := stripANSI(RenderAdded("Refactoring by Martin Fowler (1999)", []string{"Alice", "Bob"}))

	assert.Contains(t, output, "┌ ◆ Added Refactoring by Martin Fowler (1999)")
	assert.Contains(t, output, "│ ✓ notified Alice")
	assert.Contains(t, output, "│ ✓ notified Bob")
}

func TestValidateName(t *testing.T) {
	assert.EqualError(t, ValidateName(""), "Name cannot be empty")
	assert.EqualError(t, ValidateName("   "), "Name cannot be empty")
	assert.NoError(t, ValidateName("Dune"))
}

func TestValidateYear(t *testing.T) {
	t.Run("accepts negative and padded years", func(t *testing.T) {
		n, err := ValidateYear(" -750 ")
		require.NoError(t, err)
		assert.Equal(t, -750, n)
	})

	t.Run("rejects non numbers", func(t *testing.T) {
		_, err := ValidateYear("MMVIII")
		assert.EqualError(t, err, "Year must be a whole number")

		_, err = BookInput{Year: ""}.ParsedYear()
		assert.Error(t, err)
	})
}

func TestNewBookForm(t *testing.T) {
	in := &BookInput{}
	assert.NotNil(t, NewBookForm(in))
}
