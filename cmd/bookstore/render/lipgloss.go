package render

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Books published this recently are highlighted.
const recentYears = 2

type LipglossRenderer struct {
	width int
	now   func() time.Time
	r     *lipgloss.Renderer

	nameStyle       lipgloss.Style
	ownerStyle      lipgloss.Style
	yearStyle       lipgloss.Style
	recentYearStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:           width,
		now:             time.Now,
		r:               r,
		nameStyle:       r.NewStyle().Bold(true),
		ownerStyle:      r.NewStyle().Faint(true),
		yearStyle:       r.NewStyle().Faint(true),
		recentYearStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithClock(now func() time.Time) *LipglossRenderer {
	r.now = now
	return r
}

func (r *LipglossRenderer) RenderBookList(view BookListView) string {
	if view.IsEmpty() {
		return "No books found.\n"
	}

	thisYear := r.now().Year()
	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, thisYear, last))
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item BookListItem, thisYear int, last bool) string {
	yearStyle := r.yearStyle
	if age := thisYear - item.Year; age >= 0 && age < recentYears {
		yearStyle = r.recentYearStyle
	}

	name := r.nameStyle.Render(item.Name)
	year := yearStyle.Render(strconv.Itoa(item.Year))

	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(year))
	headerLine := name + strings.Repeat(" ", padding) + year

	lines := []string{headerLine}
	if item.Owner != "" {
		lines = append(lines, r.ownerStyle.Render("  by "+item.Owner))
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n"
}
