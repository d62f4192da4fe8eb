package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wordladder/core"
)

// arrow separates consecutive words of a rendered ladder.
const arrow = " → "

// Renderer formats ladders. A plain Renderer emits no escape sequences.
type Renderer struct {
	color   bool
	word    lipgloss.Style
	changed lipgloss.Style
	muted   lipgloss.Style
}

// NewRenderer returns a Renderer for w. With color false every style is
// skipped; with color true lipgloss still degrades to plain text when w is
// not a terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		color:   color,
		word:    lr.NewStyle().Foreground(lipgloss.Color("252")),
		changed: lr.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		muted:   lr.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Ladder renders one ladder on a single line, e.g. "spin → spit → spot",
// with each step's changed letter highlighted.
func (r *Renderer) Ladder(ladder []string) string {
	parts := make([]string, len(ladder))
	for i, w := range ladder {
		if i == 0 || !r.color {
			parts[i] = r.style(r.word, w)
			continue
		}
		parts[i] = r.highlight(ladder[i-1], w)
	}
	return strings.Join(parts, r.style(r.muted, arrow))
}

// All renders every ladder on its own numbered line.
func (r *Renderer) All(ladders [][]string) string {
	var b strings.Builder
	width := len(fmt.Sprint(len(ladders)))
	for i, l := range ladders {
		b.WriteString(r.style(r.muted, fmt.Sprintf("%*d. ", width, i+1)))
		b.WriteString(r.Ladder(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// highlight styles the runes of cur that differ from prev.
func (r *Renderer) highlight(prev, cur string) string {
	diff, err := core.Differences(prev, cur)
	if err != nil {
		return r.style(r.word, cur)
	}
	mark := make(map[int]bool, len(diff))
	for _, i := range diff {
		mark[i] = true
	}

	var b strings.Builder
	for i, ch := range []rune(cur) {
		if mark[i] {
			b.WriteString(r.style(r.changed, string(ch)))
		} else {
			b.WriteString(r.style(r.word, string(ch)))
		}
	}
	return b.String()
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
