package narrate

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the column budget for narrative delivery.
const DefaultWidth = 80

// Context is the data catalog prose can reference,
// e.g. "{{ .Name }} lifts the lantern."
type Context struct {
	Name       string
	Background string
}

// A Renderer expands narrative templates against a fixed data value
// and word-wraps the result for a terminal.
type Renderer struct {
	width int
	data  any
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth overrides the wrap column. Non-positive widths are ignored.
func WithWidth(w int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.width = w
		}
	}
}

// NewRenderer creates a Renderer whose templates expand against data.
func NewRenderer(data any, opts ...Option) *Renderer {
	r := &Renderer{
		width: DefaultWidth,
		data:  data,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Line expands and wraps a single narrative line. A line whose template
// fails to expand is delivered unmodified.
func (r *Renderer) Line(s string) string {
	out, err := Expand(s, r.data)
	if err != nil {
		out = s
	}
	return wordwrap.String(out, r.width)
}

// Narrative renders a block of narrative lines. Empty lines survive as
// paragraph breaks.
func (r *Renderer) Narrative(lines []string) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = r.Line(line)
	}
	return strings.Join(rendered, "\n")
}

// Menu renders labels as a numbered pick list, one entry per line.
func (r *Renderer) Menu(labels []string) string {
	var b strings.Builder
	for i, label := range labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, " %d) %s", i+1, label)
	}
	return b.String()
}
