// Package markdown renders markdown documents for terminal output.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// compactStyle removes the document margin glamour adds by default.
const compactStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer configured for CLI output.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer wrapping at width. plain selects the ASCII style,
// used when colour is disabled or output is not a terminal.
func New(width int, plain bool) (*Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if plain {
		opts = append(opts, glamour.WithStandardStyle("ascii"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	opts = append(opts, glamour.WithStylesFromJSONBytes([]byte(compactStyle)))

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}

// Table builds a GitHub-flavoured markdown table. Pipes inside cells are
// escaped and short rows are padded with empty cells.
func Table(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range header {
			cell := ""
			if i < len(cells) {
				cell = strings.ReplaceAll(cells[i], "|", `\|`)
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for range header {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
