package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// Renderer turns topic content into terminal text. ext is the topic
// file's extension, dot included.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer prints topics verbatim.
type PlainRenderer struct{}

func (*PlainRenderer) Render(content, _ string) string { return content }

// GlamourRenderer renders markdown topics with glamour and leaves other
// files alone.
type GlamourRenderer struct {
	// Style is a glamour standard style name, or "auto"
	Style string
	// Width wraps lines; zero keeps glamour's default
	Width int
}

// NewGlamourRenderer wraps at 80 columns and picks the "notty" style when
// NO_COLOR is set.
func NewGlamourRenderer() *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto", Width: 80}
	if os.Getenv("NO_COLOR") != "" {
		r.Style = "notty"
	}
	return r
}

// Render falls back to the raw content when glamour fails.
func (r *GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(r.Style)}
	if r.Style == "" || r.Style == "auto" {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
