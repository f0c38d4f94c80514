// Package render converts formatted question text to HTML.
//
// Text goes through goldmark with hard wraps enabled, so every line of a
// question (stem and options) stays on its own line and blank-line separated
// questions become paragraphs. All Markdown punctuation is escaped first:
// the input is plain text and "1." or "a)" must never turn into list markup.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-forso/internal/assets"
)

// DefaultTitle is used when a document has no title.
const DefaultTitle = "forso"

// ErrConversion indicates goldmark failed to render the text.
var ErrConversion = errors.New("HTML conversion failed")

// Renderer turns formatted text into HTML fragments and documents.
// Safe for concurrent use.
type Renderer struct {
	md  goldmark.Markdown
	doc *template.Template
}

// New creates a Renderer using the embedded document template.
func New() (*Renderer, error) {
	return NewWithLoader(assets.NewEmbeddedLoader())
}

// NewWithLoader creates a Renderer whose document template comes from loader.
func NewWithLoader(loader assets.AssetLoader) (*Renderer, error) {
	src, err := loader.LoadTemplate(assets.DocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	doc, err := template.New(assets.DocumentTemplate).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // One output line per input line
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &Renderer{md: md, doc: doc}, nil
}

// Fragment renders text as HTML paragraphs without the document wrapper.
func (r *Renderer) Fragment(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(escapeText(text)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return buf.String(), nil
}

// documentData feeds the document template.
type documentData struct {
	Title string
	Body  template.HTML
}

// Document renders text as a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *Renderer) Document(ctx context.Context, title, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultTitle
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		body, err := r.Fragment(text)
		if err != nil {
			done <- result{err: err}
			return
		}
		var buf bytes.Buffer
		// #nosec G203 -- body is goldmark output of fully escaped text
		data := documentData{Title: title, Body: template.HTML(body)}
		if err := r.doc.Execute(&buf, data); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// escapeText trims every line and backslash-escapes ASCII punctuation so
// goldmark treats the whole input as literal paragraph text.
func escapeText(text string) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range strings.TrimSpace(line) {
			if r < 0x80 && isASCIIPunct(byte(r)) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
