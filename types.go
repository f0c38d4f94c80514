package forso

import "github.com/alnah/go-forso/internal/transform"

// DefaultMaxInputSize bounds the text accepted by Formatter.Format (10 MiB).
const DefaultMaxInputSize = 10 << 20

// Input is one document to format.
type Input struct {
	Text  string // Raw pasted text (required, not blank)
	Mode  Mode   // Pipeline to run (empty = formatter default)
	HTML  bool   // Also render Result.HTML
	Title string // HTML document title (empty = formatter default)
}

// Result holds the formatted document.
type Result struct {
	Text          string // Formatted plain text
	HTML          string // Standalone HTML document, set only when Input.HTML is true
	Mode          Mode   // Pipeline that produced Text
	Questions     int    // Question paragraphs numbered
	MergedMarkers int    // Option markers joined with their description
}

// Option configures a Formatter.
type Option func(*Formatter)

// formatterConfig holds Formatter settings.
type formatterConfig struct {
	defaultMode  Mode
	maxInputSize int
	htmlTitle    string
}

// WithDefaultMode sets the mode used when Input.Mode is empty.
// Invalid modes are reported by Format, not here.
func WithDefaultMode(m Mode) Option {
	return func(f *Formatter) {
		f.cfg.defaultMode = m
	}
}

// WithMaxInputSize sets the maximum input size in bytes.
// Values below 1 keep DefaultMaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.cfg.maxInputSize = n
		}
	}
}

// WithHTMLTitle sets the HTML title used when Input.Title is empty.
func WithHTMLTitle(title string) Option {
	return func(f *Formatter) {
		f.cfg.htmlTitle = title
	}
}

// withTransformer replaces the pipeline behind a mode (used by tests).
func withTransformer(m Mode, t transform.Transformer) Option {
	return func(f *Formatter) {
		f.transformers[m] = t
	}
}

// withHTMLRenderer replaces the HTML renderer (used by tests).
func withHTMLRenderer(r htmlRenderer) Option {
	return func(f *Formatter) {
		f.renderer = r
	}
}
