package forso

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-forso/internal/render"
	"github.com/alnah/go-forso/internal/transform"
)

// htmlRenderer abstracts conversion of formatted text to an HTML document.
type htmlRenderer interface {
	Document(ctx context.Context, title, text string) (string, error)
}

// Formatter validates input and runs the selected pipeline.
// Safe for concurrent use.
type Formatter struct {
	cfg          formatterConfig
	transformers map[Mode]transform.Transformer
	renderer     htmlRenderer
}

// NewFormatter creates a Formatter with default configuration.
// Use options to customize behavior (e.g., WithDefaultMode).
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		cfg: formatterConfig{
			defaultMode:  ModeQuestions,
			maxInputSize: DefaultMaxInputSize,
		},
		transformers: map[Mode]transform.Transformer{
			ModeQuestions: &transform.MarkerReunifier{},
			ModeOptions:   &transform.CompactNormalizer{},
			ModeNumber:    &transform.ParagraphNumberer{},
		},
	}

	for _, opt := range opts {
		opt(f)
	}

	// Create HTML renderer if not injected (e.g., by tests)
	if f.renderer == nil {
		r, err := render.New()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
		}
		f.renderer = r
	}

	return f, nil
}

// DefaultMode returns the mode used when Input.Mode is empty.
func (f *Formatter) DefaultMode() Mode {
	return f.cfg.defaultMode
}

// Format runs the pipeline selected by input.Mode over input.Text.
// Transform panics are reported as ErrTransformFailed instead of crashing
// the caller, so a batch can keep going with its other documents.
func (f *Formatter) Format(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode, err := f.resolveMode(input.Mode)
	if err != nil {
		return nil, err
	}
	if err := f.validateInput(input); err != nil {
		return nil, err
	}

	text := transform.NormalizeLineEndings(input.Text)
	out, stats, err := runTransform(f.transformers[mode], text)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Text:          out,
		Mode:          mode,
		Questions:     stats.Questions,
		MergedMarkers: stats.MergedMarkers,
	}

	if input.HTML {
		title := input.Title
		if title == "" {
			title = f.cfg.htmlTitle
		}
		htmlDoc, err := f.renderer.Document(ctx, title, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrHTMLRender, err)
		}
		result.HTML = htmlDoc
	}

	return result, nil
}

// resolveMode applies the default mode and checks the result.
func (f *Formatter) resolveMode(m Mode) (Mode, error) {
	if m == "" {
		m = f.cfg.defaultMode
	}
	if _, ok := f.transformers[m]; !ok || !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return m, nil
}

// validateInput checks that the text is present and within bounds.
func (f *Formatter) validateInput(input Input) error {
	if strings.TrimSpace(input.Text) == "" {
		return ErrEmptyInput
	}
	if len(input.Text) > f.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Text), f.cfg.maxInputSize)
	}
	return nil
}

// runTransform calls t and converts a panic into ErrTransformFailed.
func runTransform(t transform.Transformer, text string) (out string, stats transform.Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTransformFailed, r)
		}
	}()
	out, stats = t.TransformWithStats(text)
	return out, stats, nil
}
