package assets

import (
	"embed"
	"fmt"
)

//go:embed samples/*.txt
var samples embed.FS

//go:embed texts/*.txt
var texts embed.FS

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadSample loads a sample document. Content is returned byte-for-byte,
// without a trailing newline being added or removed.
func (e *EmbeddedLoader) LoadSample(name string) (string, error) {
	return readAsset(samples, "samples", name, ".txt", ErrSampleNotFound)
}

// LoadText loads a help text.
func (e *EmbeddedLoader) LoadText(name string) (string, error) {
	return readAsset(texts, "texts", name, ".txt", ErrTextNotFound)
}

// LoadTemplate loads an HTML template.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readAsset(templates, "templates", name, ".html", ErrTemplateNotFound)
}

func readAsset(fsys embed.FS, dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fsys.ReadFile(dir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
