package assets

// AssetLoader defines the contract for loading forso assets.
type AssetLoader interface {
	// LoadSample loads a sample input document by name (without .txt extension).
	// Returns ErrSampleNotFound if the sample doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadSample(name string) (string, error)

	// LoadText loads a help text by name (without .txt extension).
	// Returns ErrTextNotFound if the text doesn't exist.
	LoadText(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// Well-known asset names.
const (
	FAQText          = "faq"
	AboutText        = "about"
	DocumentTemplate = "document"
)
