package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrSampleNotFound indicates no sample document exists for the name.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrTextNotFound indicates the requested help text does not exist.
	ErrTextNotFound = errors.New("text not found")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
