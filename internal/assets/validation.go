package assets

import "fmt"

// maxAssetNameLength bounds asset names; real names are a single word.
const maxAssetNameLength = 64

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Only ASCII letters, digits, hyphens and underscores are accepted, which
// rules out separators, dots and traversal sequences.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: name too long (%d chars)", ErrInvalidAssetName, len(name))
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
