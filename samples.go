package forso

import (
	"fmt"

	"github.com/alnah/go-forso/internal/assets"
)

var sampleLoader = assets.NewEmbeddedLoader()

// Sample returns the built-in example input for a mode.
// Formatting it with the same mode shows what the pipeline does.
func Sample(m Mode) (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return sampleLoader.LoadSample(string(m))
}
