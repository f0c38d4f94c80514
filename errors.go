package forso

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("input text cannot be empty")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrInputTooLarge   = errors.New("input text exceeds maximum size")
	ErrTransformFailed = errors.New("failed to process text")
	ErrHTMLRender      = errors.New("HTML rendering failed")
)
