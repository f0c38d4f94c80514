package main

import (
	"errors"
	"os"

	"github.com/alnah/go-forso"
	"github.com/alnah/go-forso/internal/config"
)

// Exit codes for forso CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, including failed documents
	ExitUsage   = 2 // Invalid flags, config, or input
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputIsInput) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, forso.ErrEmptyInput) ||
		errors.Is(err, forso.ErrUnknownMode) ||
		errors.Is(err, forso.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
