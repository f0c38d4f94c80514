// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionNoDot         = errors.New("extension must start with a dot")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// ValidateExtension checks that ext looks like ".txt": a leading dot and
// nothing that could escape the file name.
func ValidateExtension(ext string) error {
	if ext == "" {
		return ErrExtensionEmpty
	}
	if !strings.HasPrefix(ext, ".") || ext == "." {
		return fmt.Errorf("%w: %q", ErrExtensionNoDot, ext)
	}
	if strings.ContainsAny(ext, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrExtensionPathTraversal, ext)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "exam" -> false (name)
//   - "./exam.yaml" -> true (relative path)
//   - "/etc/forso/exam.yaml" -> true (absolute)
//   - "C:\forso\exam.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	// #nosec G306 -- formatted exam sheets are meant to be readable
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
