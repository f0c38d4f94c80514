package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-forso/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	StdinPiped  bool // Stdin is a pipe or file, not a terminal
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		StdinPiped:  stdinIsPiped(),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}
}

// stdinIsPiped reports whether stdin is redirected rather than a terminal.
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
