package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-forso/internal/assets"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment reading stdin from the given text.
// A nil stdin simulates an interactive terminal.
func newTestEnv(stdin *string) *testEnv {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:         func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
		Stdin:       strings.NewReader(""),
		Stdout:      &stdout,
		Stderr:      &stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}
	if stdin != nil {
		env.Stdin = strings.NewReader(*stdin)
		env.StdinPiped = true
	}
	return &testEnv{Environment: env, stdout: &stdout, stderr: &stderr}
}

func ptr(s string) *string { return &s }

// writeFile creates a file (and parents) under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

const questionDoc = "Apa itu CPU...\na\n\nProsesor\nb\n\nMemori\n"

const questionDocFormatted = "1. Apa itu CPU...\na Prosesor\nb Memori\n"
