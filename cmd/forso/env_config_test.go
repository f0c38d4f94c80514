package main

// Notes:
// - These tests use t.Setenv and therefore cannot run in parallel.
// - Every known FORSO_* variable is cleared first so the host environment
//   does not leak into the assertions.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-forso/internal/config"
)

// clearForsoEnv blanks every known FORSO_* variable for the test.
func clearForsoEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	clearForsoEnv(t)
	t.Setenv("FORSO_CONFIG", "work")
	t.Setenv("FORSO_MODE", "number")
	t.Setenv("FORSO_INPUT_DIR", "soal")
	t.Setenv("FORSO_OUTPUT_DIR", "hasil")
	t.Setenv("FORSO_FORMAT", "html")
	t.Setenv("FORSO_WORKERS", "3")

	got := loadEnvConfig()
	want := envConfig{
		ConfigPath: "work",
		Mode:       "number",
		InputDir:   "soal",
		OutputDir:  "hasil",
		Format:     "html",
		Workers:    3,
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	for _, value := range []string{"abc", "-2", "0"} {
		t.Run(value, func(t *testing.T) {
			clearForsoEnv(t)
			t.Setenv("FORSO_WORKERS", value)

			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0 for %q", got, value)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunFormat_EnvWorkers - FORSO_WORKERS obeys the --workers bounds
// ---------------------------------------------------------------------------

func TestRunFormat_EnvWorkers(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		args    []string
		wantErr error
	}{
		{"above maximum", "500", []string{"-"}, ErrInvalidWorkerCount},
		{"within bounds", "2", []string{"-"}, nil},
		{"flag wins over env", "500", []string{"-w", "2", "-"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearForsoEnv(t)
			t.Setenv("FORSO_WORKERS", tt.value)

			env := newTestEnv(ptr(questionDoc))
			err := runFormat(context.Background(), tt.args, env.Environment)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if exitCodeFor(err) != ExitUsage {
					t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := env.stdout.String(); got != questionDocFormatted {
				t.Errorf("stdout = %q, want %q", got, questionDocFormatted)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	clearForsoEnv(t)
	t.Setenv("FORSO_WORKER", "2")
	t.Setenv("FORSO_MODES", "number")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	iModes := strings.Index(out, "FORSO_MODES")
	iWorker := strings.Index(out, "FORSO_WORKER ")
	if iModes < 0 || iWorker < 0 {
		t.Fatalf("expected warnings for both typos, got %q", out)
	}
	if iModes > iWorker {
		t.Errorf("warnings should be sorted, got %q", out)
	}
	if strings.Contains(out, "FORSO_MODE ") {
		t.Errorf("known variable reported as unknown: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Mode = "options"
		cfg.Output.DefaultDir = "from-file"

		applyEnvConfig(&envConfig{Mode: "number", OutputDir: "from-env", Format: "html", InputDir: "in"}, cfg)

		if cfg.Mode != "number" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "number")
		}
		if cfg.Output.DefaultDir != "from-env" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "from-env")
		}
		if cfg.Output.Format != "html" {
			t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "html")
		}
		if cfg.Input.DefaultDir != "in" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "in")
		}
	})

	t.Run("empty env keeps values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Mode = "options"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Mode != "options" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "options")
		}
		if cfg.Output.Suffix != config.DefaultSuffix {
			t.Errorf("Output.Suffix = %q, want %q", cfg.Output.Suffix, config.DefaultSuffix)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveConfig
// ---------------------------------------------------------------------------

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "work.yaml", "mode: options\noutput:\n  suffix: .rapi\n")

	t.Run("defaults without name", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig("", &envConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Mode != config.DefaultMode {
			t.Errorf("Mode = %q, want %q", cfg.Mode, config.DefaultMode)
		}
	})

	t.Run("flag path", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig(path, &envConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Mode != "options" || cfg.Output.Suffix != ".rapi" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("env config path used when flag empty", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig("", &envConfig{ConfigPath: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Mode != "options" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "options")
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig(path, &envConfig{Mode: "number"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Mode != "number" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "number")
		}
	})

	t.Run("invalid env format rejected", func(t *testing.T) {
		t.Parallel()

		_, err := resolveConfig("", &envConfig{Format: "pdf"})
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Fatalf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := resolveConfig(filepath.Join(dir, "nope.yaml"), &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if errors.Is(err, os.ErrNotExist) {
			t.Error("missing config should be a usage error, not an I/O error")
		}
	})

	t.Run("missing name adds hint", func(t *testing.T) {
		t.Parallel()

		_, err := resolveConfig("forso-test-no-such-config", &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("expected hint in %q", err.Error())
		}
	})
}
