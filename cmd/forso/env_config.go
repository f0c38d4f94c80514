package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-forso/internal/config"
	"github.com/alnah/go-forso/internal/fileutil"
	"github.com/alnah/go-forso/internal/hints"
)

// envPrefix marks environment variables read by forso.
const envPrefix = "FORSO_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // FORSO_CONFIG: config file name or path
	Mode       string // FORSO_MODE: formatting mode
	InputDir   string // FORSO_INPUT_DIR: default input directory
	OutputDir  string // FORSO_OUTPUT_DIR: default output directory
	Format     string // FORSO_FORMAT: text or html
	Workers    int    // FORSO_WORKERS: parallel workers
}

// knownEnvVars lists valid FORSO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"FORSO_CONFIG":     true,
	"FORSO_MODE":       true,
	"FORSO_INPUT_DIR":  true,
	"FORSO_OUTPUT_DIR": true,
	"FORSO_FORMAT":     true,
	"FORSO_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized FORSO_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("FORSO_CONFIG"),
		Mode:       os.Getenv("FORSO_MODE"),
		InputDir:   os.Getenv("FORSO_INPUT_DIR"),
		OutputDir:  os.Getenv("FORSO_OUTPUT_DIR"),
		Format:     os.Getenv("FORSO_FORMAT"),
	}

	// Parse int for workers; invalid values are ignored
	if workers := os.Getenv("FORSO_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized FORSO_* variables.
// Helps catch typos like FORSO_WORKER instead of FORSO_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// resolveConfig loads the config named by the flag, else by FORSO_CONFIG,
// else the defaults, then applies the environment.
func resolveConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvConfig applies environment variable values to config.
// Env values override the config file; CLI flags are applied later
// via mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Mode = env.Mode
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
}
