package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-forso/internal/fileutil"
	"github.com/alnah/go-forso/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Defaults applied by DefaultConfig.
const (
	DefaultMode      = "questions"
	DefaultExtension = ".txt"
	DefaultSuffix    = ".formatted"
)

// Field length limits.
const (
	MaxModeLength      = 20
	MaxPathLength      = 4096
	MaxExtensionLength = 16
	MaxExtensions      = 16
	MaxSuffixLength    = 32
	MaxTitleLength     = 200
)

// Config holds all configuration for formatting runs.
type Config struct {
	Mode   string       `yaml:"mode"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	HTML   HTMLConfig   `yaml:"html"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Extensions []string `yaml:"extensions"` // Files picked up when walking a directory
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
	Suffix     string `yaml:"suffix"`     // Inserted before the extension: soal.txt -> soal.formatted.txt
	Format     string `yaml:"format"`     // "text" or "html"
}

// HTMLConfig defines HTML export options.
type HTMLConfig struct {
	Title string `yaml:"title"` // Document title (empty = input file name)
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("mode", c.Mode, MaxModeLength); err != nil {
		return err
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if len(c.Input.Extensions) > MaxExtensions {
		return fmt.Errorf("%w: input.extensions has %d entries (max %d)", ErrInvalidValue, len(c.Input.Extensions), MaxExtensions)
	}
	for i, ext := range c.Input.Extensions {
		field := fmt.Sprintf("input.extensions[%d]", i)
		if err := validateFieldLength(field, ext, MaxExtensionLength); err != nil {
			return err
		}
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
		}
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.suffix", c.Output.Suffix, MaxSuffixLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Output.Suffix, "/\\\x00") {
		return fmt.Errorf("%w: output.suffix %q contains a path separator", ErrInvalidValue, c.Output.Suffix)
	}
	if c.Output.Format != "" {
		switch strings.ToLower(c.Output.Format) {
		case FormatText, FormatHTML:
			// valid
		default:
			return fmt.Errorf("%w: output.format %q (must be text or html)", ErrInvalidValue, c.Output.Format)
		}
	}

	if err := validateFieldLength("html.title", c.HTML.Title, MaxTitleLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Mode:   DefaultMode,
		Input:  InputConfig{Extensions: []string{DefaultExtension}},
		Output: OutputConfig{Suffix: DefaultSuffix, Format: FormatText},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory first and then
// in the user config directory (~/.config/go-forso/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-forso", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
