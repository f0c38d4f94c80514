package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-forso"
	"github.com/alnah/go-forso/internal/hints"
)

// FileToFormat represents a single file to process.
type FileToFormat struct {
	InputPath  string
	OutputPath string
}

// outputNaming controls how output file names are derived.
type outputNaming struct {
	suffix string // soal.txt -> soal<suffix>.txt, when writing next to the source
	html   bool   // Output extension becomes .html
}

// discoverFiles expands inputs (files or directories) into files to format.
// Directories are walked for the given extensions. Files that already carry
// the output suffix are skipped so reruns don't reformat their own output.
// An output path equal to its input path is an error: sources are never
// overwritten.
func discoverFiles(inputs []string, outputDir string, extensions []string, naming outputNaming) ([]FileToFormat, error) {
	var files []FileToFormat
	seen := make(map[string]bool)

	add := func(path, baseDir string, singleFile bool) error {
		clean := filepath.Clean(path)
		if seen[clean] {
			return nil
		}
		seen[clean] = true
		outPath := resolveOutputPath(clean, outputDir, baseDir, naming, singleFile)
		if samePath(clean, outPath) {
			return fmt.Errorf("%w: %s%s", ErrOutputIsInput, clean, hints.ForOutputOverwritesInput())
		}
		files = append(files, FileToFormat{InputPath: clean, OutputPath: outPath})
		return nil
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateInputExtension(input, extensions); err != nil {
				return nil, err
			}
			if err := add(input, "", len(inputs) == 1); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if !hasExtension(path, extensions) || isFormattedOutput(path, naming) {
				return nil
			}
			return add(path, input, false)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// resolveOutputPath determines the output path for an input file.
// With no output directory the file lands next to its source with the
// suffix inserted. A single file input may name the output file directly.
// Directory inputs keep their relative layout under the output directory.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, naming outputNaming, singleFile bool) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	outExt := ext
	if naming.html {
		outExt = ".html"
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+naming.suffix+outExt)
	}

	if singleFile && filepath.Ext(outputDir) != "" {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+outExt)
		}
	}

	return filepath.Join(outputDir, base+outExt)
}

// samePath reports whether a and b name the same file. Both are compared
// as absolute paths; stat is not needed since the output may not exist yet.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// isFormattedOutput reports whether path looks like a file written by a
// previous run next to its source.
func isFormattedOutput(path string, naming outputNaming) bool {
	if naming.suffix == "" {
		return false
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.HasSuffix(stem, naming.suffix)
}

// hasExtension reports whether path ends in one of extensions (case-insensitive).
func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// validateInputExtension checks an explicitly named file against extensions.
func validateInputExtension(path string, extensions []string) error {
	if !hasExtension(path, extensions) {
		return fmt.Errorf("%w: got %q (accepted: %s)", ErrInvalidExtension, filepath.Ext(path), strings.Join(extensions, ", "))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > forso.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, forso.MaxPoolSize)
	}
	return nil
}
