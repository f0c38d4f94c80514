package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-forso"
	"github.com/alnah/go-forso/internal/fileutil"
	"github.com/alnah/go-forso/internal/hints"
)

// FormatResult holds the outcome of a single file.
type FormatResult struct {
	InputPath     string
	OutputPath    string
	Questions     int
	MergedMarkers int
	Err           error
	Duration      time.Duration
}

// formatBatch processes files concurrently, at most workers at a time.
// A failing file never stops the others; its error is kept in its result.
// Results are returned in input order.
func formatBatch(ctx context.Context, formatter TextFormatter, files []FileToFormat, params *formatParams, workers int) []FormatResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]FormatResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(1, min(workers, len(files))))

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FormatResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = formatFile(ctx, formatter, f, params)
			return nil
		})
	}

	// Workers report through results, never through the group
	_ = g.Wait()
	return results
}

// formatFile processes a single file and returns the result.
func formatFile(ctx context.Context, formatter TextFormatter, f FileToFormat, params *formatParams) FormatResult {
	start := time.Now()
	result := FormatResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	title := params.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(f.InputPath), filepath.Ext(f.InputPath))
	}

	res, err := formatter.Format(ctx, forso.Input{
		Text:  string(content),
		Mode:  params.mode,
		HTML:  params.html,
		Title: title,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Questions = res.Questions
	result.MergedMarkers = res.MergedMarkers

	if err := fileutil.WriteFile(f.OutputPath, []byte(renderedOutput(res, params.html))); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs batch results and returns the failure count.
// Failures always go to stderr; success lines respect quiet and verbose.
func printResults(results []FormatResult, mode forso.Mode, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if mode != forso.ModeOptions && r.Questions == 0 {
			fmt.Fprintf(env.Stderr, "warning: no question detected in %s%s\n", r.InputPath, hints.ForNoQuestions())
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d questions, %d merged markers, %v)\n",
				r.InputPath, r.OutputPath, r.Questions, r.MergedMarkers, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
