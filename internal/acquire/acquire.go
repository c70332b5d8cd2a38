// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire downloads the FASTA records linked from a BLDB page.
// A run fetches the page, extracts accession records, and processes them one
// at a time: build the efetch URL, fetch, then print or save.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/bldb-fetch/internal/extract"
	"github.com/pdiddy/bldb-fetch/pkg/types"
)

const fastaExt = ".fasta"

// ErrPageFetch wraps a failure to download the source page. It aborts the run.
var ErrPageFetch = errors.New("fetching source page")

// BatchResult holds the outcome of a run.
type BatchResult struct {
	Saved   int
	Printed int
	Skipped int
	Failed  int

	// Interrupted is set when ctx was cancelled before all records were processed.
	Interrupted bool

	// Results lists every fetch attempted, in order.
	Results []types.FetchResult
}

// Total returns the number of records processed.
func (r BatchResult) Total() int {
	return r.Saved + r.Printed + r.Skipped + r.Failed
}

// HasFailures reports whether any record failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run downloads every record linked from cfg.SourceURL. The output directory
// is created before anything is fetched. A failure to create it or to fetch
// the page is returned as an error and nothing is written to w; per-record
// failures are logged and counted in the result.
func Run(ctx context.Context, f *Fetcher, b Builder, cfg types.FetchConfig, w io.Writer, log zerolog.Logger) (BatchResult, error) {
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return BatchResult{}, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
		}
	}

	log.Debug().Str("url", cfg.SourceURL).Msg("fetching source page")
	html, err := f.FetchPage(ctx, cfg.SourceURL)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w %s: %w", ErrPageFetch, cfg.SourceURL, err)
	}
	log.Debug().Int("bytes", len(html)).Msg("source page fetched")

	return DownloadBatch(ctx, f, b, extract.Accessions(html), cfg, w, log), nil
}

// DownloadBatch processes records in order. Each record is fully handled
// before the next one starts; a failure affects only its own record.
// Cancelling ctx stops the loop before the next record and leaves files
// already written in place.
func DownloadBatch(ctx context.Context, f *Fetcher, b Builder, records iter.Seq[types.AccessionRecord], cfg types.FetchConfig, w io.Writer, log zerolog.Logger) BatchResult {
	var result BatchResult
	for rec := range records {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msg("run interrupted, remaining records not fetched")
			result.Interrupted = true
			break
		}
		downloadRecord(ctx, f, b, rec, cfg, w, log, &result)
	}
	log.Info().
		Int("saved", result.Saved).
		Int("printed", result.Printed).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Int("total", result.Total()).
		Msg("batch summary")
	return result
}

func downloadRecord(ctx context.Context, f *Fetcher, b Builder, rec types.AccessionRecord, cfg types.FetchConfig, w io.Writer, log zerolog.Logger, result *BatchResult) {
	var path string
	if cfg.OutputDir != "" {
		path = FASTAPath(cfg.OutputDir, rec.Accession)
		if !cfg.Overwrite {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(w, "skipped: %s (already exists at %s)\n", rec.Accession, path)
				result.Skipped++
				return
			}
		}
	}

	efetchURL := b.URL(rec)
	log.Debug().Str("accession", rec.Accession).Str("url", efetchURL).Msg("fetching record")

	res := f.FetchRecord(ctx, efetchURL, rec)
	if !res.OK() {
		log.Warn().Str("accession", rec.Accession).Err(res.Err).Msgf("failed to fetch FASTA for %s", rec.Accession)
		result.Failed++
		result.Results = append(result.Results, res)
		return
	}

	if path == "" {
		fmt.Fprintf(w, "[%s]\n", rec.Label())
		io.WriteString(w, res.Body)
		if !strings.HasSuffix(res.Body, "\n") {
			io.WriteString(w, "\n")
		}
		result.Printed++
		result.Results = append(result.Results, res)
		return
	}

	if err := writeFile(path, res.Body); err != nil {
		log.Error().Str("accession", rec.Accession).Err(err).Msgf("failed to save FASTA for %s", rec.Accession)
		res.Err = err
		result.Failed++
		result.Results = append(result.Results, res)
		return
	}
	fmt.Fprintf(w, "saved: %s -> %s\n", rec.Accession, path)
	result.Saved++
	result.Results = append(result.Results, res)
}

// FASTAPath returns the output file for accession inside dir.
func FASTAPath(dir, accession string) string {
	return filepath.Join(dir, accession+fastaExt)
}

// writeFile writes body to destPath through a temporary file in the same
// directory, so an interrupted write never leaves a partial record behind.
func writeFile(destPath, body string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := io.WriteString(tmpFile, body)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing record: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
