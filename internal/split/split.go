// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split extracts the configured page range of every song in a real
// book into its own PDF file.
package split

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/split-real-books/pkg/types"
)

var (
	// ErrSource marks a source PDF that is missing or not readable.
	ErrSource = errors.New("source PDF unavailable")

	// ErrPageOutOfRange marks a song whose declared pages fall outside
	// the source document. Detected before any output file is written.
	ErrPageOutOfRange = errors.New("page range out of bounds")
)

// Options control output naming for a split run.
type Options struct {
	// SanitizeReplacement substitutes for filesystem-hostile characters
	// in song names. Empty selects DefaultReplacement.
	SanitizeReplacement string
}

// Job splits one real book: it validates every entry against the source's
// page count, then writes one PDF per song into the job's output directory,
// overwriting files of the same name. Progress lines go to w.
func Job(job types.SplitJob, opts Options, w io.Writer) error {
	if _, err := os.Stat(job.SourcePath); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSource, job.SourcePath, err)
	}
	pageCount, err := api.PageCountFile(job.SourcePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSource, job.SourcePath, err)
	}

	// All entries are checked up front so an out-of-range song aborts the
	// job before the first file is written.
	for _, e := range job.Entries {
		if e.StartPage < 1 || e.EndPage < e.StartPage || e.EndPage > pageCount {
			return fmt.Errorf("%w: %q pages %d-%d, but %s has pages 1-%d",
				ErrPageOutOfRange, e.Name, e.StartPage, e.EndPage, job.SourcePath, pageCount)
		}
	}

	if err := os.MkdirAll(job.OutputDirectory, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", job.OutputDirectory, err)
	}

	conf := model.NewDefaultConfiguration()
	for _, e := range job.Entries {
		outPath := filepath.Join(job.OutputDirectory, Filename(e.Name, job.Abbreviation, opts.SanitizeReplacement))
		selection := []string{fmt.Sprintf("%d-%d", e.StartPage, e.EndPage)}
		if err := api.TrimFile(job.SourcePath, outPath, selection, conf); err != nil {
			return fmt.Errorf("extracting %q from %s: %w", e.Name, job.SourcePath, err)
		}
		fmt.Fprintf(w, "created: %s (%d pages)\n", outPath, e.PageCount())
	}
	return nil
}

// All runs Job over every configured book in order, stopping at the first
// failure.
func All(jobs []types.SplitJob, opts Options, w io.Writer) error {
	for _, job := range jobs {
		if err := Job(job, opts, w); err != nil {
			return err
		}
	}
	return nil
}
