// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compile merges a directory of split song PDFs into one document
// with an alphabetical outline entry per song.
package compile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/split-real-books/pkg/types"
)

var (
	// ErrNoInput marks a compile directory with nothing eligible to merge.
	ErrNoInput = errors.New("no PDFs to compile")

	// ErrUnreadable marks a candidate file that is not a readable PDF.
	ErrUnreadable = errors.New("unreadable PDF")
)

// candidate is one song PDF selected for the merge.
type candidate struct {
	path  string
	song  string // basename without extension, the outline title
	pages int
}

// Directory compiles one book: it finds song PDFs under book.OutputDirectory
// (recursively, excluding a previous compiled output), merges them in
// case-insensitive alphabetical order, and bookmarks the first page of each
// song with its name. Outline order and page order are both alphabetical.
func Directory(book types.CompiledBook, w io.Writer) error {
	dir, err := filepath.Abs(book.OutputDirectory)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", book.OutputDirectory, err)
	}
	outPath := filepath.Join(dir, book.Filename())

	paths, err := findSongPDFs(dir, outPath)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s contains no song PDFs", ErrNoInput, dir)
	}

	// Pre-scan page counts. An unreadable candidate aborts the compile;
	// a zero-page file is merely skipped.
	candidates := make([]candidate, 0, len(paths))
	for _, p := range paths {
		n, err := api.PageCountFile(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnreadable, p, err)
		}
		if n == 0 {
			fmt.Fprintf(w, "skipping %s: no pages\n", p)
			continue
		}
		song := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		candidates = append(candidates, candidate{path: p, song: song, pages: n})
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %s contains no song PDFs with pages", ErrNoInput, dir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return strings.ToLower(candidates[i].song) < strings.ToLower(candidates[j].song)
	})

	files := make([]string, len(candidates))
	bookmarks := make([]pdfcpu.Bookmark, len(candidates))
	page := 1
	for i, c := range candidates {
		files[i] = c.path
		bookmarks[i] = pdfcpu.Bookmark{
			Title:    c.song,
			PageFrom: page,
			PageThru: page + c.pages - 1,
		}
		page += c.pages
	}

	conf := model.NewDefaultConfiguration()
	if err := api.MergeCreateFile(files, outPath, false, conf); err != nil {
		return fmt.Errorf("merging into %s: %w", outPath, err)
	}
	if err := api.AddBookmarksFile(outPath, "", bookmarks, true, conf); err != nil {
		return fmt.Errorf("writing outline for %s: %w", outPath, err)
	}
	if book.Compress {
		if err := optimize(outPath); err != nil {
			return fmt.Errorf("compressing %s: %w", outPath, err)
		}
	}

	fmt.Fprintf(w, "compiled: %s (%d songs, %d pages)\n", outPath, len(candidates), page-1)
	return nil
}

// Directories compiles each listed directory with the shared filename and
// compression settings, stopping at the first failure.
func Directories(dirs []string, compiledFilename string, compress bool, w io.Writer) error {
	for _, dir := range dirs {
		book := types.CompiledBook{
			OutputDirectory:  dir,
			CompiledFilename: compiledFilename,
			Compress:         compress,
		}
		if err := Directory(book, w); err != nil {
			return err
		}
	}
	return nil
}

// optimize re-encodes path through pdfcpu's optimizer and keeps the smaller
// of the two encodings, so a compressed compile is never larger than the
// plain one. Rendered content is unchanged either way.
func optimize(path string) error {
	conf := model.NewDefaultConfiguration()
	conf.OptimizeDuplicateContentStreams = true

	tmp := path + ".opt"
	if err := api.OptimizeFile(path, tmp, conf); err != nil {
		return err
	}
	orig, err := os.Stat(path)
	if err != nil {
		return err
	}
	opt, err := os.Stat(tmp)
	if err != nil {
		return err
	}
	if opt.Size() >= orig.Size() {
		return os.Remove(tmp)
	}
	return os.Rename(tmp, path)
}

// findSongPDFs walks dir collecting files with a .pdf extension, excluding
// the compiled output itself so recompiling a directory is stable.
func findSongPDFs(dir, outPath string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		if path == outPath {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %v", ErrNoInput, dir, err)
	}
	return paths, nil
}
