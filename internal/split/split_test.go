// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/split-real-books/internal/pdftest"
	"github.com/pdiddy/split-real-books/pkg/types"
)

// setupBook writes a fixture real book with pages pages and returns its path
// plus a fresh output directory.
func setupBook(t *testing.T, pages int) (source, outDir string) {
	t.Helper()
	dir := t.TempDir()
	source = filepath.Join(dir, "RealBookVol1.pdf")
	pdftest.Write(t, source, pages)
	outDir = filepath.Join(dir, "output_songs")
	return source, outDir
}

func pageCount(t *testing.T, path string) int {
	t.Helper()
	n, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("page count of %s: %v", path, err)
	}
	return n
}

func TestJob(t *testing.T) {
	source, outDir := setupBook(t, 6)
	job := types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Entries: []types.SongEntry{
			{Name: "Song A", StartPage: 1, EndPage: 3},
			{Name: "Song B", StartPage: 4, EndPage: 4},
			{Name: "Song C", StartPage: 5, EndPage: 6},
		},
	}

	var log bytes.Buffer
	if err := Job(job, Options{}, &log); err != nil {
		t.Fatalf("Job: %v", err)
	}

	wantPages := map[string]int{
		"Song A.pdf": 3,
		"Song B.pdf": 1,
		"Song C.pdf": 2,
	}
	for name, want := range wantPages {
		path := filepath.Join(outDir, name)
		if got := pageCount(t, path); got != want {
			t.Errorf("%s: page count = %d, want %d", name, got, want)
		}
	}
	if got := strings.Count(log.String(), "created:"); got != 3 {
		t.Errorf("created lines = %d, want 3", got)
	}
}

func TestJobAbbreviation(t *testing.T) {
	source, outDir := setupBook(t, 3)
	job := types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Abbreviation:    "RB1",
		Entries:         []types.SongEntry{{Name: "Song A", StartPage: 1, EndPage: 2}},
	}

	if err := Job(job, Options{}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Job: %v", err)
	}
	path := filepath.Join(outDir, "Song A (RB1).pdf")
	if got := pageCount(t, path); got != 2 {
		t.Errorf("page count = %d, want 2", got)
	}
}

func TestJobOutOfRangeWritesNothing(t *testing.T) {
	source, outDir := setupBook(t, 4)
	job := types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Entries: []types.SongEntry{
			{Name: "Valid", StartPage: 1, EndPage: 2},
			{Name: "Beyond", StartPage: 5, EndPage: 6},
		},
	}

	err := Job(job, Options{}, &bytes.Buffer{})
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("err = %v, want ErrPageOutOfRange", err)
	}
	if !strings.Contains(err.Error(), "Beyond") {
		t.Errorf("error %q should name the offending song", err)
	}
	// Validation runs before extraction, so even the valid entry is absent.
	if _, statErr := os.Stat(filepath.Join(outDir, "Valid.pdf")); !os.IsNotExist(statErr) {
		t.Error("out-of-range job must not write any file")
	}
}

func TestJobMissingSource(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	job := types.SplitJob{
		SourcePath:      filepath.Join(t.TempDir(), "absent.pdf"),
		OutputDirectory: outDir,
		Entries:         []types.SongEntry{{Name: "Song A", StartPage: 1, EndPage: 1}},
	}
	if err := Job(job, Options{}, &bytes.Buffer{}); !errors.Is(err, ErrSource) {
		t.Fatalf("err = %v, want ErrSource", err)
	}
}

func TestJobOverwritesExisting(t *testing.T) {
	source, outDir := setupBook(t, 5)
	job := types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Entries:         []types.SongEntry{{Name: "Song A", StartPage: 1, EndPage: 5}},
	}

	for i := 0; i < 2; i++ {
		if err := Job(job, Options{}, &bytes.Buffer{}); err != nil {
			t.Fatalf("Job: %v", err)
		}
	}
	if got := pageCount(t, filepath.Join(outDir, "Song A.pdf")); got != 5 {
		t.Errorf("page count after rerun = %d, want 5", got)
	}
}

func TestAllStopsAtFirstFailure(t *testing.T) {
	source, outDir := setupBook(t, 2)
	good := types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Entries:         []types.SongEntry{{Name: "Song A", StartPage: 1, EndPage: 1}},
	}
	bad := types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Entries:         []types.SongEntry{{Name: "Too Far", StartPage: 3, EndPage: 3}},
	}

	err := All([]types.SplitJob{good, bad}, Options{}, &bytes.Buffer{})
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("err = %v, want ErrPageOutOfRange", err)
	}
}
