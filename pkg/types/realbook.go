// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the split-real-books
// pipeline: song entries, split jobs, and compiled books.
package types

// DefaultCompiledName is the filename used for a compiled book when the
// caller does not override it.
const DefaultCompiledName = "CombinedRealBook.pdf"

// SongEntry declares one song's page range within a source real book.
// Pages are 1-indexed and inclusive on both ends.
type SongEntry struct {
	// Name is the song title, used (sanitized) as the output filename.
	Name string `yaml:"name"`

	// StartPage is the first page of the song in the source PDF.
	StartPage int `yaml:"start_page"`

	// EndPage is the last page of the song in the source PDF.
	// Invariant: StartPage <= EndPage.
	EndPage int `yaml:"end_page"`
}

// PageCount returns the number of pages the entry spans.
func (e SongEntry) PageCount() int {
	return e.EndPage - e.StartPage + 1
}

// SplitJob describes the extraction work for one source real book. Jobs are
// built from the configuration file at the start of a run and never mutated.
type SplitJob struct {
	// SourcePath is the multi-song PDF scan to split.
	SourcePath string

	// OutputDirectory receives one PDF per song. Created if absent.
	OutputDirectory string

	// Abbreviation, when non-empty, is appended to each output filename
	// as "<name> (<abbreviation>).pdf" to disambiguate songs that appear
	// in more than one book.
	Abbreviation string

	// Entries lists the songs to extract, in configuration order. Page
	// numbers already include any configured scan offset.
	Entries []SongEntry
}

// CompiledBook describes one merge request: combine the song PDFs found in
// OutputDirectory into a single document with an alphabetical outline.
type CompiledBook struct {
	// OutputDirectory is scanned for song PDFs and receives the result.
	OutputDirectory string

	// CompiledFilename is the name of the merged document within
	// OutputDirectory. Defaults to DefaultCompiledName.
	CompiledFilename string

	// Compress re-encodes the merged document to reduce file size without
	// altering rendered content.
	Compress bool
}

// Filename returns the compiled document's filename, applying the default
// when none was configured.
func (b CompiledBook) Filename() string {
	if b.CompiledFilename == "" {
		return DefaultCompiledName
	}
	return b.CompiledFilename
}
