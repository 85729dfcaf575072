// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the YAML real-book configuration: a
// mapping from source PDF path to the songs it contains and the directory
// their extracted files go to.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/split-real-books/pkg/types"
)

// ErrConfig marks configuration errors: a missing or malformed config file,
// or a book definition that violates the schema. All validation failures
// wrap it so callers can match with errors.Is.
var ErrConfig = errors.New("configuration error")

// DefaultOutputDirectory is used when a book omits output_directory.
const DefaultOutputDirectory = "output_songs"

// bookSpec is the on-disk form of one real book definition.
type bookSpec struct {
	OutputDirectory string     `yaml:"output_directory"`
	Offset          int        `yaml:"offset"`
	Abbreviation    string     `yaml:"abbreviation"`
	Songs           []songSpec `yaml:"songs"`
}

// songSpec is the on-disk form of one song declaration. Offset is applied
// during Load, so types.SongEntry always holds effective page numbers.
type songSpec struct {
	Name      string `yaml:"name"`
	StartPage int    `yaml:"start_page"`
	EndPage   int    `yaml:"end_page"`
}

// Load reads the configuration at path and returns one SplitJob per source
// book, sorted by source path for a deterministic run order. Any schema
// violation aborts the load; a partially valid configuration is rejected
// whole rather than silently narrowed.
func Load(path string) ([]types.SplitJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}

	var raw map[string]bookSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s defines no real books", ErrConfig, path)
	}

	sources := make([]string, 0, len(raw))
	for src := range raw {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	jobs := make([]types.SplitJob, 0, len(sources))
	for _, src := range sources {
		job, err := buildJob(src, raw[src])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// buildJob validates one book definition and converts it to a SplitJob.
func buildJob(source string, spec bookSpec) (types.SplitJob, error) {
	var job types.SplitJob

	if strings.TrimSpace(source) == "" {
		return job, fmt.Errorf("%w: book with empty source path", ErrConfig)
	}
	if len(spec.Songs) == 0 {
		return job, fmt.Errorf("%w: %s declares no songs", ErrConfig, source)
	}

	outDir := spec.OutputDirectory
	if outDir == "" {
		outDir = DefaultOutputDirectory
	}

	entries := make([]types.SongEntry, 0, len(spec.Songs))
	for i, s := range spec.Songs {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return job, fmt.Errorf("%w: %s song #%d has an empty name", ErrConfig, source, i+1)
		}
		start := s.StartPage + spec.Offset
		end := s.EndPage + spec.Offset
		if s.StartPage < 1 {
			return job, fmt.Errorf("%w: %s song %q: start_page must be >= 1, got %d", ErrConfig, source, name, s.StartPage)
		}
		if start < 1 {
			return job, fmt.Errorf("%w: %s song %q: offset %d moves start_page before page 1", ErrConfig, source, name, spec.Offset)
		}
		if end < start {
			return job, fmt.Errorf("%w: %s song %q: end_page %d is before start_page %d", ErrConfig, source, name, s.EndPage, s.StartPage)
		}
		entries = append(entries, types.SongEntry{Name: name, StartPage: start, EndPage: end})
	}

	job = types.SplitJob{
		SourcePath:      source,
		OutputDirectory: outDir,
		Abbreviation:    strings.TrimSpace(spec.Abbreviation),
		Entries:         entries,
	}
	return job, nil
}

// OutputDirectories returns the distinct output directories of jobs, sorted.
// Used by compile-from-config mode to decide what to compile.
func OutputDirectories(jobs []types.SplitJob) []string {
	seen := make(map[string]struct{}, len(jobs))
	var dirs []string
	for _, j := range jobs {
		if _, ok := seen[j.OutputDirectory]; ok {
			continue
		}
		seen[j.OutputDirectory] = struct{}{}
		dirs = append(dirs, j.OutputDirectory)
	}
	sort.Strings(dirs)
	return dirs
}
