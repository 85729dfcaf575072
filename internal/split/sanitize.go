// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import "strings"

// DefaultReplacement substitutes for characters stripped by sanitization.
const DefaultReplacement = "_"

// hostile characters: path separators plus the set reserved on common
// filesystems.
const hostile = `/\:*?"<>|`

// Sanitize maps a song name to a filesystem-safe base filename. Hostile
// characters and control characters become replacement; leading and trailing
// dots and spaces are trimmed. A name with nothing left becomes "untitled".
func Sanitize(name, replacement string) string {
	if replacement == "" {
		replacement = DefaultReplacement
	}
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(hostile, r) {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	out := strings.Trim(b.String(), ". ")
	if out == "" {
		return "untitled"
	}
	return out
}

// Filename builds the output filename for a song, optionally tagging it with
// the book's abbreviation: "Song A (RB1).pdf".
func Filename(name, abbreviation, replacement string) string {
	base := Sanitize(name, replacement)
	if abbreviation != "" {
		base = base + " (" + Sanitize(abbreviation, replacement) + ")"
	}
	return base + ".pdf"
}
