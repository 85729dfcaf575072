// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest generates minimal well-formed PDF fixtures for tests.
// Each document carries n empty Letter-size pages with a tiny uncompressed
// content stream, enough for the pdfcpu-backed pipeline to read, trim, and
// merge without shipping binary fixtures in the repo.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"testing"
)

// Bytes returns a single-increment PDF with pageCount pages. Object layout:
// 1 catalog, 2 page tree, then a page/content object pair per page.
func Bytes(pageCount int) []byte {
	var buf bytes.Buffer
	offsets := make(map[int]int)

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := ""
	for i := 0; i < pageCount; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>", kids, pageCount))

	for i := 0; i < pageCount; i++ {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1
		writeObj(pageNum, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << >> /Contents %d 0 R >>", contentNum))
		// Distinct stroke per page so page content is distinguishable.
		stream := fmt.Sprintf("q 10 %d 100 50 re S Q", 20+10*i)
		writeObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	size := 3 + 2*pageCount
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	return buf.Bytes()
}

// Write creates a fixture PDF at path.
func Write(t *testing.T, path string, pageCount int) {
	t.Helper()
	if err := os.WriteFile(path, Bytes(pageCount), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
