// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/invoice-merge/pkg/types"
)

// writeDocInfoMarks writes a pdfmark fragment next to outPath that sets the
// output's DocInfo dictionary. It returns the fragment path and a cleanup
// function that removes it.
func writeDocInfoMarks(outPath string, meta types.DocMetadata) (string, func(), error) {
	f, err := os.CreateTemp(filepath.Dir(outPath), ".docinfo-*.ps")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }

	_, writeErr := f.WriteString(docInfoMarks(meta))
	closeErr := f.Close()
	if writeErr != nil {
		cleanup()
		return "", nil, writeErr
	}
	if closeErr != nil {
		cleanup()
		return "", nil, closeErr
	}
	return path, cleanup, nil
}

// docInfoMarks renders the DOCINFO pdfmark for meta.
func docInfoMarks(meta types.DocMetadata) string {
	var b strings.Builder
	b.WriteString("[")
	if meta.Title != "" {
		fmt.Fprintf(&b, " /Title (%s)", escapePSString(meta.Title))
	}
	if meta.Author != "" {
		fmt.Fprintf(&b, " /Author (%s)", escapePSString(meta.Author))
	}
	b.WriteString(" /DOCINFO pdfmark\n")
	return b.String()
}

// escapePSString escapes the characters that terminate or escape a
// PostScript literal string.
func escapePSString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
