// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge implements the merge-flatten engine: it flattens each input
// PDF, concatenates the flattened documents in input order, and writes the
// result atomically. Either every input merges or the output path is left
// in its pre-call state.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/invoice-merge/internal/inspect"
	"github.com/pdiddy/invoice-merge/internal/raster"
	"github.com/pdiddy/invoice-merge/pkg/types"
)

// Options carries per-merge settings.
type Options struct {
	// Overwrite permits replacing an existing file at the output path.
	Overwrite bool

	// KeepMetadata copies Title/Author from the first input into the
	// output's document information.
	KeepMetadata bool
}

// Engine orchestrates one merge invocation. It holds no mutable state
// between calls; each Merge is a pure function of its inputs and options.
type Engine struct {
	Inspector inspect.Inspector
	Raster    raster.Rasterizer
	Concat    Concatenator

	// Log receives per-step progress lines.
	Log io.Writer
}

// New creates an engine wired to the production capabilities: a pdfcpu
// inspector and concatenator and a Ghostscript rasterizer.
func New(cfg types.MergeConfig, log io.Writer) *Engine {
	if log == nil {
		log = io.Discard
	}
	return &Engine{
		Inspector: inspect.New(cfg.Password),
		Raster:    raster.NewGhostscript(cfg.Raster),
		Concat:    NewPDFCPUConcat(),
		Log:       log,
	}
}

// Merge flattens every input, concatenates the flattened pages in input
// order, and atomically writes the result to output. On any failure the
// output path keeps its pre-call state and a *Error describes the cause.
func (e *Engine) Merge(inputs []string, output string, opts Options) error {
	if len(inputs) == 0 {
		return failure(EmptyMerge, "", errors.New("no input files"))
	}

	if !opts.Overwrite {
		if _, err := os.Stat(output); err == nil {
			return failure(OutputConflict, output, errors.New("output exists and overwrite is disabled"))
		}
	}

	// Preflight every input before touching the filesystem. Duplicate
	// paths are inspected again on purpose; each occurrence contributes
	// its pages independently.
	total := 0
	var meta *types.DocMetadata
	for i, in := range inputs {
		info, err := e.Inspector.Inspect(in)
		if err != nil {
			return failure(UnreadableInput, in, err)
		}
		fmt.Fprintf(e.Log, "inspected: %s (%d pages)\n", in, info.Pages)
		total += info.Pages
		if i == 0 && opts.KeepMetadata {
			m := info.Metadata
			meta = &m
		}
	}
	if total == 0 {
		return failure(EmptyMerge, "", fmt.Errorf("inputs contain no pages (%d files)", len(inputs)))
	}

	// All intermediate files live under the output's parent directory so
	// the final rename never crosses a filesystem boundary.
	outDir := filepath.Dir(output)
	tmpDir, err := os.MkdirTemp(outDir, ".invoice-merge-*")
	if err != nil {
		return failure(WriteFailure, output, err)
	}
	defer os.RemoveAll(tmpDir)

	flats := make([]string, 0, len(inputs))
	for i, in := range inputs {
		flat := filepath.Join(tmpDir, fmt.Sprintf("flat-%03d.pdf", i))
		fmt.Fprintf(e.Log, "flattening: %s\n", in)
		if err := e.Raster.Flatten(in, flat, raster.FlattenOptions{}); err != nil {
			return failure(FlattenFailure, in, err)
		}
		flats = append(flats, flat)
	}

	merged := flats[0]
	if len(flats) > 1 {
		merged = filepath.Join(tmpDir, "merged.pdf")
		fmt.Fprintf(e.Log, "merging: %d files\n", len(flats))
		if err := e.Concat.Concat(flats, merged); err != nil {
			return failure(WriteFailure, output, err)
		}
	}

	// Final pass through the rasterizer. It re-normalizes the concatenated
	// document (making flattening idempotent end to end) and injects the
	// preserved metadata.
	final := filepath.Join(tmpDir, "final.pdf")
	if err := e.Raster.Flatten(merged, final, raster.FlattenOptions{Metadata: meta}); err != nil {
		return failure(FlattenFailure, output, err)
	}

	if err := os.Rename(final, output); err != nil {
		return failure(WriteFailure, output, err)
	}
	fmt.Fprintf(e.Log, "wrote: %s (%d pages)\n", output, total)
	return nil
}
