// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster implements page flattening behind a pluggable rasterizer.
// The production implementation shells out to Ghostscript's pdfwrite
// device, which renders AcroForm field values and visible annotations into
// static page content and drops the interactive objects.
package raster

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/pdiddy/invoice-merge/pkg/types"
)

const (
	binGhostscript        = "gs"
	binGhostscriptWindows = "gswin64c"

	// defaultEpoch pins SOURCE_DATE_EPOCH so that repeated runs over
	// identical input bytes produce identical output bytes.
	defaultEpoch int64 = 0
)

// FlattenOptions carries per-invocation flattening parameters.
type FlattenOptions struct {
	// Metadata, when non-nil and non-zero, is written into the output's
	// document information dictionary.
	Metadata *types.DocMetadata
}

// Rasterizer flattens a PDF file into a static, non-interactive PDF file.
type Rasterizer interface {
	// Name returns the rasterizer name for diagnostics.
	Name() string

	// Available reports whether the rasterizer's toolchain is usable.
	Available() bool

	// Flatten reads the PDF at inPath and writes a flattened copy to
	// outPath. outPath is only valid when the returned error is nil.
	Flatten(inPath, outPath string, opts FlattenOptions) error
}

// executor abstracts process execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, env []string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, env []string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, tail(out, 512))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// tail returns the last n bytes of out as a string.
func tail(out []byte, n int) string {
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return string(out)
}

// Ghostscript flattens PDFs through the pdfwrite device. The -dPrinted
// switch discards AcroForm widgets while keeping their rendered ink.
type Ghostscript struct {
	bin   string
	epoch int64
	exec  executor
}

// NewGhostscript creates a Ghostscript rasterizer from config. An empty
// binary override selects the platform default.
func NewGhostscript(cfg types.RasterConfig) *Ghostscript {
	return newGhostscript(cfg, &osExecutor{})
}

func newGhostscript(cfg types.RasterConfig, exec executor) *Ghostscript {
	bin := cfg.Ghostscript
	if bin == "" {
		bin = defaultBinary(runtime.GOOS)
	}
	epoch := cfg.Epoch
	if epoch <= 0 {
		epoch = defaultEpoch
	}
	return &Ghostscript{bin: bin, epoch: epoch, exec: exec}
}

// defaultBinary returns the conventional Ghostscript binary name for goos.
func defaultBinary(goos string) string {
	if goos == "windows" {
		return binGhostscriptWindows
	}
	return binGhostscript
}

func (g *Ghostscript) Name() string { return g.bin }

func (g *Ghostscript) Available() bool {
	if _, err := g.exec.LookPath(g.bin); err != nil {
		return false
	}
	return g.exec.Run(g.bin, nil, "--version") == nil
}

func (g *Ghostscript) Flatten(inPath, outPath string, opts FlattenOptions) error {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.6",
		"-dPDFSETTINGS=/printer",
		"-dPrinted",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + outPath,
		inPath,
	}

	if opts.Metadata != nil && !opts.Metadata.IsZero() {
		markPath, cleanup, err := writeDocInfoMarks(outPath, *opts.Metadata)
		if err != nil {
			return fmt.Errorf("preparing document info: %w", err)
		}
		defer cleanup()
		// pdfmark fragments are appended as an additional input file.
		args = append(args, markPath)
	}

	env := []string{"SOURCE_DATE_EPOCH=" + strconv.FormatInt(g.epoch, 10)}
	if err := g.exec.Run(g.bin, env, args...); err != nil {
		return fmt.Errorf("flattening %s: %w", inPath, err)
	}

	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("flattening %s: %s produced no output", inPath, g.bin)
	}
	return nil
}
