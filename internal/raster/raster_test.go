// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/invoice-merge/pkg/types"
)

// fakeExecutor records invocations and simulates Ghostscript by writing the
// file named in -sOutputFile.
type fakeExecutor struct {
	lookPathErr error
	runErr      error
	noOutput    bool

	name string
	env  []string
	args []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) Run(name string, env []string, args ...string) error {
	f.name = name
	f.env = env
	f.args = args
	if f.runErr != nil {
		return f.runErr
	}
	if f.noOutput {
		return nil
	}
	for _, a := range args {
		if len(a) > len("-sOutputFile=") && a[:len("-sOutputFile=")] == "-sOutputFile=" {
			return os.WriteFile(a[len("-sOutputFile="):], []byte("%PDF"), 0o644)
		}
	}
	return nil
}

func TestGhostscript_FlattenArgs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF"), 0o644))

	exec := &fakeExecutor{}
	g := newGhostscript(types.RasterConfig{}, exec)

	require.NoError(t, g.Flatten(in, out, FlattenOptions{}))

	assert.Equal(t, []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.6",
		"-dPDFSETTINGS=/printer",
		"-dPrinted",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + out,
		in,
	}, exec.args)
	assert.Equal(t, []string{"SOURCE_DATE_EPOCH=0"}, exec.env)
}

func TestGhostscript_PinnedEpoch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF"), 0o644))

	exec := &fakeExecutor{}
	g := newGhostscript(types.RasterConfig{Epoch: 946684800}, exec)

	require.NoError(t, g.Flatten(in, out, FlattenOptions{}))
	assert.Equal(t, []string{"SOURCE_DATE_EPOCH=946684800"}, exec.env)
}

func TestGhostscript_MetadataAppendsMarks(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF"), 0o644))

	exec := &fakeExecutor{}
	g := newGhostscript(types.RasterConfig{}, exec)

	meta := &types.DocMetadata{Title: "Invoice", Author: "Accounts"}
	require.NoError(t, g.Flatten(in, out, FlattenOptions{Metadata: meta}))

	require.NotEmpty(t, exec.args)
	last := exec.args[len(exec.args)-1]
	assert.NotEqual(t, in, last, "pdfmark fragment should follow the input file")
	assert.Contains(t, filepath.Base(last), ".docinfo-")

	// The fragment is removed after the run.
	_, err := os.Stat(last)
	assert.True(t, os.IsNotExist(err))
}

func TestGhostscript_RunFailure(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{runErr: errors.New("exit status 1")}
	g := newGhostscript(types.RasterConfig{}, exec)

	err := g.Flatten(filepath.Join(dir, "in.pdf"), filepath.Join(dir, "out.pdf"), FlattenOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in.pdf")
}

func TestGhostscript_NoOutputProduced(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{noOutput: true}
	g := newGhostscript(types.RasterConfig{}, exec)

	err := g.Flatten(filepath.Join(dir, "in.pdf"), filepath.Join(dir, "out.pdf"), FlattenOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "produced no output")
}

func TestGhostscript_Available(t *testing.T) {
	g := newGhostscript(types.RasterConfig{}, &fakeExecutor{})
	assert.True(t, g.Available())

	g = newGhostscript(types.RasterConfig{}, &fakeExecutor{lookPathErr: errors.New("not found")})
	assert.False(t, g.Available())

	g = newGhostscript(types.RasterConfig{}, &fakeExecutor{runErr: errors.New("broken install")})
	assert.False(t, g.Available())
}

func TestDefaultBinary(t *testing.T) {
	assert.Equal(t, "gswin64c", defaultBinary("windows"))
	assert.Equal(t, "gs", defaultBinary("linux"))
	assert.Equal(t, "gs", defaultBinary("darwin"))
}

func TestNewGhostscript_BinaryOverride(t *testing.T) {
	g := newGhostscript(types.RasterConfig{Ghostscript: "/opt/gs/bin/gs"}, &fakeExecutor{})
	assert.Equal(t, "/opt/gs/bin/gs", g.Name())
}
