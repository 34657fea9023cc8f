// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/invoice-merge/internal/merge"
)

// fakeMerger fails for outputs listed in errs and records every call.
type fakeMerger struct {
	errs  map[string]error
	calls []merge.Options
}

func (f *fakeMerger) Merge(inputs []string, output string, opts merge.Options) error {
	f.calls = append(f.calls, opts)
	if err, ok := f.errs[output]; ok {
		return err
	}
	return nil
}

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJobFile(t *testing.T) {
	path := writeJobFile(t, `
jobs:
  - inputs: [cover.pdf, invoice.pdf]
    output: merged.pdf
    overwrite: true
    keep_metadata: true
  - inputs: [single.pdf]
    output: flat.pdf
`)
	jf, err := ReadJobFile(path)
	require.NoError(t, err)
	require.Len(t, jf.Jobs, 2)

	assert.Equal(t, []string{"cover.pdf", "invoice.pdf"}, jf.Jobs[0].Inputs)
	assert.Equal(t, "merged.pdf", jf.Jobs[0].Output)
	assert.True(t, jf.Jobs[0].Overwrite)
	assert.True(t, jf.Jobs[0].KeepMetadata)

	assert.False(t, jf.Jobs[1].Overwrite)
	assert.False(t, jf.Jobs[1].KeepMetadata)
}

func TestReadJobFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no jobs", "jobs: []\n"},
		{"missing inputs", "jobs:\n  - output: out.pdf\n"},
		{"missing output", "jobs:\n  - inputs: [a.pdf]\n"},
		{"not yaml", ":\tnope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJobFile(t, tt.content)
			_, err := ReadJobFile(path)
			assert.Error(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	jobs := []Job{
		{Inputs: []string{"a.pdf", "b.pdf"}, Output: "ok.pdf", Overwrite: true},
		{Inputs: []string{"c.pdf"}, Output: "bad.pdf"},
		{Inputs: []string{"d.pdf"}, Output: "ok2.pdf", KeepMetadata: true},
	}
	m := &fakeMerger{errs: map[string]error{"bad.pdf": errors.New("flatten failure: c.pdf")}}

	var log bytes.Buffer
	result := Run(m, jobs, &log)

	assert.Equal(t, 2, result.Merged)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())

	require.Len(t, m.calls, 3)
	assert.True(t, m.calls[0].Overwrite)
	assert.True(t, m.calls[2].KeepMetadata)

	out := log.String()
	assert.Contains(t, out, "merged: ok.pdf (2 inputs)")
	assert.Contains(t, out, "failed:  bad.pdf")
	assert.Contains(t, out, "Batch summary: 2 merged, 1 failed (total: 3)")
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	jobs := []Job{
		{Inputs: []string{"a.pdf"}, Output: "bad.pdf"},
		{Inputs: []string{"b.pdf"}, Output: "ok.pdf"},
	}
	m := &fakeMerger{errs: map[string]error{"bad.pdf": errors.New("boom")}}

	result := Run(m, jobs, &bytes.Buffer{})
	assert.Equal(t, 1, result.Merged)
	assert.Len(t, m.calls, 2, "the batch must not stop at the first failure")
}

func TestWriteReport(t *testing.T) {
	jobs := []Job{
		{Inputs: []string{"a.pdf"}, Output: "ok.pdf"},
		{Inputs: []string{"b.pdf"}, Output: "bad.pdf"},
	}
	m := &fakeMerger{errs: map[string]error{"bad.pdf": errors.New("unreadable input: b.pdf")}}
	result := Run(m, jobs, &bytes.Buffer{})

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, result.Report()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal(data, &report))

	assert.Equal(t, 1, report.Merged)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.Timestamp.IsZero())
	require.Len(t, report.Jobs, 2)
	assert.Equal(t, "merged", report.Jobs[0].Status)
	assert.Equal(t, "failed", report.Jobs[1].Status)
	assert.Contains(t, report.Jobs[1].Error, "unreadable input")
}
