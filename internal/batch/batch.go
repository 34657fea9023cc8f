// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the merges listed in a YAML job file and summarizes
// the outcome. Individual job failures do not stop the batch.
package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/invoice-merge/internal/merge"
)

// Merger runs one merge. *merge.Engine satisfies it.
type Merger interface {
	Merge(inputs []string, output string, opts merge.Options) error
}

// Result holds the outcome of a batch run.
type Result struct {
	Merged  int
	Failed  int
	Reports []JobReport
}

// Total returns the total number of jobs processed.
func (r Result) Total() int {
	return r.Merged + r.Failed
}

// HasFailures reports whether any job failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Report converts the result into its on-disk form.
func (r Result) Report() Report {
	return Report{
		Jobs:      r.Reports,
		Merged:    r.Merged,
		Failed:    r.Failed,
		Timestamp: time.Now(),
	}
}

// Run executes jobs in order through m, printing per-job status to w and
// returning a summary.
func Run(m Merger, jobs []Job, w io.Writer) Result {
	var result Result
	for _, job := range jobs {
		opts := merge.Options{
			Overwrite:    job.Overwrite,
			KeepMetadata: job.KeepMetadata,
		}
		if err := m.Merge(job.Inputs, job.Output, opts); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", job.Output, err)
			result.Failed++
			result.Reports = append(result.Reports, JobReport{
				Output: job.Output,
				Status: "failed",
				Error:  err.Error(),
			})
			continue
		}
		fmt.Fprintf(w, "merged: %s (%d inputs)\n", job.Output, len(job.Inputs))
		result.Merged++
		result.Reports = append(result.Reports, JobReport{
			Output: job.Output,
			Status: "merged",
		})
	}
	fmt.Fprintf(w, "\nBatch summary: %d merged, %d failed (total: %d)\n",
		result.Merged, result.Failed, result.Total())
	return result
}
