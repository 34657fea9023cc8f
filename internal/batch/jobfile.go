// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Job describes one merge in a job file.
type Job struct {
	Inputs       []string `yaml:"inputs"`
	Output       string   `yaml:"output"`
	Overwrite    bool     `yaml:"overwrite,omitempty"`
	KeepMetadata bool     `yaml:"keep_metadata,omitempty"`
}

// JobFile is the on-disk representation of a batch of merges.
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// ReadJobFile loads a batch job file from disk.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("job file %s lists no jobs", path)
	}
	for i, j := range jf.Jobs {
		if len(j.Inputs) == 0 {
			return nil, fmt.Errorf("job %d lists no inputs", i+1)
		}
		if j.Output == "" {
			return nil, fmt.Errorf("job %d has no output path", i+1)
		}
	}
	return &jf, nil
}

// JobReport records one job's outcome in a batch report.
type JobReport struct {
	Output string `yaml:"output"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

// Report is the on-disk summary of a batch run.
type Report struct {
	Jobs      []JobReport `yaml:"jobs"`
	Merged    int         `yaml:"merged"`
	Failed    int         `yaml:"failed"`
	Timestamp time.Time   `yaml:"timestamp"`
}

// WriteReport saves a batch report to a YAML file.
func WriteReport(path string, report Report) error {
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
