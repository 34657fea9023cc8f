// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RasterConfig holds settings for the flattening rasterizer.
type RasterConfig struct {
	// Ghostscript overrides the Ghostscript binary name or path.
	// Empty selects the platform default (gswin64c on Windows, gs elsewhere).
	Ghostscript string `json:"ghostscript,omitempty" yaml:"ghostscript,omitempty"`

	// Epoch is the SOURCE_DATE_EPOCH value exported to the rasterizer so
	// that embedded timestamps are pinned and output is reproducible.
	Epoch int64 `json:"epoch" yaml:"epoch"`
}

// MergeConfig holds settings for the merge-flatten engine.
type MergeConfig struct {
	Raster RasterConfig `yaml:",inline"`

	// Password is the user password applied when opening encrypted inputs.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// ScanConfig holds settings for folder mode.
type ScanConfig struct {
	// Keywords mark a PDF as the vendor cover sheet when any of them
	// appears in its file name (case-insensitive).
	Keywords []string `json:"keywords" yaml:"keywords"`

	// OutputName is the file name of the merged document written into the
	// scanned folder.
	OutputName string `json:"output_name" yaml:"output_name"`
}

// ToolConfig groups all configuration for the CLI.
type ToolConfig struct {
	Merge MergeConfig `json:"merge" yaml:"merge"`
	Scan  ScanConfig  `json:"scan" yaml:"scan"`
}
