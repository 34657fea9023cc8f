// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and document types shared across the
// CLI and the internal packages.
package types

// DocMetadata is the document-information subset carried from the first
// input into the merged output when metadata preservation is requested.
type DocMetadata struct {
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m DocMetadata) IsZero() bool {
	return m.Title == "" && m.Author == ""
}
