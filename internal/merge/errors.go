// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import "fmt"

// FailureKind classifies why a merge failed. Each kind maps to a distinct
// process exit code so callers can diagnose a failure from the code alone.
type FailureKind int

const (
	// UnreadableInput: an input path is missing, not a valid PDF, or
	// encrypted without usable credentials.
	UnreadableInput FailureKind = iota + 1

	// FlattenFailure: the rasterizer could not render a document's
	// interactive content into static page content.
	FlattenFailure

	// EmptyMerge: the inputs contain no pages at all.
	EmptyMerge

	// OutputConflict: the output path exists and overwriting is not
	// permitted.
	OutputConflict

	// WriteFailure: the merged document could not be written or moved
	// into place.
	WriteFailure
)

func (k FailureKind) String() string {
	switch k {
	case UnreadableInput:
		return "unreadable input"
	case FlattenFailure:
		return "flatten failure"
	case EmptyMerge:
		return "empty merge"
	case OutputConflict:
		return "output conflict"
	case WriteFailure:
		return "write failure"
	}
	return "unknown failure"
}

// ExitCode returns the process exit code for the kind (2 through 6).
func (k FailureKind) ExitCode() int {
	return int(k) + 1
}

// Error is the failure type returned by Engine.Merge. Path names the
// offending file where one is attributable.
type Error struct {
	Kind FailureKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func failure(kind FailureKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
