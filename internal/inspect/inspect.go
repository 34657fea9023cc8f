// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect implements document preflight: it verifies that an input
// is a readable PDF and reports page count, document metadata, and whether
// an interactive AcroForm is present.
package inspect

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/invoice-merge/pkg/types"
)

// Info describes one inspected document.
type Info struct {
	Path      string            `json:"path" yaml:"path"`
	Pages     int               `json:"pages" yaml:"pages"`
	Metadata  types.DocMetadata `json:"metadata" yaml:"metadata"`
	HasForm   bool              `json:"has_form" yaml:"has_form"`
	Encrypted bool              `json:"encrypted" yaml:"encrypted"`
}

// Inspector probes a document at a path.
type Inspector interface {
	// Inspect returns document info, or an error if the file is missing,
	// not a valid PDF, or encrypted without usable credentials.
	Inspect(path string) (*Info, error)
}

// PDFCPU is the production Inspector backed by the pdfcpu library.
type PDFCPU struct {
	conf *model.Configuration
}

// New creates a pdfcpu-backed inspector. password, when non-empty, is used
// as the user password for encrypted documents.
func New(password string) *PDFCPU {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
	}
	return &PDFCPU{conf: conf}
}

func (p *PDFCPU) Inspect(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := api.PDFInfo(f, path, nil, p.conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &Info{
		Path:  path,
		Pages: info.PageCount,
		Metadata: types.DocMetadata{
			Title:  info.Title,
			Author: info.Author,
		},
		HasForm:   info.Form,
		Encrypted: info.Encrypted,
	}, nil
}
