// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Concatenator joins PDF files, in order, into one output file.
type Concatenator interface {
	Concat(inputs []string, output string) error
}

// PDFCPUConcat is the production Concatenator backed by pdfcpu.
type PDFCPUConcat struct {
	conf *model.Configuration
}

// NewPDFCPUConcat creates a concatenator with relaxed validation, since its
// inputs have already passed preflight and flattening.
func NewPDFCPUConcat() *PDFCPUConcat {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPUConcat{conf: conf}
}

func (c *PDFCPUConcat) Concat(inputs []string, output string) error {
	if err := api.MergeCreateFile(inputs, output, false, c.conf); err != nil {
		return fmt.Errorf("concatenating %d files: %w", len(inputs), err)
	}
	return nil
}
