// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan implements folder mode: given a directory holding a
// filled-out vendor cover sheet and the matching invoice, it decides which
// PDF is which and what the merged output should be called.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/invoice-merge/pkg/types"
)

// DefaultKeywords mark a file as the vendor cover sheet when any of them
// appears in its name.
var DefaultKeywords = []string{"vendor", "cover", "6.0", "whcrwa"}

// DefaultOutputName is the merged document written back into the folder.
const DefaultOutputName = "FINAL_MERGED_INVOICE.pdf"

// Plan is the resolved merge order for one folder: the vendor cover sheet
// first, then the invoice.
type Plan struct {
	Vendor  string
	Invoice string
	Output  string
}

// Inputs returns the merge inputs in order.
func (p *Plan) Inputs() []string {
	return []string{p.Vendor, p.Invoice}
}

// BuildPlan lists the PDFs in dir, identifies the vendor cover sheet by
// filename keywords, pairs it with the first other PDF, and returns the
// resulting plan. A previously produced output file in the folder is not a
// candidate.
func BuildPlan(dir string, cfg types.ScanConfig) (*Plan, error) {
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	outputName := cfg.OutputName
	if outputName == "" {
		outputName = DefaultOutputName
	}

	pdfs, err := listPDFs(dir, outputName)
	if err != nil {
		return nil, err
	}
	if len(pdfs) < 2 {
		return nil, fmt.Errorf("need at least two PDF files in %s, found %d", dir, len(pdfs))
	}

	vendor := identifyVendor(pdfs, keywords)
	invoice := ""
	for _, p := range pdfs {
		if p != vendor {
			invoice = p
			break
		}
	}
	if invoice == "" {
		return nil, fmt.Errorf("no invoice PDF found in %s besides the vendor cover sheet", dir)
	}

	return &Plan{
		Vendor:  vendor,
		Invoice: invoice,
		Output:  filepath.Join(dir, outputName),
	}, nil
}

// listPDFs returns the PDF files in dir, sorted by name, excluding any file
// named outputName.
func listPDFs(dir, outputName string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		if name == outputName {
			continue
		}
		pdfs = append(pdfs, filepath.Join(dir, name))
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// identifyVendor returns the first PDF whose name contains a keyword, or
// the first PDF as a fallback.
func identifyVendor(pdfs []string, keywords []string) string {
	for _, p := range pdfs {
		name := strings.ToLower(filepath.Base(p))
		for _, kw := range keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				return p
			}
		}
	}
	return pdfs[0]
}
