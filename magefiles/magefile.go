//go:build mage

// Package main contains Mage build targets for invoice-merge developer
// tooling. The dist target produces the archive handed to the downstream
// packaging/signing pipeline.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	distDir = "dist"
	binName = "invoice-merge"
	cmdPkg  = "./cmd/invoice-merge"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Dist builds the binary and archives it into dist/ for the packaging
// pipeline.
func Dist() error {
	mg.Deps(Build)
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", distDir, err)
	}
	archive := filepath.Join(distDir, binName+".tar.gz")
	cmd := exec.Command("tar", "-czf", archive, "-C", binDir, binName)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tar: %w", err)
	}
	fmt.Printf("Archived %s\n", archive)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	for _, dir := range []string{binDir, distDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	fmt.Println("Cleaned.")
	return nil
}
