//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Fetch builds the CLI and downloads every BLDB record into fasta/.
// Existing files are kept; delete them to re-download.
func Fetch() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "fetch", "--output-dir", fastaDir)
}
