package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/uvw/internal/cli"
	"github.com/arthur-debert/uvw/internal/version"
)

// Writes one man page per command into the directory given as the only
// argument (default "man").
func main() {
	dir := "man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "UVW",
		Section: "1",
		Source:  "uvw " + version.Version,
		Manual:  "uvw manual",
	}

	if err := doc.GenManTree(cli.NewRootCmd(), header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
