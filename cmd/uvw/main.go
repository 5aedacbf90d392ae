package main

import (
	"os"

	"github.com/arthur-debert/uvw/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	os.Exit(cli.Report(os.Stderr, rootCmd.Execute()))
}
