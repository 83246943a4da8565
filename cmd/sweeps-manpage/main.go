package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sweeps/cmd/sweeps"
	"github.com/arthur-debert/sweeps/internal/version"
)

func main() {
	rootCmd := sweeps.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SWEEPS",
		Section: "1",
		Source:  "sweeps " + version.Version,
		Manual:  "sweeps manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
