package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/husi/advent-of-tdd/cmd/advent"
	"github.com/husi/advent-of-tdd/internal/version"
)

func main() {
	rootCmd := advent.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ADVENT",
		Section: "1",
		Source:  "advent " + version.Version,
		Manual:  "advent manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
