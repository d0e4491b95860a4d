package main

import (
	"os"

	"github.com/husi/advent-of-tdd/cmd/advent"
)

func main() {
	os.Exit(advent.Execute())
}
