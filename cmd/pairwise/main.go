package main

import (
	"os"

	"github.com/pablasso/pairwise/internal/cli"
)

func main() {
	// With no args, run the batch in the interactive view
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"batch", "--tui"}
	}
	if err := cli.ExecuteArgs(args); err != nil {
		os.Exit(1)
	}
}
