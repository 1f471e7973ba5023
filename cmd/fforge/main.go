// Package main is the entry point for the fforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/flaskforge/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	// Only argument and flag errors reach this point; pipeline stage
	// failures are absorbed and reported in the run summary.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
