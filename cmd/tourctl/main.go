// Package main is the entry point for the tourctl CLI.
package main

import (
	"os"

	"github.com/guttosm/tour-service/cmd/tourctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
