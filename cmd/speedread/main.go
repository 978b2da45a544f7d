// Package main is the entry point for the speedread CLI.
package main

import (
	"os"

	"github.com/f3rmion/speedread/cmd/speedread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
