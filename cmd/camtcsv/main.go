package main

import (
	"os"

	"github.com/camt-tools/camtcsv/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
