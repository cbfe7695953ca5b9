package main

import (
	"os"

	"github.com/jwyoon/equityboard/cmd/equityboard/commands"
)

// main is the entry point for the equityboard CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
