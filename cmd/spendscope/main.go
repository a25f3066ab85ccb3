package main

import (
	"os"

	"github.com/spendscope-dev/spendscope/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
