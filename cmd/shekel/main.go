package main

import (
	"os"

	"github.com/KJone1/shekel/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
