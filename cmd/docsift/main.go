package main

import (
	"os"

	"docsift/cmd/docsift/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
