package main

import (
	"os"

	"github.com/govalues/radix/cmd/baseconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
