package main

import (
	"os"

	"github.com/obinexus/mmuoko-connect/cmd/mmuoko/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
