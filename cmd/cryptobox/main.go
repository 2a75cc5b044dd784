package main

import (
	"os"

	"cryptobox/cmd/cryptobox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
