package main

import (
	"os"

	"medconnect/cmd/medconnect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
