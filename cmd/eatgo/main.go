package main

import (
	"os"

	"eatgo/cmd/eatgo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
