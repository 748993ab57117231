package main

import (
	"os"

	"github.com/rafaelfne/pressroom-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
