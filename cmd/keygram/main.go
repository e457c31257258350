package main

import (
	"os"

	"github.com/keygram/keygram/cmd/keygram/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
