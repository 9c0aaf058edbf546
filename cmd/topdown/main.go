package main

import (
	"os"

	"github.com/msto63/topdown/cmd/topdown/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
