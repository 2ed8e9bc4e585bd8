package main

import (
	"os"

	"github.com/ecmago/ecmaparse/cmd/ecmaparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
