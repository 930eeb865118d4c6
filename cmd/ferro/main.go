package main

import (
	"os"

	"github.com/chazu/ferro/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
