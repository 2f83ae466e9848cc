package main

import (
	"os"

	"github.com/libhub-dev/libhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
