package main

import (
	"os"

	"github.com/rkotla/subcue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
