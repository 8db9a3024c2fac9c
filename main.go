package main

import (
	"os"

	"github.com/spigell/ats-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
