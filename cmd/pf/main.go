package main

import (
	"os"

	"github.com/parentfeel/parentfeel-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
