package main

import (
	"os"

	"github.com/conchshell/conch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
