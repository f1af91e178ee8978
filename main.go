package main

import (
	"os"

	"github.com/abhisek/churnlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
