package main

import (
	"os"

	"github.com/jorren/quotespark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
