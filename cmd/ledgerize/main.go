// Package main is the entry point for the ledgerize CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/ledgerize/cmd/ledgerize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
