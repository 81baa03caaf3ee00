// Package cmd provides CLI commands for ledgerize.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgerize",
	Short: "Convert bank statements to double-entry ledger entries",
	Long: `ledgerize converts a bank-exported transaction statement into
double-entry bookkeeping records, classifying each transaction with a
persistent set of pattern-matching rules.

Unmatched transactions are resolved interactively: you can create a
rule on the spot, and edits you confirm are written back to the rules
file for the next run.

Example:
  ledgerize import statement.csv Assets:Checking
  ledgerize stats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging. Logs go to stderr so the operator dialog on
		// stdout stays clean.
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	return cfgFile
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
