package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/config"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/db"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display import run statistics",
	Long: `Display statistics about past import runs.

Shows:
- Total number of runs
- Total number of ledger entries written
- Total number of rules created
- The most recent runs

Example:
  ledgerize stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	slog.Debug("Opening history database", "path", cfg.DBPath)
	conn, err := db.Open(cfg.DBPath)
	exitOnError(err, "failed to open history database")
	defer conn.Close()

	history := db.NewRunHistory(conn)

	stats, err := history.GetStats()
	exitOnError(err, "failed to get statistics")

	fmt.Println("\n=== Import Statistics ===")
	fmt.Printf("Total runs:          %d\n", stats.TotalRuns)
	fmt.Printf("Total entries:       %d\n", stats.TotalEntries)
	fmt.Printf("Total rules created: %d\n", stats.TotalRulesAdded)

	if stats.LastRun.Valid {
		fmt.Printf("Last run:            %s\n", stats.LastRun.String)
	} else {
		fmt.Printf("Last run:            (never)\n")
	}

	recent, err := history.GetRecentRuns(5)
	exitOnError(err, "failed to get recent runs")

	if len(recent) > 0 {
		fmt.Println("\nRecent runs:")
		for _, r := range recent {
			fmt.Printf("  %s  %s  %s  %d entries\n",
				r.RecordedAt.Format("2006-01-02 15:04"),
				r.InputFile,
				r.Account,
				r.Entries,
			)
		}
	}

	fmt.Println()
}
