package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/accounts"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/bank"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/classifier"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/config"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/db"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/ledger"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/prompt"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/rules"
)

var dryRun bool

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <statement.csv> <account> [output]",
	Short: "Import a bank statement into ledger entries",
	Long: `Import a bank statement and classify every transaction.

This command:
1. Parses the statement (any malformed row aborts the whole run)
2. Matches each transaction against the persisted rules
3. Prompts you for unmatched or ambiguous transactions
4. Writes the ledger output and the updated rules file
5. Records the run in the history database

The ledger and rules files are written once, after the whole batch is
classified. Nothing is persisted if the run is aborted.

Example:
  ledgerize import statement.csv Assets:Checking
  ledgerize import statement.csv checking out/march.ledger --dry-run`,
	Args: cobra.RangeArgs(2, 3),
	Run:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the ledger to stdout instead of writing files")
}

func runImport(cmd *cobra.Command, args []string) {
	inputFile := args[0]
	suppliedAccount := args[1]

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	outputFile := cfg.OutputFile
	if len(args) == 3 {
		outputFile = args[2]
	}

	// Parse the whole statement up front: a malformed row must abort
	// the run before any rules are touched.
	txns, err := bank.ParseStatementFile(inputFile)
	exitOnError(err, "failed to parse statement")
	slog.Info("Parsed statement", "file", inputFile, "transactions", len(txns))

	// Account alias mapping is optional; a missing file means no aliases.
	aliases, err := accounts.LoadMapper(cfg.AccountsFile)
	exitOnError(err, "failed to load account aliases")
	account := aliases.Resolve(suppliedAccount)

	rulesRepo := rules.NewFileRepository(cfg.RulesFile)
	resolver := prompt.NewTerminalResolver(os.Stdin, os.Stdout)
	batch := classifier.NewBatch(classifier.New(resolver, aliases), rulesRepo)

	result, err := batch.Process(txns, account)
	exitOnError(err, "import aborted")

	if dryRun {
		fmt.Println("\n[DRY RUN] Generated ledger:")
		fmt.Print(ledger.Format(result.Entries))
		return
	}

	// Persist ledger first, then rules. Both are whole-file writes;
	// a failure here loses the session's rule edits, so it is fatal
	// and loud rather than silently masked.
	err = ledger.NewFileRepository(outputFile).WriteAll(result.Entries)
	exitOnError(err, "failed to write ledger file")

	err = rulesRepo.Save(result.Store)
	exitOnError(err, "failed to save rules file")

	slog.Info("Import completed",
		"entries", len(result.Entries),
		"rules_added", result.RulesAdded,
		"ledger_file", outputFile,
	)

	recordRun(cfg, db.RunRecord{
		RunID:        uuid.NewString(),
		InputFile:    inputFile,
		Account:      account,
		Transactions: len(txns),
		Entries:      len(result.Entries),
		RulesAdded:   result.RulesAdded,
		LedgerFile:   outputFile,
	})
}

// recordRun stores the run in the history database. The ledger and
// rules are already on disk at this point, so a history failure is
// logged, not fatal.
func recordRun(cfg *config.Config, record db.RunRecord) {
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Warn("failed to open history database", "path", cfg.DBPath, "error", err)
		return
	}
	defer conn.Close()

	history := db.NewRunHistory(conn)
	if err := history.RecordRun(record); err != nil {
		slog.Warn("failed to record run history", "run_id", record.RunID, "error", err)
	}
}
