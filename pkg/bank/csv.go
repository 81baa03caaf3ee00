package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Statement rows have five positional fields after the header:
// date, (ignored), name, (ignored), signed decimal amount.
const statementFieldCount = 5

const (
	fieldDate   = 0
	fieldName   = 2
	fieldAmount = 4
)

// ParseStatement reads a delimited statement from r. The first row is
// a header and is skipped. Any malformed row aborts the whole parse;
// the caller gets either every transaction or none.
func ParseStatement(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []Transaction
	for i, record := range records[1:] {
		txn, err := parseRow(record)
		if err != nil {
			// Row numbers are 1-based and include the header.
			return nil, fmt.Errorf("statement row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

// ParseStatementFile reads a statement from a file.
func ParseStatementFile(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer f.Close()

	return ParseStatement(f)
}

func parseRow(record []string) (Transaction, error) {
	if len(record) != statementFieldCount {
		return Transaction{}, fmt.Errorf("expected %d fields, got %d", statementFieldCount, len(record))
	}

	date, err := time.Parse("2006-01-02", record[fieldDate])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q: %w", record[fieldDate], err)
	}

	amount, err := parseAmountMinor(record[fieldAmount])
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Date:        date,
		Name:        record[fieldName],
		AmountMinor: amount,
	}, nil
}

// parseAmountMinor converts a signed decimal amount string to integer
// minor units. Exact decimal arithmetic, not floating point: "45.67"
// becomes 4567 with no rounding drift. Fractional digits beyond the
// second are truncated.
func parseAmountMinor(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}
