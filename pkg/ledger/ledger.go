// Package ledger renders classified transactions as double-entry
// ledger text and writes the output file.
package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one double-entry record. Append-only: built once per
// transaction and never mutated afterwards.
type Entry struct {
	Date        time.Time
	Name        string
	Credited    string
	Debited     string
	AmountMinor int64 // unsigned minor units
	Comment     string
}

// FormatAmount renders unsigned minor units as a two-decimal monetary
// value, e.g. 4567 -> "45.67". Integer arithmetic keeps the rendering
// exact for every amount.
func FormatAmount(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

// FormatEntry renders one entry as its three-line ledger block:
//
//	YYYY/MM/DD <name>[    ; <comment>]
//	    <credited account>    $<amount>
//	    <debited account>
//
// The comment suffix is omitted entirely when the comment is empty.
func FormatEntry(e Entry) string {
	var sb strings.Builder

	sb.WriteString(e.Date.Format("2006/01/02"))
	sb.WriteString(" ")
	sb.WriteString(e.Name)
	if e.Comment != "" {
		sb.WriteString("    ; ")
		sb.WriteString(e.Comment)
	}
	sb.WriteString("\n")

	sb.WriteString("    ")
	sb.WriteString(e.Credited)
	sb.WriteString("    $")
	sb.WriteString(FormatAmount(e.AmountMinor))
	sb.WriteString("\n")

	sb.WriteString("    ")
	sb.WriteString(e.Debited)
	sb.WriteString("\n")

	return sb.String()
}

// Format renders all entries in order, separated by blank lines.
func Format(entries []Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, FormatEntry(e))
	}
	return strings.Join(blocks, "\n")
}
