// Package bank parses bank-exported transaction statements into raw
// transactions with exact minor-unit amounts.
package bank

import (
	"time"
)

// Transaction is one statement row. Immutable after parsing.
//
// AmountMinor is the signed amount in minor currency units (cents).
// Negative means money leaving the statement holder's account.
type Transaction struct {
	Date        time.Time
	Name        string
	AmountMinor int64
}

// Outflow reports whether the transaction moves money out of the
// statement holder's account.
func (t Transaction) Outflow() bool {
	return t.AmountMinor < 0
}

// AbsAmountMinor returns the unsigned amount in minor units.
func (t Transaction) AbsAmountMinor() int64 {
	if t.AmountMinor < 0 {
		return -t.AmountMinor
	}
	return t.AmountMinor
}
