// Package classifier turns raw bank transactions into double-entry
// ledger entries, driving the rule matcher and the operator dialog and
// threading rule edits through the batch.
package classifier

import (
	"fmt"
	"log/slog"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/accounts"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/bank"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/ledger"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/prompt"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/rules"
)

// Classifier classifies one transaction at a time. It is the only
// component that decides entry direction and rule persistence.
type Classifier struct {
	resolver prompt.Resolver
	aliases  *accounts.Mapper
}

// New creates a Classifier. aliases may be nil for identity account
// resolution.
func New(resolver prompt.Resolver, aliases *accounts.Mapper) *Classifier {
	return &Classifier{
		resolver: resolver,
		aliases:  aliases,
	}
}

// Classify builds the ledger entry for txn and returns the store with
// any rule edits merged in. The input store is never mutated.
func (c *Classifier) Classify(txn bank.Transaction, suppliedAccount string, store rules.Store) (ledger.Entry, rules.Store, error) {
	if err := c.resolver.ShowTransaction(txn); err != nil {
		return ledger.Entry{}, store, err
	}

	pattern, rule, err := c.resolveRule(txn.Name, store)
	if err != nil {
		return ledger.Entry{}, store, err
	}

	// Walk the three editable fields. The entry always uses the chosen
	// value; the rule only absorbs values the operator asked to keep.
	updated := rule

	name, save, err := c.resolver.ResolveField("name", rule.Name)
	if err != nil {
		return ledger.Entry{}, store, err
	}
	if save {
		updated.Name = name
	}

	comment, save, err := c.resolver.ResolveField("comment", rule.Comment)
	if err != nil {
		return ledger.Entry{}, store, err
	}
	if save {
		updated.Comment = comment
	}

	otherParty, save, err := c.resolver.ResolveField("counter-account", rule.OtherParty)
	if err != nil {
		return ledger.Entry{}, store, err
	}
	if save {
		updated.OtherParty = otherParty
	}

	otherParty = c.aliases.Resolve(otherParty)

	entry := ledger.Entry{
		Date:        txn.Date,
		Name:        name,
		AmountMinor: txn.AbsAmountMinor(),
		Comment:     comment,
	}

	// Negative amount: money leaves the supplied account toward the
	// counter-account. Non-negative: the reverse.
	if txn.Outflow() {
		entry.Credited = otherParty
		entry.Debited = suppliedAccount
	} else {
		entry.Credited = suppliedAccount
		entry.Debited = otherParty
	}

	return entry, store.Merge(pattern, updated), nil
}

// resolveRule finds the rule to apply, involving the operator when the
// store has no answer or too many.
func (c *Classifier) resolveRule(name string, store rules.Store) (string, rules.Rule, error) {
	result, err := rules.Find(store, name)
	if err != nil {
		return "", rules.Rule{}, err
	}

	switch result.Kind {
	case rules.MatchFound:
		entry := result.Entry()
		return entry.Pattern, entry.Rule, nil

	case rules.MatchNotFound:
		return c.resolver.ResolveAbsence(name)

	case rules.MatchAmbiguous:
		patterns := make([]string, 0, len(result.Candidates))
		for _, cand := range result.Candidates {
			patterns = append(patterns, cand.Pattern)
		}
		slog.Warn("ambiguous rule match, falling back to one-off defaults",
			"name", name, "patterns", patterns)

		rule, err := c.resolver.ResolveAmbiguity(name, result.Candidates)
		return "", rule, err

	default:
		return "", rules.Rule{}, fmt.Errorf("unexpected match kind %d", result.Kind)
	}
}
