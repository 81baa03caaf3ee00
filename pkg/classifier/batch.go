package classifier

import (
	"log/slog"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/bank"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/ledger"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/rules"
)

// Batch folds the classifier over an ordered sequence of transactions.
type Batch struct {
	classifier *Classifier
	repo       rules.Repository
}

// NewBatch creates a Batch reading its initial rule store from repo.
// Saving the final store is the caller's responsibility, after the
// output has been written.
func NewBatch(classifier *Classifier, repo rules.Repository) *Batch {
	return &Batch{
		classifier: classifier,
		repo:       repo,
	}
}

// Result is the outcome of a full batch.
type Result struct {
	Entries    []ledger.Entry
	Store      rules.Store
	RulesAdded int
}

// Process classifies every transaction strictly in input order,
// threading the evolving store forward so a rule created for
// transaction i is visible from transaction i+1 on. The ordering
// dependency is why the fold is sequential.
func (b *Batch) Process(txns []bank.Transaction, suppliedAccount string) (*Result, error) {
	store, err := b.repo.Load()
	if err != nil {
		return nil, err
	}
	initial := store.Len()

	slog.Debug("starting batch", "transactions", len(txns), "rules", initial)

	entries := make([]ledger.Entry, 0, len(txns))
	for _, txn := range txns {
		entry, next, err := b.classifier.Classify(txn, suppliedAccount, store)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		store = next
	}

	return &Result{
		Entries:    entries,
		Store:      store,
		RulesAdded: store.Len() - initial,
	}, nil
}
