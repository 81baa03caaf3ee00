package classifier

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/bank"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/ledger"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/prompt"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/rules"
)

// memoryRepo is an in-memory rules.Repository for batch tests.
type memoryRepo struct {
	store rules.Store
}

func (m *memoryRepo) Load() (rules.Store, error) { return m.store, nil }
func (m *memoryRepo) Save(s rules.Store) error   { m.store = s; return nil }

func TestProcessThreadsRuleEditsForward(t *testing.T) {
	// The first transaction creates a rule; the second must be matched
	// by it without another absence prompt.
	resolver := &fakeResolver{
		absencePattern: "AMAZON",
		fieldValues: map[string]fieldAnswer{
			"counter-account": {value: "Expenses:Shopping", save: true},
		},
	}
	batch := NewBatch(New(resolver, nil), &memoryRepo{})

	txns := []bank.Transaction{
		txnOn(5, "AMAZON MKTPLACE", -4567),
		txnOn(6, "AMAZON PRIME", -999),
	}

	result, err := batch.Process(txns, "Checking")
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if resolver.absenceCalls != 1 {
		t.Errorf("absence calls = %d, want 1 (rule must carry forward)", resolver.absenceCalls)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(result.Entries))
	}
	if result.Entries[1].Credited != "Expenses:Shopping" {
		t.Errorf("second entry did not use the new rule: %+v", result.Entries[1])
	}
	if result.RulesAdded != 1 {
		t.Errorf("RulesAdded = %d, want 1", result.RulesAdded)
	}
}

func TestProcessPreservesInputOrder(t *testing.T) {
	batch := NewBatch(New(&fakeResolver{}, nil), &memoryRepo{
		store: rules.NewStore(rules.Entry{Pattern: ".", Rule: rules.Rule{OtherParty: "Expenses:Misc"}}),
	})

	txns := []bank.Transaction{
		txnOn(3, "C", -1),
		txnOn(1, "A", -2),
		txnOn(2, "B", -3),
	}

	result, err := batch.Process(txns, "Checking")
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	for i, txn := range txns {
		if !result.Entries[i].Date.Equal(txn.Date) {
			t.Errorf("entry %d reordered: got %v, want %v", i, result.Entries[i].Date, txn.Date)
		}
	}
}

// TestImportScenario runs the full pipeline for one statement row with
// a scripted operator dialog: create pattern AMAZON, set name, comment
// and counter-account, persist all three.
func TestImportScenario(t *testing.T) {
	input := "Date,Type,Description,Reference,Amount\n" +
		`2024-01-05,IGN,"AMAZON MKTPLACE",IGN,-45.67` + "\n"

	txns, err := bank.ParseStatement(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseStatement returned error: %v", err)
	}

	dialog := strings.Join([]string{
		"y",                 // create a rule
		"AMAZON",            // pattern
		"Amazon", "y",       // name, save
		"online order", "y", // comment, save
		"Expenses:Shopping", "y", // counter-account, save
	}, "\n") + "\n"

	var out bytes.Buffer
	resolver := prompt.NewTerminalResolver(strings.NewReader(dialog), &out)

	repo := rules.NewFileRepository(filepath.Join(t.TempDir(), "rules.json"))
	batch := NewBatch(New(resolver, nil), repo)

	result, err := batch.Process(txns, "Checking")
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	wantBlock := "2024/01/05 Amazon    ; online order\n" +
		"    Expenses:Shopping    $45.67\n" +
		"    Checking\n"
	if got := ledger.Format(result.Entries); got != wantBlock {
		t.Errorf("ledger block mismatch:\ngot:\n%s\nwant:\n%s", got, wantBlock)
	}

	if err := repo.Save(result.Store); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	saved, err := repo.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := rules.NewStore(rules.Entry{
		Pattern: "AMAZON",
		Rule: rules.Rule{
			Name:       "Amazon",
			OtherParty: "Expenses:Shopping",
			Comment:    "online order",
		},
	})
	if !saved.Equal(want) {
		t.Errorf("saved store mismatch:\ngot:  %+v\nwant: %+v", saved.Entries(), want.Entries())
	}
}
