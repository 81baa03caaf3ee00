package accounts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMapperMissingFileIsIdentity(t *testing.T) {
	mapper, err := LoadMapper(filepath.Join(t.TempDir(), "accounts.yaml"))
	if err != nil {
		t.Fatalf("LoadMapper returned error: %v", err)
	}
	if mapper != nil {
		t.Errorf("expected nil mapper for missing file, got %+v", mapper)
	}
	// Nil mapper still resolves.
	if got := mapper.Resolve("checking"); got != "checking" {
		t.Errorf("Resolve on nil mapper = %q, want identity", got)
	}
}

func TestLoadMapper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	content := `aliases:
  checking: Assets:Checking
  visa: Liabilities:CreditCard
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	mapper, err := LoadMapper(path)
	if err != nil {
		t.Fatalf("LoadMapper returned error: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"checking", "Assets:Checking"},
		{"visa", "Liabilities:CreditCard"},
		{"Assets:Savings", "Assets:Savings"},
	}
	for _, tt := range tests {
		if got := mapper.Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if !mapper.HasAlias("checking") || mapper.HasAlias("Assets:Savings") {
		t.Error("HasAlias answers wrong")
	}
}

func TestLoadMapperRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	if err := os.WriteFile(path, []byte("aliases: [not: a map"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadMapper(path); err == nil {
		t.Error("expected error for malformed accounts file")
	}
}
