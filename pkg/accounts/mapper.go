// Package accounts provides an optional alias mapping from short
// account names to full ledger account names.
package accounts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mapper maps account aliases to full account names. A nil Mapper is
// valid and resolves every name to itself.
type Mapper struct {
	aliases map[string]string
}

// mappingFile is the on-disk shape of the aliases file:
//
//	aliases:
//	  checking: Assets:Checking
//	  visa: Liabilities:CreditCard
type mappingFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadMapper reads an alias mapping from a YAML file. A missing file
// yields a nil Mapper (identity mapping), not an error.
func LoadMapper(path string) (*Mapper, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file %s: %w", path, err)
	}

	return &Mapper{aliases: file.Aliases}, nil
}

// NewMapper creates a Mapper from an alias map.
func NewMapper(aliases map[string]string) *Mapper {
	return &Mapper{aliases: aliases}
}

// Resolve returns the full account name for an alias, or the input
// unchanged when no alias is defined.
func (m *Mapper) Resolve(name string) string {
	if m == nil {
		return name
	}
	if full, ok := m.aliases[name]; ok {
		return full
	}
	return name
}

// HasAlias reports whether name is a defined alias.
func (m *Mapper) HasAlias(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.aliases[name]
	return ok
}
