package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/pathutil"
)

// Repository defines persistence for a rule Store.
type Repository interface {
	// Load reads the persisted store. A missing file is the first-run
	// case and yields an empty store, not an error.
	Load() (Store, error)

	// Save writes the full store, overwriting any previous contents.
	Save(store Store) error
}

// FileRepository persists a Store as a pretty-printed JSON object in a
// single file. The JSON object's key order is the store's precedence
// order, so the file both round-trips and stays hand-editable.
type FileRepository struct {
	path string
}

// NewFileRepository creates a FileRepository for the given path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the rules file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the rules file. Returns an empty store if the file does
// not exist.
func (r *FileRepository) Load() (Store, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return Store{}, nil
	}
	if err != nil {
		return Store{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	store, err := decodeStore(data)
	if err != nil {
		return Store{}, fmt.Errorf("failed to parse rules file %s: %w", r.path, err)
	}

	return store, nil
}

// Save writes the store to the rules file, replacing it entirely.
func (r *FileRepository) Save(store Store) error {
	data, err := encodeStore(store)
	if err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}

	if err := pathutil.EnsureParentDir(r.path); err != nil {
		return err
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	return nil
}

// encodeStore renders the store as an indented JSON object, preserving
// entry order. encoding/json maps do not keep key order, so the object
// is assembled key by key.
func encodeStore(store Store) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")

	for i, entry := range store.Entries() {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")

		key, err := json.Marshal(entry.Pattern)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")

		val, err := json.Marshal(entry.Rule)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	if store.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// decodeStore parses a JSON object into a Store, keeping the keys in
// document order via token-level decoding.
func decodeStore(data []byte) (Store, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return Store{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Store{}, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Store{}, err
		}
		pattern, ok := keyTok.(string)
		if !ok {
			return Store{}, fmt.Errorf("expected string key, got %v", keyTok)
		}

		var rule Rule
		if err := dec.Decode(&rule); err != nil {
			return Store{}, fmt.Errorf("invalid rule for pattern %q: %w", pattern, err)
		}

		entries = append(entries, Entry{Pattern: pattern, Rule: rule})
	}

	if _, err := dec.Token(); err != nil {
		return Store{}, err
	}

	return Store{entries: entries}, nil
}
