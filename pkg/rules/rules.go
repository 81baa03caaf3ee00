// Package rules provides the persistent categorization rule store and
// the pattern matcher that applies it to raw transaction names.
package rules

// Rule is a categorization template bound to a pattern. Empty fields
// mean "prompt every time, do not persist a default".
type Rule struct {
	Name       string `json:"name"`
	OtherParty string `json:"other_party"`
	Comment    string `json:"comment"`
}

// Entry binds a pattern (a regular expression string) to a Rule.
type Entry struct {
	Pattern string
	Rule    Rule
}

// Store is an ordered mapping from pattern to Rule. Order is match
// precedence: earlier entries win when several patterns match the same
// transaction name. A Store value is never mutated in place; Merge
// returns a new Store.
type Store struct {
	entries []Entry
}

// NewStore creates a Store from entries in precedence order.
func NewStore(entries ...Entry) Store {
	return Store{entries: entries}
}

// Entries returns the entries in precedence order.
func (s Store) Entries() []Entry {
	return s.entries
}

// Len returns the number of entries in the store.
func (s Store) Len() int {
	return len(s.entries)
}

// Merge returns a new Store with pattern bound to rule at the front,
// the highest match precedence. A stale binding for the same pattern
// is dropped. An empty pattern means "don't save a rule this time" and
// returns the store unchanged.
func (s Store) Merge(pattern string, rule Rule) Store {
	if pattern == "" {
		return s
	}

	merged := make([]Entry, 0, len(s.entries)+1)
	merged = append(merged, Entry{Pattern: pattern, Rule: rule})
	for _, e := range s.entries {
		if e.Pattern == pattern {
			continue
		}
		merged = append(merged, e)
	}

	return Store{entries: merged}
}

// Equal reports whether two stores hold the same entries in the same
// order.
func (s Store) Equal(other Store) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i, e := range s.entries {
		if other.entries[i] != e {
			return false
		}
	}
	return true
}
