package rules

import (
	"fmt"
	"regexp"
)

// MatchKind classifies the outcome of a store lookup.
type MatchKind int

const (
	// MatchNotFound means no pattern in the store matched the name.
	MatchNotFound MatchKind = iota
	// MatchFound means exactly one pattern matched.
	MatchFound
	// MatchAmbiguous means two or more patterns matched.
	MatchAmbiguous
)

// MatchResult is the outcome of Find. Candidates holds every matching
// entry in store (precedence) order; for MatchFound it has exactly one
// element and for MatchNotFound it is empty.
type MatchResult struct {
	Kind       MatchKind
	Candidates []Entry
}

// Entry returns the single matching entry for a MatchFound result.
func (r MatchResult) Entry() Entry {
	return r.Candidates[0]
}

// Find looks up name in the store. Patterns are regular expressions
// matched anywhere in the name (search semantics, case-sensitive), not
// anchored full matches. Find is a pure function of (store, name); an
// invalid pattern in the store is a corrupted-store error, not a
// non-match, so results stay deterministic.
func Find(store Store, name string) (MatchResult, error) {
	var candidates []Entry

	for _, entry := range store.Entries() {
		re, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return MatchResult{}, fmt.Errorf("invalid pattern %q in rule store: %w", entry.Pattern, err)
		}
		if re.MatchString(name) {
			candidates = append(candidates, entry)
		}
	}

	switch len(candidates) {
	case 0:
		return MatchResult{Kind: MatchNotFound}, nil
	case 1:
		return MatchResult{Kind: MatchFound, Candidates: candidates}, nil
	default:
		return MatchResult{Kind: MatchAmbiguous, Candidates: candidates}, nil
	}
}
