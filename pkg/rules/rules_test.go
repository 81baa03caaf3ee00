package rules

import "testing"

func TestMergeInsertsAtFront(t *testing.T) {
	store := NewStore(
		Entry{Pattern: "OLD", Rule: Rule{Name: "Old"}},
	)

	merged := store.Merge("NEW", Rule{Name: "New"})

	if merged.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", merged.Len())
	}
	if merged.Entries()[0].Pattern != "NEW" {
		t.Errorf("expected NEW at front, got %q", merged.Entries()[0].Pattern)
	}
	if merged.Entries()[1].Pattern != "OLD" {
		t.Errorf("expected OLD second, got %q", merged.Entries()[1].Pattern)
	}
}

func TestMergeEmptyPatternIsNoop(t *testing.T) {
	store := NewStore(
		Entry{Pattern: "A", Rule: Rule{Name: "a"}},
		Entry{Pattern: "B", Rule: Rule{Name: "b"}},
	)

	merged := store.Merge("", Rule{Name: "ignored"})

	if !merged.Equal(store) {
		t.Errorf("merge with empty pattern changed the store: %+v", merged.Entries())
	}
}

func TestMergeRebindsExistingPattern(t *testing.T) {
	store := NewStore(
		Entry{Pattern: "A", Rule: Rule{Name: "a"}},
		Entry{Pattern: "B", Rule: Rule{Name: "old"}},
	)

	merged := store.Merge("B", Rule{Name: "new"})

	if merged.Len() != 2 {
		t.Fatalf("expected 2 entries after rebind, got %d", merged.Len())
	}
	front := merged.Entries()[0]
	if front.Pattern != "B" || front.Rule.Name != "new" {
		t.Errorf("expected rebound B at front with new rule, got %+v", front)
	}
	if merged.Entries()[1].Pattern != "A" {
		t.Errorf("expected A preserved, got %+v", merged.Entries()[1])
	}
}

func TestMergeDoesNotMutateOriginal(t *testing.T) {
	store := NewStore(Entry{Pattern: "A", Rule: Rule{Name: "a"}})

	_ = store.Merge("B", Rule{Name: "b"})

	if store.Len() != 1 || store.Entries()[0].Pattern != "A" {
		t.Errorf("original store was mutated: %+v", store.Entries())
	}
}
