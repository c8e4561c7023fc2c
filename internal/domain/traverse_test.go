package domain

import (
	"errors"
	"testing"
)

func diamondOntology(t *testing.T) *Ontology {
	t.Helper()
	onto := buildOntology(t, [][2]any{
		{"A", []string{}},
		{"B", []string{"A"}},
		{"C", []string{"A"}},
		{"D", []string{"B", "C"}},
	})
	DeriveChildren(onto)
	return onto
}

func collectIDs(t *testing.T, onto *Ontology, rootID string, skip SkipFunc) []string {
	t.Helper()
	seq, err := onto.Subtree(rootID, skip)
	if err != nil {
		t.Fatalf("Subtree failed: %v", err)
	}
	var ids []string
	for term := range seq {
		ids = append(ids, term.ID)
	}
	return ids
}

func TestSubtree_DiamondVisitedOnce(t *testing.T) {
	onto := diamondOntology(t)

	ids := collectIDs(t, onto, "A", nil)
	want := []string{"A", "B", "C", "D"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected breadth-first order %v, got %v", want, ids)
		}
	}
}

func TestSubtree_RootedAtInnerNode(t *testing.T) {
	onto := diamondOntology(t)

	ids := collectIDs(t, onto, "B", nil)
	if len(ids) != 2 || ids[0] != "B" || ids[1] != "D" {
		t.Errorf("expected [B D], got %v", ids)
	}
}

func TestSubtree_SkipPrunesSubtree(t *testing.T) {
	onto := diamondOntology(t)

	// skipping B must not suppress D, which is still reachable via C
	ids := collectIDs(t, onto, "A", func(term *Term) bool { return term.ID == "B" })
	want := map[string]bool{"A": true, "C": true, "D": true}
	if len(ids) != 3 {
		t.Fatalf("expected 3 terms, got %v", ids)
	}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("unexpected term %s in traversal", id)
		}
	}
}

func TestSubtree_UnknownRoot(t *testing.T) {
	onto := diamondOntology(t)

	_, err := onto.Subtree("nope", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestSubtree_ConsumerMayStopEarly(t *testing.T) {
	onto := diamondOntology(t)

	seq, err := onto.Subtree("A", nil)
	if err != nil {
		t.Fatalf("Subtree failed: %v", err)
	}

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected early stop after 2 terms, got %d", count)
	}

	// a fresh call restarts from the root
	ids := collectIDs(t, onto, "A", nil)
	if len(ids) != 4 {
		t.Errorf("restarted traversal incomplete: %v", ids)
	}
}
