package commands

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"obotab/internal/adapters/fetch"
	"obotab/internal/domain"
)

// recordingIndex captures the ontology handed to Rebuild.
type recordingIndex struct {
	fakeIndex
	rebuilt *domain.Ontology
}

func (r *recordingIndex) Rebuild(o *domain.Ontology) (*domain.IndexStats, error) {
	r.rebuilt = o
	return &domain.IndexStats{Terms: o.Len()}, nil
}

func TestIndexCommand_RebuildsFromSource(t *testing.T) {
	input := writeFixture(t, convertFixture)
	idx := &recordingIndex{}

	cmd := NewIndexCommand(fetch.NewResolver(), idx, zap.NewNop(), input)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Stats.Terms != 3 {
		t.Errorf("expected 3 indexed terms, got %d", result.Stats.Terms)
	}
	if idx.rebuilt == nil {
		t.Fatal("Rebuild was not called")
	}
}

func TestIndexCommand_WithCategories(t *testing.T) {
	input := writeFixture(t, convertFixture)
	idx := &recordingIndex{}

	cmd := NewIndexCommand(fetch.NewResolver(), idx, zap.NewNop(), input)
	cmd.AddCategory = true

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	term, ok := idx.rebuilt.Get("HP:0000478")
	if !ok {
		t.Fatal("term missing from rebuilt ontology")
	}
	if !term.Has(domain.TagCategoryID) {
		t.Error("categories not assigned before indexing")
	}
}

func TestIndexCommand_MissingInput(t *testing.T) {
	cmd := NewIndexCommand(fetch.NewResolver(), &recordingIndex{}, zap.NewNop(), "")

	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
}
