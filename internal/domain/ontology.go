package domain

import (
	"iter"
	"sort"
)

// Ontology is an insertion-ordered store of terms keyed by id. It is built
// once by Parse and then mutated in place by DeriveChildren and
// AssignCategories; it never shrinks.
type Ontology struct {
	terms map[string]*Term
	order []string
	// tags seen by the parser across all stanzas, informational only
	seenTags map[string]bool
}

// NewOntology creates an empty ontology.
func NewOntology() *Ontology {
	return &Ontology{
		terms:    make(map[string]*Term),
		seenTags: make(map[string]bool),
	}
}

// Add inserts a term. A term re-declaring an existing id replaces it but
// keeps the original insertion position.
func (o *Ontology) Add(t *Term) {
	if _, ok := o.terms[t.ID]; !ok {
		o.order = append(o.order, t.ID)
	}
	o.terms[t.ID] = t
}

// Get returns the term with the given id.
func (o *Ontology) Get(id string) (*Term, bool) {
	t, ok := o.terms[id]
	return t, ok
}

// Len returns the number of terms in the store.
func (o *Ontology) Len() int {
	return len(o.order)
}

// IDs returns all term ids in insertion order.
func (o *Ontology) IDs() []string {
	ids := make([]string, len(o.order))
	copy(ids, o.order)
	return ids
}

// Terms yields all terms in insertion order.
func (o *Ontology) Terms() iter.Seq[*Term] {
	return func(yield func(*Term) bool) {
		for _, id := range o.order {
			if !yield(o.terms[id]) {
				return
			}
		}
	}
}

// SeenTags returns the sorted set of tag names the parser encountered.
func (o *Ontology) SeenTags() []string {
	tags := make([]string, 0, len(o.seenTags))
	for tag := range o.seenTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (o *Ontology) noteTag(tag string) {
	o.seenTags[tag] = true
}
