package domain

import "fmt"

// DeriveChildren computes the inverse adjacency of "is_a": every term
// referenced as a parent gets the referencing term's id appended to its
// "children" list, in store insertion order of the children.
//
// A parent id missing from the store produces a warning and is otherwise
// ignored; the broken link is simply not materialized.
func DeriveChildren(o *Ontology) []string {
	var warnings []string
	for term := range o.Terms() {
		for _, parentID := range term.Parents() {
			parent, ok := o.Get(parentID)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"%s has a parent id %s which is not in the ontology", term.ID, parentID))
				continue
			}
			parent.Append(TagChildren, term.ID)
		}
	}
	return warnings
}

// ResolveRoot finds the ontology root by walking "is_a" links upward from
// the first-inserted term until a term with no parent is reached. The
// graph is assumed to be weakly connected with a single root; a cycle on
// the walked path fails with ErrCycle rather than looping forever.
func ResolveRoot(o *Ontology) (string, error) {
	if o.Len() == 0 {
		return "", ErrEmptyOntology
	}

	id := o.order[0]
	visited := make(map[string]bool)
	for {
		if visited[id] {
			return "", fmt.Errorf("resolving root at %s: %w", id, ErrCycle)
		}
		visited[id] = true

		parents := o.terms[id].Parents()
		if len(parents) == 0 {
			return id, nil
		}

		parentID := parents[0]
		if _, ok := o.terms[parentID]; !ok {
			return "", &LookupError{Label: fmt.Sprintf("%s's parent id", id), ID: parentID}
		}
		id = parentID
	}
}
