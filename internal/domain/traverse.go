package domain

import "iter"

// SkipFunc decides whether a term (and the subtree below it) should be
// pruned from a traversal.
type SkipFunc func(*Term) bool

// Subtree returns a lazy breadth-first sequence over the term with the
// given id and its descendants. Each reachable term is yielded exactly
// once even when the graph offers multiple paths to it; siblings appear in
// first-seen order. A skip predicate, if non-nil, discards a term without
// expanding its children.
//
// The consumer may stop early; a fresh call restarts from the root.
func (o *Ontology) Subtree(rootID string, skip SkipFunc) (iter.Seq[*Term], error) {
	if _, ok := o.terms[rootID]; !ok {
		return nil, &LookupError{Label: "root id", ID: rootID}
	}

	return func(yield func(*Term) bool) {
		queue := []string{rootID}
		visited := make(map[string]bool)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]

			term, ok := o.terms[id]
			if !ok || visited[id] {
				continue
			}
			if skip != nil && skip(term) {
				continue
			}
			if !yield(term) {
				return
			}
			visited[id] = true
			queue = append(queue, term.Children()...)
		}
	}, nil
}
