package domain

// CategoryOptions selects which category columns AssignCategories stamps
// onto descendants.
type CategoryOptions struct {
	AddID   bool
	AddName bool
}

// AssignCategories stamps every descendant of the root with the top-level
// category it falls under. Each direct child of the root is a category
// anchor: its id (and name, per the options) is written onto itself and
// all of its not-yet-stamped descendants. A term reachable from several
// anchors keeps the stamp from the first-listed anchor that reaches it.
//
// A root without children leaves the store untouched and reports a
// warning.
func AssignCategories(o *Ontology, rootID string, opts CategoryOptions) ([]string, error) {
	root, ok := o.Get(rootID)
	if !ok {
		return nil, &LookupError{Label: "root id", ID: rootID}
	}

	anchors := root.Children()
	if len(anchors) == 0 {
		return []string{"root term has no child terms"}, nil
	}

	alreadyStamped := func(t *Term) bool {
		return t.Has(TagCategoryID) || t.Has(TagCategoryName)
	}

	for _, categoryID := range anchors {
		categoryName := ""
		if anchor, ok := o.Get(categoryID); ok {
			categoryName = anchor.Name()
		}

		subtree, err := o.Subtree(categoryID, alreadyStamped)
		if err != nil {
			return nil, err
		}
		for term := range subtree {
			if opts.AddID {
				term.Set(TagCategoryID, categoryID)
			}
			if opts.AddName {
				term.Set(TagCategoryName, categoryName)
			}
		}
	}
	return nil, nil
}
