package domain

import "time"

// IndexedTerm is the flattened projection of a term stored in the index.
type IndexedTerm struct {
	ID           string
	Name         string
	Definition   string
	ParentIDs    string // is_a ids joined with ListSeparator
	CategoryID   string
	CategoryName string
}

// SearchResult represents an index search match
type SearchResult struct {
	ID          string
	Name        string
	MatchedText string
}

// IndexStats holds statistics from an index rebuild
type IndexStats struct {
	Terms    int
	Duration time.Duration
}

// Flatten projects a term into its indexed form.
func FlattenTerm(t *Term) IndexedTerm {
	get := func(tag string) string {
		v, ok := t.Get(tag)
		if !ok {
			return ""
		}
		return v.String()
	}
	return IndexedTerm{
		ID:           t.ID,
		Name:         t.Name(),
		Definition:   get(TagDef),
		ParentIDs:    get(TagIsA),
		CategoryID:   get(TagCategoryID),
		CategoryName: get(TagCategoryName),
	}
}
