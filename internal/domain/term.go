package domain

import "sort"

// Well-known OBO tags.
const (
	TagID           = "id"
	TagName         = "name"
	TagDef          = "def"
	TagComment      = "comment"
	TagIsA          = "is_a"
	TagChildren     = "children"
	TagCategoryID   = "category_id"
	TagCategoryName = "category_name"
)

// singleValuedTags may appear at most once per stanza.
var singleValuedTags = map[string]bool{
	TagID:        true,
	TagName:      true,
	TagDef:       true,
	"definition": true,
	TagComment:   true,
}

// Term is one ontology concept: an id plus a mapping from tag name to
// Value. The "id" tag is always present and equals Term.ID.
type Term struct {
	ID   string
	tags map[string]Value
}

// NewTerm creates a term with the given id. The id is stored as a regular
// tag so that Get(TagID) works like any other lookup.
func NewTerm(id string) *Term {
	return &Term{
		ID:   id,
		tags: map[string]Value{TagID: SingleValue(id)},
	}
}

// Get returns the value for a tag and whether it is set.
func (t *Term) Get(tag string) (Value, bool) {
	v, ok := t.tags[tag]
	return v, ok
}

// Has reports whether a tag is set on the term.
func (t *Term) Has(tag string) bool {
	_, ok := t.tags[tag]
	return ok
}

// SetOnce sets a single-valued tag, failing with a DuplicateTagError if
// the tag already has a value.
func (t *Term) SetOnce(tag, value string) error {
	if prev, ok := t.tags[tag]; ok {
		return &DuplicateTagError{Tag: tag, Prev: prev.String(), Next: value}
	}
	t.tags[tag] = SingleValue(value)
	return nil
}

// Set sets a single-valued tag unconditionally.
func (t *Term) Set(tag, value string) {
	t.tags[tag] = SingleValue(value)
}

// Append adds a value to a repeatable tag, creating the list if absent.
func (t *Term) Append(tag, value string) {
	t.tags[tag] = t.tags[tag].append(value)
}

// Name returns the term's "name" tag, or "" if absent.
func (t *Term) Name() string {
	v, ok := t.tags[TagName]
	if !ok {
		return ""
	}
	return v.String()
}

// Parents returns the term's declared "is_a" parent ids in declaration
// order, or nil if the term has no parents.
func (t *Term) Parents() []string {
	v, ok := t.tags[TagIsA]
	if !ok {
		return nil
	}
	return v.List()
}

// Children returns the derived child ids, or nil before DeriveChildren
// has run or for leaf terms.
func (t *Term) Children() []string {
	v, ok := t.tags[TagChildren]
	if !ok {
		return nil
	}
	return v.List()
}

// Tags returns the names of all tags set on the term, sorted.
func (t *Term) Tags() []string {
	tags := make([]string, 0, len(t.tags))
	for tag := range t.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
