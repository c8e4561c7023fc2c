package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found in ontology")
	ErrCycle         = errors.New("cycle in is_a graph")
	ErrEmptyOntology = errors.New("ontology has no terms")
)

// FormatError reports a line that is not a stanza header, a comment, or a
// tag:value pair.
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: unexpected line format: %q", e.Line, e.Text)
}

// DuplicateTagError reports a single-valued tag appearing twice in one
// stanza.
type DuplicateTagError struct {
	Tag  string
	Prev string
	Next string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("more than one %q found in Term stanza: %s, %s", e.Tag, e.Prev, e.Next)
}

// LookupError reports a referenced term id that is absent from the store.
type LookupError struct {
	Label string // what the id was used as, e.g. "root id"
	ID    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found in ontology", e.Label, e.ID)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}
