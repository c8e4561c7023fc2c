package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const stanzaTerm = "Term"

// parser holds the state threaded through line processing: the current
// stanza type and the record being accumulated.
type parser struct {
	onto    *Ontology
	stanza  string
	current *Term
	line    int
}

// Parse reads OBO-formatted text and builds the ontology. Only [Term]
// stanzas are modeled; lines before the first stanza header and stanzas of
// other types are skipped. Children links are derived before returning.
//
// The returned warnings report dangling "is_a" references (parent ids not
// present in the store); they are diagnostic only and never abort parsing.
// A malformed line or a repeated single-valued tag aborts with no ontology
// returned.
func Parse(r io.Reader) (*Ontology, []string, error) {
	p := &parser{onto: NewOntology()}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.consume(sc.Text()); err != nil {
			return nil, nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}

	warnings := DeriveChildren(p.onto)
	return p.onto, warnings, nil
}

func (p *parser) consume(line string) error {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		p.stanza = strings.Trim(trimmed, "[]")
		p.current = nil
		return nil
	}

	// skip the file header and stanzas that aren't Terms
	if p.stanza != stanzaTerm {
		return nil
	}

	// drop everything after the comment delimiter
	if i := strings.IndexByte(line, '!'); i >= 0 {
		line = line[:i]
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	tag, value, ok := strings.Cut(line, ":")
	if !ok || tag == "" || value == "" {
		return &FormatError{Line: p.line, Text: line}
	}
	value = strings.TrimSpace(value)

	if tag == TagID {
		// Two id lines without an intervening stanza header mean the
		// stanza tried to re-declare its id.
		if p.current != nil {
			return &DuplicateTagError{Tag: TagID, Prev: p.current.ID, Next: value}
		}
		p.current = NewTerm(value)
		p.onto.Add(p.current)
		p.onto.noteTag(TagID)
		return nil
	}

	if p.current == nil {
		return &FormatError{Line: p.line, Text: line}
	}

	p.onto.noteTag(tag)
	if singleValuedTags[tag] {
		return p.current.SetOnce(tag, value)
	}
	p.current.Append(tag, value)
	return nil
}
