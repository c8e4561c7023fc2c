package domain

import (
	"errors"
	"strings"
	"testing"
)

const sampleOBO = `format-version: 1.2
ontology: hp

[Term]
id: HP:0000001
name: All

[Term]
id: HP:0000479
name: Abnormality of the retina
is_a: HP:0000001

[Term]
id: HP:0000480
name: Retinal coloboma
is_a: HP:0000479 ! Abnormality of the retina
xref: UMLS:C0240896
xref: SNOMEDCT_US:39302008

[Typedef]
id: part_of
name: part of
`

func TestParse_SampleOntology(t *testing.T) {
	onto, warnings, err := Parse(strings.NewReader(sampleOBO))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if onto.Len() != 3 {
		t.Fatalf("expected 3 terms, got %d", onto.Len())
	}

	// Typedef stanza must not be modeled
	if _, ok := onto.Get("part_of"); ok {
		t.Error("Typedef stanza was parsed as a term")
	}

	term, ok := onto.Get("HP:0000480")
	if !ok {
		t.Fatal("HP:0000480 not found")
	}
	if term.Name() != "Retinal coloboma" {
		t.Errorf("expected name %q, got %q", "Retinal coloboma", term.Name())
	}

	// comment after '!' must be discarded, whitespace trimmed
	parents := term.Parents()
	if len(parents) != 1 || parents[0] != "HP:0000479" {
		t.Errorf("expected parents [HP:0000479], got %v", parents)
	}

	xref, ok := term.Get("xref")
	if !ok || !xref.IsMulti() || xref.Len() != 2 {
		t.Errorf("expected 2 xref values, got %v", xref)
	}
}

func TestParse_IDRetrievableAndEqualToKey(t *testing.T) {
	onto, _, err := Parse(strings.NewReader(sampleOBO))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, id := range onto.IDs() {
		term, _ := onto.Get(id)
		v, ok := term.Get(TagID)
		if !ok {
			t.Fatalf("term %s has no retrievable id tag", id)
		}
		if v.String() != id {
			t.Errorf("term %s: id tag %q differs from store key", id, v.String())
		}
	}
}

func TestParse_InsertionOrderPreserved(t *testing.T) {
	onto, _, err := Parse(strings.NewReader(sampleOBO))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"HP:0000001", "HP:0000479", "HP:0000480"}
	got := onto.IDs()
	for i, id := range want {
		if got[i] != id {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func TestParse_DuplicateID(t *testing.T) {
	input := "[Term]\nid: HP:0000001\nid: HP:0000002\n"

	_, _, err := Parse(strings.NewReader(input))
	var dup *DuplicateTagError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTagError, got %v", err)
	}
	if dup.Tag != "id" {
		t.Errorf("expected duplicate tag id, got %q", dup.Tag)
	}
}

func TestParse_DuplicateName(t *testing.T) {
	input := "[Term]\nid: HP:0000001\nname: All\nname: Everything\n"

	_, _, err := Parse(strings.NewReader(input))
	var dup *DuplicateTagError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTagError, got %v", err)
	}
	if dup.Prev != "All" || dup.Next != "Everything" {
		t.Errorf("unexpected values in error: %+v", dup)
	}
}

func TestParse_MalformedLine(t *testing.T) {
	input := "[Term]\nid: HP:0000001\nthis line has no colon\n"

	_, _, err := Parse(strings.NewReader(input))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if ferr.Line != 3 {
		t.Errorf("expected error on line 3, got %d", ferr.Line)
	}
}

func TestParse_TagBeforeID(t *testing.T) {
	input := "[Term]\nname: orphan tag\n"

	_, _, err := Parse(strings.NewReader(input))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestParse_BlankAndCommentOnlyLines(t *testing.T) {
	input := "[Term]\nid: HP:0000001\n\n   \n! full line comment\nname: All\n"

	onto, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	term, _ := onto.Get("HP:0000001")
	if term.Name() != "All" {
		t.Errorf("expected name All, got %q", term.Name())
	}
}

func TestParse_ValueKeepsInternalColons(t *testing.T) {
	input := "[Term]\nid: HP:0000480\n"

	onto, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := onto.Get("HP:0000480"); !ok {
		t.Error("id value containing a colon was truncated")
	}
}

func TestParse_DanglingParentWarns(t *testing.T) {
	input := "[Term]\nid: HP:0000002\nis_a: HP:9999999\n"

	onto, warnings, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "HP:9999999") {
		t.Errorf("warning does not name the dangling parent: %s", warnings[0])
	}

	// the declared parent link itself is retained
	term, _ := onto.Get("HP:0000002")
	if parents := term.Parents(); len(parents) != 1 || parents[0] != "HP:9999999" {
		t.Errorf("expected declared parent retained, got %v", parents)
	}
}

func TestParse_SeenTags(t *testing.T) {
	onto, _, err := Parse(strings.NewReader(sampleOBO))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tags := onto.SeenTags()
	want := []string{"id", "is_a", "name", "xref"}
	if len(tags) != len(want) {
		t.Fatalf("expected tags %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("expected tags %v, got %v", want, tags)
		}
	}
}
