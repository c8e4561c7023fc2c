package domain

import (
	"strings"
	"testing"
)

func TestTagStats_CountsAndAverages(t *testing.T) {
	input := `[Term]
id: A
name: root

[Term]
id: B
name: child
is_a: A
xref: X:1
xref: X:2
`
	onto, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	stats := onto.TagStats()
	byTag := make(map[string]TagStat)
	for _, s := range stats {
		byTag[s.Tag] = s
	}

	if s := byTag["id"]; s.Records != 2 || s.Values != 0 {
		t.Errorf("id: expected 2 records single-valued, got %+v", s)
	}
	if s := byTag["xref"]; s.Records != 1 || s.Values != 2 {
		t.Errorf("xref: expected 1 record with 2 values, got %+v", s)
	}
	if got := byTag["xref"].ValuesPerRecord(); got != 2 {
		t.Errorf("xref: expected 2 values per record, got %v", got)
	}

	// derived children tag is counted too
	if s := byTag["children"]; s.Records != 1 || s.Values != 1 {
		t.Errorf("children: expected 1 record with 1 value, got %+v", s)
	}

	// sorted by record count descending
	for i := 1; i < len(stats); i++ {
		if stats[i].Records > stats[i-1].Records {
			t.Errorf("stats not sorted: %+v before %+v", stats[i-1], stats[i])
		}
	}
}
