// Package tsv serializes an ontology to a flat tab-separated table, one
// row per term reachable from a chosen root.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"obotab/internal/domain"
)

// excludedColumns never appear in the output table.
var excludedColumns = map[string]bool{
	"consider":       true,
	"replaced_by":    true,
	"property_value": true,
	"is_obsolete":    true,
	"is_anonymous":   true,
}

// renamedColumns maps stored tag names to their display column names.
var renamedColumns = map[string]string{
	"is_a": "parent_ids",
	"def":  "definition",
}

// Header computes the column list: id and name first, then every other
// tag present on any term, sorted, minus the excluded set. Derived tags
// (children, category_id, category_name) are included when present.
func Header(o *domain.Ontology) []string {
	tags := make(map[string]bool)
	for term := range o.Terms() {
		for _, tag := range term.Tags() {
			tags[tag] = true
		}
	}

	header := []string{domain.TagID, domain.TagName}
	var rest []string
	for tag := range tags {
		if tag == domain.TagID || tag == domain.TagName || excludedColumns[tag] {
			continue
		}
		rest = append(rest, tag)
	}
	sort.Strings(rest)
	return append(header, rest...)
}

// DisplayName returns the column name a tag is shown under.
func DisplayName(tag string) string {
	if renamed, ok := renamedColumns[tag]; ok {
		return renamed
	}
	return tag
}

// Write serializes the subtree rooted at rootID, one term per row. List
// values are joined with ", "; absent tags are written as empty strings.
func Write(w io.Writer, o *domain.Ontology, rootID string) error {
	subtree, err := o.Subtree(rootID, nil)
	if err != nil {
		return err
	}

	header := Header(o)
	bw := bufio.NewWriter(w)
	for i, column := range header {
		if i > 0 {
			if err := bw.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(DisplayName(column)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for term := range subtree {
		for i, column := range header {
			if i > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if v, ok := term.Get(column); ok {
				if _, err := bw.WriteString(v.String()); err != nil {
					return err
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing tsv: %w", err)
	}
	return nil
}
