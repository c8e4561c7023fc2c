package domain

import "sort"

// TagStat summarizes how often a tag occurs across the store.
type TagStat struct {
	Tag     string
	Records int // number of terms carrying the tag
	Values  int // total values across those terms, for list-valued tags only
}

// ValuesPerRecord returns the average number of values per carrying term,
// or 0 for single-valued tags.
func (s TagStat) ValuesPerRecord() float64 {
	if s.Values == 0 || s.Records == 0 {
		return 0
	}
	return float64(s.Values) / float64(s.Records)
}

// TagStats computes per-tag frequency across all terms, including derived
// tags such as "children". Results are sorted by record count descending,
// ties broken by tag name. Read-only.
func (o *Ontology) TagStats() []TagStat {
	records := make(map[string]int)
	values := make(map[string]int)
	for term := range o.Terms() {
		for _, tag := range term.Tags() {
			records[tag]++
			if v, _ := term.Get(tag); v.IsMulti() {
				values[tag] += v.Len()
			}
		}
	}

	stats := make([]TagStat, 0, len(records))
	for tag, n := range records {
		stats = append(stats, TagStat{Tag: tag, Records: n, Values: values[tag]})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Records != stats[j].Records {
			return stats[i].Records > stats[j].Records
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats
}
