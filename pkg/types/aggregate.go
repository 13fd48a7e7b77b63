// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AggregateKind selects which grouped count to compute.
type AggregateKind string

const (
	AggregateByYear        AggregateKind = "by_year"
	AggregateByJournal     AggregateKind = "by_journal"
	AggregateWordFrequency AggregateKind = "word_frequency"
)

// Entry is one category of an aggregate: a key and its count.
type Entry struct {
	Key   string `yaml:"key" json:"key"`
	Count int    `yaml:"count" json:"count"`
}

// AggregateResult maps category keys to counts. Entries carry a fixed order:
// ascending year for by_year, descending count for by_journal and
// word_frequency, with ties broken by first appearance in the source Table.
type AggregateResult struct {
	Kind    AggregateKind `yaml:"kind" json:"kind"`
	Entries []Entry       `yaml:"entries" json:"entries"`
}

// Total returns the sum of all counts. For by_year and by_journal this equals
// the number of contributing records; word_frequency counts a record once per
// matching token.
func (r AggregateResult) Total() int {
	sum := 0
	for _, e := range r.Entries {
		sum += e.Count
	}
	return sum
}

// Empty reports whether the result has no categories.
func (r AggregateResult) Empty() bool {
	return len(r.Entries) == 0
}

// Top returns the entry with the highest count, and false for an empty
// result. Ties resolve to the earliest entry.
func (r AggregateResult) Top() (Entry, bool) {
	if len(r.Entries) == 0 {
		return Entry{}, false
	}
	top := r.Entries[0]
	for _, e := range r.Entries[1:] {
		if e.Count > top.Count {
			top = e
		}
	}
	return top, true
}
