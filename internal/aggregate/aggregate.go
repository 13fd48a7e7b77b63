// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate computes grouped counts over a cleaned Table:
// publications per year, publications per journal, and word frequency over
// titles and abstracts. All functions are pure: no I/O, no mutation of the
// input, and deterministic output order (ties in top-K rankings resolve to
// the key encountered first in the Table).
package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// UnknownKey is the bucket used for absent values when Options.IncludeUnknown
// is set.
const UnknownKey = "unknown"

// Stopwords is the fixed stop-word set excluded from word-frequency counts.
var Stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "in": {}, "to": {}, "a": {}, "for": {},
	"on": {}, "with": {}, "by": {}, "an": {}, "as": {}, "at": {}, "from": {},
	"is": {}, "that": {}, "this": {}, "are": {}, "be": {}, "was": {},
}

// Options control a single aggregation.
type Options struct {
	// TopK truncates the result to the K highest counts. Zero keeps every
	// category. Ignored by ByYear, which always reports every year.
	TopK int

	// IncludeAbstract also tokenizes abstracts for WordFrequency.
	IncludeAbstract bool

	// IncludeUnknown counts records missing the grouped column under
	// UnknownKey instead of excluding them.
	IncludeUnknown bool
}

// counter accumulates counts while remembering first-encounter order, which
// is the documented tie-break for equal counts.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// entries returns the accumulated counts sorted by descending count, ties in
// first-encounter order, truncated to topK when positive.
func (c *counter) entries(topK int) []types.Entry {
	out := make([]types.Entry, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, types.Entry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out
}

// ByYear counts records per publication year, ascending year order. Records
// without a year are excluded unless IncludeUnknown is set, in which case
// they appear under UnknownKey after the year entries.
func ByYear(t *types.Table, opts Options) types.AggregateResult {
	c := newCounter()
	unknown := 0
	for _, r := range t.Records {
		if r.Year.Present {
			c.add(strconv.Itoa(r.Year.Value))
		} else {
			unknown++
		}
	}

	entries := make([]types.Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, types.Entry{Key: key, Count: c.counts[key]})
	}
	sort.Slice(entries, func(i, j int) bool {
		yi, _ := strconv.Atoi(entries[i].Key)
		yj, _ := strconv.Atoi(entries[j].Key)
		return yi < yj
	})
	if opts.IncludeUnknown && unknown > 0 {
		entries = append(entries, types.Entry{Key: UnknownKey, Count: unknown})
	}
	return types.AggregateResult{Kind: types.AggregateByYear, Entries: entries}
}

// ByJournal counts records per journal, descending count, truncated to TopK.
func ByJournal(t *types.Table, opts Options) types.AggregateResult {
	c := newCounter()
	for _, r := range t.Records {
		switch {
		case r.Journal.Present:
			c.add(r.Journal.Value)
		case opts.IncludeUnknown:
			c.add(UnknownKey)
		}
	}
	return types.AggregateResult{Kind: types.AggregateByJournal, Entries: c.entries(opts.TopK)}
}

// WordFrequency tokenizes every record's title (and abstract when
// IncludeAbstract is set), removes stop words, and counts token occurrences,
// descending, truncated to TopK. A record contributes once per token
// occurrence, so counts can exceed the record count.
func WordFrequency(t *types.Table, opts Options) types.AggregateResult {
	c := newCounter()
	for _, r := range t.Records {
		countTokens(c, r.Title)
		if opts.IncludeAbstract && r.Abstract.Present {
			countTokens(c, r.Abstract.Value)
		}
	}
	return types.AggregateResult{Kind: types.AggregateWordFrequency, Entries: c.entries(opts.TopK)}
}

func countTokens(c *counter, text string) {
	for _, tok := range clean.Tokenize(text) {
		if _, stop := Stopwords[tok]; stop {
			continue
		}
		c.add(tok)
	}
}

// ByKind dispatches to the aggregation named by kind.
func ByKind(t *types.Table, kind types.AggregateKind, opts Options) (types.AggregateResult, error) {
	switch kind {
	case types.AggregateByYear:
		return ByYear(t, opts), nil
	case types.AggregateByJournal:
		return ByJournal(t, opts), nil
	case types.AggregateWordFrequency:
		return WordFrequency(t, opts), nil
	default:
		return types.AggregateResult{}, fmt.Errorf("unknown aggregation kind %q", kind)
	}
}
