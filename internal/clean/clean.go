// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean normalizes a raw dataset Table: it parses publish_time,
// derives the publication year and abstract word count, and provides the
// tokenizer used for word-frequency analysis. Cleaning is deterministic and
// never mutates its input.
package clean

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Options control a Clean call.
type Options struct {
	// DropInvalidDates removes records whose publish_time is present but
	// unparseable. The default keeps them with an absent year.
	DropInvalidDates bool
}

// dateLayouts are the publish_time forms that occur in the metadata dump,
// most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"2006 Jan 2",
	"2006 Jan",
	"Jan 2, 2006",
}

// ParseDate parses a publish_time cell against the known layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Clean returns a new Table with derived fields populated. A record whose
// publish_time fails to parse keeps an absent year; the failure is never
// surfaced per-record. Output columns gain the derived "year" column when
// publish_time was loaded.
func Clean(t *types.Table, opts Options) *types.Table {
	cols := append([]string(nil), t.Columns...)
	if t.HasColumn("publish_time") && !t.HasColumn("year") {
		cols = append(cols, "year")
	}

	out := &types.Table{Columns: cols, Records: make([]types.Record, 0, len(t.Records))}
	for _, rec := range t.Records {
		if rec.PublishTime.Present {
			d, err := ParseDate(rec.PublishTime.Value)
			if err != nil {
				if opts.DropInvalidDates {
					continue
				}
				rec.Year = types.OptInt{}
			} else {
				rec.Year = types.Int(d.Year())
			}
		}

		if rec.Abstract.Present {
			rec.AbstractWords = len(strings.Fields(rec.Abstract.Value))
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// Tokenize lowercases s, keeps only ASCII-letter runs, and drops tokens
// shorter than three characters. Digits and punctuation act as separators.
// No stemming.
func Tokenize(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(b.String()) {
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
