// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard serves the interactive single-page explorer over a
// loaded, cleaned Table. Filter state lives entirely in the request query
// string: every render derives its view from the immutable Table plus the
// request, so there is no server-side session state to leak across users.
package dashboard

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Filters is the dashboard's filter state, decoded from the query string.
type Filters struct {
	// YearFrom and YearTo bound the publication year, inclusive. Records
	// without a year never match a year-bounded view.
	YearFrom int
	YearTo   int

	// Journal is a case-insensitive substring match on the journal name.
	// Empty matches every record.
	Journal string

	// MinAbstractWords keeps records whose abstract has at least this many
	// words. Zero keeps records without an abstract too.
	MinAbstractWords int

	// Rows is the number of records shown in the sample table view.
	Rows int

	// TopJournals and TopWords bound the journal and word aggregates.
	TopJournals int
	TopWords    int

	// Abstracts switches word analysis from titles to titles+abstracts.
	Abstracts bool

	// WordCloud enables the word-cloud panel. Off by default; it is the
	// heaviest render.
	WordCloud bool
}

// defaultFilters derives the initial filter state from the loaded table's
// year bounds and the server configuration.
func defaultFilters(t *types.Table, serve types.ServeConfig, agg types.AggregateConfig) Filters {
	min, max, ok := t.YearBounds()
	if !ok {
		// Year-less dump; fall back to the dataset's nominal range.
		min, max = 2019, 2022
	}
	return Filters{
		YearFrom:    min,
		YearTo:      max,
		Rows:        serve.SampleRows,
		TopJournals: agg.TopJournals,
		TopWords:    agg.TopWords,
	}
}

// parseFilters overlays the request's query parameters on def.
func parseFilters(c echo.Context, def Filters) Filters {
	f := def
	f.YearFrom = intParam(c, "year_from", def.YearFrom)
	f.YearTo = intParam(c, "year_to", def.YearTo)
	f.Journal = strings.TrimSpace(c.QueryParam("journal"))
	f.MinAbstractWords = intParam(c, "min_abstract", def.MinAbstractWords)
	f.Rows = intParam(c, "rows", def.Rows)
	f.TopJournals = intParam(c, "top_journals", def.TopJournals)
	f.TopWords = intParam(c, "top_words", def.TopWords)
	f.Abstracts = boolParam(c, "abstracts")
	f.WordCloud = boolParam(c, "wordcloud")
	return f
}

func intParam(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolParam(c echo.Context, name string) bool {
	switch c.QueryParam(name) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Apply returns the sub-sequence of t matching the filters. The input table
// is never modified.
func (f Filters) Apply(t *types.Table) *types.Table {
	journal := strings.ToLower(f.Journal)
	return t.Filter(func(r types.Record) bool {
		if !r.Year.Present || r.Year.Value < f.YearFrom || r.Year.Value > f.YearTo {
			return false
		}
		if f.MinAbstractWords > 0 && r.AbstractWords < f.MinAbstractWords {
			return false
		}
		if journal != "" {
			if !r.Journal.Present || !strings.Contains(strings.ToLower(r.Journal.Value), journal) {
				return false
			}
		}
		return true
	})
}

// Query encodes the filters back into query parameters, used to propagate
// the current state into chart and download URLs.
func (f Filters) Query() url.Values {
	q := url.Values{}
	q.Set("year_from", strconv.Itoa(f.YearFrom))
	q.Set("year_to", strconv.Itoa(f.YearTo))
	if f.Journal != "" {
		q.Set("journal", f.Journal)
	}
	if f.MinAbstractWords > 0 {
		q.Set("min_abstract", strconv.Itoa(f.MinAbstractWords))
	}
	q.Set("rows", strconv.Itoa(f.Rows))
	q.Set("top_journals", strconv.Itoa(f.TopJournals))
	q.Set("top_words", strconv.Itoa(f.TopWords))
	if f.Abstracts {
		q.Set("abstracts", "1")
	}
	if f.WordCloud {
		q.Set("wordcloud", "1")
	}
	return q
}
