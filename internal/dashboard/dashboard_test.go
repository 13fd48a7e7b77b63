// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func testTable() *types.Table {
	rec := func(title, journal string, year, abstractWords int) types.Record {
		r := types.Record{Title: title, AbstractWords: abstractWords}
		if journal != "" {
			r.Journal = types.String(journal)
		}
		if year != 0 {
			r.Year = types.Int(year)
		}
		return r
	}
	return &types.Table{
		Columns: []string{"title", "abstract", "journal", "publish_time", "year"},
		Records: []types.Record{
			rec("Covid vaccine trial", "Nature", 2020, 120),
			rec("Covid transmission study", "The Lancet", 2020, 80),
			rec("Coronavirus review", "Nature", 2021, 40),
			rec("Influenza comparison", "", 2019, 0),
		},
	}
}

func testServer() *httptest.Server {
	e := New(testTable(),
		types.ServeConfig{Addr: ":0", SampleRows: 10},
		types.AggregateConfig{TopJournals: 10, TopWords: 15},
	)
	return httptest.NewServer(e)
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "CORD-19 Data Explorer")
	assert.Contains(t, body, "Covid vaccine trial")
	// Default year range covers the whole table.
	assert.Contains(t, body, `name="year_from" value="2019"`)
	assert.Contains(t, body, `name="year_to" value="2021"`)
}

func TestIndexFiltered(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	_, body := get(t, ts.URL+"/?year_from=2021&year_to=2021")
	assert.Contains(t, body, "Coronavirus review")
	assert.NotContains(t, body, "Covid vaccine trial")
}

func TestIndexJournalFilter(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	_, body := get(t, ts.URL+"/?journal=lancet")
	assert.Contains(t, body, "Covid transmission study")
	assert.NotContains(t, body, "Coronavirus review")
}

func TestIndexEmptyRange(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/?year_from=1990&year_to=1991")
	// Empty filter results are an inline state, never a failure.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No papers match the current filters")
}

func TestChartEndpoints(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	for _, kind := range []string{"by_year", "top_journals", "word_frequency", "word_cloud"} {
		t.Run(kind, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/charts/"+kind)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, "echarts")
		})
	}
}

func TestChartEmptyRange(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/charts/by_year?year_from=1990&year_to=1991")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No data for the current filters")
	assert.NotContains(t, body, "echarts")
}

func TestChartUnknownKind(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/charts/pie")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownload(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/download?year_from=2020&year_to=2020")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	rows, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"title", "journal", "year", "abstract_word_count"}, rows[0])
	assert.Equal(t, "Covid vaccine trial", rows[1][0])
}

func TestFiltersQueryRoundTrip(t *testing.T) {
	f := Filters{
		YearFrom:         2019,
		YearTo:           2021,
		Journal:          "nature",
		MinAbstractWords: 50,
		Rows:             5,
		TopJournals:      8,
		TopWords:         12,
		Abstracts:        true,
		WordCloud:        true,
	}
	q := f.Query()
	assert.Equal(t, "2019", q.Get("year_from"))
	assert.Equal(t, "nature", q.Get("journal"))
	assert.Equal(t, "1", q.Get("abstracts"))
	assert.Equal(t, "1", q.Get("wordcloud"))
}

func TestFiltersApplyMinAbstract(t *testing.T) {
	f := Filters{YearFrom: 2019, YearTo: 2021, MinAbstractWords: 100}
	filtered := f.Apply(testTable())
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "Covid vaccine trial", filtered.Records[0].Title)
}

func TestFiltersApplyNonDestructive(t *testing.T) {
	tab := testTable()
	before := tab.Len()
	f := Filters{YearFrom: 2021, YearTo: 2021}
	filtered := f.Apply(tab)
	assert.Equal(t, 1, filtered.Len())
	assert.Equal(t, before, tab.Len())
}
