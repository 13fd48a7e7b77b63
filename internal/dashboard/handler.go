// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pdiddy/cord-explorer/internal/aggregate"
	"github.com/pdiddy/cord-explorer/internal/report"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Handler serves the dashboard page, the per-kind chart frames, and the
// filtered-data download. It holds only immutable state.
type Handler struct {
	table *types.Table
	serve types.ServeConfig
	agg   types.AggregateConfig
	page  *template.Template
}

// NewHandler creates a dashboard handler over a cleaned table.
func NewHandler(table *types.Table, serve types.ServeConfig, agg types.AggregateConfig) *Handler {
	return &Handler{
		table: table,
		serve: serve,
		agg:   agg,
		page:  template.Must(template.New("index").Parse(indexTemplate)),
	}
}

// sampleRow is one row of the dashboard's table view.
type sampleRow struct {
	Title         string
	Journal       string
	Year          string
	AbstractWords int
}

// pageData feeds the index template.
type pageData struct {
	Filters      Filters
	Query        string
	TotalRows    int
	FilteredRows int
	MinYear      int
	MaxYear      int
	Sample       []sampleRow
	Error        string
}

// Index renders the dashboard page for the request's filter state.
func (h *Handler) Index(c echo.Context) error {
	f := parseFilters(c, defaultFilters(h.table, h.serve, h.agg))
	filtered := f.Apply(h.table)

	min, max, ok := h.table.YearBounds()
	if !ok {
		min, max = 2019, 2022
	}

	data := pageData{
		Filters:      f,
		Query:        f.Query().Encode(),
		TotalRows:    h.table.Len(),
		FilteredRows: filtered.Len(),
		MinYear:      min,
		MaxYear:      max,
		Sample:       sampleRows(filtered, f.Rows),
	}
	if filtered.Len() == 0 {
		data.Error = "No papers match the current filters. Prior charts stay visible; widen the year range or clear the journal filter."
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return h.page.Execute(c.Response(), data)
}

func sampleRows(t *types.Table, n int) []sampleRow {
	if n <= 0 {
		n = 10
	}
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]sampleRow, 0, n)
	for _, r := range t.Records[:n] {
		row := sampleRow{Title: r.Title, Journal: "-", Year: "-", AbstractWords: r.AbstractWords}
		if r.Journal.Present {
			row.Journal = r.Journal.Value
		}
		if r.Year.Present {
			row.Year = strconv.Itoa(r.Year.Value)
		}
		rows = append(rows, row)
	}
	return rows
}

// Chart renders one aggregate of the filtered table as a standalone chart
// document, embedded by the page as an iframe. An empty filter result
// produces an inline no-data state, never a blank chart or a 5xx.
func (h *Handler) Chart(c echo.Context) error {
	f := parseFilters(c, defaultFilters(h.table, h.serve, h.agg))
	filtered := f.Apply(h.table)

	chart, err := h.buildChart(c.Param("kind"), filtered, f)
	if err != nil {
		var empty *report.RenderError
		if errors.As(err, &empty) {
			return c.HTML(http.StatusOK, noDataHTML)
		}
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return chart.Render(c.Response())
}

func (h *Handler) buildChart(kind string, t *types.Table, f Filters) (report.Renderable, error) {
	switch kind {
	case "by_year":
		return report.YearChart(aggregate.ByYear(t, aggregate.Options{}))
	case "top_journals":
		return report.JournalChart(aggregate.ByJournal(t, aggregate.Options{TopK: f.TopJournals}))
	case "word_frequency":
		opts := aggregate.Options{TopK: f.TopWords, IncludeAbstract: f.Abstracts}
		return report.WordChart(aggregate.WordFrequency(t, opts))
	case "word_cloud":
		opts := aggregate.Options{TopK: 100, IncludeAbstract: f.Abstracts}
		return report.WordCloudChart(aggregate.WordFrequency(t, opts))
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

// noDataHTML is the inline empty-result state for chart frames.
const noDataHTML = `<!DOCTYPE html>
<html><body style="font-family: sans-serif; color: #666; padding: 2em;">
<p>No data for the current filters.</p>
</body></html>`

// Download streams the filtered table as a CSV attachment.
func (h *Handler) Download(c echo.Context) error {
	f := parseFilters(c, defaultFilters(h.table, h.serve, h.agg))
	filtered := f.Apply(h.table)

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="filtered_metadata.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"title", "journal", "year", "abstract_word_count"}); err != nil {
		return err
	}
	for _, r := range filtered.Records {
		journal, year := "", ""
		if r.Journal.Present {
			journal = r.Journal.Value
		}
		if r.Year.Present {
			year = strconv.Itoa(r.Year.Value)
		}
		row := []string{r.Title, journal, year, strconv.Itoa(r.AbstractWords)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
