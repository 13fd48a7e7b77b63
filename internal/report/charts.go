// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report turns aggregate results into artifacts: go-echarts chart
// files, CSV count exports, a plain-text summary, and a YAML report file
// capturing a whole batch run.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// imagesDir is the subdirectory of the output directory holding chart files.
const imagesDir = "images"

// Chart artifact filenames, keyed by aggregation kind.
const (
	FileByYear    = "by_year.html"
	FileJournals  = "top_journals.html"
	FileWordFreq  = "word_frequency.html"
	FileWordCloud = "word_cloud.html"
)

// RenderError reports an empty AggregateResult passed to a chart call. An
// empty result must never produce a blank chart; the caller decides how to
// surface the no-data state.
type RenderError struct {
	Kind types.AggregateKind
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: empty aggregate result", e.Kind)
}

// Renderable is the piece of the go-echarts chart API the writer needs.
type Renderable interface {
	Render(w io.Writer) error
}

// YearChart builds a bar chart of publications per year, ascending.
func YearChart(res types.AggregateResult) (Renderable, error) {
	if res.Empty() {
		return nil, &RenderError{Kind: res.Kind}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Number of Publications by Year",
			Subtitle: fmt.Sprintf("%d papers", res.Total()),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	keys, data := barData(res)
	bar.SetXAxis(keys).AddSeries("papers", data)
	return bar, nil
}

// JournalChart builds a bar chart of the top journals, descending count.
func JournalChart(res types.AggregateResult) (Renderable, error) {
	if res.Empty() {
		return nil, &RenderError{Kind: res.Kind}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Top %d Journals by Publication Count", len(res.Entries)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "500px"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)
	keys, data := barData(res)
	bar.SetXAxis(keys).AddSeries("papers", data)
	return bar, nil
}

// WordChart builds a bar chart of the most frequent words, descending.
func WordChart(res types.AggregateResult) (Renderable, error) {
	if res.Empty() {
		return nil, &RenderError{Kind: res.Kind}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Top %d Words", len(res.Entries)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "500px"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45}}),
	)
	keys, data := barData(res)
	bar.SetXAxis(keys).AddSeries("occurrences", data)
	return bar, nil
}

// WordCloudChart builds a word cloud from a word-frequency result. It is the
// heaviest artifact and is only rendered on request.
func WordCloudChart(res types.AggregateResult) (Renderable, error) {
	if res.Empty() {
		return nil, &RenderError{Kind: res.Kind}
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Word Cloud"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	data := make([]opts.WordCloudData, 0, len(res.Entries))
	for _, e := range res.Entries {
		data = append(data, opts.WordCloudData{Name: e.Key, Value: e.Count})
	}
	wc.AddSeries("words", data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{SizeRange: []float32{14, 80}}),
	)
	return wc, nil
}

func barData(res types.AggregateResult) ([]string, []opts.BarData) {
	keys := make([]string, 0, len(res.Entries))
	data := make([]opts.BarData, 0, len(res.Entries))
	for _, e := range res.Entries {
		keys = append(keys, e.Key)
		data = append(data, opts.BarData{Value: e.Count})
	}
	return keys, data
}

// WriteCharts renders the batch chart set under dir/images/ and returns the
// written file paths. The word cloud is skipped unless wordCloud is set.
// An empty aggregate yields a RenderError and no partial file for that chart.
func WriteCharts(dir string, byYear, byJournal, words types.AggregateResult, wordCloud bool) ([]string, error) {
	imgDir := filepath.Join(dir, imagesDir)
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", imgDir, err)
	}

	type chartSpec struct {
		file  string
		build func() (Renderable, error)
	}
	specs := []chartSpec{
		{FileByYear, func() (Renderable, error) { return YearChart(byYear) }},
		{FileJournals, func() (Renderable, error) { return JournalChart(byJournal) }},
		{FileWordFreq, func() (Renderable, error) { return WordChart(words) }},
	}
	if wordCloud {
		specs = append(specs, chartSpec{FileWordCloud, func() (Renderable, error) { return WordCloudChart(words) }})
	}

	var written []string
	for _, s := range specs {
		chart, err := s.build()
		if err != nil {
			return written, err
		}
		path := filepath.Join(imgDir, s.file)
		if err := renderToFile(chart, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func renderToFile(chart Renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := chart.Render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
