// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Count export filenames.
const (
	FileYearlyCounts = "yearly_counts.csv"
	FileTopJournals  = "top_journals.csv"
	FileSummary      = "summary.txt"
)

// keyHeader names the key column in count exports per aggregation kind.
func keyHeader(kind types.AggregateKind) string {
	switch kind {
	case types.AggregateByYear:
		return "year"
	case types.AggregateByJournal:
		return "journal"
	default:
		return "word"
	}
}

// WriteCounts writes an aggregate as a two-column CSV (key, count) at path.
func WriteCounts(path string, res types.AggregateResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{keyHeader(res.Kind), "count"}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, e := range res.Entries {
		if err := w.Write([]string{e.Key, strconv.Itoa(e.Count)}); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteExports writes the count CSVs and summary under dir and returns the
// written paths.
func WriteExports(dir string, byYear, byJournal types.AggregateResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	yearly := filepath.Join(dir, FileYearlyCounts)
	if err := WriteCounts(yearly, byYear); err != nil {
		return nil, err
	}
	journals := filepath.Join(dir, FileTopJournals)
	if err := WriteCounts(journals, byJournal); err != nil {
		return []string{yearly}, err
	}

	summary := filepath.Join(dir, FileSummary)
	f, err := os.Create(summary)
	if err != nil {
		return []string{yearly, journals}, fmt.Errorf("creating %s: %w", summary, err)
	}
	defer f.Close()
	if err := WriteSummary(f, byYear, byJournal); err != nil {
		return []string{yearly, journals}, fmt.Errorf("writing %s: %w", summary, err)
	}
	return []string{yearly, journals, summary}, nil
}

// WriteSummary writes a plain-text analysis summary: both count tables plus
// the busiest year and most common journal.
func WriteSummary(w io.Writer, byYear, byJournal types.AggregateResult) error {
	fmt.Fprintln(w, "CORD-19 Dataset Analysis Summary")
	fmt.Fprintln(w, "=============================================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Publications by Year:")
	writeCountTable(w, keyHeader(byYear.Kind), byYear)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Top Journals:")
	writeCountTable(w, keyHeader(byJournal.Kind), byJournal)
	fmt.Fprintln(w)

	if top, ok := byYear.Top(); ok {
		fmt.Fprintf(w, "Year with the most publications: %s (%d papers)\n", top.Key, top.Count)
	}
	if len(byJournal.Entries) > 0 {
		top := byJournal.Entries[0]
		fmt.Fprintf(w, "Most common journal: %s (%d papers)\n", top.Key, top.Count)
	}
	return nil
}

// writeCountTable renders an aggregate as a borderless two-column table.
func writeCountTable(w io.Writer, keyName string, res types.AggregateResult) {
	rows := make([][]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		rows = append(rows, []string{e.Key, strconv.Itoa(e.Count)})
	}
	table := NewCountTable(w, keyName)
	table.Bulk(rows)
	table.Render()
}

// NewCountTable returns a tablewriter table styled for key/count listings,
// shared by the summary export and the CLI's stdout report.
func NewCountTable(w io.Writer, keyName string) *tablewriter.Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header([]string{keyName, "count"})
	return table
}
