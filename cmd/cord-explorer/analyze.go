// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/aggregate"
	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/internal/report"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the batch analysis and write chart and export artifacts",
	Long: `Analyze loads the metadata CSV (whole, chunked, or sampled), cleans it,
computes publications per year, top journals, and word frequency, and writes
charts, count CSVs, a text summary, and a YAML report under the output
directory. Exits non-zero when the dataset cannot be loaded or a chart has
no data.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	loadCfg := loadConfig(cmd)
	cleanCfg := cleanConfig(cmd)
	aggCfg := aggregateConfig(cmd)
	outDir := stringSetting(cmd, "out", "report.output_dir")
	wordCloud := boolSetting(cmd, "wordcloud", "report.word_cloud")

	progress := color.New(color.FgCyan)
	table, err := dataset.Load(loadCfg.Path, dataset.Options{
		Columns:    loadCfg.Columns,
		ChunkSize:  loadCfg.ChunkSize,
		SampleSize: loadCfg.SampleSize,
		Seed:       loadCfg.Seed,
		Progress: func(rows int) {
			progress.Fprintf(os.Stderr, "  read %d rows\n", rows)
		},
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d rows from %s\n", table.Len(), loadCfg.Path)

	cleaned := clean.Clean(table, clean.Options{DropInvalidDates: cleanCfg.DropInvalidDates})

	byYear := aggregate.ByYear(cleaned, aggregate.Options{IncludeUnknown: aggCfg.IncludeUnknown})
	byJournal := aggregate.ByJournal(cleaned, aggregate.Options{
		TopK:           aggCfg.TopJournals,
		IncludeUnknown: aggCfg.IncludeUnknown,
	})
	words := aggregate.WordFrequency(cleaned, aggregate.Options{
		TopK:            aggCfg.TopWords,
		IncludeAbstract: aggCfg.IncludeAbstract,
	})

	charts, err := report.WriteCharts(outDir, byYear, byJournal, words, wordCloud)
	if err != nil {
		return err
	}
	exports, err := report.WriteExports(outDir, byYear, byJournal)
	if err != nil {
		return err
	}

	rf := report.ReportFile{
		Input: loadCfg.Path,
		Options: report.RunOptions{
			Columns:          loadCfg.Columns,
			ChunkSize:        loadCfg.ChunkSize,
			SampleSize:       loadCfg.SampleSize,
			Seed:             loadCfg.Seed,
			DropInvalidDates: cleanCfg.DropInvalidDates,
			TopJournals:      aggCfg.TopJournals,
			TopWords:         aggCfg.TopWords,
			IncludeAbstract:  aggCfg.IncludeAbstract,
		},
		Summary: report.RunSummary{
			RowsLoaded:  table.Len(),
			RowsCleaned: cleaned.Len(),
			Timestamp:   time.Now(),
		},
		Aggregates: []types.AggregateResult{byYear, byJournal, words},
	}
	reportPath := filepath.Join(outDir, report.FileReport)
	if err := report.WriteReportFile(reportPath, rf); err != nil {
		return err
	}

	if err := report.WriteSummary(os.Stdout, byYear, byJournal); err != nil {
		return err
	}

	artifacts := len(charts) + len(exports) + 1
	color.Green("Analysis complete: %d artifacts under %s", artifacts, outDir)
	return nil
}

func init() {
	addLoadFlags(analyzeCmd)
	analyzeCmd.Flags().String("out", "results", "output directory for artifacts")
	analyzeCmd.Flags().Int("top-journals", 10, "number of journals in the journal aggregate")
	analyzeCmd.Flags().Int("top-words", 15, "number of tokens in the word-frequency aggregate")
	analyzeCmd.Flags().Bool("abstracts", false, "tokenize abstracts as well as titles")
	analyzeCmd.Flags().Bool("unknown", false, "count records with a missing column under an \"unknown\" bucket")
	analyzeCmd.Flags().Bool("wordcloud", false, "also render a word-cloud artifact (memory heavy)")

	rootCmd.AddCommand(analyzeCmd)
}
