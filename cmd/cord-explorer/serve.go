// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Serve loads and cleans the metadata CSV once, then serves a single-page
dashboard with year-range, journal, and abstract-length filters. Filter state
lives in the URL; the loaded table is immutable and shared read-only across
requests.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	loadCfg := loadConfig(cmd)
	cleanCfg := cleanConfig(cmd)
	serveCfg := types.ServeConfig{
		Addr:       stringSetting(cmd, "addr", "serve.addr"),
		SampleRows: intSetting(cmd, "rows", "serve.sample_rows"),
	}
	aggCfg := aggregateConfig(cmd)

	table, err := dataset.Load(loadCfg.Path, dataset.Options{
		Columns:    loadCfg.Columns,
		ChunkSize:  loadCfg.ChunkSize,
		SampleSize: loadCfg.SampleSize,
		Seed:       loadCfg.Seed,
		Progress: func(rows int) {
			fmt.Fprintf(os.Stderr, "  read %d rows\n", rows)
		},
	})
	if err != nil {
		return err
	}
	cleaned := clean.Clean(table, clean.Options{DropInvalidDates: cleanCfg.DropInvalidDates})
	fmt.Fprintf(os.Stderr, "Loaded %d rows (%d after cleaning) from %s\n",
		table.Len(), cleaned.Len(), loadCfg.Path)

	e := dashboard.New(cleaned, serveCfg, aggCfg)
	fmt.Fprintf(os.Stderr, "Dashboard listening on %s\n", serveCfg.Addr)
	return e.Start(serveCfg.Addr)
}

func init() {
	addLoadFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int("rows", 10, "default number of rows in the sample table view")
	serveCmd.Flags().Int("top-journals", 10, "default number of journals in the journal chart")
	serveCmd.Flags().Int("top-words", 15, "default number of tokens in the word chart")
	serveCmd.Flags().Bool("abstracts", false, "tokenize abstracts as well as titles by default")
	serveCmd.Flags().Bool("unknown", false, "count records with a missing column under an \"unknown\" bucket")

	rootCmd.AddCommand(serveCmd)
}
