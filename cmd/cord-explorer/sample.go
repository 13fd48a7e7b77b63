// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dataset"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Create a small sample CSV from the full metadata dump",
	Long: `Sample reads a bounded number of leading chunks from the full metadata
dump, picks a seeded random quota of rows from each, and writes them to a
small CSV that the analyze and serve commands can load on memory-constrained
machines. All source columns are preserved.`,
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	input := stringSetting(cmd, "input", "load.path")
	output, _ := cmd.Flags().GetString("output")
	size, _ := cmd.Flags().GetInt("size")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	maxChunks, _ := cmd.Flags().GetInt("max-chunks")
	perChunk, _ := cmd.Flags().GetInt("per-chunk")
	seed, _ := cmd.Flags().GetInt64("seed")

	written, err := dataset.WriteSample(input, output, dataset.SampleOptions{
		Size:      size,
		ChunkSize: chunkSize,
		MaxChunks: maxChunks,
		PerChunk:  perChunk,
		Seed:      seed,
	})
	if err != nil {
		return err
	}
	color.Green("Sample saved to %s with %d rows", output, written)
	return nil
}

func init() {
	sampleCmd.Flags().String("input", "data/metadata.csv", "path to the full metadata CSV")
	sampleCmd.Flags().String("output", "data/small_metadata.csv", "path for the sample CSV")
	sampleCmd.Flags().Int("size", 2000, "target number of rows in the sample")
	sampleCmd.Flags().Int("chunk-size", 5000, "rows per read batch")
	sampleCmd.Flags().Int("max-chunks", 4, "number of leading chunks to read")
	sampleCmd.Flags().Int("per-chunk", 500, "rows sampled from each chunk")
	sampleCmd.Flags().Int64("seed", 42, "seed for reproducible sampling")

	rootCmd.AddCommand(sampleCmd)
}
