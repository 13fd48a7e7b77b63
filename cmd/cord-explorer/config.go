// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Settings resolve in the usual precedence: explicit flag, then config
// file / environment via viper, then the flag's default.

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func int64Setting(cmd *cobra.Command, flag, key string) int64 {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt64(key)
	}
	v, _ := cmd.Flags().GetInt64(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func stringSliceSetting(cmd *cobra.Command, flag, key string) []string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	v, _ := cmd.Flags().GetStringSlice(flag)
	return v
}

// loadConfig resolves the dataset loading settings shared by analyze and
// serve.
func loadConfig(cmd *cobra.Command) types.LoadConfig {
	return types.LoadConfig{
		Path:       stringSetting(cmd, "input", "load.path"),
		Columns:    stringSliceSetting(cmd, "columns", "load.columns"),
		ChunkSize:  intSetting(cmd, "chunk-size", "load.chunk_size"),
		SampleSize: intSetting(cmd, "sample-size", "load.sample_size"),
		Seed:       int64Setting(cmd, "seed", "load.seed"),
	}
}

func cleanConfig(cmd *cobra.Command) types.CleanConfig {
	return types.CleanConfig{
		DropInvalidDates: boolSetting(cmd, "drop-invalid-dates", "clean.drop_invalid_dates"),
	}
}

func aggregateConfig(cmd *cobra.Command) types.AggregateConfig {
	return types.AggregateConfig{
		TopJournals:     intSetting(cmd, "top-journals", "aggregate.top_journals"),
		TopWords:        intSetting(cmd, "top-words", "aggregate.top_words"),
		IncludeAbstract: boolSetting(cmd, "abstracts", "aggregate.include_abstract"),
		IncludeUnknown:  boolSetting(cmd, "unknown", "aggregate.include_unknown"),
	}
}

// addLoadFlags registers the dataset loading flags shared by analyze and
// serve.
func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "data/metadata.csv", "path to the metadata CSV")
	cmd.Flags().StringSlice("columns", nil, "column allow-list (default: title,abstract,journal,publish_time)")
	cmd.Flags().Int("chunk-size", 10000, "rows per read batch")
	cmd.Flags().Int("sample-size", 0, "keep a uniform random sample of this many rows (0 = all)")
	cmd.Flags().Int64("seed", 42, "seed for reproducible sampling")
	cmd.Flags().Bool("drop-invalid-dates", false, "drop records with unparseable publish_time instead of keeping them without a year")
}
