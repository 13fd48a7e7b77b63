// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cord-explorer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cord-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "cord-explorer",
	Short: "Exploratory analysis of the CORD-19 research paper metadata",
	Long: `cord-explorer analyzes the CORD-19 metadata dump of COVID-19 research
papers. It loads the CSV whole, chunked, or sampled, cleans it, computes
aggregate statistics (publications per year, top journals, word frequency),
renders charts, and serves an interactive dashboard.

Each operation is a subcommand: analyze runs the batch pipeline and writes
artifacts, serve starts the dashboard, and sample creates a small dataset
for memory-constrained machines.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cord-explorer.yaml or ~/.config/cord-explorer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cord-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cord-explorer"))
		}
	}

	viper.SetEnvPrefix("CORD_EXPLORER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
