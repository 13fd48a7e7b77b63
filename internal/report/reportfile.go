// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// FileReport is the filename of the YAML report under the output directory.
const FileReport = "report.yaml"

// ReportFile is the on-disk record of a batch analysis run: the options that
// produced it, row counts, and every aggregate's entries. A run can be
// inspected later without reloading the dataset.
type ReportFile struct {
	Input      string                  `yaml:"input"`
	Options    RunOptions              `yaml:"options"`
	Summary    RunSummary              `yaml:"summary"`
	Aggregates []types.AggregateResult `yaml:"aggregates"`
}

// RunOptions stores the load/clean/aggregate settings of the run.
type RunOptions struct {
	Columns          []string `yaml:"columns,omitempty"`
	ChunkSize        int      `yaml:"chunk_size"`
	SampleSize       int      `yaml:"sample_size,omitempty"`
	Seed             int64    `yaml:"seed"`
	DropInvalidDates bool     `yaml:"drop_invalid_dates"`
	TopJournals      int      `yaml:"top_journals"`
	TopWords         int      `yaml:"top_words"`
	IncludeAbstract  bool     `yaml:"include_abstract"`
}

// RunSummary stores row counts and a timestamp.
type RunSummary struct {
	RowsLoaded  int       `yaml:"rows_loaded"`
	RowsCleaned int       `yaml:"rows_cleaned"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteReportFile saves the report to a YAML file.
func WriteReportFile(path string, rf ReportFile) error {
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved report from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
