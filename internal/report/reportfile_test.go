// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func TestReportFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileReport)

	rf := ReportFile{
		Input: "data/small_metadata.csv",
		Options: RunOptions{
			ChunkSize:   10000,
			SampleSize:  2000,
			Seed:        42,
			TopJournals: 10,
			TopWords:    15,
		},
		Summary: RunSummary{
			RowsLoaded:  2000,
			RowsCleaned: 1987,
			Timestamp:   time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		},
		Aggregates: []types.AggregateResult{yearResult(), journalResult(), wordResult()},
	}
	require.NoError(t, WriteReportFile(path, rf))

	got, err := ReadReportFile(path)
	require.NoError(t, err)

	assert.Equal(t, rf.Input, got.Input)
	assert.Equal(t, rf.Options, got.Options)
	assert.Equal(t, rf.Summary.RowsLoaded, got.Summary.RowsLoaded)
	assert.True(t, rf.Summary.Timestamp.Equal(got.Summary.Timestamp))
	require.Len(t, got.Aggregates, 3)
	assert.Equal(t, rf.Aggregates[0].Entries, got.Aggregates[0].Entries)
	assert.Equal(t, types.AggregateWordFrequency, got.Aggregates[2].Kind)
}

func TestReadReportFileMissing(t *testing.T) {
	_, err := ReadReportFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadReportFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))
	_, err := ReadReportFile(path)
	assert.Error(t, err)
}
