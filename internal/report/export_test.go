// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yearly_counts.csv")
	require.NoError(t, WriteCounts(path, yearResult()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"year", "count"},
		{"2019", "1"},
		{"2020", "4"},
		{"2021", "2"},
	}
	assert.Equal(t, want, rows)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, yearResult(), journalResult()))

	out := buf.String()
	assert.Contains(t, out, "Publications by Year:")
	assert.Contains(t, out, "Top Journals:")
	assert.Contains(t, out, "Year with the most publications: 2020 (4 papers)")
	assert.Contains(t, out, "Most common journal: Nature (3 papers)")
	assert.Contains(t, out, "The Lancet")
}

func TestWriteSummaryEmptyAggregates(t *testing.T) {
	var buf bytes.Buffer
	empty := yearResult()
	empty.Entries = nil

	require.NoError(t, WriteSummary(&buf, empty, journalResult()))
	assert.NotContains(t, buf.String(), "Year with the most publications")
}

func TestWriteExports(t *testing.T) {
	dir := t.TempDir()

	written, err := WriteExports(dir, yearResult(), journalResult())
	require.NoError(t, err)
	require.Len(t, written, 3)

	for _, name := range []string{FileYearlyCounts, FileTopJournals, FileSummary} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileTopJournals))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "journal,count\n"))
}
