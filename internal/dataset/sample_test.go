// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteSample(t *testing.T) {
	input := genCSV(t, 30)
	output := filepath.Join(t.TempDir(), "small.csv")

	written, err := WriteSample(input, output, SampleOptions{
		Size:      10,
		ChunkSize: 10,
		MaxChunks: 2,
		PerChunk:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, written)

	rows := readCSV(t, output)
	require.Len(t, rows, 11)
	assert.Equal(t, []string{"title", "abstract", "journal", "publish_time"}, rows[0])
}

func TestWriteSampleSmallInput(t *testing.T) {
	// A file smaller than one chunk still yields a sample from the partial
	// chunk.
	input := genCSV(t, 8)
	output := filepath.Join(t.TempDir(), "small.csv")

	written, err := WriteSample(input, output, SampleOptions{
		Size:      20,
		ChunkSize: 100,
		PerChunk:  500,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, written)
}

func TestWriteSampleReproducible(t *testing.T) {
	input := genCSV(t, 40)
	dir := t.TempDir()
	outA := filepath.Join(dir, "a.csv")
	outB := filepath.Join(dir, "b.csv")

	opts := SampleOptions{Size: 10, ChunkSize: 20, MaxChunks: 2, PerChunk: 5, Seed: 3}
	_, err := WriteSample(input, outA, opts)
	require.NoError(t, err)
	_, err = WriteSample(input, outB, opts)
	require.NoError(t, err)

	assert.Equal(t, readCSV(t, outA), readCSV(t, outB))
}

func TestWriteSampleMissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "small.csv")
	_, err := WriteSample(filepath.Join(t.TempDir(), "absent.csv"), output, SampleOptions{})
	var le *LoadError
	require.ErrorAs(t, err, &le)
}
