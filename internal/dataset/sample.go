// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
)

// SampleOptions control WriteSample.
type SampleOptions struct {
	// Size is the target number of rows in the output (default 2000).
	Size int

	// ChunkSize is the row-batch size read from the input (default 5000).
	ChunkSize int

	// MaxChunks caps how many leading chunks are read, so sampling a
	// multi-gigabyte dump stays fast (default 4).
	MaxChunks int

	// PerChunk is the number of rows sampled from each chunk (default 500).
	PerChunk int

	// Seed for the sampling source. Zero means DefaultSeed.
	Seed int64
}

func (o SampleOptions) withDefaults() SampleOptions {
	if o.Size <= 0 {
		o.Size = 2000
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = 5000
	}
	if o.MaxChunks <= 0 {
		o.MaxChunks = 4
	}
	if o.PerChunk <= 0 {
		o.PerChunk = 500
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	return o
}

// WriteSample creates a small sample CSV from a large metadata dump: it reads
// up to MaxChunks leading chunks, samples PerChunk rows from each with a
// seeded source, truncates to Size rows, and writes them under the original
// header with all columns intact. Returns the number of rows written.
func WriteSample(input, output string, opts SampleOptions) (int, error) {
	opts = opts.withDefaults()

	in, err := os.Open(input)
	if err != nil {
		return 0, &LoadError{Path: input, Err: err}
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return 0, &LoadError{Path: input, Err: errors.New("empty file")}
		}
		return 0, &LoadError{Path: input, Err: err}
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	var sampled [][]string
	chunk := make([][]string, 0, opts.ChunkSize)
	chunks := 0
	for chunks < opts.MaxChunks {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, &LoadError{Path: input, Err: err}
		}
		chunk = append(chunk, append([]string(nil), row...))
		if len(chunk) == opts.ChunkSize {
			sampled = append(sampled, sampleChunk(chunk, opts.PerChunk, rng)...)
			chunk = chunk[:0]
			chunks++
		}
	}
	if len(chunk) > 0 && chunks < opts.MaxChunks {
		sampled = append(sampled, sampleChunk(chunk, opts.PerChunk, rng)...)
	}

	if len(sampled) > opts.Size {
		sampled = sampled[:opts.Size]
	}

	out, err := os.Create(output)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", output, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("writing %s: %w", output, err)
	}
	for _, row := range sampled {
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("writing %s: %w", output, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("writing %s: %w", output, err)
	}
	return len(sampled), nil
}

// sampleChunk picks n distinct rows from chunk, preserving file order so the
// output is deterministic for a given seed.
func sampleChunk(chunk [][]string, n int, rng *rand.Rand) [][]string {
	if n >= len(chunk) {
		return append([][]string(nil), chunk...)
	}
	picked := rng.Perm(len(chunk))[:n]
	sort.Ints(picked)
	out := make([][]string, 0, n)
	for _, i := range picked {
		out = append(out, chunk[i])
	}
	return out
}
