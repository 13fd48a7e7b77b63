// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the CORD-19 metadata CSV into an in-memory Table.
// The loader reads the file in bounded row batches so peak transient memory
// is one chunk rather than the whole dump, and can keep a seeded uniform
// random sample instead of every row.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Column names the loader understands.
const (
	ColTitle       = "title"
	ColAbstract    = "abstract"
	ColJournal     = "journal"
	ColPublishTime = "publish_time"
)

// DefaultColumns are the columns the analysis pipeline uses when no
// allow-list is given.
var DefaultColumns = []string{ColTitle, ColAbstract, ColJournal, ColPublishTime}

// DefaultChunkSize is the row-batch size used when none is configured.
const DefaultChunkSize = 10000

// DefaultSeed drives sampling when no seed is configured.
const DefaultSeed = 42

// LoadError reports a dataset that could not be loaded: the file is missing
// or unreadable, the CSV is malformed, or no requested column exists in the
// header.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Options control a single Load call.
type Options struct {
	// Columns is the column allow-list. Empty means DefaultColumns.
	// Requested columns missing from the header are skipped; if none match,
	// Load fails.
	Columns []string

	// ChunkSize is the row-batch size. Zero or negative means
	// DefaultChunkSize.
	ChunkSize int

	// SampleSize, when positive, keeps a uniform random sample of at most
	// this many rows, without replacement. A file with fewer rows yields
	// the whole file.
	SampleSize int

	// Seed for the sampling source. Zero means DefaultSeed.
	Seed int64

	// Progress, when non-nil, is called at every chunk boundary with the
	// number of rows read so far. Observational only.
	Progress func(rows int)
}

func (o Options) columns() []string {
	if len(o.Columns) == 0 {
		return DefaultColumns
	}
	return o.Columns
}

func (o Options) chunkSize() int {
	if o.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

func (o Options) seed() int64 {
	if o.Seed == 0 {
		return DefaultSeed
	}
	return o.Seed
}

// Load reads the CSV at path into a Table. Each chunk is converted and
// appended (or fed to the sampling reservoir) before the next is read.
func Load(path string, opts Options) (*types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &LoadError{Path: path, Err: errors.New("empty file")}
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	cols, idx := matchColumns(header, opts.columns())
	if len(cols) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("no requested columns in header %v", header)}
	}

	table := &types.Table{Columns: cols}
	res := newReservoir(opts.SampleSize, opts.seed())
	chunkSize := opts.chunkSize()

	chunk := make([]types.Record, 0, chunkSize)
	read := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		chunk = append(chunk, toRecord(row, idx))
		read++
		if len(chunk) == chunkSize {
			flushChunk(table, res, chunk)
			chunk = chunk[:0]
			if opts.Progress != nil {
				opts.Progress(read)
			}
		}
	}
	if len(chunk) > 0 {
		flushChunk(table, res, chunk)
		if opts.Progress != nil {
			opts.Progress(read)
		}
	}

	if res != nil {
		table.Records = res.rows
	}
	return table, nil
}

// matchColumns intersects the header with the allow-list, preserving header
// order, and maps each kept column name to its field index.
func matchColumns(header, want []string) ([]string, map[string]int) {
	wanted := make(map[string]bool, len(want))
	for _, c := range want {
		wanted[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var cols []string
	idx := make(map[string]int)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if wanted[name] {
			cols = append(cols, name)
			idx[name] = i
		}
	}
	return cols, idx
}

// cell returns the trimmed field at column name, or "" when the column is
// outside the allow-list or the row is short.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func toRecord(row []string, idx map[string]int) types.Record {
	rec := types.Record{Title: cell(row, idx, ColTitle)}
	if v := cell(row, idx, ColAbstract); v != "" {
		rec.Abstract = types.String(v)
	}
	if v := cell(row, idx, ColJournal); v != "" {
		rec.Journal = types.String(v)
	}
	if v := cell(row, idx, ColPublishTime); v != "" {
		rec.PublishTime = types.String(v)
	}
	return rec
}

func flushChunk(table *types.Table, res *reservoir, chunk []types.Record) {
	if res != nil {
		for _, rec := range chunk {
			res.offer(rec)
		}
		return
	}
	table.Records = append(table.Records, chunk...)
}

// reservoir implements uniform random sampling without replacement
// (algorithm R). It holds at most size rows no matter how many are offered,
// so sampled chunked loads stay memory-bounded.
type reservoir struct {
	size int
	seen int
	rng  *rand.Rand
	rows []types.Record
}

// newReservoir returns nil when size is not positive, meaning "keep all".
func newReservoir(size int, seed int64) *reservoir {
	if size <= 0 {
		return nil
	}
	return &reservoir{
		size: size,
		rng:  rand.New(rand.NewSource(seed)),
		rows: make([]types.Record, 0, size),
	}
}

func (s *reservoir) offer(rec types.Record) {
	s.seen++
	if len(s.rows) < s.size {
		s.rows = append(s.rows, rec)
		return
	}
	if j := s.rng.Intn(s.seen); j < s.size {
		s.rows[j] = rec
	}
}
