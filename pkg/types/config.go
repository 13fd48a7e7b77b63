// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LoadConfig holds settings for the dataset loading stage.
type LoadConfig struct {
	// Path is the CSV file to load (e.g. "data/metadata.csv").
	Path string `json:"path" yaml:"path"`

	// Columns restricts loading to the named columns. Empty means the
	// default analysis columns (title, abstract, journal, publish_time).
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`

	// ChunkSize reads the file in row batches of this size (default 10000).
	// Zero or negative loads the whole file in one batch.
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// SampleSize keeps a uniform random sample of at most this many rows.
	// Zero loads every row.
	SampleSize int `json:"sample_size" yaml:"sample_size"`

	// Seed drives the sampling source so samples are reproducible (default 42).
	Seed int64 `json:"seed" yaml:"seed"`
}

// CleanConfig holds settings for the cleaning stage.
type CleanConfig struct {
	// DropInvalidDates removes records whose publish_time cannot be parsed
	// instead of keeping them with an absent year.
	DropInvalidDates bool `json:"drop_invalid_dates" yaml:"drop_invalid_dates"`
}

// AggregateConfig holds settings for the aggregation stage.
type AggregateConfig struct {
	// TopJournals is the number of journals kept in by_journal (default 10).
	TopJournals int `json:"top_journals" yaml:"top_journals"`

	// TopWords is the number of tokens kept in word_frequency (default 15).
	TopWords int `json:"top_words" yaml:"top_words"`

	// IncludeAbstract tokenizes abstracts as well as titles for
	// word_frequency.
	IncludeAbstract bool `json:"include_abstract" yaml:"include_abstract"`

	// IncludeUnknown adds an "unknown" bucket for records missing the
	// grouped column. Off by default: absent values are excluded.
	IncludeUnknown bool `json:"include_unknown" yaml:"include_unknown"`
}

// ReportConfig holds settings for chart and export output.
type ReportConfig struct {
	// OutputDir is the base directory for generated artifacts
	// (contains images/). Default "results".
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// WordCloud also renders a word-cloud artifact. Off by default; it is
	// the heaviest chart.
	WordCloud bool `json:"word_cloud" yaml:"word_cloud"`
}

// ServeConfig holds settings for the dashboard server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// SampleRows is the default number of rows shown in the dashboard's
	// table view (default 10).
	SampleRows int `json:"sample_rows" yaml:"sample_rows"`
}

// ExplorerConfig groups all stage configurations.
type ExplorerConfig struct {
	Load      LoadConfig      `json:"load" yaml:"load"`
	Clean     CleanConfig     `json:"clean" yaml:"clean"`
	Aggregate AggregateConfig `json:"aggregate" yaml:"aggregate"`
	Report    ReportConfig    `json:"report" yaml:"report"`
	Serve     ServeConfig     `json:"serve" yaml:"serve"`
}
