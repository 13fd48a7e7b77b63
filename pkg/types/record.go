// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across the cord-explorer
// pipeline: dataset records and tables, aggregate results, and per-stage
// configuration.
package types

// OptString is an optional string field. Absence is explicit: a record with
// no journal is distinguishable from one whose journal is an empty string.
type OptString struct {
	Value   string `yaml:"value,omitempty"`
	Present bool   `yaml:"present"`
}

// String returns a present OptString holding v.
func String(v string) OptString {
	return OptString{Value: v, Present: true}
}

// OptInt is an optional integer field.
type OptInt struct {
	Value   int  `yaml:"value,omitempty"`
	Present bool `yaml:"present"`
}

// Int returns a present OptInt holding v.
func Int(v int) OptInt {
	return OptInt{Value: v, Present: true}
}

// Record holds one paper's metadata row. Duplicates are possible in the
// source dump and are not deduplicated.
type Record struct {
	// Title is the paper title. Rows without a title keep an empty string.
	Title string

	// Abstract is the paper abstract, absent when the source cell is empty.
	Abstract OptString

	// Journal is the publishing journal, absent when the source cell is empty.
	Journal OptString

	// PublishTime is the raw publish_time cell as it appears in the dump.
	PublishTime OptString

	// Year is the publication year derived by the cleaner from PublishTime.
	// Absent before cleaning or when PublishTime cannot be parsed.
	Year OptInt

	// AbstractWords is the whitespace-token count of Abstract, derived by
	// the cleaner. Zero when the abstract is absent.
	AbstractWords int
}

// Table is an ordered collection of Records with a column set fixed at load
// time. Insertion order follows file order. Tables are treated as immutable:
// Filter returns a new Table and never modifies the receiver.
type Table struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether name is part of the table's column set.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Filter returns a new Table containing the records for which keep returns
// true, preserving order. The receiver is unchanged.
func (t *Table) Filter(keep func(Record) bool) *Table {
	out := &Table{Columns: t.Columns}
	for _, r := range t.Records {
		if keep(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// YearBounds returns the minimum and maximum present year, and false when no
// record carries a year.
func (t *Table) YearBounds() (min, max int, ok bool) {
	for _, r := range t.Records {
		if !r.Year.Present {
			continue
		}
		if !ok {
			min, max, ok = r.Year.Value, r.Year.Value, true
			continue
		}
		if r.Year.Value < min {
			min = r.Year.Value
		}
		if r.Year.Value > max {
			max = r.Year.Value
		}
	}
	return min, max, ok
}
