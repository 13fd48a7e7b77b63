// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"reflect"
	"testing"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		wantYear int
		wantErr  bool
	}{
		{"2020-03-15", 2020, false},
		{"2020-03", 2020, false},
		{"2020", 2020, false},
		{"2019 Dec 31", 2019, false},
		{"2019 Dec", 2019, false},
		{"Mar 15, 2021", 2021, false},
		{" 2020-03-15 ", 2020, false},
		{"not a date", 0, true},
		{"", 0, true},
		{"15/03/2020", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && d.Year() != tt.wantYear {
				t.Errorf("ParseDate(%q).Year() = %d, want %d", tt.in, d.Year(), tt.wantYear)
			}
		})
	}
}

func testTable() *types.Table {
	return &types.Table{
		Columns: []string{"title", "abstract", "journal", "publish_time"},
		Records: []types.Record{
			{Title: "Valid date", PublishTime: types.String("2020-03-15"), Abstract: types.String("one two three")},
			{Title: "Invalid date", PublishTime: types.String("unknown date")},
			{Title: "No date"},
		},
	}
}

func TestClean(t *testing.T) {
	in := testTable()
	out := Clean(in, Options{})

	if out.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", out.Len())
	}
	if !out.HasColumn("year") {
		t.Errorf("cleaned table missing derived year column, got %v", out.Columns)
	}

	if got := out.Records[0].Year; !got.Present || got.Value != 2020 {
		t.Errorf("valid date year = %+v, want present 2020", got)
	}
	if out.Records[0].AbstractWords != 3 {
		t.Errorf("AbstractWords = %d, want 3", out.Records[0].AbstractWords)
	}

	// A parse failure is recovered locally: the record stays, year absent.
	if out.Records[1].Year.Present {
		t.Errorf("invalid date should leave year absent, got %+v", out.Records[1].Year)
	}
	if out.Records[2].Year.Present {
		t.Errorf("missing date should leave year absent, got %+v", out.Records[2].Year)
	}
}

func TestCleanDropInvalidDates(t *testing.T) {
	out := Clean(testTable(), Options{DropInvalidDates: true})

	// Only the unparseable record is dropped; a missing date is not invalid.
	if out.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", out.Len())
	}
	for _, r := range out.Records {
		if r.Title == "Invalid date" {
			t.Errorf("record with unparseable date survived cleaning")
		}
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := testTable()
	Clean(in, Options{})

	if in.Records[0].Year.Present {
		t.Errorf("input record gained a year; Clean must not mutate its input")
	}
	if in.HasColumn("year") {
		t.Errorf("input table gained a column; Clean must not mutate its input")
	}
}

func TestCleanDeterministic(t *testing.T) {
	a := Clean(testTable(), Options{})
	b := Clean(testTable(), Options{})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Clean is not deterministic: %+v != %+v", a, b)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and strips punctuation", "COVID-19: A Review!", []string{"covid", "review"}},
		{"digits separate tokens", "h1n1 influenza", []string{"influenza"}},
		{"short tokens dropped", "of an in the lab", []string{"the", "lab"}},
		{"empty", "", nil},
		{"whitespace runs", "  sars   cov  ", []string{"sars", "cov"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
