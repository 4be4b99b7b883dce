package signals

import (
	"reflect"
	"testing"
)

func TestNewTableParsesCells(t *testing.T) {
	table := NewTable(
		[]string{"Address", "Word Count", "Response Time"},
		[][]string{
			{"https://example.com/", "1,250", "0.42"},
			{"https://example.com/about", "", "fast"},
		},
	)

	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}

	words, ok := table.Column("Word Count")
	if !ok {
		t.Fatalf("expected Word Count column")
	}
	if !words[0].IsNum || words[0].Num != 1250 {
		t.Fatalf("expected comma-separated number to parse as 1250, got %+v", words[0])
	}
	if !words[1].Blank() {
		t.Fatalf("expected empty cell to be blank")
	}

	times, _ := table.Column("Response Time")
	if times[1].IsNum {
		t.Fatalf("expected %q to stay non-numeric", times[1].Raw)
	}
	if times[1].Blank() {
		t.Fatalf("non-empty text cell must not be blank")
	}
}

func TestNewTablePadsShortRows(t *testing.T) {
	table := NewTable(
		[]string{"Address", "Title 1", "Status Code"},
		[][]string{
			{"https://example.com/"},
		},
	)

	codes, ok := table.Column("Status Code")
	if !ok {
		t.Fatalf("expected Status Code column")
	}
	if len(codes) != 1 || !codes[0].Blank() {
		t.Fatalf("expected padded blank cell, got %+v", codes)
	}
}

func TestTableColumnLookup(t *testing.T) {
	table := NewTable([]string{"Address", "Title 1"}, [][]string{{"a", "b"}})

	if !table.HasColumn("Title 1") {
		t.Fatalf("expected Title 1 to exist")
	}
	if table.HasColumn("Meta Description 1") {
		t.Fatalf("did not expect Meta Description 1")
	}
	if _, ok := table.Column("nope"); ok {
		t.Fatalf("missing column lookup must report false")
	}
	if got := table.Columns(); !reflect.DeepEqual(got, []string{"Address", "Title 1"}) {
		t.Fatalf("unexpected columns: %v", got)
	}
}

func TestParseCellTrimsWhitespace(t *testing.T) {
	table := NewTable([]string{"Status Code"}, [][]string{{"  200  "}})
	codes, _ := table.Column("Status Code")
	if !codes[0].IsNum || codes[0].Num != 200 {
		t.Fatalf("expected trimmed numeric cell, got %+v", codes[0])
	}
}
