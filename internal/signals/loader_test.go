package signals

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadParsesExport(t *testing.T) {
	src := "Address,Status Code\nhttps://example.com/,200\nhttps://example.com/about,404\n"

	table, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	codes, ok := table.Column("Status Code")
	if !ok {
		t.Fatalf("expected Status Code column")
	}
	if codes[1].Num != 404 {
		t.Fatalf("expected 404, got %v", codes[1].Num)
	}
}

func TestLoadRaggedRows(t *testing.T) {
	src := "Address,Title 1,Status Code\nhttps://example.com/,Home\n"

	table, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	codes, _ := table.Column("Status Code")
	if !codes[0].Blank() {
		t.Fatalf("expected missing trailing cell to be blank")
	}
}

func TestLoadEmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	_, err := Load(strings.NewReader("Address,Status Code\n"))
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestLoadMalformedQuoting(t *testing.T) {
	_, err := Load(strings.NewReader("Address\n\"unterminated\n"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}
