package signals

import "testing"

func TestResolvePrefersFirstAlias(t *testing.T) {
	table := NewTable([]string{"Title 1", "Title"}, [][]string{{"from sf", "generic"}})

	vals, ok := Title.Resolve(table)
	if !ok {
		t.Fatalf("expected title to resolve")
	}
	if vals.Column != "Title 1" {
		t.Fatalf("expected Screaming Frog alias to win, got %q", vals.Column)
	}
	if vals.Cells[0].Raw != "from sf" {
		t.Fatalf("unexpected cell: %q", vals.Cells[0].Raw)
	}
}

func TestResolveFallsBackToLaterAlias(t *testing.T) {
	table := NewTable([]string{"Canonical URL"}, [][]string{{"https://example.com/"}})

	vals, ok := Canonical.Resolve(table)
	if !ok {
		t.Fatalf("expected canonical to resolve via fallback alias")
	}
	if vals.Column != "Canonical URL" {
		t.Fatalf("unexpected column: %q", vals.Column)
	}
}

func TestResolveMissingSignalIsNotAnError(t *testing.T) {
	table := NewTable([]string{"Address"}, [][]string{{"https://example.com/"}})

	if _, ok := Hreflang.Resolve(table); ok {
		t.Fatalf("expected hreflang to be unresolved")
	}
}
