package arc

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	names := []string{"black", "blue", "red", "green", "yellow", "gray", "pink", "orange", "cyan", "brown"}
	for v, name := range names {
		c, err := Lookup(v)
		if err != nil {
			t.Fatalf("lookup %d: %v", v, err)
		}
		if c.Name != name {
			t.Errorf("value %d: expected %s, got %s", v, name, c.Name)
		}
	}

	for _, v := range []int{-1, 10, 255} {
		if _, err := Lookup(v); !errors.Is(err, ErrColorOutOfRange) {
			t.Errorf("value %d: expected ErrColorOutOfRange, got %v", v, err)
		}
	}
}

func TestPaletteHex(t *testing.T) {
	if got := Palette[1].Hex(); got != "#0000ff" {
		t.Errorf("expected #0000ff, got %s", got)
	}
	if got := Palette[9].Hex(); got != "#a52a2a" {
		t.Errorf("expected #a52a2a, got %s", got)
	}
}

func TestLegend(t *testing.T) {
	want := "black 0, blue 1, red 2, green 3, yellow 4, gray 5, pink 6, orange 7, cyan 8, brown 9"
	if got := Legend(); got != want {
		t.Errorf("unexpected legend %q", got)
	}
}
