package link

import (
	"strings"
	"testing"
)

func render(cells [][]Cell) []string {
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
		out[i] = b.String()
	}
	return out
}

func TestRasterHorizontal(t *testing.T) {
	r := Raster{Left: 10, Width: 4, Height: 3}
	rows := render(r.Draw([]Segment{{X1: 10, Y1: 1.5, X2: 14, Y2: 1.5}}, nil))
	want := []string{"    ", "────", "    "}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], rows[i])
		}
	}
}

func TestRasterDiagonalCoversEveryRow(t *testing.T) {
	r := Raster{Left: 0, Width: 4, Height: 6}
	cells := r.Draw([]Segment{{X1: 0, Y1: 0.5, X2: 4, Y2: 5.5}}, func(Segment) bool { return true })
	for row := 0; row < 6; row++ {
		found := false
		for _, c := range cells[row] {
			if c.Rune == runeDown {
				found = true
				if !c.Hot {
					t.Fatalf("row %d: expected hot cell", row)
				}
			}
		}
		if !found {
			t.Fatalf("row %d: expected the connector to pass through, got %q", row, render(cells)[row])
		}
	}
}

func TestRasterUpwardAndCrossing(t *testing.T) {
	r := Raster{Left: 0, Width: 2, Height: 2}
	cells := r.Draw([]Segment{
		{X1: 0, Y1: 1.5, X2: 2, Y2: 0.5},
		{X1: 0, Y1: 1.5, X2: 2, Y2: 1.5},
	}, nil)
	rows := render(cells)
	if rows[0] != " ╱" {
		t.Fatalf("expected upward connector on row 0, got %q", rows[0])
	}
	if rows[1] != "┼─" {
		t.Fatalf("expected crossing on row 1, got %q", rows[1])
	}
}

func TestRasterClipsOutsideRows(t *testing.T) {
	r := Raster{Left: 0, Width: 3, Height: 2}
	rows := render(r.Draw([]Segment{{X1: 0, Y1: 8.5, X2: 3, Y2: 8.5}}, nil))
	for i, row := range rows {
		if strings.TrimSpace(row) != "" {
			t.Fatalf("row %d: expected blank, got %q", i, row)
		}
	}
	if got := (Raster{Width: 0, Height: 4}).Draw(nil, nil); got != nil {
		t.Fatalf("expected nil for empty raster")
	}
}
