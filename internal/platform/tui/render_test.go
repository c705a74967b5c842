package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/storage"
)

func TestCellMapRoundTrip(t *testing.T) {
	for _, m := range []cellMap{{80, 24}, {120, 40}, {33, 11}} {
		for row := 0; row < m.h; row++ {
			for col := 0; col < m.w; col++ {
				gotCol, gotRow := m.Cell(m.Point(col, row))
				if gotCol != col || gotRow != row {
					t.Fatalf("%v: cell (%d,%d) maps back to (%d,%d)", m, col, row, gotCol, gotRow)
				}
			}
		}
	}
}

func TestCellMapCorners(t *testing.T) {
	m := cellMap{w: 75, h: 50}
	if col, row := m.Cell(core.Point{}); col != 0 || row != 0 {
		t.Errorf("origin -> (%d,%d)", col, row)
	}
	if col, row := m.Cell(core.Point{X: 749.9, Y: 499.9}); col != 74 || row != 49 {
		t.Errorf("far corner -> (%d,%d)", col, row)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorNavy)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 lines, got %q", out)
	}
}

func TestDrawScores(t *testing.T) {
	s := core.NewScreen(60, 10)
	drawScores(s, nil, 2)
	if !strings.Contains(s.Row(3), "No scores yet") {
		t.Errorf("empty table row = %q", s.Row(3))
	}

	s.Clear()
	drawScores(s, []storage.Record{
		{PlayerName: "Bob", Level: 5, Score: 3100},
		{PlayerName: "Ada", Level: 3, Score: 1200},
	}, 2)
	if !strings.Contains(s.Row(2), "Player") {
		t.Errorf("header row = %q", s.Row(2))
	}
	if row := s.Row(3); !strings.Contains(row, "Bob") || !strings.Contains(row, "3100") || !strings.Contains(row, crown) {
		t.Errorf("first row = %q", row)
	}
	if !strings.Contains(s.Row(4), "Ada") {
		t.Errorf("second row = %q", s.Row(4))
	}
}
