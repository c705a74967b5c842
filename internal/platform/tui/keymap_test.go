package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.KeyA, true},
		{"shifted W", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, core.KeyW, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapKey(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("MapKey = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := newHeldKeys(3)

	if !h.Press(core.KeyA) {
		t.Fatal("first press should start a hold")
	}
	if h.Press(core.KeyA) {
		t.Error("repeat press should only extend the hold")
	}

	for i := 1; i <= 2; i++ {
		if ev := h.Tick(); len(ev) != 0 {
			t.Fatalf("tick %d released early: %v", i, ev)
		}
	}
	ev := h.Tick()
	if len(ev) != 1 || ev[0] != core.Release(core.KeyA) {
		t.Fatalf("tick 3 = %v, want release of A", ev)
	}
	if h.Held(core.KeyA) {
		t.Error("A still held after release")
	}
	if !h.Press(core.KeyA) {
		t.Error("press after release should start a new hold")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := newHeldKeys(2)
	h.Press(core.KeyLeft)
	h.Tick()
	h.Press(core.KeyLeft)
	if ev := h.Tick(); len(ev) != 0 {
		t.Fatalf("repeat did not extend the hold: %v", ev)
	}
	if ev := h.Tick(); len(ev) != 1 {
		t.Fatalf("want release after the extended hold, got %v", ev)
	}
}

func TestHeldKeysReset(t *testing.T) {
	h := newHeldKeys(0)
	h.Press(core.KeyD)
	h.Reset()
	if h.Held(core.KeyD) {
		t.Error("Reset kept D held")
	}
	if ev := h.Tick(); len(ev) != 0 {
		t.Errorf("Reset should not emit releases, got %v", ev)
	}
}
