package game

import (
	"testing"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

func TestCycleSkinWraps(t *testing.T) {
	s := DefaultSettings(config.DefaultTuning().Difficulty)
	s.CycleSkin(-1, SkinCount)
	if s.Skin != 5 {
		t.Errorf("prev from 1 = %d, want 5", s.Skin)
	}
	s.CycleSkin(1, SkinCount)
	if s.Skin != 1 {
		t.Errorf("next from 5 = %d, want 1", s.Skin)
	}
	s.CycleSkin(1, SkinCount)
	if s.Skin != 2 {
		t.Errorf("next from 1 = %d, want 2", s.Skin)
	}
}

func TestToggleDifficultyResetsSpeed(t *testing.T) {
	d := config.DefaultTuning().Difficulty
	s := DefaultSettings(d)
	if s.Speed != 3 || s.Hard {
		t.Fatalf("default settings: hard=%v speed=%v", s.Hard, s.Speed)
	}
	s.Speed = 42
	s.ToggleDifficulty(d)
	if !s.Hard || s.Speed != 8 {
		t.Errorf("after toggle to hard: hard=%v speed=%v, want true 8", s.Hard, s.Speed)
	}
	s.ToggleDifficulty(d)
	if s.Hard || s.Speed != 3 {
		t.Errorf("after toggle back: hard=%v speed=%v, want false 3", s.Hard, s.Speed)
	}
}

func TestControlsFor(t *testing.T) {
	wasd := ControlsFor(false)
	if wasd.Jump != core.KeyW || wasd.Label() != "WASD keys" {
		t.Errorf("wasd scheme = %+v", wasd)
	}
	arrows := ControlsFor(true)
	if arrows.Jump != core.KeyUp || arrows.Label() != "ARROW keys" {
		t.Errorf("arrow scheme = %+v", arrows)
	}
	if wasd.Pause != core.KeyEscape || arrows.Pause != core.KeyEscape {
		t.Error("both schemes pause on Esc")
	}
}
