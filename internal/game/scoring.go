package game

import "github.com/vovakirdan/dodge/internal/config"

// Progress is the score, level and scroll state of a run.
type Progress struct {
	Score       int
	Level       int
	Speed       float64
	Background  int
	FloorOffset float64
}

// NewProgress starts a run at level 1 with the given scroll speed.
func NewProgress(speed float64) Progress {
	return Progress{
		Level:      1,
		Speed:      speed,
		Background: 1,
	}
}

// Tick adds one tick of survival points and applies a level-up for
// every multiple of LevelEvery the score crosses.
func (p Progress) Tick(curve config.ModeConfig, sc config.Scoring) Progress {
	before := p.Score / sc.LevelEvery
	p.Score += curve.PointsPerTick
	after := p.Score / sc.LevelEvery

	for i := before; i < after; i++ {
		p.Level++
		p.Background++
		p.Speed += curve.SpeedStep
		if p.Level > sc.Backgrounds && p.Background > sc.Backgrounds {
			p.Background = 1
		}
	}
	return p
}

// Scroll moves the floor texture by the current speed, wrapping after one tile.
func (p Progress) Scroll(tileWidth float64) Progress {
	p.FloorOffset -= p.Speed
	if p.FloorOffset <= -tileWidth {
		p.FloorOffset = 0
	}
	return p
}
