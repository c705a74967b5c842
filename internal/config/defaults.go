package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the compiled-in tuning.
func DefaultTuning() Tuning {
	return Tuning{
		World: World{
			Width:     750,
			Height:    500,
			Floor:     400,
			TileWidth: 500,
		},
		Physics: Physics{
			Gravity:      0.4,
			JumpImpulse:  -11,
			MoveSpeed:    10,
			MaxFallSpeed: 0,
		},
		Player: Player{
			StartX: 75,
		},
		Spawner: Spawner{
			Categories:  7,
			Elevated:    []int{6, 7},
			ElevatedMin: 150,
			ElevatedMax: 200,
		},
		Scoring: Scoring{
			LevelEvery:  750,
			Backgrounds: 7,
		},
		Difficulty: DifficultyConfig{
			Normal: ModeConfig{PointsPerTick: 1, SpeedStep: 2, BaseSpeed: 3},
			Hard:   ModeConfig{PointsPerTick: 2, SpeedStep: 2.5, BaseSpeed: 8},
		},
		Timing: Timing{
			TickRate: 60,
			HitDelay: 2 * time.Second,
		},
		Input: Input{
			HoldTicks: 12,
		},
	}
}

// DefaultYAML returns the embedded default tuning file, e.g. for
// writing a starter config.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
