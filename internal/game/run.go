// Package game implements the runner itself: player physics, obstacle
// spawning, scoring and the per-tick loop of a single run. It knows
// nothing about terminals, windows, audio or storage; frontends feed it
// input events once per tick and read back a StepResult.
package game

import (
	"math/rand"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusRunning Status = iota
	StatusHit            // collided, waiting out the hit delay
	StatusGameOver
	StatusPaused
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHit:
		return "hit"
	case StatusGameOver:
		return "game over"
	case StatusPaused:
		return "paused"
	case StatusAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Event is something that happened during a tick that frontends react to,
// typically with a sound.
type Event int

const (
	EventJump Event = iota + 1
	EventHit
	EventLevelUp
)

// StepResult reports the outcome of one tick.
type StepResult struct {
	Status         Status
	Events         []Event
	PauseRequested bool
}

// Has reports whether the tick emitted e.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// Result is the summary of a finished run.
type Result struct {
	Level int
	Score int
}

// Run is one play session from the start screen to game over.
type Run struct {
	tuning   config.Tuning
	curve    config.ModeConfig
	controls Controls
	cat      *Catalog
	spawner  *Spawner

	player   Player
	mobs     []Mob
	progress Progress
	intents  Intents

	status   Status
	hitTicks int
	ticks    int
}

// NewRun starts a run with a copy of the current settings.
func NewRun(s Settings, cat *Catalog, t config.Tuning, rng *rand.Rand) *Run {
	return &Run{
		tuning:   t,
		curve:    t.Difficulty.Params(s.Mode()),
		controls: s.Controls(),
		cat:      cat,
		spawner:  NewSpawner(rng, cat, t.World, t.Spawner),
		player:   NewPlayer(s.Skin, cat.Skin(s.Skin), t.World, t.Player),
		mobs:     make([]Mob, 0, 1),
		progress: NewProgress(s.Speed),
		status:   StatusRunning,
	}
}

// Step advances the run by one fixed tick. Events are the input queued
// since the previous tick; they take effect from the next tick on.
func (r *Run) Step(events []core.InputEvent) StepResult {
	switch r.status {
	case StatusHit:
		r.hitTicks--
		if r.hitTicks <= 0 {
			r.status = StatusGameOver
		}
		return StepResult{Status: r.status}
	case StatusRunning:
	default:
		return StepResult{Status: r.status}
	}

	r.ticks++
	var res StepResult

	r.progress = r.progress.Scroll(r.tuning.World.TileWidth)

	r.player = AdvancePlayer(r.player, r.intents, r.tuning.World, r.tuning.Physics)
	r.intents.Jump = false

	if m, ok := r.spawner.MaybeSpawn(len(r.mobs)); ok {
		r.mobs = append(r.mobs, m)
	}

	hit := false
	pb := r.player.Bounds()
	for i := range r.mobs {
		r.mobs[i] = AdvanceMob(r.mobs[i], r.progress.Speed)
		if Collides(pb, r.mobs[i].Bounds()) {
			hit = true
		}
	}
	r.cull()

	if hit {
		res.Events = append(res.Events, EventHit)
		r.hitTicks = r.tuning.Timing.HitDelayTicks()
		r.status = StatusHit
		if r.hitTicks <= 0 {
			r.status = StatusGameOver
		}
		res.Status = r.status
		return res
	}

	level := r.progress.Level
	r.progress = r.progress.Tick(r.curve, r.tuning.Scoring)
	if r.progress.Level > level {
		res.Events = append(res.Events, EventLevelUp)
	}

	for _, ev := range events {
		if r.apply(ev) {
			res.Events = append(res.Events, EventJump)
		}
		if r.status == StatusPaused {
			res.PauseRequested = true
		}
	}

	res.Status = r.status
	return res
}

// apply updates intents from one input event and reports whether it
// was a jump press.
func (r *Run) apply(ev core.InputEvent) bool {
	down := ev.Kind == core.KeyPressed
	switch ev.Key {
	case r.controls.Left:
		r.intents.Left = down
	case r.controls.Right:
		r.intents.Right = down
	case r.controls.Down:
		r.intents.Down = down
	case r.controls.Jump:
		if down {
			r.intents.Jump = true
			return true
		}
	case r.controls.Pause:
		if down {
			r.status = StatusPaused
		}
	}
	return false
}

func (r *Run) cull() {
	kept := r.mobs[:0]
	for _, m := range r.mobs {
		if !m.Gone {
			kept = append(kept, m)
		}
	}
	r.mobs = kept
}

// Resume continues a paused run.
func (r *Run) Resume() {
	if r.status == StatusPaused {
		r.status = StatusRunning
	}
}

// Release clears the intent bound to k. It also applies while paused,
// so a key let go on the pause screen is not held after resume.
func (r *Run) Release(k core.Key) {
	r.apply(core.Release(k))
}

// Abandon ends the run without a result.
func (r *Run) Abandon() {
	if r.status == StatusRunning || r.status == StatusPaused {
		r.status = StatusAbandoned
	}
}

// Result returns the final level and score once the run is over.
func (r *Run) Result() (Result, bool) {
	if r.status != StatusGameOver {
		return Result{}, false
	}
	return Result{Level: r.progress.Level, Score: r.progress.Score}, true
}

// Status returns the current lifecycle state.
func (r *Run) Status() Status { return r.status }

// Player returns the current player state.
func (r *Run) Player() Player { return r.player }

// Mobs returns the active obstacles.
func (r *Run) Mobs() []Mob { return r.mobs }

// Progress returns score, level and scroll state.
func (r *Run) Progress() Progress { return r.progress }

// Intents returns the movement intents that the next tick will apply.
func (r *Run) Intents() Intents { return r.intents }

// Catalog returns the sprites the run draws with.
func (r *Run) Catalog() *Catalog { return r.cat }

// World returns the playfield geometry.
func (r *Run) World() config.World { return r.tuning.World }

// Ticks returns the number of simulated ticks.
func (r *Run) Ticks() int { return r.ticks }
