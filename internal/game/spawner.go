package game

import (
	"math/rand"

	"github.com/vovakirdan/dodge/internal/config"
)

// Spawner places new obstacles at the right edge of the world.
type Spawner struct {
	rng   *rand.Rand
	cat   *Catalog
	world config.World
	cfg   config.Spawner
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cat *Catalog, w config.World, cfg config.Spawner) *Spawner {
	return &Spawner{rng: rng, cat: cat, world: w, cfg: cfg}
}

// MaybeSpawn returns a new mob when no mob is active.
func (s *Spawner) MaybeSpawn(active int) (Mob, bool) {
	if active > 0 {
		return Mob{}, false
	}
	category := s.rng.Intn(s.cfg.Categories) + 1
	sprite := s.cat.Mob(category)

	m := Mob{
		X:        s.world.Width,
		W:        sprite.W,
		H:        sprite.H,
		Category: category,
	}
	if s.cfg.IsElevated(category) {
		span := int(s.cfg.ElevatedMax - s.cfg.ElevatedMin)
		offset := s.cfg.ElevatedMin
		if span > 0 {
			offset += float64(s.rng.Intn(span))
		}
		m.Y = sprite.H + offset
	} else {
		m.Y = s.world.Floor - sprite.H
	}
	return m, true
}
