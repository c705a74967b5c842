package game

import "github.com/vovakirdan/dodge/internal/core"

// Mob is an obstacle scrolling from right to left.
type Mob struct {
	X, Y     float64
	W, H     float64
	Category int  // 1..MobCount
	Gone     bool // fully past the left edge
}

// Bounds returns the collision box.
func (m Mob) Bounds() core.Box {
	return core.NewBox(m.X, m.Y, m.W, m.H)
}

// Glyph returns the sprite of the mob's category.
func (m Mob) Glyph(cat *Catalog) Sprite {
	return cat.Mob(m.Category)
}

// AdvanceMob scrolls the mob left by speed.
func AdvanceMob(m Mob, speed float64) Mob {
	m.X -= speed
	m.Gone = m.X+m.W <= 0
	return m
}
