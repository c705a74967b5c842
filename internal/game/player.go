package game

import (
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Player is the runner controlled by the user. X and Y are the top-left
// corner in world units.
type Player struct {
	X, Y     float64
	W, H     float64
	VelY     float64
	Airborne bool
	Facing   int // -1 left, 1 right
	Skin     int
}

// Intents are the movement requests for one tick.
type Intents struct {
	Left  bool
	Right bool
	Down  bool
	Jump  bool // one-shot, cleared after each tick
}

// NewPlayer places a player with its center at (StartX, Floor). It starts
// airborne and settles onto the floor on the first tick.
func NewPlayer(skin int, sprite Sprite, w config.World, p config.Player) Player {
	return Player{
		X:        p.StartX - sprite.W/2,
		Y:        w.Floor - sprite.H/2,
		W:        sprite.W,
		H:        sprite.H,
		Airborne: true,
		Facing:   1,
		Skin:     skin,
	}
}

// Bounds returns the collision box.
func (p Player) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Glyph returns the player's skin sprite.
func (p Player) Glyph(cat *Catalog) Sprite {
	return cat.Skin(p.Skin)
}

// AdvancePlayer applies one tick of movement, gravity and floor contact.
func AdvancePlayer(p Player, in Intents, w config.World, ph config.Physics) Player {
	var dx, dy float64

	if in.Left && p.X > 0 {
		dx = -ph.MoveSpeed
		p.Facing = -1
	}
	if in.Right && p.X < w.Width-p.W {
		dx = ph.MoveSpeed
		p.Facing = 1
	}
	if in.Down {
		dy = ph.MoveSpeed
	}

	if in.Jump && !p.Airborne {
		p.VelY = ph.JumpImpulse
		p.Airborne = true
	}

	// Velocity keeps growing while grounded; only the floor stops the fall.
	p.VelY += ph.Gravity
	if ph.MaxFallSpeed > 0 && p.VelY > ph.MaxFallSpeed {
		p.VelY = ph.MaxFallSpeed
	}
	dy += p.VelY

	if bottom := p.Y + p.H; bottom+dy > w.Floor {
		dy = w.Floor - bottom
		p.Airborne = false
	}

	p.X += dx
	p.Y += dy
	return p
}
