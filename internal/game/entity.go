package game

import "github.com/vovakirdan/dodge/internal/core"

// Entity is anything in the playfield that has bounds and a look.
type Entity interface {
	Bounds() core.Box
	Glyph(cat *Catalog) Sprite
}

var (
	_ Entity = Player{}
	_ Entity = Mob{}
)

// Collides reports whether two entity boxes overlap.
func Collides(a, b core.Box) bool {
	return a.Intersects(b)
}
