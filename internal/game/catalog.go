package game

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Asset counts the game ships with.
const (
	SkinCount       = 5
	MobCount        = 7
	BackgroundCount = 7
)

//go:embed assets/sprites.yaml
var spritesYAML []byte

// Sprite is the look and world size of one entity kind.
type Sprite struct {
	Name  string   `yaml:"name"`
	W     float64  `yaml:"width"`
	H     float64  `yaml:"height"`
	Color string   `yaml:"color"`
	Glyph []string `yaml:"glyph"`

	tint core.Color
}

// Tint returns the resolved sprite color.
func (s Sprite) Tint() core.Color {
	return s.tint
}

// Backdrop is one of the cycling level backgrounds.
type Backdrop struct {
	Name    string `yaml:"name"`
	Sky     string `yaml:"sky"`
	Pattern string `yaml:"pattern"`
	Floor   string `yaml:"floor"`

	sky, floor core.Color
}

// SkyColor returns the resolved sky color.
func (b Backdrop) SkyColor() core.Color { return b.sky }

// FloorColor returns the resolved floor color.
func (b Backdrop) FloorColor() core.Color { return b.floor }

// FloorTile is the repeating floor texture.
type FloorTile struct {
	Pattern string `yaml:"pattern"`
	Color   string `yaml:"color"`

	tint core.Color
}

// Tint returns the resolved floor color.
func (f FloorTile) Tint() core.Color { return f.tint }

// Catalog holds every sprite the game draws.
type Catalog struct {
	Skins       []Sprite   `yaml:"skins"`
	Mobs        []Sprite   `yaml:"mobs"`
	Backgrounds []Backdrop `yaml:"backgrounds"`
	Floor       FloorTile  `yaml:"floor"`
}

// ErrBadCatalog is returned when the sprite asset is incomplete.
var ErrBadCatalog = errors.New("game: bad sprite catalog")

// DefaultCatalog parses the embedded sprite asset.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(spritesYAML)
}

// LoadCatalog parses and validates a sprite catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCatalog, err)
	}
	if len(c.Skins) != SkinCount {
		return nil, fmt.Errorf("%w: %d skins, want %d", ErrBadCatalog, len(c.Skins), SkinCount)
	}
	if len(c.Mobs) != MobCount {
		return nil, fmt.Errorf("%w: %d mobs, want %d", ErrBadCatalog, len(c.Mobs), MobCount)
	}
	if len(c.Backgrounds) != BackgroundCount {
		return nil, fmt.Errorf("%w: %d backgrounds, want %d", ErrBadCatalog, len(c.Backgrounds), BackgroundCount)
	}

	for _, group := range [][]Sprite{c.Skins, c.Mobs} {
		for i := range group {
			if err := group[i].resolve(); err != nil {
				return nil, err
			}
		}
	}
	for i := range c.Backgrounds {
		b := &c.Backgrounds[i]
		var ok1, ok2 bool
		b.sky, ok1 = core.ParseColor(b.Sky)
		b.floor, ok2 = core.ParseColor(b.Floor)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: background %q has an unknown color", ErrBadCatalog, b.Name)
		}
		if b.Pattern == "" {
			b.Pattern = "."
		}
	}

	var ok bool
	if c.Floor.tint, ok = core.ParseColor(c.Floor.Color); !ok {
		return nil, fmt.Errorf("%w: unknown floor color %q", ErrBadCatalog, c.Floor.Color)
	}
	if c.Floor.Pattern == "" {
		return nil, fmt.Errorf("%w: empty floor pattern", ErrBadCatalog)
	}
	return &c, nil
}

func (s *Sprite) resolve() error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: sprite %q has no size", ErrBadCatalog, s.Name)
	}
	if len(s.Glyph) == 0 {
		return fmt.Errorf("%w: sprite %q has no glyph", ErrBadCatalog, s.Name)
	}
	c, ok := core.ParseColor(s.Color)
	if !ok {
		return fmt.Errorf("%w: sprite %q has unknown color %q", ErrBadCatalog, s.Name, s.Color)
	}
	s.tint = c
	return nil
}

// Fits checks that the catalog covers the categories and backgrounds the
// tuning can produce.
func (c *Catalog) Fits(t config.Tuning) error {
	if t.Spawner.Categories > len(c.Mobs) {
		return fmt.Errorf("%w: tuning spawns %d categories, catalog has %d", ErrBadCatalog, t.Spawner.Categories, len(c.Mobs))
	}
	if t.Scoring.Backgrounds > len(c.Backgrounds) {
		return fmt.Errorf("%w: tuning cycles %d backgrounds, catalog has %d", ErrBadCatalog, t.Scoring.Backgrounds, len(c.Backgrounds))
	}
	return nil
}

// Skin returns the player sprite for a 1-based skin index.
func (c *Catalog) Skin(i int) Sprite {
	return c.Skins[core.Clamp(i, 1, len(c.Skins))-1]
}

// Mob returns the obstacle sprite for a 1-based category.
func (c *Catalog) Mob(category int) Sprite {
	return c.Mobs[core.Clamp(category, 1, len(c.Mobs))-1]
}

// Background returns the backdrop for a 1-based background index.
func (c *Catalog) Background(i int) Backdrop {
	return c.Backgrounds[core.Clamp(i, 1, len(c.Backgrounds))-1]
}
