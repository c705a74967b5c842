package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

const eps = 1e-9

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return cat
}

func groundedPlayer(t *testing.T) (Player, config.Tuning) {
	t.Helper()
	tun := config.DefaultTuning()
	p := NewPlayer(1, testCatalog(t).Skin(1), tun.World, tun.Player)
	p = AdvancePlayer(p, Intents{}, tun.World, tun.Physics)
	return p, tun
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	tun := config.DefaultTuning()
	p := NewPlayer(1, testCatalog(t).Skin(1), tun.World, tun.Player)
	if !p.Airborne {
		t.Fatal("new player should start airborne")
	}

	for i := 0; i < 600; i++ {
		p = AdvancePlayer(p, Intents{}, tun.World, tun.Physics)
		if p.Y+p.H > tun.World.Floor+eps {
			t.Fatalf("tick %d: bottom %.3f below floor %.0f", i, p.Y+p.H, tun.World.Floor)
		}
	}
	if math.Abs(p.Y+p.H-tun.World.Floor) > eps {
		t.Errorf("player bottom = %.3f, want %.0f", p.Y+p.H, tun.World.Floor)
	}
	if p.Airborne {
		t.Error("player resting on floor should not be airborne")
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	p, tun := groundedPlayer(t)

	p = AdvancePlayer(p, Intents{Jump: true}, tun.World, tun.Physics)
	if !p.Airborne {
		t.Fatal("jump from the floor should make the player airborne")
	}
	want := tun.Physics.JumpImpulse + tun.Physics.Gravity
	if math.Abs(p.VelY-want) > eps {
		t.Errorf("VelY after jump = %v, want %v", p.VelY, want)
	}

	// Second jump mid-air must not reset velocity.
	y := p.Y
	p = AdvancePlayer(p, Intents{Jump: true}, tun.World, tun.Physics)
	want += tun.Physics.Gravity
	if math.Abs(p.VelY-want) > eps {
		t.Errorf("VelY after airborne jump = %v, want %v", p.VelY, want)
	}
	if p.Y >= y {
		t.Errorf("player should still be rising: y %v -> %v", y, p.Y)
	}
}

func TestPlayerLandsAfterJump(t *testing.T) {
	p, tun := groundedPlayer(t)
	p = AdvancePlayer(p, Intents{Jump: true}, tun.World, tun.Physics)

	for i := 0; i < 200 && p.Airborne; i++ {
		p = AdvancePlayer(p, Intents{}, tun.World, tun.Physics)
	}
	if p.Airborne {
		t.Fatal("player never landed")
	}
	if math.Abs(p.Y+p.H-tun.World.Floor) > eps {
		t.Errorf("landed bottom = %v, want floor", p.Y+p.H)
	}
}

func TestPlayerHorizontalLimits(t *testing.T) {
	p, tun := groundedPlayer(t)

	p.X = 0
	p = AdvancePlayer(p, Intents{Left: true}, tun.World, tun.Physics)
	if p.X != 0 {
		t.Errorf("moving left at the edge: X = %v, want 0", p.X)
	}

	p.X = tun.World.Width - p.W
	p = AdvancePlayer(p, Intents{Right: true}, tun.World, tun.Physics)
	if p.X != tun.World.Width-p.W {
		t.Errorf("moving right at the edge: X = %v, want %v", p.X, tun.World.Width-p.W)
	}

	p.X = 100
	p = AdvancePlayer(p, Intents{Left: true}, tun.World, tun.Physics)
	if p.X != 90 || p.Facing != -1 {
		t.Errorf("left move: X = %v facing %d, want 90 facing -1", p.X, p.Facing)
	}
	p = AdvancePlayer(p, Intents{Right: true}, tun.World, tun.Physics)
	if p.X != 100 || p.Facing != 1 {
		t.Errorf("right move: X = %v facing %d, want 100 facing 1", p.X, p.Facing)
	}
}

func TestPlayerDownIntentStaysAboveFloor(t *testing.T) {
	p, tun := groundedPlayer(t)
	p = AdvancePlayer(p, Intents{Jump: true}, tun.World, tun.Physics)
	for i := 0; i < 20; i++ {
		p = AdvancePlayer(p, Intents{Down: true}, tun.World, tun.Physics)
		if p.Y+p.H > tun.World.Floor+eps {
			t.Fatalf("down intent pushed player below floor at tick %d", i)
		}
	}
}

func TestMaxFallSpeed(t *testing.T) {
	p, tun := groundedPlayer(t)
	for i := 0; i < 100; i++ {
		p = AdvancePlayer(p, Intents{}, tun.World, tun.Physics)
	}
	if p.VelY < 40 {
		t.Errorf("unclamped VelY = %v, expected it to keep growing", p.VelY)
	}

	tun.Physics.MaxFallSpeed = 10
	p, _ = groundedPlayer(t)
	for i := 0; i < 100; i++ {
		p = AdvancePlayer(p, Intents{}, tun.World, tun.Physics)
	}
	if p.VelY != 10 {
		t.Errorf("clamped VelY = %v, want 10", p.VelY)
	}
}

func TestAdvanceMob(t *testing.T) {
	m := Mob{X: 10, W: 20, H: 20}
	m = AdvanceMob(m, 5)
	if m.X != 5 || m.Gone {
		t.Errorf("after one step: %+v", m)
	}
	m = AdvanceMob(m, 25)
	if !m.Gone {
		t.Errorf("mob with right edge at %v should be gone", m.X+m.W)
	}
	m = Mob{X: -19, W: 20}
	if AdvanceMob(m, 0).Gone {
		t.Error("mob still one unit on screen should not be gone")
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Box
		want bool
	}{
		{"coincident", core.NewBox(10, 10, 30, 30), core.NewBox(10, 10, 30, 30), true},
		{"overlap", core.NewBox(0, 0, 30, 30), core.NewBox(20, 20, 30, 30), true},
		{"separated x", core.NewBox(0, 0, 10, 10), core.NewBox(50, 0, 10, 10), false},
		{"separated y", core.NewBox(0, 0, 10, 10), core.NewBox(0, 50, 10, 10), false},
		{"touching edge", core.NewBox(0, 0, 10, 10), core.NewBox(10, 0, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides = %v, want %v", got, tt.want)
			}
		})
	}
}
