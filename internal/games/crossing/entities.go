package crossing

import (
	"math/rand"

	"github.com/avoronov/bugcross/internal/core"
)

// Player is the user-controlled entity. It moves in discrete tile steps
// and is reset to its spawn point on collision or water crossing.
type Player struct {
	X, Y   float64
	W, H   float64
	Sprite string
}

// Box returns the player's collision box.
func (p *Player) Box() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Enemy is a bug crossing the board horizontally at a fixed speed.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Speed float64 // px per second, before difficulty scaling
}

// Box returns the enemy's collision box.
func (e *Enemy) Box() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// Advance moves the enemy horizontally by speed x dt seconds.
// Motion is linear: repeated small advances equal one summed advance.
func (e *Enemy) Advance(dt float64) {
	e.X += e.Speed * dt
}

// respawn relocates the enemy to a random lane with a fresh random
// speed drawn uniformly from [minSpeed, maxSpeed).
func (e *Enemy) respawn(rng *rand.Rand, minSpeed, maxSpeed float64) {
	e.X, e.Y = pickLane(rng)
	e.Speed = minSpeed + rng.Float64()*(maxSpeed-minSpeed)
}

// Heart is one life token, shown in the HUD. The heart collection's
// length always equals livesRemaining.
type Heart struct {
	Index int
}

// Gem is the single collectible. Static until relocated on pickup
// or replay.
type Gem struct {
	X, Y float64
	W, H float64
}

// Box returns the gem's pickup box.
func (g *Gem) Box() core.RectF {
	return core.NewRectF(g.X, g.Y, g.W, g.H)
}

// relocate moves the gem to a random lane not overlapping the player.
func (g *Gem) relocate(rng *rand.Rand, avoid core.RectF) {
	for {
		g.X, g.Y = pickLane(rng)
		if !g.Box().Intersects(avoid) {
			return
		}
	}
}
