package mathbird

import (
	"github.com/vovakirdan/mathbird/internal/config"
	"github.com/vovakirdan/mathbird/internal/core"
)

// Bird is the player-controlled body. Position is the top-left corner in
// playfield units, y growing downward. Velocity is vertical only; horizontal
// motion comes from the world scrolling past.
type Bird struct {
	X, Y  float64
	W, H  float64
	Vel   float64
	Alive bool
}

// Integrate advances the body by dtMS milliseconds of gravity and motion.
// Physics constants are tuned for 60 ticks per second; other tick rates scale
// through the dt factor. Ground contact snaps the body onto the floor and
// kills it. Ceiling contact snaps to the top edge and zeroes velocity.
// Dead bodies do not move.
func (b *Bird) Integrate(dtMS float64, phys config.MathbirdPhysics, floorY float64) {
	if !b.Alive {
		return
	}

	steps := dtMS * 60.0 / 1000.0

	b.Vel += phys.Gravity * steps
	if b.Vel > phys.MaxFallSpeed {
		b.Vel = phys.MaxFallSpeed
	}
	b.Y += b.Vel * steps

	if b.Y < 0 {
		b.Y = 0
		b.Vel = 0
	}

	if b.Y+b.H >= floorY {
		b.Y = floorY - b.H
		b.Alive = false
	}
}

// Jump replaces the current vertical velocity with the upward impulse. There
// is no blending with existing velocity. Dead bodies ignore jumps.
func (b *Bird) Jump(impulse float64) {
	if !b.Alive {
		return
	}
	b.Vel = impulse
}

// Bounds returns the current axis-aligned collision box.
func (b *Bird) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}
