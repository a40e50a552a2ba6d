package mathbird

import (
	"testing"

	"github.com/vovakirdan/mathbird/internal/config"
)

func testPhysics() config.MathbirdPhysics {
	return config.MathbirdPhysics{
		Gravity:      0.45,
		JumpImpulse:  -8.0,
		MaxFallSpeed: 12.0,
	}
}

// dt for a 60Hz tick; the x60 normalization makes one tick apply the
// constants exactly once.
const tickMS = 1000.0 / 60.0

func TestBirdGravity(t *testing.T) {
	b := Bird{X: 80, Y: 300, W: 34, H: 24, Alive: true}

	b.Integrate(tickMS, testPhysics(), 550)

	if b.Vel <= 0 {
		t.Errorf("velocity should be positive after gravity, got %f", b.Vel)
	}
	if b.Y <= 300 {
		t.Errorf("gravity should pull the bird down, Y is still %f", b.Y)
	}
}

func TestBirdTerminalVelocity(t *testing.T) {
	phys := testPhysics()
	b := Bird{X: 80, Y: 10, W: 34, H: 24, Alive: true}

	for i := 0; i < 200 && b.Alive; i++ {
		if b.Vel > phys.MaxFallSpeed {
			t.Fatalf("velocity %f exceeded terminal %f at tick %d", b.Vel, phys.MaxFallSpeed, i)
		}
		b.Integrate(tickMS, phys, 100000)
	}

	if b.Vel != phys.MaxFallSpeed {
		t.Errorf("long fall should settle at terminal velocity, got %f", b.Vel)
	}
}

func TestBirdJumpOverridesVelocity(t *testing.T) {
	phys := testPhysics()
	b := Bird{X: 80, Y: 300, W: 34, H: 24, Vel: 11.5, Alive: true}

	b.Jump(phys.JumpImpulse)

	if b.Vel != phys.JumpImpulse {
		t.Errorf("jump should replace velocity, got %f want %f", b.Vel, phys.JumpImpulse)
	}
}

func TestBirdJumpWhenDead(t *testing.T) {
	b := Bird{X: 80, Y: 300, W: 34, H: 24, Vel: 3}

	b.Jump(-8)

	if b.Vel != 3 {
		t.Errorf("dead bird should ignore jumps, velocity changed to %f", b.Vel)
	}
}

func TestBirdCeilingSoftClamp(t *testing.T) {
	b := Bird{X: 80, Y: 2, W: 34, H: 24, Vel: -8, Alive: true}

	b.Integrate(tickMS, testPhysics(), 550)

	if b.Y != 0 {
		t.Errorf("ceiling contact should snap to 0, got %f", b.Y)
	}
	if b.Vel != 0 {
		t.Errorf("ceiling contact should zero velocity, got %f", b.Vel)
	}
	if !b.Alive {
		t.Error("ceiling contact must not kill the bird")
	}
}

func TestBirdGroundContactFatal(t *testing.T) {
	// Bottom edge already past the floor: one tick must snap and kill.
	b := Bird{X: 80, Y: 540, W: 34, H: 24, Vel: 10, Alive: true}

	b.Integrate(tickMS, testPhysics(), 550)

	if b.Alive {
		t.Error("ground contact should kill the bird")
	}
	if b.Y != 550-24 {
		t.Errorf("ground contact should snap Y to floor minus height, got %f want %f", b.Y, 550.0-24.0)
	}
}

func TestBirdDeadIsFrozen(t *testing.T) {
	b := Bird{X: 80, Y: 100, W: 34, H: 24, Vel: 5}

	b.Integrate(tickMS, testPhysics(), 550)

	if b.Y != 100 || b.Vel != 5 {
		t.Errorf("dead bird should not integrate, got Y=%f Vel=%f", b.Y, b.Vel)
	}
}

func TestBirdBounds(t *testing.T) {
	b := Bird{X: 80, Y: 300, W: 34, H: 24, Alive: true}

	r := b.Bounds()
	if r.X != 80 || r.Y != 300 || r.W != 34 || r.H != 24 {
		t.Errorf("unexpected bounds %+v", r)
	}
}
