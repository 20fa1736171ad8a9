package sim

import (
	"math/rand"
)

// Lander holds the kinematic state of the vehicle for one game session.
// It is reset on every new game and mutated only by Step and the turn
// controller's fuel accounting.
type Lander struct {
	X        float64 // Horizontal position (m)
	Altitude float64 // Altitude above zero (m), never negative

	VelH float64 // Horizontal velocity (m/s)
	VelV float64 // Vertical velocity (m/s), negative is downward

	// Previous-turn velocities, kept for the delta-V display.
	PrevVelH float64
	PrevVelV float64

	Fuel      int // Burns remaining, never negative
	EnginesOn bool

	TimeStep float64 // Fixed at 1.0 per turn
}

// NewLander creates a lander in a randomized approach state: somewhere over
// the landing area, descending, with some lateral drift.
func NewLander(rng *rand.Rand, initialFuel int) *Lander {
	l := &Lander{
		X:        float64(rng.Intn(200) - 100),
		Altitude: float64(rng.Intn(500) + 100),
		VelH:     float64(rng.Intn(20)-10) / 2.0,
		VelV:     float64(rng.Intn(20) - 15),
		Fuel:     initialFuel,
		TimeStep: 1.0,
	}
	l.PrevVelH = l.VelH
	l.PrevVelV = l.VelV
	return l
}

// OnGround reports whether the lander has reached the surface.
func (l *Lander) OnGround() bool {
	return l.Altitude <= 0
}
