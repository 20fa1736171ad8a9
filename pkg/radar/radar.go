// Package radar implements the landing radar lifecycle and its ASCII
// terrain visualization.
package radar

import (
	"math"

	"moonlander/pkg/terrain"
)

// ValidTurns is the number of turns a radar activation stays usable.
const ValidTurns = 3

// Radar tracks the activation state of the landing radar for one session.
// It starts inactive and is switched on by a radar command; each fully
// executed turn consumes one turn of validity.
type Radar struct {
	Active         bool
	TurnsRemaining int

	profile *terrain.Profile
}

// New creates an inactive radar describing the given terrain profile.
func New(p *terrain.Profile) *Radar {
	return &Radar{profile: p}
}

// Profile returns the terrain profile the radar describes.
func (r *Radar) Profile() *terrain.Profile {
	return r.profile
}

// Activate switches the radar on for ValidTurns turns.
func (r *Radar) Activate() {
	r.Active = true
	r.TurnsRemaining = ValidTurns
}

// Tick consumes one turn of validity. It returns true when this tick
// exhausted the signal and deactivated the radar.
func (r *Radar) Tick() bool {
	if !r.Active || r.TurnsRemaining <= 0 {
		return false
	}
	r.TurnsRemaining--
	if r.TurnsRemaining <= 0 {
		r.TurnsRemaining = 0
		r.Active = false
		return true
	}
	return false
}

// Advisory describes the relation between the lander and the recommended zone.
type Advisory struct {
	ZoneX     float64 // Recommended landing x
	ZoneScore float64 // Safety score of the zone (0-100)
	Distance  float64 // Horizontal distance from the lander to the zone
}

// AdviseAt builds the landing-zone advisory for the given lander position.
func (r *Radar) AdviseAt(x float64) Advisory {
	return Advisory{
		ZoneX:     r.profile.SafeLandingX,
		ZoneScore: r.profile.SafeLandingScore,
		Distance:  math.Abs(x - r.profile.SafeLandingX),
	}
}
