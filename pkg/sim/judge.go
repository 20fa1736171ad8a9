package sim

import (
	"math"

	"moonlander/pkg/terrain"
)

// Verdict is the outcome of a landing evaluation.
type Verdict int

const (
	// VerdictFlying means the lander is still airborne; no judgment applies.
	VerdictFlying Verdict = iota
	// VerdictSuccess means a survivable touchdown.
	VerdictSuccess
	// VerdictCrash means the impact exceeded the safe thresholds.
	VerdictCrash
)

const (
	safeVerticalSpeed   = 2.0
	safeHorizontalSpeed = 1.5
)

// Judge classifies the turn outcome. Rough terrain under the lander shrinks
// both velocity thresholds, so hazardous ground is harder to land on.
// Touchdown outside the sampled terrain range carries no penalty.
func Judge(l *Lander, p *terrain.Profile) Verdict {
	if !l.OnGround() {
		return VerdictFlying
	}

	penalty := 0.0
	if l.X >= terrain.WorldMin && l.X <= terrain.WorldMax {
		penalty = math.Abs(p.Heights[terrain.Index(l.X)]) * 0.2
	}

	if math.Abs(l.VelV) < safeVerticalSpeed-penalty &&
		math.Abs(l.VelH) < safeHorizontalSpeed-penalty {
		return VerdictSuccess
	}
	return VerdictCrash
}
