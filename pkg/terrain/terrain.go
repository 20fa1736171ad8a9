// Package terrain generates the lunar surface profile and scores landing safety.
package terrain

import (
	"math"
	"math/rand"
)

const (
	// Samples is the fixed number of height samples in a profile.
	Samples = 21
	// WorldMin and WorldMax bound the horizontal world range in meters.
	WorldMin = -100.0
	WorldMax = 100.0
	// Spacing is the horizontal distance between adjacent samples.
	Spacing = 10.0
)

// Profile is the fixed-resolution height profile of the landing area.
// It is generated once per game and immutable afterwards.
type Profile struct {
	Heights [Samples]float64

	// Recommended landing zone, precomputed at generation time.
	SafeLandingX     float64
	SafeLandingScore float64
}

// Generate builds a fresh profile from the given random source.
// Heights follow a smooth sinusoidal base; each sample independently carries
// a hazard offset with probability 0.15. Hazards are deliberately not
// smoothed, so they leave step discontinuities (craters, rocks).
func Generate(rng *rand.Rand) *Profile {
	p := &Profile{}
	for i := 0; i < Samples; i++ {
		x := WorldMin + float64(i)*Spacing
		variation := math.Sin(x*0.1)*5 + math.Cos(x*0.05)*3
		hazard := 0.0
		if rng.Intn(100) < 15 {
			hazard = float64(rng.Intn(20)-10) * 0.5
		}
		p.Heights[i] = variation + hazard
	}

	p.SafeLandingX, p.SafeLandingScore = p.BestLandingZone()
	return p
}

// Index maps a world x coordinate to the nearest sample index, clamped to
// the valid range.
func Index(x float64) int {
	i := int(math.Round((x - WorldMin) / Spacing))
	if i < 0 {
		return 0
	}
	if i >= Samples {
		return Samples - 1
	}
	return i
}

// SafetyScore rates the landing safety at a world x coordinate on a 0-100
// scale. Height magnitude and, for interior samples, the slopes to both
// neighbors reduce the score. Positions outside the sampled range score 0.
// This is the canonical safety metric; the recommended landing zone and the
// post-game report both use it.
func (p *Profile) SafetyScore(x float64) float64 {
	i := int(math.Round((x - WorldMin) / Spacing))
	if i < 0 || i >= Samples {
		return 0
	}

	safety := 100.0 - math.Abs(p.Heights[i])*10
	if i > 0 && i < Samples-1 {
		slopeLeft := math.Abs(p.Heights[i] - p.Heights[i-1])
		slopeRight := math.Abs(p.Heights[i+1] - p.Heights[i])
		safety -= (slopeLeft + slopeRight) * 5
	}
	return math.Max(0, safety)
}

// BestLandingZone returns the world x and safety score of the safest sample.
// Only interior samples are candidates: the edges lack a neighbor on one
// side, so their slope cannot be evaluated. Ties go to the leftmost sample.
func (p *Profile) BestLandingZone() (x, score float64) {
	bestScore := -1.0
	bestX := 0.0
	for i := 1; i < Samples-1; i++ {
		pos := WorldMin + float64(i)*Spacing
		if s := p.SafetyScore(pos); s > bestScore {
			bestScore = s
			bestX = pos
		}
	}
	return bestX, bestScore
}

// Interpolate returns the terrain height at a fractional sample position,
// linearly interpolated between the two bracketing samples. The position is
// clamped into the sampled range.
func (p *Profile) Interpolate(pos float64) float64 {
	i1 := int(math.Floor(pos))
	i2 := int(math.Ceil(pos))
	if i1 < 0 {
		i1 = 0
	}
	if i1 > Samples-1 {
		i1 = Samples - 1
	}
	if i2 < 0 {
		i2 = 0
	}
	if i2 > Samples-1 {
		i2 = Samples - 1
	}
	if i1 == i2 {
		return p.Heights[i1]
	}
	return p.Heights[i1] + (p.Heights[i2]-p.Heights[i1])*(pos-float64(i1))
}
