package terrain

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerate_Invariants(t *testing.T) {
	// Hazards are random, so exercise many seeds.
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := Generate(rng)

		for i, h := range p.Heights {
			x := WorldMin + float64(i)*Spacing
			base := math.Sin(x*0.1)*5 + math.Cos(x*0.05)*3
			// Hazard offsets span [-5.0, +4.5].
			if h < base-5.0-1e-9 || h > base+4.5+1e-9 {
				t.Fatalf("seed %d sample %d: height %v outside hazard envelope around %v", seed, i, h, base)
			}
		}

		for x := -150.0; x <= 150.0; x += 2.5 {
			s := p.SafetyScore(x)
			if s < 0 || s > 100 {
				t.Fatalf("seed %d: SafetyScore(%v) = %v, want [0,100]", seed, x, s)
			}
		}

		if p.SafeLandingScore < 0 || p.SafeLandingScore > 100 {
			t.Fatalf("seed %d: safe landing score %v out of range", seed, p.SafeLandingScore)
		}
	}
}

func TestBestLandingZone_ExcludesEdges(t *testing.T) {
	// Force the edges to be the flattest spots; they must still never win.
	p := &Profile{}
	for i := range p.Heights {
		p.Heights[i] = 8.0
	}
	p.Heights[0] = 0
	p.Heights[Samples-1] = 0

	x, _ := p.BestLandingZone()
	i := Index(x)
	if i == 0 || i == Samples-1 {
		t.Errorf("BestLandingZone selected edge index %d", i)
	}
}

func TestBestLandingZone_TieBreaksLeft(t *testing.T) {
	// Flat terrain: every interior sample scores 100, lowest index wins.
	p := &Profile{}
	x, score := p.BestLandingZone()
	if x != WorldMin+Spacing {
		t.Errorf("expected leftmost interior sample %v, got %v", WorldMin+Spacing, x)
	}
	if score != 100 {
		t.Errorf("expected score 100 on flat terrain, got %v", score)
	}
}

func TestSafetyScore(t *testing.T) {
	p := &Profile{}
	p.Heights[10] = 2.0 // x = 0
	p.Heights[11] = 5.0 // x = 10

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{
			name: "FlatSample",
			x:    -50,
			want: 100,
		},
		{
			name: "HeightAndSlopePenalty",
			// |2|*10 + (|2-0| + |5-2|)*5 = 20 + 25
			x:    0,
			want: 55,
		},
		{
			name: "OutOfRangeLeft",
			x:    -160,
			want: 0,
		},
		{
			name: "OutOfRangeRight",
			x:    160,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.SafetyScore(tt.x); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SafetyScore(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestSafetyScore_FlooredAtZero(t *testing.T) {
	p := &Profile{}
	for i := range p.Heights {
		p.Heights[i] = 50.0
	}
	if got := p.SafetyScore(0); got != 0 {
		t.Errorf("expected floor at 0, got %v", got)
	}
}

func TestIndex_Clamping(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{-100, 0},
		{-96, 0},  // rounds to nearest sample
		{-94, 1},  // rounds up
		{0, 10},
		{100, 20},
		{-500, 0},
		{500, 20},
	}
	for _, tt := range tests {
		if got := Index(tt.x); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	p := &Profile{}
	p.Heights[0] = 0
	p.Heights[1] = 10

	if got := p.Interpolate(0.5); math.Abs(got-5) > 1e-9 {
		t.Errorf("Interpolate(0.5) = %v, want 5", got)
	}
	if got := p.Interpolate(1.0); math.Abs(got-10) > 1e-9 {
		t.Errorf("Interpolate(1.0) = %v, want 10", got)
	}
	// Clamped beyond the last sample
	if got := p.Interpolate(25); got != p.Heights[Samples-1] {
		t.Errorf("Interpolate(25) = %v, want last sample %v", got, p.Heights[Samples-1])
	}
}
