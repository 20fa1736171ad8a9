package sim

import (
	"math"
	"testing"
)

const (
	testGravity = 1.6
	testThrust  = 3.0
)

func TestStep_GravityAlwaysApplies(t *testing.T) {
	tests := []struct {
		name      string
		enginesOn bool
		cmd       Command
	}{
		{name: "DriftEnginesOff", enginesOn: false, cmd: CommandDrift},
		{name: "DriftEnginesOn", enginesOn: true, cmd: CommandDrift},
		{name: "BurnLeftEnginesOff", enginesOn: false, cmd: CommandBurnLeft},
		{name: "BurnRightEnginesOff", enginesOn: false, cmd: CommandBurnRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Lander{Altitude: 500, VelV: -3, VelH: 1, TimeStep: 1.0, EnginesOn: tt.enginesOn}
			prevV := l.VelV
			prevH := l.VelH

			Step(l, testGravity, testThrust, tt.cmd)

			if got := prevV - l.VelV; math.Abs(got-testGravity) > 1e-9 {
				t.Errorf("vertical velocity dropped by %v, want gravity %v", got, testGravity)
			}
			// Without an accepted burn, horizontal velocity is untouched.
			if l.VelH != prevH {
				t.Errorf("horizontal velocity changed to %v without thrust", l.VelH)
			}
		})
	}
}

func TestStep_Burns(t *testing.T) {
	tests := []struct {
		name      string
		cmd       Command
		wantDVelV float64
		wantDVelH float64
	}{
		{
			name:      "BurnLeft",
			cmd:       CommandBurnLeft,
			wantDVelV: testThrust - testGravity,
			wantDVelH: testThrust * 0.3,
		},
		{
			name:      "BurnRight",
			cmd:       CommandBurnRight,
			wantDVelV: testThrust - testGravity,
			wantDVelH: -testThrust * 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Lander{Altitude: 500, TimeStep: 1.0, EnginesOn: true}

			Step(l, testGravity, testThrust, tt.cmd)

			if math.Abs(l.VelV-tt.wantDVelV) > 1e-9 {
				t.Errorf("VelV = %v, want %v", l.VelV, tt.wantDVelV)
			}
			if math.Abs(l.VelH-tt.wantDVelH) > 1e-9 {
				t.Errorf("VelH = %v, want %v", l.VelH, tt.wantDVelH)
			}
		})
	}
}

func TestStep_ThreeBurnScenario(t *testing.T) {
	// Three consecutive left burns with moon gravity and 3.0 thrust.
	l := &Lander{Altitude: 500, TimeStep: 1.0, EnginesOn: true}

	for i := 0; i < 3; i++ {
		Step(l, testGravity, testThrust, CommandBurnLeft)
	}

	if math.Abs(l.VelH-2.7) > 1e-9 {
		t.Errorf("VelH after 3 left burns = %v, want 2.7", l.VelH)
	}
	if math.Abs(l.VelV-4.2) > 1e-9 {
		t.Errorf("VelV after 3 left burns = %v, want 4.2", l.VelV)
	}
}

func TestStep_PreviousVelocities(t *testing.T) {
	l := &Lander{Altitude: 500, VelH: 2, VelV: -5, TimeStep: 1.0}

	Step(l, testGravity, testThrust, CommandDrift)

	if l.PrevVelH != 2 || l.PrevVelV != -5 {
		t.Errorf("previous velocities = (%v, %v), want (2, -5)", l.PrevVelH, l.PrevVelV)
	}
}

func TestStep_AltitudeClamped(t *testing.T) {
	l := &Lander{Altitude: 3, VelV: -10, TimeStep: 1.0}

	Step(l, testGravity, testThrust, CommandDrift)

	if l.Altitude != 0 {
		t.Errorf("altitude = %v, want clamp at 0", l.Altitude)
	}
	if !l.OnGround() {
		t.Error("expected OnGround after clamping")
	}
}

func TestStep_PositionIntegration(t *testing.T) {
	l := &Lander{X: 10, Altitude: 500, VelH: 2, VelV: 0, TimeStep: 1.0}

	Step(l, testGravity, testThrust, CommandDrift)

	if math.Abs(l.X-12) > 1e-9 {
		t.Errorf("X = %v, want 12", l.X)
	}
	// Gravity pulls VelV to -1.6 before integration.
	if math.Abs(l.Altitude-498.4) > 1e-9 {
		t.Errorf("Altitude = %v, want 498.4", l.Altitude)
	}
}
