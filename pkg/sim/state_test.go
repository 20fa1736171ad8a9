package sim

import (
	"testing"
)

func TestState_Terminal(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateNotStarted, false},
		{StateFlying, false},
		{StateSuccess, true},
		{StateCrash, true},
	}
	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestState_CanTransition(t *testing.T) {
	tests := []struct {
		from State
		to   State
		want bool
	}{
		{StateNotStarted, StateFlying, true},
		{StateNotStarted, StateSuccess, false},
		{StateFlying, StateSuccess, true},
		{StateFlying, StateCrash, true},
		{StateFlying, StateNotStarted, false},
		{StateSuccess, StateFlying, true}, // new game after a win
		{StateCrash, StateFlying, true},   // new game after a crash
		{StateSuccess, StateCrash, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCommand_IsBurn(t *testing.T) {
	if !CommandBurnLeft.IsBurn() || !CommandBurnRight.IsBurn() {
		t.Error("burn commands must report IsBurn")
	}
	if CommandDrift.IsBurn() {
		t.Error("drift must not report IsBurn")
	}
}
