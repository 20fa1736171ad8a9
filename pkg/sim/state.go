// Package sim provides the lander kinematics, the physics step and the
// landing judgment.
package sim

// State represents the lifecycle state of a game session.
type State string

const (
	// StateNotStarted indicates no game has begun yet.
	StateNotStarted State = "not_started"
	// StateFlying indicates an active descent accepting commands.
	StateFlying State = "flying"
	// StateSuccess indicates a survivable touchdown. Terminal.
	StateSuccess State = "success"
	// StateCrash indicates a destructive impact. Terminal.
	StateCrash State = "crash"
)

// Terminal reports whether the state ends the session.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateCrash
}

// transitions is the explicit transition table of the session state machine.
var transitions = map[State][]State{
	StateNotStarted: {StateFlying},
	StateFlying:     {StateSuccess, StateCrash},
	StateSuccess:    {StateFlying},
	StateCrash:      {StateFlying},
}

// CanTransition reports whether moving from s to next is a legal transition.
// Terminal states only allow starting a fresh game.
func (s State) CanTransition(next State) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Command is a single turn instruction for the lander.
type Command string

const (
	// CommandBurnLeft fires the left thruster: vertical braking plus a push to the right.
	CommandBurnLeft Command = "burn-left"
	// CommandBurnRight fires the right thruster: vertical braking plus a push to the left.
	CommandBurnRight Command = "burn-right"
	// CommandDrift applies no thrust and consumes no fuel.
	CommandDrift Command = "drift"
)

// IsBurn reports whether the command expends fuel through the engines.
func (c Command) IsBurn() bool {
	return c == CommandBurnLeft || c == CommandBurnRight
}
