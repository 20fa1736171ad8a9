// Package session orchestrates game turns: command handling, fuel and radar
// accounting, landing judgment and session state transitions.
package session

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"moonlander/pkg/config"
	"moonlander/pkg/model"
	"moonlander/pkg/radar"
	"moonlander/pkg/sim"
	"moonlander/pkg/terrain"
)

var (
	// ErrNoActiveGame is returned for turn commands issued outside an active game.
	ErrNoActiveGame = errors.New("no active game")
	// ErrEnginesOff is returned when a burn is requested with the engines off.
	// The turn is not consumed.
	ErrEnginesOff = errors.New("main engines are off")
	// ErrNoFuel is returned when radar activation is requested with an empty tank.
	ErrNoFuel = errors.New("no fuel remaining")
)

// Controller drives one game session at a time. Starting a new game discards
// and reconstructs the lander, the terrain profile and the radar.
type Controller struct {
	rng *rand.Rand

	state   sim.State
	game    config.GameConfig // snapshot taken at game start
	lander  *sim.Lander
	profile *terrain.Profile
	radar   *radar.Radar
	turn    int
}

// TurnResult summarizes one fully executed turn.
type TurnResult struct {
	Command      sim.Command // Effective command, after any forced drift
	ForcedDrift  bool        // Fuel was empty, requested command overridden
	FuelDepleted bool        // Tank empty after this turn, game still running
	RadarExpired bool        // Radar signal was lost on this turn
	Verdict      sim.Verdict
	State        sim.State
	Record       *model.GameRecord // Set when the verdict ended the session

	// Advisory captured before the physics step, when the radar was active
	// at turn entry. It describes the pre-turn position.
	Advisory          *radar.Advisory
	RadarTurnsAtEntry int
}

// NewController creates a controller with no game running.
func NewController(rng *rand.Rand) *Controller {
	return &Controller{
		rng:   rng,
		state: sim.StateNotStarted,
	}
}

// StartGame discards any previous session and begins a fresh descent using a
// snapshot of the given configuration. Configuration changes made later
// apply to the next game, not this one.
func (c *Controller) StartGame(game config.GameConfig) {
	c.game = game
	c.lander = sim.NewLander(c.rng, game.InitialFuel)
	c.profile = terrain.Generate(c.rng)
	c.radar = radar.New(c.profile)
	c.turn = 0
	c.state = sim.StateFlying
}

// State returns the session state.
func (c *Controller) State() sim.State {
	return c.state
}

// Lander returns the current lander, or nil before the first game.
func (c *Controller) Lander() *sim.Lander {
	return c.lander
}

// Profile returns the terrain profile of the current game.
func (c *Controller) Profile() *terrain.Profile {
	return c.profile
}

// Radar returns the landing radar of the current game.
func (c *Controller) Radar() *radar.Radar {
	return c.radar
}

// Turn returns the number of fully executed turns this game.
func (c *Controller) Turn() int {
	return c.turn
}

// SetEngines switches the main engines on or off.
func (c *Controller) SetEngines(on bool) error {
	if c.state != sim.StateFlying {
		return ErrNoActiveGame
	}
	c.lander.EnginesOn = on
	return nil
}

// ActivateRadar switches the radar on for its validity window. Activation
// consumes one fuel unit; it is rejected with an empty tank. The returned
// flag reports whether this activation emptied the tank.
func (c *Controller) ActivateRadar() (depleted bool, err error) {
	if c.state != sim.StateFlying {
		return false, ErrNoActiveGame
	}
	if c.lander.Fuel <= 0 {
		return false, ErrNoFuel
	}
	c.radar.Activate()
	c.lander.Fuel--
	return c.lander.Fuel <= 0, nil
}

// ExecuteTurn resolves one game turn: physics, fuel, radar countdown,
// landing judgment, state transition. A burn requested with the engines off
// is rejected before anything is touched; the turn is a no-op. With an empty
// tank any command degrades to a drift and the engines report off.
func (c *Controller) ExecuteTurn(cmd sim.Command) (*TurnResult, error) {
	if c.state != sim.StateFlying {
		return nil, ErrNoActiveGame
	}

	res := &TurnResult{Command: cmd}

	if c.lander.Fuel <= 0 {
		c.lander.EnginesOn = false
		cmd = sim.CommandDrift
		res.Command = cmd
		res.ForcedDrift = true
	}

	if cmd.IsBurn() && !c.lander.EnginesOn {
		return nil, ErrEnginesOff
	}

	if c.radar.Active && c.radar.TurnsRemaining > 0 {
		adv := c.radar.AdviseAt(c.lander.X)
		res.Advisory = &adv
		res.RadarTurnsAtEntry = c.radar.TurnsRemaining
	}

	sim.Step(c.lander, c.game.Gravity, c.game.EngineForce, cmd)
	if cmd.IsBurn() {
		c.lander.Fuel--
	}

	res.RadarExpired = c.radar.Tick()
	c.turn++

	res.Verdict = sim.Judge(c.lander, c.profile)
	switch res.Verdict {
	case sim.VerdictSuccess:
		c.transition(sim.StateSuccess)
		res.Record = c.buildRecord(model.OutcomeSuccess)
	case sim.VerdictCrash:
		c.transition(sim.StateCrash)
		res.Record = c.buildRecord(model.OutcomeCrash)
	default:
		if c.lander.Fuel <= 0 {
			res.FuelDepleted = true
		}
	}
	res.State = c.state

	return res, nil
}

// Status builds the per-turn snapshot for the output collaborator.
func (c *Controller) Status() model.StatusSnapshot {
	l := c.lander
	return model.StatusSnapshot{
		PositionX:  l.X,
		Altitude:   l.Altitude,
		VelH:       l.VelH,
		VelV:       l.VelV,
		DeltaVelH:  l.VelH - l.PrevVelH,
		DeltaVelV:  l.VelV - l.PrevVelV,
		Fuel:       l.Fuel,
		EnginesOn:  l.EnginesOn,
		RadarOn:    c.radar.Active,
		RadarTurns: c.radar.TurnsRemaining,
	}
}

func (c *Controller) transition(next sim.State) {
	if c.state.CanTransition(next) {
		c.state = next
	}
}

func (c *Controller) buildRecord(outcome model.Outcome) *model.GameRecord {
	l := c.lander
	return &model.GameRecord{
		ID:            uuid.NewString(),
		Outcome:       outcome,
		PositionX:     l.X,
		Altitude:      l.Altitude,
		VelH:          l.VelH,
		VelV:          l.VelV,
		FuelRemaining: l.Fuel,
		SafetyScore:   c.profile.SafetyScore(l.X),
		EndedAt:       time.Now(),
	}
}
