// Package model defines shared data types for game outcomes and status reporting.
package model

import (
	"time"
)

// Outcome classifies a concluded game.
type Outcome string

const (
	// OutcomeSuccess indicates a survivable touchdown.
	OutcomeSuccess Outcome = "SUCCESS"
	// OutcomeCrash indicates impact above the safe velocity thresholds.
	OutcomeCrash Outcome = "CRASHED"
)

// GameRecord is the read-only snapshot of a concluded game handed to the
// results writers.
type GameRecord struct {
	ID            string    `json:"id"` // UUID assigned at game end
	Outcome       Outcome   `json:"outcome"`
	PositionX     float64   `json:"position_x"` // Final horizontal position (m)
	Altitude      float64   `json:"altitude"`   // Final altitude (m), 0 for concluded games
	VelH          float64   `json:"vel_h"`      // Impact velocity, horizontal (m/s)
	VelV          float64   `json:"vel_v"`      // Impact velocity, vertical (m/s)
	FuelRemaining int       `json:"fuel_remaining"`
	SafetyScore   float64   `json:"safety_score"` // Terrain safety at the final position (0-100)
	EndedAt       time.Time `json:"ended_at"`
}

// StatusSnapshot is the per-turn state handed to the output collaborator.
// Velocity deltas are always populated; the display mode decides which pair
// is shown.
type StatusSnapshot struct {
	PositionX  float64
	Altitude   float64
	VelH       float64
	VelV       float64
	DeltaVelH  float64 // Change since the previous turn
	DeltaVelV  float64
	Fuel       int
	EnginesOn  bool
	RadarOn    bool
	RadarTurns int // Turns of radar validity remaining
}
