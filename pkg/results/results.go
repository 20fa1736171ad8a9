// Package results writes the append-only, human-readable record of
// concluded games.
package results

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"moonlander/pkg/model"
)

// Log appends one record per concluded game to a text file. Records are
// never overwritten.
type Log struct {
	path string
}

// New creates a results log writing to the given path.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Append writes one timestamped record. A failure is reported to the caller
// and logged, but the game outcome stands regardless.
func (l *Log) Append(rec *model.GameRecord) error {
	// Ensure directory exists
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("failed to create results directory", "error", err)
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("failed to open results file", "error", err)
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	ts := rec.EndedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	entry := fmt.Sprintf("[%s] - %s\n", ts.Format(time.ANSIC), rec.Outcome)
	entry += fmt.Sprintf("  Final Position: H=%.1f m, V=%.1f m\n", rec.PositionX, rec.Altitude)
	entry += fmt.Sprintf("  Impact Velocity: H=%.1f m/s, V=%.1f m/s\n", rec.VelH, rec.VelV)
	entry += fmt.Sprintf("  Fuel Remaining: %d burns\n", rec.FuelRemaining)
	entry += fmt.Sprintf("  Landing Zone Safety: %.0f%% (at A=%.1f m)\n\n", rec.SafetyScore, rec.PositionX)

	if _, err := f.WriteString(entry); err != nil {
		slog.Error("failed to write results file", "error", err)
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}
