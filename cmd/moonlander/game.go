package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"moonlander/pkg/config"
	"moonlander/pkg/model"
	"moonlander/pkg/radar"
	"moonlander/pkg/results"
	"moonlander/pkg/session"
	"moonlander/pkg/sim"
	"moonlander/pkg/store"
)

// game is the interactive shell around the turn controller. It owns the
// prompt, the status rendering and the result writers; all rules live in
// the session controller.
type game struct {
	cfg     *config.Config
	ctrl    *session.Controller
	store   store.ResultStore
	results *results.Log
	in      *bufio.Scanner
	out     io.Writer
}

func newGame(cfg *config.Config, ctrl *session.Controller, st store.ResultStore, res *results.Log, in io.Reader, out io.Writer) *game {
	return &game{
		cfg:     cfg,
		ctrl:    ctrl,
		store:   st,
		results: res,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *game) loop() error {
	g.printf("=== MOON LANDER WITH DYNAMIC RADAR VISUALS ===\n")
	g.printf("Commands: V-Start, W-Engines On, S-Engines Off, Y-Left Burn, Z-Right Burn\n")
	g.printf("          X-Drift (skip burn), R-Activate Radar, H-History, C-Configure, Q-Quit\n")
	g.printf("Display Mode: %s\n", displayModeName(g.cfg.Game.DisplayDeltaV))
	g.printf("\nNOTE: Use Radar (R) to activate the visual display, which zooms in on approach.\n")
	g.printf("Press 'V' to begin a new game.\n")

	for {
		cmd, ok := g.readCommand()
		if !ok {
			return nil // EOF
		}
		if g.handle(cmd) {
			return nil
		}
	}
}

func (g *game) readCommand() (rune, bool) {
	g.printf("\nCommand: ")
	if !g.in.Scan() {
		return 0, false
	}
	line := strings.TrimSpace(g.in.Text())
	if line == "" {
		return ' ', true
	}
	return unicode.ToUpper(rune(line[0])), true
}

// handle dispatches one command character. It returns true on quit.
func (g *game) handle(cmd rune) bool {
	// Outside an active game only V, Q, C and H make sense.
	if g.ctrl.State() != sim.StateFlying {
		switch cmd {
		case 'V', 'Q', 'C', 'H':
		default:
			g.printf("Game over. Press 'V' to start a new game or 'Q' to quit.\n")
			return false
		}
	}

	switch cmd {
	case 'V':
		g.ctrl.StartGame(g.cfg.Game)
		slog.Info("new game started",
			"gravity", g.cfg.Game.Gravity,
			"engine_force", g.cfg.Game.EngineForce,
			"fuel", g.cfg.Game.InitialFuel)
		g.printf("\n=== NEW GAME STARTED ===\n")
		g.displayStatus()

	case 'C':
		g.configure()
		g.printf("\nConfiguration updated. Press 'V' to start a new game with these settings.\n")

	case 'H':
		g.history()

	case 'Q':
		g.printf("Thanks for playing Moon Lander!\n")
		return true

	case 'W':
		if err := g.ctrl.SetEngines(true); err == nil {
			g.printf(">>> Main Engines ON. <<<\n")
		}

	case 'S':
		if err := g.ctrl.SetEngines(false); err == nil {
			g.printf(">>> Main Engines OFF. <<<\n")
		}

	case 'R':
		g.activateRadar()

	case 'Y':
		g.turn(sim.CommandBurnLeft)
	case 'Z':
		g.turn(sim.CommandBurnRight)
	case 'X':
		g.turn(sim.CommandDrift)

	default:
		g.printf("Unknown command. Use: V, W, S, Y, Z, X, R, H, C, Q\n")
	}
	return false
}

func (g *game) activateRadar() {
	depleted, err := g.ctrl.ActivateRadar()
	switch err {
	case nil:
	case session.ErrNoFuel:
		g.printf("No fuel remaining! Cannot activate radar.\n")
		return
	default:
		return
	}

	g.printf("\n=== ACTIVATING LANDING RADAR (1 fuel consumed) ===\n")
	g.displayRadarData()
	g.displayStatus()
	if depleted {
		g.printf("\n*** WARNING: FUEL DEPLETED. ***\n")
	}
}

func (g *game) turn(cmd sim.Command) {
	res, err := g.ctrl.ExecuteTurn(cmd)
	if err == session.ErrEnginesOff {
		g.printf("Cannot burn. Main engines are OFF (use 'W' to turn on).\n")
		return
	}
	if err != nil {
		return
	}

	if res.ForcedDrift {
		g.printf("No fuel remaining! Lander is now drifting.\n")
	}
	if res.Advisory != nil {
		g.printf("\n[Radar data from previous position]\n")
		g.printAdvisory(*res.Advisory, res.RadarTurnsAtEntry)
	}
	if res.RadarExpired {
		g.printf(">>> Landing radar signal lost. Visuals deactivated. <<<\n")
	}

	g.displayStatus()

	switch res.Verdict {
	case sim.VerdictSuccess:
		g.printf("\n*** THE EAGLE HAS LANDED! SUCCESSFUL LANDING! ***\n")
		g.saveResult(res.Record)
	case sim.VerdictCrash:
		g.printf("\n*** CRASHED! High impact speed. ***\n")
		g.saveResult(res.Record)
	default:
		if res.FuelDepleted {
			g.printf("\n*** WARNING: FUEL DEPLETED. ***\n")
		}
	}
}

func (g *game) saveResult(rec *model.GameRecord) {
	if err := g.results.Append(rec); err != nil {
		g.printf("Error: Could not save result to file.\n")
	} else {
		g.printf("Result saved to %s\n", g.results.Path())
	}

	if err := g.store.SaveGame(context.Background(), rec); err != nil {
		slog.Error("failed to record game", "id", rec.ID, "error", err)
		g.printf("Error: Could not record game in history.\n")
	}
}

func (g *game) displayRadarData() {
	r := g.ctrl.Radar()
	if !r.Active {
		return
	}
	g.printAdvisory(r.AdviseAt(g.ctrl.Lander().X), r.TurnsRemaining)
}

func (g *game) printAdvisory(adv radar.Advisory, turnsRemaining int) {
	g.printf("\n--- LANDING RADAR DATA (Valid for %d more turns) ---\n", turnsRemaining)
	g.printf("RECOMMENDED LANDING ZONE: A=%.1f m (Safety: %.0f%%)\n", adv.ZoneX, adv.ZoneScore)
	g.printf("Distance to recommended zone: %.1f m\n", adv.Distance)
	if adv.Distance > 50 {
		g.printf("ADVISORY: Recommend horizontal maneuvering\n")
	} else if adv.Distance < 10 {
		g.printf("ADVISORY: On approach to safe zone\n")
	}
	g.printf("-----------------------------------------------\n")
}

func (g *game) displayStatus() {
	if g.ctrl.Radar().Active {
		g.displayVisualizer()
	}

	st := g.ctrl.Status()

	g.printf("\n--- LANDER STATUS ---\n")
	g.printf("A (X pos): %8.1f m\n", st.PositionX)
	g.printf("B (Alt):   %8.1f m\n", st.Altitude)

	if g.cfg.Game.DisplayDeltaV {
		g.printf("dV H:      %8.1f m/s\n", st.DeltaVelH)
		g.printf("dV V:      %8.1f m/s\n", st.DeltaVelV)
	} else {
		g.printf("Vel H:     %8.1f m/s  %s\n", st.VelH, arrowH(st.VelH))
		g.printf("Vel V:     %8.1f m/s  %s\n", st.VelV, arrowV(st.VelV))
	}

	g.printf("C (Fuel):  %8d burns\n", st.Fuel)
	g.printf("Engines:   %s\n", onOff(st.EnginesOn))

	if st.RadarOn {
		g.printf("Radar:     ACTIVE (%d turns remaining)\n", st.RadarTurns)
	} else {
		g.printf("Radar:     INACTIVE (use 'R' for visuals)\n")
	}
	g.printf("---------------------\n")
}

func (g *game) displayVisualizer() {
	v := radar.Render(g.ctrl.Lander(), g.ctrl.Profile())

	g.printf("\n.---[ RADAR VISUALS ]-----------------------------------------------.\n")
	for i, row := range v.Rows() {
		g.printf("| %s | %+.0fm\n", row, v.RowLabel(i))
	}
	g.printf("`------------------------------------------------------------------'\n")
	g.printf("  %-30s 0m %28s\n", "-100m", "+100m")
}

func (g *game) configure() {
	for {
		g.printf("\n=== GAME CONFIGURATION ===\n")
		g.printf("1. Gravity:       %.2f m/s2\n", g.cfg.Game.Gravity)
		g.printf("2. Engine Force:  %.2f m/s2\n", g.cfg.Game.EngineForce)
		g.printf("3. Initial Fuel:  %d burns\n", g.cfg.Game.InitialFuel)
		g.printf("4. Display Mode:  %s\n", displayModeName(g.cfg.Game.DisplayDeltaV))
		g.printf("5. Return to game\n")
		g.printf("Choose setting to change (1-5): ")

		choice, ok := g.readInt()
		if !ok {
			g.printf("Invalid choice.\n")
			continue
		}

		switch choice {
		case 1:
			g.printf("Enter new gravity (e.g., 1.6 for Moon): ")
			if v, ok := g.readFloat(); ok && v > 0 {
				g.cfg.Game.Gravity = v
			} else {
				g.printf("Invalid value.\n")
			}
		case 2:
			g.printf("Enter new engine force (m/s2): ")
			if v, ok := g.readFloat(); ok && v >= 0 {
				g.cfg.Game.EngineForce = v
			} else {
				g.printf("Invalid value.\n")
			}
		case 3:
			g.printf("Enter new initial fuel: ")
			if v, ok := g.readInt(); ok && v >= 0 {
				g.cfg.Game.InitialFuel = v
			} else {
				g.printf("Invalid value.\n")
			}
		case 4:
			g.cfg.Game.DisplayDeltaV = !g.cfg.Game.DisplayDeltaV
			g.printf("Display mode set to %s\n", displayModeName(g.cfg.Game.DisplayDeltaV))
		case 5:
			g.saveConfig()
			g.printf("Returning to main menu...\n")
			return
		default:
			g.printf("Invalid choice.\n")
		}
	}
}

func (g *game) saveConfig() {
	if err := config.Save(*configPath, g.cfg); err != nil {
		slog.Error("failed to save config", "error", err)
		g.printf("Warning: settings not saved to %s\n", *configPath)
	}
}

func (g *game) history() {
	ctx := context.Background()

	tally, err := g.store.Stats(ctx)
	if err != nil {
		slog.Error("failed to read history stats", "error", err)
		g.printf("Error: history unavailable.\n")
		return
	}

	g.printf("\n--- MISSION HISTORY ---\n")
	g.printf("Total: %d   Landed: %d   Crashed: %d\n", tally.Total, tally.Successes, tally.Crashes)

	records, err := g.store.ListRecent(ctx, 10)
	if err != nil {
		slog.Error("failed to list history", "error", err)
		g.printf("Error: history unavailable.\n")
		return
	}
	for _, rec := range records {
		g.printf("[%s] %-7s  A=%7.1f m  Vh=%5.1f Vv=%6.1f  fuel=%2d  safety=%3.0f%%\n",
			rec.EndedAt.Format("2006-01-02 15:04"), rec.Outcome,
			rec.PositionX, rec.VelH, rec.VelV, rec.FuelRemaining, rec.SafetyScore)
	}
	g.printf("-----------------------\n")
}

func (g *game) readInt() (int, bool) {
	if !g.in.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(g.in.Text()))
	if err != nil {
		return 0, false
	}
	return v, true
}

func (g *game) readFloat() (float64, bool) {
	if !g.in.Scan() {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(g.in.Text()), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func displayModeName(deltaV bool) string {
	if deltaV {
		return "Delta V"
	}
	return "m/s"
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func arrowH(v float64) string {
	if v > 0 {
		return "->"
	}
	return "<-"
}

func arrowV(v float64) string {
	if v < 0 {
		return "v (Down)"
	}
	return "^ (Up)"
}
