package sim

// Step advances the lander by one discrete time step.
// Gravity always applies first; thrust only when the engines are on and the
// command is a burn. Any other command coasts, even with the engines running.
// Altitude is clamped at zero so the lander never ends up underground.
func Step(l *Lander, gravity, engineForce float64, cmd Command) {
	dt := l.TimeStep
	l.PrevVelH = l.VelH
	l.PrevVelV = l.VelV

	l.VelV -= gravity * dt

	if l.EnginesOn {
		switch cmd {
		case CommandBurnLeft:
			l.VelV += engineForce * dt
			l.VelH += engineForce * dt * 0.3
		case CommandBurnRight:
			l.VelV += engineForce * dt
			l.VelH -= engineForce * dt * 0.3
		}
	}

	l.X += l.VelH * dt
	l.Altitude += l.VelV * dt

	if l.Altitude < 0 {
		l.Altitude = 0
	}
}
