package physics

// Advance moves the puck along its velocity for dt ticks.
func (p *Puck) Advance(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// ApplyFriction decays the puck's velocity. Call it once per tick,
// not once per sub-step.
func (p *Puck) ApplyFriction() {
	p.Vel = p.Vel.Scale(p.Friction)
}

// Move applies one sub-step of player intent and clamps the paddle to its
// confinement rectangle. Opposing directions cancel.
func (p *Paddle) Move(in Intent, dt float64) {
	step := p.Speed * dt
	if in.Up {
		p.Pos.Y -= step
	}
	if in.Down {
		p.Pos.Y += step
	}
	if in.Left {
		p.Pos.X -= step
	}
	if in.Right {
		p.Pos.X += step
	}
	p.Pos = p.Bounds.Clamp(p.Pos)
}

// Reset returns the paddle to its start position.
func (p *Paddle) Reset() {
	p.Pos = p.Start
}
