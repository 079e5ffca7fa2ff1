package physics

// Params are the per-entity constants of the vertical state machine.
type Params struct {
	Gravity   int
	JumpForce int
}

// Vertical is the gravity, grounded and jump state of one entity.
// Jumping and falling share a state and differ only by VelocityY, which counts
// the upward units still owed to the current jump.
type Vertical struct {
	VelocityY int
	Grounded  bool
	Jumping   bool
}

// Update runs one frame of the state machine for an entity that is not flying.
func (v *Vertical) Update(occ Occupancy, b *Body, p Params, jump bool) {
	v.Ascend(occ, b, p.Gravity)
	v.Settle(occ, b, p.Gravity)
	if jump {
		v.TryJump(*b, p.JumpForce)
	}
}

// Ascend spends VelocityY as upward unit steps, truncated at the first obstacle,
// then decays the impulse by gravity.
func (v *Vertical) Ascend(occ Occupancy, b *Body, gravity int) {
	if v.VelocityY <= 0 {
		return
	}
	Step(occ, b, 0, -1, v.VelocityY)
	v.VelocityY -= gravity
	if v.VelocityY < 0 {
		v.VelocityY = 0
	}
}

// Settle lands the entity if the unit below its feet is blocked and lets it fall
// by gravity otherwise.
func (v *Vertical) Settle(occ Occupancy, b *Body, gravity int) {
	if Probe(occ, *b, 0, 1, AxisX) {
		v.Grounded = true
		v.Jumping = false
		v.VelocityY = 0
		return
	}
	v.Grounded = false
	Step(occ, b, 0, 1, gravity)
}

// TryJump starts a jump when the entity stands on ground and has headroom below
// the top of the world. It reports whether the jump started.
func (v *Vertical) TryJump(b Body, jumpForce int) bool {
	if !v.Grounded {
		return false
	}
	if b.Y-float64(2*jumpForce+1)/2 < 0 {
		return false
	}
	v.VelocityY = jumpForce
	v.Grounded = false
	v.Jumping = true
	return true
}

// Fly replaces gravity and jumping with direct vertical drive.
func (v *Vertical) Fly(occ Occupancy, b *Body, speed int, up, down bool) {
	v.VelocityY = 0
	v.Grounded = false
	v.Jumping = false
	if up {
		Step(occ, b, 0, -1, speed)
	}
	if down {
		Step(occ, b, 0, 1, speed)
	}
}

// Reset puts the state machine back into neutral free fall.
func (v *Vertical) Reset() {
	*v = Vertical{}
}
