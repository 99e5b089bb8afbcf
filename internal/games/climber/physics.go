package climber

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-climber/internal/config"
)

// Physics holds the per-tick constants.
type Physics struct {
	Gravity     float64 // Added to VY every tick
	JumpFactor  float64 // Jump sets VY to Gravity*JumpFactor
	JumpNudge   float64 // Lift applied on the jump tick
	GroundedVY  float64 // VY after any vertical contact
	MoveSpeed   float64 // Horizontal units per tick
	ScrollSpeed float64 // Obstacle descent per tick
}

// DefaultPhysics returns the reference constants.
func DefaultPhysics() Physics {
	return PhysicsFromConfig(config.DefaultClimberConfig().Physics)
}

// PhysicsFromConfig copies the physics section of a config.
func PhysicsFromConfig(c config.PhysicsConfig) Physics {
	return Physics{
		Gravity:     c.Gravity,
		JumpFactor:  c.JumpFactor,
		JumpNudge:   c.JumpNudge,
		GroundedVY:  c.GroundedVY,
		MoveSpeed:   c.MoveSpeed,
		ScrollSpeed: c.ScrollSpeed,
	}
}

// JumpVelocity is the VY assigned when a jump fires.
func (ph Physics) JumpVelocity() float64 {
	return ph.Gravity * ph.JumpFactor
}

// Axis identifies which branch a collision resolved along.
type Axis int

const (
	AxisNone       Axis = iota // No overlap, or equal penetration on both axes
	AxisVertical               // Pushed up or down, VY grounded
	AxisHorizontal             // Pushed left or right
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// TickReport summarizes what happened during one tick.
type TickReport struct {
	Jumped     bool // The jump branch ran and collisions were skipped
	Vertical   int  // Vertical resolutions
	Horizontal int  // Horizontal resolutions
}

// Engine advances a player against an obstacle set.
type Engine struct {
	Physics Physics
	logger  *log.Logger
}

// NewEngine creates an engine. A nil logger disables debug output.
func NewEngine(ph Physics, logger *log.Logger) *Engine {
	return &Engine{Physics: ph, logger: logger}
}

// Tick runs one step in fixed order: jump, collisions, gravity,
// horizontal movement, scroll. A jump tick skips collisions and gravity.
// The order matters: resolving before gravity is what makes landings stick.
func (e *Engine) Tick(p *Player, set *ObstacleSet) TickReport {
	var report TickReport

	if p.Jumping {
		e.Jump(p)
		report.Jumped = true
	} else {
		report.Vertical, report.Horizontal = e.ResolveCollisions(p, set)
		e.ApplyGravity(p)
	}

	e.MoveHorizontal(p)
	e.Scroll(set)
	return report
}

// Jump lifts the player, sets the upward impulse and consumes the request.
func (e *Engine) Jump(p *Player) {
	p.Box.Y -= e.Physics.JumpNudge
	p.VY = e.Physics.JumpVelocity()
	p.Jumping = false
	e.debug("jump", "y", p.Box.Y, "vy", p.VY)
}

// ResolveCollisions tests every collidable obstacle in order. Each
// resolution sees the position left by the previous one.
func (e *Engine) ResolveCollisions(p *Player, set *ObstacleSet) (vertical, horizontal int) {
	for _, o := range set.All() {
		if !o.Kind.Collidable() {
			continue
		}
		switch e.Resolve(p, o) {
		case AxisVertical:
			vertical++
		case AxisHorizontal:
			horizontal++
		case AxisNone:
		}
	}
	return vertical, horizontal
}

// Resolve separates the player from one obstacle along the axis of
// smaller penetration. Equal penetration resolves neither axis.
func (e *Engine) Resolve(p *Player, o Obstacle) Axis {
	sep := p.Box.SeparationFrom(o.Box)
	if !sep.Overlaps() {
		return AxisNone
	}

	overX, overY := sep.Penetration()

	if overX > overY {
		p.VY = e.Physics.GroundedVY
		if sep.DistY > 0 {
			p.Box.Y += overY
		} else {
			p.Box.Y -= overY
		}
		e.debug("resolved", "axis", AxisVertical, "over", overY, "kind", o.Kind)
		return AxisVertical
	}

	if overY > overX {
		if sep.DistX > 0 {
			p.Box.X += overX
		} else {
			p.Box.X -= overX
		}
		e.debug("resolved", "axis", AxisHorizontal, "over", overX, "kind", o.Kind)
		return AxisHorizontal
	}

	return AxisNone
}

// ApplyGravity accelerates and integrates the vertical position.
func (e *Engine) ApplyGravity(p *Player) {
	p.VY += e.Physics.Gravity
	p.Box.Y += p.VY
}

// MoveHorizontal applies the input flags.
func (e *Engine) MoveHorizontal(p *Player) {
	if p.MovingRight {
		p.Box.X += e.Physics.MoveSpeed
	}
	if p.MovingLeft {
		p.Box.X -= e.Physics.MoveSpeed
	}
}

// Scroll moves the world down.
func (e *Engine) Scroll(set *ObstacleSet) {
	set.Scroll(e.Physics.ScrollSpeed)
}

func (e *Engine) debug(msg string, keyvals ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}
