package glyph

import (
	"fmt"

	"github.com/npillmayer/glyphsmith/core/option"
)

// --- Shapes ----------------------------------------------------------------

// Shape is an abstract letterform. The sifting core never draws shapes;
// it only needs a stable identity and a shape-specific fingerprint term
// so that schemas with differing letterforms never share a glyph.
// Concrete outline generation is the glyph emitter's business.
type Shape interface {
	Name() string            // shape kind, e.g. "line", "curve"
	GroupTerm() string       // shape-specific fingerprint sub-key
	CanBeOriented() bool     // may the letterform rotate to fit its contexts?
	Entry() Context          // canonical entry context of the letterform
	Exit() Context           // canonical exit context of the letterform
}

// Dot is a shape without extent: an isolated point or diacritic body.
type Dot struct {
	Centered bool
}

func (d Dot) Name() string        { return "dot" }
func (d Dot) GroupTerm() string   { return fmt.Sprintf("dot:%t", d.Centered) }
func (d Dot) CanBeOriented() bool { return false }
func (d Dot) Entry() Context      { return NoContext }
func (d Dot) Exit() Context       { return NoContext }

// Line is a straight stroke at a fixed angle, in degrees.
type Line struct {
	Angle         float64
	MinorOffset   float64 // skew applied when the line joins a minor form
	StretchFactor float64 // 0 means unstretched
}

func (l Line) Name() string { return "line" }

func (l Line) GroupTerm() string {
	return fmt.Sprintf("line:%g:%g:%g", l.Angle, l.MinorOffset, l.StretchFactor)
}

func (l Line) CanBeOriented() bool { return false }

func (l Line) Entry() Context {
	return Context{Angle: option.SomeAngle(l.Angle + 180), Clockwise: option.Bool()}
}

func (l Line) Exit() Context {
	return Context{Angle: option.SomeAngle(l.Angle), Clockwise: option.Bool()}
}

// Curve is an arc from one tangent angle to another, with an arc
// direction.
type Curve struct {
	AngleIn   float64
	AngleOut  float64
	Clockwise bool
	Hook      bool // arc ends in a small hook
}

func (c Curve) Name() string { return "curve" }

func (c Curve) GroupTerm() string {
	return fmt.Sprintf("curve:%g:%g:%t:%t", c.AngleIn, c.AngleOut, c.Clockwise, c.Hook)
}

func (c Curve) CanBeOriented() bool { return true }

func (c Curve) Entry() Context {
	return Context{Angle: option.SomeAngle(c.AngleIn + 180), Clockwise: option.SomeBool(c.Clockwise)}
}

func (c Curve) Exit() Context {
	return Context{Angle: option.SomeAngle(c.AngleOut), Clockwise: option.SomeBool(c.Clockwise)}
}

// Circle is a full loop with an arc direction. Circles reverse their
// direction freely to fit their neighbors, which is why their schemas
// are usually Orienting.
type Circle struct {
	Angle     float64 // angle at which the pen enters the loop
	Clockwise bool
	Pinned    bool // loop may not reverse to fit its context
}

func (c Circle) Name() string { return "circle" }

func (c Circle) GroupTerm() string {
	return fmt.Sprintf("circle:%g:%t:%t", c.Angle, c.Clockwise, c.Pinned)
}

func (c Circle) CanBeOriented() bool { return !c.Pinned }

func (c Circle) Entry() Context {
	return Context{Angle: option.SomeAngle(c.Angle), Clockwise: option.SomeBool(c.Clockwise)}
}

func (c Circle) Exit() Context {
	return Context{Angle: option.SomeAngle(c.Angle), Clockwise: option.SomeBool(c.Clockwise)}
}
