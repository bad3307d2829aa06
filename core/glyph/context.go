package glyph

import (
	"fmt"

	"github.com/npillmayer/glyphsmith/core/option"
)

// --- Context ---------------------------------------------------------------

// A Context describes one endpoint of a shape—the state a pen is in
// when it enters or leaves the shape. Adjacent shapes join through their
// contexts: the exit context of one letter meets the entry context of
// the next, which drives rotation decisions for orienting glyphs.
//
// Context is a small immutable value type; two contexts are equal iff
// all fields are equal, which makes plain == the equality test.
type Context struct {
	Angle     option.AngleT // tangent angle at the endpoint, if known
	Clockwise option.BoolT  // arc direction at the endpoint, if curved
	Flags     ContextFlags
}

// ContextFlags are boolean properties of a context.
type ContextFlags struct {
	Ou                     bool // endpoint belongs to an “ou” vowel form
	Minor                  bool // endpoint of a minor (reduced) form
	IgnorableForTopography bool // endpoint does not constrain topographic placement
	DiphthongStart         bool // endpoint starts a ligated diphthong
	DiphthongEnd           bool // endpoint ends a ligated diphthong
}

// NoContext is the neutral context: no angle, no arc direction, no flags.
// It is the zero value of Context.
var NoContext = Context{}

// MakeContext creates a context from an angle and an arc direction.
// A context that is ignorable for topography must have a known arc
// direction; violating that is a programmer error.
func MakeContext(angle option.AngleT, clockwise option.BoolT, flags ContextFlags) Context {
	ensure(!flags.IgnorableForTopography || !clockwise.IsNone(),
		"topography-ignorable context requires a known arc direction")
	return Context{Angle: angle, Clockwise: clockwise, Flags: flags}
}

// Reversed returns the context as seen when the shape is traversed
// backwards: the angle flips by 180° and the arc direction negates.
func (c Context) Reversed() Context {
	r := c
	if !c.Angle.IsNone() {
		r.Angle = option.SomeAngle(c.Angle.Unwrap() + 180)
	}
	r.Clockwise = c.Clockwise.Negated()
	return r
}

// loopBias is the angular offset, in degrees, applied to a curved
// endpoint before deciding the direction of the shortest loop between
// two contexts. A curved endpoint pulls the loop towards its own arc
// direction.
const loopBias = 90.0

// HasClockwiseLoopTo reports whether the shortest loop from c to the
// entry context other runs clockwise. Both endpoints' curvature bias the
// decision; an exact tie is not clockwise. Contexts without angles never
// loop.
func (c Context) HasClockwiseLoopTo(other Context) bool {
	if c.Angle.IsNone() || other.Angle.IsNone() {
		return false
	}
	// clockwise turn = decreasing angle; a curved endpoint pulls the
	// loop towards its own arc direction
	exit := c.Angle.Unwrap()
	entry := other.Angle.Unwrap()
	if !c.Clockwise.IsNone() {
		if c.Clockwise.Unwrap() {
			exit += loopBias
		} else {
			exit -= loopBias
		}
	}
	if !other.Clockwise.IsNone() {
		if other.Clockwise.Unwrap() {
			entry -= loopBias
		} else {
			entry += loopBias
		}
	}
	da := exit - entry
	for da < 0 {
		da += 360
	}
	for da >= 360 {
		da -= 360
	}
	return da > 180
}

// IsTrivial reports whether c is the neutral context.
func (c Context) IsTrivial() bool {
	return c == NoContext
}

func (c Context) String() string {
	if c.IsTrivial() {
		return "⟨none⟩"
	}
	return fmt.Sprintf("⟨%s %s %+v⟩", c.Angle, c.Clockwise, c.Flags)
}
