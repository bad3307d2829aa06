/*
Package option implements optional value types for glyph modelling.

The option types are small comparable structs whose zero value is the
unset value, so that structs containing them stay comparable with == and
need no explicit initialization. This matters for context and schema
fingerprints, which rely on field-wise equality.
*/
package option

import (
	"math"
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Type is a type for optional values.
type Type interface {
	Equals(other interface{}) bool
	IsNone() bool
}

// --- AngleT ----------------------------------------------------------------

// AngleT is an optional angle in degrees, normalized to [0°…360°).
// The zero value is the unset angle.
type AngleT struct {
	deg float64
	set bool
}

// SomeAngle creates an optional angle with an initial value of x degrees.
func SomeAngle(x float64) AngleT {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return AngleT{deg: x, set: true}
}

// Angle creates an optional angle without an initial value.
func Angle() AngleT {
	return AngleT{}
}

func (o AngleT) Equals(other interface{}) bool {
	switch a := other.(type) {
	case AngleT:
		return o == a
	case float64:
		return o.set && o.deg == a
	case int:
		return o.set && o.deg == float64(a)
	}
	return false
}

// IsNone returns true if o is unset.
func (o AngleT) IsNone() bool {
	return !o.set
}

// Unwrap returns the angle value in degrees. It must not be called on an
// unset angle.
func (o AngleT) Unwrap() float64 {
	return o.deg
}

func (o AngleT) String() string {
	if !o.set {
		return "Angle.None"
	}
	return strconv.FormatFloat(o.deg, 'g', -1, 64) + "°"
}

var _ Type = Angle()

// --- BoolT -----------------------------------------------------------------

// BoolT is an optional (tri-state) boolean. The zero value is the unset
// boolean.
type BoolT int8

const (
	boolNone  BoolT = 0
	boolTrue  BoolT = 1
	boolFalse BoolT = 2
)

// SomeBool creates an optional boolean with an initial value of b.
func SomeBool(b bool) BoolT {
	if b {
		return boolTrue
	}
	return boolFalse
}

// Bool creates an optional boolean without an initial value.
func Bool() BoolT {
	return boolNone
}

func (o BoolT) Equals(other interface{}) bool {
	switch b := other.(type) {
	case BoolT:
		return o == b
	case bool:
		return !o.IsNone() && o.Unwrap() == b
	}
	return false
}

// IsNone returns true if o is unset.
func (o BoolT) IsNone() bool {
	return o == boolNone
}

// Unwrap returns the boolean value. It must not be called on an unset
// boolean.
func (o BoolT) Unwrap() bool {
	return o == boolTrue
}

// Negated flips a set boolean; an unset boolean stays unset.
func (o BoolT) Negated() BoolT {
	switch o {
	case boolTrue:
		return boolFalse
	case boolFalse:
		return boolTrue
	}
	return boolNone
}

func (o BoolT) String() string {
	switch o {
	case boolTrue:
		return "true"
	case boolFalse:
		return "false"
	}
	return "Bool.None"
}

var _ Type = Bool()

// --- FixedT ----------------------------------------------------------------

// FixedT is an optional font-unit value in 26.6 fixed-point format.
// The zero value is the unset value.
type FixedT struct {
	v   fixed.Int26_6
	set bool
}

// SomeFixed creates an optional fixed value with an initial value of x.
func SomeFixed(x fixed.Int26_6) FixedT {
	return FixedT{v: x, set: true}
}

// Fixed creates an optional fixed value without an initial value.
func Fixed() FixedT {
	return FixedT{}
}

func (o FixedT) Equals(other interface{}) bool {
	switch f := other.(type) {
	case FixedT:
		return o == f
	case fixed.Int26_6:
		return o.set && o.v == f
	case int:
		return o.set && o.v == fixed.I(f)
	}
	return false
}

// IsNone returns true if o is unset.
func (o FixedT) IsNone() bool {
	return !o.set
}

// Unwrap returns the fixed-point value. It must not be called on an
// unset value.
func (o FixedT) Unwrap() fixed.Int26_6 {
	return o.v
}

func (o FixedT) String() string {
	if !o.set {
		return "Fixed.None"
	}
	return o.v.String()
}

var _ Type = Fixed()
