package option_test

import (
	"testing"

	"github.com/npillmayer/glyphsmith/core/option"
	"golang.org/x/image/math/fixed"
)

func TestOptionAngle(t *testing.T) {
	a := option.Angle()
	if !a.IsNone() {
		t.Error("expected fresh angle option to be unset")
	}
	a = option.SomeAngle(45)
	if a.IsNone() || a.Unwrap() != 45 {
		t.Errorf("expected angle of 45°, got %s", a)
	}
	if !a.Equals(option.SomeAngle(45)) || !a.Equals(45.0) {
		t.Error("expected 45° to equal 45°")
	}
}

func TestOptionAngleNormalization(t *testing.T) {
	if option.SomeAngle(370).Unwrap() != 10 {
		t.Errorf("expected 370° to normalize to 10°, got %s", option.SomeAngle(370))
	}
	if option.SomeAngle(-90).Unwrap() != 270 {
		t.Errorf("expected -90° to normalize to 270°, got %s", option.SomeAngle(-90))
	}
}

func TestOptionAngleZeroValueIsNone(t *testing.T) {
	var a option.AngleT
	if !a.IsNone() {
		t.Error("expected zero-value angle option to be unset")
	}
	if a.Equals(option.SomeAngle(0)) {
		t.Error("unset angle must not equal a set angle of 0°")
	}
}

func TestOptionBool(t *testing.T) {
	b := option.Bool()
	if !b.IsNone() {
		t.Error("expected fresh bool option to be unset")
	}
	if !b.Negated().IsNone() {
		t.Error("negating an unset bool should stay unset")
	}
	b = option.SomeBool(true)
	if b.IsNone() || !b.Unwrap() {
		t.Errorf("expected bool option to hold true, got %s", b)
	}
	if b.Negated().Unwrap() {
		t.Error("expected negated true to be false")
	}
}

func TestOptionFixed(t *testing.T) {
	f := option.Fixed()
	if !f.IsNone() {
		t.Error("expected fresh fixed option to be unset")
	}
	f = option.SomeFixed(fixed.I(100))
	if f.IsNone() || f.Unwrap() != fixed.I(100) {
		t.Errorf("expected fixed option of 100 units, got %s", f)
	}
	if !f.Equals(100) {
		t.Error("expected fixed option to equal plain 100")
	}
}
