package rules

import (
	"testing"

	"github.com/npillmayer/glyphsmith/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func line(u *glyph.Universe, phase glyph.Phase, angle float64) glyph.Handle {
	return u.Add(phase, glyph.Schema{Shape: glyph.Line{Angle: angle}, Size: 1})
}

func TestClassOrderAndDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	u := glyph.NewUniverse()
	a, b, c := line(u, 0, 0), line(u, 0, 45), line(u, 0, 90)
	reg := NewRegistry()
	cls := reg.DefineClass(0, "strokes", a, b, a, c, b)
	assert.Equal(t, []glyph.Handle{a, b, c}, cls.Members(),
		"classes keep definition order and drop duplicates")
	assert.Equal(t, 3, cls.Len())
	assert.True(t, cls.Contains(b))
	assert.Equal(t, 1, cls.Index(b))
	assert.Equal(t, -1, cls.Index(glyph.Handle(99)))
}

func TestRegistryPhaseScoping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	u := glyph.NewUniverse()
	a, b := line(u, 0, 0), line(u, 1, 0)
	reg := NewRegistry()
	reg.DefineClass(0, "vowels", a)
	reg.DefineClass(1, "vowels", b)
	//
	cls0, err := reg.Class(0, "vowels")
	assert.NoError(t, err)
	cls1, err := reg.Class(1, "vowels")
	assert.NoError(t, err)
	assert.NotEqual(t, cls0.Name(), cls1.Name(),
		"same class name in different phases must not collide")
	assert.Equal(t, []glyph.Handle{a}, cls0.Members())
	assert.Equal(t, []glyph.Handle{b}, cls1.Members())
	//
	_, err = reg.Class(2, "vowels")
	assert.Error(t, err, "phase 2 never defined a vowels class")
}

func TestRegistryGlobalEscapeHatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	u := glyph.NewUniverse()
	a := line(u, 0, 0)
	reg := NewRegistry()
	reg.DefineClass(0, "_shared", a)
	for phase := glyph.Phase(0); phase < 3; phase++ {
		cls, err := reg.Class(phase, "_shared")
		assert.NoError(t, err, "underscore names are visible from every phase")
		assert.Equal(t, "_shared", cls.Name())
	}
}

func TestRegistryClassEnumeration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	u := glyph.NewUniverse()
	a := line(u, 0, 0)
	reg := NewRegistry()
	reg.DefineClass(2, "vowels", a)
	reg.DefineClass(2, "consonants", a)
	reg.DefineClass(3, "vowels", a)
	names := reg.ClassNames(2)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "p2.vowels")
	assert.Contains(t, names, "p2.consonants")
}

func TestRegistryDoubleDefinitionPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	u := glyph.NewUniverse()
	a := line(u, 0, 0)
	reg := NewRegistry()
	reg.DefineClass(0, "vowels", a)
	assert.Panics(t, func() { reg.DefineClass(0, "vowels", a) })
}

func TestRuleInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	assert.Panics(t, func() {
		NewLookup(&Rule{Input: []Element{Cls("x")}, Output: []Element{Cls("y")}, Chained: []string{"z"}})
	}, "a rule cannot both substitute and chain")
	assert.Panics(t, func() {
		NewLookup(&Rule{Output: []Element{Cls("y")}})
	}, "a rule needs an input sequence")
	//
	r := Substitute([]Element{Cls("x")}, []Element{Cls("y")}).
		Between([]Element{Cls("pre")}, []Element{Cls("post")})
	assert.True(t, r.IsSubstitution())
	assert.Len(t, r.Precontext, 1)
	r2 := Chain([]Element{Cls("x")}, "helper")
	assert.False(t, r2.IsSubstitution())
}

func TestBuildContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.rules")
	defer teardown()
	//
	u := glyph.NewUniverse()
	reg := NewRegistry()
	bc := NewBuildContext(4, u, reg)
	h := bc.AddSchema(glyph.Schema{Shape: glyph.Dot{}, Size: 1})
	assert.Equal(t, glyph.Phase(4), u.Schema(h).Phase(),
		"build context stamps its phase onto new schemas")
	bc.DefineClass("dots", h)
	cls, err := reg.Class(4, "dots")
	assert.NoError(t, err)
	assert.Equal(t, "p4.dots", cls.Name())
	pl := bc.Emit(NewLookup(Substitute([]Element{Lit(h)}, []Element{Lit(h)})))
	assert.Equal(t, glyph.Phase(4), pl.Phase)
}
