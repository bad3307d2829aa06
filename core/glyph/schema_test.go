package glyph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestFingerprintEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	a := u.Add(0, Schema{CodePoint: 'a', Shape: Line{Angle: 0}, Size: 1, Cps: []rune("a")})
	b := u.Add(1, Schema{Shape: Line{Angle: 0}, Size: 1})
	assert.Equal(t, u.Schema(a).Group(), u.Schema(b).Group(),
		"schemas differing only in code point and phase share a fingerprint")
	//
	c := u.Add(0, Schema{Shape: Line{Angle: 90}, Size: 1})
	assert.NotEqual(t, u.Schema(a).Group(), u.Schema(c).Group(),
		"different letterform angles must not share a fingerprint")
	d := u.Add(0, Schema{Shape: Line{Angle: 0}, Size: 2})
	assert.NotEqual(t, u.Schema(a).Group(), u.Schema(d).Group(),
		"different sizes must not share a fingerprint")
	e := u.Add(0, Schema{Shape: Line{Angle: 0}, Size: 1, SideBearing: fixed.I(10)})
	assert.NotEqual(t, u.Schema(a).Group(), u.Schema(e).Group(),
		"different side bearings must not share a fingerprint")
}

func TestFingerprintMarksRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	dot := Schema{Shape: Dot{}, Size: 1, Anchor: "above"}
	u.Add(0, dot)
	base1 := u.Add(0, Schema{Shape: Curve{AngleIn: 0, AngleOut: 90}, Size: 1, Marks: []*Schema{{Shape: Dot{}, Size: 1, Anchor: "above"}}})
	base2 := u.Add(0, Schema{Shape: Curve{AngleIn: 0, AngleOut: 90}, Size: 1, Marks: []*Schema{{Shape: Dot{}, Size: 2, Anchor: "above"}}})
	assert.NotEqual(t, u.Schema(base1).Group(), u.Schema(base2).Group(),
		"mark fingerprints are part of the base fingerprint")
}

func TestSortKeyOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	early := u.Add(0, Schema{CodePoint: 'a', Shape: Line{}, Size: 1, Cps: []rune("a"), Stock: true})
	late := u.Add(3, Schema{CodePoint: 'a', Shape: Line{}, Size: 1, Cps: []rune("a"), Stock: true})
	assert.True(t, u.Schema(early).SortKey().Less(u.Schema(late).SortKey()),
		"earlier phases are preferred")
	//
	pua := u.Add(0, Schema{CodePoint: 0xE042, Shape: Line{}, Size: 1, Cps: []rune{0xE042}})
	assert.True(t, u.Schema(late).SortKey().Less(u.Schema(pua).SortKey()),
		"private-use mappings lose against any phase")
	//
	unmapped := u.Add(0, Schema{Shape: Line{}, Size: 1, Cps: []rune("a")})
	assert.True(t, u.Schema(early).SortKey().Less(u.Schema(unmapped).SortKey()),
		"mapped schemas are preferred over unmapped ones")
	//
	// U+00E9 é is precomposed; its NFD form is two code points
	denormal := u.Add(0, Schema{CodePoint: 0xE9, Shape: Line{}, Size: 1, Cps: []rune{0xE9}})
	normal := u.Add(0, Schema{CodePoint: 'e', Shape: Line{}, Size: 1, Cps: []rune("e")})
	assert.True(t, u.Schema(normal).SortKey().Less(u.Schema(denormal).SortKey()),
		"canonically decomposed code-point strings are preferred")
	//
	short := u.Add(0, Schema{Shape: Line{}, Size: 1, Cps: []rune("ab")})
	long := u.Add(0, Schema{Shape: Line{}, Size: 1, Cps: []rune("abc")})
	assert.True(t, u.Schema(short).SortKey().Less(u.Schema(long).SortKey()),
		"fewer code points are preferred")
}

func TestUniverseRedirectOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	a := u.Add(0, Schema{Shape: Line{}, Size: 1})
	b := u.Add(0, Schema{Shape: Line{}, Size: 1})
	c := u.Add(0, Schema{Shape: Line{}, Size: 1})
	assert.Equal(t, a, u.CanonicalOf(a), "a fresh schema is its own canonical")
	u.Redirect(b, a)
	assert.Equal(t, a, u.CanonicalOf(b))
	assert.True(t, u.IsRedirected(b))
	assert.Panics(t, func() { u.Redirect(b, c) }, "re-redirecting is a fatal invariant violation")
	assert.Panics(t, func() { u.Redirect(c, b) }, "redirecting to a redirected schema would chain")
}

func TestUniverseAnchorsAndScriptsMergeOnRedirect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	a := u.Add(0, Schema{Shape: Line{}, Size: 1})
	b := u.Add(0, Schema{Shape: Line{}, Size: 1})
	u.AddAnchor(b, "above")
	u.AddAnchor(b, "below")
	u.AddAnchor(a, "above")
	dupl, err := ScriptTag("Dupl")
	assert.NoError(t, err)
	u.AddScript(b, dupl)
	u.Redirect(b, a)
	assert.Equal(t, []string{"above", "below"}, u.Anchors(a),
		"anchors of a redirected schema migrate to the canonical, deduplicated")
	assert.Equal(t, []Tag{dupl}, u.Scripts(a))
}

func TestUniverseLookalikesWriteOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	a := u.Add(0, Schema{Shape: Line{}, Size: 1})
	b := u.Add(0, Schema{Shape: Line{}, Size: 1})
	assert.Equal(t, []Handle{a}, u.Lookalikes(a), "lookalikes default to the implicit singleton")
	u.SetLookalikes(a, []Handle{a, b})
	assert.Equal(t, []Handle{a, b}, u.Lookalikes(a))
	assert.Panics(t, func() { u.SetLookalikes(a, []Handle{a}) }, "lookalike group is write-once")
	assert.Panics(t, func() { u.SetLookalikes(b, []Handle{a}) }, "lookalike group must contain the schema")
}

func TestSchemaMarksAnchorExclusive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	assert.Panics(t, func() {
		u.Add(0, Schema{Shape: Dot{}, Size: 1, Anchor: "above",
			Marks: []*Schema{{Shape: Dot{}, Size: 1}}})
	}, "attached marks and an anchor are mutually exclusive")
}

func TestScriptTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	tag, err := ScriptTag("Latn")
	assert.NoError(t, err)
	assert.Equal(t, "Latn", tag.String())
	_, err = ScriptTag("not-a-script")
	assert.Error(t, err)
}

func TestCodePointZeroValueReadsUnmapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	h := u.Add(0, Schema{Shape: Line{}, Size: 1})
	assert.False(t, u.Schema(h).IsMapped(),
		"a proto without a code point registers as unmapped")
	assert.Equal(t, NoCodePoint, u.Schema(h).CodePoint)
}

func TestGlyphClassDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.glyph")
	defer teardown()
	//
	u := NewUniverse()
	base := u.Add(0, Schema{CodePoint: 'a', Shape: Line{}, Size: 1, Cps: []rune("a")})
	lig := u.Add(0, Schema{Shape: Line{}, Size: 1, Cps: []rune("ab")})
	mark := u.Add(0, Schema{Shape: Dot{}, Size: 1, Anchor: "above"})
	assert.Equal(t, BaseGlyph, u.Schema(base).GlyphClass())
	assert.Equal(t, LigatureGlyph, u.Schema(lig).GlyphClass())
	assert.Equal(t, MarkGlyph, u.Schema(mark).GlyphClass())
}
