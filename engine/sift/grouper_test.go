package sift

import (
	"testing"

	"github.com/npillmayer/glyphsmith/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGrouperAddAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.sift")
	defer teardown()
	//
	g := NewGrouper()
	gh := g.Add([]glyph.Handle{1, 2, 3})
	assert.Equal(t, 3, g.Size(gh))
	assert.Equal(t, []glyph.Handle{1, 2, 3}, g.Members(gh))
	got, ok := g.GroupOf(2)
	assert.True(t, ok)
	assert.Equal(t, gh, got)
	_, ok = g.GroupOf(7)
	assert.False(t, ok, "schema 7 is an implicit singleton")
}

func TestGrouperSizeFloor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.sift")
	defer teardown()
	//
	g := NewGrouper()
	gh := g.Add([]glyph.Handle{1, 2, 3})
	g.RemoveItem(gh, 1)
	assert.True(t, g.Alive(gh))
	assert.Equal(t, 2, g.Size(gh))
	g.RemoveItem(gh, 2)
	assert.False(t, g.Alive(gh),
		"a group dropping to one member deregisters automatically")
	_, ok := g.GroupOf(3)
	assert.False(t, ok, "the last member becomes an implicit singleton")
}

func TestGrouperInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.sift")
	defer teardown()
	//
	g := NewGrouper()
	g.Add([]glyph.Handle{1, 2})
	assert.Panics(t, func() { g.Add([]glyph.Handle{2, 3}) },
		"a schema cannot belong to two tracked groups")
	assert.Panics(t, func() { g.Add([]glyph.Handle{4}) },
		"tracked groups have at least two members")
	gh := g.Add([]glyph.Handle{5, 6})
	g.Remove(gh)
	assert.Panics(t, func() { g.Members(gh) })
	_, ok := g.GroupOf(5)
	assert.False(t, ok)
}

func TestInitialPartition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsmith.sift")
	defer teardown()
	//
	u := glyph.NewUniverse()
	a := u.Add(0, glyph.Schema{Shape: glyph.Line{Angle: 0}, Size: 1})
	b := u.Add(0, glyph.Schema{Shape: glyph.Line{Angle: 0}, Size: 1})
	lone := u.Add(0, glyph.Schema{Shape: glyph.Line{Angle: 90}, Size: 1})
	g := InitialPartition(u)
	gh, ok := g.GroupOf(a)
	assert.True(t, ok, "equal fingerprints form a tracked group")
	assert.Equal(t, []glyph.Handle{a, b}, g.Members(gh))
	_, ok = g.GroupOf(lone)
	assert.False(t, ok, "a unique fingerprint stays an implicit singleton")
}
