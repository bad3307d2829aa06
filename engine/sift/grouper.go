package sift

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/glyphsmith/core/glyph"
)

// --- Grouper ---------------------------------------------------------------

// GroupHandle addresses a tracked group within a Grouper. Handles are
// stable for the lifetime of the group; a deregistered group's handle is
// never reused.
type GroupHandle int

type grp struct {
	members *linkedhashset.Set
}

// A Grouper maintains a partition of the schema universe into disjoint
// groups of size ≥ 2. Singleton groups are implicit and untracked: a
// schema without a tracked group is alone in its equivalence class.
// Group membership keeps insertion order (linkedhashset), which makes
// the whole refinement deterministic across runs.
//
// The grouper trusts its caller. Tracked membership must stay consistent
// with the inverse index; violations are programmer errors and panic.
type Grouper struct {
	arena  []*grp // nil entry = deregistered group
	byItem map[glyph.Handle]GroupHandle
}

// NewGrouper creates an empty partition.
func NewGrouper() *Grouper {
	return &Grouper{byItem: make(map[glyph.Handle]GroupHandle)}
}

// Add registers a new tracked group over the given members. No member
// may already belong to a tracked group, and the group must have at
// least two members.
func (g *Grouper) Add(members []glyph.Handle) GroupHandle {
	ensure(len(members) >= 2, "tracked groups have at least 2 members")
	gh := GroupHandle(len(g.arena))
	set := linkedhashset.New()
	for _, m := range members {
		_, tracked := g.byItem[m]
		ensure(!tracked, fmt.Sprintf("schema %d already belongs to a tracked group", m))
		ensure(!set.Contains(m), fmt.Sprintf("schema %d listed twice in new group", m))
		set.Add(m)
		g.byItem[m] = gh
	}
	g.arena = append(g.arena, &grp{members: set})
	return gh
}

// Remove deregisters a group entirely. Its members become implicit
// singletons.
func (g *Grouper) Remove(gh GroupHandle) {
	group := g.arena[gh]
	ensure(group != nil, fmt.Sprintf("group %d already deregistered", gh))
	for _, m := range group.members.Values() {
		delete(g.byItem, m.(glyph.Handle))
	}
	g.arena[gh] = nil
}

// RemoveItem removes one member from its group. If the group drops to a
// single member, it is deregistered automatically and that member
// becomes an implicit singleton.
func (g *Grouper) RemoveItem(gh GroupHandle, item glyph.Handle) {
	group := g.arena[gh]
	ensure(group != nil, fmt.Sprintf("group %d already deregistered", gh))
	ensure(group.members.Contains(item),
		fmt.Sprintf("schema %d is not a member of group %d", item, gh))
	group.members.Remove(item)
	delete(g.byItem, item)
	if group.members.Size() == 1 {
		g.Remove(gh)
	}
}

// GroupOf returns the tracked group containing item, if any.
func (g *Grouper) GroupOf(item glyph.Handle) (GroupHandle, bool) {
	gh, ok := g.byItem[item]
	return gh, ok
}

// Contains reports whether item is a member of group gh.
func (g *Grouper) Contains(gh GroupHandle, item glyph.Handle) bool {
	group := g.arena[gh]
	return group != nil && group.members.Contains(item)
}

// Size returns the number of members of group gh.
func (g *Grouper) Size(gh GroupHandle) int {
	group := g.arena[gh]
	ensure(group != nil, fmt.Sprintf("group %d already deregistered", gh))
	return group.members.Size()
}

// Members returns the members of group gh in insertion order.
func (g *Grouper) Members(gh GroupHandle) []glyph.Handle {
	group := g.arena[gh]
	ensure(group != nil, fmt.Sprintf("group %d already deregistered", gh))
	members := make([]glyph.Handle, 0, group.members.Size())
	for _, m := range group.members.Values() {
		members = append(members, m.(glyph.Handle))
	}
	return members
}

// Handles returns a snapshot of all live group handles, in registration
// order. Mutations during iteration do not invalidate the snapshot, but
// callers must expect snapshot entries to have been deregistered in the
// meantime.
func (g *Grouper) Handles() []GroupHandle {
	var hs []GroupHandle
	for i, group := range g.arena {
		if group != nil {
			hs = append(hs, GroupHandle(i))
		}
	}
	return hs
}

// Alive reports whether gh is still a tracked group.
func (g *Grouper) Alive(gh GroupHandle) bool {
	return g.arena[gh] != nil
}

// --- Initial partition -----------------------------------------------------

// InitialPartition builds the coarsest partition consistent with the
// appearance fingerprint: every set of schemas with equal Group() keys
// and ≥ 2 members becomes a tracked group. Buckets keep first-seen
// order (linkedhashmap), so the partition is deterministic.
func InitialPartition(u *glyph.Universe) *Grouper {
	buckets := linkedhashmap.New()
	for _, h := range u.Handles() {
		key := u.Schema(h).Group()
		var members []glyph.Handle
		if prev, ok := buckets.Get(key); ok {
			members = prev.([]glyph.Handle)
		}
		buckets.Put(key, append(members, h))
	}
	g := NewGrouper()
	n := 0
	for _, key := range buckets.Keys() {
		v, _ := buckets.Get(key)
		members := v.([]glyph.Handle)
		if len(members) >= 2 {
			g.Add(members)
			n++
		}
	}
	tracer().Infof("initial partition: %d fingerprint groups over %d schemas", n, u.Len())
	return g
}
