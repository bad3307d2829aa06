package sift

import (
	"sort"

	"github.com/npillmayer/glyphsmith/core/glyph"
)

// --- Canonicalization ------------------------------------------------------

// canonicalize assigns canonical representatives at a phase boundary.
// Each group is sorted by sort key; the survivor is the first member
// generated before the boundary, or the group's overall first member if
// none is. Every other member generated at or after the boundary is
// redirected to the survivor and leaves its group; the schema is
// resolved and plays no further part in refinement.
//
// This is the only place canonical pointers are assigned. A schema is
// redirected at most once (star forest, depth ≤ 1); Universe.Redirect
// enforces that.
func (s *Sifter) canonicalize(boundary glyph.Phase) {
	u := s.univ
	redirected := 0
	for _, gh := range s.grouper.Handles() {
		members := s.grouper.Members(gh)
		sort.SliceStable(members, func(i, j int) bool {
			return u.Schema(members[i]).SortKey().Less(u.Schema(members[j]).SortKey())
		})
		canon := members[0]
		for _, m := range members {
			if u.Schema(m).Phase() < boundary {
				canon = m
				break
			}
		}
		snapshot := append([]glyph.Handle(nil), members...)
		mutated := false
		for _, m := range members {
			if m == canon || u.Schema(m).Phase() < boundary {
				continue
			}
			if !u.HasLookalikes(m) {
				u.SetLookalikes(m, snapshot)
			}
			u.Redirect(m, canon)
			s.grouper.RemoveItem(gh, m)
			mutated = true
			redirected++
		}
		if mutated {
			s.invalidate(gh)
		}
		// The survivor records the snapshot too, once its group dissolves.
		dissolved := boundary == glyph.BeforeAllPhases || !s.grouper.Alive(gh)
		if dissolved && !u.HasLookalikes(canon) {
			u.SetLookalikes(canon, snapshot)
		}
	}
	tracer().Infof("canonicalization at phase boundary %d: %d schemas redirected",
		boundary, redirected)
}
