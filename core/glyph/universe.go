package glyph

import (
	"fmt"
)

// --- Universe --------------------------------------------------------------

// Handle addresses a schema within a Universe. Handles are stable for
// the lifetime of the universe.
type Handle int

// noHandle marks an unset handle in side tables.
const noHandle Handle = -1

// A Universe is the arena of all schemas the phase engine has produced.
// It owns the write-once side tables for late-bound schema state:
//
//   ▪︎ the canonical redirect (merge relation; a star forest of depth ≤ 1),
//   ▪︎ observed attachment anchors, accumulated and merged on redirect,
//   ▪︎ observed script tags, accumulated and merged on redirect,
//   ▪︎ the lookalike group, set exactly once when a schema's equivalence
//     group is final.
//
// The universe is not safe for concurrent use; the whole pipeline is a
// sequential batch pass.
type Universe struct {
	schemas    []*Schema
	canon      []Handle   // noHandle = schema is its own canonical
	anchors    [][]string // observed attachment anchors per schema
	scripts    [][]Tag    // observed script tags per schema
	lookalikes [][]Handle // nil = implicit singleton {self}
}

// NewUniverse creates an empty schema universe.
func NewUniverse() *Universe {
	return &Universe{}
}

// Add registers a schema for the given pipeline phase and returns its
// handle. The proto is copied; callers must not retain pointers into it.
// A zero CodePoint is normalized to NoCodePoint, so the zero-value proto
// is unmapped and U+0000 is not a mappable code point.
// Invariant violations in the proto (marks plus anchor, malformed
// contexts) panic.
func (u *Universe) Add(phase Phase, proto Schema) Handle {
	ensure(phase >= 0, "phase indices are non-negative")
	sc := proto
	sc.checkInvariants()
	if sc.CodePoint == 0 {
		sc.CodePoint = NoCodePoint
	}
	if sc.MaximumTreeWidth == 0 {
		sc.MaximumTreeWidth = 1
	}
	sc.phase = phase
	sc.handle = Handle(len(u.schemas))
	u.schemas = append(u.schemas, &sc)
	u.canon = append(u.canon, noHandle)
	u.anchors = append(u.anchors, nil)
	u.scripts = append(u.scripts, nil)
	u.lookalikes = append(u.lookalikes, nil)
	if sc.Anchor != "" {
		u.anchors[sc.handle] = []string{sc.Anchor}
	}
	return sc.handle
}

// Len returns the number of registered schemas.
func (u *Universe) Len() int {
	return len(u.schemas)
}

// Schema returns the schema addressed by h.
func (u *Universe) Schema(h Handle) *Schema {
	return u.schemas[h]
}

// Handles returns all schema handles in registration order.
func (u *Universe) Handles() []Handle {
	hs := make([]Handle, len(u.schemas))
	for i := range hs {
		hs[i] = Handle(i)
	}
	return hs
}

// --- Canonical redirect ----------------------------------------------------

// IsRedirected reports whether h has been merged into another schema.
func (u *Universe) IsRedirected(h Handle) bool {
	return u.canon[h] != noHandle
}

// CanonicalOf returns the canonical representative of h; h itself if it
// has not been redirected.
func (u *Universe) CanonicalOf(h Handle) Handle {
	if c := u.canon[h]; c != noHandle {
		return c
	}
	return h
}

// Redirect merges schema h into canonical representative to. A schema
// may be redirected exactly once, and only to a schema that is its own
// canonical—the merge relation is a star forest, never a chain.
// Observed anchors and scripts of h migrate to the representative.
func (u *Universe) Redirect(h, to Handle) {
	ensure(h != to, "schema cannot be redirected to itself")
	ensure(u.canon[h] == noHandle,
		fmt.Sprintf("schema %d already redirected to %d", h, u.canon[h]))
	ensure(u.canon[to] == noHandle,
		fmt.Sprintf("redirect target %d is itself redirected; merge depth would exceed 1", to))
	u.canon[h] = to
	for _, a := range u.anchors[h] {
		u.AddAnchor(to, a)
	}
	for _, s := range u.scripts[h] {
		u.AddScript(to, s)
	}
	tracer().Debugf("schema %v redirected to %v", u.schemas[h], u.schemas[to])
}

// Survivors returns the handles of all schemas that are their own
// canonical representative, in registration order.
func (u *Universe) Survivors() []Handle {
	var hs []Handle
	for h := range u.schemas {
		if u.canon[h] == noHandle {
			hs = append(hs, Handle(h))
		}
	}
	return hs
}

// --- Observed anchors and scripts ------------------------------------------

// AddAnchor records that schema h has been used as a base for the given
// attachment anchor. Duplicates are ignored.
func (u *Universe) AddAnchor(h Handle, anchor string) {
	for _, a := range u.anchors[h] {
		if a == anchor {
			return
		}
	}
	u.anchors[h] = append(u.anchors[h], anchor)
}

// Anchors returns the attachment anchors observed for h, in first-seen
// order.
func (u *Universe) Anchors(h Handle) []string {
	return u.anchors[h]
}

// AddScript records that schema h participates in the given script.
// Duplicates are ignored.
func (u *Universe) AddScript(h Handle, script Tag) {
	for _, s := range u.scripts[h] {
		if s == script {
			return
		}
	}
	u.scripts[h] = append(u.scripts[h], script)
}

// Scripts returns the script tags observed for h, in first-seen order.
func (u *Universe) Scripts(h Handle) []Tag {
	return u.scripts[h]
}

// --- Lookalike groups ------------------------------------------------------

// SetLookalikes records the full equivalence group of h. It may be
// called at most once per schema; the group must contain h.
func (u *Universe) SetLookalikes(h Handle, group []Handle) {
	ensure(u.lookalikes[h] == nil, fmt.Sprintf("lookalike group of schema %d already set", h))
	found := false
	for _, m := range group {
		if m == h {
			found = true
			break
		}
	}
	ensure(found, "lookalike group must contain the schema itself")
	u.lookalikes[h] = append([]Handle(nil), group...)
}

// HasLookalikes reports whether the lookalike group of h has been set.
func (u *Universe) HasLookalikes(h Handle) bool {
	return u.lookalikes[h] != nil
}

// Lookalikes returns the equivalence group of h; the implicit singleton
// if the group was never set.
func (u *Universe) Lookalikes(h Handle) []Handle {
	if u.lookalikes[h] == nil {
		return []Handle{h}
	}
	return u.lookalikes[h]
}
