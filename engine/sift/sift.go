package sift

import (
	"fmt"
	"sort"

	"github.com/npillmayer/glyphsmith/core/glyph"
	"github.com/npillmayer/glyphsmith/core/rules"
)

// --- Sifter ----------------------------------------------------------------

// A Sifter refines the fingerprint partition of a schema universe
// against the lookups the pipeline generated, then canonicalizes each
// surviving group. Create one with New, feed it every phased lookup in
// one Run call, then read the result off the universe (Survivors,
// CanonicalOf, Lookalikes).
type Sifter struct {
	univ    *glyph.Universe
	reg     *rules.Registry
	grouper *Grouper

	// intersection cache: group handle × qualified class name → members
	// of the group that are in the class, in class definition order.
	// Entries for a group are dropped whenever that group is mutated;
	// a stale entry would silently corrupt the refinement.
	cache map[GroupHandle]map[string][]glyph.Handle

	// named lookups currently being sifted, for cycle detection
	inflight map[string]bool
}

// New creates a sifter over the universe, starting from the coarsest
// partition consistent with the appearance fingerprints.
func New(u *glyph.Universe, reg *rules.Registry) *Sifter {
	return &Sifter{
		univ:     u,
		reg:      reg,
		grouper:  InitialPartition(u),
		cache:    make(map[GroupHandle]map[string][]glyph.Handle),
		inflight: make(map[string]bool),
	}
}

// Grouper exposes the partition state, mainly for inspection and tests.
func (s *Sifter) Grouper() *Grouper {
	return s.grouper
}

// Run refines the partition against all lookups, walking phases from the
// most recently generated to the earliest, and canonicalizes at every
// transition between phase blocks. Groups remaining after the earliest
// block are left to a final pass with a sentinel boundary below all
// phases, where the survivor is chosen by sort key alone.
func (s *Sifter) Run(lookups []rules.PhasedLookup) {
	ordered := append([]rules.PhasedLookup(nil), lookups...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Phase > ordered[j].Phase
	})
	for i := 0; i < len(ordered); {
		phase := ordered[i].Phase
		for i < len(ordered) && ordered[i].Phase == phase {
			s.siftLookup(phase, ordered[i].Lookup)
			i++
		}
		if i < len(ordered) {
			s.canonicalize(phase)
		}
	}
	s.canonicalize(glyph.BeforeAllPhases)
	tracer().Infof("sifting done: %d of %d schemas survive",
		len(s.univ.Survivors()), s.univ.Len())
}

// --- Refinement ------------------------------------------------------------

// siftLookup refines the partition against every rule of one lookup.
// Context parts are scanned before the input part: input-side splitting
// is the only side that triggers output-consistency propagation, and it
// must see the stabilized effect of context-side splits.
func (s *Sifter) siftLookup(phase glyph.Phase, lookup *rules.Lookup) {
	for _, rule := range lookup.Rules {
		s.siftPart(phase, rule, rule.Precontext, false)
		s.siftPart(phase, rule, rule.Postcontext, false)
		s.siftPart(phase, rule, rule.Input, true)
	}
}

// siftPart scans one part of a rule left to right and splits every
// tracked group the part can observe as non-uniform.
func (s *Sifter) siftPart(phase glyph.Phase, rule *rules.Rule, part []rules.Element, isInput bool) {
	for pos, elem := range part {
		if elem.IsLiteral() {
			s.peelLiteral(elem.Literal())
			continue
		}
		cls, err := s.reg.Class(phase, elem.ClassName())
		if err != nil {
			panic(err.Error())
		}
		s.siftClass(phase, rule, pos, cls, isInput)
	}
	if isInput && !rule.IsSubstitution() {
		// Chained rules delegate their outputs to named lookups; sift
		// those right away so output-consistency applies transitively.
		for _, name := range rule.Chained {
			s.siftNamed(phase, name)
		}
	}
}

// peelLiteral singles a directly referenced schema out of its group of
// lookalikes: the rule distinguishes “this exact schema” from its peers.
func (s *Sifter) peelLiteral(h glyph.Handle) {
	if gh, ok := s.grouper.GroupOf(h); ok {
		s.grouper.RemoveItem(gh, h)
		s.invalidate(gh)
		tracer().Debugf("schema %v peeled out of group %d by literal rule reference",
			s.univ.Schema(h), gh)
	}
}

// siftClass intersects every tracked group against one class reference.
func (s *Sifter) siftClass(phase glyph.Phase, rule *rules.Rule, pos int, cls *rules.Class, isInput bool) {
	for _, gh := range s.grouper.Handles() {
		if !s.grouper.Alive(gh) {
			continue
		}
		inter := s.intersection(gh, cls)
		overlap := len(inter)
		if overlap == 0 {
			continue
		}
		subject := gh
		if overlap < s.grouper.Size(gh) {
			// proper non-empty subset: the class tells the group apart
			for _, m := range inter {
				s.grouper.RemoveItem(gh, m)
			}
			s.invalidate(gh)
			if overlap == 1 {
				continue // peeled member is an implicit singleton now
			}
			subject = s.grouper.Add(inter)
			tracer().Debugf("group %d split by class %s: %d members moved to group %d",
				gh, cls.Name(), overlap, subject)
		}
		if isInput && overlap >= 2 && rule.IsSubstitution() {
			s.splitByOutputs(phase, rule, pos, cls, subject, inter)
		}
	}
}

// splitByOutputs enforces output consistency: members of a group that
// this substitution maps to outputs in different groups cannot stay
// merged, or the merge would not survive the substitution.
func (s *Sifter) splitByOutputs(phase glyph.Phase, rule *rules.Rule, pos int,
	cls *rules.Class, subject GroupHandle, members []glyph.Handle) {
	//
	if len(rule.Input) != len(rule.Output) {
		return // outputs cannot be zipped against inputs
	}
	out := rule.Output[pos]
	var outClass *rules.Class
	if !out.IsLiteral() {
		var err error
		outClass, err = s.reg.Class(phase, out.ClassName())
		if err != nil {
			panic(err.Error())
		}
		ensure(outClass.Len() == cls.Len(),
			fmt.Sprintf("output class %s does not zip against input class %s",
				outClass.Name(), cls.Name()))
	}
	// bucket members by the group identity of their corresponding output
	type bucketKey struct {
		grouped bool
		group   GroupHandle
		schema  glyph.Handle
	}
	var order []bucketKey
	buckets := make(map[bucketKey][]glyph.Handle)
	for _, m := range members {
		var o glyph.Handle
		if out.IsLiteral() {
			o = out.Literal()
		} else {
			o = outClass.Members()[cls.Index(m)]
		}
		var key bucketKey
		if og, ok := s.grouper.GroupOf(o); ok {
			key = bucketKey{grouped: true, group: og}
		} else {
			key = bucketKey{schema: o}
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], m)
	}
	if len(order) <= 1 {
		return // outputs are mutually indistinguishable
	}
	s.grouper.Remove(subject)
	s.invalidate(subject)
	for _, key := range order {
		if bucket := buckets[key]; len(bucket) >= 2 {
			ngh := s.grouper.Add(bucket)
			tracer().Debugf("group %d re-bucketed by outputs of rule %v: %d members into group %d",
				subject, rule, len(bucket), ngh)
		}
	}
}

// siftNamed recursively sifts a named lookup referenced by a chained
// rule, with the same groups and the same cache. Unresolvable or cyclic
// references are fatal.
func (s *Sifter) siftNamed(phase glyph.Phase, name string) {
	qname := rules.QualifyName(phase, name)
	ensure(!s.inflight[qname], fmt.Sprintf("cyclic reference to named lookup %q", qname))
	lookup, err := s.reg.NamedLookup(phase, name)
	if err != nil {
		panic(err.Error())
	}
	s.inflight[qname] = true
	s.siftLookup(phase, lookup)
	delete(s.inflight, qname)
}

// --- Intersection cache ----------------------------------------------------

// intersection returns the members of group gh that belong to cls, in
// class definition order. Results are cached per group and class, since
// consecutive rules tend to reuse the same classes.
func (s *Sifter) intersection(gh GroupHandle, cls *rules.Class) []glyph.Handle {
	if perGroup, ok := s.cache[gh]; ok {
		if inter, ok := perGroup[cls.Name()]; ok {
			return inter
		}
	}
	var inter []glyph.Handle
	for _, m := range cls.Members() {
		if s.grouper.Contains(gh, m) {
			inter = append(inter, m)
		}
	}
	if s.cache[gh] == nil {
		s.cache[gh] = make(map[string][]glyph.Handle)
	}
	s.cache[gh][cls.Name()] = inter
	return inter
}

// invalidate drops all cached intersections of a group. Must be called
// on every structural mutation of the group.
func (s *Sifter) invalidate(gh GroupHandle) {
	delete(s.cache, gh)
}
