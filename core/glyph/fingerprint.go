package glyph

import (
	"fmt"
	"strings"
)

// --- Fingerprint (group key) -----------------------------------------------

// Group returns the equivalence fingerprint of sc: a structural summary
// of everything that determines the rendered appearance and metrics of
// the eventual glyph. Two schemas with equal fingerprints are candidates
// for sharing one physical glyph. Equal fingerprints are necessary but
// not sufficient; sufficiency is established by sifting against the
// lookups that will consume the glyph.
//
// The fingerprint deliberately excludes code points, phase and contexts
// beyond triviality: those influence shaping behavior, not appearance,
// and behavioral differences are the sifting engine's concern.
func (sc *Schema) Group() string {
	if sc.group != "" {
		return sc.group
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]", sc.Shape.Name(), sc.Shape.GroupTerm())
	fmt.Fprintf(&b, "|%g|%s|%d", sc.Size, sc.Joining, sc.SideBearing)
	fmt.Fprintf(&b, "|%s..%s", sc.YMin, sc.YMax)
	fmt.Fprintf(&b, "|child=%t|anchor=%s|%s", sc.Child, sc.Anchor, sc.GlyphClass())
	if len(sc.Marks) > 0 {
		b.WriteString("|marks{")
		for i, m := range sc.Marks {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(m.Group())
		}
		b.WriteByte('}')
	}
	fmt.Fprintf(&b, "|%t%t%t", sc.CanLeadDoubleMarks(), sc.TakesSecant(), sc.HasTrivialContexts())
	sc.group = b.String()
	return sc.group
}
