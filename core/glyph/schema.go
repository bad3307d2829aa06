package glyph

import (
	"fmt"
	"strings"

	"github.com/npillmayer/glyphsmith/core/option"
	"golang.org/x/image/math/fixed"
)

// --- Joining types ---------------------------------------------------------

// JoiningType describes how a schema connects to its neighbors.
type JoiningType int

const (
	Joining    JoiningType = iota // joins neighbors at a fixed orientation
	Orienting                     // joins neighbors, rotating to fit their contexts
	NonJoining                    // stands alone
)

func (jt JoiningType) String() string {
	switch jt {
	case Joining:
		return "Joining"
	case Orienting:
		return "Orienting"
	case NonJoining:
		return "NonJoining"
	}
	return fmt.Sprintf("JoiningType(%d)", int(jt))
}

// --- Glyph classes ---------------------------------------------------------

// GlyphClassEnum lists the glyph classes of the output font, mirroring
// the OpenType GDEF glyph class definitions.
type GlyphClassEnum int

const (
	BaseGlyph     GlyphClassEnum = iota // single character, spacing glyph
	LigatureGlyph                       // multiple character, spacing glyph
	MarkGlyph                           // non-spacing combining glyph
)

func (gc GlyphClassEnum) String() string {
	switch gc {
	case BaseGlyph:
		return "base"
	case LigatureGlyph:
		return "ligature"
	case MarkGlyph:
		return "mark"
	}
	return fmt.Sprintf("GlyphClass(%d)", int(gc))
}

// --- Phases ----------------------------------------------------------------

// Phase identifies the pipeline stage that produced a schema or a
// lookup. Phase indices are assigned monotonically by the phase engine
// and are comparable; earlier phases have smaller indices.
type Phase int

// BeforeAllPhases is a sentinel boundary below every real phase, used
// for the final canonicalization pass.
const BeforeAllPhases Phase = -1

// --- Schema ----------------------------------------------------------------

// NoCodePoint marks a schema without a mapped code point.
const NoCodePoint rune = -1

// A Schema describes a candidate glyph prior to deduplication. Schemas
// are immutable once registered with a Universe; the late-bound fields a
// schema acquires during sifting (canonical representative, observed
// anchors and scripts, lookalike group) live in side tables on the
// Universe.
type Schema struct {
	CodePoint   rune        // mapped code point, or NoCodePoint; the zero value reads as unmapped, so U+0000 cannot be mapped
	Shape       Shape       // abstract letterform
	Size        float64     // size scalar applied to the letterform
	Joining     JoiningType // how the glyph connects to neighbors
	SideBearing fixed.Int26_6
	YMin        option.FixedT // lower vertical bound, if constrained
	YMax        option.FixedT // upper vertical bound, if constrained
	Child       bool          // glyph is a dependent part of a parent tree
	Marks       []*Schema     // attached marks, in attachment order
	Anchor      string        // attachment anchor name; "" for none
	Entry       Context
	Exit        Context

	DiphthongStart bool   // glyph opens a ligated diphthong
	DiphthongEnd   bool   // glyph closes a ligated diphthong
	Cps            []rune // code-point sequence; may differ from CodePoint for derived schemas

	Encirclable      bool
	ShadingAllowed   bool
	MightBeChild     bool
	MaximumTreeWidth int
	OverrideIgnored  bool
	Stock            bool // unmodified rendition of its mapped code point

	phase  Phase  // stamped by Universe.Add
	handle Handle // stamped by Universe.Add
	group  string // fingerprint cache
}

// Phase returns the index of the pipeline stage that produced sc.
func (sc *Schema) Phase() Phase {
	return sc.phase
}

// Handle returns sc's handle within its universe. Valid only after
// registration.
func (sc *Schema) Handle() Handle {
	return sc.handle
}

// IsMapped reports whether sc maps a code point directly.
func (sc *Schema) IsMapped() bool {
	return sc.CodePoint != NoCodePoint
}

// GlyphClass derives the GDEF glyph class of sc from its attachment
// structure and code-point sequence.
func (sc *Schema) GlyphClass() GlyphClassEnum {
	if sc.Anchor != "" {
		return MarkGlyph
	}
	if len(sc.Cps) > 1 {
		return LigatureGlyph
	}
	return BaseGlyph
}

// CanLeadDoubleMarks reports whether sc can carry a stack of two marks.
func (sc *Schema) CanLeadDoubleMarks() bool {
	return sc.GlyphClass() == BaseGlyph && sc.MaximumTreeWidth >= 2
}

// TakesSecant reports whether a secant stroke may cross sc.
func (sc *Schema) TakesSecant() bool {
	return sc.Joining == Joining && !sc.Child && sc.Anchor == ""
}

// HasTrivialContexts reports whether both entry and exit contexts of sc
// are neutral.
func (sc *Schema) HasTrivialContexts() bool {
	return sc.Entry.IsTrivial() && sc.Exit.IsTrivial()
}

func (sc *Schema) String() string {
	var b strings.Builder
	b.WriteString(sc.Shape.Name())
	if sc.IsMapped() {
		fmt.Fprintf(&b, "/U+%04X", sc.CodePoint)
	}
	fmt.Fprintf(&b, "@p%d", sc.phase)
	return b.String()
}

// checkInvariants validates a schema proto before registration.
func (sc *Schema) checkInvariants() {
	ensure(sc.Shape != nil, "schema needs a shape")
	ensure(len(sc.Marks) == 0 || sc.Anchor == "",
		"attached marks and an attachment anchor are mutually exclusive")
	ensure(sc.MaximumTreeWidth >= 0, "maximum tree width cannot be negative")
	sc.Entry = mustBeWellFormed(sc.Entry)
	sc.Exit = mustBeWellFormed(sc.Exit)
}

func mustBeWellFormed(c Context) Context {
	ensure(!c.Flags.IgnorableForTopography || !c.Clockwise.IsNone(),
		"topography-ignorable context requires a known arc direction")
	return c
}
