/*
Package emit defines the contract between the sifting core and the glyph
emitter, the downstream collaborator that turns surviving schemas into
physical glyphs.

The emitter consumes the schema universe filtered to survivors in a
deterministic order, draws exactly one outline per survivor and owns
anchor placement, feature-file emission and table compilation. This
package provides the plumbing: the survivor order, glyph naming, and the
Outliner/Sink interfaces, speaking Hobby-spline paths the way the rest
of the graphics backend does.
*/
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/arithm/jhobby"
	"github.com/npillmayer/glyphsmith/core"
	"github.com/npillmayer/glyphsmith/core/glyph"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"
)

// tracer traces to a global emitter tracer.
func tracer() tracing.Trace {
	return tracing.Select("glyphsmith.emit")
}

// --- Contract --------------------------------------------------------------

// An Outline is the drawn letterform of one schema: a Hobby-spline path
// with its computed control points, plus the horizontal advance of the
// resulting glyph in font units.
type Outline struct {
	Path     jhobby.HobbyPath
	Controls jhobby.SplineControls
	Advance  fixed.Int26_6
}

// An Outliner draws the outline for one surviving schema. Outline
// generation is procedural and lives outside this module; implementors
// receive every schema exactly once.
type Outliner interface {
	Outline(sc *glyph.Schema) (Outline, error)
}

// A Glyph is one physical glyph of the output font, handed to the Sink.
type Glyph struct {
	Name    string
	Schema  *glyph.Schema
	Outline Outline
	Anchors []string    // observed attachment anchors, merged over the lookalike group
	Scripts []glyph.Tag // observed script tags, merged over the lookalike group
}

// A Sink consumes finished glyphs, typically a font-container assembler.
type Sink interface {
	Glyph(g Glyph) error
}

// --- Survivor order --------------------------------------------------------

// Survivors returns the handles of all canonical schemas in a
// deterministic order: sort key first, registration order as the
// tie-break.
func Survivors(u *glyph.Universe) []glyph.Handle {
	hs := u.Survivors()
	sort.SliceStable(hs, func(i, j int) bool {
		ki, kj := u.Schema(hs[i]).SortKey(), u.Schema(hs[j]).SortKey()
		if ki.Less(kj) {
			return true
		}
		if kj.Less(ki) {
			return false
		}
		return hs[i] < hs[j]
	})
	return hs
}

// --- Glyph naming ----------------------------------------------------------

// GlyphName derives a production glyph name for a schema: "uni0045" for
// mapped glyphs, underscore-joined for ligature sequences, and a
// shape-derived private name for unmapped scaffolding glyphs.
func GlyphName(sc *glyph.Schema) string {
	cps := sc.Cps
	if len(cps) == 0 && sc.IsMapped() {
		cps = []rune{sc.CodePoint}
	}
	if len(cps) == 0 {
		return fmt.Sprintf("%s.%d", sc.Shape.Name(), sc.Handle())
	}
	parts := make([]string, len(cps))
	for i, cp := range cps {
		if cp > 0xFFFF {
			parts[i] = fmt.Sprintf("u%X", cp)
		} else {
			parts[i] = fmt.Sprintf("uni%04X", cp)
		}
	}
	return strings.Join(parts, "_")
}

// --- Emission --------------------------------------------------------------

// Emit walks the survivors of u in deterministic order, draws each one
// through the outliner and hands the finished glyphs to the sink.
func Emit(u *glyph.Universe, outliner Outliner, sink Sink) error {
	survivors := Survivors(u)
	tracer().Infof("emitting %d glyphs", len(survivors))
	for _, h := range survivors {
		sc := u.Schema(h)
		outline, err := outliner.Outline(sc)
		if err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot outline glyph for %v", sc)
		}
		g := Glyph{
			Name:    GlyphName(sc),
			Schema:  sc,
			Outline: outline,
			Anchors: u.Anchors(h),
			Scripts: u.Scripts(h),
		}
		if err := sink.Glyph(g); err != nil {
			return core.WrapError(err, core.EINTERNAL, "glyph sink rejected %s", g.Name)
		}
	}
	return nil
}
