package rules

import (
	"github.com/npillmayer/glyphsmith/core/glyph"
)

// --- Phase context ---------------------------------------------------------

// A BuildContext ties schema and rule construction to one pipeline
// phase. The phase engine creates one per phase and threads it through
// its generation code, instead of tracking a mutable “current phase”
// globally.
type BuildContext struct {
	phase    glyph.Phase
	universe *glyph.Universe
	registry *Registry
}

// NewBuildContext creates a construction context for the given phase.
func NewBuildContext(phase glyph.Phase, u *glyph.Universe, r *Registry) BuildContext {
	ensure(phase >= 0, "phase indices are non-negative")
	return BuildContext{phase: phase, universe: u, registry: r}
}

// Phase returns the pipeline phase this context builds for.
func (bc BuildContext) Phase() glyph.Phase {
	return bc.phase
}

// AddSchema registers a schema proto for this phase.
func (bc BuildContext) AddSchema(proto glyph.Schema) glyph.Handle {
	return bc.universe.Add(bc.phase, proto)
}

// DefineClass registers a class scoped to this phase.
func (bc BuildContext) DefineClass(name string, members ...glyph.Handle) *Class {
	return bc.registry.DefineClass(bc.phase, name, members...)
}

// DefineLookup registers a named lookup scoped to this phase.
func (bc BuildContext) DefineLookup(name string, lookup *Lookup) {
	bc.registry.DefineLookup(bc.phase, name, lookup)
}

// Emit pairs a lookup with this phase for the sifting engine.
func (bc BuildContext) Emit(lookup *Lookup) PhasedLookup {
	return PhasedLookup{Phase: bc.phase, Lookup: lookup}
}
