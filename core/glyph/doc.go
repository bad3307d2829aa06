/*
Package glyph implements the schema data model for a generated font.

A schema is a candidate glyph description: an abstract shape plus the
metrics, joining behavior and attachment structure that determine how the
final glyph will render and interact with layout rules. The font builder
synthesizes many more schemas than the output font needs; deciding which
of them may share one physical glyph is the job of the sifting engine
(package engine/sift), which operates on the model defined here.

Schemas are immutable once registered with a Universe. Late-bound state
(the canonical representative, observed anchors and scripts, the
lookalike group) lives in write-once side tables on the Universe,
addressed by schema handle.
*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global glyph-model tracer.
func tracer() tracing.Trace {
	return tracing.Select("glyphsmith.glyph")
}

// ensure panics when condition is false. Model invariants are programmer
// errors, not runtime-recoverable conditions.
func ensure(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
