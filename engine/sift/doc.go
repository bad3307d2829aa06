/*
Package sift implements equivalence partitioning of glyph schemas.

The font builder synthesizes one schema per desired character behavior,
which leaves the universe full of schemas that would render identically.
Sifting decides which of them may safely share one physical glyph: it
starts from the coarsest partition consistent with the appearance
fingerprint and refines it against every lookup the pipeline generated,
until no rule can tell two grouped schemas apart, which makes the final
partition a behavioral bisimulation. Two schemas only stay grouped if
every rule treats them identically and their corresponding substitution
outputs are themselves grouped.

Lookups are walked in reverse phase order. At each phase boundary the
groups are canonicalized: one schema per group survives, chosen by a
deterministic sort key, and the others are redirected to it. The merge
relation is a star forest of depth one; redirecting a schema twice is a
fatal invariant violation, as is any other inconsistency the algorithm
can detect. Sifting is an offline, single-threaded batch pass with no
partial-result contract, so nothing is recoverable by design.
*/
package sift

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global sifting tracer.
func tracer() tracing.Trace {
	return tracing.Select("glyphsmith.sift")
}

// ensure panics when condition is false.
func ensure(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
