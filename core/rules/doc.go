/*
Package rules implements the rule model the sifting engine consumes.

The phase engine emits, per pipeline phase, an ordered sequence of
lookups. A lookup is an ordered list of rules; a rule matches an input
sequence of schemas, optionally constrained by preceding and following
context sequences, and either substitutes an output sequence or chains
to named lookups. Rules reference schemas directly or through named
classes.

Classes and named lookups are registered with a Registry. Their names
are scoped to the phase that defined them, so that phases cannot
accidentally collide; names beginning with an underscore are global and
shared across phases.

The sifting engine consumes all of this read-only: once handed over for
a phase, classes and lookups must not be mutated.
*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global rule-model tracer.
func tracer() tracing.Trace {
	return tracing.Select("glyphsmith.rules")
}

// ensure panics when condition is false.
func ensure(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
