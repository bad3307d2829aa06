package rules

import (
	"fmt"
	"strings"

	"github.com/npillmayer/glyphsmith/core/glyph"
)

// --- Rule elements ---------------------------------------------------------

// An Element is one slot of a rule sequence: either a literal schema or
// a reference to a named class.
type Element struct {
	literal glyph.Handle
	class   string
}

// Lit creates a literal schema element.
func Lit(h glyph.Handle) Element {
	return Element{literal: h, class: ""}
}

// Cls creates a class-reference element. The name is resolved against
// the rule's phase when the rule is processed.
func Cls(name string) Element {
	ensure(name != "", "class reference needs a name")
	return Element{literal: -1, class: name}
}

// IsLiteral reports whether e is a literal schema element.
func (e Element) IsLiteral() bool {
	return e.class == ""
}

// Literal returns the schema handle of a literal element.
func (e Element) Literal() glyph.Handle {
	ensure(e.IsLiteral(), "element is a class reference, not a literal")
	return e.literal
}

// ClassName returns the referenced class name of a class element.
func (e Element) ClassName() string {
	ensure(!e.IsLiteral(), "element is a literal, not a class reference")
	return e.class
}

func (e Element) String() string {
	if e.IsLiteral() {
		return fmt.Sprintf("#%d", e.literal)
	}
	return "@" + e.class
}

// --- Rules -----------------------------------------------------------------

// A Rule is one contextual substitution statement: an input sequence,
// optional preceding and following context sequences, and either an
// explicit output sequence or a list of referenced named lookups—never
// both.
type Rule struct {
	Precontext  []Element
	Input       []Element
	Postcontext []Element
	Output      []Element // substitution outputs; nil for chained rules
	Chained     []string  // referenced named lookups; nil for substitutions
}

// Substitute creates a substitution rule mapping input to output.
func Substitute(input, output []Element) *Rule {
	return &Rule{Input: input, Output: output}
}

// Chain creates a chained rule referencing named lookups.
func Chain(input []Element, lookups ...string) *Rule {
	return &Rule{Input: input, Chained: lookups}
}

// Between constrains the rule to the given preceding and following
// context sequences and returns the rule for chaining calls.
func (r *Rule) Between(pre, post []Element) *Rule {
	r.Precontext = pre
	r.Postcontext = post
	return r
}

// IsSubstitution reports whether r declares explicit outputs.
func (r *Rule) IsSubstitution() bool {
	return r.Chained == nil
}

// checkInvariants validates a rule before it enters a lookup.
func (r *Rule) checkInvariants() {
	ensure(len(r.Input) > 0, "rule needs an input sequence")
	ensure(r.Output == nil || r.Chained == nil,
		"rule cannot both substitute and chain to named lookups")
}

func (r *Rule) String() string {
	var b strings.Builder
	seq := func(part []Element) string {
		strs := make([]string, len(part))
		for i, e := range part {
			strs[i] = e.String()
		}
		return strings.Join(strs, " ")
	}
	if len(r.Precontext) > 0 {
		fmt.Fprintf(&b, "%s | ", seq(r.Precontext))
	}
	b.WriteString(seq(r.Input))
	if len(r.Postcontext) > 0 {
		fmt.Fprintf(&b, " | %s", seq(r.Postcontext))
	}
	if r.IsSubstitution() {
		fmt.Fprintf(&b, " ⇒ %s", seq(r.Output))
	} else {
		fmt.Fprintf(&b, " ⇒ chain %s", strings.Join(r.Chained, ","))
	}
	return b.String()
}

// --- Lookups ---------------------------------------------------------------

// A Lookup is an ordered sequence of rules from one pipeline phase,
// analogous to an OpenType GSUB lookup.
type Lookup struct {
	Rules []*Rule
}

// NewLookup creates a lookup over the given rules.
func NewLookup(rules ...*Rule) *Lookup {
	for _, r := range rules {
		r.checkInvariants()
	}
	return &Lookup{Rules: rules}
}

// PhasedLookup pairs a lookup with the phase that generated it. The
// sifting engine walks phased lookups in reverse phase order.
type PhasedLookup struct {
	Phase  glyph.Phase
	Lookup *Lookup
}
