package rules

import (
	"fmt"
	"strings"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/glyphsmith/core"
	"github.com/npillmayer/glyphsmith/core/glyph"
)

// --- Classes ---------------------------------------------------------------

// A Class is a named, ordered, duplicate-free collection of schemas,
// usable inside rules. Member order is definition order; it matters,
// because substitution rules zip input class members against output
// class members positionally.
type Class struct {
	name    string // qualified name, see Registry
	order   []glyph.Handle
	members *linkedhashset.Set
}

func newClass(name string, members []glyph.Handle) *Class {
	cls := &Class{name: name, members: linkedhashset.New()}
	for _, m := range members {
		cls.append(m)
	}
	return cls
}

func (cls *Class) append(m glyph.Handle) {
	if cls.members.Contains(m) {
		return
	}
	cls.members.Add(m)
	cls.order = append(cls.order, m)
}

// Name returns the qualified class name.
func (cls *Class) Name() string {
	return cls.name
}

// Contains reports whether schema h is a member of cls.
func (cls *Class) Contains(h glyph.Handle) bool {
	return cls.members.Contains(h)
}

// Members returns the class members in definition order. Callers must
// not modify the returned slice.
func (cls *Class) Members() []glyph.Handle {
	return cls.order
}

// Len returns the number of members.
func (cls *Class) Len() int {
	return len(cls.order)
}

// Index returns the position of h within cls, or -1.
func (cls *Class) Index(h glyph.Handle) int {
	if !cls.members.Contains(h) {
		return -1
	}
	for i, m := range cls.order {
		if m == h {
			return i
		}
	}
	return -1
}

func (cls *Class) String() string {
	return fmt.Sprintf("@%s(%d)", cls.name, len(cls.order))
}

// --- Registry --------------------------------------------------------------

// A Registry holds the named classes and named lookups of all phases.
// Names are qualified with the defining phase ("p3.vowels"), except for
// names beginning with an underscore, which are global. The registry is
// backed by a prefix trie, so all names belonging to one phase can be
// enumerated by prefix.
type Registry struct {
	classes *trie.Trie
	lookups *trie.Trie
}

// NewRegistry creates an empty class/lookup registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: trie.New(),
		lookups: trie.New(),
	}
}

// QualifyName scopes name to the given phase. Names beginning with an
// underscore are global and returned unchanged.
func QualifyName(phase glyph.Phase, name string) string {
	if strings.HasPrefix(name, "_") {
		return name
	}
	return fmt.Sprintf("p%d.%s", phase, name)
}

// DefineClass registers a class under the phase-qualified name and
// returns it. Defining the same qualified name twice is a programmer
// error.
func (r *Registry) DefineClass(phase glyph.Phase, name string, members ...glyph.Handle) *Class {
	qname := QualifyName(phase, name)
	_, exists := r.classes.Find(qname)
	ensure(!exists, fmt.Sprintf("class %q defined twice", qname))
	cls := newClass(qname, members)
	r.classes.Add(qname, cls)
	tracer().Debugf("defined class %s", cls)
	return cls
}

// Class resolves a class reference made from the given phase: the
// phase-qualified name first, then the global name.
func (r *Registry) Class(phase glyph.Phase, name string) (*Class, error) {
	if node, ok := r.classes.Find(QualifyName(phase, name)); ok {
		return node.Meta().(*Class), nil
	}
	if node, ok := r.classes.Find(name); ok {
		return node.Meta().(*Class), nil
	}
	return nil, core.Error(core.EMISSING, "no class %q in phase %d", name, phase)
}

// ClassNames enumerates the qualified names of all classes a phase
// defined, plus nothing else.
func (r *Registry) ClassNames(phase glyph.Phase) []string {
	return r.classes.PrefixSearch(fmt.Sprintf("p%d.", phase))
}

// DefineLookup registers a named lookup under the phase-qualified name.
// Named lookups are the targets of chained rules.
func (r *Registry) DefineLookup(phase glyph.Phase, name string, lookup *Lookup) {
	qname := QualifyName(phase, name)
	_, exists := r.lookups.Find(qname)
	ensure(!exists, fmt.Sprintf("lookup %q defined twice", qname))
	r.lookups.Add(qname, lookup)
	tracer().Debugf("defined named lookup %s with %d rules", qname, len(lookup.Rules))
}

// NamedLookup resolves a lookup reference made from the given phase.
func (r *Registry) NamedLookup(phase glyph.Phase, name string) (*Lookup, error) {
	if node, ok := r.lookups.Find(QualifyName(phase, name)); ok {
		return node.Meta().(*Lookup), nil
	}
	if node, ok := r.lookups.Find(name); ok {
		return node.Meta().(*Lookup), nil
	}
	return nil, core.Error(core.EMISSING, "no lookup %q in phase %d", name, phase)
}

// LookupNames enumerates the qualified names of all named lookups a
// phase defined.
func (r *Registry) LookupNames(phase glyph.Phase) []string {
	return r.lookups.PrefixSearch(fmt.Sprintf("p%d.", phase))
}
