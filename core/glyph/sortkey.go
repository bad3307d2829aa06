package glyph

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// --- Sort key --------------------------------------------------------------

// SortKey is a total order over schemas, used to pick the canonical
// representative among schemas that end up in the same final group.
// Smaller keys are preferred: earlier-phase, simpler, better-normalized,
// directly-mapped schemas win over derived scaffolding.
type SortKey struct {
	puaMapped  bool  // mapped code point lies in a private-use area
	phase      Phase
	unmapped   bool  // no mapped code point
	denormal   bool  // code-point string is not in canonical decomposed form
	noCps      bool  // no code-point sequence at all
	nCps       int
	notStock   bool  // not the out-of-the-box shape for its code point
	cps        string
}

// SortKey computes the canonical-selection key for sc.
func (sc *Schema) SortKey() SortKey {
	return SortKey{
		puaMapped: sc.IsMapped() && unicode.Is(unicode.Co, sc.CodePoint),
		phase:     sc.phase,
		unmapped:  !sc.IsMapped(),
		denormal:  len(sc.Cps) > 0 && !norm.NFD.IsNormalString(string(sc.Cps)),
		noCps:     len(sc.Cps) == 0,
		nCps:      len(sc.Cps),
		notStock:  !sc.Stock,
		cps:       string(sc.Cps),
	}
}

// Less reports whether k orders before other.
func (k SortKey) Less(other SortKey) bool {
	if k.puaMapped != other.puaMapped {
		return !k.puaMapped
	}
	if k.phase != other.phase {
		return k.phase < other.phase
	}
	if k.unmapped != other.unmapped {
		return !k.unmapped
	}
	if k.denormal != other.denormal {
		return !k.denormal
	}
	if k.noCps != other.noCps {
		return !k.noCps
	}
	if k.nCps != other.nCps {
		return k.nCps < other.nCps
	}
	if k.notStock != other.notStock {
		return !k.notStock
	}
	return k.cps < other.cps
}
