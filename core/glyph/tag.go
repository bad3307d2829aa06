package glyph

import (
	"github.com/npillmayer/glyphsmith/core"
	"golang.org/x/text/language"
)

// --- Tag -------------------------------------------------------------------

// Tag is an array of four uint8s (length = 32 bits), used to identify a
// script or feature in the output font, e.g. script tag "Dupl".
type Tag uint32

// MakeTag creates a tag from 4 bytes.
func MakeTag(b []byte) Tag {
	ensure(len(b) == 4, "glyph tags are 4 bytes long")
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// T returns the tag for a 4-letter string. It panics for strings of
// other lengths and is intended for tag constants in code.
func T(s string) Tag {
	return MakeTag([]byte(s))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// ScriptTag validates a script code through the language subtag registry
// and returns it as a 4-byte tag. Input is an ISO 15924 code such as
// "Dupl" or "Latn".
func ScriptTag(code string) (Tag, error) {
	script, err := language.ParseScript(code)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not an ISO 15924 script code: %q", code)
	}
	return T(script.String()), nil
}
