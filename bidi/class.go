package bidi

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// Class is a bidi character class, as attached to a glyph slot.
//
// The numbering differs from package golang.org/x/text/unicode/bidi: the
// resolvers' state tables depend on it, and neutrals have to be zero.
// Use FromUnicode to convert.
//
// Besides the class proper, a Class value may carry WSFlag, which survives
// resolution and marks slots which started out as whitespace (or isolate
// formatting characters), after the class itself has been resolved to a
// strong type.
type Class uint8

// Bidi classes, partly as defined in UAX#9.
const (
	ON  Class = iota // other neutrals (default)
	L                // left-to-right, strong
	R                // right-to-left, strong
	AL               // Arabic letter, right-to-left, strong
	EN               // European number, weak
	ES               // European separator, weak
	ET               // European number terminator, weak
	AN               // Arabic number, weak
	CS               // common number separator, weak
	WS               // whitespace, neutral
	BN               // boundary neutral; retired formatting codes end up here
	LRO              // left-to-right override
	RLO              // right-to-left override
	LRE              // left-to-right embedding
	RLE              // right-to-left embedding
	PDF              // pop directional format
	NSM              // non-spacing mark
	LRI              // left-to-right isolate
	RLI              // right-to-left isolate
	FSI              // first strong isolate
	PDI              // pop directional isolate
	B                // paragraph separator
	S                // segment separator
)

// NumClasses is the number of bidi classes, excluding flags.
const NumClasses = int(S) + 1

// WSFlag marks a class as originating from whitespace.
const WSFlag Class = 1 << 7

// Base returns the class without flags.
func (c Class) Base() Class {
	return c &^ WSFlag
}

// IsWhitespace is true for class WS and for any class carrying WSFlag.
func (c Class) IsWhitespace() bool {
	return c == WS || c&WSFlag != 0
}

// isIsolateControl is true for LRI, RLI, FSI and PDI.
func (c Class) isIsolateControl() bool {
	return c >= LRI && c <= PDI
}

// bit returns the class as a member of a classSet.
func (c Class) bit() classSet {
	return 1 << c.Base()
}

const classname = "ONLRALENESETANCSWSBNLRORLOLRERLEPDFNSMLRIRLIFSIPDIBS"

var classindex = [...]uint8{0, 2, 3, 4, 6, 8, 10, 12, 14, 16, 18, 20, 23, 26, 29, 32, 35, 38, 41, 44, 47, 50, 51, 52}

func (c Class) String() string {
	b := c.Base()
	if int(b) >= NumClasses {
		return "bidi_class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	s := classname[classindex[b]:classindex[b+1]]
	if c&WSFlag != 0 {
		return s + "+ws"
	}
	return s
}

// ClassFromString returns the class for a class name as used in the UCD data
// files.
func ClassFromString(name string) (Class, bool) {
	for c := ON; int(c) < NumClasses; c++ {
		if classname[classindex[c]:classindex[c+1]] == name {
			return c, true
		}
	}
	return ON, false
}

// FromUnicode maps a Bidi_Class from package golang.org/x/text/unicode/bidi
// to a slot class.
func FromUnicode(c bidi.Class) Class {
	switch c {
	case bidi.L:
		return L
	case bidi.R:
		return R
	case bidi.AL:
		return AL
	case bidi.EN:
		return EN
	case bidi.ES:
		return ES
	case bidi.ET:
		return ET
	case bidi.AN:
		return AN
	case bidi.CS:
		return CS
	case bidi.WS:
		return WS
	case bidi.B:
		return B
	case bidi.S:
		return S
	case bidi.BN:
		return BN
	case bidi.NSM:
		return NSM
	case bidi.LRO:
		return LRO
	case bidi.RLO:
		return RLO
	case bidi.LRE:
		return LRE
	case bidi.RLE:
		return RLE
	case bidi.PDF:
		return PDF
	case bidi.LRI:
		return LRI
	case bidi.RLI:
		return RLI
	case bidi.FSI:
		return FSI
	case bidi.PDI:
		return PDI
	}
	return ON
}

// --- Class sets ------------------------------------------------------------

// classSet is a bitmask of base classes, collected while scanning a sequence.
type classSet uint32

func (cs classSet) intersects(other classSet) bool {
	return cs&other != 0
}

func setOf(classes ...Class) classSet {
	var cs classSet
	for _, c := range classes {
		cs |= c.bit()
	}
	return cs
}

// A sequence containing none of these needs no weak type resolution.
var weakClasses = setOf(AL, EN, ES, ET, CS, RLO, NSM, LRI, RLI, FSI, PDI)

// A sequence containing none of these needs no neutral type resolution.
var neutralClasses = setOf(ON, ES, ET, CS, WS, LRI, RLI, FSI, PDI, B, S)

// --- Directions ------------------------------------------------------------

// direction returns the strong class corresponding to the parity of a level.
func direction(level int) Class {
	if level&1 != 0 {
		return R
	}
	return L
}

// Direction returns the text direction of an embedding level.
func Direction(level int) bidi.Direction {
	if level&1 != 0 {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}

// LevelFor returns the paragraph embedding level for a text direction.
// Anything but RightToLeft is treated as left-to-right.
func LevelFor(dir bidi.Direction) int {
	if dir == bidi.RightToLeft {
		return 1
	}
	return 0
}
