package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/bidi"
)

const mirrorAttr = 3

// glyph 1 mirrors to glyph 101; glyph 2 mirrors to 102 and its mirror is encoded
var testAttrs = GlyphAttrFunc(func(gid GlyphID, attr uint8) uint16 {
	switch attr {
	case mirrorAttr:
		if gid == 1 || gid == 2 {
			return uint16(gid) + 100
		}
	case mirrorAttr + 1:
		if gid == 2 {
			return 1
		}
	}
	return 0
})

func TestImplicitLevels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	run := NewRunFromClasses(L, R, AN, EN)
	for i := range run.slots {
		run.SetLevel(i, 0)
	}
	run.resolveImplicit(newConfig(nil))
	assert.Equal(t, []int{0, 1, 2, 2}, run.Levels())
	run = NewRunFromClasses(L, R, AN, EN, ON, BN)
	for i := range run.slots {
		run.SetLevel(i, 1)
	}
	run.resolveImplicit(newConfig(nil))
	assert.Equal(t, []int{2, 1, 2, 2, 1, 1}, run.Levels())
}

func TestMirroring(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	run := NewRunFromClasses(R, ON, R)
	Resolve(run, Mirroring(testAttrs, mirrorAttr))
	assert.Equal(t, []int{1, 1, 1}, run.Levels())
	assert.Equal(t, GlyphID(101), run.At(1).Glyph)
	assert.Equal(t, []GlyphID{102, 101, 0}, run.Glyphs())
	//
	run = NewRunFromClasses(L, ON, L)
	Resolve(run, Mirroring(testAttrs, mirrorAttr))
	assert.Equal(t, GlyphID(1), run.At(1).Glyph)
	//
	run = NewRunFromClasses(R, ON, R)
	Resolve(run, Mirroring(testAttrs, 0))
	assert.Equal(t, GlyphID(1), run.At(1).Glyph, "attribute 0 switches mirroring off")
}

func TestAmbiguousMirroring(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// glyph 2 has an encoded mirror: in an RTL paragraph it is kept at odd levels
	run := NewRunFromClasses(R, L, ON, L)
	Resolve(run, Mirroring(testAttrs, mirrorAttr), AmbiguousMirroring(true),
		ParagraphDirection(bidi.RightToLeft))
	assert.Equal(t, 1, run.Levels()[0])
	assert.Equal(t, GlyphID(0), run.At(0).Glyph)
	assert.Equal(t, 2, run.Levels()[2])
	assert.Equal(t, GlyphID(102), run.At(2).Glyph, "even level in RTL paragraph")
	//
	run = NewRunFromClasses(L, R, ON, R)
	Resolve(run, Mirroring(testAttrs, mirrorAttr), AmbiguousMirroring(true))
	assert.Equal(t, 1, run.Levels()[2])
	assert.Equal(t, GlyphID(102), run.At(2).Glyph, "odd level in LTR paragraph")
	//
	run = NewRunFromClasses(R, R, ON, R, EN)
	Resolve(run, Mirroring(testAttrs, mirrorAttr), AmbiguousMirroring(true),
		ParagraphDirection(bidi.RightToLeft))
	assert.Equal(t, GlyphID(2), run.At(2).Glyph, "encoded mirror in RTL paragraph")
	assert.Equal(t, GlyphID(101), run.At(1).Glyph)
}

func TestMirroringFastPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	run := NewRunFromClasses(R, ON, R)
	Resolve(run, Mirroring(testAttrs, mirrorAttr), ParagraphDirection(bidi.RightToLeft))
	assert.Equal(t, []int{1, 1, 1}, run.Levels())
	assert.Equal(t, GlyphID(101), run.At(1).Glyph)
	assert.Equal(t, GlyphID(102), run.At(2).Glyph)
	assert.Equal(t, ON, run.At(1).Class, "no resolution on the fast path")
	//
	run = NewRunFromClasses(R, ON, R)
	Resolve(run, Mirroring(testAttrs, mirrorAttr), AmbiguousMirroring(true),
		ParagraphDirection(bidi.RightToLeft))
	assert.Equal(t, GlyphID(101), run.At(1).Glyph)
	assert.Equal(t, GlyphID(2), run.At(2).Glyph, "mirror of glyph 2 is encoded in the text")
}

func TestMirroringSkipsRemoved(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, c := range []Class{BN, PDF} {
		run := NewRunFromClasses(R, c, ON)
		Resolve(run, Mirroring(testAttrs, mirrorAttr), ParagraphDirection(bidi.RightToLeft))
		assert.Equal(t, GlyphID(1), run.At(1).Glyph, "%s is not mirrored", c)
		assert.Equal(t, GlyphID(102), run.At(2).Glyph)
	}
}
