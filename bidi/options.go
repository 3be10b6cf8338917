package bidi

import "golang.org/x/text/unicode/bidi"

// --- Resolver options ------------------------------------------------------

// Option configures a call to Resolve.
type Option func(c *config)

type config struct {
	mode       uint
	baseLevel  int
	attrs      GlyphAttributes // glyph attributes for mirroring
	mirrorAttr uint8           // attribute number of the mirrored glyph; 0 = no mirroring
}

const (
	optionAutoDirection      uint = 1 << 1 // determine paragraph level from the run (P2, P3)
	optionAmbiguousMirroring uint = 1 << 2 // font encodes some mirrors separately
	optionBaseReversed       uint = 1 << 3 // consumer reverses RTL runs as a whole
)

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) hasMode(m uint) bool {
	return c.mode&m > 0
}

func (c *config) setMode(m uint, b bool) {
	if b {
		c.mode |= m
	} else {
		c.mode &^= m
	}
}

func (c *config) mirroring() bool {
	return c.attrs != nil && c.mirrorAttr != 0
}

// ParagraphDirection sets the paragraph embedding level to 0 for left-to-right
// and to 1 for right-to-left text. This is the default (left-to-right)
// and switches off AutoDirection.
func ParagraphDirection(dir bidi.Direction) Option {
	return func(c *config) {
		c.baseLevel = LevelFor(dir)
		c.setMode(optionAutoDirection, false)
	}
}

// AutoDirection makes Resolve determine the paragraph embedding level from
// the first strong character of the run, see ParagraphLevel.
func AutoDirection(b bool) Option {
	return func(c *config) {
		c.setMode(optionAutoDirection, b)
	}
}

// EnvironmentDirection sets the paragraph direction from the user's locale,
// see DirectionFromEnvironment.
func EnvironmentDirection() Option {
	return ParagraphDirection(DirectionFromEnvironment())
}

// Mirroring will replace glyphs at odd levels by their mirrored counterparts,
// as recorded in glyph attribute attr of attrs. Attribute attr+1 flags glyphs
// with a separately encoded mirror (see AmbiguousMirroring).
// An attribute number of 0 switches mirroring off.
func Mirroring(attrs GlyphAttributes, attr uint8) Option {
	return func(c *config) {
		c.attrs = attrs
		c.mirrorAttr = attr
	}
}

// AmbiguousMirroring tells the resolver that the font encodes the mirrored
// form of some glyphs as separate code points. The text already contains the
// mirrored character for these glyphs if the paragraph is right-to-left, and
// they must only be mirrored if their direction differs from the paragraph's.
func AmbiguousMirroring(b bool) Option {
	return func(c *config) {
		c.setMode(optionAmbiguousMirroring, b)
	}
}

// BaseReversed prepares the visual ring for a consumer which reverses the run
// as a whole for right-to-left paragraphs. Levels are then reordered relative
// to the paragraph level. It has no effect for left-to-right paragraphs.
func BaseReversed(b bool) Option {
	return func(c *config) {
		c.setMode(optionBaseReversed, b)
	}
}
