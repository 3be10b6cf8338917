package bidi

// GlyphAttributes gives access to per-glyph attributes of a font, as used for
// mirroring. GlyphAttr returns 0 for an unknown glyph or attribute.
//
// For mirroring, the resolver is configured with an attribute number a (see
// option Mirroring). Attribute a holds the glyph ID of the mirrored glyph,
// attribute a+1 is non-zero if the glyph's mirror is encoded in the font
// (Bidi_Mirroring_Glyph has a separately encoded counterpart).
type GlyphAttributes interface {
	GlyphAttr(gid GlyphID, attr uint8) uint16
}

// GlyphAttrFunc is an adapter to use an ordinary function as GlyphAttributes.
type GlyphAttrFunc func(gid GlyphID, attr uint8) uint16

// GlyphAttr calls f(gid, attr).
func (f GlyphAttrFunc) GlyphAttr(gid GlyphID, attr uint8) uint16 {
	return f(gid, attr)
}
