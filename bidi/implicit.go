package bidi

// implicitLevels holds the level increments of rules I1 and I2, for even and
// odd levels, with columns L, R, AN, EN.
var implicitLevels = [2][4]int{
	{0, 1, 2, 2},
	{1, 0, 1, 1},
}

// resolveImplicit applies the implicit levels to all slots with a strong
// class or a number. If mirroring is configured, glyphs ending up at an odd
// level are replaced by their mirrored counterparts.
func (r *Run) resolveImplicit(conf *config) {
	rtl := r.baseLevel&1 != 0
	ambiguous := conf.hasMode(optionAmbiguousMirroring)
	for i := range r.slots {
		slot := &r.slots[i]
		var col int
		switch slot.Class.Base() {
		case L:
			col = 0
		case R:
			col = 1
		case AN, AL:
			col = 2
		case EN:
			col = 3
		default:
			continue
		}
		level := int(slot.Level) + implicitLevels[slot.Level&1][col]
		r.SetLevel(i, level)
		if conf.mirroring() {
			odd := level&1 != 0
			encoded := conf.attrs.GlyphAttr(slot.Glyph, conf.mirrorAttr+1) != 0
			if (odd && (!ambiguous || !encoded)) || (rtl != odd && ambiguous && encoded) {
				r.mirror(i, conf)
			}
		}
	}
}

// mirror replaces the glyph of slot i by its mirrored glyph, if there is one.
func (r *Run) mirror(i int, conf *config) {
	g := conf.attrs.GlyphAttr(r.slots[i].Glyph, conf.mirrorAttr)
	if g != 0 {
		T().Debugf("bidi: mirroring glyph %d -> %d", r.slots[i].Glyph, g)
		r.slots[i].Glyph = GlyphID(g)
	}
}
