package bidi

// --- Driver ----------------------------------------------------------------

// Runs without any of these classes keep all slots at an even paragraph level.
var ltrTriggers = setOf(R, AL, EN, AN, LRO, RLO, LRE, RLE, LRI, RLI, FSI)

// Runs without any of these classes keep all slots at an odd paragraph level.
var rtlTriggers = setOf(L, EN, AN, LRO, RLO, LRE, RLE, LRI, RLI, FSI)

// Resolve performs the bidi algorithm for a run of slots, which is expected
// to be a single line of a paragraph. It sets the embedding level of every
// slot, resolves the slot classes, mirrors glyphs if configured, and links
// the slots into visual order.
//
// Resolve returns the visually first slot, i.e. the head of the visual ring
// (see Run.VisualNext), or -1 for an empty run.
//
// Slots with a class outside the known range are treated as ON.
func Resolve(run *Run, opts ...Option) int {
	if run.Len() == 0 {
		return none
	}
	conf := newConfig(opts)
	base := conf.baseLevel
	if conf.hasMode(optionAutoDirection) {
		base = ParagraphLevel(run)
	}
	run.baseLevel = base
	run.reset()
	var seen classSet
	for i := range run.slots {
		s := &run.slots[i]
		if int(s.Class.Base()) >= NumClasses {
			s.Class = ON
		}
		seen |= s.Class.bit()
		run.SetLevel(i, base)
	}
	triggers := ltrTriggers
	if base&1 != 0 {
		triggers = rtlTriggers
	}
	if seen.intersects(triggers) {
		T().Debugf("bidi: resolving run of %d slots at base level %d", run.Len(), base)
		rs := borrowResolver(run)
		rs.explicit(0, frame{level: base, override: ON, top: true})
		rs.resolveSequences()
		run.resolveImplicit(conf)
		rs.resolveWhitespace()
		rs.releaseIntoPool()
	} else if base&1 != 0 && conf.mirroring() {
		ambiguous := conf.hasMode(optionAmbiguousMirroring)
		for i := range run.slots {
			if removed(run.slots[i].Class) {
				continue
			}
			if !ambiguous || conf.attrs.GlyphAttr(run.slots[i].Glyph, conf.mirrorAttr+1) == 0 {
				run.mirror(i, conf)
			}
		}
	}
	reversed := 0
	if base&1 != 0 && conf.hasMode(optionBaseReversed) {
		reversed = 1
	}
	cs := 0
	run.head = run.resolveOrder(&cs, reversed, 0)
	T().Debugf("bidi: %s", run)
	return run.head
}

// ParagraphLevel determines the paragraph embedding level of a run, following
// rules P2 and P3: it is 1 if the first strong character outside of isolates is
// of class R or AL, and 0 otherwise. The scan stops at a paragraph separator.
func ParagraphLevel(run *Run) int {
	if run.Len() > 0 && run.firstStrong(0, false) == R {
		return 1
	}
	return 0
}
