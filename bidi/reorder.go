package bidi

// --- Reordering ------------------------------------------------------------
//
// Rule L1 for separators and trailing whitespace, and rule L2 for the visual
// order. Reordering operates on the visual ring of the run: a span of slots at
// the same level is cut out and closed to a ring of its own (reversed if the
// level is odd), and rings are joined to form the next lower level.

// resolveWhitespace resets segment and paragraph separators to the paragraph
// level, together with any whitespace preceding them and with trailing
// whitespace. Isolate formatting characters count as whitespace, characters
// removed by X9 are skipped. Classes are judged by their initial value.
func (rs *resolver) resolveWhitespace() {
	r := rs.run
	reset := true
	for i := len(rs.initial) - 1; i >= 0; i-- {
		switch c := rs.initial[i]; {
		case c == S || c == B:
			r.SetLevel(i, r.baseLevel)
			reset = true
		case c == WS || c.isIsolateControl():
			if reset {
				r.SetLevel(i, r.baseLevel)
			}
		case removed(c):
		default:
			reset = false
		}
	}
}

// span cuts the slots following *cs with the same level as *cs (ignoring
// BNs) into a ring. If rtl is set, the ring is reversed. *cs is advanced to
// the first slot after the span. span returns the head of the ring.
func (r *Run) span(cs *int, rtl bool) int {
	head := *cs
	end := head
	level := r.level(head)
	*cs = r.slots[head].next
	if rtl {
		h := &r.slots[head]
		h.next, h.prev = h.prev, h.next
		for *cs != none && (r.level(*cs) == level || r.slots[*cs].Class == BN) {
			end = *cs
			s := &r.slots[end]
			s.next, s.prev = s.prev, s.next
			*cs = s.prev
		}
		r.slots[head].next = end
		r.slots[end].prev = head
		head = end
	} else {
		for *cs != none && (r.level(*cs) == level || r.slots[*cs].Class == BN) {
			end = *cs
			*cs = r.slots[end].next
		}
		r.slots[head].prev = end
		r.slots[end].next = head
	}
	if *cs != none {
		r.slots[*cs].prev = none
	}
	return head
}

// join concatenates the rings with heads a and b. At odd levels b goes first.
func (r *Run) join(level int, a, b int) int {
	if a == none {
		return b
	}
	if level&1 != 0 {
		a, b = b, a
	}
	atail, btail := r.slots[a].prev, r.slots[b].prev
	r.slots[atail].next = b
	r.slots[b].prev = atail
	r.slots[btail].next = a
	r.slots[a].prev = btail
	return a
}

// levelAt returns the level of the first slot from cs on which is not a BN.
func (r *Run) levelAt(cs int) (int, bool) {
	for ; cs != none; cs = r.slots[cs].next {
		if r.slots[cs].Class != BN {
			return r.level(cs), true
		}
	}
	return 0, false
}

// resolveOrder links all slots from *cs on with a level of at least level
// into visual order and returns the head of the resulting ring.
//
// If reversed is 1, levels are lowered by one, i.e. the consumer is expected
// to reverse the complete run.
func (r *Run) resolveOrder(cs *int, reversed int, level int) int {
	head := none
	for *cs != none {
		l, ok := r.levelAt(*cs)
		if !ok { // BNs only, stay at this level
			l = level
		} else if l -= reversed; l < level {
			break
		}
		if level < l {
			head = r.join(level, head, r.resolveOrder(cs, reversed, level+1))
		} else {
			head = r.join(level, head, r.span(cs, level&1 != 0))
		}
	}
	return head
}
