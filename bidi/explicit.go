package bidi

// --- Explicit levels and directions ----------------------------------------
//
// Rules X1 to X9. Instead of maintaining a directional status stack, the
// resolver recurses for every embedding, override and isolate: an invocation
// of explicit corresponds to an entry of the stack. Weak and neutral types
// are resolved afterwards, one isolating run sequence at a time (see
// sequence.go).

// resolver holds the state of a resolution which outlives a single level of
// recursion, and scratch space for the passes following it.
type resolver struct {
	run               *Run
	isolates          int // number of open, valid isolates
	isolateOverflow   int // number of isolate initiators beyond max depth
	embeddingOverflow int // number of embedding initiators beyond max depth
	//
	initial  []Class    // base classes before resolution
	matching []int      // matching PDI of an isolate initiator and vice versa
	open     []int      // open isolate initiators while matching
	runAt    []int      // index of the level run starting at a slot
	runs     []levelRun // level runs in logical order
}

// frame describes a single invocation of the explicit resolver.
type frame struct {
	level    int   // embedding level
	override Class // L or R for a directional override, ON otherwise
	isolate  bool  // frame has been opened by an isolate initiator
	top      bool  // frame is at paragraph level
}

// explicit sets the levels of the slots from start on, until the end of the
// run or until the terminator of frame f. It returns the slot where the caller
// should continue. If the frame has been closed by a PDI or a paragraph
// separator which has to be handled further up, explicit returns the
// terminating slot together with its class. Otherwise the class returned is ON.
func (rs *resolver) explicit(start int, f frame) (int, Class) {
	r := rs.run
	for s := start; s != none; {
		next := r.Next(s)
		slot := &r.slots[s]
		r.SetLevel(s, f.level)
		switch cls := slot.Class.Base(); cls {
		case BN:
		case LRE, LRO, RLE, RLO:
			slot.Class = BN
			newLevel := leastGreaterEven(f.level)
			if cls == RLE || cls == RLO {
				newLevel = leastGreaterOdd(f.level)
			}
			if newLevel > MaxDepth || rs.isolateOverflow > 0 || rs.embeddingOverflow > 0 {
				if rs.isolateOverflow == 0 {
					rs.embeddingOverflow++
				}
				break
			}
			over := ON
			if cls == LRO {
				over = L
			} else if cls == RLO {
				over = R
			}
			n, term := rs.explicit(next, frame{level: newLevel, override: over})
			if term == B && f.top {
				next = n
				break
			}
			if term != ON || n == none { // PDI or B close this frame as well
				return n, term
			}
			next = n
		case PDF:
			slot.Class = BN
			if rs.isolateOverflow > 0 {
				break
			}
			if rs.embeddingOverflow > 0 {
				rs.embeddingOverflow--
				break
			}
			if !f.isolate && !f.top {
				return r.Next(s), ON
			}
		case LRI, RLI, FSI:
			var newLevel int
			if cls == RLI || (cls == FSI && r.firstStrong(r.Next(s), true) == R) {
				newLevel = leastGreaterOdd(f.level)
			} else {
				newLevel = leastGreaterEven(f.level)
			}
			if f.override != ON {
				slot.Class = f.override | WSFlag
			}
			if newLevel > MaxDepth || rs.isolateOverflow > 0 || rs.embeddingOverflow > 0 {
				rs.isolateOverflow++
				if f.override == ON {
					slot.Class = ON | WSFlag
				}
				break
			}
			rs.isolates++
			n, term := rs.explicit(next, frame{level: newLevel, isolate: true})
			if term == B && f.top {
				next = n
				break
			}
			if term != PDI {
				return n, term
			}
			rs.closeIsolate(n, f)
			next = r.Next(n)
		case PDI:
			if rs.isolateOverflow > 0 {
				rs.isolateOverflow--
			} else if rs.isolates > 0 {
				return s, PDI // closes all embeddings within the isolate
			}
			slot.Class = f.neutral() // overflowing or unmatched
		case B:
			if !f.top {
				return s, B
			}
			rs.isolates, rs.isolateOverflow, rs.embeddingOverflow = 0, 0, 0
		default:
			if f.override != ON {
				over := f.override
				if cls == WS {
					over |= WSFlag
				}
				slot.Class = over
			}
		}
		s = next
	}
	return none, ON
}

// closeIsolate handles a PDI matching an isolate initiator of frame f.
func (rs *resolver) closeIsolate(pdi int, f frame) {
	rs.embeddingOverflow = 0
	rs.isolates--
	rs.run.SetLevel(pdi, f.level)
	if f.override != ON {
		rs.run.slots[pdi].Class = f.override | WSFlag
	}
}

// neutral is the class of an isolate formatting character which does not
// open or close an isolate.
func (f frame) neutral() Class {
	if f.override != ON {
		return f.override | WSFlag
	}
	return ON | WSFlag
}

func leastGreaterOdd(level int) int {
	if level&1 != 0 {
		return level + 2
	}
	return level + 1
}

func leastGreaterEven(level int) int {
	if level&1 != 0 {
		return level + 1
	}
	return level + 2
}

// firstStrong scans for the first strong class, starting at slot start, and
// returns L or R (for R and AL). Content of isolates is skipped. If inIsolate
// is set, the scan stops at the PDI matching the initiator of the isolate
// which contains start. The scan always stops at the end of the paragraph.
// If no strong class is found, firstStrong returns ON.
func (r *Run) firstStrong(start int, inIsolate bool) Class {
	depth := 0
	for s := start; s != none; s = r.Next(s) {
		switch r.slots[s].Class.Base() {
		case L:
			if depth == 0 {
				return L
			}
		case R, AL:
			if depth == 0 {
				return R
			}
		case LRI, RLI, FSI:
			depth++
		case PDI:
			if depth > 0 {
				depth--
			} else if inIsolate {
				return ON
			}
		case B:
			return ON
		}
	}
	return ON
}
