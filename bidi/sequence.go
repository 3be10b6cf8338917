package bidi

// --- Isolating run sequences -----------------------------------------------
//
// Rules X9 and X10: characters removed by X9 are skipped, the remaining
// characters are grouped into level runs (BD7), and level runs are connected
// across matching isolate initiators and PDIs into isolating run sequences
// (BD13). Weak and neutral types are resolved per sequence, following the
// resolution chain of its slots.

// levelRun is a maximal stretch of slots at the same embedding level, not
// counting slots removed by X9.
type levelRun struct {
	first, last int
}

// removed is true for classes which rule X9 removes from resolution.
func removed(c Class) bool {
	switch c.Base() {
	case BN, LRE, RLE, LRO, RLO, PDF:
		return true
	}
	return false
}

func isIsolateInitiator(c Class) bool {
	switch c.Base() {
	case LRI, RLI, FSI:
		return true
	}
	return false
}

// resolveSequences resolves weak and neutral types for every isolating run
// sequence of the run. Explicit levels have to be set beforehand.
func (rs *resolver) resolveSequences() {
	r := rs.run
	rs.runs = rs.runs[:0]
	prev := none
	for i := range r.slots {
		if removed(rs.initial[i]) {
			continue
		}
		r.cut(i)
		if prev != none && r.level(prev) == r.level(i) {
			r.chain(prev, i)
			rs.runs[len(rs.runs)-1].last = i
		} else {
			rs.runAt[i] = len(rs.runs)
			rs.runs = append(rs.runs, levelRun{first: i, last: i})
		}
		prev = i
	}
	for _, lr := range rs.runs {
		if rs.initial[lr.first] == PDI && rs.matching[lr.first] != none {
			continue // continues the sequence of its isolate initiator
		}
		last := lr.last
		for isIsolateInitiator(rs.initial[last]) && rs.matching[last] != none {
			k := rs.runAt[rs.matching[last]]
			if k == none {
				break
			}
			r.chain(last, rs.runs[k].first)
			last = rs.runs[k].last
		}
		rs.resolveSequence(lr.first, last)
	}
}

// resolveSequence resolves an isolating run sequence from slot first to slot
// last, according to rule X10 and the weak and neutral rules.
func (rs *resolver) resolveSequence(first, last int) {
	r := rs.run
	level := r.level(first)
	sos := direction(max(level, rs.levelBefore(first)))
	eosLevel := r.baseLevel
	if !isIsolateInitiator(rs.initial[last]) {
		eosLevel = rs.levelAfter(last)
	}
	eos := direction(max(level, eosLevel))
	var seen classSet
	for s := first; s != none; s = r.chained(s) {
		seen |= r.slots[s].Class.bit()
	}
	T().Debugf("bidi: sequence %d-%d at level %d, sos=%s, eos=%s", first, last, level, sos, eos)
	if seen.intersects(weakClasses) {
		r.resolveWeak(first, sos, eos)
	}
	if seen.intersects(neutralClasses) {
		r.resolveNeutrals(first, level, sos, eos)
	}
}

// levelBefore returns the level of the last slot before slot i which X9 does
// not remove, or the paragraph level.
func (rs *resolver) levelBefore(i int) int {
	for j := i - 1; j >= 0; j-- {
		if !removed(rs.initial[j]) {
			return rs.run.level(j)
		}
	}
	return rs.run.baseLevel
}

// levelAfter returns the level of the first slot after slot i which X9 does
// not remove, or the paragraph level.
func (rs *resolver) levelAfter(i int) int {
	for j := i + 1; j < len(rs.initial); j++ {
		if !removed(rs.initial[j]) {
			return rs.run.level(j)
		}
	}
	return rs.run.baseLevel
}
