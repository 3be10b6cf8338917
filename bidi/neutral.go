package bidi

// --- Resolving neutral types -----------------------------------------------
//
// Rules N1 and N2, again as a state machine. Sequences of neutrals are
// deferred until a strong type (or a number, which counts as R) follows.

type neutralState uint8

const (
	nr  neutralState = iota // R or digit
	nl                      // L
	nrn                     // neutral after R or digit
	nln                     // neutral after L
	na                      // AN preceded by L
	nna                     // neutral after AN preceded by L
)

// ed is a deferred class which resolves to the embedding direction.
const ed Class = 0x7e

var (
	nIn  = resolveAction{xx, xx, true} // increment run
	nNo  = resolveAction{xx, xx, false}
	nEn  = resolveAction{ed, xx, false} // resolve run to embedding direction
	nRn  = resolveAction{R, xx, false}  // resolve run to R
	nLn  = resolveAction{L, xx, false}  // resolve run to L
	nL   = resolveAction{xx, L, false}  // set current to L
	nLnL = resolveAction{L, L, false}   // resolve run and current to L
)

// neutralColumn maps a base class to a column of the neutral state tables.
var neutralColumn = [NumClasses]uint8{
	ON: 0, L: 1, R: 2, AN: 3, EN: 4,
}

var neutralActions = [...][5]resolveAction{
	//     ON   L    R    AN   EN
	nr:  {nIn, nNo, nNo, nNo, nNo},
	nl:  {nIn, nNo, nNo, nNo, nL},
	nrn: {nIn, nEn, nRn, nRn, nRn},
	nln: {nIn, nLn, nEn, nEn, nLnL},
	na:  {nIn, nNo, nNo, nNo, nL},
	nna: {nIn, nEn, nRn, nRn, nEn},
}

var neutralStates = [...][5]neutralState{
	//     ON   L   R   AN  EN
	nr:  {nrn, nl, nr, nr, nr},
	nl:  {nln, nl, nr, na, nl},
	nrn: {nrn, nl, nr, nr, nr},
	nln: {nln, nl, nr, na, nl},
	na:  {nna, nl, nr, na, nl},
	nna: {nna, nl, nr, na, nl},
}

// deferredFor returns the class an action assigns to the deferred run, for a
// sequence at the given level.
func (a resolveAction) deferredFor(level int) Class {
	if a.deferred == ed {
		return direction(level)
	}
	return a.deferred
}

// resolveNeutrals resolves the neutral types of an isolating run sequence at
// the given level, starting at slot start and following the resolution chain.
// Weak types have to be resolved beforehand, turning isolate controls into
// neutrals.
func (r *Run) resolveNeutrals(start int, level int, sos, eos Class) {
	state := nl
	if sos == R {
		state = nr
	}
	deferred, last := none, start
	for s := start; s != none; s = r.chained(s) {
		last = s
		slot := &r.slots[s]
		cls := slot.Class.Base()
		switch cls {
		case BN:
			continue
		}
		col := neutralColumn[cls]
		action := neutralActions[state][col]
		if d := action.deferredFor(level); d != xx {
			r.setDeferredRun(s, deferred, d)
			deferred = none
		}
		if action.resolved != xx {
			slot.Class = action.resolved
		}
		if deferred == none && action.increment {
			deferred = s
		}
		state = neutralStates[state][col]
	}
	if d := neutralActions[state][neutralColumn[eos]].deferredFor(level); d != xx {
		r.setDeferredRunThrough(last, deferred, d)
	}
}
