package bidi

// --- Resolving weak types --------------------------------------------------
//
// Rules W1 to W7 are implemented by a finite state machine, following the
// reference implementation of the Unicode consortium (by Asmus Freytag).
// The machine walks an isolating run sequence in logical order. Some characters (ET, CS, ES)
// cannot be resolved until a later character is seen; they are collected in a
// deferred run, which gets resolved as soon as its context is known.

type weakState uint8

const (
	xa  weakState = iota // Arabic letter
	xr                   // right letter
	xl                   // left letter
	ao                   // Arabic letter followed by ON
	ro                   // right letter followed by ON
	lo                   // left letter followed by ON
	rt                   // ET following R
	lt                   // ET following L
	cn                   // EN, AN following AL
	ra                   // Arabic number following R
	re                   // European number following R
	la                   // Arabic number following L
	le                   // European number following L
	ac                   // CS following cn
	rc                   // CS following ra
	rs                   // CS, ES following re
	lc                   // CS following la
	ls                   // CS, ES following le
	ret                  // ET following re
	let                  // ET following le
)

// Columns of the state tables.
const (
	colN = iota
	colL
	colR
	colAN
	colEN
	colAL
	colNSM
	colCS
	colES
	colET
)

// weakColumn maps a base class to a column of the weak state tables.
// Neutrals, whitespace, BN and all formatting codes share column N.
var weakColumn = [NumClasses]uint8{
	ON: colN, L: colL, R: colR, AL: colAL, EN: colEN, ES: colES, ET: colET,
	AN: colAN, CS: colCS, NSM: colNSM,
}

var weakStates = [...][10]weakState{
	//     N   L   R   AN  EN  AL  NSM CS  ES  ET
	xa:  {ao, xl, xr, cn, cn, xa, xa, ao, ao, ao},
	xr:  {ro, xl, xr, ra, re, xa, xr, ro, ro, rt},
	xl:  {lo, xl, xr, la, le, xa, xl, lo, lo, lt},
	ao:  {ao, xl, xr, cn, cn, xa, ao, ao, ao, ao},
	ro:  {ro, xl, xr, ra, re, xa, ro, ro, ro, rt},
	lo:  {lo, xl, xr, la, le, xa, lo, lo, lo, lt},
	rt:  {ro, xl, xr, ra, re, xa, rt, ro, ro, rt},
	lt:  {lo, xl, xr, la, le, xa, lt, lo, lo, lt},
	cn:  {ao, xl, xr, cn, cn, xa, cn, ac, ao, ao},
	ra:  {ro, xl, xr, ra, re, xa, ra, rc, ro, rt},
	re:  {ro, xl, xr, ra, re, xa, re, rs, rs, ret},
	la:  {lo, xl, xr, la, le, xa, la, lc, lo, lt},
	le:  {lo, xl, xr, la, le, xa, le, ls, ls, let},
	ac:  {ao, xl, xr, cn, cn, xa, ao, ao, ao, ao},
	rc:  {ro, xl, xr, ra, re, xa, ro, ro, ro, rt},
	rs:  {ro, xl, xr, ra, re, xa, ro, ro, ro, rt},
	lc:  {lo, xl, xr, la, le, xa, lo, lo, lo, lt},
	ls:  {lo, xl, xr, la, le, xa, lo, lo, lo, lt},
	ret: {ro, xl, xr, ra, re, xa, ret, ro, ro, ret},
	let: {lo, xl, xr, la, le, xa, let, lo, lo, let},
}

// xx denotes "no change" in a resolver action.
const xx Class = 0x7f

// resolveAction is an entry of an action table. It tells what to do with the
// currently deferred run and with the current character, and whether the
// current character starts (or extends) a deferred run.
type resolveAction struct {
	deferred  Class // new class for the deferred run, or xx
	resolved  Class // new class for the current character, or xx
	increment bool  // current character is deferred
}

var (
	xxx = resolveAction{xx, xx, false} // no-op
	xIx = resolveAction{xx, xx, true}  // increment run
	xxN = resolveAction{xx, ON, false} // set current to N
	xxE = resolveAction{xx, EN, false} // set current to EN
	xxA = resolveAction{xx, AN, false} // set current to AN
	xxR = resolveAction{xx, R, false}  // set current to R
	xxL = resolveAction{xx, L, false}  // set current to L
	Nxx = resolveAction{ON, xx, false} // set run to neutral
	Axx = resolveAction{AN, xx, false} // set run to AN
	ExE = resolveAction{EN, EN, false} // set run to EN, set current to EN
	NIx = resolveAction{ON, xx, true}  // set run to N, increment
	NxN = resolveAction{ON, ON, false} // set run to N, set current to N
	NxR = resolveAction{ON, R, false}  // set run to N, set current to R
	NxE = resolveAction{ON, EN, false} // set run to N, set current to EN
	AxA = resolveAction{AN, AN, false} // set run to AN, set current to AN
	NxL = resolveAction{ON, L, false}  // set run to N, set current to L
	LxL = resolveAction{L, L, false}   // set run to L, set current to L
)

var weakActions = [...][10]resolveAction{
	//     N    L    R    AN   EN   AL   NSM  CS   ES   ET
	xa:  {xxx, xxx, xxx, xxx, xxA, xxR, xxR, xxN, xxN, xxN},
	xr:  {xxx, xxx, xxx, xxx, xxE, xxR, xxR, xxN, xxN, xIx},
	xl:  {xxx, xxx, xxx, xxx, xxL, xxR, xxL, xxN, xxN, xIx},
	ao:  {xxx, xxx, xxx, xxx, xxA, xxR, xxN, xxN, xxN, xxN},
	ro:  {xxx, xxx, xxx, xxx, xxE, xxR, xxN, xxN, xxN, xIx},
	lo:  {xxx, xxx, xxx, xxx, xxL, xxR, xxN, xxN, xxN, xIx},
	rt:  {Nxx, Nxx, Nxx, Nxx, ExE, NxR, xIx, NxN, NxN, xIx},
	lt:  {Nxx, Nxx, Nxx, Nxx, LxL, NxR, xIx, NxN, NxN, xIx},
	cn:  {xxx, xxx, xxx, xxx, xxA, xxR, xxA, xIx, xxN, xxN},
	ra:  {xxx, xxx, xxx, xxx, xxE, xxR, xxA, xIx, xxN, xIx},
	re:  {xxx, xxx, xxx, xxx, xxE, xxR, xxE, xIx, xIx, xxE},
	la:  {xxx, xxx, xxx, xxx, xxL, xxR, xxA, xIx, xxN, xIx},
	le:  {xxx, xxx, xxx, xxx, xxL, xxR, xxL, xIx, xIx, xxL},
	ac:  {Nxx, Nxx, Nxx, Axx, AxA, NxR, NxN, NxN, NxN, NxN},
	rc:  {Nxx, Nxx, Nxx, Axx, NxE, NxR, NxN, NxN, NxN, NIx},
	rs:  {Nxx, Nxx, Nxx, Nxx, ExE, NxR, NxN, NxN, NxN, NIx},
	lc:  {Nxx, Nxx, Nxx, Axx, NxL, NxR, NxN, NxN, NxN, NIx},
	ls:  {Nxx, Nxx, Nxx, Nxx, LxL, NxR, NxN, NxN, NxN, NIx},
	ret: {xxx, xxx, xxx, xxx, xxE, xxR, xxE, xxN, xxN, xxE},
	let: {xxx, xxx, xxx, xxx, xxL, xxR, xxL, xxN, xxN, xxL},
}

// resolveWeak resolves the weak types of an isolating run sequence, starting
// at slot start and following the resolution chain. sos and eos are the strong
// classes (L or R) at the boundaries of the sequence.
//
// Isolate controls act as neutrals and prevent a following NSM from taking
// their class (W1).
func (r *Run) resolveWeak(start int, sos, eos Class) {
	state := xl
	if sos == R {
		state = xr
	}
	deferred, last := none, start
	for s := start; s != none; s = r.chained(s) {
		last = s
		slot := &r.slots[s]
		cls := slot.Class.Base()
		switch cls {
		case BN:
			if s == start { // skip initial BNs for NSM resolving
				start = r.chained(s)
			}
			continue
		case LRI, RLI, FSI, PDI:
			if n := r.chained(s); n != none && r.slots[n].Class == NSM {
				r.slots[n].Class = ON
			}
			slot.Class = ON | WSFlag
		case NSM:
			if s == start {
				cls = sos
				slot.Class = cls
			}
		}
		col := weakColumn[cls]
		action := weakActions[state][col]
		if action.deferred != xx {
			r.setDeferredRun(s, deferred, action.deferred)
			deferred = none
		}
		if action.resolved != xx {
			slot.Class = action.resolved
		}
		if deferred == none && action.increment {
			deferred = s
		}
		state = weakStates[state][col]
	}
	if d := weakActions[state][weakColumn[eos]].deferred; d != xx {
		r.setDeferredRunThrough(last, deferred, d)
	}
}

// setDeferredRun sets the class of every slot of a deferred run, from slot
// from up to, but not including, slot to. BNs are skipped, whitespace keeps
// its flag.
func (r *Run) setDeferredRun(to, from int, c Class) {
	if from == none || from == to {
		return
	}
	for p := from; p != to && p != none; p = r.chained(p) {
		r.setDeferredClass(p, c)
	}
}

// setDeferredRunThrough is like setDeferredRun, but includes slot to.
func (r *Run) setDeferredRunThrough(to, from int, c Class) {
	if from == none {
		return
	}
	end := r.chained(to)
	for p := from; p != end && p != none; p = r.chained(p) {
		r.setDeferredClass(p, c)
	}
}

func (r *Run) setDeferredClass(p int, c Class) {
	slot := &r.slots[p]
	if slot.Class == WS {
		slot.Class = c | WSFlag
	} else if slot.Class.Base() != BN {
		slot.Class = c | (slot.Class & WSFlag)
	}
}
