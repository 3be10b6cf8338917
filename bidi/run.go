package bidi

import (
	"fmt"
	"strings"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// none is the in-band value for a missing slot.
const none = -1

// Slot is a single directional unit, usually a character mapped to a glyph.
type Slot struct {
	Class Class   // bidi class, possibly flagged with WSFlag
	Level uint8   // embedding level, 0…MaxDepth+2 after implicit resolution
	Glyph GlyphID // glyph of the slot, may be replaced by its mirrored form
	//
	link       int // successor in the isolating run sequence under resolution
	next, prev int // visual ring, maintained by the reordering engine
}

// Run holds the slots of a segment in logical order.
//
// Slots live in an arena and are addressed by index. A Run maintains two
// independent sets of links:
//
//   ▪︎ the resolution chain, which threads the slots of an isolating run
//     sequence, skipping slots removed by X9, nested embeddings and the
//     content of isolates.
//   ▪︎ the visual ring, which is in logical order until Resolve re-links it
//     into visual order.
//
// Clients never see the resolution chain.
type Run struct {
	slots     []Slot
	baseLevel int
	head      int // head of the visual ring
}

// NewRun creates an empty run with a paragraph embedding level of 0.
func NewRun(capacity int) *Run {
	if capacity < 0 {
		capacity = 0
	}
	return &Run{
		slots: make([]Slot, 0, capacity),
		head:  none,
	}
}

// NewRunFromClasses creates a run for a sequence of bidi classes, with each
// glyph ID equal to the logical position of its slot.
func NewRunFromClasses(classes ...Class) *Run {
	r := NewRun(len(classes))
	for i, c := range classes {
		r.Append(c, GlyphID(i))
	}
	return r
}

// Append adds a slot to the end of the run and returns its index.
func (r *Run) Append(c Class, g GlyphID) int {
	i := len(r.slots)
	r.slots = append(r.slots, Slot{Class: c, Glyph: g})
	r.relink(i)
	return i
}

// relink puts slot i back into logical order for both link sets.
func (r *Run) relink(i int) {
	s := &r.slots[i]
	s.link = i - 1
	s.prev = i - 1
	s.next = i + 1
	if s.next == len(r.slots) {
		s.next = none
	}
	if i > 0 {
		r.slots[i-1].next = i
	}
	r.head = 0
}

// reset restores logical order for all links.
func (r *Run) reset() {
	for i := range r.slots {
		r.relink(i)
	}
	if len(r.slots) == 0 {
		r.head = none
	}
}

// Len returns the number of slots.
func (r *Run) Len() int {
	if r == nil {
		return 0
	}
	return len(r.slots)
}

// At returns slot i.
func (r *Run) At(i int) *Slot {
	return &r.slots[i]
}

// BaseLevel returns the paragraph embedding level of the run.
func (r *Run) BaseLevel() int {
	return r.baseLevel
}

// Next returns the index of the slot logically following slot i, or -1.
func (r *Run) Next(i int) int {
	if i < 0 || i+1 >= len(r.slots) {
		return none
	}
	return i + 1
}

// Prev returns the index of the slot logically preceding slot i, or -1.
func (r *Run) Prev(i int) int {
	if i <= 0 {
		return none
	}
	return i - 1
}

// checkLevels enables the level range assertion of SetLevel.
var checkLevels = false

// SetLevel sets the embedding level of slot i.
func (r *Run) SetLevel(i int, level int) {
	if checkLevels {
		assertThat(level >= 0 && level <= MaxDepth+2, fmt.Sprintf("bidi level %d out of range", level))
	}
	r.slots[i].Level = uint8(level)
}

// level returns the embedding level of slot i.
func (r *Run) level(i int) int {
	return int(r.slots[i].Level)
}

// --- Resolution chain ------------------------------------------------------

func (r *Run) chained(i int) int {
	return r.slots[i].link
}

func (r *Run) chain(i, j int) {
	r.slots[i].link = j
}

// cut terminates the resolution chain at slot i, if any.
func (r *Run) cut(i int) {
	if i != none {
		r.slots[i].link = none
	}
}

// --- Visual ring -----------------------------------------------------------

// Head returns the slot which is visually leftmost, or -1 for an empty run.
func (r *Run) Head() int {
	return r.head
}

// VisualNext returns the slot visually right of slot i. For the rightmost slot
// it wraps around to Head().
func (r *Run) VisualNext(i int) int {
	return r.slots[i].next
}

// VisualPrev returns the slot visually left of slot i. For Head() it wraps
// around to the rightmost slot.
func (r *Run) VisualPrev(i int) int {
	return r.slots[i].prev
}

// VisualOrder returns the logical indices of all slots from left to right.
// Before Resolve has been called, this is the logical order.
func (r *Run) VisualOrder() []int {
	order := make([]int, 0, len(r.slots))
	if r.head == none {
		return order
	}
	for i := r.head; i != none && len(order) < len(r.slots); i = r.slots[i].next {
		order = append(order, i)
		if r.slots[i].next == r.head {
			break
		}
	}
	return order
}

// Levels returns the embedding levels of all slots, in logical order.
func (r *Run) Levels() []int {
	levels := make([]int, len(r.slots))
	for i, s := range r.slots {
		levels[i] = int(s.Level)
	}
	return levels
}

// Classes returns the (base) classes of all slots, in logical order.
func (r *Run) Classes() []Class {
	classes := make([]Class, len(r.slots))
	for i, s := range r.slots {
		classes[i] = s.Class.Base()
	}
	return classes
}

// Glyphs returns the glyphs of all slots, in visual order.
func (r *Run) Glyphs() []GlyphID {
	order := r.VisualOrder()
	glyphs := make([]GlyphID, len(order))
	for k, i := range order {
		glyphs[k] = r.slots[i].Glyph
	}
	return glyphs
}

func (r *Run) String() string {
	var b strings.Builder
	for i, s := range r.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("[%d:%s:%d]", i, s.Class, s.Level))
	}
	return b.String()
}
