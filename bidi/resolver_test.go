package bidi

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func TestResolveEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	run := NewRun(0)
	assert.Equal(t, -1, Resolve(run))
	assert.Empty(t, run.VisualOrder())
}

var resolveTests = []struct {
	name    string
	classes []Class
	base    bidi.Direction
	levels  []int
	visual  []int
}{
	{"L R L", []Class{L, R, L}, bidi.LeftToRight, []int{0, 1, 0}, []int{0, 1, 2}},
	{"L EN", []Class{L, EN}, bidi.LeftToRight, []int{0, 0}, []int{0, 1}},
	{"R EN", []Class{R, EN}, bidi.LeftToRight, []int{1, 2}, []int{1, 0}},
	{"R AN", []Class{R, AN}, bidi.LeftToRight, []int{1, 2}, []int{1, 0}},
	{"L ON R", []Class{L, ON, R}, bidi.LeftToRight, []int{0, 0, 1}, []int{0, 1, 2}},
	{"R ON R", []Class{R, ON, R}, bidi.LeftToRight, []int{1, 1, 1}, []int{2, 1, 0}},
	{"AL AL", []Class{AL, AL}, bidi.LeftToRight, []int{1, 1}, []int{1, 0}},
	{"L R R L", []Class{L, R, R, L}, bidi.LeftToRight, []int{0, 1, 1, 0}, []int{0, 2, 1, 3}},
	{"LRI L PDI", []Class{LRI, L, PDI}, bidi.LeftToRight, []int{0, 2, 0}, []int{0, 1, 2}},
	{"L WS R WS", []Class{L, WS, R, WS}, bidi.LeftToRight, []int{0, 0, 1, 0}, []int{0, 1, 2, 3}},
	{"L R L (rtl)", []Class{L, R, L}, bidi.RightToLeft, []int{2, 1, 2}, []int{2, 1, 0}},
	{"R R (rtl)", []Class{R, R}, bidi.RightToLeft, []int{1, 1}, []int{1, 0}},
	{"ON (rtl)", []Class{ON}, bidi.RightToLeft, []int{1}, []int{0}},
	{"L (rtl)", []Class{L}, bidi.RightToLeft, []int{2}, []int{0}},
	{"L EN (rtl)", []Class{L, EN}, bidi.RightToLeft, []int{2, 2}, []int{0, 1}},
	{"R NSM", []Class{R, NSM}, bidi.LeftToRight, []int{1, 1}, []int{1, 0}},
	{"ET EN", []Class{ET, EN}, bidi.RightToLeft, []int{2, 2}, []int{0, 1}},
	{"AN CS AN", []Class{AN, CS, AN}, bidi.LeftToRight, []int{2, 2, 2}, []int{0, 1, 2}},
}

func TestResolve(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, test := range resolveTests {
		run := NewRunFromClasses(test.classes...)
		head := Resolve(run, ParagraphDirection(test.base))
		t.Logf("%s: %s", test.name, run)
		assert.Equal(t, test.levels, run.Levels(), test.name)
		assert.Equal(t, test.visual, run.VisualOrder(), test.name)
		assert.Equal(t, test.visual[0], head, test.name)
	}
}

func TestAutoDirection(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	assert.Equal(t, 1, ParagraphLevel(NewRunFromClasses(ON, AL, L)))
	assert.Equal(t, 0, ParagraphLevel(NewRunFromClasses(EN, L, R)))
	assert.Equal(t, 0, ParagraphLevel(NewRunFromClasses(ON, WS)))
	assert.Equal(t, 0, ParagraphLevel(NewRunFromClasses(RLI, R, PDI, L)))
	assert.Equal(t, 1, ParagraphLevel(NewRunFromClasses(LRI, L, PDI, PDI, R)))
	assert.Equal(t, 0, ParagraphLevel(NewRun(0)))
	//
	run := NewRunFromClasses(R, WS, L)
	Resolve(run, AutoDirection(true))
	assert.Equal(t, 1, run.BaseLevel())
	assert.Equal(t, []int{1, 1, 2}, run.Levels())
	assert.Equal(t, []int{2, 1, 0}, run.VisualOrder())
	// a later direction option switches auto-detection off
	run = NewRunFromClasses(R, WS, L)
	Resolve(run, AutoDirection(true), ParagraphDirection(bidi.LeftToRight))
	assert.Equal(t, 0, run.BaseLevel())
}

func TestResolveUnknownClass(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	run := NewRunFromClasses(L, Class(42), R)
	Resolve(run)
	assert.Equal(t, []int{0, 0, 1}, run.Levels())
	assert.Equal(t, L, run.At(1).Class.Base())
}

func TestResolveTwice(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	run := NewRunFromClasses(L, R, R, L)
	Resolve(run)
	first := run.VisualOrder()
	Resolve(run)
	assert.Equal(t, first, run.VisualOrder())
}

// Flipping the paragraph direction of a run with strong types only flips the
// parity of every level.
func TestParity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	rnd := rand.New(rand.NewSource(99))
	for n := 0; n < 100; n++ {
		classes := make([]Class, 1+rnd.Intn(20))
		for i := range classes {
			classes[i] = Class(1 + rnd.Intn(2)) // L or R
		}
		ltr := NewRunFromClasses(classes...)
		Resolve(ltr, ParagraphDirection(bidi.LeftToRight))
		rtl := NewRunFromClasses(classes...)
		Resolve(rtl, ParagraphDirection(bidi.RightToLeft))
		for i, c := range classes {
			if c == L {
				require.Equal(t, 0, ltr.Levels()[i])
				require.Equal(t, 2, rtl.Levels()[i])
			} else {
				require.Equal(t, 1, ltr.Levels()[i])
				require.Equal(t, 1, rtl.Levels()[i])
			}
		}
	}
}

// Resolving random runs keeps all slots, and levels stay within bounds.
func TestRandomRuns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	checkLevels = true
	defer func() { checkLevels = false }()
	//
	rnd := rand.New(rand.NewSource(4711))
	for n := 0; n < 500; n++ {
		classes := make([]Class, rnd.Intn(40))
		for i := range classes {
			classes[i] = Class(rnd.Intn(NumClasses))
		}
		for _, dir := range []bidi.Direction{bidi.LeftToRight, bidi.RightToLeft} {
			run := NewRunFromClasses(classes...)
			Resolve(run, ParagraphDirection(dir))
			order := run.VisualOrder()
			require.Len(t, order, len(classes), "%v", classes)
			seen := make(map[int]bool, len(order))
			for _, i := range order {
				require.False(t, seen[i], "slot %d twice in visual order of %v", i, classes)
				seen[i] = true
			}
			for _, l := range run.Levels() {
				require.GreaterOrEqual(t, l, LevelFor(dir))
				require.LessOrEqual(t, l, MaxDepth+1)
			}
			if len(order) > 0 {
				require.Equal(t, order[0], run.VisualNext(order[len(order)-1]), "ring is closed")
				require.Equal(t, order[len(order)-1], run.VisualPrev(order[0]), "ring is closed")
			}
		}
	}
}
