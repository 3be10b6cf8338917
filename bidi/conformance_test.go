package bidi_test

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxbidi/bidi"
	"github.com/npillmayer/uaxbidi/internal/biditest"
	"github.com/npillmayer/uaxbidi/internal/testdata"
	"github.com/stretchr/testify/require"
	xbidi "golang.org/x/text/unicode/bidi"
)

func TestConformanceExcerpt(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	cases := readCases(t, "BidiTest-excerpt.txt")
	require.NotEmpty(t, cases)
	if failed := runConformance(cases, t.Errorf); failed > 0 {
		t.Errorf("%d of %d test cases failed", failed, len(cases))
	}
}

func TestConformance(t *testing.T) {
	if !testdata.Exists("BidiTest.txt") {
		t.Skip("BidiTest.txt not present, run 'go run download.go' in internal/testdata")
	}
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	cases := readCases(t, "BidiTest.txt")
	if failed := runConformance(cases, t.Errorf); failed > 0 {
		t.Errorf("%d of %d test cases failed", failed, len(cases))
	}
}

func readCases(t *testing.T, file string) []biditest.Case {
	r, err := testdata.UCDReader(file)
	require.NoError(t, err)
	cases, err := biditest.Parse(r)
	require.NoError(t, err)
	return cases
}

var paragraphs = []struct {
	bit uint8
	opt bidi.Option
}{
	{biditest.Auto, bidi.AutoDirection(true)},
	{biditest.LTR, bidi.ParagraphDirection(xbidi.LeftToRight)},
	{biditest.RTL, bidi.ParagraphDirection(xbidi.RightToLeft)},
}

func runConformance(cases []biditest.Case, report func(string, ...interface{})) (failed int) {
	for _, c := range cases {
		for _, p := range paragraphs {
			if c.Paragraphs&p.bit == 0 {
				continue
			}
			if p.bit == biditest.Auto && separated(c.Classes) {
				continue // paragraph level of the first paragraph only
			}
			run := bidi.NewRunFromClasses(c.Classes...)
			bidi.Resolve(run, p.opt)
			if !conforms(run, c) {
				report("%s, paragraph %d: have %v", c, p.bit, run)
				failed++
			}
		}
	}
	return failed
}

// separated is true if a paragraph separator occurs before the last class.
func separated(classes []bidi.Class) bool {
	for _, c := range classes[:max(len(classes)-1, 0)] {
		if c == bidi.B {
			return true
		}
	}
	return false
}

func conforms(run *bidi.Run, c biditest.Case) bool {
	levels := run.Levels()
	for i, l := range c.Levels {
		if l != biditest.Removed && l != levels[i] {
			return false
		}
	}
	var order []int
	for _, i := range run.VisualOrder() {
		if c.Levels[i] != biditest.Removed {
			order = append(order, i)
		}
	}
	if len(order) != len(c.Reorder) {
		return false
	}
	for k := range order {
		if order[k] != c.Reorder[k] {
			return false
		}
	}
	return true
}
