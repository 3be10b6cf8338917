/*
Package biditest reads conformance test files in the format of BidiTest.txt
from the Unicode Character Database.

A test file consists of lines of the form

	@Levels: x 1 2
	@Reorder: 2 1
	<class> <class> …; <bitset>

where a data line lists the bidi classes of an input sequence, and bitset
selects the paragraph levels to test the input with (1 = auto, 2 = LTR,
4 = RTL). Expected levels and visual order apply to all following data lines,
until the next @Levels or @Reorder line. Level 'x' denotes a character
removed by rule X9.
*/
package biditest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxbidi/bidi"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Paragraph levels to test an input with.
const (
	Auto uint8 = 1
	LTR  uint8 = 2
	RTL  uint8 = 4
)

// Removed is the level of a character removed by rule X9.
const Removed = -1

// Case is a single test case, i.e. a data line of a test file.
type Case struct {
	Line       int          // line number in the test file
	Classes    []bidi.Class // input
	Paragraphs uint8        // bitset of Auto, LTR and RTL
	Levels     []int        // expected levels, Removed for X9 characters
	Reorder    []int        // expected visual order, without X9 characters
}

func (c Case) String() string {
	return fmt.Sprintf("line %d: %v; %d", c.Line, c.Classes, c.Paragraphs)
}

// Parse reads all test cases from r.
func Parse(r io.Reader) ([]Case, error) {
	sc := bufio.NewScanner(r)
	cases := arraylist.New()
	var levels, reorder []int
	lineno := 0
	for sc.Scan() {
		lineno++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		var err error
		switch {
		case strings.HasPrefix(text, "@Levels:"):
			levels, err = parseLevels(strings.TrimPrefix(text, "@Levels:"))
		case strings.HasPrefix(text, "@Reorder:"):
			reorder, err = parseInts(strings.TrimPrefix(text, "@Reorder:"))
		case strings.HasPrefix(text, "@"):
			T().Debugf("biditest: skipping line %d: %s", lineno, text)
		default:
			var c Case
			c, err = parseCase(text)
			if err == nil {
				if len(c.Classes) != len(levels) {
					err = fmt.Errorf("%d classes, but %d levels", len(c.Classes), len(levels))
				}
				c.Line, c.Levels, c.Reorder = lineno, levels, reorder
				cases.Add(c)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("biditest: line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("biditest: %w", err)
	}
	T().Infof("biditest: read %d test cases", cases.Size())
	result := make([]Case, cases.Size())
	for i, c := range cases.Values() {
		result[i] = c.(Case)
	}
	return result, nil
}

func parseCase(text string) (Case, error) {
	var c Case
	parts := strings.Split(text, ";")
	if len(parts) != 2 {
		return c, fmt.Errorf("malformed data line %q", text)
	}
	for _, name := range strings.Fields(parts[0]) {
		cls, ok := bidi.ClassFromString(name)
		if !ok {
			return c, fmt.Errorf("unknown bidi class %q", name)
		}
		c.Classes = append(c.Classes, cls)
	}
	bitset, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil {
		return c, fmt.Errorf("malformed paragraph bitset: %w", err)
	}
	c.Paragraphs = uint8(bitset)
	return c, nil
}

func parseLevels(text string) ([]int, error) {
	fields := strings.Fields(text)
	levels := make([]int, len(fields))
	for i, f := range fields {
		if f == "x" {
			levels[i] = Removed
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("malformed level: %w", err)
		}
		levels[i] = n
	}
	return levels, nil
}

func parseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("malformed position: %w", err)
		}
		ints[i] = n
	}
	return ints, nil
}
