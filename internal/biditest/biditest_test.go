package biditest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/uaxbidi/bidi"
	"github.com/npillmayer/uaxbidi/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# comment
@Levels:	x 1
@Reorder:	1
@Type:	ignored

LRE R; 7 # trailing comment
RLI AL; 2

@Levels:	0
@Reorder:	0
B; 3
`

func TestParse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, cases, 3)
	first := Case{
		Line:       6,
		Classes:    []bidi.Class{bidi.LRE, bidi.R},
		Paragraphs: Auto | LTR | RTL,
		Levels:     []int{Removed, 1},
		Reorder:    []int{1},
	}
	if d := cmp.Diff(first, cases[0]); d != "" {
		t.Errorf("unexpected first case (-want +got):\n%s", d)
	}
	assert.Equal(t, LTR, cases[1].Paragraphs)
	assert.Equal(t, []bidi.Class{bidi.B}, cases[2].Classes)
	assert.Equal(t, []int{0}, cases[2].Levels)
}

func TestParseErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, input := range []string{
		"@Levels: 0\nXX; 3\n",
		"@Levels: 0\nL 3\n",
		"@Levels: 0\nL; z\n",
		"@Levels: 0 1\nL; 3\n",
		"@Levels: y\n",
		"@Reorder: 0 q\n",
	} {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestParseExcerpt(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r, err := testdata.UCDReader("BidiTest-excerpt.txt")
	require.NoError(t, err)
	cases, err := Parse(r)
	require.NoError(t, err)
	assert.Greater(t, len(cases), 30)
}
