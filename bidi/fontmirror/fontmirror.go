/*
Package fontmirror provides glyph mirroring attributes for a font, as needed by
package bidi for substituting mirrored glyphs at right-to-left levels.

The mirrored glyph of a glyph is found by mapping the glyph's character to its
Bidi_Mirroring_Glyph counterpart (e.g., '(' to ')'), and looking up that
character in the font's cmap.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package fontmirror

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxbidi/bidi"
	"golang.org/x/image/font/sfnt"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Table holds the mirroring attributes for the glyphs of a font.
//
// A Table is not safe for concurrent use by multiple goroutines, as it shares
// an sfnt.Buffer for cmap lookups.
type Table struct {
	font    *sfnt.Font
	buf     sfnt.Buffer
	attr    uint8
	mirrors map[bidi.GlyphID]bidi.GlyphID
}

// New creates a mirroring table for a font. attr is the attribute number
// the table answers for with the mirrored glyph; attribute attr+1 flags
// glyphs whose mirror is encoded in the font. attr must not be 0.
func New(f *sfnt.Font, attr uint8) (*Table, error) {
	if f == nil {
		return nil, errors.New("fontmirror: no font")
	}
	if attr == 0 || attr == 0xff {
		return nil, fmt.Errorf("fontmirror: invalid mirror attribute number %d", attr)
	}
	t := &Table{
		font:    f,
		attr:    attr,
		mirrors: make(map[bidi.GlyphID]bidi.GlyphID, len(mirrorPairs)),
	}
	for r, m := range mirrorPairs {
		g, err := f.GlyphIndex(&t.buf, r)
		if err != nil {
			return nil, fmt.Errorf("fontmirror: cmap lookup for %#U: %w", r, err)
		}
		if g == 0 {
			continue
		}
		gm, err := f.GlyphIndex(&t.buf, m)
		if err != nil {
			return nil, fmt.Errorf("fontmirror: cmap lookup for %#U: %w", m, err)
		}
		if gm == 0 || gm == g {
			continue
		}
		t.mirrors[bidi.GlyphID(g)] = bidi.GlyphID(gm)
	}
	tracer().Debugf("fontmirror: font has %d mirrored glyphs", len(t.mirrors))
	return t, nil
}

// Attr returns the attribute number of the mirrored glyph.
func (t *Table) Attr() uint8 {
	return t.attr
}

// Len returns the number of glyphs with a mirrored counterpart.
func (t *Table) Len() int {
	return len(t.mirrors)
}

// GlyphAttr implements bidi.GlyphAttributes.
func (t *Table) GlyphAttr(gid bidi.GlyphID, attr uint8) uint16 {
	m, ok := t.mirrors[gid]
	if !ok {
		return 0
	}
	switch attr {
	case t.attr:
		return uint16(m)
	case t.attr + 1:
		return 1
	}
	return 0
}

// GlyphIndex returns the glyph for a rune, or 0 if the font does not map it.
func (t *Table) GlyphIndex(r rune) bidi.GlyphID {
	g, err := t.font.GlyphIndex(&t.buf, r)
	if err != nil {
		tracer().Errorf("fontmirror: cmap lookup for %#U: %v", r, err)
		return 0
	}
	return bidi.GlyphID(g)
}
