/*
Package textrun creates bidi runs from text, one slot per rune.

Package bidi resolves runs of glyph slots and does not know about characters.
For clients which start from text, textrun looks up the bidi class of every
rune and optionally maps runes to glyphs.

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
package textrun

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxbidi/bidi"
	xbidi "golang.org/x/text/unicode/bidi"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// GlyphMapper maps runes to glyphs, usually by a font's cmap.
type GlyphMapper interface {
	GlyphIndex(r rune) bidi.GlyphID
}

// Text is a run of slots, together with the runes it has been created from.
// Slot i corresponds to rune i.
type Text struct {
	Run   *bidi.Run
	Runes []rune
}

// Option configures the creation of a Text.
type Option func(b *builder)

type builder struct {
	mode   uint
	glyphs GlyphMapper
}

const (
	optionTesting uint = 1 << 3 // test mode: recognize uppercase as class R
)

func (b *builder) hasMode(m uint) bool {
	return b.mode&m > 0
}

// Testing will make New recognize UPPERCASE letters as having class R.
// This is a common pattern in bidi algorithm development.
func Testing(t bool) Option {
	return func(b *builder) {
		if t {
			b.mode |= optionTesting
		} else {
			b.mode &^= optionTesting
		}
	}
}

// Glyphs sets a mapper for glyph IDs. Without it, glyph IDs are the runes
// themselves, truncated to 16 bits.
func Glyphs(m GlyphMapper) Option {
	return func(b *builder) {
		b.glyphs = m
	}
}

// New creates a Text for a string.
func New(text string, opts ...Option) *Text {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	runes := []rune(text)
	run := bidi.NewRun(len(runes))
	for _, r := range runes {
		var g bidi.GlyphID
		if b.glyphs != nil {
			g = b.glyphs.GlyphIndex(r)
		} else {
			g = bidi.GlyphID(r)
		}
		run.Append(b.classOf(r), g)
	}
	T().Debugf("textrun: created run of %d slots", run.Len())
	return &Text{Run: run, Runes: runes}
}

func (b *builder) classOf(r rune) bidi.Class {
	if b.hasMode(optionTesting) && unicode.IsUpper(r) {
		return bidi.R // during testing, UPPERCASE is R2L
	}
	props, sz := xbidi.LookupRune(r)
	if sz == 0 {
		return bidi.ON
	}
	return bidi.FromUnicode(props.Class())
}

// Resolve performs the bidi algorithm on a Text and returns the runes in
// visual order. Runes for explicit formatting characters are dropped.
func (t *Text) Resolve(opts ...bidi.Option) string {
	bidi.Resolve(t.Run, opts...)
	return t.Visual()
}

// Visual returns the runes of t in the visual order of its run, omitting
// explicit formatting characters.
func (t *Text) Visual() string {
	var out strings.Builder
	for _, i := range t.Run.VisualOrder() {
		if isFormatting(t.Runes[i]) {
			continue
		}
		out.WriteRune(t.Runes[i])
	}
	return out.String()
}

// isFormatting is true for the explicit bidi formatting characters.
func isFormatting(r rune) bool {
	switch {
	case r >= 0x202A && r <= 0x202E: // LRE, RLE, PDF, LRO, RLO
		return true
	case r >= 0x2066 && r <= 0x2069: // LRI, RLI, FSI, PDI
		return true
	}
	return false
}
