/*
Package bidi implements the Unicode UAX#9 Bidirectional Algorithm for runs of
glyph slots, as part of a font shaping pipeline.

Clients hand over a Run, i.e. a sequence of slots in logical order, each slot
pre-tagged with a primitive bidi class. Resolve will then

  ▪︎ assign embedding levels for explicit embeddings, overrides and isolates
    (rules X1–X9),
  ▪︎ group the slots into isolating run sequences (BD13, X10),
  ▪︎ resolve weak types (W1–W7) and neutral types (N1–N2) with two finite state
    machines, one isolating run sequence at a time,
  ▪︎ apply implicit levels (I1–I2) and, optionally, substitute mirrored glyphs,
  ▪︎ reset separators and trailing whitespace to the paragraph level (L1),
  ▪︎ and re-link the slots into visual order (L2).

Bracket pairs (rule N0) are not resolved. Line breaking is left to the client;
a Run is expected to be a single line of a single paragraph. A paragraph
separator (B) inside a run terminates all embeddings and isolates (X8), but
the paragraph level is determined once for the whole run.

The visual order is returned as a ring of slots: starting from the head
returned by Resolve, Run.VisualNext will step through all the slots from left
to right and finally wrap around to the head.

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
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "13.0.0"

// MaxDepth is the maximum explicit embedding level (max_depth in UAX#9).
const MaxDepth = 125

// assertThat panics when condition is false.
func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
