// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements the text folding applied to queries and to the
// searchable fields of dictionary records.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// TrimFolder removes whitespace from the beginning and end of the input.
// Internal whitespace spans are emitted unchanged.
type TrimFolder struct {
	// started is true after encountering the first non-whitespace rune.
	started bool

	// pending holds an internal whitespace span that has not been emitted
	// yet. It is dropped if the input ends before another rune is seen.
	pending []byte
}

// Transform implements [transform.Transformer.Transform].
func (t *TrimFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			if t.started {
				t.pending = append(t.pending, src[nSrc:nSrc+size]...)
			}
			nSrc += size
			continue
		}

		// The pending span may be larger than dst so it is flushed as far
		// as it fits and the rest is kept for the next call.
		if len(t.pending) > 0 {
			n := copy(dst[nDst:], t.pending)
			nDst += n
			t.pending = t.pending[:copy(t.pending, t.pending[n:])]
			if len(t.pending) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}

		// NOTE: invalid bytes are copied through as is.
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		t.started = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (t *TrimFolder) Reset() {
	t.started = false
	t.pending = t.pending[:0]
}
