// Copyright 2026 The go-worddict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder performs whitespace folding on the input. Leading and
// trailing whitespace is removed and each internal whitespace span is
// replaced with a single ASCII space rune. Dictionary terms and queries are
// folded this way before they reach the store so that entered and stored
// forms cannot differ by spacing alone.
type WhitespaceFolder struct {
	// seenRune is true after the first non-whitespace rune.
	seenRune bool

	// inSpan is true while consuming a whitespace span.
	inSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			// Leading whitespace is dropped entirely. A span that turns out
			// to be trailing whitespace never gets emitted either, since a
			// span is only flushed when a non-whitespace rune follows it.
			w.inSpan = w.seenRune
			continue
		}

		if w.inSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.inSpan = false
		}
		w.seenRune = true
		nSrc += size

		// c could be utf8.RuneError with size 1 while the replacement
		// character encodes to 3 bytes, so the rune length is computed from c
		// rather than size.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
