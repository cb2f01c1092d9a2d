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

package worddict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// maxLineSize is the maximum length of a single line of the backing file.
// Lines are held in memory whole, so a line can be much longer than
// bufio.MaxScanTokenSize allows by default.
const maxLineSize = 16 * 1024 * 1024

// Load reads the backing file into the dictionary. A missing file is not an
// error; the dictionary is simply left empty.
//
// Blank lines are skipped. Every other line must have the form
// "<left> = <right1> [--> <right2> ...]". Loading stops at the first broken
// line with a *ParseError carrying the physical 1-based line number; the
// dictionary is only partially populated in that case and must not be used.
// I/O failures are returned wrapped and are distinguishable from format
// errors with [errors.As].
func (d *Dictionary) Load() error {
	f, err := os.Open(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening %q: %w", d.path, err)
	}
	defer f.Close()

	s := bufio.NewScanner(bufio.NewReader(f))
	s.Buffer(nil, maxLineSize)

	line := 0
	for s.Scan() {
		line++

		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		if err := d.parseLine(line, text); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", d.path, err)
	}

	return nil
}

// parseLine validates a single non-blank line and appends the resulting entry.
func (d *Dictionary) parseLine(line int, text string) error {
	// The left term is everything before the first "=". When there is no "="
	// the whole line is treated as the left term so that validation failures
	// can still name it.
	before, after, found := strings.Cut(text, fieldSeparator)

	if strings.Contains(before, historySeparator) {
		return &ParseError{
			Line:   line,
			Left:   before,
			Reason: BadLeftString,
		}
	}

	left := strings.TrimRightFunc(before, unicode.IsSpace)

	// The duplicate check precedes the right-hand side checks so that a
	// re-listed left term is reported as a duplicate even when the rest of
	// its line is also malformed.
	if i, ok := d.LookupExact(left, 0); ok {
		return &ParseError{
			Line:        line,
			Left:        left,
			Reason:      Duplicated,
			Conflicting: d.entries[i].Left,
		}
	}

	if !found {
		return &ParseError{
			Line:   line,
			Left:   left,
			Reason: NoRightString,
		}
	}

	// Only one "=" is allowed per line. The reported right string is the
	// segment between the first and second "=".
	if segment, _, again := strings.Cut(after, fieldSeparator); again {
		return &ParseError{
			Line:   line,
			Left:   left,
			Reason: BadRightString,
			Right:  segment,
		}
	}

	var history []string
	for _, r := range strings.Split(after, historySeparator) {
		r = strings.TrimSpace(r)
		if r == "" {
			return &ParseError{
				Line:   line,
				Left:   left,
				Reason: BadRightString,
				Right:  after,
			}
		}
		history = append(history, r)
	}

	d.entries = append(d.entries, Entry{
		Left:  left,
		Right: history,
	})

	return nil
}
