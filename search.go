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
	"slices"
	"strings"

	"worddict/internal/folding"
)

// maxSubstringMatches caps the number of results returned by substring
// lookups.
const maxSubstringMatches = 50

// LookupExact returns the index of the entry whose left term equals term
// under case folding. The scan starts at start modulo Count and wraps around
// once, so the first match at or after the start index wins.
func (d *Dictionary) LookupExact(term string, start int) (int, bool) {
	size := len(d.entries)
	if size == 0 {
		return 0, false
	}
	start = rotate(start, size)

	folded := folding.Fold(term)

	for i := 0; i < size; i++ {
		index := (start + i) % size
		if folding.Fold(d.entries[index].Left) == folded {
			return index, true
		}
	}

	return 0, false
}

// LookupSubstring returns the indices of entries whose left term contains
// term under case folding, in the order they are encountered scanning from
// start modulo Count with wraparound. At most 50 indices are returned.
func (d *Dictionary) LookupSubstring(term string, start int) []int {
	size := len(d.entries)
	if size == 0 {
		return nil
	}
	start = rotate(start, size)

	folded := folding.Fold(term)

	var matches []int
	for i := 0; i < size; i++ {
		if len(matches) == maxSubstringMatches {
			break
		}

		index := (start + i) % size
		if strings.Contains(folding.Fold(d.entries[index].Left), folded) {
			matches = append(matches, index)
		}
	}

	return matches
}

// LookupRightExact returns the index of the first entry whose right history
// contains a term equal to term under case folding. Histories are scanned
// newest to oldest. The entry scan starts at start modulo Count and wraps
// around once.
func (d *Dictionary) LookupRightExact(term string, start int) (int, bool) {
	size := len(d.entries)
	if size == 0 {
		return 0, false
	}
	start = rotate(start, size)

	folded := folding.Fold(term)

	for i := 0; i < size; i++ {
		index := (start + i) % size
		right := d.entries[index].Right
		for j := len(right) - 1; j >= 0; j-- {
			if folding.Fold(right[j]) == folded {
				return index, true
			}
		}
	}

	return 0, false
}

// LookupRightSubstring returns the index of the first entry with a right term
// containing term under case folding. Histories are scanned newest to oldest
// and the scan short-circuits on the first hit.
func (d *Dictionary) LookupRightSubstring(term string, start int) (int, bool) {
	size := len(d.entries)
	if size == 0 {
		return 0, false
	}
	start = rotate(start, size)

	folded := folding.Fold(term)

	for i := 0; i < size; i++ {
		index := (start + i) % size
		right := d.entries[index].Right
		for j := len(right) - 1; j >= 0; j-- {
			if strings.Contains(folding.Fold(right[j]), folded) {
				return index, true
			}
		}
	}

	return 0, false
}

// PairsContaining returns a mapping from left term to right history for every
// entry whose left term contains keyword under case folding. An empty
// dictionary yields an empty map.
func (d *Dictionary) PairsContaining(keyword string) map[string][]string {
	pairs := map[string][]string{}
	for _, index := range d.LookupSubstring(keyword, 0) {
		e := d.entries[index]
		pairs[e.Left] = slices.Clone(e.Right)
	}
	return pairs
}

// rotate normalizes a rotation start index into [0, size).
func rotate(start, size int) int {
	start %= size
	if start < 0 {
		start += size
	}
	return start
}
