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
)

const (
	// fieldSeparator separates the left term from the right history on a
	// line.
	fieldSeparator = "="

	// historySeparator separates right terms within a history.
	historySeparator = "-->"

	// historyJoin is the written form of the history separator.
	historyJoin = " --> "
)

// Entry is a single dictionary entry. The right history is ordered oldest to
// newest; the last element is the current translation.
type Entry struct {
	Left  string
	Right []string
}

// Dictionary is an in-memory bilingual lookup table bound to a backing file.
// Entries are held in a flat array and all lookups are linear scans. Entry
// indices are not stable across mutations because the table is re-sorted
// before every write; hold on to left terms, not indices.
type Dictionary struct {
	path    string
	entries []Entry
}

// Open returns a Dictionary bound to the file at path without reading it. Use
// the Load method to read existing data.
func Open(path string) *Dictionary {
	return &Dictionary{
		path: path,
	}
}

// Path returns the path of the backing file.
func (d *Dictionary) Path() string {
	return d.path
}

// Count returns the number of entries.
func (d *Dictionary) Count() int {
	return len(d.entries)
}

// Left returns the left term at index.
func (d *Dictionary) Left(index int) (string, bool) {
	if index < 0 || index >= len(d.entries) {
		return "", false
	}
	return d.entries[index].Left, true
}

// Right returns the current translation at index, the last entry in the right
// history.
func (d *Dictionary) Right(index int) (string, bool) {
	if index < 0 || index >= len(d.entries) {
		return "", false
	}
	right := d.entries[index].Right
	return right[len(right)-1], true
}

// History returns a copy of the right history at index, ordered oldest to
// newest.
func (d *Dictionary) History(index int) ([]string, bool) {
	if index < 0 || index >= len(d.entries) {
		return nil, false
	}
	return slices.Clone(d.entries[index].Right), true
}

// HistoryString returns the right history at index joined by " --> " in the
// same form it is written to the backing file.
func (d *Dictionary) HistoryString(index int) (string, bool) {
	if index < 0 || index >= len(d.entries) {
		return "", false
	}
	return strings.Join(d.entries[index].Right, historyJoin), true
}

// Entries returns a copy of all entries in their current scan order.
func (d *Dictionary) Entries() []Entry {
	entries := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		entries[i] = Entry{
			Left:  e.Left,
			Right: slices.Clone(e.Right),
		}
	}
	return entries
}
