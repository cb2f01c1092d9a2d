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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"worddict/internal/folding"
)

// Upsert adds or extends an entry and persists the table. Both terms are
// trimmed of surrounding whitespace first.
//
// If no entry exists for left, a new entry is created and Upsert returns
// true. If an entry exists and right differs from its current translation,
// right is appended to the history and Upsert returns false.
//
// Validation rejections (ErrBadLeftString, ErrBadRightString, ErrDuplicate,
// ErrSame) leave the table unchanged. A persistence failure is returned after
// the in-memory mutation has been applied; memory and disk may then disagree.
func (d *Dictionary) Upsert(left, right string) (bool, error) {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	switch {
	case strings.Contains(left, historySeparator) || strings.Contains(left, fieldSeparator):
		return false, ErrBadLeftString
	case strings.Contains(right, historySeparator) || strings.Contains(right, fieldSeparator):
		return false, ErrBadRightString
	case left == right:
		return false, ErrSame
	}

	if index, ok := d.LookupExact(left, 0); ok {
		e := &d.entries[index]
		if e.Right[len(e.Right)-1] == right {
			return false, ErrDuplicate
		}
		e.Right = append(e.Right, right)
		return false, d.flush()
	}

	d.entries = append(d.entries, Entry{
		Left:  left,
		Right: []string{right},
	})
	return true, d.flush()
}

// Remove deletes the entry at index and persists the table. It returns false
// without error when index is out of range.
//
// Indices shift after a successful Remove; re-resolve any held indices with a
// lookup.
func (d *Dictionary) Remove(index int) (bool, error) {
	if index < 0 || index >= len(d.entries) {
		return false, nil
	}

	d.entries = slices.Delete(d.entries, index, index+1)
	return true, d.flush()
}

// flush sorts the table by case-folded left term and rewrites the backing
// file. The sort reorders the in-memory entries, so indices obtained before a
// flush are invalid after it.
//
// The file is written to a temporary file in the same directory and renamed
// over the target so a failure mid-write cannot leave a truncated file.
func (d *Dictionary) flush() error {
	d.sortEntries()

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for i, e := range d.entries {
		if i > 0 {
			w.WriteByte('\n')
		}
		fmt.Fprintf(w, "%s %s %s", e.Left, fieldSeparator, strings.Join(e.Right, historyJoin))
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("replacing %q: %w", d.path, err)
	}

	return nil
}

// sortEntries sorts entries by case-folded left term. Folded left terms are
// unique so the order is total.
func (d *Dictionary) sortEntries() {
	slices.SortFunc(d.entries, func(a, b Entry) int {
		return strings.Compare(folding.Fold(a.Left), folding.Fold(b.Left))
	})
}
