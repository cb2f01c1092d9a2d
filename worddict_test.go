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

package worddict_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDictionary_accessors tests the index accessors.
func TestDictionary_accessors(t *testing.T) {
	t.Parallel()

	d := loadDict(t,
		"Alduin = 阿爾杜因 --> 奥杜因",
		"Aldun = 奧爾敦",
	)

	if got, want := d.Count(), 2; got != want {
		t.Fatalf("Count: got %d, want %d", got, want)
	}

	left, ok := d.Left(0)
	if !ok || left != "Alduin" {
		t.Fatalf("Left(0): got %q, %v", left, ok)
	}

	// Right returns the most recent history entry.
	right, ok := d.Right(0)
	if !ok || right != "奥杜因" {
		t.Fatalf("Right(0): got %q, %v", right, ok)
	}

	history, ok := d.History(0)
	if !ok {
		t.Fatal("History(0): out of range")
	}
	if diff := cmp.Diff([]string{"阿爾杜因", "奥杜因"}, history); diff != "" {
		t.Fatalf("unexpected history (-want +got):\n%s", diff)
	}

	historyString, ok := d.HistoryString(0)
	if !ok || historyString != "阿爾杜因 --> 奥杜因" {
		t.Fatalf("HistoryString(0): got %q, %v", historyString, ok)
	}

	// Out of range accesses report !ok.
	if _, ok := d.Left(2); ok {
		t.Fatal("Left(2): expected out of range")
	}
	if _, ok := d.Right(-1); ok {
		t.Fatal("Right(-1): expected out of range")
	}
	if _, ok := d.History(2); ok {
		t.Fatal("History(2): expected out of range")
	}
	if _, ok := d.HistoryString(2); ok {
		t.Fatal("HistoryString(2): expected out of range")
	}
}

// TestDictionary_History_copies tests that History returns a copy that does
// not alias internal state.
func TestDictionary_History_copies(t *testing.T) {
	t.Parallel()

	d := loadDict(t, "Alduin = 阿爾杜因 --> 奥杜因")

	history, _ := d.History(0)
	history[0] = "mutated"

	fresh, _ := d.History(0)
	if diff := cmp.Diff([]string{"阿爾杜因", "奥杜因"}, fresh); diff != "" {
		t.Fatalf("internal history mutated (-want +got):\n%s", diff)
	}
}
