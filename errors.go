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
	"errors"
	"fmt"
)

// Mutation rejections returned by Upsert. These are validation errors; the
// table is unchanged when one is returned.
var (
	// ErrBadLeftString indicates the left term contains a format delimiter.
	ErrBadLeftString = errors.New("the left word is not correct")

	// ErrBadRightString indicates the right term contains a format delimiter.
	ErrBadRightString = errors.New("the right word is not correct")

	// ErrDuplicate indicates the right term is already the current
	// translation for the left term.
	ErrDuplicate = errors.New("the pair of the left word and the right word is duplicated")

	// ErrSame indicates the left and right terms are equal.
	ErrSame = errors.New("the left word is equal to the right word")
)

// BrokenReason is the reason a line of the backing file failed to parse.
type BrokenReason int

const (
	// BadLeftString indicates the segment before "=" contains "-->".
	BadLeftString BrokenReason = iota + 1

	// NoRightString indicates the line has no "=" separator.
	NoRightString

	// BadRightString indicates the right-hand side contains a second "=" or
	// an empty history element.
	BadRightString

	// Duplicated indicates the left term already appears on an earlier line.
	Duplicated
)

// String implements [fmt.Stringer].
func (r BrokenReason) String() string {
	switch r {
	case BadLeftString:
		return "BadLeftString"
	case NoRightString:
		return "NoRightString"
	case BadRightString:
		return "BadRightString"
	case Duplicated:
		return "Duplicated"
	default:
		return fmt.Sprintf("BrokenReason(%d)", int(r))
	}
}

// ParseError is a format-validation failure in the backing file. Parsing
// stops at the first broken line; the store must be discarded when Load
// returns a ParseError.
type ParseError struct {
	// Line is the 1-based physical line number of the broken line.
	Line int

	// Left is the offending left term.
	Left string

	// Reason is the reason the line is broken.
	Reason BrokenReason

	// Right is the offending right-hand side. Set when Reason is
	// BadRightString.
	Right string

	// Conflicting is the left term already stored at the conflicting index.
	// Set when Reason is Duplicated.
	Conflicting string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("broken at line %d, ", e.Line)
	switch e.Reason {
	case BadLeftString:
		msg += fmt.Sprintf("the left string %q is not correct", e.Left)
	case NoRightString:
		msg += fmt.Sprintf("expected a %q after the left string %q to concatenate a right string", fieldSeparator, e.Left)
	case BadRightString:
		msg += fmt.Sprintf("the right string %q is not correct", e.Right)
	case Duplicated:
		if e.Left == e.Conflicting {
			msg += fmt.Sprintf("the left string %q is duplicated", e.Left)
		} else {
			msg += fmt.Sprintf("the left string %q and %q are duplicated", e.Left, e.Conflicting)
		}
	default:
		msg += fmt.Sprintf("the left string %q is broken: %v", e.Left, e.Reason)
	}
	return msg
}
