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

// Package folding implements text folding used to normalize dictionary terms
// and queries.
package folding

import (
	"golang.org/x/text/cases"
)

// Fold returns s with Unicode case folding applied. Folded strings compare
// byte-wise case-insensitively, e.g. Fold("Straße") == Fold("STRASSE").
func Fold(s string) string {
	return cases.Fold().String(s)
}
