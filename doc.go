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

// Package worddict implements a small bilingual lookup table backed by a flat
// UTF-8 text file.
//
// Each line of the backing file maps a left term to the history of right
// terms it has been translated to:
//
//	<left> = <right1> [--> <right2> ...]
//
// The last right term in a history is the current translation. Left terms are
// unique under case folding, and neither side may contain the "=" or "-->"
// delimiters. The whole table is rewritten, sorted by left term, on every
// mutation.
//
// The engine is single-threaded. Callers that share a Dictionary across
// goroutines must serialize access themselves.
package worddict
