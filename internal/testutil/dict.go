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

// Package testutil provides helpers for writing dictionary file fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDict writes a dictionary file with the given lines to a temporary
// directory and returns its path.
func WriteDict(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dictionary.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// ReadDict reads back the dictionary file at path and returns its lines.
func ReadDict(t *testing.T, path string) []string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return strings.Split(string(b), "\n")
}
