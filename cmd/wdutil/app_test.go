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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worddict/internal/testutil"
)

// runApp runs the wdutil app against the dictionary at path and returns its
// output.
func runApp(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newWdutilApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"wdutil", "--file", path}, args...))
	return out.String(), err
}

func TestApp_add(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dictionary.txt")

	out, err := runApp(t, path, "add", "Alduin", "阿爾杜因")
	require.NoError(t, err)
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "Alduin = 阿爾杜因")

	out, err = runApp(t, path, "add", "Alduin", "奥杜因")
	require.NoError(t, err)
	assert.Contains(t, out, "updated")
	assert.Contains(t, out, "Alduin = 阿爾杜因 --> 奥杜因")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alduin = 阿爾杜因 --> 奥杜因", string(b))
}

func TestApp_add_whitespaceFolding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dictionary.txt")

	// Spacing differences in entered terms are folded away.
	_, err := runApp(t, path, "add", "  Dragon \t Reach ", "龍臨堡")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dragon Reach = 龍臨堡", string(b))
}

func TestApp_add_rejected(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t, "Alduin = 奥杜因")

	_, err := runApp(t, path, "add", "foo = bar", "baz")
	require.Error(t, err)

	_, err = runApp(t, path, "add", "Alduin", "奥杜因")
	require.Error(t, err)

	// The file is untouched.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alduin = 奥杜因", string(b))
}

func TestApp_query(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t,
		"Alduin = 阿爾杜因 --> 奥杜因",
		"Aldun = 奧爾敦",
	)

	// Exact match returns a single entry.
	out, err := runApp(t, path, "query", "alduin")
	require.NoError(t, err)
	assert.Contains(t, out, "Alduin")
	assert.Contains(t, out, "阿爾杜因 --> 奥杜因")
	assert.NotContains(t, out, "Aldun")

	// Substring match returns all containing entries.
	out, err = runApp(t, path, "query", "ald")
	require.NoError(t, err)
	assert.Contains(t, out, "Alduin")
	assert.Contains(t, out, "Aldun")

	// Right-hand search.
	out, err = runApp(t, path, "query", "--right", "奧爾敦")
	require.NoError(t, err)
	assert.Contains(t, out, "Aldun")

	// No match is an error.
	_, err = runApp(t, path, "query", "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApp_suggest(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t,
		"Alduin = 阿爾杜因 --> 奥杜因",
		"Aldun = 奧爾敦",
		"Breezehome = 微風閣",
	)

	out, err := runApp(t, path, "suggest", "ald")
	require.NoError(t, err)
	assert.Contains(t, out, "Alduin")
	assert.Contains(t, out, "阿爾杜因, 奥杜因")
	assert.Contains(t, out, "Aldun")
	assert.NotContains(t, out, "Breezehome")

	// An empty dictionary suggests nothing but does not fail.
	empty := filepath.Join(t.TempDir(), "missing.txt")
	_, err = runApp(t, empty, "suggest", "ald")
	require.NoError(t, err)
}

func TestApp_list(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t,
		"Alduin = 奥杜因",
		"Aldun = 奧爾敦",
	)

	out, err := runApp(t, path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Alduin")
	assert.Contains(t, out, "Aldun")
}

func TestApp_remove(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t,
		"Alduin = 奥杜因",
		"Aldun = 奧爾敦",
	)

	out, err := runApp(t, path, "remove", "ALDUIN")
	require.NoError(t, err)
	assert.Contains(t, out, "removed")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Aldun = 奧爾敦", string(b))

	_, err = runApp(t, path, "remove", "Alduin")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApp_backup(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t, "Alduin = 奥杜因")

	output := filepath.Join(t.TempDir(), "backup.txt")
	_, err := runApp(t, path, "backup", "--output", output)
	require.NoError(t, err)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	backup, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, src, backup)
}

func TestApp_backup_compressed(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t, "Alduin = 奥杜因")

	output := filepath.Join(t.TempDir(), "backup.dz")
	_, err := runApp(t, path, "backup", "--compress", "--output", output)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	z, err := dictzip.NewReader(f)
	require.NoError(t, err)
	defer z.Close()

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	decompressed := make([]byte, len(src))
	n, err := z.ReadAt(decompressed, 0)
	if err != nil {
		require.ErrorIs(t, err, io.EOF)
	}
	assert.Equal(t, src, decompressed[:n])
}

func TestApp_broken_dictionary(t *testing.T) {
	t.Parallel()

	path := testutil.WriteDict(t, "A --> B = C")

	_, err := runApp(t, path, "query", "foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken at line 1")
}

func TestApp_version(t *testing.T) {
	t.Parallel()

	out, err := runApp(t, filepath.Join(t.TempDir(), "dictionary.txt"), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "GitVersion")
}
