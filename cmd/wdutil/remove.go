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
	"fmt"

	"github.com/urfave/cli/v2"
)

// removeCommand removes a dictionary entry.
var removeCommand = &cli.Command{
	Name:      "remove",
	Usage:     "Remove a dictionary entry",
	ArgsUsage: "LEFT",
	// Entries are addressed by left term rather than index. Indices are
	// reshuffled on every write so they make poor external identifiers.
	Description: "Remove the entry for the left term LEFT along with its whole translation history.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		left := normalize(c.Args().Get(0))

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		index, ok := d.LookupExact(left, 0)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotFound, left)
		}

		removed, err := d.Remove(index)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWdutil, err)
		}
		if removed {
			fmt.Fprintf(c.App.Writer, "removed %s\n", left)
		}

		return nil
	},
}
