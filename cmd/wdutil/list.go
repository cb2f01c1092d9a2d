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

// listCommand lists all dictionary entries.
var listCommand = &cli.Command{
	Name:        "list",
	Usage:       "List all dictionary entries",
	Description: "List every entry in the dictionary file.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		indices := make([]int, d.Count())
		for i := range indices {
			indices[i] = i
		}
		printEntries(c, d, indices)

		return nil
	},
}
