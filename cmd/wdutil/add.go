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
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// addCommand adds or edits a dictionary entry.
var addCommand = &cli.Command{
	Name:      "add",
	Usage:     "Add or edit a dictionary entry",
	ArgsUsage: "LEFT RIGHT",
	Description: strings.Join([]string{
		"Map the left term LEFT to the translation RIGHT.",
		"If LEFT already exists RIGHT is appended to its translation",
		"history and becomes the current translation.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		left := normalize(c.Args().Get(0))
		right := normalize(c.Args().Get(1))

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		created, err := d.Upsert(left, right)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWdutil, err)
		}

		index, ok := d.LookupExact(left, 0)
		if !ok {
			// Upsert succeeded so the entry must be present.
			panic(fmt.Sprintf("entry %q missing after upsert", left))
		}
		history, _ := d.HistoryString(index)

		verb := color.GreenString("created")
		if !created {
			verb = color.YellowString("updated")
		}
		fmt.Fprintf(c.App.Writer, "%s %s = %s\n", verb, left, history)

		return nil
	},
}
