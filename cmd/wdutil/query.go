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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"worddict"
)

// queryCommand searches left terms for a query string.
var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Search the dictionary for a term",
	ArgsUsage: "TERM",
	Description: strings.Join([]string{
		"Search left terms for TERM.",
		"An exact (case-insensitive) match is preferred; otherwise all",
		"entries containing TERM are listed.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "right",
			Usage:   "search translations instead of left terms",
			Aliases: []string{"r"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		term := normalize(c.Args().Get(0))

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		var matches []int
		if c.Bool("right") {
			if i, ok := d.LookupRightExact(term, 0); ok {
				matches = []int{i}
			} else if i, ok := d.LookupRightSubstring(term, 0); ok {
				matches = []int{i}
			}
		} else {
			if i, ok := d.LookupExact(term, 0); ok {
				matches = []int{i}
			} else {
				matches = d.LookupSubstring(term, 0)
			}
		}

		if len(matches) == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, term)
		}

		printEntries(c, d, matches)
		return nil
	},
}

// printEntries renders the entries at the given indices as a table.
func printEntries(c *cli.Context, d *worddict.Dictionary, indices []int) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	currentFmt := color.New(color.FgCyan).SprintfFunc()

	tbl := table.New("Term", "Translation", "History").
		WithWriter(c.App.Writer).
		WithHeaderFormatter(headerFmt)

	for _, i := range indices {
		left, _ := d.Left(i)
		right, _ := d.Right(i)
		history, _ := d.HistoryString(i)
		tbl.AddRow(left, currentFmt("%s", right), history)
	}

	tbl.Print()
}
