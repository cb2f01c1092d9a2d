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
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

// suggestCommand lists completion suggestions for a keyword.
var suggestCommand = &cli.Command{
	Name:        "suggest",
	Usage:       "Suggest entries containing a keyword",
	ArgsUsage:   "KEYWORD",
	Description: "List every entry whose left term contains KEYWORD, with its full translation history.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		keyword := normalize(c.Args().Get(0))

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		pairs := d.PairsContaining(keyword)

		terms := make([]string, 0, len(pairs))
		for term := range pairs {
			terms = append(terms, term)
		}
		sort.Strings(terms)

		headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
		tbl := table.New("Term", "Translations").
			WithWriter(c.App.Writer).
			WithHeaderFormatter(headerFmt)
		for _, term := range terms {
			tbl.AddRow(term, strings.Join(pairs[term], ", "))
		}
		tbl.Print()

		return nil
	},
}
