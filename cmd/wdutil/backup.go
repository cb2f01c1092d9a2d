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
	"io"
	"os"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/urfave/cli/v2"
)

// backupCommand snapshots the dictionary file.
var backupCommand = &cli.Command{
	Name:      "backup",
	Usage:     "Back up the dictionary file",
	ArgsUsage: " ",
	Description: strings.Join([]string{
		"Copy the dictionary file to a backup file.",
		"With --compress the backup is written in the dictzip format, which",
		"remains randomly accessible to dict tooling.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the backup to `FILE`",
			Aliases: []string{"o"},
		},
		&cli.BoolFlag{
			Name:    "compress",
			Usage:   "compress the backup with dictzip",
			Aliases: []string{"z"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		path := c.String("file")
		output := c.String("output")
		if output == "" {
			output = path + ".bak"
			if c.Bool("compress") {
				output = path + ".dz"
			}
		}

		if err := backupFile(path, output, c.Bool("compress")); err != nil {
			return fmt.Errorf("%w: %w", ErrWdutil, err)
		}

		fmt.Fprintf(c.App.Writer, "backed up %s to %s\n", path, output)
		return nil
	},
}

// backupFile copies the file at path to output, optionally dictzip
// compressed.
func backupFile(path, output string, compress bool) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer src.Close()

	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %q: %w", output, err)
	}

	var w io.Writer = dst
	var z *dictzip.Writer
	if compress {
		z, err = dictzip.NewWriter(dst)
		if err != nil {
			dst.Close()
			return fmt.Errorf("creating dictzip writer: %w", err)
		}
		w = z
	}

	if _, err := io.Copy(w, src); err != nil {
		dst.Close()
		return fmt.Errorf("writing %q: %w", output, err)
	}

	if z != nil {
		if err := z.Close(); err != nil {
			dst.Close()
			return fmt.Errorf("writing %q: %w", output, err)
		}
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", output, err)
	}

	return nil
}
