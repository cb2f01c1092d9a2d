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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/transform"
	"sigs.k8s.io/release-utils/version"

	"worddict"
	"worddict/internal/folding"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// defaultDictFile is the dictionary file used when --file isn't given.
const defaultDictFile = "dictionary.txt"

// ErrWdutil is a parent error for all command errors.
var ErrWdutil = errors.New("wdutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWdutil)

// ErrNotFound indicates no dictionary entry matched.
var ErrNotFound = fmt.Errorf("%w: not found", ErrWdutil)

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `wdutil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// normalize folds whitespace in user input before it reaches the dictionary
// so that entered terms cannot differ from stored terms by spacing alone.
func normalize(s string) string {
	folded, _, err := transform.String(&folding.WhitespaceFolder{}, s)
	check(err)
	return folded
}

// openDictionary opens and loads the dictionary named by the --file flag.
func openDictionary(c *cli.Context) (*worddict.Dictionary, error) {
	path := c.String("file")

	d := worddict.Open(path)
	if err := d.Load(); err != nil {
		return nil, fmt.Errorf("%w: loading dictionary: %w", ErrWdutil, err)
	}

	slog.Debug("dictionary loaded", "path", path, "entries", d.Count())
	return d, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	versionInfo.Name = c.App.Name
	versionInfo.Description = c.App.Usage
	_, err := fmt.Fprintln(c.App.Writer, versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrWdutil, err)
	}
	return nil
}

func newWdutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search and edit word dictionary files.",
		Description: strings.Join([]string{
			"Word dictionary utility written in Go.",
			"Dictionary files map left terms to a history of translations,",
			"one entry per line: <left> = <right1> [--> <right2> ...]",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Usage:   "dictionary `FILE` to operate on",
				Aliases: []string{"f"},
				Value:   defaultDictFile,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			logLevel := slog.LevelInfo
			if c.Bool("debug") {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
				Level: logLevel,
			})))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand,
			suggestCommand,
			listCommand,
			addCommand,
			removeCommand,
			backupCommand,
		},
	}
}
