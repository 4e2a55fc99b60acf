// Copyright 2025 the wordle authors
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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWordle is a parent error for all command errors.
var ErrWordle = errors.New("wordle")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWordle)

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument but we don't use commands that way.
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

func newWordleApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Play wordle in the terminal.",
		Description: strings.Join([]string{
			"Terminal wordle game and dictionary build tool.",
			"http://github.com/mottalli/wordle",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "word-size",
				Usage: "number of letters in the word to guess",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  "num-guesses",
				Usage: "number of tries",
				Value: 6,
			},
			&cli.BoolFlag{
				Name:  "dont-use-dictionary",
				Usage: "accept guesses that are not dictionary words",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "load dictionary files from `DIR`",
				Aliases: []string{"d"},
				Value:   defaultDataDir(),
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
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}

			return playGame(c)
		},
		Commands: []*cli.Command{
			buildCommand,
			statsCommand,
		},
	}
}

func defaultDataDir() string {
	for _, dir := range dataDirLocations() {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	return "dictionaries/english"
}
