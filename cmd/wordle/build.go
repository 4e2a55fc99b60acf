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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mottalli/wordle/wordlist"
)

// sourceName is the compressed word list the build command consumes, in the
// working directory.
const sourceName = "english-words.txt.gz"

var buildCommand = &cli.Command{
	Name:  "build",
	Usage: "Build per-length dictionary files",
	Description: "Split ./" + sourceName + " into one <length>.txt file per " +
		"distinct word length, in the working directory.",
	Action: func(c *cli.Context) error {
		counts, err := wordlist.Split(sourceName, ".")
		if err != nil {
			return err
		}

		words := 0
		for _, n := range counts {
			words += n
		}
		fmt.Fprintf(c.App.Writer, "wrote %d words into %d files\n", words, len(counts))
		return nil
	},
}
