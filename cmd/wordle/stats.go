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
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/mottalli/wordle/wordlist"
)

var statsCommand = &cli.Command{
	Name:  "stats",
	Usage: "Show dictionary statistics",
	Description: "List the word count of every per-length dictionary file " +
		"in the data directory.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Usage:   "load dictionary files from `DIR`",
			Aliases: []string{"d"},
			Value:   defaultDataDir(),
		},
	},
	Action: func(c *cli.Context) error {
		dir := c.String("data-dir")
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("error reading %q: %w", dir, err)
		}

		counts := make(map[int]int)
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			length, ok := bucketLength(entry.Name())
			if !ok {
				continue
			}

			n, err := countWords(filepath.Join(dir, entry.Name()))
			if err != nil {
				return err
			}
			counts[length] = n
		}

		lengths := make([]int, 0, len(counts))
		for length := range counts {
			lengths = append(lengths, length)
		}
		sort.Ints(lengths)

		tbl := table.New("Length", "Words").WithWriter(c.App.Writer)
		for _, length := range lengths {
			tbl.AddRow(length, counts[length])
		}
		tbl.Print()

		return nil
	},
}

// bucketLength parses the word length out of a dictionary file name of the
// form "<n>.txt".
func bucketLength(name string) (int, bool) {
	base, ok := strings.CutSuffix(name, ".txt")
	if !ok {
		return 0, false
	}
	length, err := strconv.Atoi(base)
	if err != nil || length < 0 || strconv.Itoa(length) != base {
		return 0, false
	}
	return length, true
}

func countWords(path string) (int, error) {
	scanner, err := wordlist.Open(path)
	if err != nil {
		return 0, err
	}
	defer scanner.Close()

	n := 0
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("error reading %q: %w", path, err)
	}
	return n, nil
}
