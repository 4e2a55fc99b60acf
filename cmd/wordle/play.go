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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mottalli/wordle/dictionary"
	"github.com/mottalli/wordle/game"
)

var (
	colorMissing = color.New(color.FgBlack, color.BgRed)
	colorPresent = color.New(color.FgBlack, color.BgYellow)
	colorCorrect = color.New(color.FgBlack, color.BgGreen)
	colorUnused  = color.New(color.FgWhite)
)

func playGame(c *cli.Context) error {
	size := c.Int("word-size")

	dict, err := dictionary.Load(c.String("data-dir"), size)
	if err != nil {
		return err
	}

	word, err := dict.RandomWord(size)
	if err != nil {
		return err
	}

	g, err := game.New(dict, word, &game.Options{
		MaxGuesses:          c.Int("num-guesses"),
		SkipDictionaryCheck: c.Bool("dont-use-dictionary"),
	})
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprintf(c.App.Writer, "Available letters: %s\n", formatLetters(g.Letters()))
		fmt.Fprint(c.App.Writer, "Enter a word!: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading guess: %w", err)
		}
		guess := strings.TrimSpace(line)

		round, err := g.Guess(guess)
		if err != nil {
			fmt.Fprintf(c.App.ErrWriter, "Error: %v\n", err)
			continue
		}
		if round.Guess != nil {
			fmt.Fprintln(c.App.Writer, formatLetters(round.Guess.Letters))
		}

		switch round.Outcome {
		case game.OutcomeWon:
			fmt.Fprintf(c.App.Writer, "Won! The word was %s\n", round.Answer)
			return nil
		case game.OutcomeLost:
			fmt.Fprintf(c.App.Writer, "Lost :( The word was %s\n", round.Answer)
			return nil
		case game.OutcomeContinue:
			fmt.Fprintln(c.App.Writer, "Moving on...")
		}
	}
}

func formatLetters(letters []game.LetterResult) string {
	parts := make([]string, 0, len(letters))
	for _, lr := range letters {
		parts = append(parts, formatLetter(lr))
	}
	return strings.Join(parts, " ")
}

func formatLetter(lr game.LetterResult) string {
	s := string(lr.Letter)
	switch lr.Status {
	case game.StatusMissing:
		return colorMissing.Sprint(s)
	case game.StatusPresent:
		return colorPresent.Sprint(s)
	case game.StatusCorrect:
		return colorCorrect.Sprint(s)
	case game.StatusUnused:
		fallthrough
	default:
		return colorUnused.Sprint(s)
	}
}
