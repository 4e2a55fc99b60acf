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

// Package game implements the wordle round engine: guess validation,
// duplicate-letter-aware scoring, and per-letter keyboard status.
package game

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mottalli/wordle/dictionary"
)

var (
	// ErrWrongLength indicates a guess whose length does not match the
	// target word.
	ErrWrongLength = errors.New("wrong word length")

	// ErrNotInDictionary indicates a guess that is not a dictionary word.
	ErrNotInDictionary = errors.New("word is not in the dictionary")

	// ErrEmptyWord indicates an empty target word.
	ErrEmptyWord = errors.New("empty target word")
)

// LetterStatus is what the game knows about a letter.
type LetterStatus int

const (
	// StatusUnused means the letter has not appeared in any guess.
	StatusUnused LetterStatus = iota

	// StatusMissing means the letter is not in the target word.
	StatusMissing

	// StatusPresent means the letter is in the target word at a different
	// position.
	StatusPresent

	// StatusCorrect means the letter is in the target word at this position.
	StatusCorrect
)

// LetterResult is a guessed letter and its status.
type LetterResult struct {
	Letter rune
	Status LetterStatus
}

// GuessResult is the scored result of a single guess.
type GuessResult struct {
	Word    string
	Letters []LetterResult
}

// Won reports whether every letter of the guess is in the right position.
func (r *GuessResult) Won() bool {
	for _, lr := range r.Letters {
		if lr.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// Outcome is the state of the game after a round.
type Outcome int

const (
	// OutcomeContinue means the game goes on.
	OutcomeContinue Outcome = iota

	// OutcomeWon means the last guess matched the target word.
	OutcomeWon

	// OutcomeLost means the guess budget is exhausted.
	OutcomeLost
)

// Round is the result of one accepted guess.
type Round struct {
	Outcome Outcome

	// Guess is the scored last guess. It is nil when the guess budget was
	// already exhausted before the round.
	Guess *GuessResult

	// Answer is the target word. It is set only when the game is over.
	Answer string
}

var upper = cases.Upper(language.Und)

// Game is a single wordle game against a fixed target word.
type Game struct {
	dict       dictionary.Dictionary
	word       []rune
	maxGuesses int
	guesses    []*GuessResult
	letters    map[rune]LetterStatus
	checkWords bool
}

// Options configure a Game.
type Options struct {
	// MaxGuesses is the guess budget. Defaults to 6.
	MaxGuesses int

	// SkipDictionaryCheck disables the dictionary membership check on
	// guesses. Length checks still apply.
	SkipDictionaryCheck bool
}

// New returns a new game for the given target word. The word is folded to
// upper case.
func New(dict dictionary.Dictionary, word string, options *Options) (*Game, error) {
	target := []rune(upper.String(word))
	if len(target) == 0 {
		return nil, ErrEmptyWord
	}

	if options == nil {
		options = &Options{}
	}
	maxGuesses := options.MaxGuesses
	if maxGuesses <= 0 {
		maxGuesses = 6
	}

	letters := make(map[rune]LetterStatus)
	for _, c := range dict.Letters() {
		letters[c] = StatusUnused
	}

	return &Game{
		dict:       dict,
		word:       target,
		maxGuesses: maxGuesses,
		letters:    letters,
		checkWords: !options.SkipDictionaryCheck,
	}, nil
}

// MaxGuesses returns the guess budget.
func (g *Game) MaxGuesses() int {
	return g.maxGuesses
}

// Guesses returns the scored guesses made so far, oldest first.
func (g *Game) Guesses() []*GuessResult {
	return g.guesses
}

// Letters returns the status of every letter of the alphabet, in the
// dictionary's display order.
func (g *Game) Letters() []LetterResult {
	var result []LetterResult
	for _, c := range g.dict.Letters() {
		result = append(result, LetterResult{Letter: c, Status: g.letters[c]})
	}
	return result
}

// Guess plays one round with the given word. Invalid guesses (wrong length,
// unknown word) return an error and do not consume a guess.
func (g *Game) Guess(word string) (*Round, error) {
	word = upper.String(word)

	if len(g.guesses) == g.maxGuesses {
		return &Round{Outcome: OutcomeLost, Answer: string(g.word)}, nil
	}
	if utf8.RuneCountInString(word) != len(g.word) {
		return nil, fmt.Errorf("%w: word must be %d characters", ErrWrongLength, len(g.word))
	}
	if g.checkWords && !g.dict.Contains(word) {
		return nil, fmt.Errorf("%w: %q", ErrNotInDictionary, word)
	}

	result := score(g.word, []rune(word))
	g.updateLetters(result)
	g.guesses = append(g.guesses, result)

	switch {
	case result.Won():
		return &Round{Outcome: OutcomeWon, Guess: result, Answer: string(g.word)}, nil
	case len(g.guesses) == g.maxGuesses:
		return &Round{Outcome: OutcomeLost, Guess: result, Answer: string(g.word)}, nil
	default:
		return &Round{Outcome: OutcomeContinue, Guess: result}, nil
	}
}

// updateLetters folds a guess result into the per-letter status map. A
// letter's status only ever improves: correct beats present beats missing
// beats unused.
func (g *Game) updateLetters(result *GuessResult) {
	for _, lr := range result.Letters {
		old, ok := g.letters[lr.Letter]
		if !ok {
			old = StatusUnused
		}
		if lr.Status > old {
			g.letters[lr.Letter] = lr.Status
		} else {
			g.letters[lr.Letter] = old
		}
	}
}
