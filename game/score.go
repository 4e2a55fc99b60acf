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

package game

// score scores a guess against the target word. Exact matches are consumed
// first so that a duplicated guess letter is only reported as present when
// an unmatched occurrence remains in the target. target and guess must have
// the same length.
func score(target, guess []rune) *GuessResult {
	// Remaining unmatched positions of each target rune.
	positions := make(map[rune]map[int]struct{})
	for pos, c := range target {
		if positions[c] == nil {
			positions[c] = make(map[int]struct{})
		}
		positions[c][pos] = struct{}{}
	}

	letters := make([]LetterResult, len(guess))
	for pos, c := range guess {
		letters[pos] = LetterResult{Letter: c, Status: StatusMissing}
	}

	// First pass: exact matches consume their own position.
	exact := make(map[int]struct{})
	for pos, c := range guess {
		if target[pos] == c {
			letters[pos].Status = StatusCorrect
			delete(positions[c], pos)
			exact[pos] = struct{}{}
		}
	}

	// Second pass: a remaining guess letter is present if the target still
	// has an unmatched occurrence of it. Each occurrence is consumed once.
	for pos, c := range guess {
		if _, ok := exact[pos]; ok {
			continue
		}
		remaining := positions[c]
		if len(remaining) == 0 {
			continue
		}
		for p := range remaining {
			delete(remaining, p)
			break
		}
		letters[pos].Status = StatusPresent
	}

	return &GuessResult{
		Word:    string(guess),
		Letters: letters,
	}
}
