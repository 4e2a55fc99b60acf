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

// Package dictionary implements loading per-length dictionary files built
// from a word list.
package dictionary

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mottalli/wordle/wordlist"
)

var (
	// ErrEmptyDictionary indicates that the dictionary file contained no
	// words.
	ErrEmptyDictionary = errors.New("dictionary is empty")

	// ErrWordSize indicates a request for a word size the dictionary does
	// not hold.
	ErrWordSize = errors.New("wrong word size")
)

// Dictionary is a set of candidate words of a single length.
type Dictionary interface {
	// RandomWord returns a uniformly random word of the given size.
	RandomWord(size int) (string, error)

	// Contains reports whether word is in the dictionary. Matching is
	// case-insensitive.
	Contains(word string) bool

	// Letters returns the alphabet words are drawn from, in display order.
	Letters() []rune
}

var upper = cases.Upper(language.Und)

// FileDictionary is a Dictionary backed by a per-length word file, as
// written by wordlist.Split.
type FileDictionary struct {
	words map[string]struct{}
	list  []string
	size  int
}

// Load reads the dictionary of words of the given size from the bucket file
// named "<size>.txt" in dir. Words are folded to upper case; an empty
// dictionary is an error.
func Load(dir string, size int) (*FileDictionary, error) {
	path := filepath.Join(dir, wordlist.BucketName(size))
	scanner, err := wordlist.Open(path)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	d := &FileDictionary{
		words: make(map[string]struct{}),
		size:  size,
	}
	for scanner.Scan() {
		w := upper.String(scanner.Word())
		if _, ok := d.words[w]; ok {
			continue
		}
		d.words[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	if len(d.list) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyDictionary, path)
	}
	return d, nil
}

// RandomWord implements [Dictionary.RandomWord].
func (d *FileDictionary) RandomWord(size int) (string, error) {
	if size != d.size {
		return "", fmt.Errorf("%w: requested %d from a dictionary of %d character words", ErrWordSize, size, d.size)
	}
	return d.list[rand.Intn(len(d.list))], nil
}

// Contains implements [Dictionary.Contains].
func (d *FileDictionary) Contains(word string) bool {
	_, ok := d.words[upper.String(word)]
	return ok
}

// Letters implements [Dictionary.Letters].
func (d *FileDictionary) Letters() []rune {
	return []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// WordCount returns the number of distinct words in the dictionary.
func (d *FileDictionary) WordCount() int {
	return len(d.list)
}
