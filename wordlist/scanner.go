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

package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates that a line in the word list is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Scanner scans a word list from start to end, one word per line. The
// Scanner assumes ownership of the reader and should be closed with the
// Close method.
type Scanner struct {
	r    io.ReadCloser
	s    *bufio.Scanner
	word string
	line int
	err  error
}

// NewScanner returns a new word-list scanner reading from r.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		r: r,
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
}

// Scan advances the scanner to the next word. It returns false if the scan
// stops either by reaching the end of the list or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.s.Scan() {
		return false
	}
	s.line++

	b := bytes.TrimRightFunc(s.s.Bytes(), unicode.IsSpace)
	if !utf8.Valid(b) {
		s.err = fmt.Errorf("%w: line %d", ErrInvalidUTF8, s.line)
		return false
	}
	s.word = string(b)
	return true
}

// Word returns the word read by the last call to Scan.
func (s *Scanner) Word() string {
	return s.word
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing word list: %w", err)
	}
	return nil
}
