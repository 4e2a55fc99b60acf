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

package dictionary

import (
	"errors"
	"testing"

	"github.com/mottalli/wordle/internal/testutil"
)

// TestLoad tests Load.
func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MakeTextFile(t, dir, "5.txt", []byte("crane\nsound\ncrane\nBOOST\n"))

	d, err := Load(dir, 5)
	if err != nil {
		t.Fatal(err)
	}

	// Duplicates are folded.
	if want, got := 3, d.WordCount(); want != got {
		t.Fatalf("WordCount; want: %d, got: %d", want, got)
	}

	for _, w := range []string{"crane", "CRANE", "Sound", "boost"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q); want: true, got: false", w)
		}
	}
	if d.Contains("wrong") {
		t.Errorf("Contains(%q); want: false, got: true", "wrong")
	}
}

// TestLoad_missingFile tests that Load fails when no bucket file exists for
// the word size.
func TestLoad_missingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir(), 5); err == nil {
		t.Fatal("Load: expected failure")
	}
}

// TestLoad_empty tests that an empty bucket file is an error.
func TestLoad_empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MakeTextFile(t, dir, "5.txt", []byte{})

	_, err := Load(dir, 5)
	if !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("Load; want: %v, got: %v", ErrEmptyDictionary, err)
	}
}

// TestFileDictionary_RandomWord tests random word selection.
func TestFileDictionary_RandomWord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MakeTextFile(t, dir, "5.txt", []byte("crane\nsound\n"))

	d, err := Load(dir, 5)
	if err != nil {
		t.Fatal(err)
	}

	for range 10 {
		w, err := d.RandomWord(5)
		if err != nil {
			t.Fatal(err)
		}
		if !d.Contains(w) {
			t.Fatalf("RandomWord returned %q, not in dictionary", w)
		}
	}

	if _, err := d.RandomWord(7); !errors.Is(err, ErrWordSize) {
		t.Fatalf("RandomWord; want: %v, got: %v", ErrWordSize, err)
	}
}
