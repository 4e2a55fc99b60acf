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
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte

		expected []string
		err      error
	}{
		{
			name: "empty input",
			data: []byte{},

			expected: nil,
		},
		{
			name: "single word",
			data: []byte("cat\n"),

			expected: []string{"cat"},
		},
		{
			name: "no trailing newline",
			data: []byte("cat\ndog"),

			expected: []string{"cat", "dog"},
		},
		{
			name: "crlf line endings",
			data: []byte("cat\r\ndog\r\n"),

			expected: []string{"cat", "dog"},
		},
		{
			name: "trailing whitespace stripped",
			data: []byte("cat \t\ndog\n"),

			expected: []string{"cat", "dog"},
		},
		{
			name: "leading and internal whitespace kept",
			data: []byte(" cat\nice cream\n"),

			expected: []string{" cat", "ice cream"},
		},
		{
			name: "empty lines",
			data: []byte("\ncat\n\n"),

			expected: []string{"", "cat", ""},
		},
		{
			name: "multi-byte words",
			data: []byte("niño\nñandú\n"),

			expected: []string{"niño", "ñandú"},
		},
		{
			name: "invalid utf-8",
			data: []byte("cat\n\xff\xfe\ndog\n"),

			expected: []string{"cat"},
			err:      ErrInvalidUTF8,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewScanner(io.NopCloser(bytes.NewReader(test.data)))
			defer s.Close()

			var words []string
			for s.Scan() {
				words = append(words, s.Word())
			}

			if got, want := s.Err(), test.err; !errors.Is(got, want) {
				t.Fatalf("Err; want: %v, got: %v", want, got)
			}
			if diff := cmp.Diff(test.expected, words); diff != "" {
				t.Fatalf("unexpected words (-want +got):\n%s", diff)
			}
		})
	}
}

// TestScanner_Scan_afterError tests that Scan keeps returning false after a
// decode error.
func TestScanner_Scan_afterError(t *testing.T) {
	t.Parallel()

	s := NewScanner(io.NopCloser(bytes.NewReader([]byte("\xff\ncat\n"))))
	defer s.Close()

	if s.Scan() {
		t.Fatal("Scan: expected failure")
	}
	if s.Scan() {
		t.Fatal("Scan: expected failure after error")
	}
	if !errors.Is(s.Err(), ErrInvalidUTF8) {
		t.Fatalf("Err; want: %v, got: %v", ErrInvalidUTF8, s.Err())
	}
}
