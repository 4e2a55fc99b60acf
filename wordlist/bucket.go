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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"
)

// BucketName returns the file name of the dictionary bucket holding words of
// the given length.
func BucketName(length int) string {
	return strconv.Itoa(length) + ".txt"
}

// bucket is a single open per-length output file.
type bucket struct {
	f *os.File
	w *bufio.Writer
}

// Split reads the word list at srcPath and writes one file per distinct word
// length into dir. A word of length n is appended to the file named "n.txt";
// the file is created (truncating any existing file) the first time a word
// of that length is seen and is never opened twice. Words are written in
// source order, one per line, exactly as read. Word length is the number of
// Unicode code points in the decoded word, not the number of bytes.
//
// Split returns the number of words written per length. An empty source
// produces no files. Any open, read, decode, or write error aborts the run;
// already-written files are left behind. All opened files are closed on
// every return path.
func Split(srcPath, dir string) (counts map[int]int, err error) {
	scanner, err := Open(srcPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := scanner.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// Buckets are flushed and closed on every return path. Flushing on the
	// error path too keeps already-written words on disk, which is what a
	// rerun of the tool expects to overwrite.
	buckets := make(map[int]*bucket)
	defer func() {
		for length, b := range buckets {
			if ferr := b.w.Flush(); ferr != nil && err == nil {
				err = fmt.Errorf("error writing %q: %w", BucketName(length), ferr)
			}
			if cerr := b.f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing %q: %w", BucketName(length), cerr)
			}
		}
	}()

	counts = make(map[int]int)
	for scanner.Scan() {
		word := scanner.Word()
		length := utf8.RuneCountInString(word)

		b, ok := buckets[length]
		if !ok {
			path := filepath.Join(dir, BucketName(length))
			f, cerr := os.Create(path)
			if cerr != nil {
				return nil, fmt.Errorf("error creating %q: %w", path, cerr)
			}
			b = &bucket{f: f, w: bufio.NewWriter(f)}
			buckets[length] = b
		}

		if _, werr := b.w.WriteString(word + "\n"); werr != nil {
			return nil, fmt.Errorf("error writing %q: %w", BucketName(length), werr)
		}
		counts[length]++
	}
	if serr := scanner.Err(); serr != nil {
		return nil, fmt.Errorf("error reading %q: %w", srcPath, serr)
	}
	return counts, nil
}
