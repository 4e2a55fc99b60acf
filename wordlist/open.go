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
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (r *gzipReadCloser) Close() error {
	err := r.Reader.Close()
	if cerr := r.f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open opens the word list at the given path and returns a Scanner over its
// words. Files with a .gz extension are decompressed transparently. The
// returned Scanner must be closed with its Close method.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".gz" {
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		return NewScanner(&gzipReadCloser{Reader: z, f: f}), nil
	}

	return NewScanner(f), nil
}
