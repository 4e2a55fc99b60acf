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

// Package wordlist implements reading newline-delimited word lists and
// splitting them into per-length dictionary files.
//
// A word list is a UTF-8 text file with one word per line, optionally
// gzip-compressed. Words keep their internal whitespace; only trailing
// whitespace (including the record separator) is stripped.
package wordlist
