// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sabdkosh

import (
	"maps"
	"slices"
)

// LetterIndex maps the first character of headwords to the position of the
// first record starting with it.
type LetterIndex struct {
	positions map[string]int

	// letters is ordered by first position.
	letters []string
}

// BuildIndex scans the records in order and records, for each distinct first
// character, the earliest position where it appears. Records with an empty
// headword are skipped.
func BuildIndex(records []*Record) *LetterIndex {
	li := &LetterIndex{
		positions: map[string]int{},
	}
	for i, r := range records {
		l := r.Letter()
		if l == "" {
			continue
		}
		if _, ok := li.positions[l]; !ok {
			li.positions[l] = i
			li.letters = append(li.letters, l)
		}
	}
	return li
}

// Position returns the first position of the letter.
func (li *LetterIndex) Position(letter string) (int, bool) {
	i, ok := li.positions[letter]
	return i, ok
}

// Letters returns the indexed letters in order of first appearance. For a
// canonical set this is collation order.
func (li *LetterIndex) Letters() []string {
	return slices.Clone(li.letters)
}

// Len returns the number of distinct letters.
func (li *LetterIndex) Len() int {
	return len(li.letters)
}

// Map returns a copy of the letter to position mapping.
func (li *LetterIndex) Map() map[string]int {
	return maps.Clone(li.positions)
}
