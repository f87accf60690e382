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

package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var errTruncated = errors.New("truncated entry")

// indexEntry is an .idx file entry.
type indexEntry struct {
	word   string
	offset uint64
	size   uint32
}

// synonym is a .syn file entry.
type synonym struct {
	word  string
	index uint32
}

// readIndex reads all entries of an .idx file.
func readIndex(r io.Reader, offsetBits int) ([]indexEntry, error) {
	if offsetBits != 32 && offsetBits != 64 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIdxOffset, offsetBits)
	}
	tail := offsetBits/8 + 4

	var entries []indexEntry
	err := scanEntries(r, tail, func(word string, b []byte) {
		e := indexEntry{word: word}
		if offsetBits == 64 {
			e.offset = binary.BigEndian.Uint64(b)
		} else {
			e.offset = uint64(binary.BigEndian.Uint32(b))
		}
		e.size = binary.BigEndian.Uint32(b[offsetBits/8:])
		entries = append(entries, e)
	})
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	return entries, nil
}

// readSynonyms reads all entries of a .syn file.
func readSynonyms(r io.Reader) ([]synonym, error) {
	var synonyms []synonym
	err := scanEntries(r, 4, func(word string, b []byte) {
		synonyms = append(synonyms, synonym{
			word:  word,
			index: binary.BigEndian.Uint32(b),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading synonyms: %w", err)
	}
	return synonyms, nil
}

// scanEntries scans entries made of a null terminated word followed by tail
// bytes and calls fn for each of them.
func scanEntries(r io.Reader, tail int, fn func(word string, b []byte)) error {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, 0); i >= 0 {
			// Found zero byte.
			tokenSize := i + 1 + tail
			if len(data) >= tokenSize {
				return tokenSize, data[:tokenSize], nil
			}
		}
		if atEOF {
			return 0, nil, errTruncated
		}
		// Request more data.
		return 0, nil, nil
	})

	for s.Scan() {
		b := s.Bytes()
		i := bytes.IndexByte(b, 0)
		fn(string(b[:i]), b[i+1:])
	}
	//nolint:wrapcheck // wrapped by callers.
	return s.Err()
}
