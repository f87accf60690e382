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
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-sabdkosh/internal/index"
)

// Options are options for building a Dataset.
type Options struct {
	// Language is the language whose collation order is used to sort
	// headwords.
	Language language.Tag
}

// DefaultOptions is the default options for a Dataset.
var DefaultOptions = &Options{
	Language: language.Nepali,
}

// Dataset is the canonical set of dictionary records.
type Dataset struct {
	// records is sorted by headword in collation order.
	records []*Record

	// words indexes records by their exact headword.
	words *index.Index[*Record]

	letters *LetterIndex
}

// New validates the records and returns a new Dataset holding them sorted by
// headword. Records with equal headwords keep their relative order. The
// records slice itself is not modified.
func New(records []*Record, options *Options) (*Dataset, error) {
	if options == nil {
		options = DefaultOptions
	}

	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("record %d: %w: null record", i, ErrInvalidRecord)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	sorted := slices.Clone(records)
	c := collate.New(options.Language)
	slices.SortStableFunc(sorted, func(a, b *Record) int {
		return c.CompareString(a.Word, b.Word)
	})

	return &Dataset{
		records: sorted,
		words:   index.New(sorted),
		letters: BuildIndex(sorted),
	}, nil
}

// ReadRecords decodes a JSON array of records from r. Records are not
// validated; see [New].
func ReadRecords(r io.Reader) ([]*Record, error) {
	var records []*Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrLoad, err)
	}
	return records, nil
}

// ReadFile reads the records of a dataset file. Files ending in .gz or .dz
// are decompressed with gzip. Dictzip files are gzip compatible.
func ReadFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".dz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrLoad, path, err)
		}
		defer z.Close()
		r = z
	}

	records, err := ReadRecords(r)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return records, nil
}

// Load reads a JSON dataset from r and returns the Dataset.
func Load(r io.Reader, options *Options) (*Dataset, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return New(records, options)
}

// Open reads the dataset file at path and returns the Dataset.
func Open(path string, options *Options) (*Dataset, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := New(records, options)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return d, nil
}

// IsDatasetFile returns true if the path has the extension of a JSON dataset
// file.
func IsDatasetFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range []string{".json", ".json.gz", ".json.dz"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Records returns the canonical set in collation order. The returned slice
// is shared and must not be modified.
func (d *Dataset) Records() []*Record {
	return d.records
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Lookup returns all records whose headword is exactly word, in canonical
// order. It returns nil if there are none.
func (d *Dataset) Lookup(word string) []*Record {
	return d.words.Search(word)
}

// Letters returns the dataset's letter index.
func (d *Dataset) Letters() *LetterIndex {
	return d.letters
}
