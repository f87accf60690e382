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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-sabdkosh"
)

var (
	// ErrNoIndex indicates that no .idx file was found for the dictionary.
	ErrNoIndex = errors.New("no index found")

	// ErrNoDict indicates that no .dict file was found for the dictionary.
	ErrNoDict = errors.New("no dict found")

	errBadSynonym = errors.New("synonym index out of range")
)

// Dictionary is a StarDict dictionary on disk.
type Dictionary struct {
	ifoPath string
	info    *Info
}

// IsIfoFile returns true if path has the .ifo extension.
func IsIfoFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ifo")
}

// Open opens a StarDict dictionary from the given .ifo file path.
func Open(ifoPath string) (*Dictionary, error) {
	if !IsIfoFile(ifoPath) {
		return nil, fmt.Errorf("bad extension: %v", filepath.Ext(ifoPath))
	}

	f, err := os.Open(ifoPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", ifoPath, err)
	}
	defer f.Close()

	info, err := ReadInfo(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", ifoPath, err)
	}

	return &Dictionary{
		ifoPath: ifoPath,
		info:    info,
	}, nil
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && IsIfoFile(info.Name()) {
			d, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Info returns the dictionary metadata.
func (d *Dictionary) Info() *Info {
	return d.info
}

// Path returns the path to the dictionary's .ifo file.
func (d *Dictionary) Path() string {
	return d.ifoPath
}

// Records reads the whole dictionary and returns one record per index entry
// followed by one record per synonym. Records are in file order.
func (d *Dictionary) Records() ([]*sabdkosh.Record, error) {
	entries, err := d.readIndex()
	if err != nil {
		return nil, err
	}

	records, err := d.readArticles(entries)
	if err != nil {
		return nil, err
	}

	synonyms, err := d.readSynonyms()
	if err != nil {
		return nil, err
	}
	for _, s := range synonyms {
		if int64(s.index) >= int64(len(records)) {
			return nil, fmt.Errorf("%q: %w: %q -> %d", d.ifoPath, errBadSynonym, s.word, s.index)
		}
		records = append(records, &sabdkosh.Record{
			Word:        s.word,
			Definitions: records[s.index].Definitions,
		})
	}

	return records, nil
}

func (d *Dictionary) readIndex() ([]indexEntry, error) {
	f, gz, err := openVariant(d.ifoPath, []string{".idx", ".idx.gz", ".IDX", ".IDX.gz", ".IDX.GZ"})
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", d.ifoPath, ErrNoIndex, err)
	}
	defer f.Close()

	var r io.Reader = f
	if gz {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", f.Name(), err)
		}
		defer z.Close()
		r = z
	}

	entries, err := readIndex(r, d.info.IdxOffsetBits)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", f.Name(), err)
	}
	return entries, nil
}

func (d *Dictionary) readArticles(entries []indexEntry) ([]*sabdkosh.Record, error) {
	f, dz, err := openVariant(d.ifoPath, []string{".dict", ".dict.dz", ".DICT", ".DICT.dz", ".DICT.DZ"})
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", d.ifoPath, ErrNoDict, err)
	}
	defer f.Close()

	var r io.ReaderAt = f
	if dz {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", f.Name(), err)
		}
		defer z.Close()
		r = z
	}

	records := make([]*sabdkosh.Record, 0, len(entries))
	for _, e := range entries {
		items, err := readArticle(r, e, d.info.SameTypeSequence)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f.Name(), err)
		}
		records = append(records, newRecord(e.word, items))
	}
	return records, nil
}

func (d *Dictionary) readSynonyms() ([]synonym, error) {
	f, gz, err := openVariant(d.ifoPath, []string{".syn", ".syn.gz", ".syn.dz", ".SYN", ".SYN.gz", ".SYN.GZ", ".SYN.dz", ".SYN.DZ"})
	if errors.Is(err, os.ErrNotExist) {
		// The .syn file is optional.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", d.ifoPath, err)
	}
	defer f.Close()

	var r io.Reader = f
	if gz {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", f.Name(), err)
		}
		defer z.Close()
		r = z
	}

	synonyms, err := readSynonyms(r)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", f.Name(), err)
	}
	return synonyms, nil
}

// newRecord builds a record from an article's text data.
func newRecord(word string, items []data) *sabdkosh.Record {
	senses := []string{}
	for _, item := range items {
		if text, ok := item.text(); ok && text != "" {
			senses = append(senses, text)
		}
	}

	r := &sabdkosh.Record{
		Word:        word,
		Definitions: []sabdkosh.Definition{},
	}
	if len(senses) > 0 {
		r.Definitions = append(r.Definitions, sabdkosh.Definition{Senses: senses})
	}
	return r
}

// openVariant opens the first file that exists with the .ifo file's base
// name and one of the extensions. The returned bool is true if the file is
// compressed.
func openVariant(ifoPath string, exts []string) (*os.File, bool, error) {
	baseName := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))

	for _, ext := range exts {
		f, err := os.Open(baseName + ext)
		if err == nil {
			compressed := strings.EqualFold(filepath.Ext(ext), ".gz") || strings.EqualFold(filepath.Ext(ext), ".dz")
			return f, compressed, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, false, fmt.Errorf("opening %q: %w", baseName+ext, err)
		}
	}

	return nil, false, fmt.Errorf("%w: %s{%s}", os.ErrNotExist, baseName, strings.Join(exts, ","))
}
