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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ianlewis/go-sabdkosh"
	"github.com/ianlewis/go-sabdkosh/stardict"
)

var errNoRecords = errors.New("no records found")

// readPath reads the records in a single dataset file or StarDict .ifo file.
func readPath(path string) ([]*sabdkosh.Record, error) {
	if stardict.IsIfoFile(path) {
		d, err := stardict.Open(path)
		if err != nil {
			return nil, err
		}
		return d.Records()
	}
	return sabdkosh.ReadFile(path)
}

// readDir reads every dataset under dir. Files that fail to load are logged
// and skipped.
func readDir(dir string, l *log.Logger) ([]*sabdkosh.Record, error) {
	var records []*sabdkosh.Record
	if err := filepath.WalkDir(dir, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			l.Warn("skipping", "path", path, "err", err)
			return nil
		}
		if info.IsDir() || !(sabdkosh.IsDatasetFile(path) || stardict.IsIfoFile(path)) {
			return nil
		}
		r, err := readPath(path)
		if err != nil {
			l.Warn("skipping", "path", path, "err", err)
			return nil
		}
		l.Debug("read", "path", path, "records", len(r))
		records = append(records, r...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%q: %w", dir, errNoRecords)
	}
	return records, nil
}

// openDataset loads the dataset at path. path may be a JSON dataset, a
// StarDict .ifo file or a directory containing any number of either.
func openDataset(path string, l *log.Logger) (*sabdkosh.Dataset, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sabdkosh.ErrLoad, err)
	}

	var records []*sabdkosh.Record
	if fi.IsDir() {
		records, err = readDir(path, l)
	} else {
		records, err = readPath(path)
	}
	if err != nil {
		return nil, err
	}

	d, err := sabdkosh.New(records, nil)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	l.Info("loaded dataset", "path", path, "words", d.Len(), "letters", d.Letters().Len())
	return d, nil
}

// loadDataset sets up the environment and loads the dataset for a command.
func loadDataset(e *env, path string) (*sabdkosh.Dataset, error) {
	d, err := openDataset(path, e.log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSabdkosh, err)
	}
	return d, nil
}
