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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ianlewis/go-dictzip"
)

func words(rs []*Record) []string {
	var ws []string
	for _, r := range rs {
		ws = append(ws, r.Word)
	}
	return ws
}

const testJSON = `[
	{"word": "इनार", "definitions": [{"grammar": "ना.", "senses": ["पानी निकाल्ने खाडल"]}]},
	{"word": "आयाम", "definitions": [{"senses": ["विस्तार"]}]},
	{"word": "आकाश", "definitions": [{"grammar": "ना.", "senses": ["आसमान", "गगन"]}]}
]`

func TestNew_sorted(t *testing.T) {
	t.Parallel()

	input := records("इनार", "आयाम", "आकाश", "घरमा", "घर")
	d, err := New(input, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"आकाश", "आयाम", "इनार", "घर", "घरमा"}
	if diff := cmp.Diff(want, words(d.Records())); diff != "" {
		t.Fatalf("Records (-want, +got):\n%s", diff)
	}

	// The input is left untouched.
	if diff := cmp.Diff([]string{"इनार", "आयाम", "आकाश", "घरमा", "घर"}, words(input)); diff != "" {
		t.Fatalf("input (-want, +got):\n%s", diff)
	}
}

func TestNew_stable(t *testing.T) {
	t.Parallel()

	first := &Record{Word: "घर", Definitions: []Definition{{Senses: []string{"एक"}}}}
	second := &Record{Word: "घर", Definitions: []Definition{{Senses: []string{"दुई"}}}}
	d, err := New([]*Record{first, records("क")[0], second}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := d.Lookup("घर")
	if len(got) != 2 || got[0] != first || got[1] != second {
		t.Fatalf("Lookup: want [first second], got %v", got)
	}
}

func TestNew_invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []*Record
	}{
		{
			name:    "nil record",
			records: []*Record{nil},
		},
		{
			name:    "missing definitions",
			records: []*Record{{Word: "घर"}},
		},
		{
			name:    "missing word",
			records: append(records("क"), &Record{Definitions: []Definition{}}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(test.records, nil)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("New: want %v, got %v", ErrInvalidRecord, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := Load(strings.NewReader(testJSON), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff([]string{"आकाश", "आयाम", "इनार"}, words(d.Records())); diff != "" {
		t.Fatalf("Records (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]int{"आ": 0, "इ": 2}, d.Letters().Map()); diff != "" {
		t.Fatalf("Letters (-want, +got):\n%s", diff)
	}

	want := []*Record{
		{
			Word: "आकाश",
			Definitions: []Definition{
				{Grammar: "ना.", Senses: []string{"आसमान", "गगन"}},
			},
		},
	}
	if diff := cmp.Diff(want, d.Lookup("आकाश")); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}
	if got := d.Lookup("घर"); got != nil {
		t.Fatalf("Lookup: want nil, got %v", got)
	}
}

func TestLoad_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "malformed json",
			input:    `[{"word": "घर"`,
			expected: ErrLoad,
		},
		{
			name:     "not an array",
			input:    `{"word": "घर"}`,
			expected: ErrLoad,
		},
		{
			name:     "missing definitions",
			input:    `[{"word": "घर"}]`,
			expected: ErrInvalidRecord,
		},
		{
			name:     "null definitions",
			input:    `[{"word": "घर", "definitions": null}]`,
			expected: ErrInvalidRecord,
		},
		{
			name:     "missing word",
			input:    `[{"definitions": []}]`,
			expected: ErrInvalidRecord,
		},
		{
			name:     "missing senses",
			input:    `[{"word": "घर", "definitions": [{"grammar": "ना."}]}]`,
			expected: ErrInvalidRecord,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(test.input), nil)
			if !errors.Is(err, test.expected) {
				t.Fatalf("Load: want %v, got %v", test.expected, err)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	plainPath := filepath.Join(dir, "plain.json")
	if err := os.WriteFile(plainPath, []byte(testJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	gzPath := filepath.Join(dir, "compressed.json.gz")
	writeCompressed(t, gzPath, func(f *os.File) (io.WriteCloser, error) {
		return gzip.NewWriter(f), nil
	})

	dzPath := filepath.Join(dir, "compressed.json.dz")
	writeCompressed(t, dzPath, func(f *os.File) (io.WriteCloser, error) {
		return dictzip.NewWriter(f)
	})

	for _, path := range []string{plainPath, gzPath, dzPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			if !IsDatasetFile(path) {
				t.Fatalf("IsDatasetFile(%q): want true", path)
			}

			d, err := Open(path, nil)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if diff := cmp.Diff([]string{"आकाश", "आयाम", "इनार"}, words(d.Records())); diff != "" {
				t.Fatalf("Records (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_notFound(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.json"), nil)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("Open: want %v, got %v", ErrLoad, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open: want %v, got %v", os.ErrNotExist, err)
	}
}

func writeCompressed(t *testing.T, path string, newWriter func(*os.File) (io.WriteCloser, error)) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := newWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(testJSON)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
