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

// Package testutil builds StarDict dictionary fixtures for tests.
package testutil

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Data is a typed data item of an article.
type Data struct {
	Type byte
	Data []byte
}

// Entry is a dictionary entry: a headword and its article data.
type Entry struct {
	Word string
	Data []Data
}

// Synonym links a synonym word to the position of an entry.
type Synonym struct {
	Word  string
	Index uint32
}

// Options are options for writing a fixture dictionary.
type Options struct {
	// OffsetBits is the idxoffsetbits value. Defaults to 32.
	OffsetBits int

	// SameTypeSequence is the sametypesequence value.
	SameTypeSequence string

	// DictZip compresses the .dict file with dictzip.
	DictZip bool

	// GzipIdx compresses the .idx file with gzip.
	GzipIdx bool

	// Synonyms are written to a .syn file if not empty.
	Synonyms []Synonym

	// Ifo replaces the generated .ifo file contents if not empty.
	Ifo string
}

func (o *Options) offsetBits() int {
	if o == nil || o.OffsetBits == 0 {
		return 32
	}
	return o.OffsetBits
}

// WriteStardict writes a dictionary named name to dir and returns the path to
// its .ifo file.
func WriteStardict(t *testing.T, dir, name string, entries []Entry, opts *Options) string {
	t.Helper()
	if opts == nil {
		opts = &Options{}
	}
	base := filepath.Join(dir, name)

	dict, spans := MakeDict(t, entries, opts.SameTypeSequence)
	idx := MakeIdx(t, entries, spans, opts.offsetBits())

	if opts.DictZip {
		writeDictZip(t, base+".dict.dz", dict)
	} else {
		writeFile(t, base+".dict", dict)
	}

	if opts.GzipIdx {
		writeGzip(t, base+".idx.gz", idx)
	} else {
		writeFile(t, base+".idx", idx)
	}

	if len(opts.Synonyms) > 0 {
		writeFile(t, base+".syn", MakeSyn(opts.Synonyms))
	}

	ifo := opts.Ifo
	if ifo == "" {
		var b strings.Builder
		b.WriteString("StarDict's dict ifo file\n")
		b.WriteString("version=3.0.0\n")
		fmt.Fprintf(&b, "bookname=%s\n", name)
		fmt.Fprintf(&b, "wordcount=%d\n", len(entries))
		fmt.Fprintf(&b, "idxfilesize=%d\n", len(idx))
		if opts.OffsetBits != 0 {
			fmt.Fprintf(&b, "idxoffsetbits=%d\n", opts.OffsetBits)
		}
		if len(opts.Synonyms) > 0 {
			fmt.Fprintf(&b, "synwordcount=%d\n", len(opts.Synonyms))
		}
		if opts.SameTypeSequence != "" {
			fmt.Fprintf(&b, "sametypesequence=%s\n", opts.SameTypeSequence)
		}
		ifo = b.String()
	}
	writeFile(t, base+".ifo", []byte(ifo))

	return base + ".ifo"
}

// Span is the location of an article in .dict file data.
type Span struct {
	Offset uint64
	Size   uint32
}

// MakeDict creates .dict file data and returns it along with the location of
// each entry's article.
func MakeDict(t *testing.T, entries []Entry, sameTypeSequence string) ([]byte, []Span) {
	t.Helper()

	var b []byte
	var spans []Span
	for _, e := range entries {
		start := len(b)
		for i, d := range e.Data {
			last := i == len(e.Data)-1
			if sameTypeSequence == "" {
				b = append(b, d.Type)
			}
			if 'a' <= d.Type && d.Type <= 'z' {
				// Data is a string like sequence.
				b = append(b, d.Data...)
				// The null terminator is omitted on the last item when
				// sametypesequence is used.
				if sameTypeSequence == "" || !last {
					b = append(b, 0)
				}
				continue
			}
			// Data is a file like sequence.
			if sameTypeSequence == "" || !last {
				b = binary.BigEndian.AppendUint32(b, size32(t, len(d.Data)))
			}
			b = append(b, d.Data...)
		}
		spans = append(spans, Span{
			Offset: uint64(start),
			Size:   size32(t, len(b)-start),
		})
	}
	return b, spans
}

// MakeIdx creates .idx file data for the entries.
func MakeIdx(t *testing.T, entries []Entry, spans []Span, offsetBits int) []byte {
	t.Helper()

	var b []byte
	for i, e := range entries {
		b = append(b, e.Word...)
		b = append(b, 0) // Add the zero byte terminator.
		switch offsetBits {
		case 32:
			if spans[i].Offset > math.MaxUint32 {
				t.Fatalf("word offset too large: %d", spans[i].Offset)
			}
			//nolint:gosec // bounds checked above.
			b = binary.BigEndian.AppendUint32(b, uint32(spans[i].Offset))
		case 64:
			b = binary.BigEndian.AppendUint64(b, spans[i].Offset)
		default:
			t.Fatalf("unsupported offset bits: %d", offsetBits)
		}
		b = binary.BigEndian.AppendUint32(b, spans[i].Size)
	}
	return b
}

// MakeSyn creates .syn file data.
func MakeSyn(synonyms []Synonym) []byte {
	var b []byte
	for _, s := range synonyms {
		b = append(b, s.Word...)
		b = append(b, 0)
		b = binary.BigEndian.AppendUint32(b, s.Index)
	}
	return b
}

func size32(t *testing.T, n int) uint32 {
	t.Helper()
	if n > math.MaxUint32 {
		t.Fatalf("data too long: %d", n)
	}
	//nolint:gosec // bounds checked above.
	return uint32(n)
}

func writeFile(t *testing.T, path string, b []byte) {
	t.Helper()
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}

func writeGzip(t *testing.T, path string, b []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z := gzip.NewWriter(f)
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeDictZip(t *testing.T, path string, b []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}
