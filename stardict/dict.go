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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/k3a/html2text"
)

var errInvalidArticle = errors.New("invalid article data")

// DataType is a type of data in an article. Lower case characters represent
// string-like data that is terminated by a null terminator ('\0'). Upper case
// characters represent file-like data that starts with a 32-bit size followed
// by file data.
type DataType byte

const (
	// UTFTextType is utf-8 text.
	UTFTextType = DataType('m')

	// LocaleTextType is text in a locale encoding.
	LocaleTextType = DataType('l')

	// PangoTextType is utf-8 text in the Pango text format.
	PangoTextType = DataType('g')

	// PhoneticType is utf-8 text representing an English phonetic string.
	PhoneticType = DataType('t')

	// XDXFType is utf-8 encoded xml in XDXF format.
	XDXFType = DataType('x')

	// YinBiaoOrKataType is utf-8 encoded Yin Biao or Kana phonetic string.
	YinBiaoOrKataType = DataType('y')

	// PowerWordType is a utf-8 encoded KingSoft PowerWord XML format.
	PowerWordType = DataType('p')

	// MediaWikiType is utf-8 encoded text in MediaWiki format.
	MediaWikiType = DataType('w')

	// HTMLType is utf-8 encoded HTML text.
	HTMLType = DataType('h')

	// WordNetType is WordNet data.
	WordNetType = DataType('n')

	// ResourceFileListType is a list of files in resource storage.
	ResourceFileListType = DataType('r')

	// WavType is .wav sound file data.
	WavType = DataType('W')

	// PictureType is image file data.
	PictureType = DataType('P')

	// ExperimentalType is reserved for experimental features.
	ExperimentalType = DataType('X')
)

// Valid returns true if t is a known data type.
func (t DataType) Valid() bool {
	switch t {
	case UTFTextType,
		LocaleTextType,
		PangoTextType,
		PhoneticType,
		XDXFType,
		YinBiaoOrKataType,
		PowerWordType,
		MediaWikiType,
		HTMLType,
		WordNetType,
		ResourceFileListType,
		WavType,
		PictureType,
		ExperimentalType:
		return true
	default:
		return false
	}
}

func (t DataType) stringLike() bool {
	return 'a' <= t && t <= 'z'
}

// data is a data item of an article.
type data struct {
	t DataType
	b []byte
}

// text returns the plain text of the data item and whether the data type
// carries text at all.
func (d data) text() (string, bool) {
	switch d.t {
	case UTFTextType, LocaleTextType, PhoneticType, YinBiaoOrKataType, MediaWikiType, WordNetType:
		return strings.TrimSpace(string(d.b)), true
	case HTMLType, PangoTextType, XDXFType, PowerWordType:
		return strings.TrimSpace(html2text.HTML2Text(string(d.b))), true
	default:
		return "", false
	}
}

// readArticle reads the article at e from the .dict data.
func readArticle(r io.ReaderAt, e indexEntry, sametypesequence []DataType) ([]data, error) {
	if e.offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w: offset too large: %d", errInvalidArticle, e.offset)
	}
	b := make([]byte, e.size)
	//nolint:gosec // offset size is bounds checked above.
	if _, err := r.ReadAt(b, int64(e.offset)); err != nil {
		return nil, fmt.Errorf("reading article %q: %w", e.word, err)
	}

	if len(sametypesequence) > 0 {
		return splitTyped(b, sametypesequence)
	}
	return splitTagged(b)
}

// splitTyped splits article data whose types are given by sametypesequence.
// The last item has no terminator or size; it runs to the end of the data.
func splitTyped(b []byte, sametypesequence []DataType) ([]data, error) {
	var items []data
	for i, t := range sametypesequence {
		if i == len(sametypesequence)-1 {
			items = append(items, data{t: t, b: b})
			break
		}
		item, rest, err := next(t, b)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		b = rest
	}
	return items, nil
}

// splitTagged splits article data in which every item starts with its type.
func splitTagged(b []byte) ([]data, error) {
	var items []data
	for len(b) > 0 {
		t := DataType(b[0])
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, b[0])
		}
		item, rest, err := next(t, b[1:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		b = rest
	}
	return items, nil
}

// next reads a single item of type t from the start of b.
func next(t DataType, b []byte) (data, []byte, error) {
	if t.stringLike() {
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			// The final item may not have a terminator.
			return data{t: t, b: b}, nil, nil
		}
		return data{t: t, b: b[:i]}, b[i+1:], nil
	}

	if len(b) < 4 {
		return data{}, nil, fmt.Errorf("%w: truncated size", errInvalidArticle)
	}
	size := binary.BigEndian.Uint32(b)
	b = b[4:]
	if uint64(size) > uint64(len(b)) {
		return data{}, nil, fmt.Errorf("%w: size %d exceeds data", errInvalidArticle, size)
	}
	return data{t: t, b: b[:size]}, b[size:], nil
}
