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
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const ifoMagic = "StarDict's dict ifo file"

var (
	// ErrInvalidIfo indicates that the .ifo file is malformed.
	ErrInvalidIfo = errors.New("invalid .ifo file")

	// ErrInvalidIdxOffset indicates that idxoffsetbits is an invalid value.
	ErrInvalidIdxOffset = errors.New("invalid idxoffsetbits")

	// ErrInvalidType indicates an unknown article data type.
	ErrInvalidType = errors.New("invalid type")
)

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9-_]+$")

// Info is the dictionary metadata read from the .ifo file.
type Info struct {
	Version          string
	Bookname         string
	WordCount        int64
	SynWordCount     int64
	IdxFileSize      int64
	IdxOffsetBits    int
	Author           string
	Email            string
	Website          string
	Description      string
	Date             string
	SameTypeSequence []DataType
}

// ReadInfo reads dictionary metadata from an .ifo file.
func ReadInfo(r io.Reader) (*Info, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("reading .ifo: %w", err)
		}
		return nil, fmt.Errorf("%w: empty file", ErrInvalidIfo)
	}
	if strings.TrimSpace(s.Text()) != ifoMagic {
		return nil, fmt.Errorf("%w: bad magic data", ErrInvalidIfo)
	}

	values := map[string]string{}
	first := true
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || !keyRegex.MatchString(key) {
			return nil, fmt.Errorf("%w: invalid line: %q", ErrInvalidIfo, line)
		}
		if first && key != "version" {
			return nil, fmt.Errorf("%w: missing version", ErrInvalidIfo)
		}
		first = false
		values[key] = strings.TrimSpace(value)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading .ifo: %w", err)
	}

	return newInfo(values)
}

func newInfo(values map[string]string) (*Info, error) {
	info := &Info{
		Version:       values["version"],
		Bookname:      values["bookname"],
		IdxOffsetBits: 32,
		Author:        values["author"],
		Email:         values["email"],
		Website:       values["website"],
		Description:   values["description"],
		Date:          values["date"],
	}

	switch info.Version {
	case "2.4.2", "3.0.0":
	default:
		return nil, fmt.Errorf("%w: unsupported version: %q", ErrInvalidIfo, info.Version)
	}

	if info.Bookname == "" {
		return nil, fmt.Errorf("%w: missing bookname", ErrInvalidIfo)
	}

	var err error
	info.WordCount, err = strconv.ParseInt(values["wordcount"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad wordcount: %w", ErrInvalidIfo, err)
	}

	if v := values["idxfilesize"]; v != "" {
		info.IdxFileSize, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad idxfilesize: %w", ErrInvalidIfo, err)
		}
	}

	if v := values["synwordcount"]; v != "" {
		info.SynWordCount, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad synwordcount: %w", ErrInvalidIfo, err)
		}
	}

	// idxoffsetbits is only valid for version 3.0.0.
	if v := values["idxoffsetbits"]; v != "" && info.Version == "3.0.0" {
		bits, err := strconv.Atoi(v)
		if err != nil || (bits != 32 && bits != 64) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdxOffset, v)
		}
		info.IdxOffsetBits = bits
	}

	for _, r := range values["sametypesequence"] {
		t := DataType(r)
		if r > unicode.MaxASCII || !t.Valid() {
			return nil, fmt.Errorf("%w: sametypesequence: %q", ErrInvalidType, r)
		}
		info.SameTypeSequence = append(info.SameTypeSequence, t)
	}

	return info, nil
}
