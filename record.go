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
	"fmt"
	"unicode/utf8"
)

// Definition is a single definition of a headword.
type Definition struct {
	// Grammar is the optional grammar label (e.g. "ना." for a noun).
	Grammar string `json:"grammar,omitempty"`

	// Senses are the definition's senses in dictionary order.
	Senses []string `json:"senses"`
}

// Record is a dictionary entry. Records are immutable once loaded.
type Record struct {
	Word        string       `json:"word"`
	Definitions []Definition `json:"definitions"`
}

// String returns the record's headword.
func (r *Record) String() string {
	return r.Word
}

// Letter returns the first character of the headword, or "" if the headword
// is empty.
func (r *Record) Letter() string {
	if r.Word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(r.Word)
	return r.Word[:size]
}

// Preview returns the first sense of the first definition, or "" if there is
// none.
func (r *Record) Preview() string {
	if len(r.Definitions) == 0 || len(r.Definitions[0].Senses) == 0 {
		return ""
	}
	return r.Definitions[0].Senses[0]
}

// Validate checks that the record has all required fields. A record must
// have a headword and a definitions list, and every definition must have a
// senses list. Empty lists are allowed.
func (r *Record) Validate() error {
	if r.Word == "" {
		return fmt.Errorf("%w: missing word", ErrInvalidRecord)
	}
	if r.Definitions == nil {
		return fmt.Errorf("%w: %q: missing definitions", ErrInvalidRecord, r.Word)
	}
	for i, d := range r.Definitions {
		if d.Senses == nil {
			return fmt.Errorf("%w: %q: definition %d: missing senses", ErrInvalidRecord, r.Word, i)
		}
	}
	return nil
}
