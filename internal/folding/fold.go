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

package folding

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Lower returns a [transform.Transformer] that lower-cases text. Devanagari
// has no case so Nepali text passes through unchanged.
func Lower() transform.Transformer {
	return cases.Lower(language.Und)
}

// Query returns a [transform.Transformer] that normalizes a search query by
// trimming surrounding whitespace and lower-casing the rest.
func Query() transform.Transformer {
	return transform.Chain(&TrimFolder{}, Lower())
}

// String applies t to s.
func String(t transform.Transformer, s string) (string, error) {
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return out, nil
}

// FoldQuery normalizes a search query.
func FoldQuery(q string) string {
	out, err := String(Query(), q)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(q))
	}
	return out
}

// FoldText lower-cases s for comparison against a folded query.
func FoldText(s string) string {
	out, err := String(Lower(), s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
