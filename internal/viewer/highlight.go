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

package viewer

import (
	"strings"
	"unicode/utf8"
)

// Segment is a piece of highlighted text.
type Segment struct {
	Text  string
	Match bool
}

// Split splits s into segments that match query case-insensitively and
// segments that don't. Matches do not overlap. An empty query yields a
// single unmatched segment.
func Split(s, query string) []Segment {
	if query == "" || s == "" {
		return []Segment{{Text: s}}
	}
	n := utf8.RuneCountInString(query)

	var segs []Segment
	last := 0
	for i := 0; i < len(s); {
		end := advance(s, i, n)
		if end >= 0 && strings.EqualFold(s[i:end], query) {
			if last < i {
				segs = append(segs, Segment{Text: s[last:i]})
			}
			segs = append(segs, Segment{Text: s[i:end], Match: true})
			i, last = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	if last < len(s) {
		segs = append(segs, Segment{Text: s[last:]})
	}
	return segs
}

// Highlight renders the segments of s matching query with match and the
// rest with other. A nil func leaves its segments unchanged.
func Highlight(s, query string, match, other func(string) string) string {
	var b strings.Builder
	for _, seg := range Split(s, query) {
		render := other
		if seg.Match {
			render = match
		}
		if render == nil {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(render(seg.Text))
	}
	return b.String()
}

// advance returns the byte offset n runes after i in s, or -1 if s is too
// short.
func advance(s string, i, n int) int {
	for ; n > 0; n-- {
		if i >= len(s) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
