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

package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry struct {
	key string
	pos int
}

func (e entry) String() string {
	return e.key
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	values := []entry{
		{"घर", 0},
		{"आकाश", 1},
		{"घर", 2},
		{"इनार", 3},
	}

	tests := []struct {
		name     string
		query    string
		expected []entry
	}{
		{
			name:     "single result",
			query:    "आकाश",
			expected: []entry{{"आकाश", 1}},
		},
		{
			name:     "multiple results keep order",
			query:    "घर",
			expected: []entry{{"घर", 0}, {"घर", 2}},
		},
		{
			name:     "no results",
			query:    "घरमा",
			expected: nil,
		},
		{
			name:     "empty query",
			query:    "",
			expected: nil,
		},
	}

	idx := New(values)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := idx.Search(test.query)
			if diff := cmp.Diff(test.expected, got, cmp.AllowUnexported(entry{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew_doesNotModifyInput(t *testing.T) {
	t.Parallel()

	values := []entry{{"ख", 0}, {"क", 1}}
	idx := New(values)

	if diff := cmp.Diff([]entry{{"ख", 0}, {"क", 1}}, values, cmp.AllowUnexported(entry{})); diff != "" {
		t.Fatalf("values (-want, +got):\n%s", diff)
	}
	if got, want := idx.Len(), 2; got != want {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
}
