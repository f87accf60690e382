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

package window

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVisibleRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		total          int
		itemHeight     int
		scrollTop      int
		viewportHeight int
		buffer         int
		expected       Range
	}{
		{
			name:           "top without buffer",
			total:          100,
			itemHeight:     80,
			scrollTop:      0,
			viewportHeight: 240,
			buffer:         0,
			expected:       Range{Start: 0, End: 3},
		},
		{
			name:           "top with buffer",
			total:          100,
			itemHeight:     80,
			scrollTop:      0,
			viewportHeight: 240,
			buffer:         10,
			expected:       Range{Start: 0, End: 13},
		},
		{
			name:           "middle with partial rows",
			total:          100,
			itemHeight:     80,
			scrollTop:      4000,
			viewportHeight: 600,
			buffer:         10,
			// floor(4000/80) - 10 = 40, ceil(4600/80) + 10 = 68
			expected: Range{Start: 40, End: 68},
		},
		{
			name:           "bottom clamped",
			total:          100,
			itemHeight:     80,
			scrollTop:      7760,
			viewportHeight: 240,
			buffer:         10,
			expected:       Range{Start: 87, End: 100},
		},
		{
			name:           "short list",
			total:          2,
			itemHeight:     2,
			scrollTop:      0,
			viewportHeight: 20,
			buffer:         10,
			expected:       Range{Start: 0, End: 2},
		},
		{
			name:           "empty list",
			total:          0,
			itemHeight:     80,
			scrollTop:      0,
			viewportHeight: 240,
			buffer:         10,
			expected:       Range{},
		},
		{
			name:           "scrolled past end",
			total:          10,
			itemHeight:     1,
			scrollTop:      100,
			viewportHeight: 5,
			buffer:         2,
			expected:       Range{Start: 10, End: 10},
		},
		{
			name:           "zero item height",
			total:          10,
			itemHeight:     0,
			scrollTop:      0,
			viewportHeight: 5,
			buffer:         2,
			expected:       Range{},
		},
		{
			name:           "zero viewport",
			total:          10,
			itemHeight:     2,
			scrollTop:      4,
			viewportHeight: 0,
			buffer:         0,
			expected:       Range{Start: 2, End: 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := VisibleRange(test.total, test.itemHeight, test.scrollTop, test.viewportHeight, test.buffer)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("VisibleRange (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestVisibleRange_bounds(t *testing.T) {
	t.Parallel()

	for _, total := range []int{0, 1, 7, 100} {
		for _, itemHeight := range []int{1, 3, 80} {
			for scrollTop := 0; scrollTop <= 120*itemHeight; scrollTop += itemHeight/2 + 1 {
				for _, viewportHeight := range []int{0, 1, 10, 500} {
					for _, buffer := range []int{0, 1, 10} {
						r := VisibleRange(total, itemHeight, scrollTop, viewportHeight, buffer)
						if r.Start < 0 || r.Start > r.End || r.End > total {
							t.Fatalf("VisibleRange(%d, %d, %d, %d, %d) = %+v: out of bounds",
								total, itemHeight, scrollTop, viewportHeight, buffer, r)
						}
					}
				}
			}
		}
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := Range{Start: 3, End: 7}
	if got, want := r.Len(), 4; got != want {
		t.Errorf("Len: want %d, got %d", want, got)
	}
	if r.Empty() {
		t.Errorf("Empty: want false")
	}
	if !r.Contains(3) || r.Contains(7) {
		t.Errorf("Contains: bounds are [3, 7)")
	}
	if got, want := r.Offset(80), 240; got != want {
		t.Errorf("Offset: want %d, got %d", want, got)
	}
	if !(Range{Start: 2, End: 2}).Empty() {
		t.Errorf("Empty: want true")
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name     string
		r        Range
		expected []string
	}{
		{
			name:     "middle",
			r:        Range{Start: 1, End: 3},
			expected: []string{"b", "c"},
		},
		{
			name:     "past end",
			r:        Range{Start: 3, End: 9},
			expected: []string{"d", "e"},
		},
		{
			name:     "empty",
			r:        Range{Start: 2, End: 2},
			expected: []string{},
		},
		{
			name:     "inverted",
			r:        Range{Start: 4, End: 1},
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Slice(items, test.r)); diff != "" {
				t.Fatalf("Slice (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScroll(t *testing.T) {
	t.Parallel()

	if got, want := SpacerHeight(100, 80), 8000; got != want {
		t.Errorf("SpacerHeight: want %d, got %d", want, got)
	}
	if got, want := MaxScroll(100, 80, 240), 7760; got != want {
		t.Errorf("MaxScroll: want %d, got %d", want, got)
	}
	if got, want := MaxScroll(2, 80, 240), 0; got != want {
		t.Errorf("MaxScroll: want %d, got %d", want, got)
	}
	if got, want := ClampScroll(-5, 100, 80, 240), 0; got != want {
		t.Errorf("ClampScroll: want %d, got %d", want, got)
	}
	if got, want := ClampScroll(9000, 100, 80, 240), 7760; got != want {
		t.Errorf("ClampScroll: want %d, got %d", want, got)
	}
}
