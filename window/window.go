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

// Package window computes which rows of a long, fixed row height list need to
// be materialized for a given scroll position.
//
// The full list is represented by a spacer of SpacerHeight. Only the rows in
// the visible range, plus a buffer of rows on either side, are rendered, as
// one block placed at the range's Offset inside the spacer.
package window

// Range is a half open range of row indexes [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty returns true if the range contains no rows.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains returns true if row i is in the range.
func (r Range) Contains(i int) bool {
	return r.Start <= i && i < r.End
}

// Offset returns the vertical position of the first row in the range.
func (r Range) Offset(itemHeight int) int {
	return r.Start * itemHeight
}

// VisibleRange returns the rows that must be rendered for a viewport of
// viewportHeight scrolled to scrollTop, extended by buffer rows above and
// below. The result always satisfies 0 <= Start <= End <= total. A
// non-positive itemHeight yields an empty range.
func VisibleRange(total, itemHeight, scrollTop, viewportHeight, buffer int) Range {
	if total <= 0 || itemHeight <= 0 {
		return Range{}
	}
	scrollTop = max(scrollTop, 0)
	viewportHeight = max(viewportHeight, 0)
	buffer = max(buffer, 0)

	start := max(0, scrollTop/itemHeight-buffer)
	// ceil((scrollTop + viewportHeight) / itemHeight)
	end := min(total, ceilDiv(scrollTop+viewportHeight, itemHeight)+buffer)

	// Scrolled past the end of the list.
	start = min(start, end)

	return Range{
		Start: start,
		End:   end,
	}
}

// SpacerHeight returns the height of the full list.
func SpacerHeight(total, itemHeight int) int {
	return max(total, 0) * max(itemHeight, 0)
}

// MaxScroll returns the largest scroll offset at which the viewport is still
// filled by the list.
func MaxScroll(total, itemHeight, viewportHeight int) int {
	return max(0, SpacerHeight(total, itemHeight)-viewportHeight)
}

// ClampScroll limits scrollTop to [0, MaxScroll].
func ClampScroll(scrollTop, total, itemHeight, viewportHeight int) int {
	return min(max(scrollTop, 0), MaxScroll(total, itemHeight, viewportHeight))
}

// Slice returns the elements of items in r. The range is clamped to the
// bounds of items.
func Slice[T any](items []T, r Range) []T {
	start := min(max(r.Start, 0), len(items))
	end := min(max(r.End, start), len(items))
	return items[start:end:end]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
