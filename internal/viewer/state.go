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

// Package viewer implements the interactive terminal dictionary viewer.
package viewer

import (
	"github.com/ianlewis/go-sabdkosh"
	"github.com/ianlewis/go-sabdkosh/search"
	"github.com/ianlewis/go-sabdkosh/window"
)

// Options are options for the viewer.
type Options struct {
	// ItemHeight is the number of terminal lines per list item.
	ItemHeight int

	// Buffer is the number of extra items rendered above and below the
	// viewport.
	Buffer int
}

// DefaultOptions is the default options for the viewer.
var DefaultOptions = &Options{
	ItemHeight: 2,
	Buffer:     10,
}

// State is the viewer's list state. It holds the current search result, the
// scroll position and the selection. State does no I/O; searches are issued
// as requests and their responses applied with Apply.
type State struct {
	records []*sabdkosh.Record
	letters *sabdkosh.LetterIndex
	tracker search.Tracker

	// result is nil when no search is active.
	result *search.Result

	itemHeight     int
	buffer         int
	viewportHeight int
	scrollTop      int
	selected       int
}

// NewState returns the state for browsing d.
func NewState(d *sabdkosh.Dataset, options *Options) *State {
	if options == nil {
		options = DefaultOptions
	}
	return &State{
		records:    d.Records(),
		letters:    d.Letters(),
		itemHeight: max(options.ItemHeight, 1),
		buffer:     max(options.Buffer, 0),
	}
}

// Issue returns a search request for query. Responses to earlier requests
// are no longer current once Issue is called.
func (s *State) Issue(query string) search.Request {
	return s.tracker.Issue(query)
}

// Apply applies a search response. Stale responses are discarded and Apply
// returns false. Applying a response resets the scroll position and the
// selection.
func (s *State) Apply(resp search.Response) bool {
	if !s.tracker.Current(resp) {
		return false
	}
	if resp.Result == nil || resp.Result.Query == "" {
		s.result = nil
	} else {
		s.result = resp.Result
	}
	s.scrollTop = 0
	s.selected = 0
	return true
}

// Clear ends the active search and shows the whole dataset. Outstanding
// requests become stale.
func (s *State) Clear() {
	s.tracker.Cancel()
	if s.result != nil {
		s.result = nil
		s.scrollTop = 0
		s.selected = 0
	}
}

// Searching returns true if a search result is shown.
func (s *State) Searching() bool {
	return s.result != nil
}

// Query returns the normalized query of the shown result.
func (s *State) Query() string {
	if s.result == nil {
		return ""
	}
	return s.result.Query
}

// Result returns the shown search result or nil.
func (s *State) Result() *search.Result {
	return s.result
}

// Items returns the records currently listed.
func (s *State) Items() []*sabdkosh.Record {
	if s.result == nil {
		return s.records
	}
	return s.result.Records
}

// Total returns the number of records currently listed.
func (s *State) Total() int {
	return len(s.Items())
}

// Letters returns the dataset's letter index.
func (s *State) Letters() *sabdkosh.LetterIndex {
	return s.letters
}

// ItemHeight returns the number of lines per list item.
func (s *State) ItemHeight() int {
	return s.itemHeight
}

// ScrollTop returns the scroll offset in lines.
func (s *State) ScrollTop() int {
	return s.scrollTop
}

// ViewportHeight returns the height of the list viewport in lines.
func (s *State) ViewportHeight() int {
	return s.viewportHeight
}

// SetViewportHeight resizes the viewport and keeps the scroll offset and the
// selection in view.
func (s *State) SetViewportHeight(h int) {
	s.viewportHeight = max(h, 0)
	s.ScrollTo(s.scrollTop)
	s.reveal()
}

// ScrollTo scrolls to the offset y, clamped to the list.
func (s *State) ScrollTo(y int) {
	s.scrollTop = window.ClampScroll(y, s.Total(), s.itemHeight, s.viewportHeight)
}

// ScrollBy scrolls by dy lines.
func (s *State) ScrollBy(dy int) {
	s.ScrollTo(s.scrollTop + dy)
}

// Selected returns the index of the selected item.
func (s *State) Selected() int {
	return s.selected
}

// SelectedRecord returns the selected record or nil if the list is empty.
func (s *State) SelectedRecord() *sabdkosh.Record {
	items := s.Items()
	if s.selected < 0 || s.selected >= len(items) {
		return nil
	}
	return items[s.selected]
}

// Select selects item i, clamped to the list, and scrolls it into view.
func (s *State) Select(i int) {
	s.selected = min(max(i, 0), max(s.Total()-1, 0))
	s.reveal()
}

// Move moves the selection by n items.
func (s *State) Move(n int) {
	s.Select(s.selected + n)
}

// PageSize returns the number of whole items that fit in the viewport.
func (s *State) PageSize() int {
	return max(s.viewportHeight/s.itemHeight, 1)
}

// reveal scrolls the minimum amount needed to show the selected item.
func (s *State) reveal() {
	top := s.selected * s.itemHeight
	bottom := top + s.itemHeight
	switch {
	case top < s.scrollTop:
		s.ScrollTo(top)
	case bottom > s.scrollTop+s.viewportHeight:
		s.ScrollTo(bottom - s.viewportHeight)
	}
}

// JumpTo ends any active search and scrolls to the first word starting with
// letter. It returns false if no word starts with letter.
func (s *State) JumpTo(letter string) bool {
	pos, ok := s.letters.Position(letter)
	if !ok {
		return false
	}
	s.Clear()
	s.selected = pos
	s.ScrollTo(pos * s.itemHeight)
	return true
}

// CurrentLetter returns the letter of the item at the top of the viewport.
// It returns "" while a search is active or the list is empty.
func (s *State) CurrentLetter() string {
	if s.result != nil {
		return ""
	}
	i := s.scrollTop / s.itemHeight
	if i >= len(s.records) {
		return ""
	}
	return s.records[i].Letter()
}

// NextLetter returns the letter n places after the current letter in the
// letter index, wrapping around. It returns "" if there are no letters.
func (s *State) NextLetter(n int) string {
	letters := s.letters.Letters()
	if len(letters) == 0 {
		return ""
	}
	cur := -1
	if l := s.CurrentLetter(); l != "" {
		for i, letter := range letters {
			if letter == l {
				cur = i
				break
			}
		}
	}
	if cur < 0 {
		if n > 0 {
			return letters[0]
		}
		return letters[len(letters)-1]
	}
	i := ((cur+n)%len(letters) + len(letters)) % len(letters)
	return letters[i]
}

// Window returns the range of items to render and the number of lines to
// skip from the top of the rendered block so that it lines up with the
// viewport.
func (s *State) Window() (window.Range, int) {
	r := window.VisibleRange(s.Total(), s.itemHeight, s.scrollTop, s.viewportHeight, s.buffer)
	return r, s.scrollTop - r.Offset(s.itemHeight)
}
