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
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg is delivered when the debounce delay for a query has passed.
type debounceMsg struct {
	seq   uint64
	query string
}

// debouncer delays searches until the user stops typing. Only the message
// from the most recent Trigger is live.
type debouncer struct {
	delay time.Duration
	seq   uint64
}

// Trigger returns a command that delivers a debounceMsg for query after the
// delay. Earlier triggers become stale.
func (d *debouncer) Trigger(query string) tea.Cmd {
	d.seq++
	msg := debounceMsg{
		seq:   d.seq,
		query: query,
	}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// Cancel makes all pending triggers stale.
func (d *debouncer) Cancel() {
	d.seq++
}

// Live returns true if msg is from the most recent Trigger.
func (d *debouncer) Live(msg debounceMsg) bool {
	return msg.seq == d.seq
}
