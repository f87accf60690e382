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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ianlewis/go-sabdkosh"
)

// defaultGrammar is shown for definitions without a grammar label.
const defaultGrammar = "शब्द"

const emptyState = "no matching words"

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{
		m.styles.Title.Render(m.title),
		m.input.View(),
		m.letterBar(),
		m.status(),
	}
	if m.detail {
		lines = append(lines, m.detailView())
	} else {
		lines = append(lines, m.listLines()...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) clip(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}

func (m *Model) letterBar() string {
	current := m.state.CurrentLetter()
	letters := m.state.Letters().Letters()
	parts := make([]string, 0, len(letters))
	for _, l := range letters {
		if l == current {
			parts = append(parts, m.styles.Active.Render(l))
		} else {
			parts = append(parts, m.styles.Letter.Render(l))
		}
	}
	return m.clip(strings.Join(parts, " "))
}

func (m *Model) status() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("error: %v", m.err))
	}
	if !m.state.Searching() {
		return m.styles.Status.Render(fmt.Sprintf("%d words", m.state.Total()))
	}
	if m.state.Total() == 0 {
		return m.styles.Empty.Render(emptyState)
	}
	return m.styles.Status.Render(fmt.Sprintf("%d results for %q", m.state.Total(), m.state.Query()))
}

// listLines renders the visible part of the list.
func (m *Model) listLines() []string {
	items := m.state.Items()
	r, skip := m.state.Window()
	h := m.state.ItemHeight()

	lines := make([]string, 0, r.Len()*h)
	for i := r.Start; i < r.End; i++ {
		lines = append(lines, m.itemLines(i, items[i])...)
	}

	skip = min(max(skip, 0), len(lines))
	lines = lines[skip:]
	if vh := m.state.ViewportHeight(); len(lines) > vh {
		lines = lines[:vh]
	}
	return lines
}

// itemLines renders item i as exactly ItemHeight lines.
func (m *Model) itemLines(i int, r *sabdkosh.Record) []string {
	word := m.styles.Word
	if res := m.state.Result(); res != nil && res.IsExact(r.Word) {
		word = m.styles.Exact
	}

	cursor := "  "
	if i == m.state.Selected() {
		cursor = m.styles.Selected.Render("> ")
	}

	lines := make([]string, m.state.ItemHeight())
	match := m.styles.Highlight.Inherit(word)
	lines[0] = m.clip(cursor + Highlight(r.Word, m.state.Query(),
		func(s string) string { return match.Render(s) },
		func(s string) string { return word.Render(s) },
	))
	if len(lines) > 1 {
		lines[1] = m.clip("  " + m.styles.Preview.Render(r.Preview()))
	}
	return lines
}

func (m *Model) detailView() string {
	r := m.state.SelectedRecord()
	if r == nil {
		return ""
	}
	panel := m.styles.Panel
	if m.width > 2 {
		panel = panel.Width(m.width - 2)
	}
	return panel.Render(strings.Join(DetailLines(m.dataset.Lookup(r.Word), m.styles), "\n"))
}

// DetailLines renders all records of a headword: the word followed by each
// definition's grammar label and its senses as a bulleted list.
func DetailLines(records []*sabdkosh.Record, styles Styles) []string {
	if len(records) == 0 {
		return nil
	}
	lines := []string{styles.Word.Render(records[0].Word)}
	for _, r := range records {
		if len(r.Definitions) == 0 {
			lines = append(lines, "", styles.Empty.Render("no definitions"))
		}
		for _, d := range r.Definitions {
			g := d.Grammar
			if g == "" {
				g = defaultGrammar
			}
			lines = append(lines, "", styles.Grammar.Render(g))
			for _, s := range d.Senses {
				lines = append(lines, "• "+s)
			}
		}
	}
	return lines
}
