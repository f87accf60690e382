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

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "212"
	colorExact  = "154"
	colorGray   = "245"
	colorDim    = "238"
	colorRed    = "196"
)

// Styles holds the viewer's lipgloss styles.
type Styles struct {
	Title     lipgloss.Style
	Word      lipgloss.Style
	Exact     lipgloss.Style
	Selected  lipgloss.Style
	Preview   lipgloss.Style
	Highlight lipgloss.Style
	Letter    lipgloss.Style
	Active    lipgloss.Style
	Status    lipgloss.Style
	Empty     lipgloss.Style
	Error     lipgloss.Style
	Grammar   lipgloss.Style
	Panel     lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		Word:      lipgloss.NewStyle().Bold(true),
		Exact:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorExact)),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
		Preview:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Highlight: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(colorAccent)),
		Letter:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Active:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(colorGray)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)),
		Grammar:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorDim)).
			Padding(0, 1),
	}
}

// NoColorStyles returns unstyled styles.
func NoColorStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle(),
		Word:      lipgloss.NewStyle(),
		Exact:     lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle(),
		Preview:   lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle(),
		Letter:    lipgloss.NewStyle(),
		Active:    lipgloss.NewStyle(),
		Status:    lipgloss.NewStyle(),
		Empty:     lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Grammar:   lipgloss.NewStyle(),
		Panel:     lipgloss.NewStyle(),
	}
}
