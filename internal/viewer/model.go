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
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ianlewis/go-sabdkosh"
	"github.com/ianlewis/go-sabdkosh/search"
)

// headerLines is the number of lines above the list: the title, the search
// input, the letter bar and the status line.
const headerLines = 4

// Backend runs searches for the viewer. *search.Worker implements Backend.
type Backend interface {
	Submit(ctx context.Context, req search.Request) error
	Responses() <-chan search.Response
}

// Config configures a Model.
type Config struct {
	// Options are the list options.
	Options *Options

	// Debounce is how long to wait after the last keystroke before
	// searching.
	Debounce time.Duration

	// Styles are the rendering styles. DefaultStyles are used if nil.
	Styles *Styles

	// Title is shown at the top of the screen.
	Title string
}

type responseMsg search.Response

type errMsg struct {
	err error
}

type closedMsg struct{}

// Model is the bubbletea model of the viewer.
type Model struct {
	//nolint:containedctx // tea commands are not passed a context.
	ctx      context.Context
	dataset  *sabdkosh.Dataset
	backend  Backend
	state    *State
	input    textinput.Model
	debounce debouncer
	styles   Styles
	title    string

	width  int
	height int
	detail bool
	err    error
}

// New returns a viewer for d that searches with backend. Requests are
// submitted with ctx.
func New(ctx context.Context, d *sabdkosh.Dataset, backend Backend, cfg *Config) *Model {
	if cfg == nil {
		cfg = &Config{}
	}
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	ti := textinput.New()
	ti.Placeholder = "शब्द खोज्नुहोस्..."
	ti.Prompt = "/ "
	ti.Focus()

	return &Model{
		ctx:     ctx,
		dataset: d,
		backend: backend,
		state:   NewState(d, cfg.Options),
		input:   ti,
		debounce: debouncer{
			delay: cfg.Debounce,
		},
		styles: styles,
		title:  cfg.Title,
	}
}

// State returns the list state.
func (m *Model) State() *State {
	return m.state
}

// Err returns the last search error.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.wait())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.state.SetViewportHeight(m.height - headerLines)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if !m.debounce.Live(msg) {
			return m, nil
		}
		return m, m.submit(m.state.Issue(msg.query))

	case responseMsg:
		if m.state.Apply(search.Response(msg)) {
			m.detail = false
			m.err = nil
		}
		return m, m.wait()

	case errMsg:
		m.err = msg.err
		return m, nil

	case closedMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		switch {
		case m.detail:
			m.detail = false
		case m.input.Value() != "":
			m.clearInput()
			m.state.Clear()
		default:
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyEnter:
		if m.state.SelectedRecord() != nil {
			m.detail = !m.detail
		}
		return m, nil
	case tea.KeyUp:
		m.state.Move(-1)
		return m, nil
	case tea.KeyDown:
		m.state.Move(1)
		return m, nil
	case tea.KeyPgUp:
		m.state.Move(-m.state.PageSize())
		return m, nil
	case tea.KeyPgDown:
		m.state.Move(m.state.PageSize())
		return m, nil
	case tea.KeyTab:
		m.jumpTo(m.state.NextLetter(1))
		return m, nil
	case tea.KeyShiftTab:
		m.jumpTo(m.state.NextLetter(-1))
		return m, nil
	case tea.KeyRunes:
		// alt+<letter> jumps to the letter.
		if msg.Alt && len(msg.Runes) == 1 {
			m.jumpTo(string(msg.Runes))
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.detail = false
		return m, tea.Batch(cmd, m.debounce.Trigger(v))
	}
	return m, cmd
}

// jumpTo clears the search input and jumps to letter.
func (m *Model) jumpTo(letter string) {
	if letter == "" {
		return
	}
	if _, ok := m.state.Letters().Position(letter); !ok {
		return
	}
	m.clearInput()
	m.detail = false
	m.state.JumpTo(letter)
}

func (m *Model) clearInput() {
	m.input.SetValue("")
	m.debounce.Cancel()
}

// submit returns a command that submits req to the backend.
func (m *Model) submit(req search.Request) tea.Cmd {
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		if err := backend.Submit(ctx, req); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

// wait returns a command that waits for the next backend response.
func (m *Model) wait() tea.Cmd {
	responses := m.backend.Responses()
	return func() tea.Msg {
		resp, ok := <-responses
		if !ok {
			return closedMsg{}
		}
		return responseMsg(resp)
	}
}
