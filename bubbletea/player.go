// Package bubbletea provides a terminal player for code transition
// animations using the Bubble Tea framework. The player polls the timeline
// on a frame tick; it never chains delayed callbacks, so the phase shown is
// always a pure function of elapsed time.
package bubbletea

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/codemotion"
	"github.com/fwojciec/codemotion/timeline"
)

// Compile-time interface verification.
var _ codemotion.Player = (*Player)(nil)

// frameInterval is the polling cadence, roughly 30 fps.
const frameInterval = 33 * time.Millisecond

// frameMsg asks the model to re-read the timeline.
type frameMsg time.Time

// Model is the Bubble Tea model for playing one render plan.
type Model struct {
	title    string
	plan     *codemotion.RenderPlan
	styles   codemotion.Styles
	runner   *timeline.Runner
	run      *timeline.Run
	viewport viewport.Model
	ready    bool
	done     bool
	autoQuit bool
}

// NewModel creates a model for the given plan. A bypassed plan renders
// statically and never starts a run.
func NewModel(title string, plan *codemotion.RenderPlan, theme codemotion.Theme) Model {
	return Model{
		title:  title,
		plan:   plan,
		styles: theme.Styles(),
		runner: timeline.NewRunner(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.plan.Bypassed {
		return nil
	}
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.run != nil {
				m.run.Finish()
			}
			return m, tea.Quit
		case "r":
			// Replay from the start; the runner retires the previous run
			// so its completion cannot fire late.
			if !m.plan.Bypassed {
				m.run = m.runner.Start(m.schedule(), nil)
				m.done = false
				m.refresh()
				return m, frameCmd()
			}
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
			if !m.plan.Bypassed && m.run == nil {
				m.run = m.runner.Start(m.schedule(), nil)
			}
			m.refresh()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}

	case frameMsg:
		m.refresh()
		if m.run != nil && m.run.Phase() == codemotion.PhaseComplete {
			m.done = true
			if m.autoQuit {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, frameCmd()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) schedule() *timeline.Schedule {
	return timeline.New(m.plan.Timings, m.plan.AddedCount)
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderFrame())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

// Player implements codemotion.Player using a Bubble Tea TUI.
type Player struct {
	theme    codemotion.Theme
	autoQuit bool
}

// NewPlayer creates a Player. With autoQuit the program exits as soon as the
// animation completes, which lets a caller chain several plans.
func NewPlayer(theme codemotion.Theme, autoQuit bool) *Player {
	return &Player{theme: theme, autoQuit: autoQuit}
}

// Play displays the plan and blocks until the animation finishes (autoQuit)
// or the user exits.
func (p *Player) Play(ctx context.Context, title string, plan *codemotion.RenderPlan) error {
	m := NewModel(title, plan, p.theme)
	m.autoQuit = p.autoQuit
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := prog.Run()
	return err
}
