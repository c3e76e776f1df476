// Package assistant is the study-planning helper pane. Suggestions come
// from a local playbook; nothing leaves the machine.
package assistant

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyloop/studyloop/internal/bus"
	"github.com/studyloop/studyloop/internal/detect"
	"github.com/studyloop/studyloop/internal/screen"
	"github.com/studyloop/studyloop/internal/tour"
	"github.com/studyloop/studyloop/internal/ui/components"
	"github.com/studyloop/studyloop/internal/ui/layout"
	"github.com/studyloop/studyloop/internal/ui/theme"
)

// playbook holds the rotating set of planning suggestions.
var playbook = []string{
	"Break it into 25-minute blocks and park one concrete question per block.",
	"Start with the part you understand least — energy is highest now.",
	"Write tomorrow's first task tonight so you can start without deciding.",
	"Pair a dreaded subject with a favorite spot or snack. Anchors work.",
	"Review today's notes for five minutes before anything new.",
}

type exchange struct {
	prompt string
	reply  string
}

// Model is the Assistant tab pane.
type Model struct {
	input    components.TextInput
	history  []exchange
	nextTip  int

	env *detect.Runtime
	bus *bus.Bus
}

// New creates the Assistant pane.
func New(env *detect.Runtime, b *bus.Bus) Model {
	return Model{
		input: components.NewTextInput("Ask for a study suggestion...", 80),
		env:   env,
		bus:   b,
	}
}

func (m Model) Init() tea.Cmd {
	if m.env != nil {
		m.env.SetRegion("assistant.prompt", true)
	}
	return m.input.Init()
}

func (m Model) Title() string { return "Assistant" }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		prompt := strings.TrimSpace(m.input.Value())
		if prompt == "" {
			return m, nil
		}
		reply := playbook[m.nextTip%len(playbook)]
		m.nextTip++
		m.history = append(m.history, exchange{prompt: prompt, reply: reply})
		m.input.Reset()

		if m.env != nil {
			m.env.FireEvent("submit", "assistant.prompt")
			m.env.InsertRegion("assistant.response")
		}
		if m.bus != nil {
			m.bus.Publish(bus.Signal{Name: tour.SignalSuggestionRequested})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Study assistant") + "\n\n")

	if len(m.history) == 0 {
		b.WriteString(theme.Hint.Render("Stuck on planning? Ask away.") + "\n")
	}
	for _, ex := range m.history {
		b.WriteString(theme.Selected.Render("you  ") + theme.Body.Render(ex.prompt) + "\n")
		b.WriteString(theme.Hint.Render("loop ") + theme.Body.Render(ex.reply) + "\n\n")
	}

	b.WriteString(m.input.View())

	card := theme.Card.Width(min(width-4, 80)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Ask"}}
}
