// Package trophies is the achievements pane: milestones plus anything
// earned during the tour.
package trophies

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyloop/studyloop/internal/bus"
	"github.com/studyloop/studyloop/internal/detect"
	"github.com/studyloop/studyloop/internal/screen"
	"github.com/studyloop/studyloop/internal/tour"
	"github.com/studyloop/studyloop/internal/ui/layout"
	"github.com/studyloop/studyloop/internal/ui/theme"
)

// GrantedMsg adds a freshly earned trophy to the shelf.
type GrantedMsg struct {
	Name string
	Icon string
}

type trophy struct {
	icon   string
	name   string
	earned bool
}

// Model is the Trophies tab pane.
type Model struct {
	shelf []trophy

	env *detect.Runtime
	bus *bus.Bus
}

// New creates the Trophies pane with the standing milestones.
func New(env *detect.Runtime, b *bus.Bus) Model {
	return Model{
		shelf: []trophy{
			{icon: "🌱", name: "First task finished"},
			{icon: "🔥", name: "Three-day streak"},
			{icon: "🦉", name: "Late-night session"},
			{icon: "🏖", name: "A full day off"},
		},
		env: env,
		bus: b,
	}
}

func (m Model) Init() tea.Cmd {
	if m.env != nil {
		m.env.SetRegion("trophies.shelf", true)
	}
	return nil
}

func (m Model) Title() string { return "Trophies" }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case GrantedMsg:
		m.shelf = append(m.shelf, trophy{icon: msg.Icon, name: msg.Name, earned: true})
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if m.env != nil {
				m.env.FireEvent("click", "trophies.shelf")
			}
			if m.bus != nil {
				m.bus.Publish(bus.Signal{Name: tour.SignalTrophiesViewed})
			}
		}
	}
	return m, nil
}

// Earned counts trophies the user has actually won.
func (m Model) Earned() int {
	n := 0
	for _, t := range m.shelf {
		if t.earned {
			n++
		}
	}
	return n
}

func (m Model) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Trophy shelf") + "\n\n")

	for _, t := range m.shelf {
		line := fmt.Sprintf("%s  %s", t.icon, t.name)
		if t.earned {
			b.WriteString(theme.Done.Render(line+"  ✔") + "\n")
		} else {
			b.WriteString(theme.Hint.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + theme.Subtitle.Render("Keep looping — more to earn."))

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Admire"}}
}
