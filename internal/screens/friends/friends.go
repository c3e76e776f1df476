// Package friends is the study-buddy pane: who's around and what they're
// working on.
package friends

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

type friend struct {
	name    string
	status  string
	online  bool
}

// Model is the Friends tab pane.
type Model struct {
	friends  []friend
	cursor   int
	expanded bool

	env *detect.Runtime
	bus *bus.Bus
}

// New creates the Friends pane with placeholder connections until the
// social backend lands.
func New(env *detect.Runtime, b *bus.Bus) Model {
	return Model{
		friends: []friend{
			{name: "Maya", status: "Deep in organic chemistry", online: true},
			{name: "Jonas", status: "Flashcards: Spanish vocab", online: true},
			{name: "Priya", status: "Taking a break", online: false},
		},
		env: env,
		bus: b,
	}
}

func (m Model) Init() tea.Cmd {
	if m.env != nil {
		m.env.SetRegion("friends.list", true)
	}
	return nil
}

func (m Model) Title() string { return "Friends" }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.expanded = false
	case "down", "j":
		if m.cursor < len(m.friends)-1 {
			m.cursor++
		}
		m.expanded = false
	case "enter":
		m.expanded = !m.expanded
		if m.env != nil {
			m.env.FireEvent("click", "friends.list")
		}
		if m.bus != nil {
			m.bus.Publish(bus.Signal{Name: tour.SignalConnectionsViewed})
		}
	}
	return m, nil
}

func (m Model) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Study buddies") + "\n\n")

	for i, f := range m.friends {
		dot := theme.Hint.Render("·")
		if f.online {
			dot = theme.Done.Render("●")
		}
		line := fmt.Sprintf("%s %s", dot, f.name)
		if i == m.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
			if m.expanded {
				b.WriteString(theme.Hint.Render("    "+f.status) + "\n")
			}
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "See status"},
	}
}
