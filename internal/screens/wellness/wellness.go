// Package wellness is the mood check-in pane.
package wellness

import (
	"fmt"
	"strings"
	"time"

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

var moods = []string{
	"😄  Great — ready for anything",
	"🙂  Good",
	"😐  Meh",
	"😣  Stressed",
	"😵  Overwhelmed",
}

type entry struct {
	mood string
	at   time.Time
}

// Model is the Wellness tab pane.
type Model struct {
	picker  components.Picker
	history []entry

	env *detect.Runtime
	bus *bus.Bus
}

// New creates the Wellness pane.
func New(env *detect.Runtime, b *bus.Bus) Model {
	return Model{
		picker: components.NewPicker("How are you feeling right now?", moods),
		env:    env,
		bus:    b,
	}
}

func (m Model) Init() tea.Cmd {
	if m.env != nil {
		m.env.SetRegion("wellness.log", true)
	}
	return nil
}

func (m Model) Title() string { return "Wellness" }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	before := m.picker.Chosen
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if m.picker.Chosen != before && m.picker.Chosen >= 0 {
		m.history = append(m.history, entry{mood: moods[m.picker.Chosen], at: time.Now()})
		if m.env != nil {
			m.env.FireEvent("submit", "wellness.log")
			m.env.InsertRegion("wellness.history.entry")
		}
		if m.bus != nil {
			m.bus.Publish(bus.Signal{Name: tour.SignalMoodLogged})
		}
	}
	return m, cmd
}

func (m Model) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Check in") + "\n\n")
	b.WriteString(m.picker.View())

	if len(m.history) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Recent check-ins") + "\n")
		start := len(m.history) - 3
		if start < 0 {
			start = 0
		}
		for _, e := range m.history[start:] {
			b.WriteString(theme.Hint.Render(
				fmt.Sprintf("%s  %s", e.at.Format("15:04"), e.mood)) + "\n")
		}
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pick a mood"},
		{Key: "Enter", Description: "Log it"},
	}
}
