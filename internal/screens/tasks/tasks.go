// Package tasks is the task list pane: capture, complete and review the
// week's work.
package tasks

import (
	"fmt"
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

// Task is one entry in the list.
type Task struct {
	Title string
	Done  bool
}

// Model is the Tasks tab pane.
type Model struct {
	input  components.TextInput
	tasks  []Task
	cursor int

	env *detect.Runtime
	bus *bus.Bus
}

// New creates the Tasks pane.
func New(env *detect.Runtime, b *bus.Bus) Model {
	return Model{
		input: components.NewTextInput("What do you need to get done?", 60),
		env:   env,
		bus:   b,
	}
}

func (m Model) Init() tea.Cmd {
	if m.env != nil {
		m.env.SetRegion("tasks.form", true)
	}
	return m.input.Init()
}

func (m Model) Title() string { return "Tasks" }

// Stats returns (done, total) for the header.
func (m Model) Stats() (int, int) {
	done := 0
	for _, t := range m.tasks {
		if t.Done {
			done++
		}
	}
	return done, len(m.tasks)
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				return m, nil
			}
			m.tasks = append(m.tasks, Task{Title: title})
			m.input.Reset()
			m.announceCreated()
			return m, nil
		case "ctrl+d":
			if len(m.tasks) > 0 {
				m.tasks[m.cursor].Done = !m.tasks[m.cursor].Done
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// announceCreated tells the rest of the app a task now exists.
func (m Model) announceCreated() {
	if m.env != nil {
		m.env.FireEvent("submit", "tasks.form")
		m.env.InsertRegion("tasks.list.item")
	}
	if m.bus != nil {
		m.bus.Publish(bus.Signal{Name: tour.SignalTaskCreated})
	}
}

func (m Model) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("This week") + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(theme.Hint.Render("Nothing here yet. Add your first task below.") + "\n")
	}
	for i, t := range m.tasks {
		mark := "○"
		style := theme.Unselected
		if t.Done {
			mark = "✔"
			style = theme.Done
		}
		line := fmt.Sprintf("%s %s", mark, t.Title)
		if i == m.cursor {
			line = "▸ " + line
			if !t.Done {
				style = theme.Selected
			}
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString("\n" + m.input.View())

	card := theme.Card.Width(min(width-4, 70)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Add task"},
		{Key: "Ctrl+D", Description: "Toggle done"},
		{Key: "↑↓", Description: "Select"},
	}
}
