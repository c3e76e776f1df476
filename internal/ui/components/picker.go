package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyloop/studyloop/internal/ui/theme"
)

// Picker is a vertical single-choice selector.
type Picker struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   int // -1 until the user confirms
}

// NewPicker creates a picker with nothing chosen yet.
func NewPicker(prompt string, options []string) Picker {
	return Picker{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Update handles keyboard navigation. Choosing again replaces the
// previous choice.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "enter":
		p.Chosen = p.Selected
	}

	return p, nil
}

// View renders the picker.
func (p Picker) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Prompt) + "\n\n"

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s", prefix, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == p.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case i == p.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
