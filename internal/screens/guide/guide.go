// Package guide renders the onboarding overlay: Loopy the narrator, the
// current step card and its progress. All state transitions live in the
// orchestrating app; this package only draws.
package guide

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/studyloop/studyloop/internal/tour"
	"github.com/studyloop/studyloop/internal/ui/components"
	"github.com/studyloop/studyloop/internal/ui/layout"
	"github.com/studyloop/studyloop/internal/ui/theme"
)

// Phase is the overlay's display state for the current step.
type Phase int

const (
	// PhaseShowing displays the step; passive steps count down here.
	PhaseShowing Phase = iota
	// PhaseWaiting means detection is armed and we wait on the user.
	PhaseWaiting
	// PhaseReady means the action was observed; invite the user onward.
	PhaseReady
	// PhaseBlocked means detection gave up; offer a way forward.
	PhaseBlocked
)

// Model is the overlay card.
type Model struct {
	Step    tour.StepConfig
	Index   int // zero-based position in the sequence
	Total   int
	Phase   Phase
	Message string // phase-specific status line (blocked reason etc.)
}

// SetStep resets the overlay for a new step.
func (m *Model) SetStep(step tour.StepConfig, index, total int) {
	m.Step = step
	m.Index = index
	m.Total = total
	m.Message = ""
	if step.Interactive() {
		m.Phase = PhaseWaiting
	} else {
		m.Phase = PhaseShowing
	}
}

// MarkReady flips the overlay after the awaited action was observed.
func (m *Model) MarkReady() {
	m.Phase = PhaseReady
	m.Message = ""
}

// MarkBlocked shows a reassuring message after detection gave up.
func (m *Model) MarkBlocked(message string) {
	m.Phase = PhaseBlocked
	m.Message = message
}

// Modal reports whether the overlay owns the keyboard. While waiting on
// an action the app stays interactive underneath.
func (m Model) Modal() bool {
	return m.Phase != PhaseWaiting
}

// KeyHints returns the footer hints for the current phase. Waiting steps
// use ctrl-chords so plain keys reach the app below.
func (m Model) KeyHints() []layout.KeyHint {
	if m.Phase == PhaseWaiting {
		hints := []layout.KeyHint{}
		if m.Step.Skippable {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Skip step"})
		}
		return append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "End tour"})
	}

	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if m.Step.Skippable {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Skip step"})
	}
	return append(hints,
		layout.KeyHint{Key: "S", Description: "Skip tour"},
		layout.KeyHint{Key: "r", Description: "Restart"},
	)
}

// Banner draws the one-line reminder shown while waiting on an action,
// so the app underneath stays fully usable.
func (m Model) Banner(width int) string {
	text := fmt.Sprintf("Loopy: %s", m.Step.Narrator)
	if m.Phase == PhaseBlocked {
		text = "Loopy: " + m.Message
	}
	return theme.NarratorBubble.Width(width - 2).Render(text)
}

// Render draws the overlay card centered in the given area.
func (m Model) Render(width, height int) string {
	cardWidth := min(width-8, 64)
	if cardWidth < 30 {
		cardWidth = 30
	}
	inner := cardWidth - 8 // card padding and borders

	title := theme.Title.Width(inner).Render(m.Step.Title)
	desc := theme.Subtitle.Width(inner).Render(m.Step.Description)

	mascot := renderMascot(m.Step.Mood)
	bubble := theme.NarratorBubble.Width(inner - lipgloss.Width(mascot) - 2).
		Render(m.Step.Narrator)
	narrator := lipgloss.JoinHorizontal(lipgloss.Center, mascot, " ", bubble)

	status := ""
	switch m.Phase {
	case PhaseWaiting:
		status = theme.Hint.Render("Go ahead, I'll notice when you're done.")
	case PhaseShowing:
		status = components.NewButton("Continue", true, nil).View()
	case PhaseReady:
		status = theme.Done.Render("Nice!") + " " +
			components.NewButton("Continue", true, nil).View()
	case PhaseBlocked:
		msg := m.Message
		if msg == "" {
			msg = "No rush. You can skip this one and come back later."
		}
		status = theme.Hint.Render(msg)
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("Step %d of %d", m.Index+1, m.Total),
		float64(m.Index)/float64(max(m.Total, 1)),
		false,
		inner,
	).View()

	parts := []string{title, "", narrator, ""}
	if m.Step.Description != "" {
		parts = append(parts, desc, "")
	}
	if status != "" {
		parts = append(parts, status, "")
	}
	parts = append(parts, progress)

	card := theme.TourCard.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
