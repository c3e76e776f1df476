package guide

import (
	"strings"
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/tour"
)

func passiveStep() tour.StepConfig {
	return tour.StepConfig{
		ID:          tour.StepWelcome,
		Title:       "Welcome to Studyloop",
		Narrator:    "Hi! I'm Loopy.",
		Mood:        tour.MoodHappy,
		Duration:    10 * time.Second,
		TargetTab:   -1,
		Skippable:   true,
		AutoAdvance: true,
	}
}

func interactiveStep() tour.StepConfig {
	return tour.StepConfig{
		ID:        tour.StepTaskCreation,
		Title:     "Capture your first task",
		Narrator:  "Type something and press Enter.",
		Mood:      tour.MoodEncouraging,
		TargetTab: 0,
		Skippable: true,
		Action:    tour.ActionCreateTask,
		Detection: &tour.DetectionConfig{
			PrimarySelectors: []string{"tasks.form"},
			EventKinds:       []string{"submit"},
		},
	}
}

func TestSetStep_Phases(t *testing.T) {
	var m Model

	m.SetStep(passiveStep(), 0, 8)
	if m.Phase != PhaseShowing {
		t.Errorf("passive step phase = %v, want PhaseShowing", m.Phase)
	}

	m.SetStep(interactiveStep(), 2, 8)
	if m.Phase != PhaseWaiting {
		t.Errorf("interactive step phase = %v, want PhaseWaiting", m.Phase)
	}
}

func TestSetStep_ClearsMessage(t *testing.T) {
	var m Model
	m.SetStep(interactiveStep(), 2, 8)
	m.MarkBlocked("stuck")

	m.SetStep(passiveStep(), 3, 8)
	if m.Message != "" {
		t.Errorf("Message = %q, want empty after SetStep", m.Message)
	}
}

func TestMarkReadyAndBlocked(t *testing.T) {
	var m Model
	m.SetStep(interactiveStep(), 2, 8)

	m.MarkReady()
	if m.Phase != PhaseReady {
		t.Errorf("Phase = %v, want PhaseReady", m.Phase)
	}

	m.MarkBlocked("that didn't register")
	if m.Phase != PhaseBlocked {
		t.Errorf("Phase = %v, want PhaseBlocked", m.Phase)
	}
	if m.Message != "that didn't register" {
		t.Errorf("Message = %q", m.Message)
	}
}

func TestModal(t *testing.T) {
	var m Model
	m.SetStep(interactiveStep(), 2, 8)
	if m.Modal() {
		t.Error("waiting overlay should not be modal")
	}

	m.MarkReady()
	if !m.Modal() {
		t.Error("ready overlay should be modal")
	}

	m.SetStep(passiveStep(), 0, 8)
	if !m.Modal() {
		t.Error("showing overlay should be modal")
	}
}

func TestKeyHints_PerPhase(t *testing.T) {
	var m Model

	m.SetStep(interactiveStep(), 2, 8)
	for _, h := range m.KeyHints() {
		if !strings.HasPrefix(h.Key, "Ctrl+") {
			t.Errorf("waiting hint %q is not a ctrl chord", h.Key)
		}
	}

	m.MarkReady()
	hints := m.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Enter" {
		t.Errorf("modal hints = %v, want Enter first", hints)
	}
}

func TestBanner(t *testing.T) {
	var m Model
	m.SetStep(interactiveStep(), 2, 8)

	banner := m.Banner(80)
	if !strings.Contains(banner, "Type something") {
		t.Errorf("banner missing narrator text: %q", banner)
	}

	m.MarkBlocked("no rush, you can skip this one")
	banner = m.Banner(80)
	if !strings.Contains(banner, "no rush") {
		t.Errorf("blocked banner missing message: %q", banner)
	}
}

func TestRender(t *testing.T) {
	var m Model
	m.SetStep(passiveStep(), 0, 8)

	out := m.Render(80, 24)
	if out == "" {
		t.Fatal("expected non-empty overlay")
	}
	if !strings.Contains(out, "Welcome to Studyloop") {
		t.Error("overlay missing step title")
	}
	if !strings.Contains(out, "Step 1 of 8") {
		t.Error("overlay missing progress line")
	}
}
