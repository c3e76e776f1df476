package tasks

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyloop/studyloop/internal/bus"
	"github.com/studyloop/studyloop/internal/detect"
	"github.com/studyloop/studyloop/internal/tour"
)

func TestAddTask(t *testing.T) {
	b := bus.New()
	created := 0
	b.Subscribe(tour.SignalTaskCreated, func(bus.Signal) { created++ })

	m := New(detect.NewRuntime(b), b)
	m.input.Model.SetValue("Read chapter 4")

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	if done, total := m.Stats(); done != 0 || total != 1 {
		t.Errorf("Stats = (%d, %d), want (0, 1)", done, total)
	}
	if created != 1 {
		t.Errorf("task_created signals = %d, want 1", created)
	}
	if m.input.Value() != "" {
		t.Error("input not cleared after add")
	}
}

func TestAddTask_EmptyInputIgnored(t *testing.T) {
	b := bus.New()
	created := 0
	b.Subscribe(tour.SignalTaskCreated, func(bus.Signal) { created++ })

	m := New(detect.NewRuntime(b), b)
	m.input.Model.SetValue("   ")

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	if _, total := m.Stats(); total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if created != 0 {
		t.Error("empty input should not announce a task")
	}
}

func TestToggleDone(t *testing.T) {
	m := New(nil, nil)
	m.tasks = []Task{{Title: "Revise notes"}}

	next, _ := m.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	m = next.(Model)

	if done, _ := m.Stats(); done != 1 {
		t.Errorf("done = %d after toggle, want 1", done)
	}
}

func TestView(t *testing.T) {
	m := New(nil, nil)
	view := m.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if !strings.Contains(view, "Nothing here yet") {
		t.Error("empty state hint missing")
	}

	m.tasks = []Task{{Title: "Revise notes"}}
	if !strings.Contains(m.View(80, 24), "Revise notes") {
		t.Error("task title missing from view")
	}
}
