package templates

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/tour"
)

const validPack = `{
  "templates": [
    {
      "id": "exam_prep",
      "name": "Exam crunch",
      "audience": "power_user",
      "steps": [
        {
          "id": "welcome",
          "title": "Crunch time",
          "narrator": "Let's get you set up fast.",
          "mood": "encouraging",
          "duration_ms": 4000,
          "auto_advance": true
        },
        {
          "id": "task_creation",
          "title": "Plan the week",
          "target_tab": 0,
          "skippable": true,
          "action": "create_task",
          "detection": {
            "primary_selectors": ["tasks.form"],
            "fallback_selectors": ["tasks.list.item"],
            "event_kinds": ["submit"],
            "signal": "task_created",
            "timeout_ms": 15000,
            "retries": 1
          }
        },
        {
          "id": "completion",
          "title": "Go get it",
          "auto_advance": true
        }
      ],
      "config": { "detection_timeout_ms": 15000 }
    }
  ],
  "variants": [
    {
      "id": "exam_prep_calm",
      "name": "Calmer crunch",
      "base_template": "exam_prep",
      "step_overrides": [
        { "step": "welcome", "mood": "calm", "duration_ms": 8000 }
      ]
    }
  ]
}`

func TestLoadPack(t *testing.T) {
	m := NewManager(nil)
	if err := m.LoadPack([]byte(validPack)); err != nil {
		t.Fatalf("load pack: %v", err)
	}

	tpl := m.Template("exam_prep")
	if tpl == nil {
		t.Fatal("pack template not registered")
	}
	if tpl.Config.DetectionTimeout != 15*time.Second {
		t.Errorf("config timeout = %v, want 15s", tpl.Config.DetectionTimeout)
	}

	task := tpl.Steps[1]
	if task.ID != tour.StepTaskCreation || !task.Interactive() {
		t.Fatalf("task step = %+v, want interactive task_creation", task)
	}
	if task.Detection.Timeout != 15*time.Second || task.Detection.Retries != 1 {
		t.Errorf("detection = %+v", task.Detection)
	}
	if tpl.Steps[0].TargetTab != -1 {
		t.Errorf("omitted target_tab = %d, want -1", tpl.Steps[0].TargetTab)
	}

	m.AssignVariant("u1", "exam_prep_calm")
	gen := m.Generate("u1", "", nil)
	if gen == nil {
		t.Fatal("generate returned nil")
	}
	if gen.Steps[0].Mood != tour.MoodCalm || gen.Steps[0].Duration != 8*time.Second {
		t.Errorf("override not applied: %+v", gen.Steps[0])
	}
}

func TestLoadPackRejectsSchemaViolations(t *testing.T) {
	m := NewManager(nil)

	cases := map[string]string{
		"not json":          `{"templates": [`,
		"step sans title":   `{"templates":[{"id":"x","name":"x","steps":[{"id":"welcome"}]}]}`,
		"bad mood":          `{"templates":[{"id":"x","name":"x","steps":[{"id":"welcome","title":"t","mood":"grumpy"}]}]}`,
		"unknown field":     `{"templates":[{"id":"x","name":"x","steps":[{"id":"welcome","title":"t"}],"color":"red"}]}`,
		"negative duration": `{"templates":[{"id":"x","name":"x","steps":[{"id":"welcome","title":"t","duration_ms":-5}]}]}`,
	}
	for name, raw := range cases {
		if err := m.LoadPack([]byte(raw)); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestLoadPackRejectsUnknownBase(t *testing.T) {
	m := NewManager(nil)
	raw := `{"variants":[{"id":"v","name":"v","base_template":"no_such"}]}`
	if err := m.LoadPack([]byte(raw)); err == nil {
		t.Fatal("variant with unknown base accepted")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "exam.json"), []byte(validPack), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(nil)
	if err := m.LoadDir(dir); err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if m.Template("exam_prep") == nil {
		t.Error("pack in dir not loaded")
	}

	// A missing directory is fine; packs are optional.
	if err := m.LoadDir(filepath.Join(dir, "absent")); err != nil {
		t.Errorf("missing dir: %v", err)
	}
}
