package templates

import (
	"testing"
	"time"

	"github.com/studyloop/studyloop/internal/tour"
)

func TestBuiltinTemplatesRegistered(t *testing.T) {
	m := NewManager(nil)

	for _, id := range []string{
		DefaultTemplateID, ReturningTemplateID,
		AccessibilityTemplateID, ExpressTemplateID,
	} {
		tpl := m.Template(id)
		if tpl == nil {
			t.Fatalf("built-in template %q missing", id)
		}
		if len(tpl.Steps) == 0 {
			t.Errorf("template %q has no steps", id)
		}
		last := tpl.Steps[len(tpl.Steps)-1]
		if last.ID != tour.StepCompletion {
			t.Errorf("template %q does not end at completion (got %s)", id, last.ID)
		}
	}
}

func TestBuiltinStepsInheritEngineRetries(t *testing.T) {
	m := NewManager(nil)

	for _, tpl := range m.AllTemplates() {
		want := -1
		if tpl.ID == AccessibilityTemplateID {
			want = 4 // generous explicit retries, not the engine default
		}
		for _, s := range tpl.Steps {
			if s.Detection == nil {
				continue
			}
			if s.Detection.Retries != want {
				t.Errorf("%s/%s: retries = %d, want %d",
					tpl.ID, s.ID, s.Detection.Retries, want)
			}
		}
	}
}

func TestTemplatesForAudience(t *testing.T) {
	m := NewManager(nil)

	got := m.TemplatesForAudience(AudienceAccessibility)
	if len(got) != 1 || got[0].ID != AccessibilityTemplateID {
		t.Fatalf("accessibility templates = %v", got)
	}
	if len(m.TemplatesForAudience(Audience("nobody"))) != 0 {
		t.Error("unknown audience should match nothing")
	}
}

func TestRegisterTemplateRejectsDuplicate(t *testing.T) {
	m := NewManager(nil)

	err := m.RegisterTemplate(&Template{
		ID:    DefaultTemplateID,
		Name:  "clone",
		Steps: defaultSteps(),
	})
	if err == nil {
		t.Fatal("duplicate template id accepted")
	}
}

func TestRegisterVariantValidation(t *testing.T) {
	m := NewManager(nil)

	if err := m.RegisterVariant(&Variant{ID: "v1", BaseTemplate: "no_such"}); err == nil {
		t.Error("variant with unknown base accepted")
	}
	if err := m.RegisterVariant(&Variant{ID: "v1", BaseTemplate: DefaultTemplateID}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.RegisterVariant(&Variant{ID: "v1", BaseTemplate: ExpressTemplateID}); err == nil {
		t.Error("duplicate variant id accepted")
	}
}

func TestAssignVariantSticky(t *testing.T) {
	m := NewManager(nil)
	m.RegisterVariant(&Variant{ID: "a", BaseTemplate: DefaultTemplateID})
	m.RegisterVariant(&Variant{ID: "b", BaseTemplate: ExpressTemplateID})

	if err := m.AssignVariant("u1", "a"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := m.AssignVariant("u1", "a"); err != nil {
		t.Fatalf("re-assign same: %v", err)
	}
	if err := m.AssignVariant("u1", "b"); err == nil {
		t.Error("reassignment to a different variant accepted")
	}
	if got := m.UserVariant("u1"); got == nil || got.ID != "a" {
		t.Errorf("user variant = %v, want a", got)
	}
	if m.UserVariant("nobody") != nil {
		t.Error("unassigned user has a variant")
	}
}

func TestGenerateVariantStepOverride(t *testing.T) {
	m := NewManager(nil)
	long := 30 * time.Second
	m.RegisterVariant(&Variant{
		ID:           "slow-welcome",
		BaseTemplate: DefaultTemplateID,
		StepOverrides: []StepOverride{
			{Step: tour.StepWelcome, Duration: &long},
		},
	})
	m.AssignVariant("u1", "slow-welcome")

	gen := m.Generate("u1", "", nil)
	if gen == nil {
		t.Fatal("generate returned nil")
	}
	if gen.VariantID != "slow-welcome" {
		t.Errorf("variant id = %q", gen.VariantID)
	}

	base := m.Template(DefaultTemplateID)
	for i, s := range gen.Steps {
		if s.ID == tour.StepWelcome {
			if s.Duration != 30*time.Second {
				t.Errorf("welcome duration = %v, want 30s", s.Duration)
			}
			continue
		}
		if s.Duration != base.Steps[i].Duration || s.Title != base.Steps[i].Title {
			t.Errorf("non-overridden step %s diverged from base", s.ID)
		}
	}
}

func TestGenerateResolutionOrder(t *testing.T) {
	m := NewManager(nil)

	// No assignment, no explicit request: the default template.
	gen := m.Generate("u1", "", nil)
	if gen == nil || gen.TemplateID != DefaultTemplateID {
		t.Fatalf("gen = %+v, want default template", gen)
	}

	// Explicit request wins over the default.
	gen = m.Generate("u1", ExpressTemplateID, nil)
	if gen == nil || gen.TemplateID != ExpressTemplateID {
		t.Fatalf("gen = %+v, want express template", gen)
	}

	// An assigned variant's base beats the explicit request.
	m.RegisterVariant(&Variant{ID: "acc", BaseTemplate: AccessibilityTemplateID})
	m.AssignVariant("u1", "acc")
	gen = m.Generate("u1", ExpressTemplateID, nil)
	if gen == nil || gen.TemplateID != AccessibilityTemplateID {
		t.Fatalf("gen = %+v, want accessibility template", gen)
	}

	// Unknown explicit template with no assignment resolves nothing.
	if m.Generate("u2", "no_such", nil) != nil {
		t.Error("unknown template id should resolve to nil")
	}
}

func TestGenerateRemoveAndAddSteps(t *testing.T) {
	m := NewManager(nil)
	extra := tour.StepConfig{ID: tour.Step("study_groups"), Title: "Join a group", TargetTab: 2}
	m.RegisterVariant(&Variant{
		ID:           "social-push",
		BaseTemplate: DefaultTemplateID,
		RemoveSteps:  []tour.Step{tour.StepAISuggestions},
		AddSteps:     []AddedStep{{Step: extra, After: tour.StepSocialFeatures}},
	})
	m.AssignVariant("u1", "social-push")

	gen := m.Generate("u1", "", nil)
	if gen == nil {
		t.Fatal("generate returned nil")
	}

	var ids []tour.Step
	for _, s := range gen.Steps {
		ids = append(ids, s.ID)
	}
	for i, id := range ids {
		if id == tour.StepAISuggestions {
			t.Error("removed step still present")
		}
		if id == "study_groups" && ids[i-1] != tour.StepSocialFeatures {
			t.Errorf("added step after %s, want social_features", ids[i-1])
		}
	}
}

func TestGeneratePreferencesWin(t *testing.T) {
	m := NewManager(nil)
	variantTimeout := 20 * time.Second
	m.RegisterVariant(&Variant{
		ID:              "patient",
		BaseTemplate:    DefaultTemplateID,
		ConfigOverrides: &ConfigOverride{DetectionTimeout: &variantTimeout},
	})
	m.AssignVariant("u1", "patient")

	userTimeout := 45 * time.Second
	gen := m.Generate("u1", "", &Preferences{DetectionTimeout: &userTimeout})
	if gen == nil {
		t.Fatal("generate returned nil")
	}
	if gen.Config.DetectionTimeout != 45*time.Second {
		t.Errorf("detection timeout = %v, want user preference 45s", gen.Config.DetectionTimeout)
	}
}

func TestGenerateDoesNotMutateBase(t *testing.T) {
	m := NewManager(nil)
	short := time.Second
	m.RegisterVariant(&Variant{
		ID:            "mut",
		BaseTemplate:  DefaultTemplateID,
		StepOverrides: []StepOverride{{Step: tour.StepWelcome, Duration: &short}},
		RemoveSteps:   []tour.Step{tour.StepStressRelief},
	})
	m.AssignVariant("u1", "mut")
	m.Generate("u1", "", nil)

	base := m.Template(DefaultTemplateID)
	if base.Steps[0].Duration == time.Second {
		t.Error("variant override leaked into the base template")
	}
	found := false
	for _, s := range base.Steps {
		if s.ID == tour.StepStressRelief {
			found = true
		}
	}
	if !found {
		t.Error("variant removal leaked into the base template")
	}
}

func TestAutoAssignPriority(t *testing.T) {
	m := NewManager(nil)

	// Accessibility need wins even with an explicit fast pace.
	got := m.AutoAssign("u1", Characteristics{
		HasAccessibilityNeeds: true,
		IsReturningUser:       true,
		PreferredPace:         "fast",
	})
	if got != AccessibilityTemplateID {
		t.Errorf("template = %q, want accessibility", got)
	}

	if got := m.AutoAssign("u2", Characteristics{IsReturningUser: true, PreferredPace: "fast"}); got != ReturningTemplateID {
		t.Errorf("template = %q, want returning", got)
	}
	if got := m.AutoAssign("u3", Characteristics{PreferredPace: "fast"}); got != ExpressTemplateID {
		t.Errorf("template = %q, want express", got)
	}
	if got := m.AutoAssign("u4", Characteristics{}); got != DefaultTemplateID {
		t.Errorf("template = %q, want default", got)
	}
}

func TestAutoAssignStickyVariant(t *testing.T) {
	m := NewManager(nil)

	// The shipped default-brisk variant bases on the default template.
	m.AutoAssign("u1", Characteristics{})
	v := m.UserVariant("u1")
	if v == nil || v.BaseTemplate != DefaultTemplateID {
		t.Fatalf("user variant = %v, want one based on default", v)
	}

	// A second call never reassigns.
	m.AutoAssign("u1", Characteristics{HasAccessibilityNeeds: true})
	if got := m.UserVariant("u1"); got.ID != v.ID {
		t.Errorf("assignment changed: %q -> %q", v.ID, got.ID)
	}
}
