package templates

import (
	"time"

	"github.com/studyloop/studyloop/internal/tour"
)

// Variant is a named modification of a base template, used for rollout
// experiments and audience tuning.
type Variant struct {
	ID           string
	Name         string
	Description  string
	BaseTemplate string

	ConfigOverrides *ConfigOverride
	StepOverrides   []StepOverride
	AddSteps        []AddedStep
	RemoveSteps     []tour.Step
}

// ConfigOverride carries optional engine-config changes. Nil fields leave
// the base value untouched.
type ConfigOverride struct {
	DetectionTimeout       *time.Duration
	DetectionRetries       *int
	FetchAttempts          *int
	AnalyticsBatchSize     *int
	AnalyticsFlushInterval *time.Duration
}

// StepOverride changes individual fields of one step, matched by id.
// Steps the variant doesn't name pass through unchanged.
type StepOverride struct {
	Step tour.Step

	Title       *string
	Description *string
	Narrator    *string
	Mood        *tour.Mood
	Duration    *time.Duration
	TargetTab   *int
	Skippable   *bool
	AutoAdvance *bool
}

// AddedStep inserts a new step after an existing one; a zero After
// prepends it.
type AddedStep struct {
	Step  tour.StepConfig
	After tour.Step
}

// applyVariant layers the variant onto gen in fixed order: config, step
// field overrides, removals, additions.
func applyVariant(gen *Generated, v *Variant) {
	if v.ConfigOverrides != nil {
		applyConfigOverride(&gen.Config, v.ConfigOverrides)
	}

	for _, ov := range v.StepOverrides {
		for i := range gen.Steps {
			if gen.Steps[i].ID != ov.Step {
				continue
			}
			applyStepOverride(&gen.Steps[i], ov)
			break
		}
	}

	for _, rm := range v.RemoveSteps {
		for i, s := range gen.Steps {
			if s.ID == rm {
				gen.Steps = append(gen.Steps[:i], gen.Steps[i+1:]...)
				break
			}
		}
	}

	for _, add := range v.AddSteps {
		gen.Steps = insertStep(gen.Steps, add)
	}
}

func applyConfigOverride(cfg *tour.Config, ov *ConfigOverride) {
	if ov.DetectionTimeout != nil {
		cfg.DetectionTimeout = *ov.DetectionTimeout
	}
	if ov.DetectionRetries != nil {
		cfg.DetectionRetries = *ov.DetectionRetries
	}
	if ov.FetchAttempts != nil {
		cfg.FetchAttempts = *ov.FetchAttempts
	}
	if ov.AnalyticsBatchSize != nil {
		cfg.AnalyticsBatchSize = *ov.AnalyticsBatchSize
	}
	if ov.AnalyticsFlushInterval != nil {
		cfg.AnalyticsFlushInterval = *ov.AnalyticsFlushInterval
	}
}

func applyStepOverride(s *tour.StepConfig, ov StepOverride) {
	if ov.Title != nil {
		s.Title = *ov.Title
	}
	if ov.Description != nil {
		s.Description = *ov.Description
	}
	if ov.Narrator != nil {
		s.Narrator = *ov.Narrator
	}
	if ov.Mood != nil {
		s.Mood = *ov.Mood
	}
	if ov.Duration != nil {
		s.Duration = *ov.Duration
	}
	if ov.TargetTab != nil {
		s.TargetTab = *ov.TargetTab
	}
	if ov.Skippable != nil {
		s.Skippable = *ov.Skippable
	}
	if ov.AutoAdvance != nil {
		s.AutoAdvance = *ov.AutoAdvance
	}
}

func insertStep(steps []tour.StepConfig, add AddedStep) []tour.StepConfig {
	if add.After == "" {
		return append([]tour.StepConfig{add.Step}, steps...)
	}
	for i, s := range steps {
		if s.ID == add.After {
			out := make([]tour.StepConfig, 0, len(steps)+1)
			out = append(out, steps[:i+1]...)
			out = append(out, add.Step)
			out = append(out, steps[i+1:]...)
			return out
		}
	}
	// Unknown anchor appends at the end rather than dropping the step.
	return append(steps, add.Step)
}
