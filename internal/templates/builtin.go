package templates

import (
	"time"

	"github.com/studyloop/studyloop/internal/tour"
)

// Built-in template ids. The default is used whenever nothing else
// resolves.
const (
	DefaultTemplateID       = "default"
	ReturningTemplateID     = "returning"
	AccessibilityTemplateID = "accessibility"
	ExpressTemplateID       = "express"
)

func defaultSteps() []tour.StepConfig {
	return []tour.StepConfig{
		{
			ID:          tour.StepWelcome,
			Title:       "Welcome to Studyloop!",
			Description: "Your study life, one loop at a time.",
			Narrator:    "Hi! I'm Loopy. Let me show you around — it only takes a minute.",
			Mood:        tour.MoodExcited,
			Duration:    8 * time.Second,
			TargetTab:   -1,
			Skippable:   true,
			AutoAdvance: true,
		},
		{
			ID:          tour.StepNavigation,
			Title:       "Find your way around",
			Description: "Everything lives in the tabs along the top.",
			Narrator:    "Try switching tabs — tab key or click, whatever feels right.",
			Mood:        tour.MoodHappy,
			Duration:    20 * time.Second,
			TargetTab:   -1,
			Skippable:   true,
			Action:      tour.ActionChangeTab,
			Detection: &tour.DetectionConfig{
				PrimarySelectors: []string{"tabs"},
				EventKinds:       []string{"click"},
				Signal:           tour.SignalTabChanged,
				Retries:          -1,
			},
		},
		{
			ID:          tour.StepTaskCreation,
			Title:       "Capture your first task",
			Description: "Tasks are the heart of your study loop.",
			Narrator:    "Add something you need to get done this week. Anything counts!",
			Mood:        tour.MoodEncouraging,
			Duration:    45 * time.Second,
			TargetTab:   0,
			Skippable:   true,
			Action:      tour.ActionCreateTask,
			Detection: &tour.DetectionConfig{
				PrimarySelectors:  []string{"tasks.form"},
				FallbackSelectors: []string{"tasks.list.item"},
				EventKinds:        []string{"submit"},
				Signal:            tour.SignalTaskCreated,
				Retries:           -1,
			},
		},
		{
			ID:          tour.StepAISuggestions,
			Title:       "Let the assistant help",
			Description: "Stuck on planning? Ask for a suggestion.",
			Narrator:    "The assistant can break big goals into bite-size steps. Give it a try.",
			Mood:        tour.MoodHappy,
			Duration:    30 * time.Second,
			TargetTab:   1,
			Skippable:   true,
			Action:      tour.ActionRequestSuggestion,
			Detection: &tour.DetectionConfig{
				PrimarySelectors:  []string{"assistant.prompt"},
				FallbackSelectors: []string{"assistant.response"},
				EventKinds:        []string{"submit"},
				Signal:            tour.SignalSuggestionRequested,
				Retries:           -1,
			},
		},
		{
			ID:          tour.StepSocialFeatures,
			Title:       "Study together",
			Description: "See what your friends are working on.",
			Narrator:    "Studying is easier with company. Peek at the Friends tab.",
			Mood:        tour.MoodHappy,
			Duration:    20 * time.Second,
			TargetTab:   2,
			Skippable:   true,
			Action:      tour.ActionViewConnections,
			Detection: &tour.DetectionConfig{
				PrimarySelectors: []string{"friends"},
				EventKinds:       []string{"click"},
				Signal:           tour.SignalConnectionsViewed,
				Retries:          -1,
			},
		},
		{
			ID:          tour.StepStressRelief,
			Title:       "Check in with yourself",
			Description: "Log how you're feeling — it takes five seconds.",
			Narrator:    "A quick mood check keeps burnout away. How are you doing today?",
			Mood:        tour.MoodCalm,
			Duration:    25 * time.Second,
			TargetTab:   3,
			Skippable:   true,
			Action:      tour.ActionLogMood,
			Detection: &tour.DetectionConfig{
				PrimarySelectors:  []string{"wellness.log"},
				FallbackSelectors: []string{"wellness.history.entry"},
				EventKinds:        []string{"click", "submit"},
				Signal:            tour.SignalMoodLogged,
				Retries:           -1,
			},
		},
		{
			ID:          tour.StepAchievements,
			Title:       "Earn trophies",
			Description: "Streaks and milestones turn into trophies.",
			Narrator:    "Everything you finish adds up. Check your trophy shelf!",
			Mood:        tour.MoodProud,
			Duration:    15 * time.Second,
			TargetTab:   4,
			Skippable:   true,
			Action:      tour.ActionViewTrophies,
			Detection: &tour.DetectionConfig{
				PrimarySelectors: []string{"trophies"},
				EventKinds:       []string{"click"},
				Signal:           tour.SignalTrophiesViewed,
				Retries:          -1,
			},
		},
		{
			ID:          tour.StepCompletion,
			Title:       "You're all set!",
			Description: "That's the loop. Make it yours.",
			Narrator:    "Great job! I'll be around if you ever need me. Happy studying!",
			Mood:        tour.MoodProud,
			Duration:    10 * time.Second,
			TargetTab:   -1,
			AutoAdvance: true,
		},
	}
}

// builtinTemplates returns the four shipped templates. Each call builds
// fresh step slices so callers can't alias registry state.
func builtinTemplates() []*Template {
	full := func() []tour.StepConfig { return defaultSteps() }

	defaultTpl := &Template{
		ID:       DefaultTemplateID,
		Name:     "Full tour",
		Audience: AudienceNewUser,
		Steps:    full(),
		Config:   tour.DefaultConfig(),
	}

	// Returning users already know the layout; skip straight to what's new.
	returningSteps := full()
	returningSteps = removeByID(returningSteps, tour.StepNavigation)
	returningSteps = removeByID(returningSteps, tour.StepTaskCreation)
	returningTpl := &Template{
		ID:       ReturningTemplateID,
		Name:     "What's new",
		Audience: AudienceReturningUser,
		Steps:    returningSteps,
		Config:   tour.DefaultConfig(),
	}

	// Accessibility: no auto-advance, generous timeouts, extra retries.
	accessSteps := full()
	for i := range accessSteps {
		accessSteps[i].AutoAdvance = false
		accessSteps[i].Duration = 2 * accessSteps[i].Duration
		if accessSteps[i].Detection != nil {
			accessSteps[i].Detection.Timeout = 30 * time.Second
			accessSteps[i].Detection.Retries = 4
		}
	}
	accessCfg := tour.DefaultConfig()
	accessCfg.DetectionTimeout = 30 * time.Second
	accessCfg.DetectionRetries = 4
	accessTpl := &Template{
		ID:       AccessibilityTemplateID,
		Name:     "Take your time",
		Audience: AudienceAccessibility,
		Steps:    accessSteps,
		Config:   accessCfg,
	}

	// Express: the two steps that matter, for people in a hurry.
	expressSteps := full()
	for _, id := range []tour.Step{
		tour.StepAISuggestions, tour.StepSocialFeatures,
		tour.StepStressRelief, tour.StepAchievements,
	} {
		expressSteps = removeByID(expressSteps, id)
	}
	for i := range expressSteps {
		expressSteps[i].Duration = expressSteps[i].Duration / 2
	}
	expressTpl := &Template{
		ID:       ExpressTemplateID,
		Name:     "Quick start",
		Audience: AudiencePowerUser,
		Steps:    expressSteps,
		Config:   tour.DefaultConfig(),
	}

	return []*Template{defaultTpl, returningTpl, accessTpl, expressTpl}
}

// builtinVariants returns the shipped experiment variants.
func builtinVariants() []*Variant {
	shortWelcome := 5 * time.Second
	return []*Variant{
		{
			ID:           "default-brisk",
			Name:         "Brisk welcome",
			Description:  "Shorter welcome card for the full tour.",
			BaseTemplate: DefaultTemplateID,
			StepOverrides: []StepOverride{
				{Step: tour.StepWelcome, Duration: &shortWelcome},
			},
		},
	}
}

func removeByID(steps []tour.StepConfig, id tour.Step) []tour.StepConfig {
	for i, s := range steps {
		if s.ID == id {
			return append(steps[:i], steps[i+1:]...)
		}
	}
	return steps
}
