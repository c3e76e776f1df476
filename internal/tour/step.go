// Package tour implements the onboarding state machine: the step sequencer
// of record, its durable progress aggregate, and analytics batching.
package tour

import "time"

// Step identifies one stage of the guided tour. Steps are ordered by the
// resolved template; StepCompletion is always the terminal state.
type Step string

// Well-known steps of the built-in templates.
const (
	StepWelcome        Step = "welcome"
	StepNavigation     Step = "navigation"
	StepTaskCreation   Step = "task_creation"
	StepAISuggestions  Step = "ai_suggestions"
	StepSocialFeatures Step = "social_features"
	StepStressRelief   Step = "stress_relief"
	StepAchievements   Step = "achievements"
	StepCompletion     Step = "completion"
)

// Action names a user behavior an interactive step waits for.
type Action string

const (
	ActionChangeTab         Action = "change_tab"
	ActionCreateTask        Action = "create_task"
	ActionRequestSuggestion Action = "request_suggestion"
	ActionViewConnections   Action = "view_connections"
	ActionLogMood           Action = "log_mood"
	ActionViewTrophies      Action = "view_trophies"
)

// Mood selects the narrator animation accompanying a step.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodExcited     Mood = "excited"
	MoodEncouraging Mood = "encouraging"
	MoodCalm        Mood = "calm"
	MoodProud       Mood = "proud"
)

// Cross-component signal names carried on the bus.
const (
	SignalResume              = "tour.resume"         // re-display the tour overlay
	SignalStepBlocked         = "tour.step_blocked"   // detection gave up; offer a way forward
	SignalRewardGranted       = "tour.reward_granted" // a step completion earned a reward
	SignalTabChanged          = "tab_changed"
	SignalTaskCreated         = "task_created"
	SignalSuggestionRequested = "suggestion_requested"
	SignalConnectionsViewed   = "connections_viewed"
	SignalMoodLogged          = "mood_logged"
	SignalTrophiesViewed      = "trophies_viewed"
)

// DetectionConfig describes how to observe the environment for a step's
// required action.
type DetectionConfig struct {
	// PrimarySelectors are logical references to the UI regions whose
	// events confirm the action.
	PrimarySelectors []string

	// FallbackSelectors, when set, enable the polling safety net.
	FallbackSelectors []string

	// EventKinds are the UI event kinds to listen for (click, submit, ...).
	EventKinds []string

	// Signal is an optional cross-component signal confirming the action.
	Signal string

	// Timeout bounds one detection attempt. Zero means the engine default.
	Timeout time.Duration

	// Retries is the number of re-arms after a timeout before giving up.
	// Negative means the engine default.
	Retries int

	// RequiresInteraction marks actions that need direct user input and
	// can never be satisfied by passive observation alone.
	RequiresInteraction bool
}

// StepConfig is the static, immutable definition of one tour step.
type StepConfig struct {
	ID          Step
	Title       string
	Description string

	// Narrator is the mascot's message bubble text.
	Narrator string
	Mood     Mood

	// Duration is how long the step is displayed before auto-advance
	// (auto-advancing steps) or as a pacing hint (interactive steps).
	Duration time.Duration

	// TargetTab is the tab index the step points at, or -1 for none.
	TargetTab int

	Skippable   bool
	AutoAdvance bool

	// Action and Detection are set for interactive steps only.
	Action    Action
	Detection *DetectionConfig
}

// Interactive reports whether the step blocks on a detected user action.
func (c StepConfig) Interactive() bool {
	return c.Detection != nil && c.Action != ""
}

// EventAction is the analytics classification of a tour event.
type EventAction string

const (
	EventStarted   EventAction = "started"
	EventCompleted EventAction = "completed"
	EventSkipped   EventAction = "skipped"
	EventError     EventAction = "error"
	EventRetry     EventAction = "retry"
	EventTimeout   EventAction = "timeout"
)
