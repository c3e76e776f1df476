// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studyloop/studyloop/ent/reward"
	"github.com/studyloop/studyloop/ent/schema"
	"github.com/studyloop/studyloop/ent/tourevent"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	rewardFields := schema.Reward{}.Fields()
	_ = rewardFields
	// rewardDescRewardID is the schema descriptor for reward_id field.
	rewardDescRewardID := rewardFields[0].Descriptor()
	// reward.RewardIDValidator is a validator for the "reward_id" field. It is called by the builders before save.
	reward.RewardIDValidator = rewardDescRewardID.Validators[0].(func(string) error)
	// rewardDescStep is the schema descriptor for step field.
	rewardDescStep := rewardFields[1].Descriptor()
	// reward.StepValidator is a validator for the "step" field. It is called by the builders before save.
	reward.StepValidator = rewardDescStep.Validators[0].(func(string) error)
	// rewardDescName is the schema descriptor for name field.
	rewardDescName := rewardFields[2].Descriptor()
	// reward.NameValidator is a validator for the "name" field. It is called by the builders before save.
	reward.NameValidator = rewardDescName.Validators[0].(func(string) error)
	// rewardDescDescription is the schema descriptor for description field.
	rewardDescDescription := rewardFields[3].Descriptor()
	// reward.DefaultDescription holds the default value on creation for the description field.
	reward.DefaultDescription = rewardDescDescription.Default.(string)
	// rewardDescIcon is the schema descriptor for icon field.
	rewardDescIcon := rewardFields[4].Descriptor()
	// reward.DefaultIcon holds the default value on creation for the icon field.
	reward.DefaultIcon = rewardDescIcon.Default.(string)
	// rewardDescPoints is the schema descriptor for points field.
	rewardDescPoints := rewardFields[5].Descriptor()
	// reward.DefaultPoints holds the default value on creation for the points field.
	reward.DefaultPoints = rewardDescPoints.Default.(int)
	// rewardDescActive is the schema descriptor for active field.
	rewardDescActive := rewardFields[6].Descriptor()
	// reward.DefaultActive holds the default value on creation for the active field.
	reward.DefaultActive = rewardDescActive.Default.(bool)
	toureventMixin := schema.TourEvent{}.Mixin()
	toureventMixinFields0 := toureventMixin[0].Fields()
	_ = toureventMixinFields0
	toureventFields := schema.TourEvent{}.Fields()
	_ = toureventFields
	// toureventDescTimestamp is the schema descriptor for timestamp field.
	toureventDescTimestamp := toureventMixinFields0[1].Descriptor()
	// tourevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tourevent.DefaultTimestamp = toureventDescTimestamp.Default.(func() time.Time)
	// toureventDescEventID is the schema descriptor for event_id field.
	toureventDescEventID := toureventFields[0].Descriptor()
	// tourevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	tourevent.EventIDValidator = toureventDescEventID.Validators[0].(func(string) error)
	// toureventDescUserID is the schema descriptor for user_id field.
	toureventDescUserID := toureventFields[1].Descriptor()
	// tourevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	tourevent.UserIDValidator = toureventDescUserID.Validators[0].(func(string) error)
	// toureventDescStep is the schema descriptor for step field.
	toureventDescStep := toureventFields[2].Descriptor()
	// tourevent.StepValidator is a validator for the "step" field. It is called by the builders before save.
	tourevent.StepValidator = toureventDescStep.Validators[0].(func(string) error)
	// toureventDescAction is the schema descriptor for action field.
	toureventDescAction := toureventFields[3].Descriptor()
	// tourevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	tourevent.ActionValidator = toureventDescAction.Validators[0].(func(string) error)
	// toureventDescDurationMs is the schema descriptor for duration_ms field.
	toureventDescDurationMs := toureventFields[4].Descriptor()
	// tourevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	tourevent.DefaultDurationMs = toureventDescDurationMs.Default.(int64)
	// toureventDescInteractionCount is the schema descriptor for interaction_count field.
	toureventDescInteractionCount := toureventFields[5].Descriptor()
	// tourevent.DefaultInteractionCount holds the default value on creation for the interaction_count field.
	tourevent.DefaultInteractionCount = toureventDescInteractionCount.Default.(int)
	tourprogressFields := schema.TourProgress{}.Fields()
	_ = tourprogressFields
	// tourprogressDescUserID is the schema descriptor for user_id field.
	tourprogressDescUserID := tourprogressFields[0].Descriptor()
	// tourprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	tourprogress.UserIDValidator = tourprogressDescUserID.Validators[0].(func(string) error)
	// tourprogressDescCurrentStep is the schema descriptor for current_step field.
	tourprogressDescCurrentStep := tourprogressFields[1].Descriptor()
	// tourprogress.CurrentStepValidator is a validator for the "current_step" field. It is called by the builders before save.
	tourprogress.CurrentStepValidator = tourprogressDescCurrentStep.Validators[0].(func(string) error)
	// tourprogressDescIsCompleted is the schema descriptor for is_completed field.
	tourprogressDescIsCompleted := tourprogressFields[3].Descriptor()
	// tourprogress.DefaultIsCompleted holds the default value on creation for the is_completed field.
	tourprogress.DefaultIsCompleted = tourprogressDescIsCompleted.Default.(bool)
	// tourprogressDescIsSkipped is the schema descriptor for is_skipped field.
	tourprogressDescIsSkipped := tourprogressFields[4].Descriptor()
	// tourprogress.DefaultIsSkipped holds the default value on creation for the is_skipped field.
	tourprogress.DefaultIsSkipped = tourprogressDescIsSkipped.Default.(bool)
	// tourprogressDescStartedAt is the schema descriptor for started_at field.
	tourprogressDescStartedAt := tourprogressFields[6].Descriptor()
	// tourprogress.DefaultStartedAt holds the default value on creation for the started_at field.
	tourprogress.DefaultStartedAt = tourprogressDescStartedAt.Default.(func() time.Time)
	// tourprogressDescLastSeenAt is the schema descriptor for last_seen_at field.
	tourprogressDescLastSeenAt := tourprogressFields[7].Descriptor()
	// tourprogress.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	tourprogress.DefaultLastSeenAt = tourprogressDescLastSeenAt.Default.(func() time.Time)
	// tourprogressDescErrorCount is the schema descriptor for error_count field.
	tourprogressDescErrorCount := tourprogressFields[9].Descriptor()
	// tourprogress.DefaultErrorCount holds the default value on creation for the error_count field.
	tourprogress.DefaultErrorCount = tourprogressDescErrorCount.Default.(int)
}
