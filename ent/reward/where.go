// Code generated by ent, DO NOT EDIT.

package reward

import (
	"entgo.io/ent/dialect/sql"
	"github.com/studyloop/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldID, id))
}

// RewardID applies equality check predicate on the "reward_id" field. It's identical to RewardIDEQ.
func RewardID(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldRewardID, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldStep, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldDescription, v))
}

// Icon applies equality check predicate on the "icon" field. It's identical to IconEQ.
func Icon(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldIcon, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldPoints, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldActive, v))
}

// RewardIDEQ applies the EQ predicate on the "reward_id" field.
func RewardIDEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldRewardID, v))
}

// RewardIDNEQ applies the NEQ predicate on the "reward_id" field.
func RewardIDNEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldRewardID, v))
}

// RewardIDIn applies the In predicate on the "reward_id" field.
func RewardIDIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldRewardID, vs...))
}

// RewardIDNotIn applies the NotIn predicate on the "reward_id" field.
func RewardIDNotIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldRewardID, vs...))
}

// RewardIDGT applies the GT predicate on the "reward_id" field.
func RewardIDGT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldRewardID, v))
}

// RewardIDGTE applies the GTE predicate on the "reward_id" field.
func RewardIDGTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldRewardID, v))
}

// RewardIDLT applies the LT predicate on the "reward_id" field.
func RewardIDLT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldRewardID, v))
}

// RewardIDLTE applies the LTE predicate on the "reward_id" field.
func RewardIDLTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldRewardID, v))
}

// RewardIDContains applies the Contains predicate on the "reward_id" field.
func RewardIDContains(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContains(FieldRewardID, v))
}

// RewardIDHasPrefix applies the HasPrefix predicate on the "reward_id" field.
func RewardIDHasPrefix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasPrefix(FieldRewardID, v))
}

// RewardIDHasSuffix applies the HasSuffix predicate on the "reward_id" field.
func RewardIDHasSuffix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasSuffix(FieldRewardID, v))
}

// RewardIDEqualFold applies the EqualFold predicate on the "reward_id" field.
func RewardIDEqualFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEqualFold(FieldRewardID, v))
}

// RewardIDContainsFold applies the ContainsFold predicate on the "reward_id" field.
func RewardIDContainsFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContainsFold(FieldRewardID, v))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldStep, v))
}

// StepContains applies the Contains predicate on the "step" field.
func StepContains(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContains(FieldStep, v))
}

// StepHasPrefix applies the HasPrefix predicate on the "step" field.
func StepHasPrefix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasPrefix(FieldStep, v))
}

// StepHasSuffix applies the HasSuffix predicate on the "step" field.
func StepHasSuffix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasSuffix(FieldStep, v))
}

// StepEqualFold applies the EqualFold predicate on the "step" field.
func StepEqualFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEqualFold(FieldStep, v))
}

// StepContainsFold applies the ContainsFold predicate on the "step" field.
func StepContainsFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContainsFold(FieldStep, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContainsFold(FieldDescription, v))
}

// IconEQ applies the EQ predicate on the "icon" field.
func IconEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldIcon, v))
}

// IconNEQ applies the NEQ predicate on the "icon" field.
func IconNEQ(v string) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldIcon, v))
}

// IconIn applies the In predicate on the "icon" field.
func IconIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldIcon, vs...))
}

// IconNotIn applies the NotIn predicate on the "icon" field.
func IconNotIn(vs ...string) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldIcon, vs...))
}

// IconGT applies the GT predicate on the "icon" field.
func IconGT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldIcon, v))
}

// IconGTE applies the GTE predicate on the "icon" field.
func IconGTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldIcon, v))
}

// IconLT applies the LT predicate on the "icon" field.
func IconLT(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldIcon, v))
}

// IconLTE applies the LTE predicate on the "icon" field.
func IconLTE(v string) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldIcon, v))
}

// IconContains applies the Contains predicate on the "icon" field.
func IconContains(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContains(FieldIcon, v))
}

// IconHasPrefix applies the HasPrefix predicate on the "icon" field.
func IconHasPrefix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasPrefix(FieldIcon, v))
}

// IconHasSuffix applies the HasSuffix predicate on the "icon" field.
func IconHasSuffix(v string) predicate.Reward {
	return predicate.Reward(sql.FieldHasSuffix(FieldIcon, v))
}

// IconEqualFold applies the EqualFold predicate on the "icon" field.
func IconEqualFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldEqualFold(FieldIcon, v))
}

// IconContainsFold applies the ContainsFold predicate on the "icon" field.
func IconContainsFold(v string) predicate.Reward {
	return predicate.Reward(sql.FieldContainsFold(FieldIcon, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.Reward {
	return predicate.Reward(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.Reward {
	return predicate.Reward(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.Reward {
	return predicate.Reward(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.Reward {
	return predicate.Reward(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.Reward {
	return predicate.Reward(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.Reward {
	return predicate.Reward(sql.FieldLTE(FieldPoints, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Reward {
	return predicate.Reward(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Reward {
	return predicate.Reward(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reward) predicate.Reward {
	return predicate.Reward(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reward) predicate.Reward {
	return predicate.Reward(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reward) predicate.Reward {
	return predicate.Reward(sql.NotPredicates(p))
}
