// Code generated by ent, DO NOT EDIT.

package reward

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reward type in the database.
	Label = "reward"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRewardID holds the string denoting the reward_id field in the database.
	FieldRewardID = "reward_id"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIcon holds the string denoting the icon field in the database.
	FieldIcon = "icon"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// Table holds the table name of the reward in the database.
	Table = "rewards"
)

// Columns holds all SQL columns for reward fields.
var Columns = []string{
	FieldID,
	FieldRewardID,
	FieldStep,
	FieldName,
	FieldDescription,
	FieldIcon,
	FieldPoints,
	FieldActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RewardIDValidator is a validator for the "reward_id" field. It is called by the builders before save.
	RewardIDValidator func(string) error
	// StepValidator is a validator for the "step" field. It is called by the builders before save.
	StepValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultIcon holds the default value on creation for the "icon" field.
	DefaultIcon string
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
)

// OrderOption defines the ordering options for the Reward queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRewardID orders the results by the reward_id field.
func ByRewardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewardID, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIcon orders the results by the icon field.
func ByIcon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcon, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}
