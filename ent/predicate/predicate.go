// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Reward is the predicate function for reward builders.
type Reward func(*sql.Selector)

// TourEvent is the predicate function for tourevent builders.
type TourEvent func(*sql.Selector)

// TourProgress is the predicate function for tourprogress builders.
type TourProgress func(*sql.Selector)
