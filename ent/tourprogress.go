// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

// TourProgress is the model entity for the TourProgress schema.
type TourProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Step the user is currently on
	CurrentStep string `json:"current_step,omitempty"`
	// Ordered completed step ids, no duplicates
	CompletedSteps []string `json:"completed_steps,omitempty"`
	// IsCompleted holds the value of the "is_completed" field.
	IsCompleted bool `json:"is_completed,omitempty"`
	// IsSkipped holds the value of the "is_skipped" field.
	IsSkipped bool `json:"is_skipped,omitempty"`
	// Per-step list of completed sub-action names
	StepData map[string][]string `json:"step_data,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Errors seen since the last successful transition
	ErrorCount   int `json:"error_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TourProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tourprogress.FieldCompletedSteps, tourprogress.FieldStepData:
			values[i] = new([]byte)
		case tourprogress.FieldIsCompleted, tourprogress.FieldIsSkipped:
			values[i] = new(sql.NullBool)
		case tourprogress.FieldID, tourprogress.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case tourprogress.FieldUserID, tourprogress.FieldCurrentStep:
			values[i] = new(sql.NullString)
		case tourprogress.FieldStartedAt, tourprogress.FieldLastSeenAt, tourprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TourProgress fields.
func (_m *TourProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tourprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tourprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case tourprogress.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = value.String
			}
		case tourprogress.FieldCompletedSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedSteps); err != nil {
					return fmt.Errorf("unmarshal field completed_steps: %w", err)
				}
			}
		case tourprogress.FieldIsCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_completed", values[i])
			} else if value.Valid {
				_m.IsCompleted = value.Bool
			}
		case tourprogress.FieldIsSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_skipped", values[i])
			} else if value.Valid {
				_m.IsSkipped = value.Bool
			}
		case tourprogress.FieldStepData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepData); err != nil {
					return fmt.Errorf("unmarshal field step_data: %w", err)
				}
			}
		case tourprogress.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case tourprogress.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case tourprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case tourprogress.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TourProgress.
// This includes values selected through modifiers, order, etc.
func (_m *TourProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TourProgress.
// Note that you need to call TourProgress.Unwrap() before calling this method if this TourProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TourProgress) Update() *TourProgressUpdateOne {
	return NewTourProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TourProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TourProgress) Unwrap() *TourProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TourProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TourProgress) String() string {
	var builder strings.Builder
	builder.WriteString("TourProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(_m.CurrentStep)
	builder.WriteString(", ")
	builder.WriteString("completed_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedSteps))
	builder.WriteString(", ")
	builder.WriteString("is_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCompleted))
	builder.WriteString(", ")
	builder.WriteString("is_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSkipped))
	builder.WriteString(", ")
	builder.WriteString("step_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepData))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteByte(')')
	return builder.String()
}

// TourProgresses is a parsable slice of TourProgress.
type TourProgresses []*TourProgress
