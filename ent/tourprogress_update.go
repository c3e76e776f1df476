// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/predicate"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

// TourProgressUpdate is the builder for updating TourProgress entities.
type TourProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TourProgressMutation
}

// Where appends a list predicates to the TourProgressUpdate builder.
func (_u *TourProgressUpdate) Where(ps ...predicate.TourProgress) *TourProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TourProgressUpdate) SetUserID(v string) *TourProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableUserID(v *string) *TourProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *TourProgressUpdate) SetCurrentStep(v string) *TourProgressUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableCurrentStep(v *string) *TourProgressUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// SetCompletedSteps sets the "completed_steps" field.
func (_u *TourProgressUpdate) SetCompletedSteps(v []string) *TourProgressUpdate {
	_u.mutation.SetCompletedSteps(v)
	return _u
}

// AppendCompletedSteps appends value to the "completed_steps" field.
func (_u *TourProgressUpdate) AppendCompletedSteps(v []string) *TourProgressUpdate {
	_u.mutation.AppendCompletedSteps(v)
	return _u
}

// ClearCompletedSteps clears the value of the "completed_steps" field.
func (_u *TourProgressUpdate) ClearCompletedSteps() *TourProgressUpdate {
	_u.mutation.ClearCompletedSteps()
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *TourProgressUpdate) SetIsCompleted(v bool) *TourProgressUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableIsCompleted(v *bool) *TourProgressUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetIsSkipped sets the "is_skipped" field.
func (_u *TourProgressUpdate) SetIsSkipped(v bool) *TourProgressUpdate {
	_u.mutation.SetIsSkipped(v)
	return _u
}

// SetNillableIsSkipped sets the "is_skipped" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableIsSkipped(v *bool) *TourProgressUpdate {
	if v != nil {
		_u.SetIsSkipped(*v)
	}
	return _u
}

// SetStepData sets the "step_data" field.
func (_u *TourProgressUpdate) SetStepData(v map[string][]string) *TourProgressUpdate {
	_u.mutation.SetStepData(v)
	return _u
}

// ClearStepData clears the value of the "step_data" field.
func (_u *TourProgressUpdate) ClearStepData() *TourProgressUpdate {
	_u.mutation.ClearStepData()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TourProgressUpdate) SetStartedAt(v time.Time) *TourProgressUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableStartedAt(v *time.Time) *TourProgressUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *TourProgressUpdate) SetLastSeenAt(v time.Time) *TourProgressUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableLastSeenAt(v *time.Time) *TourProgressUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TourProgressUpdate) SetCompletedAt(v time.Time) *TourProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableCompletedAt(v *time.Time) *TourProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TourProgressUpdate) ClearCompletedAt() *TourProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *TourProgressUpdate) SetErrorCount(v int) *TourProgressUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *TourProgressUpdate) SetNillableErrorCount(v *int) *TourProgressUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *TourProgressUpdate) AddErrorCount(v int) *TourProgressUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// Mutation returns the TourProgressMutation object of the builder.
func (_u *TourProgressUpdate) Mutation() *TourProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TourProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TourProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := tourprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TourProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := tourprogress.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "TourProgress.current_step": %w`, err)}
		}
	}
	return nil
}

func (_u *TourProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tourprogress.Table, tourprogress.Columns, sqlgraph.NewFieldSpec(tourprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tourprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(tourprogress.FieldCurrentStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedSteps(); ok {
		_spec.SetField(tourprogress.FieldCompletedSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tourprogress.FieldCompletedSteps, value)
		})
	}
	if _u.mutation.CompletedStepsCleared() {
		_spec.ClearField(tourprogress.FieldCompletedSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(tourprogress.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSkipped(); ok {
		_spec.SetField(tourprogress.FieldIsSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StepData(); ok {
		_spec.SetField(tourprogress.FieldStepData, field.TypeJSON, value)
	}
	if _u.mutation.StepDataCleared() {
		_spec.ClearField(tourprogress.FieldStepData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(tourprogress.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(tourprogress.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(tourprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(tourprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(tourprogress.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(tourprogress.FieldErrorCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tourprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TourProgressUpdateOne is the builder for updating a single TourProgress entity.
type TourProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TourProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *TourProgressUpdateOne) SetUserID(v string) *TourProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableUserID(v *string) *TourProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *TourProgressUpdateOne) SetCurrentStep(v string) *TourProgressUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableCurrentStep(v *string) *TourProgressUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// SetCompletedSteps sets the "completed_steps" field.
func (_u *TourProgressUpdateOne) SetCompletedSteps(v []string) *TourProgressUpdateOne {
	_u.mutation.SetCompletedSteps(v)
	return _u
}

// AppendCompletedSteps appends value to the "completed_steps" field.
func (_u *TourProgressUpdateOne) AppendCompletedSteps(v []string) *TourProgressUpdateOne {
	_u.mutation.AppendCompletedSteps(v)
	return _u
}

// ClearCompletedSteps clears the value of the "completed_steps" field.
func (_u *TourProgressUpdateOne) ClearCompletedSteps() *TourProgressUpdateOne {
	_u.mutation.ClearCompletedSteps()
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *TourProgressUpdateOne) SetIsCompleted(v bool) *TourProgressUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableIsCompleted(v *bool) *TourProgressUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetIsSkipped sets the "is_skipped" field.
func (_u *TourProgressUpdateOne) SetIsSkipped(v bool) *TourProgressUpdateOne {
	_u.mutation.SetIsSkipped(v)
	return _u
}

// SetNillableIsSkipped sets the "is_skipped" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableIsSkipped(v *bool) *TourProgressUpdateOne {
	if v != nil {
		_u.SetIsSkipped(*v)
	}
	return _u
}

// SetStepData sets the "step_data" field.
func (_u *TourProgressUpdateOne) SetStepData(v map[string][]string) *TourProgressUpdateOne {
	_u.mutation.SetStepData(v)
	return _u
}

// ClearStepData clears the value of the "step_data" field.
func (_u *TourProgressUpdateOne) ClearStepData() *TourProgressUpdateOne {
	_u.mutation.ClearStepData()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TourProgressUpdateOne) SetStartedAt(v time.Time) *TourProgressUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableStartedAt(v *time.Time) *TourProgressUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *TourProgressUpdateOne) SetLastSeenAt(v time.Time) *TourProgressUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableLastSeenAt(v *time.Time) *TourProgressUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TourProgressUpdateOne) SetCompletedAt(v time.Time) *TourProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *TourProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TourProgressUpdateOne) ClearCompletedAt() *TourProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *TourProgressUpdateOne) SetErrorCount(v int) *TourProgressUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *TourProgressUpdateOne) SetNillableErrorCount(v *int) *TourProgressUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *TourProgressUpdateOne) AddErrorCount(v int) *TourProgressUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// Mutation returns the TourProgressMutation object of the builder.
func (_u *TourProgressUpdateOne) Mutation() *TourProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TourProgressUpdate builder.
func (_u *TourProgressUpdateOne) Where(ps ...predicate.TourProgress) *TourProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TourProgressUpdateOne) Select(field string, fields ...string) *TourProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TourProgress entity.
func (_u *TourProgressUpdateOne) Save(ctx context.Context) (*TourProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourProgressUpdateOne) SaveX(ctx context.Context) *TourProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TourProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := tourprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TourProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := tourprogress.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "TourProgress.current_step": %w`, err)}
		}
	}
	return nil
}

func (_u *TourProgressUpdateOne) sqlSave(ctx context.Context) (_node *TourProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tourprogress.Table, tourprogress.Columns, sqlgraph.NewFieldSpec(tourprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TourProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tourprogress.FieldID)
		for _, f := range fields {
			if !tourprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tourprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tourprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(tourprogress.FieldCurrentStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedSteps(); ok {
		_spec.SetField(tourprogress.FieldCompletedSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tourprogress.FieldCompletedSteps, value)
		})
	}
	if _u.mutation.CompletedStepsCleared() {
		_spec.ClearField(tourprogress.FieldCompletedSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(tourprogress.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsSkipped(); ok {
		_spec.SetField(tourprogress.FieldIsSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StepData(); ok {
		_spec.SetField(tourprogress.FieldStepData, field.TypeJSON, value)
	}
	if _u.mutation.StepDataCleared() {
		_spec.ClearField(tourprogress.FieldStepData, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(tourprogress.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(tourprogress.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(tourprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(tourprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(tourprogress.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(tourprogress.FieldErrorCount, field.TypeInt, value)
	}
	_node = &TourProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tourprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
