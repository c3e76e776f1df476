// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/predicate"
	"github.com/studyloop/studyloop/ent/tourevent"
)

// TourEventUpdate is the builder for updating TourEvent entities.
type TourEventUpdate struct {
	config
	hooks    []Hook
	mutation *TourEventMutation
}

// Where appends a list predicates to the TourEventUpdate builder.
func (_u *TourEventUpdate) Where(ps ...predicate.TourEvent) *TourEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *TourEventUpdate) SetEventID(v string) *TourEventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *TourEventUpdate) SetNillableEventID(v *string) *TourEventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TourEventUpdate) SetUserID(v string) *TourEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TourEventUpdate) SetNillableUserID(v *string) *TourEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *TourEventUpdate) SetStep(v string) *TourEventUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *TourEventUpdate) SetNillableStep(v *string) *TourEventUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TourEventUpdate) SetAction(v string) *TourEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TourEventUpdate) SetNillableAction(v *string) *TourEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TourEventUpdate) SetDurationMs(v int64) *TourEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TourEventUpdate) SetNillableDurationMs(v *int64) *TourEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TourEventUpdate) AddDurationMs(v int64) *TourEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetInteractionCount sets the "interaction_count" field.
func (_u *TourEventUpdate) SetInteractionCount(v int) *TourEventUpdate {
	_u.mutation.ResetInteractionCount()
	_u.mutation.SetInteractionCount(v)
	return _u
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_u *TourEventUpdate) SetNillableInteractionCount(v *int) *TourEventUpdate {
	if v != nil {
		_u.SetInteractionCount(*v)
	}
	return _u
}

// AddInteractionCount adds value to the "interaction_count" field.
func (_u *TourEventUpdate) AddInteractionCount(v int) *TourEventUpdate {
	_u.mutation.AddInteractionCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TourEventUpdate) SetMetadata(v map[string]string) *TourEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TourEventUpdate) ClearMetadata() *TourEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the TourEventMutation object of the builder.
func (_u *TourEventUpdate) Mutation() *TourEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TourEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TourEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourEventUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := tourevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "TourEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := tourevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TourEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := tourevent.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "TourEvent.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := tourevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TourEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *TourEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tourevent.Table, tourevent.Columns, sqlgraph.NewFieldSpec(tourevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(tourevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tourevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(tourevent.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tourevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(tourevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(tourevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InteractionCount(); ok {
		_spec.SetField(tourevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractionCount(); ok {
		_spec.AddField(tourevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(tourevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(tourevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tourevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TourEventUpdateOne is the builder for updating a single TourEvent entity.
type TourEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TourEventMutation
}

// SetEventID sets the "event_id" field.
func (_u *TourEventUpdateOne) SetEventID(v string) *TourEventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *TourEventUpdateOne) SetNillableEventID(v *string) *TourEventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TourEventUpdateOne) SetUserID(v string) *TourEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TourEventUpdateOne) SetNillableUserID(v *string) *TourEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *TourEventUpdateOne) SetStep(v string) *TourEventUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *TourEventUpdateOne) SetNillableStep(v *string) *TourEventUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TourEventUpdateOne) SetAction(v string) *TourEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TourEventUpdateOne) SetNillableAction(v *string) *TourEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TourEventUpdateOne) SetDurationMs(v int64) *TourEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TourEventUpdateOne) SetNillableDurationMs(v *int64) *TourEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TourEventUpdateOne) AddDurationMs(v int64) *TourEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetInteractionCount sets the "interaction_count" field.
func (_u *TourEventUpdateOne) SetInteractionCount(v int) *TourEventUpdateOne {
	_u.mutation.ResetInteractionCount()
	_u.mutation.SetInteractionCount(v)
	return _u
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_u *TourEventUpdateOne) SetNillableInteractionCount(v *int) *TourEventUpdateOne {
	if v != nil {
		_u.SetInteractionCount(*v)
	}
	return _u
}

// AddInteractionCount adds value to the "interaction_count" field.
func (_u *TourEventUpdateOne) AddInteractionCount(v int) *TourEventUpdateOne {
	_u.mutation.AddInteractionCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TourEventUpdateOne) SetMetadata(v map[string]string) *TourEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TourEventUpdateOne) ClearMetadata() *TourEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the TourEventMutation object of the builder.
func (_u *TourEventUpdateOne) Mutation() *TourEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TourEventUpdate builder.
func (_u *TourEventUpdateOne) Where(ps ...predicate.TourEvent) *TourEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TourEventUpdateOne) Select(field string, fields ...string) *TourEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TourEvent entity.
func (_u *TourEventUpdateOne) Save(ctx context.Context) (*TourEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourEventUpdateOne) SaveX(ctx context.Context) *TourEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TourEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := tourevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "TourEvent.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := tourevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TourEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := tourevent.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "TourEvent.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := tourevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TourEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *TourEventUpdateOne) sqlSave(ctx context.Context) (_node *TourEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tourevent.Table, tourevent.Columns, sqlgraph.NewFieldSpec(tourevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TourEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tourevent.FieldID)
		for _, f := range fields {
			if !tourevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tourevent.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(tourevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tourevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(tourevent.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tourevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(tourevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(tourevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InteractionCount(); ok {
		_spec.SetField(tourevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractionCount(); ok {
		_spec.AddField(tourevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(tourevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(tourevent.FieldMetadata, field.TypeJSON)
	}
	_node = &TourEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tourevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
