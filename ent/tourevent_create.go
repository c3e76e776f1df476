// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/tourevent"
)

// TourEventCreate is the builder for creating a TourEvent entity.
type TourEventCreate struct {
	config
	mutation *TourEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TourEventCreate) SetSequence(v int64) *TourEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TourEventCreate) SetTimestamp(v time.Time) *TourEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TourEventCreate) SetNillableTimestamp(v *time.Time) *TourEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *TourEventCreate) SetEventID(v string) *TourEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TourEventCreate) SetUserID(v string) *TourEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *TourEventCreate) SetStep(v string) *TourEventCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *TourEventCreate) SetAction(v string) *TourEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TourEventCreate) SetDurationMs(v int64) *TourEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TourEventCreate) SetNillableDurationMs(v *int64) *TourEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetInteractionCount sets the "interaction_count" field.
func (_c *TourEventCreate) SetInteractionCount(v int) *TourEventCreate {
	_c.mutation.SetInteractionCount(v)
	return _c
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_c *TourEventCreate) SetNillableInteractionCount(v *int) *TourEventCreate {
	if v != nil {
		_c.SetInteractionCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *TourEventCreate) SetMetadata(v map[string]string) *TourEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the TourEventMutation object of the builder.
func (_c *TourEventCreate) Mutation() *TourEventMutation {
	return _c.mutation
}

// Save creates the TourEvent in the database.
func (_c *TourEventCreate) Save(ctx context.Context) (*TourEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TourEventCreate) SaveX(ctx context.Context) *TourEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TourEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tourevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := tourevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.InteractionCount(); !ok {
		v := tourevent.DefaultInteractionCount
		_c.mutation.SetInteractionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TourEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TourEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TourEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "TourEvent.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := tourevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "TourEvent.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TourEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := tourevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TourEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "TourEvent.step"`)}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := tourevent.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "TourEvent.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "TourEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := tourevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TourEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TourEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.InteractionCount(); !ok {
		return &ValidationError{Name: "interaction_count", err: errors.New(`ent: missing required field "TourEvent.interaction_count"`)}
	}
	return nil
}

func (_c *TourEventCreate) sqlSave(ctx context.Context) (*TourEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TourEventCreate) createSpec() (*TourEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TourEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tourevent.Table, sqlgraph.NewFieldSpec(tourevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tourevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tourevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(tourevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tourevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(tourevent.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(tourevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(tourevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.InteractionCount(); ok {
		_spec.SetField(tourevent.FieldInteractionCount, field.TypeInt, value)
		_node.InteractionCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(tourevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// TourEventCreateBulk is the builder for creating many TourEvent entities in bulk.
type TourEventCreateBulk struct {
	config
	err      error
	builders []*TourEventCreate
}

// Save creates the TourEvent entities in the database.
func (_c *TourEventCreateBulk) Save(ctx context.Context) ([]*TourEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TourEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TourEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TourEventCreateBulk) SaveX(ctx context.Context) []*TourEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
