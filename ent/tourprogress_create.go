// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

// TourProgressCreate is the builder for creating a TourProgress entity.
type TourProgressCreate struct {
	config
	mutation *TourProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TourProgressCreate) SetUserID(v string) *TourProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *TourProgressCreate) SetCurrentStep(v string) *TourProgressCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetCompletedSteps sets the "completed_steps" field.
func (_c *TourProgressCreate) SetCompletedSteps(v []string) *TourProgressCreate {
	_c.mutation.SetCompletedSteps(v)
	return _c
}

// SetIsCompleted sets the "is_completed" field.
func (_c *TourProgressCreate) SetIsCompleted(v bool) *TourProgressCreate {
	_c.mutation.SetIsCompleted(v)
	return _c
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_c *TourProgressCreate) SetNillableIsCompleted(v *bool) *TourProgressCreate {
	if v != nil {
		_c.SetIsCompleted(*v)
	}
	return _c
}

// SetIsSkipped sets the "is_skipped" field.
func (_c *TourProgressCreate) SetIsSkipped(v bool) *TourProgressCreate {
	_c.mutation.SetIsSkipped(v)
	return _c
}

// SetNillableIsSkipped sets the "is_skipped" field if the given value is not nil.
func (_c *TourProgressCreate) SetNillableIsSkipped(v *bool) *TourProgressCreate {
	if v != nil {
		_c.SetIsSkipped(*v)
	}
	return _c
}

// SetStepData sets the "step_data" field.
func (_c *TourProgressCreate) SetStepData(v map[string][]string) *TourProgressCreate {
	_c.mutation.SetStepData(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TourProgressCreate) SetStartedAt(v time.Time) *TourProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TourProgressCreate) SetNillableStartedAt(v *time.Time) *TourProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *TourProgressCreate) SetLastSeenAt(v time.Time) *TourProgressCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *TourProgressCreate) SetNillableLastSeenAt(v *time.Time) *TourProgressCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TourProgressCreate) SetCompletedAt(v time.Time) *TourProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TourProgressCreate) SetNillableCompletedAt(v *time.Time) *TourProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *TourProgressCreate) SetErrorCount(v int) *TourProgressCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *TourProgressCreate) SetNillableErrorCount(v *int) *TourProgressCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// Mutation returns the TourProgressMutation object of the builder.
func (_c *TourProgressCreate) Mutation() *TourProgressMutation {
	return _c.mutation
}

// Save creates the TourProgress in the database.
func (_c *TourProgressCreate) Save(ctx context.Context) (*TourProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TourProgressCreate) SaveX(ctx context.Context) *TourProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TourProgressCreate) defaults() {
	if _, ok := _c.mutation.IsCompleted(); !ok {
		v := tourprogress.DefaultIsCompleted
		_c.mutation.SetIsCompleted(v)
	}
	if _, ok := _c.mutation.IsSkipped(); !ok {
		v := tourprogress.DefaultIsSkipped
		_c.mutation.SetIsSkipped(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := tourprogress.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := tourprogress.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := tourprogress.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TourProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TourProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := tourprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TourProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "TourProgress.current_step"`)}
	}
	if v, ok := _c.mutation.CurrentStep(); ok {
		if err := tourprogress.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "TourProgress.current_step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		return &ValidationError{Name: "is_completed", err: errors.New(`ent: missing required field "TourProgress.is_completed"`)}
	}
	if _, ok := _c.mutation.IsSkipped(); !ok {
		return &ValidationError{Name: "is_skipped", err: errors.New(`ent: missing required field "TourProgress.is_skipped"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TourProgress.started_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "TourProgress.last_seen_at"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "TourProgress.error_count"`)}
	}
	return nil
}

func (_c *TourProgressCreate) sqlSave(ctx context.Context) (*TourProgress, error) {
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

func (_c *TourProgressCreate) createSpec() (*TourProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TourProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tourprogress.Table, sqlgraph.NewFieldSpec(tourprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tourprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(tourprogress.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.CompletedSteps(); ok {
		_spec.SetField(tourprogress.FieldCompletedSteps, field.TypeJSON, value)
		_node.CompletedSteps = value
	}
	if value, ok := _c.mutation.IsCompleted(); ok {
		_spec.SetField(tourprogress.FieldIsCompleted, field.TypeBool, value)
		_node.IsCompleted = value
	}
	if value, ok := _c.mutation.IsSkipped(); ok {
		_spec.SetField(tourprogress.FieldIsSkipped, field.TypeBool, value)
		_node.IsSkipped = value
	}
	if value, ok := _c.mutation.StepData(); ok {
		_spec.SetField(tourprogress.FieldStepData, field.TypeJSON, value)
		_node.StepData = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(tourprogress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(tourprogress.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(tourprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(tourprogress.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	return _node, _spec
}

// TourProgressCreateBulk is the builder for creating many TourProgress entities in bulk.
type TourProgressCreateBulk struct {
	config
	err      error
	builders []*TourProgressCreate
}

// Save creates the TourProgress entities in the database.
func (_c *TourProgressCreateBulk) Save(ctx context.Context) ([]*TourProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TourProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TourProgressMutation)
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
func (_c *TourProgressCreateBulk) SaveX(ctx context.Context) []*TourProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
