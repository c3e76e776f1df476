// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyloop/studyloop/ent/reward"
)

// RewardCreate is the builder for creating a Reward entity.
type RewardCreate struct {
	config
	mutation *RewardMutation
	hooks    []Hook
}

// SetRewardID sets the "reward_id" field.
func (_c *RewardCreate) SetRewardID(v string) *RewardCreate {
	_c.mutation.SetRewardID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *RewardCreate) SetStep(v string) *RewardCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RewardCreate) SetName(v string) *RewardCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RewardCreate) SetDescription(v string) *RewardCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RewardCreate) SetNillableDescription(v *string) *RewardCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIcon sets the "icon" field.
func (_c *RewardCreate) SetIcon(v string) *RewardCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *RewardCreate) SetNillableIcon(v *string) *RewardCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *RewardCreate) SetPoints(v int) *RewardCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *RewardCreate) SetNillablePoints(v *int) *RewardCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *RewardCreate) SetActive(v bool) *RewardCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *RewardCreate) SetNillableActive(v *bool) *RewardCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the RewardMutation object of the builder.
func (_c *RewardCreate) Mutation() *RewardMutation {
	return _c.mutation
}

// Save creates the Reward in the database.
func (_c *RewardCreate) Save(ctx context.Context) (*Reward, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardCreate) SaveX(ctx context.Context) *Reward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := reward.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Icon(); !ok {
		v := reward.DefaultIcon
		_c.mutation.SetIcon(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := reward.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := reward.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardCreate) check() error {
	if _, ok := _c.mutation.RewardID(); !ok {
		return &ValidationError{Name: "reward_id", err: errors.New(`ent: missing required field "Reward.reward_id"`)}
	}
	if v, ok := _c.mutation.RewardID(); ok {
		if err := reward.RewardIDValidator(v); err != nil {
			return &ValidationError{Name: "reward_id", err: fmt.Errorf(`ent: validator failed for field "Reward.reward_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "Reward.step"`)}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := reward.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "Reward.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Reward.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := reward.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Reward.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Reward.description"`)}
	}
	if _, ok := _c.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "Reward.icon"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "Reward.points"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Reward.active"`)}
	}
	return nil
}

func (_c *RewardCreate) sqlSave(ctx context.Context) (*Reward, error) {
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

func (_c *RewardCreate) createSpec() (*Reward, *sqlgraph.CreateSpec) {
	var (
		_node = &Reward{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reward.Table, sqlgraph.NewFieldSpec(reward.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RewardID(); ok {
		_spec.SetField(reward.FieldRewardID, field.TypeString, value)
		_node.RewardID = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(reward.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(reward.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(reward.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(reward.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(reward.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(reward.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// RewardCreateBulk is the builder for creating many Reward entities in bulk.
type RewardCreateBulk struct {
	config
	err      error
	builders []*RewardCreate
}

// Save creates the Reward entities in the database.
func (_c *RewardCreateBulk) Save(ctx context.Context) ([]*Reward, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reward, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardMutation)
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
func (_c *RewardCreateBulk) SaveX(ctx context.Context) []*Reward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
