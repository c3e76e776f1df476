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
	"github.com/studyloop/studyloop/ent/reward"
)

// RewardUpdate is the builder for updating Reward entities.
type RewardUpdate struct {
	config
	hooks    []Hook
	mutation *RewardMutation
}

// Where appends a list predicates to the RewardUpdate builder.
func (_u *RewardUpdate) Where(ps ...predicate.Reward) *RewardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRewardID sets the "reward_id" field.
func (_u *RewardUpdate) SetRewardID(v string) *RewardUpdate {
	_u.mutation.SetRewardID(v)
	return _u
}

// SetNillableRewardID sets the "reward_id" field if the given value is not nil.
func (_u *RewardUpdate) SetNillableRewardID(v *string) *RewardUpdate {
	if v != nil {
		_u.SetRewardID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *RewardUpdate) SetStep(v string) *RewardUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *RewardUpdate) SetNillableStep(v *string) *RewardUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RewardUpdate) SetName(v string) *RewardUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RewardUpdate) SetNillableName(v *string) *RewardUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RewardUpdate) SetDescription(v string) *RewardUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RewardUpdate) SetNillableDescription(v *string) *RewardUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *RewardUpdate) SetIcon(v string) *RewardUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *RewardUpdate) SetNillableIcon(v *string) *RewardUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *RewardUpdate) SetPoints(v int) *RewardUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *RewardUpdate) SetNillablePoints(v *int) *RewardUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *RewardUpdate) AddPoints(v int) *RewardUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *RewardUpdate) SetActive(v bool) *RewardUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RewardUpdate) SetNillableActive(v *bool) *RewardUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the RewardMutation object of the builder.
func (_u *RewardUpdate) Mutation() *RewardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardUpdate) check() error {
	if v, ok := _u.mutation.RewardID(); ok {
		if err := reward.RewardIDValidator(v); err != nil {
			return &ValidationError{Name: "reward_id", err: fmt.Errorf(`ent: validator failed for field "Reward.reward_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := reward.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "Reward.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := reward.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Reward.name": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reward.Table, reward.Columns, sqlgraph.NewFieldSpec(reward.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RewardID(); ok {
		_spec.SetField(reward.FieldRewardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(reward.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(reward.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(reward.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(reward.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(reward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(reward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(reward.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardUpdateOne is the builder for updating a single Reward entity.
type RewardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardMutation
}

// SetRewardID sets the "reward_id" field.
func (_u *RewardUpdateOne) SetRewardID(v string) *RewardUpdateOne {
	_u.mutation.SetRewardID(v)
	return _u
}

// SetNillableRewardID sets the "reward_id" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillableRewardID(v *string) *RewardUpdateOne {
	if v != nil {
		_u.SetRewardID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *RewardUpdateOne) SetStep(v string) *RewardUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillableStep(v *string) *RewardUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RewardUpdateOne) SetName(v string) *RewardUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillableName(v *string) *RewardUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RewardUpdateOne) SetDescription(v string) *RewardUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillableDescription(v *string) *RewardUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *RewardUpdateOne) SetIcon(v string) *RewardUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillableIcon(v *string) *RewardUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *RewardUpdateOne) SetPoints(v int) *RewardUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillablePoints(v *int) *RewardUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *RewardUpdateOne) AddPoints(v int) *RewardUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *RewardUpdateOne) SetActive(v bool) *RewardUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RewardUpdateOne) SetNillableActive(v *bool) *RewardUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the RewardMutation object of the builder.
func (_u *RewardUpdateOne) Mutation() *RewardMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardUpdate builder.
func (_u *RewardUpdateOne) Where(ps ...predicate.Reward) *RewardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardUpdateOne) Select(field string, fields ...string) *RewardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reward entity.
func (_u *RewardUpdateOne) Save(ctx context.Context) (*Reward, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardUpdateOne) SaveX(ctx context.Context) *Reward {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardUpdateOne) check() error {
	if v, ok := _u.mutation.RewardID(); ok {
		if err := reward.RewardIDValidator(v); err != nil {
			return &ValidationError{Name: "reward_id", err: fmt.Errorf(`ent: validator failed for field "Reward.reward_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := reward.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "Reward.step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := reward.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Reward.name": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardUpdateOne) sqlSave(ctx context.Context) (_node *Reward, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reward.Table, reward.Columns, sqlgraph.NewFieldSpec(reward.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reward.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reward.FieldID)
		for _, f := range fields {
			if !reward.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reward.FieldID {
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
	if value, ok := _u.mutation.RewardID(); ok {
		_spec.SetField(reward.FieldRewardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(reward.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(reward.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(reward.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(reward.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(reward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(reward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(reward.FieldActive, field.TypeBool, value)
	}
	_node = &Reward{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
