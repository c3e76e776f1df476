// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyloop/studyloop/ent/predicate"
	"github.com/studyloop/studyloop/ent/reward"
	"github.com/studyloop/studyloop/ent/tourevent"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeReward       = "Reward"
	TypeTourEvent    = "TourEvent"
	TypeTourProgress = "TourProgress"
)

// RewardMutation represents an operation that mutates the Reward nodes in the graph.
type RewardMutation struct {
	config
	op            Op
	typ           string
	id            *int
	reward_id     *string
	step          *string
	name          *string
	description   *string
	icon          *string
	points        *int
	addpoints     *int
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reward, error)
	predicates    []predicate.Reward
}

var _ ent.Mutation = (*RewardMutation)(nil)

// rewardOption allows management of the mutation configuration using functional options.
type rewardOption func(*RewardMutation)

// newRewardMutation creates new mutation for the Reward entity.
func newRewardMutation(c config, op Op, opts ...rewardOption) *RewardMutation {
	m := &RewardMutation{
		config:        c,
		op:            op,
		typ:           TypeReward,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRewardID sets the ID field of the mutation.
func withRewardID(id int) rewardOption {
	return func(m *RewardMutation) {
		var (
			err   error
			once  sync.Once
			value *Reward
		)
		m.oldValue = func(ctx context.Context) (*Reward, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reward.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReward sets the old Reward of the mutation.
func withReward(node *Reward) rewardOption {
	return func(m *RewardMutation) {
		m.oldValue = func(context.Context) (*Reward, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RewardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RewardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RewardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RewardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reward.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRewardID sets the "reward_id" field.
func (m *RewardMutation) SetRewardID(s string) {
	m.reward_id = &s
}

// RewardID returns the value of the "reward_id" field in the mutation.
func (m *RewardMutation) RewardID() (r string, exists bool) {
	v := m.reward_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRewardID returns the old "reward_id" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldRewardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRewardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRewardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRewardID: %w", err)
	}
	return oldValue.RewardID, nil
}

// ResetRewardID resets all changes to the "reward_id" field.
func (m *RewardMutation) ResetRewardID() {
	m.reward_id = nil
}

// SetStep sets the "step" field.
func (m *RewardMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *RewardMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *RewardMutation) ResetStep() {
	m.step = nil
}

// SetName sets the "name" field.
func (m *RewardMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RewardMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RewardMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RewardMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RewardMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RewardMutation) ResetDescription() {
	m.description = nil
}

// SetIcon sets the "icon" field.
func (m *RewardMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *RewardMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldIcon(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ResetIcon resets all changes to the "icon" field.
func (m *RewardMutation) ResetIcon() {
	m.icon = nil
}

// SetPoints sets the "points" field.
func (m *RewardMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *RewardMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *RewardMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *RewardMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *RewardMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetActive sets the "active" field.
func (m *RewardMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *RewardMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Reward entity.
// If the Reward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *RewardMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the RewardMutation builder.
func (m *RewardMutation) Where(ps ...predicate.Reward) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RewardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RewardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reward, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RewardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RewardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reward).
func (m *RewardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RewardMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.reward_id != nil {
		fields = append(fields, reward.FieldRewardID)
	}
	if m.step != nil {
		fields = append(fields, reward.FieldStep)
	}
	if m.name != nil {
		fields = append(fields, reward.FieldName)
	}
	if m.description != nil {
		fields = append(fields, reward.FieldDescription)
	}
	if m.icon != nil {
		fields = append(fields, reward.FieldIcon)
	}
	if m.points != nil {
		fields = append(fields, reward.FieldPoints)
	}
	if m.active != nil {
		fields = append(fields, reward.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RewardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reward.FieldRewardID:
		return m.RewardID()
	case reward.FieldStep:
		return m.Step()
	case reward.FieldName:
		return m.Name()
	case reward.FieldDescription:
		return m.Description()
	case reward.FieldIcon:
		return m.Icon()
	case reward.FieldPoints:
		return m.Points()
	case reward.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RewardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reward.FieldRewardID:
		return m.OldRewardID(ctx)
	case reward.FieldStep:
		return m.OldStep(ctx)
	case reward.FieldName:
		return m.OldName(ctx)
	case reward.FieldDescription:
		return m.OldDescription(ctx)
	case reward.FieldIcon:
		return m.OldIcon(ctx)
	case reward.FieldPoints:
		return m.OldPoints(ctx)
	case reward.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Reward field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RewardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reward.FieldRewardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRewardID(v)
		return nil
	case reward.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case reward.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case reward.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case reward.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case reward.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case reward.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Reward field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RewardMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, reward.FieldPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RewardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reward.FieldPoints:
		return m.AddedPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RewardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reward.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	}
	return fmt.Errorf("unknown Reward numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RewardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RewardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RewardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Reward nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RewardMutation) ResetField(name string) error {
	switch name {
	case reward.FieldRewardID:
		m.ResetRewardID()
		return nil
	case reward.FieldStep:
		m.ResetStep()
		return nil
	case reward.FieldName:
		m.ResetName()
		return nil
	case reward.FieldDescription:
		m.ResetDescription()
		return nil
	case reward.FieldIcon:
		m.ResetIcon()
		return nil
	case reward.FieldPoints:
		m.ResetPoints()
		return nil
	case reward.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Reward field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RewardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RewardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RewardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RewardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RewardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RewardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RewardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reward unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RewardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reward edge %s", name)
}

// TourEventMutation represents an operation that mutates the TourEvent nodes in the graph.
type TourEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	event_id             *string
	user_id              *string
	step                 *string
	action               *string
	duration_ms          *int64
	addduration_ms       *int64
	interaction_count    *int
	addinteraction_count *int
	metadata             *map[string]string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TourEvent, error)
	predicates           []predicate.TourEvent
}

var _ ent.Mutation = (*TourEventMutation)(nil)

// toureventOption allows management of the mutation configuration using functional options.
type toureventOption func(*TourEventMutation)

// newTourEventMutation creates new mutation for the TourEvent entity.
func newTourEventMutation(c config, op Op, opts ...toureventOption) *TourEventMutation {
	m := &TourEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTourEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTourEventID sets the ID field of the mutation.
func withTourEventID(id int) toureventOption {
	return func(m *TourEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TourEvent
		)
		m.oldValue = func(ctx context.Context) (*TourEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TourEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTourEvent sets the old TourEvent of the mutation.
func withTourEvent(node *TourEvent) toureventOption {
	return func(m *TourEventMutation) {
		m.oldValue = func(context.Context) (*TourEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TourEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TourEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TourEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TourEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TourEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TourEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TourEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TourEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TourEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TourEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TourEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TourEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TourEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventID sets the "event_id" field.
func (m *TourEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *TourEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *TourEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetUserID sets the "user_id" field.
func (m *TourEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TourEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TourEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetStep sets the "step" field.
func (m *TourEventMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *TourEventMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *TourEventMutation) ResetStep() {
	m.step = nil
}

// SetAction sets the "action" field.
func (m *TourEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *TourEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *TourEventMutation) ResetAction() {
	m.action = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *TourEventMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TourEventMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TourEventMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TourEventMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TourEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetInteractionCount sets the "interaction_count" field.
func (m *TourEventMutation) SetInteractionCount(i int) {
	m.interaction_count = &i
	m.addinteraction_count = nil
}

// InteractionCount returns the value of the "interaction_count" field in the mutation.
func (m *TourEventMutation) InteractionCount() (r int, exists bool) {
	v := m.interaction_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionCount returns the old "interaction_count" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldInteractionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionCount: %w", err)
	}
	return oldValue.InteractionCount, nil
}

// AddInteractionCount adds i to the "interaction_count" field.
func (m *TourEventMutation) AddInteractionCount(i int) {
	if m.addinteraction_count != nil {
		*m.addinteraction_count += i
	} else {
		m.addinteraction_count = &i
	}
}

// AddedInteractionCount returns the value that was added to the "interaction_count" field in this mutation.
func (m *TourEventMutation) AddedInteractionCount() (r int, exists bool) {
	v := m.addinteraction_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInteractionCount resets all changes to the "interaction_count" field.
func (m *TourEventMutation) ResetInteractionCount() {
	m.interaction_count = nil
	m.addinteraction_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *TourEventMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TourEventMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the TourEvent entity.
// If the TourEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourEventMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TourEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[tourevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TourEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[tourevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TourEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, tourevent.FieldMetadata)
}

// Where appends a list predicates to the TourEventMutation builder.
func (m *TourEventMutation) Where(ps ...predicate.TourEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TourEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TourEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TourEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TourEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TourEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TourEvent).
func (m *TourEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TourEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, tourevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, tourevent.FieldTimestamp)
	}
	if m.event_id != nil {
		fields = append(fields, tourevent.FieldEventID)
	}
	if m.user_id != nil {
		fields = append(fields, tourevent.FieldUserID)
	}
	if m.step != nil {
		fields = append(fields, tourevent.FieldStep)
	}
	if m.action != nil {
		fields = append(fields, tourevent.FieldAction)
	}
	if m.duration_ms != nil {
		fields = append(fields, tourevent.FieldDurationMs)
	}
	if m.interaction_count != nil {
		fields = append(fields, tourevent.FieldInteractionCount)
	}
	if m.metadata != nil {
		fields = append(fields, tourevent.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TourEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tourevent.FieldSequence:
		return m.Sequence()
	case tourevent.FieldTimestamp:
		return m.Timestamp()
	case tourevent.FieldEventID:
		return m.EventID()
	case tourevent.FieldUserID:
		return m.UserID()
	case tourevent.FieldStep:
		return m.Step()
	case tourevent.FieldAction:
		return m.Action()
	case tourevent.FieldDurationMs:
		return m.DurationMs()
	case tourevent.FieldInteractionCount:
		return m.InteractionCount()
	case tourevent.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TourEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tourevent.FieldSequence:
		return m.OldSequence(ctx)
	case tourevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case tourevent.FieldEventID:
		return m.OldEventID(ctx)
	case tourevent.FieldUserID:
		return m.OldUserID(ctx)
	case tourevent.FieldStep:
		return m.OldStep(ctx)
	case tourevent.FieldAction:
		return m.OldAction(ctx)
	case tourevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case tourevent.FieldInteractionCount:
		return m.OldInteractionCount(ctx)
	case tourevent.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown TourEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tourevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case tourevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case tourevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case tourevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case tourevent.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case tourevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case tourevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case tourevent.FieldInteractionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionCount(v)
		return nil
	case tourevent.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown TourEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TourEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, tourevent.FieldSequence)
	}
	if m.addduration_ms != nil {
		fields = append(fields, tourevent.FieldDurationMs)
	}
	if m.addinteraction_count != nil {
		fields = append(fields, tourevent.FieldInteractionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TourEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tourevent.FieldSequence:
		return m.AddedSequence()
	case tourevent.FieldDurationMs:
		return m.AddedDurationMs()
	case tourevent.FieldInteractionCount:
		return m.AddedInteractionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tourevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case tourevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case tourevent.FieldInteractionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInteractionCount(v)
		return nil
	}
	return fmt.Errorf("unknown TourEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TourEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tourevent.FieldMetadata) {
		fields = append(fields, tourevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TourEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TourEventMutation) ClearField(name string) error {
	switch name {
	case tourevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown TourEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TourEventMutation) ResetField(name string) error {
	switch name {
	case tourevent.FieldSequence:
		m.ResetSequence()
		return nil
	case tourevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case tourevent.FieldEventID:
		m.ResetEventID()
		return nil
	case tourevent.FieldUserID:
		m.ResetUserID()
		return nil
	case tourevent.FieldStep:
		m.ResetStep()
		return nil
	case tourevent.FieldAction:
		m.ResetAction()
		return nil
	case tourevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case tourevent.FieldInteractionCount:
		m.ResetInteractionCount()
		return nil
	case tourevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown TourEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TourEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TourEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TourEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TourEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TourEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TourEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TourEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TourEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TourEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TourEvent edge %s", name)
}

// TourProgressMutation represents an operation that mutates the TourProgress nodes in the graph.
type TourProgressMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	current_step          *string
	completed_steps       *[]string
	appendcompleted_steps []string
	is_completed          *bool
	is_skipped            *bool
	step_data             *map[string][]string
	started_at            *time.Time
	last_seen_at          *time.Time
	completed_at          *time.Time
	error_count           *int
	adderror_count        *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TourProgress, error)
	predicates            []predicate.TourProgress
}

var _ ent.Mutation = (*TourProgressMutation)(nil)

// tourprogressOption allows management of the mutation configuration using functional options.
type tourprogressOption func(*TourProgressMutation)

// newTourProgressMutation creates new mutation for the TourProgress entity.
func newTourProgressMutation(c config, op Op, opts ...tourprogressOption) *TourProgressMutation {
	m := &TourProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTourProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTourProgressID sets the ID field of the mutation.
func withTourProgressID(id int) tourprogressOption {
	return func(m *TourProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TourProgress
		)
		m.oldValue = func(ctx context.Context) (*TourProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TourProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTourProgress sets the old TourProgress of the mutation.
func withTourProgress(node *TourProgress) tourprogressOption {
	return func(m *TourProgressMutation) {
		m.oldValue = func(context.Context) (*TourProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TourProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TourProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TourProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TourProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TourProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TourProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TourProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TourProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *TourProgressMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *TourProgressMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldCurrentStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *TourProgressMutation) ResetCurrentStep() {
	m.current_step = nil
}

// SetCompletedSteps sets the "completed_steps" field.
func (m *TourProgressMutation) SetCompletedSteps(s []string) {
	m.completed_steps = &s
	m.appendcompleted_steps = nil
}

// CompletedSteps returns the value of the "completed_steps" field in the mutation.
func (m *TourProgressMutation) CompletedSteps() (r []string, exists bool) {
	v := m.completed_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedSteps returns the old "completed_steps" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldCompletedSteps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedSteps: %w", err)
	}
	return oldValue.CompletedSteps, nil
}

// AppendCompletedSteps adds s to the "completed_steps" field.
func (m *TourProgressMutation) AppendCompletedSteps(s []string) {
	m.appendcompleted_steps = append(m.appendcompleted_steps, s...)
}

// AppendedCompletedSteps returns the list of values that were appended to the "completed_steps" field in this mutation.
func (m *TourProgressMutation) AppendedCompletedSteps() ([]string, bool) {
	if len(m.appendcompleted_steps) == 0 {
		return nil, false
	}
	return m.appendcompleted_steps, true
}

// ClearCompletedSteps clears the value of the "completed_steps" field.
func (m *TourProgressMutation) ClearCompletedSteps() {
	m.completed_steps = nil
	m.appendcompleted_steps = nil
	m.clearedFields[tourprogress.FieldCompletedSteps] = struct{}{}
}

// CompletedStepsCleared returns if the "completed_steps" field was cleared in this mutation.
func (m *TourProgressMutation) CompletedStepsCleared() bool {
	_, ok := m.clearedFields[tourprogress.FieldCompletedSteps]
	return ok
}

// ResetCompletedSteps resets all changes to the "completed_steps" field.
func (m *TourProgressMutation) ResetCompletedSteps() {
	m.completed_steps = nil
	m.appendcompleted_steps = nil
	delete(m.clearedFields, tourprogress.FieldCompletedSteps)
}

// SetIsCompleted sets the "is_completed" field.
func (m *TourProgressMutation) SetIsCompleted(b bool) {
	m.is_completed = &b
}

// IsCompleted returns the value of the "is_completed" field in the mutation.
func (m *TourProgressMutation) IsCompleted() (r bool, exists bool) {
	v := m.is_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCompleted returns the old "is_completed" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldIsCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCompleted: %w", err)
	}
	return oldValue.IsCompleted, nil
}

// ResetIsCompleted resets all changes to the "is_completed" field.
func (m *TourProgressMutation) ResetIsCompleted() {
	m.is_completed = nil
}

// SetIsSkipped sets the "is_skipped" field.
func (m *TourProgressMutation) SetIsSkipped(b bool) {
	m.is_skipped = &b
}

// IsSkipped returns the value of the "is_skipped" field in the mutation.
func (m *TourProgressMutation) IsSkipped() (r bool, exists bool) {
	v := m.is_skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSkipped returns the old "is_skipped" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldIsSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSkipped: %w", err)
	}
	return oldValue.IsSkipped, nil
}

// ResetIsSkipped resets all changes to the "is_skipped" field.
func (m *TourProgressMutation) ResetIsSkipped() {
	m.is_skipped = nil
}

// SetStepData sets the "step_data" field.
func (m *TourProgressMutation) SetStepData(value map[string][]string) {
	m.step_data = &value
}

// StepData returns the value of the "step_data" field in the mutation.
func (m *TourProgressMutation) StepData() (r map[string][]string, exists bool) {
	v := m.step_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStepData returns the old "step_data" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldStepData(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepData: %w", err)
	}
	return oldValue.StepData, nil
}

// ClearStepData clears the value of the "step_data" field.
func (m *TourProgressMutation) ClearStepData() {
	m.step_data = nil
	m.clearedFields[tourprogress.FieldStepData] = struct{}{}
}

// StepDataCleared returns if the "step_data" field was cleared in this mutation.
func (m *TourProgressMutation) StepDataCleared() bool {
	_, ok := m.clearedFields[tourprogress.FieldStepData]
	return ok
}

// ResetStepData resets all changes to the "step_data" field.
func (m *TourProgressMutation) ResetStepData() {
	m.step_data = nil
	delete(m.clearedFields, tourprogress.FieldStepData)
}

// SetStartedAt sets the "started_at" field.
func (m *TourProgressMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TourProgressMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TourProgressMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *TourProgressMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *TourProgressMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *TourProgressMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TourProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TourProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TourProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[tourprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TourProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[tourprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TourProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, tourprogress.FieldCompletedAt)
}

// SetErrorCount sets the "error_count" field.
func (m *TourProgressMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *TourProgressMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the TourProgress entity.
// If the TourProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourProgressMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *TourProgressMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *TourProgressMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *TourProgressMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// Where appends a list predicates to the TourProgressMutation builder.
func (m *TourProgressMutation) Where(ps ...predicate.TourProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TourProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TourProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TourProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TourProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TourProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TourProgress).
func (m *TourProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TourProgressMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, tourprogress.FieldUserID)
	}
	if m.current_step != nil {
		fields = append(fields, tourprogress.FieldCurrentStep)
	}
	if m.completed_steps != nil {
		fields = append(fields, tourprogress.FieldCompletedSteps)
	}
	if m.is_completed != nil {
		fields = append(fields, tourprogress.FieldIsCompleted)
	}
	if m.is_skipped != nil {
		fields = append(fields, tourprogress.FieldIsSkipped)
	}
	if m.step_data != nil {
		fields = append(fields, tourprogress.FieldStepData)
	}
	if m.started_at != nil {
		fields = append(fields, tourprogress.FieldStartedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, tourprogress.FieldLastSeenAt)
	}
	if m.completed_at != nil {
		fields = append(fields, tourprogress.FieldCompletedAt)
	}
	if m.error_count != nil {
		fields = append(fields, tourprogress.FieldErrorCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TourProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tourprogress.FieldUserID:
		return m.UserID()
	case tourprogress.FieldCurrentStep:
		return m.CurrentStep()
	case tourprogress.FieldCompletedSteps:
		return m.CompletedSteps()
	case tourprogress.FieldIsCompleted:
		return m.IsCompleted()
	case tourprogress.FieldIsSkipped:
		return m.IsSkipped()
	case tourprogress.FieldStepData:
		return m.StepData()
	case tourprogress.FieldStartedAt:
		return m.StartedAt()
	case tourprogress.FieldLastSeenAt:
		return m.LastSeenAt()
	case tourprogress.FieldCompletedAt:
		return m.CompletedAt()
	case tourprogress.FieldErrorCount:
		return m.ErrorCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TourProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tourprogress.FieldUserID:
		return m.OldUserID(ctx)
	case tourprogress.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case tourprogress.FieldCompletedSteps:
		return m.OldCompletedSteps(ctx)
	case tourprogress.FieldIsCompleted:
		return m.OldIsCompleted(ctx)
	case tourprogress.FieldIsSkipped:
		return m.OldIsSkipped(ctx)
	case tourprogress.FieldStepData:
		return m.OldStepData(ctx)
	case tourprogress.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case tourprogress.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case tourprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case tourprogress.FieldErrorCount:
		return m.OldErrorCount(ctx)
	}
	return nil, fmt.Errorf("unknown TourProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tourprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case tourprogress.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case tourprogress.FieldCompletedSteps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedSteps(v)
		return nil
	case tourprogress.FieldIsCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCompleted(v)
		return nil
	case tourprogress.FieldIsSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSkipped(v)
		return nil
	case tourprogress.FieldStepData:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepData(v)
		return nil
	case tourprogress.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case tourprogress.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case tourprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case tourprogress.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown TourProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TourProgressMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, tourprogress.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TourProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tourprogress.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tourprogress.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown TourProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TourProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tourprogress.FieldCompletedSteps) {
		fields = append(fields, tourprogress.FieldCompletedSteps)
	}
	if m.FieldCleared(tourprogress.FieldStepData) {
		fields = append(fields, tourprogress.FieldStepData)
	}
	if m.FieldCleared(tourprogress.FieldCompletedAt) {
		fields = append(fields, tourprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TourProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TourProgressMutation) ClearField(name string) error {
	switch name {
	case tourprogress.FieldCompletedSteps:
		m.ClearCompletedSteps()
		return nil
	case tourprogress.FieldStepData:
		m.ClearStepData()
		return nil
	case tourprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TourProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TourProgressMutation) ResetField(name string) error {
	switch name {
	case tourprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case tourprogress.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case tourprogress.FieldCompletedSteps:
		m.ResetCompletedSteps()
		return nil
	case tourprogress.FieldIsCompleted:
		m.ResetIsCompleted()
		return nil
	case tourprogress.FieldIsSkipped:
		m.ResetIsSkipped()
		return nil
	case tourprogress.FieldStepData:
		m.ResetStepData()
		return nil
	case tourprogress.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case tourprogress.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case tourprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case tourprogress.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	}
	return fmt.Errorf("unknown TourProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TourProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TourProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TourProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TourProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TourProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TourProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TourProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TourProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TourProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TourProgress edge %s", name)
}
