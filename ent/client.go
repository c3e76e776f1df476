// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/studyloop/studyloop/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/studyloop/studyloop/ent/reward"
	"github.com/studyloop/studyloop/ent/tourevent"
	"github.com/studyloop/studyloop/ent/tourprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Reward is the client for interacting with the Reward builders.
	Reward *RewardClient
	// TourEvent is the client for interacting with the TourEvent builders.
	TourEvent *TourEventClient
	// TourProgress is the client for interacting with the TourProgress builders.
	TourProgress *TourProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Reward = NewRewardClient(c.config)
	c.TourEvent = NewTourEventClient(c.config)
	c.TourProgress = NewTourProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Reward:       NewRewardClient(cfg),
		TourEvent:    NewTourEventClient(cfg),
		TourProgress: NewTourProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Reward:       NewRewardClient(cfg),
		TourEvent:    NewTourEventClient(cfg),
		TourProgress: NewTourProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Reward.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Reward.Use(hooks...)
	c.TourEvent.Use(hooks...)
	c.TourProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Reward.Intercept(interceptors...)
	c.TourEvent.Intercept(interceptors...)
	c.TourProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RewardMutation:
		return c.Reward.mutate(ctx, m)
	case *TourEventMutation:
		return c.TourEvent.mutate(ctx, m)
	case *TourProgressMutation:
		return c.TourProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RewardClient is a client for the Reward schema.
type RewardClient struct {
	config
}

// NewRewardClient returns a client for the Reward from the given config.
func NewRewardClient(c config) *RewardClient {
	return &RewardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reward.Hooks(f(g(h())))`.
func (c *RewardClient) Use(hooks ...Hook) {
	c.hooks.Reward = append(c.hooks.Reward, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reward.Intercept(f(g(h())))`.
func (c *RewardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reward = append(c.inters.Reward, interceptors...)
}

// Create returns a builder for creating a Reward entity.
func (c *RewardClient) Create() *RewardCreate {
	mutation := newRewardMutation(c.config, OpCreate)
	return &RewardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reward entities.
func (c *RewardClient) CreateBulk(builders ...*RewardCreate) *RewardCreateBulk {
	return &RewardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RewardClient) MapCreateBulk(slice any, setFunc func(*RewardCreate, int)) *RewardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RewardCreateBulk{err: fmt.Errorf("calling to RewardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RewardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RewardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reward.
func (c *RewardClient) Update() *RewardUpdate {
	mutation := newRewardMutation(c.config, OpUpdate)
	return &RewardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RewardClient) UpdateOne(_m *Reward) *RewardUpdateOne {
	mutation := newRewardMutation(c.config, OpUpdateOne, withReward(_m))
	return &RewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RewardClient) UpdateOneID(id int) *RewardUpdateOne {
	mutation := newRewardMutation(c.config, OpUpdateOne, withRewardID(id))
	return &RewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reward.
func (c *RewardClient) Delete() *RewardDelete {
	mutation := newRewardMutation(c.config, OpDelete)
	return &RewardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RewardClient) DeleteOne(_m *Reward) *RewardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RewardClient) DeleteOneID(id int) *RewardDeleteOne {
	builder := c.Delete().Where(reward.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RewardDeleteOne{builder}
}

// Query returns a query builder for Reward.
func (c *RewardClient) Query() *RewardQuery {
	return &RewardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReward},
		inters: c.Interceptors(),
	}
}

// Get returns a Reward entity by its id.
func (c *RewardClient) Get(ctx context.Context, id int) (*Reward, error) {
	return c.Query().Where(reward.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RewardClient) GetX(ctx context.Context, id int) *Reward {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RewardClient) Hooks() []Hook {
	return c.hooks.Reward
}

// Interceptors returns the client interceptors.
func (c *RewardClient) Interceptors() []Interceptor {
	return c.inters.Reward
}

func (c *RewardClient) mutate(ctx context.Context, m *RewardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RewardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RewardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RewardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RewardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reward mutation op: %q", m.Op())
	}
}

// TourEventClient is a client for the TourEvent schema.
type TourEventClient struct {
	config
}

// NewTourEventClient returns a client for the TourEvent from the given config.
func NewTourEventClient(c config) *TourEventClient {
	return &TourEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tourevent.Hooks(f(g(h())))`.
func (c *TourEventClient) Use(hooks ...Hook) {
	c.hooks.TourEvent = append(c.hooks.TourEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tourevent.Intercept(f(g(h())))`.
func (c *TourEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TourEvent = append(c.inters.TourEvent, interceptors...)
}

// Create returns a builder for creating a TourEvent entity.
func (c *TourEventClient) Create() *TourEventCreate {
	mutation := newTourEventMutation(c.config, OpCreate)
	return &TourEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TourEvent entities.
func (c *TourEventClient) CreateBulk(builders ...*TourEventCreate) *TourEventCreateBulk {
	return &TourEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TourEventClient) MapCreateBulk(slice any, setFunc func(*TourEventCreate, int)) *TourEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TourEventCreateBulk{err: fmt.Errorf("calling to TourEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TourEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TourEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TourEvent.
func (c *TourEventClient) Update() *TourEventUpdate {
	mutation := newTourEventMutation(c.config, OpUpdate)
	return &TourEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TourEventClient) UpdateOne(_m *TourEvent) *TourEventUpdateOne {
	mutation := newTourEventMutation(c.config, OpUpdateOne, withTourEvent(_m))
	return &TourEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TourEventClient) UpdateOneID(id int) *TourEventUpdateOne {
	mutation := newTourEventMutation(c.config, OpUpdateOne, withTourEventID(id))
	return &TourEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TourEvent.
func (c *TourEventClient) Delete() *TourEventDelete {
	mutation := newTourEventMutation(c.config, OpDelete)
	return &TourEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TourEventClient) DeleteOne(_m *TourEvent) *TourEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TourEventClient) DeleteOneID(id int) *TourEventDeleteOne {
	builder := c.Delete().Where(tourevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TourEventDeleteOne{builder}
}

// Query returns a query builder for TourEvent.
func (c *TourEventClient) Query() *TourEventQuery {
	return &TourEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTourEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TourEvent entity by its id.
func (c *TourEventClient) Get(ctx context.Context, id int) (*TourEvent, error) {
	return c.Query().Where(tourevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TourEventClient) GetX(ctx context.Context, id int) *TourEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TourEventClient) Hooks() []Hook {
	return c.hooks.TourEvent
}

// Interceptors returns the client interceptors.
func (c *TourEventClient) Interceptors() []Interceptor {
	return c.inters.TourEvent
}

func (c *TourEventClient) mutate(ctx context.Context, m *TourEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TourEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TourEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TourEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TourEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TourEvent mutation op: %q", m.Op())
	}
}

// TourProgressClient is a client for the TourProgress schema.
type TourProgressClient struct {
	config
}

// NewTourProgressClient returns a client for the TourProgress from the given config.
func NewTourProgressClient(c config) *TourProgressClient {
	return &TourProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tourprogress.Hooks(f(g(h())))`.
func (c *TourProgressClient) Use(hooks ...Hook) {
	c.hooks.TourProgress = append(c.hooks.TourProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tourprogress.Intercept(f(g(h())))`.
func (c *TourProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.TourProgress = append(c.inters.TourProgress, interceptors...)
}

// Create returns a builder for creating a TourProgress entity.
func (c *TourProgressClient) Create() *TourProgressCreate {
	mutation := newTourProgressMutation(c.config, OpCreate)
	return &TourProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TourProgress entities.
func (c *TourProgressClient) CreateBulk(builders ...*TourProgressCreate) *TourProgressCreateBulk {
	return &TourProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TourProgressClient) MapCreateBulk(slice any, setFunc func(*TourProgressCreate, int)) *TourProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TourProgressCreateBulk{err: fmt.Errorf("calling to TourProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TourProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TourProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TourProgress.
func (c *TourProgressClient) Update() *TourProgressUpdate {
	mutation := newTourProgressMutation(c.config, OpUpdate)
	return &TourProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TourProgressClient) UpdateOne(_m *TourProgress) *TourProgressUpdateOne {
	mutation := newTourProgressMutation(c.config, OpUpdateOne, withTourProgress(_m))
	return &TourProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TourProgressClient) UpdateOneID(id int) *TourProgressUpdateOne {
	mutation := newTourProgressMutation(c.config, OpUpdateOne, withTourProgressID(id))
	return &TourProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TourProgress.
func (c *TourProgressClient) Delete() *TourProgressDelete {
	mutation := newTourProgressMutation(c.config, OpDelete)
	return &TourProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TourProgressClient) DeleteOne(_m *TourProgress) *TourProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TourProgressClient) DeleteOneID(id int) *TourProgressDeleteOne {
	builder := c.Delete().Where(tourprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TourProgressDeleteOne{builder}
}

// Query returns a query builder for TourProgress.
func (c *TourProgressClient) Query() *TourProgressQuery {
	return &TourProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTourProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a TourProgress entity by its id.
func (c *TourProgressClient) Get(ctx context.Context, id int) (*TourProgress, error) {
	return c.Query().Where(tourprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TourProgressClient) GetX(ctx context.Context, id int) *TourProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TourProgressClient) Hooks() []Hook {
	return c.hooks.TourProgress
}

// Interceptors returns the client interceptors.
func (c *TourProgressClient) Interceptors() []Interceptor {
	return c.inters.TourProgress
}

func (c *TourProgressClient) mutate(ctx context.Context, m *TourProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TourProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TourProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TourProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TourProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TourProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Reward, TourEvent, TourProgress []ent.Hook
	}
	inters struct {
		Reward, TourEvent, TourProgress []ent.Interceptor
	}
)
