// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/attune-health/attune/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/attune-health/attune/ent/bridgeversion"
	"github.com/attune-health/attune/ent/generationcost"
	"github.com/attune-health/attune/ent/generationmetadata"
	"github.com/attune-health/attune/ent/journeyversion"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/patientbridge"
	"github.com/attune-health/attune/ent/patientjourney"
	"github.com/attune-health/attune/ent/pipelineevent"
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/therapysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BridgeVersion is the client for interacting with the BridgeVersion builders.
	BridgeVersion *BridgeVersionClient
	// GenerationCost is the client for interacting with the GenerationCost builders.
	GenerationCost *GenerationCostClient
	// GenerationMetadata is the client for interacting with the GenerationMetadata builders.
	GenerationMetadata *GenerationMetadataClient
	// JourneyVersion is the client for interacting with the JourneyVersion builders.
	JourneyVersion *JourneyVersionClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PatientBridge is the client for interacting with the PatientBridge builders.
	PatientBridge *PatientBridgeClient
	// PatientJourney is the client for interacting with the PatientJourney builders.
	PatientJourney *PatientJourneyClient
	// PipelineEvent is the client for interacting with the PipelineEvent builders.
	PipelineEvent *PipelineEventClient
	// ProcessingLog is the client for interacting with the ProcessingLog builders.
	ProcessingLog *ProcessingLogClient
	// TherapySession is the client for interacting with the TherapySession builders.
	TherapySession *TherapySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BridgeVersion = NewBridgeVersionClient(c.config)
	c.GenerationCost = NewGenerationCostClient(c.config)
	c.GenerationMetadata = NewGenerationMetadataClient(c.config)
	c.JourneyVersion = NewJourneyVersionClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PatientBridge = NewPatientBridgeClient(c.config)
	c.PatientJourney = NewPatientJourneyClient(c.config)
	c.PipelineEvent = NewPipelineEventClient(c.config)
	c.ProcessingLog = NewProcessingLogClient(c.config)
	c.TherapySession = NewTherapySessionClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		BridgeVersion:      NewBridgeVersionClient(cfg),
		GenerationCost:     NewGenerationCostClient(cfg),
		GenerationMetadata: NewGenerationMetadataClient(cfg),
		JourneyVersion:     NewJourneyVersionClient(cfg),
		Patient:            NewPatientClient(cfg),
		PatientBridge:      NewPatientBridgeClient(cfg),
		PatientJourney:     NewPatientJourneyClient(cfg),
		PipelineEvent:      NewPipelineEventClient(cfg),
		ProcessingLog:      NewProcessingLogClient(cfg),
		TherapySession:     NewTherapySessionClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		BridgeVersion:      NewBridgeVersionClient(cfg),
		GenerationCost:     NewGenerationCostClient(cfg),
		GenerationMetadata: NewGenerationMetadataClient(cfg),
		JourneyVersion:     NewJourneyVersionClient(cfg),
		Patient:            NewPatientClient(cfg),
		PatientBridge:      NewPatientBridgeClient(cfg),
		PatientJourney:     NewPatientJourneyClient(cfg),
		PipelineEvent:      NewPipelineEventClient(cfg),
		ProcessingLog:      NewProcessingLogClient(cfg),
		TherapySession:     NewTherapySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BridgeVersion.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.BridgeVersion, c.GenerationCost, c.GenerationMetadata, c.JourneyVersion,
		c.Patient, c.PatientBridge, c.PatientJourney, c.PipelineEvent, c.ProcessingLog,
		c.TherapySession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BridgeVersion, c.GenerationCost, c.GenerationMetadata, c.JourneyVersion,
		c.Patient, c.PatientBridge, c.PatientJourney, c.PipelineEvent, c.ProcessingLog,
		c.TherapySession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BridgeVersionMutation:
		return c.BridgeVersion.mutate(ctx, m)
	case *GenerationCostMutation:
		return c.GenerationCost.mutate(ctx, m)
	case *GenerationMetadataMutation:
		return c.GenerationMetadata.mutate(ctx, m)
	case *JourneyVersionMutation:
		return c.JourneyVersion.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PatientBridgeMutation:
		return c.PatientBridge.mutate(ctx, m)
	case *PatientJourneyMutation:
		return c.PatientJourney.mutate(ctx, m)
	case *PipelineEventMutation:
		return c.PipelineEvent.mutate(ctx, m)
	case *ProcessingLogMutation:
		return c.ProcessingLog.mutate(ctx, m)
	case *TherapySessionMutation:
		return c.TherapySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BridgeVersionClient is a client for the BridgeVersion schema.
type BridgeVersionClient struct {
	config
}

// NewBridgeVersionClient returns a client for the BridgeVersion from the given config.
func NewBridgeVersionClient(c config) *BridgeVersionClient {
	return &BridgeVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bridgeversion.Hooks(f(g(h())))`.
func (c *BridgeVersionClient) Use(hooks ...Hook) {
	c.hooks.BridgeVersion = append(c.hooks.BridgeVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bridgeversion.Intercept(f(g(h())))`.
func (c *BridgeVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BridgeVersion = append(c.inters.BridgeVersion, interceptors...)
}

// Create returns a builder for creating a BridgeVersion entity.
func (c *BridgeVersionClient) Create() *BridgeVersionCreate {
	mutation := newBridgeVersionMutation(c.config, OpCreate)
	return &BridgeVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BridgeVersion entities.
func (c *BridgeVersionClient) CreateBulk(builders ...*BridgeVersionCreate) *BridgeVersionCreateBulk {
	return &BridgeVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BridgeVersionClient) MapCreateBulk(slice any, setFunc func(*BridgeVersionCreate, int)) *BridgeVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BridgeVersionCreateBulk{err: fmt.Errorf("calling to BridgeVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BridgeVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BridgeVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BridgeVersion.
func (c *BridgeVersionClient) Update() *BridgeVersionUpdate {
	mutation := newBridgeVersionMutation(c.config, OpUpdate)
	return &BridgeVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BridgeVersionClient) UpdateOne(_m *BridgeVersion) *BridgeVersionUpdateOne {
	mutation := newBridgeVersionMutation(c.config, OpUpdateOne, withBridgeVersion(_m))
	return &BridgeVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BridgeVersionClient) UpdateOneID(id int) *BridgeVersionUpdateOne {
	mutation := newBridgeVersionMutation(c.config, OpUpdateOne, withBridgeVersionID(id))
	return &BridgeVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BridgeVersion.
func (c *BridgeVersionClient) Delete() *BridgeVersionDelete {
	mutation := newBridgeVersionMutation(c.config, OpDelete)
	return &BridgeVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BridgeVersionClient) DeleteOne(_m *BridgeVersion) *BridgeVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BridgeVersionClient) DeleteOneID(id int) *BridgeVersionDeleteOne {
	builder := c.Delete().Where(bridgeversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BridgeVersionDeleteOne{builder}
}

// Query returns a query builder for BridgeVersion.
func (c *BridgeVersionClient) Query() *BridgeVersionQuery {
	return &BridgeVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBridgeVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a BridgeVersion entity by its id.
func (c *BridgeVersionClient) Get(ctx context.Context, id int) (*BridgeVersion, error) {
	return c.Query().Where(bridgeversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BridgeVersionClient) GetX(ctx context.Context, id int) *BridgeVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a BridgeVersion.
func (c *BridgeVersionClient) QueryPatient(_m *BridgeVersion) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bridgeversion.Table, bridgeversion.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, bridgeversion.PatientTable, bridgeversion.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BridgeVersionClient) Hooks() []Hook {
	return c.hooks.BridgeVersion
}

// Interceptors returns the client interceptors.
func (c *BridgeVersionClient) Interceptors() []Interceptor {
	return c.inters.BridgeVersion
}

func (c *BridgeVersionClient) mutate(ctx context.Context, m *BridgeVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BridgeVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BridgeVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BridgeVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BridgeVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BridgeVersion mutation op: %q", m.Op())
	}
}

// GenerationCostClient is a client for the GenerationCost schema.
type GenerationCostClient struct {
	config
}

// NewGenerationCostClient returns a client for the GenerationCost from the given config.
func NewGenerationCostClient(c config) *GenerationCostClient {
	return &GenerationCostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationcost.Hooks(f(g(h())))`.
func (c *GenerationCostClient) Use(hooks ...Hook) {
	c.hooks.GenerationCost = append(c.hooks.GenerationCost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationcost.Intercept(f(g(h())))`.
func (c *GenerationCostClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationCost = append(c.inters.GenerationCost, interceptors...)
}

// Create returns a builder for creating a GenerationCost entity.
func (c *GenerationCostClient) Create() *GenerationCostCreate {
	mutation := newGenerationCostMutation(c.config, OpCreate)
	return &GenerationCostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationCost entities.
func (c *GenerationCostClient) CreateBulk(builders ...*GenerationCostCreate) *GenerationCostCreateBulk {
	return &GenerationCostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationCostClient) MapCreateBulk(slice any, setFunc func(*GenerationCostCreate, int)) *GenerationCostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationCostCreateBulk{err: fmt.Errorf("calling to GenerationCostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationCostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationCostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationCost.
func (c *GenerationCostClient) Update() *GenerationCostUpdate {
	mutation := newGenerationCostMutation(c.config, OpUpdate)
	return &GenerationCostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationCostClient) UpdateOne(_m *GenerationCost) *GenerationCostUpdateOne {
	mutation := newGenerationCostMutation(c.config, OpUpdateOne, withGenerationCost(_m))
	return &GenerationCostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationCostClient) UpdateOneID(id int) *GenerationCostUpdateOne {
	mutation := newGenerationCostMutation(c.config, OpUpdateOne, withGenerationCostID(id))
	return &GenerationCostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationCost.
func (c *GenerationCostClient) Delete() *GenerationCostDelete {
	mutation := newGenerationCostMutation(c.config, OpDelete)
	return &GenerationCostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationCostClient) DeleteOne(_m *GenerationCost) *GenerationCostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationCostClient) DeleteOneID(id int) *GenerationCostDeleteOne {
	builder := c.Delete().Where(generationcost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationCostDeleteOne{builder}
}

// Query returns a query builder for GenerationCost.
func (c *GenerationCostClient) Query() *GenerationCostQuery {
	return &GenerationCostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationCost},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationCost entity by its id.
func (c *GenerationCostClient) Get(ctx context.Context, id int) (*GenerationCost, error) {
	return c.Query().Where(generationcost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationCostClient) GetX(ctx context.Context, id int) *GenerationCost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationCostClient) Hooks() []Hook {
	return c.hooks.GenerationCost
}

// Interceptors returns the client interceptors.
func (c *GenerationCostClient) Interceptors() []Interceptor {
	return c.inters.GenerationCost
}

func (c *GenerationCostClient) mutate(ctx context.Context, m *GenerationCostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationCostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationCostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationCostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationCostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationCost mutation op: %q", m.Op())
	}
}

// GenerationMetadataClient is a client for the GenerationMetadata schema.
type GenerationMetadataClient struct {
	config
}

// NewGenerationMetadataClient returns a client for the GenerationMetadata from the given config.
func NewGenerationMetadataClient(c config) *GenerationMetadataClient {
	return &GenerationMetadataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationmetadata.Hooks(f(g(h())))`.
func (c *GenerationMetadataClient) Use(hooks ...Hook) {
	c.hooks.GenerationMetadata = append(c.hooks.GenerationMetadata, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationmetadata.Intercept(f(g(h())))`.
func (c *GenerationMetadataClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationMetadata = append(c.inters.GenerationMetadata, interceptors...)
}

// Create returns a builder for creating a GenerationMetadata entity.
func (c *GenerationMetadataClient) Create() *GenerationMetadataCreate {
	mutation := newGenerationMetadataMutation(c.config, OpCreate)
	return &GenerationMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationMetadata entities.
func (c *GenerationMetadataClient) CreateBulk(builders ...*GenerationMetadataCreate) *GenerationMetadataCreateBulk {
	return &GenerationMetadataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationMetadataClient) MapCreateBulk(slice any, setFunc func(*GenerationMetadataCreate, int)) *GenerationMetadataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationMetadataCreateBulk{err: fmt.Errorf("calling to GenerationMetadataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationMetadataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationMetadataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationMetadata.
func (c *GenerationMetadataClient) Update() *GenerationMetadataUpdate {
	mutation := newGenerationMetadataMutation(c.config, OpUpdate)
	return &GenerationMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationMetadataClient) UpdateOne(_m *GenerationMetadata) *GenerationMetadataUpdateOne {
	mutation := newGenerationMetadataMutation(c.config, OpUpdateOne, withGenerationMetadata(_m))
	return &GenerationMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationMetadataClient) UpdateOneID(id int) *GenerationMetadataUpdateOne {
	mutation := newGenerationMetadataMutation(c.config, OpUpdateOne, withGenerationMetadataID(id))
	return &GenerationMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationMetadata.
func (c *GenerationMetadataClient) Delete() *GenerationMetadataDelete {
	mutation := newGenerationMetadataMutation(c.config, OpDelete)
	return &GenerationMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationMetadataClient) DeleteOne(_m *GenerationMetadata) *GenerationMetadataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationMetadataClient) DeleteOneID(id int) *GenerationMetadataDeleteOne {
	builder := c.Delete().Where(generationmetadata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationMetadataDeleteOne{builder}
}

// Query returns a query builder for GenerationMetadata.
func (c *GenerationMetadataClient) Query() *GenerationMetadataQuery {
	return &GenerationMetadataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationMetadata},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationMetadata entity by its id.
func (c *GenerationMetadataClient) Get(ctx context.Context, id int) (*GenerationMetadata, error) {
	return c.Query().Where(generationmetadata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationMetadataClient) GetX(ctx context.Context, id int) *GenerationMetadata {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationMetadataClient) Hooks() []Hook {
	return c.hooks.GenerationMetadata
}

// Interceptors returns the client interceptors.
func (c *GenerationMetadataClient) Interceptors() []Interceptor {
	return c.inters.GenerationMetadata
}

func (c *GenerationMetadataClient) mutate(ctx context.Context, m *GenerationMetadataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationMetadata mutation op: %q", m.Op())
	}
}

// JourneyVersionClient is a client for the JourneyVersion schema.
type JourneyVersionClient struct {
	config
}

// NewJourneyVersionClient returns a client for the JourneyVersion from the given config.
func NewJourneyVersionClient(c config) *JourneyVersionClient {
	return &JourneyVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `journeyversion.Hooks(f(g(h())))`.
func (c *JourneyVersionClient) Use(hooks ...Hook) {
	c.hooks.JourneyVersion = append(c.hooks.JourneyVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `journeyversion.Intercept(f(g(h())))`.
func (c *JourneyVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.JourneyVersion = append(c.inters.JourneyVersion, interceptors...)
}

// Create returns a builder for creating a JourneyVersion entity.
func (c *JourneyVersionClient) Create() *JourneyVersionCreate {
	mutation := newJourneyVersionMutation(c.config, OpCreate)
	return &JourneyVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JourneyVersion entities.
func (c *JourneyVersionClient) CreateBulk(builders ...*JourneyVersionCreate) *JourneyVersionCreateBulk {
	return &JourneyVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JourneyVersionClient) MapCreateBulk(slice any, setFunc func(*JourneyVersionCreate, int)) *JourneyVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JourneyVersionCreateBulk{err: fmt.Errorf("calling to JourneyVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JourneyVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JourneyVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JourneyVersion.
func (c *JourneyVersionClient) Update() *JourneyVersionUpdate {
	mutation := newJourneyVersionMutation(c.config, OpUpdate)
	return &JourneyVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JourneyVersionClient) UpdateOne(_m *JourneyVersion) *JourneyVersionUpdateOne {
	mutation := newJourneyVersionMutation(c.config, OpUpdateOne, withJourneyVersion(_m))
	return &JourneyVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JourneyVersionClient) UpdateOneID(id int) *JourneyVersionUpdateOne {
	mutation := newJourneyVersionMutation(c.config, OpUpdateOne, withJourneyVersionID(id))
	return &JourneyVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JourneyVersion.
func (c *JourneyVersionClient) Delete() *JourneyVersionDelete {
	mutation := newJourneyVersionMutation(c.config, OpDelete)
	return &JourneyVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JourneyVersionClient) DeleteOne(_m *JourneyVersion) *JourneyVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JourneyVersionClient) DeleteOneID(id int) *JourneyVersionDeleteOne {
	builder := c.Delete().Where(journeyversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JourneyVersionDeleteOne{builder}
}

// Query returns a query builder for JourneyVersion.
func (c *JourneyVersionClient) Query() *JourneyVersionQuery {
	return &JourneyVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJourneyVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a JourneyVersion entity by its id.
func (c *JourneyVersionClient) Get(ctx context.Context, id int) (*JourneyVersion, error) {
	return c.Query().Where(journeyversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JourneyVersionClient) GetX(ctx context.Context, id int) *JourneyVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a JourneyVersion.
func (c *JourneyVersionClient) QueryPatient(_m *JourneyVersion) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(journeyversion.Table, journeyversion.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, journeyversion.PatientTable, journeyversion.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JourneyVersionClient) Hooks() []Hook {
	return c.hooks.JourneyVersion
}

// Interceptors returns the client interceptors.
func (c *JourneyVersionClient) Interceptors() []Interceptor {
	return c.inters.JourneyVersion
}

func (c *JourneyVersionClient) mutate(ctx context.Context, m *JourneyVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JourneyVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JourneyVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JourneyVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JourneyVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JourneyVersion mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id string) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id string) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id string) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id string) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Patient.
func (c *PatientClient) QuerySessions(_m *Patient) *TherapySessionQuery {
	query := (&TherapySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(therapysession.Table, therapysession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.SessionsTable, patient.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJourneyVersions queries the journey_versions edge of a Patient.
func (c *PatientClient) QueryJourneyVersions(_m *Patient) *JourneyVersionQuery {
	query := (&JourneyVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(journeyversion.Table, journeyversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.JourneyVersionsTable, patient.JourneyVersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBridgeVersions queries the bridge_versions edge of a Patient.
func (c *PatientClient) QueryBridgeVersions(_m *Patient) *BridgeVersionQuery {
	query := (&BridgeVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(bridgeversion.Table, bridgeversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.BridgeVersionsTable, patient.BridgeVersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPipelineEvents queries the pipeline_events edge of a Patient.
func (c *PatientClient) QueryPipelineEvents(_m *Patient) *PipelineEventQuery {
	query := (&PipelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(pipelineevent.Table, pipelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.PipelineEventsTable, patient.PipelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patient mutation op: %q", m.Op())
	}
}

// PatientBridgeClient is a client for the PatientBridge schema.
type PatientBridgeClient struct {
	config
}

// NewPatientBridgeClient returns a client for the PatientBridge from the given config.
func NewPatientBridgeClient(c config) *PatientBridgeClient {
	return &PatientBridgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientbridge.Hooks(f(g(h())))`.
func (c *PatientBridgeClient) Use(hooks ...Hook) {
	c.hooks.PatientBridge = append(c.hooks.PatientBridge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientbridge.Intercept(f(g(h())))`.
func (c *PatientBridgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientBridge = append(c.inters.PatientBridge, interceptors...)
}

// Create returns a builder for creating a PatientBridge entity.
func (c *PatientBridgeClient) Create() *PatientBridgeCreate {
	mutation := newPatientBridgeMutation(c.config, OpCreate)
	return &PatientBridgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientBridge entities.
func (c *PatientBridgeClient) CreateBulk(builders ...*PatientBridgeCreate) *PatientBridgeCreateBulk {
	return &PatientBridgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientBridgeClient) MapCreateBulk(slice any, setFunc func(*PatientBridgeCreate, int)) *PatientBridgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientBridgeCreateBulk{err: fmt.Errorf("calling to PatientBridgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientBridgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientBridgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientBridge.
func (c *PatientBridgeClient) Update() *PatientBridgeUpdate {
	mutation := newPatientBridgeMutation(c.config, OpUpdate)
	return &PatientBridgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientBridgeClient) UpdateOne(_m *PatientBridge) *PatientBridgeUpdateOne {
	mutation := newPatientBridgeMutation(c.config, OpUpdateOne, withPatientBridge(_m))
	return &PatientBridgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientBridgeClient) UpdateOneID(id string) *PatientBridgeUpdateOne {
	mutation := newPatientBridgeMutation(c.config, OpUpdateOne, withPatientBridgeID(id))
	return &PatientBridgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientBridge.
func (c *PatientBridgeClient) Delete() *PatientBridgeDelete {
	mutation := newPatientBridgeMutation(c.config, OpDelete)
	return &PatientBridgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientBridgeClient) DeleteOne(_m *PatientBridge) *PatientBridgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientBridgeClient) DeleteOneID(id string) *PatientBridgeDeleteOne {
	builder := c.Delete().Where(patientbridge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientBridgeDeleteOne{builder}
}

// Query returns a query builder for PatientBridge.
func (c *PatientBridgeClient) Query() *PatientBridgeQuery {
	return &PatientBridgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientBridge},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientBridge entity by its id.
func (c *PatientBridgeClient) Get(ctx context.Context, id string) (*PatientBridge, error) {
	return c.Query().Where(patientbridge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientBridgeClient) GetX(ctx context.Context, id string) *PatientBridge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientBridgeClient) Hooks() []Hook {
	return c.hooks.PatientBridge
}

// Interceptors returns the client interceptors.
func (c *PatientBridgeClient) Interceptors() []Interceptor {
	return c.inters.PatientBridge
}

func (c *PatientBridgeClient) mutate(ctx context.Context, m *PatientBridgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientBridgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientBridgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientBridgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientBridgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatientBridge mutation op: %q", m.Op())
	}
}

// PatientJourneyClient is a client for the PatientJourney schema.
type PatientJourneyClient struct {
	config
}

// NewPatientJourneyClient returns a client for the PatientJourney from the given config.
func NewPatientJourneyClient(c config) *PatientJourneyClient {
	return &PatientJourneyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientjourney.Hooks(f(g(h())))`.
func (c *PatientJourneyClient) Use(hooks ...Hook) {
	c.hooks.PatientJourney = append(c.hooks.PatientJourney, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientjourney.Intercept(f(g(h())))`.
func (c *PatientJourneyClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientJourney = append(c.inters.PatientJourney, interceptors...)
}

// Create returns a builder for creating a PatientJourney entity.
func (c *PatientJourneyClient) Create() *PatientJourneyCreate {
	mutation := newPatientJourneyMutation(c.config, OpCreate)
	return &PatientJourneyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientJourney entities.
func (c *PatientJourneyClient) CreateBulk(builders ...*PatientJourneyCreate) *PatientJourneyCreateBulk {
	return &PatientJourneyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientJourneyClient) MapCreateBulk(slice any, setFunc func(*PatientJourneyCreate, int)) *PatientJourneyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientJourneyCreateBulk{err: fmt.Errorf("calling to PatientJourneyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientJourneyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientJourneyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientJourney.
func (c *PatientJourneyClient) Update() *PatientJourneyUpdate {
	mutation := newPatientJourneyMutation(c.config, OpUpdate)
	return &PatientJourneyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientJourneyClient) UpdateOne(_m *PatientJourney) *PatientJourneyUpdateOne {
	mutation := newPatientJourneyMutation(c.config, OpUpdateOne, withPatientJourney(_m))
	return &PatientJourneyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientJourneyClient) UpdateOneID(id string) *PatientJourneyUpdateOne {
	mutation := newPatientJourneyMutation(c.config, OpUpdateOne, withPatientJourneyID(id))
	return &PatientJourneyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientJourney.
func (c *PatientJourneyClient) Delete() *PatientJourneyDelete {
	mutation := newPatientJourneyMutation(c.config, OpDelete)
	return &PatientJourneyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientJourneyClient) DeleteOne(_m *PatientJourney) *PatientJourneyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientJourneyClient) DeleteOneID(id string) *PatientJourneyDeleteOne {
	builder := c.Delete().Where(patientjourney.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientJourneyDeleteOne{builder}
}

// Query returns a query builder for PatientJourney.
func (c *PatientJourneyClient) Query() *PatientJourneyQuery {
	return &PatientJourneyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientJourney},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientJourney entity by its id.
func (c *PatientJourneyClient) Get(ctx context.Context, id string) (*PatientJourney, error) {
	return c.Query().Where(patientjourney.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientJourneyClient) GetX(ctx context.Context, id string) *PatientJourney {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientJourneyClient) Hooks() []Hook {
	return c.hooks.PatientJourney
}

// Interceptors returns the client interceptors.
func (c *PatientJourneyClient) Interceptors() []Interceptor {
	return c.inters.PatientJourney
}

func (c *PatientJourneyClient) mutate(ctx context.Context, m *PatientJourneyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientJourneyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientJourneyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientJourneyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientJourneyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatientJourney mutation op: %q", m.Op())
	}
}

// PipelineEventClient is a client for the PipelineEvent schema.
type PipelineEventClient struct {
	config
}

// NewPipelineEventClient returns a client for the PipelineEvent from the given config.
func NewPipelineEventClient(c config) *PipelineEventClient {
	return &PipelineEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelineevent.Hooks(f(g(h())))`.
func (c *PipelineEventClient) Use(hooks ...Hook) {
	c.hooks.PipelineEvent = append(c.hooks.PipelineEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelineevent.Intercept(f(g(h())))`.
func (c *PipelineEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineEvent = append(c.inters.PipelineEvent, interceptors...)
}

// Create returns a builder for creating a PipelineEvent entity.
func (c *PipelineEventClient) Create() *PipelineEventCreate {
	mutation := newPipelineEventMutation(c.config, OpCreate)
	return &PipelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineEvent entities.
func (c *PipelineEventClient) CreateBulk(builders ...*PipelineEventCreate) *PipelineEventCreateBulk {
	return &PipelineEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineEventClient) MapCreateBulk(slice any, setFunc func(*PipelineEventCreate, int)) *PipelineEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineEventCreateBulk{err: fmt.Errorf("calling to PipelineEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineEvent.
func (c *PipelineEventClient) Update() *PipelineEventUpdate {
	mutation := newPipelineEventMutation(c.config, OpUpdate)
	return &PipelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineEventClient) UpdateOne(_m *PipelineEvent) *PipelineEventUpdateOne {
	mutation := newPipelineEventMutation(c.config, OpUpdateOne, withPipelineEvent(_m))
	return &PipelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineEventClient) UpdateOneID(id int) *PipelineEventUpdateOne {
	mutation := newPipelineEventMutation(c.config, OpUpdateOne, withPipelineEventID(id))
	return &PipelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineEvent.
func (c *PipelineEventClient) Delete() *PipelineEventDelete {
	mutation := newPipelineEventMutation(c.config, OpDelete)
	return &PipelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineEventClient) DeleteOne(_m *PipelineEvent) *PipelineEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineEventClient) DeleteOneID(id int) *PipelineEventDeleteOne {
	builder := c.Delete().Where(pipelineevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineEventDeleteOne{builder}
}

// Query returns a query builder for PipelineEvent.
func (c *PipelineEventClient) Query() *PipelineEventQuery {
	return &PipelineEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineEvent entity by its id.
func (c *PipelineEventClient) Get(ctx context.Context, id int) (*PipelineEvent, error) {
	return c.Query().Where(pipelineevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineEventClient) GetX(ctx context.Context, id int) *PipelineEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a PipelineEvent.
func (c *PipelineEventClient) QueryPatient(_m *PipelineEvent) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelineevent.Table, pipelineevent.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelineevent.PatientTable, pipelineevent.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineEventClient) Hooks() []Hook {
	return c.hooks.PipelineEvent
}

// Interceptors returns the client interceptors.
func (c *PipelineEventClient) Interceptors() []Interceptor {
	return c.inters.PipelineEvent
}

func (c *PipelineEventClient) mutate(ctx context.Context, m *PipelineEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineEvent mutation op: %q", m.Op())
	}
}

// ProcessingLogClient is a client for the ProcessingLog schema.
type ProcessingLogClient struct {
	config
}

// NewProcessingLogClient returns a client for the ProcessingLog from the given config.
func NewProcessingLogClient(c config) *ProcessingLogClient {
	return &ProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglog.Hooks(f(g(h())))`.
func (c *ProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLog = append(c.hooks.ProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglog.Intercept(f(g(h())))`.
func (c *ProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLog = append(c.inters.ProcessingLog, interceptors...)
}

// Create returns a builder for creating a ProcessingLog entity.
func (c *ProcessingLogClient) Create() *ProcessingLogCreate {
	mutation := newProcessingLogMutation(c.config, OpCreate)
	return &ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLog entities.
func (c *ProcessingLogClient) CreateBulk(builders ...*ProcessingLogCreate) *ProcessingLogCreateBulk {
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLogClient) MapCreateBulk(slice any, setFunc func(*ProcessingLogCreate, int)) *ProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLogCreateBulk{err: fmt.Errorf("calling to ProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLog.
func (c *ProcessingLogClient) Update() *ProcessingLogUpdate {
	mutation := newProcessingLogMutation(c.config, OpUpdate)
	return &ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLogClient) UpdateOne(_m *ProcessingLog) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLog(_m))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLogClient) UpdateOneID(id int) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLogID(id))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLog.
func (c *ProcessingLogClient) Delete() *ProcessingLogDelete {
	mutation := newProcessingLogMutation(c.config, OpDelete)
	return &ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLogClient) DeleteOne(_m *ProcessingLog) *ProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLogClient) DeleteOneID(id int) *ProcessingLogDeleteOne {
	builder := c.Delete().Where(processinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLogDeleteOne{builder}
}

// Query returns a query builder for ProcessingLog.
func (c *ProcessingLogClient) Query() *ProcessingLogQuery {
	return &ProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLog entity by its id.
func (c *ProcessingLogClient) Get(ctx context.Context, id int) (*ProcessingLog, error) {
	return c.Query().Where(processinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLogClient) GetX(ctx context.Context, id int) *ProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ProcessingLog.
func (c *ProcessingLogClient) QuerySession(_m *ProcessingLog) *TherapySessionQuery {
	query := (&TherapySessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processinglog.Table, processinglog.FieldID, id),
			sqlgraph.To(therapysession.Table, therapysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processinglog.SessionTable, processinglog.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingLogClient) Hooks() []Hook {
	return c.hooks.ProcessingLog
}

// Interceptors returns the client interceptors.
func (c *ProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLog
}

func (c *ProcessingLogClient) mutate(ctx context.Context, m *ProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLog mutation op: %q", m.Op())
	}
}

// TherapySessionClient is a client for the TherapySession schema.
type TherapySessionClient struct {
	config
}

// NewTherapySessionClient returns a client for the TherapySession from the given config.
func NewTherapySessionClient(c config) *TherapySessionClient {
	return &TherapySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `therapysession.Hooks(f(g(h())))`.
func (c *TherapySessionClient) Use(hooks ...Hook) {
	c.hooks.TherapySession = append(c.hooks.TherapySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `therapysession.Intercept(f(g(h())))`.
func (c *TherapySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TherapySession = append(c.inters.TherapySession, interceptors...)
}

// Create returns a builder for creating a TherapySession entity.
func (c *TherapySessionClient) Create() *TherapySessionCreate {
	mutation := newTherapySessionMutation(c.config, OpCreate)
	return &TherapySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TherapySession entities.
func (c *TherapySessionClient) CreateBulk(builders ...*TherapySessionCreate) *TherapySessionCreateBulk {
	return &TherapySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TherapySessionClient) MapCreateBulk(slice any, setFunc func(*TherapySessionCreate, int)) *TherapySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TherapySessionCreateBulk{err: fmt.Errorf("calling to TherapySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TherapySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TherapySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TherapySession.
func (c *TherapySessionClient) Update() *TherapySessionUpdate {
	mutation := newTherapySessionMutation(c.config, OpUpdate)
	return &TherapySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TherapySessionClient) UpdateOne(_m *TherapySession) *TherapySessionUpdateOne {
	mutation := newTherapySessionMutation(c.config, OpUpdateOne, withTherapySession(_m))
	return &TherapySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TherapySessionClient) UpdateOneID(id string) *TherapySessionUpdateOne {
	mutation := newTherapySessionMutation(c.config, OpUpdateOne, withTherapySessionID(id))
	return &TherapySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TherapySession.
func (c *TherapySessionClient) Delete() *TherapySessionDelete {
	mutation := newTherapySessionMutation(c.config, OpDelete)
	return &TherapySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TherapySessionClient) DeleteOne(_m *TherapySession) *TherapySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TherapySessionClient) DeleteOneID(id string) *TherapySessionDeleteOne {
	builder := c.Delete().Where(therapysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TherapySessionDeleteOne{builder}
}

// Query returns a query builder for TherapySession.
func (c *TherapySessionClient) Query() *TherapySessionQuery {
	return &TherapySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTherapySession},
		inters: c.Interceptors(),
	}
}

// Get returns a TherapySession entity by its id.
func (c *TherapySessionClient) Get(ctx context.Context, id string) (*TherapySession, error) {
	return c.Query().Where(therapysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TherapySessionClient) GetX(ctx context.Context, id string) *TherapySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a TherapySession.
func (c *TherapySessionClient) QueryPatient(_m *TherapySession) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(therapysession.Table, therapysession.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, therapysession.PatientTable, therapysession.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProcessingLogs queries the processing_logs edge of a TherapySession.
func (c *TherapySessionClient) QueryProcessingLogs(_m *TherapySession) *ProcessingLogQuery {
	query := (&ProcessingLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(therapysession.Table, therapysession.FieldID, id),
			sqlgraph.To(processinglog.Table, processinglog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, therapysession.ProcessingLogsTable, therapysession.ProcessingLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TherapySessionClient) Hooks() []Hook {
	return c.hooks.TherapySession
}

// Interceptors returns the client interceptors.
func (c *TherapySessionClient) Interceptors() []Interceptor {
	return c.inters.TherapySession
}

func (c *TherapySessionClient) mutate(ctx context.Context, m *TherapySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TherapySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TherapySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TherapySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TherapySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TherapySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BridgeVersion, GenerationCost, GenerationMetadata, JourneyVersion, Patient,
		PatientBridge, PatientJourney, PipelineEvent, ProcessingLog,
		TherapySession []ent.Hook
	}
	inters struct {
		BridgeVersion, GenerationCost, GenerationMetadata, JourneyVersion, Patient,
		PatientBridge, PatientJourney, PipelineEvent, ProcessingLog,
		TherapySession []ent.Interceptor
	}
)
