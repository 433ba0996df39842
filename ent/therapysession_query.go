// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/attune-health/attune/ent/patient"
	"github.com/attune-health/attune/ent/predicate"
	"github.com/attune-health/attune/ent/processinglog"
	"github.com/attune-health/attune/ent/therapysession"
)

// TherapySessionQuery is the builder for querying TherapySession entities.
type TherapySessionQuery struct {
	config
	ctx                *QueryContext
	order              []therapysession.OrderOption
	inters             []Interceptor
	predicates         []predicate.TherapySession
	withPatient        *PatientQuery
	withProcessingLogs *ProcessingLogQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TherapySessionQuery builder.
func (_q *TherapySessionQuery) Where(ps ...predicate.TherapySession) *TherapySessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TherapySessionQuery) Limit(limit int) *TherapySessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TherapySessionQuery) Offset(offset int) *TherapySessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TherapySessionQuery) Unique(unique bool) *TherapySessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TherapySessionQuery) Order(o ...therapysession.OrderOption) *TherapySessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *TherapySessionQuery) QueryPatient() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(therapysession.Table, therapysession.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, therapysession.PatientTable, therapysession.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProcessingLogs chains the current query on the "processing_logs" edge.
func (_q *TherapySessionQuery) QueryProcessingLogs() *ProcessingLogQuery {
	query := (&ProcessingLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(therapysession.Table, therapysession.FieldID, selector),
			sqlgraph.To(processinglog.Table, processinglog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, therapysession.ProcessingLogsTable, therapysession.ProcessingLogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TherapySession entity from the query.
// Returns a *NotFoundError when no TherapySession was found.
func (_q *TherapySessionQuery) First(ctx context.Context) (*TherapySession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{therapysession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TherapySessionQuery) FirstX(ctx context.Context) *TherapySession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TherapySession ID from the query.
// Returns a *NotFoundError when no TherapySession ID was found.
func (_q *TherapySessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{therapysession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TherapySessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TherapySession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TherapySession entity is found.
// Returns a *NotFoundError when no TherapySession entities are found.
func (_q *TherapySessionQuery) Only(ctx context.Context) (*TherapySession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{therapysession.Label}
	default:
		return nil, &NotSingularError{therapysession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TherapySessionQuery) OnlyX(ctx context.Context) *TherapySession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TherapySession ID in the query.
// Returns a *NotSingularError when more than one TherapySession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TherapySessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{therapysession.Label}
	default:
		err = &NotSingularError{therapysession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TherapySessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TherapySessions.
func (_q *TherapySessionQuery) All(ctx context.Context) ([]*TherapySession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TherapySession, *TherapySessionQuery]()
	return withInterceptors[[]*TherapySession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TherapySessionQuery) AllX(ctx context.Context) []*TherapySession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TherapySession IDs.
func (_q *TherapySessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(therapysession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TherapySessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TherapySessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TherapySessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TherapySessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TherapySessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TherapySessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TherapySessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TherapySessionQuery) Clone() *TherapySessionQuery {
	if _q == nil {
		return nil
	}
	return &TherapySessionQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]therapysession.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.TherapySession{}, _q.predicates...),
		withPatient:        _q.withPatient.Clone(),
		withProcessingLogs: _q.withProcessingLogs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TherapySessionQuery) WithPatient(opts ...func(*PatientQuery)) *TherapySessionQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithProcessingLogs tells the query-builder to eager-load the nodes that are connected to
// the "processing_logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TherapySessionQuery) WithProcessingLogs(opts ...func(*ProcessingLogQuery)) *TherapySessionQuery {
	query := (&ProcessingLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProcessingLogs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PatientID string `json:"patient_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TherapySession.Query().
//		GroupBy(therapysession.FieldPatientID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TherapySessionQuery) GroupBy(field string, fields ...string) *TherapySessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TherapySessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = therapysession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PatientID string `json:"patient_id,omitempty"`
//	}
//
//	client.TherapySession.Query().
//		Select(therapysession.FieldPatientID).
//		Scan(ctx, &v)
func (_q *TherapySessionQuery) Select(fields ...string) *TherapySessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TherapySessionSelect{TherapySessionQuery: _q}
	sbuild.label = therapysession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TherapySessionSelect configured with the given aggregations.
func (_q *TherapySessionQuery) Aggregate(fns ...AggregateFunc) *TherapySessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TherapySessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !therapysession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TherapySessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TherapySession, error) {
	var (
		nodes       = []*TherapySession{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPatient != nil,
			_q.withProcessingLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TherapySession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TherapySession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPatient; query != nil {
		if err := _q.loadPatient(ctx, query, nodes, nil,
			func(n *TherapySession, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProcessingLogs; query != nil {
		if err := _q.loadProcessingLogs(ctx, query, nodes,
			func(n *TherapySession) { n.Edges.ProcessingLogs = []*ProcessingLog{} },
			func(n *TherapySession, e *ProcessingLog) { n.Edges.ProcessingLogs = append(n.Edges.ProcessingLogs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TherapySessionQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*TherapySession, init func(*TherapySession), assign func(*TherapySession, *Patient)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TherapySession)
	for i := range nodes {
		fk := nodes[i].PatientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "patient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TherapySessionQuery) loadProcessingLogs(ctx context.Context, query *ProcessingLogQuery, nodes []*TherapySession, init func(*TherapySession), assign func(*TherapySession, *ProcessingLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TherapySession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processinglog.FieldSessionID)
	}
	query.Where(predicate.ProcessingLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(therapysession.ProcessingLogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TherapySessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TherapySessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(therapysession.Table, therapysession.Columns, sqlgraph.NewFieldSpec(therapysession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapysession.FieldID)
		for i := range fields {
			if fields[i] != therapysession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(therapysession.FieldPatientID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TherapySessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(therapysession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = therapysession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *TherapySessionQuery) ForUpdate(opts ...sql.LockOption) *TherapySessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *TherapySessionQuery) ForShare(opts ...sql.LockOption) *TherapySessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TherapySessionGroupBy is the group-by builder for TherapySession entities.
type TherapySessionGroupBy struct {
	selector
	build *TherapySessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TherapySessionGroupBy) Aggregate(fns ...AggregateFunc) *TherapySessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TherapySessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TherapySessionQuery, *TherapySessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TherapySessionGroupBy) sqlScan(ctx context.Context, root *TherapySessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TherapySessionSelect is the builder for selecting fields of TherapySession entities.
type TherapySessionSelect struct {
	*TherapySessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TherapySessionSelect) Aggregate(fns ...AggregateFunc) *TherapySessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TherapySessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TherapySessionQuery, *TherapySessionSelect](ctx, _s.TherapySessionQuery, _s, _s.inters, v)
}

func (_s *TherapySessionSelect) sqlScan(ctx context.Context, root *TherapySessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
