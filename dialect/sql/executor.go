package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/syssam/daogen"
	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/dialect"
	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema/field"
)

// Record holds the values of one row keyed by field name.
type Record map[string]any

// Executor runs the statements of a plan against a driver.
type Executor struct {
	drv  dialect.ExecQuerier
	plan *gen.Plan
}

// NewExecutor returns an executor for the given plan.
func NewExecutor(drv dialect.ExecQuerier, plan *gen.Plan) *Executor {
	return &Executor{drv: drv, plan: plan}
}

// Plan returns the plan of the executor.
func (e *Executor) Plan() *gen.Plan { return e.plan }

// CreateTable creates the table of the plan if it does not exist.
func (e *Executor) CreateTable(ctx context.Context) error {
	if err := e.drv.Exec(ctx, e.plan.Statements.Create, []any{}, nil); err != nil {
		return e.mutationErr(gen.OpCreate, err)
	}
	return nil
}

// Insert inserts the record.
func (e *Executor) Insert(ctx context.Context, rec Record) error {
	st := e.plan.Statements.Insert
	args, err := e.bind(st, rec)
	if err != nil {
		return err
	}
	if err := e.drv.Exec(ctx, st.Query, args, nil); err != nil {
		return e.mutationErr(st.Op, err)
	}
	return nil
}

// Get returns the row with the given key, or a NotFoundError.
func (e *Executor) Get(ctx context.Context, key any) (Record, error) {
	st := e.plan.Statements.Select
	recs, err := e.query(ctx, st, []any{key})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, daogen.NewNotFoundErrorWithKey(e.plan.Entity, key)
	}
	return recs[0], nil
}

// List returns all rows of the table.
func (e *Executor) List(ctx context.Context) ([]Record, error) {
	return e.query(ctx, e.plan.Statements.List, []any{})
}

// Update writes the non-key fields of the record to the row with the same
// key. It is a no-op for tables with no column besides the key.
func (e *Executor) Update(ctx context.Context, rec Record) error {
	st := e.plan.Statements.Update
	if st == nil {
		return nil
	}
	args, err := e.bind(st, rec)
	if err != nil {
		return err
	}
	if err := e.drv.Exec(ctx, st.Query, args, nil); err != nil {
		return e.mutationErr(st.Op, err)
	}
	return nil
}

// Delete deletes the row with the given key. It returns a NotFoundError if
// no row was deleted.
func (e *Executor) Delete(ctx context.Context, key any) error {
	st := e.plan.Statements.Delete
	var res Result
	if err := e.drv.Exec(ctx, st.Query, []any{key}, &res); err != nil {
		return e.mutationErr(st.Op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return e.mutationErr(st.Op, err)
	}
	if n == 0 {
		return daogen.NewNotFoundErrorWithKey(e.plan.Entity, key)
	}
	return nil
}

// bind orders the record values by the params of the statement.
func (e *Executor) bind(st *gen.Statement, rec Record) ([]any, error) {
	args := make([]any, len(st.Params))
	for i, p := range st.Params {
		v, ok := rec[p.Field]
		if !ok {
			return nil, daogen.NewMissingValueError(e.plan.Entity, p.Field)
		}
		args[i] = v
	}
	return args, nil
}

func (e *Executor) query(ctx context.Context, st *gen.Statement, args []any) ([]Record, error) {
	rows := &Rows{}
	if err := e.drv.Query(ctx, st.Query, args, rows); err != nil {
		return nil, daogen.NewQueryError(e.plan.Entity, string(st.Op), err)
	}
	defer rows.Close()
	var recs []Record
	for rows.Next() {
		rec, err := e.scan(rows)
		if err != nil {
			return nil, daogen.NewQueryError(e.plan.Entity, string(st.Op), err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, daogen.NewQueryError(e.plan.Entity, string(st.Op), err)
	}
	return recs, nil
}

// scan reads the current row following the decode plan.
func (e *Executor) scan(rows *Rows) (Record, error) {
	decode := e.plan.Statements.Decode
	dest := make([]any, len(decode))
	for i, d := range decode {
		dest[i] = holder(d.Accessor)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	rec := make(Record, len(decode))
	for i, d := range decode {
		v, err := convert(value(dest[i]), d.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", d.Column, err)
		}
		rec[d.Field] = v
	}
	return rec, nil
}

// holder returns the scan destination of an accessor.
func holder(a sqltype.Accessor) any {
	switch a {
	case sqltype.AccessorInteger:
		return &NullInt32{}
	case sqltype.AccessorString:
		return &NullString{}
	case sqltype.AccessorBoolean:
		return &NullBool{}
	case sqltype.AccessorFloat, sqltype.AccessorDouble:
		return &NullFloat64{}
	case sqltype.AccessorLong:
		return &NullInt64{}
	case sqltype.AccessorTimestamp:
		return &NullTime{}
	default:
		return new(any)
	}
}

// value unwraps a scanned holder. NULL columns yield nil.
func value(h any) any {
	switch h := h.(type) {
	case *NullInt32:
		if h.Valid {
			return h.Int32
		}
	case *NullString:
		if h.Valid {
			return h.String
		}
	case *NullBool:
		if h.Valid {
			return h.Bool
		}
	case *NullFloat64:
		if h.Valid {
			return h.Float64
		}
	case *NullInt64:
		if h.Valid {
			return h.Int64
		}
	case *NullTime:
		if h.Valid {
			return h.Time
		}
	case *any:
		if b, ok := (*h).([]byte); ok {
			return string(b)
		}
		return *h
	}
	return nil
}

// convert converts a scanned value to the Go type of a field.
func convert(v any, t field.Type) (any, error) {
	if v == nil || t == field.TypeOther {
		return v, nil
	}
	switch t {
	case field.TypeString:
		switch v := v.(type) {
		case string:
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		}
	case field.TypeBoolean:
		switch v := v.(type) {
		case bool:
			return v, nil
		case int64:
			return v != 0, nil
		case int32:
			return v != 0, nil
		}
	case field.TypeTimestamp:
		if v, ok := v.(time.Time); ok {
			return v, nil
		}
	default:
		if !t.Numeric() {
			break
		}
		switch v := v.(type) {
		case int32:
			return numeric(float64(v), int64(v), t), nil
		case int64:
			return numeric(float64(v), v, t), nil
		case float64:
			return numeric(v, int64(v), t), nil
		}
	}
	return nil, fmt.Errorf("cannot convert %T to %s", v, t)
}

// numeric returns the value as the Go type of a numeric field.
func numeric(f float64, i int64, t field.Type) any {
	switch t {
	case field.TypeInteger:
		return int(i)
	case field.TypeLong:
		return i
	case field.TypeShort:
		return int16(i)
	case field.TypeFloat:
		return float32(f)
	default:
		return f
	}
}

func (e *Executor) mutationErr(op gen.Op, err error) error {
	if IsConstraintError(err) {
		err = daogen.NewConstraintError(err.Error(), err)
	}
	return daogen.NewMutationError(e.plan.Entity, string(op), err)
}
