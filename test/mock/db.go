package mock

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Statement is one recorded SQL call.
type Statement struct {
	SQL  string
	Args []any
}

// DB is an in-memory stand-in for a pgx pool. Query returns the configured
// rows, QueryRow the configured row, and every statement is recorded.
// It satisfies postgres.Querier.
type DB struct {
	rows    [][]any
	row     []any
	err     error
	pingErr error

	statements []Statement
	mu         sync.Mutex
}

// NewDB creates a DB that returns no rows.
func NewDB() *DB {
	return &DB{}
}

// WithRows configures the positional rows returned by Query.
func (db *DB) WithRows(rows ...[]any) *DB {
	db.rows = rows
	return db
}

// WithRow configures the values scanned by QueryRow. A nil row scans as
// pgx.ErrNoRows.
func (db *DB) WithRow(values ...any) *DB {
	db.row = values
	return db
}

// WithError makes every statement fail with err.
func (db *DB) WithError(err error) *DB {
	db.err = err
	return db
}

// WithPingError makes Ping fail with err.
func (db *DB) WithPingError(err error) *DB {
	db.pingErr = err
	return db
}

func (db *DB) record(sql string, args []any) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.statements = append(db.statements, Statement{SQL: sql, Args: args})
}

// Query implements postgres.Querier.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.record(sql, args)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if db.err != nil {
		return nil, db.err
	}
	return &rows{rows: db.rows}, nil
}

// QueryRow implements postgres.Querier.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.record(sql, args)
	if err := ctx.Err(); err != nil {
		return row{err: err}
	}
	if db.err != nil {
		return row{err: db.err}
	}
	if db.row == nil {
		return row{err: pgx.ErrNoRows}
	}
	return row{values: db.row}
}

// Exec implements postgres.Querier.
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.record(sql, args)
	if err := ctx.Err(); err != nil {
		return pgconn.CommandTag{}, err
	}
	if db.err != nil {
		return pgconn.CommandTag{}, db.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

// Ping reports the configured ping error.
func (db *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.pingErr
}

// Statements returns a copy of the recorded statements in call order.
func (db *DB) Statements() []Statement {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]Statement, len(db.statements))
	copy(out, db.statements)
	return out
}

// LastStatement returns the most recent statement.
func (db *DB) LastStatement() (Statement, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.statements) == 0 {
		return Statement{}, false
	}
	return db.statements[len(db.statements)-1], true
}

type rows struct {
	rows   [][]any
	idx    int
	closed bool
}

func (r *rows) Close()                                       { r.closed = true }
func (r *rows) Err() error                                   { return nil }
func (r *rows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *rows) RawValues() [][]byte                          { return nil }
func (r *rows) Conn() *pgx.Conn                              { return nil }

func (r *rows) Next() bool {
	if r.closed || r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *rows) Values() ([]any, error) {
	return r.rows[r.idx-1], nil
}

func (r *rows) Scan(dest ...any) error {
	return scan(r.rows[r.idx-1], dest)
}

type row struct {
	values []any
	err    error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scan(r.values, dest)
}

func scan(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: cannot assign %T to %s", values[i], target.Type())
		}
		target.Set(v)
	}
	return nil
}

// LegRow returns a nonstop leg as a positional row in the column order of the
// leg search query.
func LegRow(legID, carrier, departure, arrival string) []any {
	return []any{
		legID,
		"JFK",
		"LAX",
		"2022-04-17",
		"PT6H",
		departure,
		arrival,
		carrier,
		"coach",
		"Airbus A321",
		int64(21600),
		float64(250),
		float64(290.5),
		int64(9),
		false,
		true,
		true,
		int64(0),
	}
}
