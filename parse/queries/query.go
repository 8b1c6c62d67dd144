package queries

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jackc/pgx/v5"
)

// Executor выполняет запросы к PostgreSQL.
type Executor interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// SQLExecutor выполняет запросы через database/sql.
type SQLExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Scanner is the part of pgx.Rows and *sql.Rows used to read one row.
type Scanner interface {
	Scan(dest ...any) error
}

type Error struct {
	Err     error
	Message string

	Query string
	Args  []any
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e Error) Unwrap() error { return e.Err }

func (e Error) Pretty() string {
	return fmt.Sprintf("%s: %v:\nquery:\n%s\n\n===\nargs: %s", e.Message, e.Err, e.Query, spew.Sdump(e.Args...))
}

type rowIterator interface {
	Scanner
	Next() bool
	Err() error
}

func QueryAll[T any](
	ctx context.Context,
	exec Executor,
	scan func(s Scanner, v *T) error,
	query string,
	args ...any,
) ([]T, error) {
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, Error{Err: err, Message: "query", Query: query, Args: args}
	}
	defer rows.Close()
	return collect(rows, scan, query, args)
}

// QueryAllSQL is QueryAll for database/sql connections.
func QueryAllSQL[T any](
	ctx context.Context,
	exec SQLExecutor,
	scan func(s Scanner, v *T) error,
	query string,
	args ...any,
) ([]T, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, Error{Err: err, Message: "query", Query: query, Args: args}
	}
	defer rows.Close()
	return collect(rows, scan, query, args)
}

func collect[T any](
	rows rowIterator,
	scan func(s Scanner, v *T) error,
	query string,
	args []any,
) ([]T, error) {
	var results []T

	var rowNum int
	for rows.Next() {
		rowNum++
		var value T
		if err := scan(rows, &value); err != nil {
			return nil, Error{
				Err:     err,
				Message: fmt.Sprintf("scan %d", rowNum),
				Query:   query,
				Args:    args,
			}
		}
		results = append(results, value)
	}
	if err := rows.Err(); err != nil {
		return nil, Error{Err: err, Message: "rows", Query: query, Args: args}
	}
	return results, nil
}
