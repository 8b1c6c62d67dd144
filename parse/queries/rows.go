package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Rows is a cursor over the rows of one table.
type Rows interface {
	Columns() []string
	Next() bool
	// Values returns the current row. NULL is nil.
	Values() ([]any, error)
	Err() error
	Close() error
}

type pgxRows struct {
	ctx  context.Context
	tx   pgx.Tx
	rows pgx.Rows
}

func (r *pgxRows) Columns() []string {
	fields := r.rows.FieldDescriptions()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func (r *pgxRows) Next() bool { return r.rows.Next() }
func (r *pgxRows) Err() error  { return r.rows.Err() }

func (r *pgxRows) Values() ([]any, error) {
	values, err := r.rows.Values()
	if err != nil {
		return nil, err
	}
	return rawJSONValues(r.rows.FieldDescriptions(), r.rows.RawValues(), values), nil
}

// rawJSONValues заменяет декодированные json и jsonb текстом, который отдал
// сервер. Повторная сериализация меняет порядок ключей и точность чисел.
func rawJSONValues(fields []pgconn.FieldDescription, raw [][]byte, values []any) []any {
	for i, f := range fields {
		if i >= len(raw) || i >= len(values) || raw[i] == nil {
			continue
		}
		switch f.DataTypeOID {
		case pgtype.JSONOID:
			values[i] = string(raw[i])
		case pgtype.JSONBOID:
			text := raw[i]
			if f.Format == pgtype.BinaryFormatCode && len(text) > 0 {
				// бинарный jsonb начинается с номера версии формата
				text = text[1:]
			}
			values[i] = string(text)
		}
	}
	return values
}

// Close закрывает курсор и откатывает читающую транзакцию.
func (r *pgxRows) Close() error {
	r.rows.Close()
	err := r.rows.Err()
	if rbErr := r.tx.Rollback(r.ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		err = errors.Join(err, rbErr)
	}
	return err
}

type sqlRows struct {
	rows    *sql.Rows
	columns []string
	types   []string
}

func newSQLRows(rows *sql.Rows) (*sqlRows, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Join(err, rows.Close())
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Join(err, rows.Close())
	}
	types := make([]string, 0, len(colTypes))
	for _, ct := range colTypes {
		types = append(types, strings.ToUpper(ct.DatabaseTypeName()))
	}
	return &sqlRows{rows: rows, columns: columns, types: types}, nil
}

func (r *sqlRows) Columns() []string { return r.columns }
func (r *sqlRows) Next() bool        { return r.rows.Next() }
func (r *sqlRows) Err() error        { return r.rows.Err() }
func (r *sqlRows) Close() error      { return r.rows.Close() }

func (r *sqlRows) Values() ([]any, error) {
	values := make([]any, len(r.columns))
	dest := make([]any, len(r.columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := r.rows.Scan(dest...); err != nil {
		return nil, err
	}
	for i, v := range values {
		b, ok := v.([]byte)
		if !ok {
			continue
		}
		switch r.types[i] {
		case "DECIMAL", "NUMERIC", "MONEY", "SMALLMONEY":
			// драйвер отдает десятичные числа текстом
			values[i] = string(b)
		case "UNIQUEIDENTIFIER":
			var id mssql.UniqueIdentifier
			if err := id.Scan(b); err != nil {
				return nil, err
			}
			values[i] = id.String()
		}
	}
	return values, nil
}
