package queries

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Feresey/schemascript/schema"
)

// Postgres читает каталог PostgreSQL.
type Postgres struct {
	conn Executor
}

func NewPostgres(conn Executor) *Postgres {
	return &Postgres{conn: conn}
}

//go:embed sql/postgres/schemas.sql
var pgSchemasSQL string

func (q *Postgres) Schemas(ctx context.Context) ([]Schema, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Schema) error {
		return s.Scan(&v.Name, &v.Owner)
	}, pgSchemasSQL)
}

//go:embed sql/postgres/roles.sql
var pgRolesSQL string

func (q *Postgres) Roles(ctx context.Context) ([]Role, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Role) error {
		return s.Scan(&v.Name, &v.Script)
	}, pgRolesSQL)
}

//go:embed sql/postgres/users.sql
var pgUsersSQL string

func (q *Postgres) Users(ctx context.Context) ([]User, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *User) error {
		return s.Scan(&v.Name, &v.Login, &v.DefaultSchema)
	}, pgUsersSQL)
}

//go:embed sql/postgres/tables.sql
var pgTablesSQL string

func (q *Postgres) Tables(ctx context.Context) ([]Table, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Table) error {
		return s.Scan(&v.Schema, &v.Name)
	}, pgTablesSQL)
}

//go:embed sql/postgres/columns.sql
var pgColumnsSQL string

func (q *Postgres) Columns(ctx context.Context) ([]Column, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Column) error {
		return s.Scan(
			&v.Schema,
			&v.Table,

			&v.ColNum,
			&v.Name,
			&v.Type,
			&v.Nullable,

			&v.Default,
			&v.Identity,
			&v.Computed,
		)
	}, pgColumnsSQL)
}

//go:embed sql/postgres/constraints.sql
var pgConstraintsSQL string

func (q *Postgres) Constraints(ctx context.Context) ([]Constraint, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Constraint) error {
		err := s.Scan(
			&v.Schema,
			&v.Table,
			&v.Name,
			&v.Type,

			&v.Clustered,
			&v.Columns,

			&v.RefSchema,
			&v.RefTable,
			&v.RefColumns,
			&v.OnDelete,
			&v.OnUpdate,

			&v.Definition,
		)
		if err != nil {
			return err
		}
		// pg_get_constraintdef возвращает "CHECK (...)"
		if v.Definition.Valid {
			v.Definition.String = strings.TrimPrefix(v.Definition.String, "CHECK ")
		}
		return nil
	}, pgConstraintsSQL)
}

//go:embed sql/postgres/indexes.sql
var pgIndexesSQL string

func (q *Postgres) Indexes(ctx context.Context) ([]Index, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Index) error {
		return s.Scan(
			&v.Schema,
			&v.Table,
			&v.Name,

			&v.IsUnique,
			&v.Clustered,
			&v.Columns,

			&v.Definition,
		)
	}, pgIndexesSQL)
}

//go:embed sql/postgres/modules.sql
var pgModulesSQL string

func (q *Postgres) Modules(ctx context.Context) ([]Module, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Module) error {
		return s.Scan(
			&v.Schema,
			&v.Name,
			&v.Kind,
			&v.TableSchema,
			&v.TableName,
			&v.Definition,
		)
	}, pgModulesSQL)
}

// Synonyms в PostgreSQL нет.
func (q *Postgres) Synonyms(context.Context) ([]Synonym, error) {
	return nil, nil
}

//go:embed sql/postgres/permissions.sql
var pgPermissionsSQL string

func (q *Postgres) Permissions(ctx context.Context) ([]Permission, error) {
	return QueryAll(ctx, q.conn, func(s Scanner, v *Permission) error {
		return s.Scan(&v.Grantee, &v.State, &v.Privilege, &v.Schema, &v.Object, &v.WithGrantOption)
	}, pgPermissionsSQL)
}

// TableRows streams the table inside a read-only transaction. The hint is
// the isolation level of that transaction.
func (q *Postgres) TableRows(
	ctx context.Context,
	table schema.Identifier,
	orderBy []string,
	hint string,
) (Rows, error) {
	opts := pgx.TxOptions{AccessMode: pgx.ReadOnly}
	if hint != "" {
		level, err := PostgresIsoLevel(hint)
		if err != nil {
			return nil, err
		}
		opts.IsoLevel = level
	}

	query := selectRowsSQL(schema.Postgres, table, orderBy, "")

	tx, err := q.conn.BeginTx(ctx, opts)
	if err != nil {
		return nil, Error{Err: err, Message: "begin", Query: query}
	}
	rows, err := tx.Query(ctx, query)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, Error{Err: err, Message: "query", Query: query}
	}
	return &pgxRows{ctx: ctx, tx: tx, rows: rows}, nil
}

// PostgresIsoLevel maps a table hint to a transaction isolation level.
func PostgresIsoLevel(hint string) (pgx.TxIsoLevel, error) {
	level := pgx.TxIsoLevel(strings.ToLower(strings.Join(strings.Fields(hint), " ")))
	switch level {
	case pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable:
		return level, nil
	default:
		return "", fmt.Errorf("unsupported table hint %q for postgres, expected one of: %s, %s, %s",
			hint, pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable)
	}
}

func selectRowsSQL(d *schema.Dialect, table schema.Identifier, orderBy []string, hint string) string {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(d.Qualify(table))
	if hint != "" {
		sb.WriteString(" WITH (" + hint + ")")
	}
	if len(orderBy) != 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(d.QuoteList(orderBy))
	}
	return sb.String()
}
