package queries

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/Feresey/schemascript/schema"
)

// SQLServer читает каталог Microsoft SQL Server.
type SQLServer struct {
	conn SQLExecutor
}

func NewSQLServer(conn SQLExecutor) *SQLServer {
	return &SQLServer{conn: conn}
}

//go:embed sql/sqlserver/schemas.sql
var msSchemasSQL string

func (q *SQLServer) Schemas(ctx context.Context) ([]Schema, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Schema) error {
		return s.Scan(&v.Name, &v.Owner)
	}, msSchemasSQL)
}

//go:embed sql/sqlserver/roles.sql
var msRolesSQL string

func (q *SQLServer) Roles(ctx context.Context) ([]Role, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Role) error {
		return s.Scan(&v.Name, &v.Script)
	}, msRolesSQL)
}

//go:embed sql/sqlserver/users.sql
var msUsersSQL string

func (q *SQLServer) Users(ctx context.Context) ([]User, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *User) error {
		return s.Scan(&v.Name, &v.Login, &v.DefaultSchema)
	}, msUsersSQL)
}

//go:embed sql/sqlserver/tables.sql
var msTablesSQL string

func (q *SQLServer) Tables(ctx context.Context) ([]Table, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Table) error {
		return s.Scan(&v.Schema, &v.Name)
	}, msTablesSQL)
}

//go:embed sql/sqlserver/columns.sql
var msColumnsSQL string

func (q *SQLServer) Columns(ctx context.Context) ([]Column, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Column) error {
		var (
			typeName         string
			maxLength        int
			precision, scale int
		)
		err := s.Scan(
			&v.Schema,
			&v.Table,

			&v.ColNum,
			&v.Name,
			&typeName,
			&maxLength,
			&precision,
			&scale,
			&v.Nullable,

			&v.Default,
			&v.Identity,
			&v.Computed,
		)
		if err != nil {
			return err
		}
		v.Type = SQLServerType(typeName, maxLength, precision, scale)
		return nil
	}, msColumnsSQL)
}

// SQLServerType formats a column type from sys.columns attributes.
func SQLServerType(name string, maxLength, precision, scale int) string {
	switch strings.ToLower(name) {
	case "varchar", "char", "varbinary", "binary":
		if maxLength < 0 {
			return name + "(max)"
		}
		return fmt.Sprintf("%s(%d)", name, maxLength)
	case "nvarchar", "nchar":
		if maxLength < 0 {
			return name + "(max)"
		}
		// длина хранится в байтах
		return fmt.Sprintf("%s(%d)", name, maxLength/2)
	case "decimal", "numeric":
		return fmt.Sprintf("%s(%d,%d)", name, precision, scale)
	case "datetime2", "time", "datetimeoffset":
		return fmt.Sprintf("%s(%d)", name, scale)
	default:
		return name
	}
}

type constraintColumn struct {
	Constraint
	Column    sql.NullString
	Ordinal   int
	RefColumn sql.NullString
}

//go:embed sql/sqlserver/constraints.sql
var msConstraintsSQL string

func (q *SQLServer) Constraints(ctx context.Context) ([]Constraint, error) {
	rows, err := QueryAllSQL(ctx, q.conn, func(s Scanner, v *constraintColumn) error {
		return s.Scan(
			&v.Schema,
			&v.Table,
			&v.Name,
			&v.Type,
			&v.Clustered,

			&v.Column,
			&v.Ordinal,

			&v.RefSchema,
			&v.RefTable,
			&v.RefColumn,
			&v.OnDelete,
			&v.OnUpdate,

			&v.Definition,
		)
	}, msConstraintsSQL)
	if err != nil {
		return nil, err
	}
	return groupConstraintColumns(rows), nil
}

// groupConstraintColumns merges per-column rows of one constraint. Rows must
// be ordered by table, constraint name and column ordinal.
func groupConstraintColumns(rows []constraintColumn) []Constraint {
	var res []Constraint
	for _, row := range rows {
		last := len(res) - 1
		if last < 0 ||
			res[last].Schema != row.Schema ||
			res[last].Table != row.Table ||
			res[last].Name != row.Name {
			c := row.Constraint
			c.OnDelete = referentialAction(c.OnDelete)
			c.OnUpdate = referentialAction(c.OnUpdate)
			c.Columns = nil
			c.RefColumns = nil
			res = append(res, c)
			last++
		}
		if row.Column.Valid {
			res[last].Columns = append(res[last].Columns, row.Column.String)
		}
		if row.RefColumn.Valid {
			res[last].RefColumns = append(res[last].RefColumns, row.RefColumn.String)
		}
	}
	return res
}

// referentialAction converts NO_ACTION / SET_NULL to the DDL form.
func referentialAction(action sql.NullString) sql.NullString {
	if !action.Valid || action.String == "NO_ACTION" {
		return sql.NullString{}
	}
	action.String = strings.ReplaceAll(action.String, "_", " ")
	return action
}

type indexColumn struct {
	Index
	Column  string
	Ordinal int
}

//go:embed sql/sqlserver/indexes.sql
var msIndexesSQL string

func (q *SQLServer) Indexes(ctx context.Context) ([]Index, error) {
	rows, err := QueryAllSQL(ctx, q.conn, func(s Scanner, v *indexColumn) error {
		return s.Scan(
			&v.Schema,
			&v.Table,
			&v.Name,
			&v.IsUnique,
			&v.Clustered,

			&v.Column,
			&v.Ordinal,
		)
	}, msIndexesSQL)
	if err != nil {
		return nil, err
	}

	var res []Index
	for _, row := range rows {
		last := len(res) - 1
		if last < 0 ||
			res[last].Schema != row.Schema ||
			res[last].Table != row.Table ||
			res[last].Name != row.Name {
			res = append(res, row.Index)
			last++
		}
		res[last].Columns = append(res[last].Columns, row.Column)
	}
	return res, nil
}

//go:embed sql/sqlserver/modules.sql
var msModulesSQL string

func (q *SQLServer) Modules(ctx context.Context) ([]Module, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Module) error {
		return s.Scan(
			&v.Schema,
			&v.Name,
			&v.Kind,
			&v.TableSchema,
			&v.TableName,
			&v.Definition,
		)
	}, msModulesSQL)
}

//go:embed sql/sqlserver/synonyms.sql
var msSynonymsSQL string

func (q *SQLServer) Synonyms(ctx context.Context) ([]Synonym, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Synonym) error {
		return s.Scan(&v.Schema, &v.Name, &v.Target)
	}, msSynonymsSQL)
}

//go:embed sql/sqlserver/permissions.sql
var msPermissionsSQL string

func (q *SQLServer) Permissions(ctx context.Context) ([]Permission, error) {
	return QueryAllSQL(ctx, q.conn, func(s Scanner, v *Permission) error {
		return s.Scan(&v.Grantee, &v.State, &v.Privilege, &v.Schema, &v.Object, &v.WithGrantOption)
	}, msPermissionsSQL)
}

// TableRows streams the table rows. The hint goes to WITH (...) as is and
// must be validated by the caller.
func (q *SQLServer) TableRows(
	ctx context.Context,
	table schema.Identifier,
	orderBy []string,
	hint string,
) (Rows, error) {
	query := selectRowsSQL(schema.SQLServer, table, orderBy, hint)
	rows, err := q.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, Error{Err: err, Message: "query", Query: query}
	}
	res, err := newSQLRows(rows)
	if err != nil {
		return nil, Error{Err: err, Message: "columns", Query: query}
	}
	return res, nil
}
