package queries

import "database/sql"

// Строки каталога, общие для всех СУБД.

type Schema struct {
	Name  string
	Owner sql.NullString
}

type Role struct {
	Name string
	// Скрипт создания роли, построенный самой СУБД
	Script string
}

type User struct {
	Name          string
	Login         sql.NullString
	DefaultSchema sql.NullString
}

type Table struct {
	Schema string
	Name   string
}

type Column struct {
	Schema string
	Table  string

	ColNum   int
	Name     string
	Type     string
	Nullable bool

	Default  sql.NullString
	Identity sql.NullString
	Computed sql.NullString
}

// Типы ограничений, как их называет pg_constraint.contype.
const (
	ConstraintPrimaryKey = "p"
	ConstraintUnique     = "u"
	ConstraintForeignKey = "f"
	ConstraintCheck      = "c"
)

type Constraint struct {
	Schema string
	Table  string
	Name   string
	Type   string

	Clustered bool
	Columns   []string

	RefSchema  sql.NullString
	RefTable   sql.NullString
	RefColumns []string
	OnDelete   sql.NullString
	OnUpdate   sql.NullString

	// Выражение CHECK
	Definition sql.NullString
}

type Index struct {
	Schema string
	Table  string
	Name   string

	IsUnique  bool
	Clustered bool
	Columns   []string

	Definition sql.NullString
}

// Виды модулей.
const (
	ModuleView      = "view"
	ModuleFunction  = "function"
	ModuleProcedure = "procedure"
	ModuleTrigger   = "trigger"
)

type Module struct {
	Schema string
	Name   string
	Kind   string

	// Только для триггеров
	TableSchema sql.NullString
	TableName   sql.NullString

	Definition sql.NullString
}

type Synonym struct {
	Schema string
	Name   string
	Target string
}

type Permission struct {
	Grantee   string
	State     string
	Privilege string
	Schema    string
	Object    string
	// WITH GRANT OPTION
	WithGrantOption bool
}
