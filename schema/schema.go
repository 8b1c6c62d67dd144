package schema

import (
	"fmt"
	"strings"
)

// Identifier описывает имя элемента.
type Identifier struct {
	// Schema name. Пустая для объектов уровня базы данных (роли, пользователи, схемы)
	Schema string `json:"schema,omitempty"`
	// Имя элемента
	Name string `json:"name,omitempty"`
}

func (i Identifier) String() string {
	if i.Schema == "" {
		return i.Name
	}
	return i.Schema + "." + i.Name
}

// Scriptable is a database object that can produce the script recreating it.
type Scriptable interface {
	// Ident returns the stable name of the object.
	Ident() Identifier
	// ScriptCreate returns the creation script of the object.
	ScriptCreate() (string, error)
}

// TableScoped is implemented by objects that belong to a table.
type TableScoped interface {
	Parent() Identifier
}

// Экранирование частей имени файла. Точка разделяет части, поэтому внутри
// части она экранируется, как и символы, недопустимые в именах файлов.
var fileNamePartEscaper = strings.NewReplacer(
	"%", "%25", ".", "%2E",
	"/", "%2F", `\`, "%5C", ":", "%3A", "*", "%2A",
	"?", "%3F", `"`, "%22", "<", "%3C", ">", "%3E", "|", "%7C",
)

// Key returns the qualified name with every part escaped. Unlike String,
// distinct identifiers never share a key ("a.b"."c" and "a"."b.c").
func (i Identifier) Key() string {
	if i.Schema == "" {
		return fileNamePartEscaper.Replace(i.Name)
	}
	return fileNamePartEscaper.Replace(i.Schema) + "." + fileNamePartEscaper.Replace(i.Name)
}

// FileName returns the file stem under which obj is stored inside its
// category directory. Table scoped objects include the table name because
// their names are only unique per table. Distinct names give distinct stems.
func FileName(obj Scriptable) string {
	id := obj.Ident()
	if ts, ok := obj.(TableScoped); ok {
		return ts.Parent().Key() + "." + fileNamePartEscaper.Replace(id.Name)
	}
	return id.Key()
}

// Role хранит готовый скрипт роли и возвращает его без изменений.
type Role struct {
	Name   string `json:"name,omitempty"`
	Script string `json:"script,omitempty"`
}

func (r *Role) Ident() Identifier { return Identifier{Name: r.Name} }

func (r *Role) ScriptCreate() (string, error) { return r.Script, nil }

// User описывает пользователя базы данных.
type User struct {
	Name Identifier `json:"name,omitempty"`
	// Логин сервера, с которым связан пользователь (может быть пустым)
	Login         string   `json:"login,omitempty"`
	DefaultSchema string   `json:"default_schema,omitempty"`
	Dialect       *Dialect `json:"-"`
}

func (u *User) Ident() Identifier { return u.Name }

func (u *User) ScriptCreate() (string, error) {
	return render(userTemplate, u.Dialect, u)
}

// Schema описывает схему (namespace) базы данных.
type Schema struct {
	Name    Identifier `json:"name,omitempty"`
	Owner   string     `json:"owner,omitempty"`
	Dialect *Dialect   `json:"-"`
}

func (s *Schema) Ident() Identifier { return s.Name }

func (s *Schema) ScriptCreate() (string, error) {
	return render(schemaTemplate, s.Dialect, s)
}

// Table описывает таблицу базы данных.
type Table struct {
	// имя таблицы
	Name Identifier `json:"name,omitempty"`
	// Колонки в порядке их объявления
	Columns []*Column `json:"columns,omitempty"`

	// Главный ключ таблицы (может быть nil)
	PrimaryKey *Constraint `json:"primary_key,omitempty"`
	// Список всех CONSTRAINT-ов текущей таблицы
	Constraints []*Constraint `json:"constraints,omitempty"`
	// Список INDEX-ов, не созданных ограничениями
	Indexes []*Index `json:"indexes,omitempty"`

	Dialect *Dialect `json:"-"`
}

func (t *Table) Ident() Identifier { return t.Name }
func (t *Table) String() string    { return t.Name.String() }

func (t *Table) ScriptCreate() (string, error) {
	return render(tableTemplate, t.Dialect, t)
}

// Column returns the column with the given name or nil.
func (t *Table) Column(name string) *Column {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

// ConstraintsOf returns the table constraints of the given type.
func (t *Table) ConstraintsOf(typ ConstraintType) []*Constraint {
	var res []*Constraint
	for _, c := range t.Constraints {
		if c.Type == typ {
			res = append(res, c)
		}
	}
	return res
}

// UniqueConstraints are declared inline in CREATE TABLE together with the primary key.
func (t *Table) UniqueConstraints() []*Constraint {
	return t.ConstraintsOf(ConstraintTypeUnique)
}

// KeyColumns returns the primary key columns, used to order exported rows.
func (t *Table) KeyColumns() []string {
	if t.PrimaryKey == nil {
		return nil
	}
	return t.PrimaryKey.Columns
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		names = append(names, col.Name)
	}
	return names
}

// Column описывает колонку таблицы.
type Column struct {
	// Порядковый номер колонки
	ColNum int `json:"col_num,omitempty"`
	// Имя колонки
	Name string `json:"name,omitempty"`
	// Тип колонки в синтаксисе СУБД. VARCHAR(100), numeric(10,2)
	Type string `json:"type,omitempty"`
	// Допустимы ли NULL значения колонки
	Nullable bool `json:"nullable,omitempty"`
	// Дефолтное значение
	Default string `json:"default,omitempty"`
	// Определение автоинкремента. IDENTITY(1,1), GENERATED ALWAYS AS IDENTITY
	Identity string `json:"identity,omitempty"`
	// Выражение вычисляемой колонки
	Computed string `json:"computed,omitempty"`
}

// Definition renders the column clause of CREATE TABLE.
func (c *Column) Definition(d *Dialect) string {
	var sb strings.Builder
	sb.WriteString(d.Quote(c.Name))
	if c.Computed != "" && d.IsSQLServer() {
		fmt.Fprintf(&sb, " AS (%s)", c.Computed)
		return sb.String()
	}
	sb.WriteString(" " + c.Type)
	if c.Computed != "" {
		fmt.Fprintf(&sb, " GENERATED ALWAYS AS (%s) STORED", c.Computed)
	}
	if c.Identity != "" {
		sb.WriteString(" " + c.Identity)
	}
	if c.Nullable {
		sb.WriteString(" NULL")
	} else {
		sb.WriteString(" NOT NULL")
	}
	if c.Default != "" && c.Identity == "" && c.Computed == "" {
		sb.WriteString(" DEFAULT " + c.Default)
	}
	return sb.String()
}

type ConstraintType int

const (
	ConstraintTypeUndefined ConstraintType = iota
	ConstraintTypePK
	ConstraintTypeFK
	ConstraintTypeUnique
	ConstraintTypeCheck
)

func (c ConstraintType) String() string {
	switch c {
	case ConstraintTypePK:
		return "PRIMARY KEY"
	case ConstraintTypeFK:
		return "FOREIGN KEY"
	case ConstraintTypeUnique:
		return "UNIQUE"
	case ConstraintTypeCheck:
		return "CHECK"
	default:
		return "UNDEFINED"
	}
}

// Constraint описывает ограничение таблицы.
type Constraint struct {
	// Имя ограничения
	Name Identifier `json:"name,omitempty"`
	// Тип ограничения
	Type ConstraintType `json:"type,omitempty"`
	// Таблица, которой принадлежит ограничение
	Table *Table `json:"-"`
	// Колонки, на которые действует ограничение, в порядке ключа
	Columns []string `json:"columns,omitempty"`
	// Кластеризованный ключ (только SQL Server)
	Clustered bool `json:"clustered,omitempty"`

	// Только для FOREIGN KEY
	Reference        Identifier `json:"reference,omitempty"`
	ReferenceColumns []string   `json:"reference_columns,omitempty"`
	OnDelete         string     `json:"on_delete,omitempty"`
	OnUpdate         string     `json:"on_update,omitempty"`

	// Выражение CHECK
	Expression string `json:"expression,omitempty"`

	Dialect *Dialect `json:"-"`
}

func (c *Constraint) Ident() Identifier { return c.Name }

func (c *Constraint) Parent() Identifier {
	if c.Table == nil {
		return Identifier{Schema: c.Name.Schema}
	}
	return c.Table.Name
}

func (c *Constraint) String() string {
	return fmt.Sprintf("%s.%s", c.Parent(), c.Name.Name)
}

func (c *Constraint) IsForeignKey() bool { return c.Type == ConstraintTypeFK }
func (c *Constraint) IsCheck() bool      { return c.Type == ConstraintTypeCheck }

// Clause renders the constraint as it appears inside CREATE TABLE.
func (c *Constraint) Clause(d *Dialect) (string, error) {
	return render(constraintClauseTemplate, d, c)
}

// ScriptCreate renders ALTER TABLE ... ADD CONSTRAINT.
func (c *Constraint) ScriptCreate() (string, error) {
	if c.Table == nil {
		return "", fmt.Errorf("table not specified for constraint %q", c.Name)
	}
	return render(constraintTemplate, c.Dialect, c)
}

type Index struct {
	// Имя индекса
	Name Identifier `json:"name,omitempty"`
	// Таблица, для которой создан индекс
	Table *Table `json:"-"`
	// Колонки, которые затрагивает индекс
	Columns   []string `json:"columns,omitempty"`
	IsUnique  bool     `json:"is_unique,omitempty"`
	Clustered bool     `json:"clustered,omitempty"`
	// Определение индекса из каталога. Если задано, используется как есть
	Definition string `json:"definition,omitempty"`

	Dialect *Dialect `json:"-"`
}

func (i *Index) Ident() Identifier { return i.Name }

func (i *Index) Parent() Identifier {
	if i.Table == nil {
		return Identifier{Schema: i.Name.Schema}
	}
	return i.Table.Name
}

func (i *Index) ScriptCreate() (string, error) {
	if i.Definition != "" {
		return i.Dialect.Terminate(i.Definition), nil
	}
	if i.Table == nil {
		return "", fmt.Errorf("table not specified for index %q", i.Name)
	}
	return render(indexTemplate, i.Dialect, i)
}

// Module is a catalog object whose creation script is stored by the database
// itself: views, routines and triggers.
type Module struct {
	Name       Identifier `json:"name,omitempty"`
	Definition string     `json:"definition,omitempty"`
	Dialect    *Dialect   `json:"-"`
}

func (m *Module) Ident() Identifier { return m.Name }

func (m *Module) ScriptCreate() (string, error) {
	if strings.TrimSpace(m.Definition) == "" {
		return "", fmt.Errorf("definition of %q is not available", m.Name)
	}
	return m.Dialect.Terminate(m.Definition), nil
}

type View struct {
	Module
}

type RoutineKind int

const (
	RoutineKindFunction RoutineKind = iota + 1
	RoutineKindProcedure
)

// Routine описывает хранимую процедуру или функцию.
type Routine struct {
	Module
	Kind RoutineKind `json:"kind,omitempty"`
}

// Trigger описывает триггер таблицы.
type Trigger struct {
	Module
	Table Identifier `json:"table,omitempty"`
}

func (t *Trigger) Parent() Identifier { return t.Table }

// Synonym описывает синоним (SQL Server).
type Synonym struct {
	Name    Identifier `json:"name,omitempty"`
	Target  string     `json:"target,omitempty"`
	Dialect *Dialect   `json:"-"`
}

func (s *Synonym) Ident() Identifier { return s.Name }

func (s *Synonym) ScriptCreate() (string, error) {
	return render(synonymTemplate, s.Dialect, s)
}

// Grant одна выданная (или запрещенная) привилегия.
type Grant struct {
	// GRANT или DENY
	State     string     `json:"state,omitempty"`
	Privilege string     `json:"privilege,omitempty"`
	Object    Identifier `json:"object,omitempty"`
	// Получатель может передавать привилегию дальше (только для GRANT)
	WithGrantOption bool `json:"with_grant_option,omitempty"`
}

// Permission объединяет все привилегии одного получателя.
type Permission struct {
	Grantee string   `json:"grantee,omitempty"`
	Grants  []Grant  `json:"grants,omitempty"`
	Dialect *Dialect `json:"-"`
}

func (p *Permission) Ident() Identifier { return Identifier{Name: p.Grantee} }

func (p *Permission) ScriptCreate() (string, error) {
	return render(permissionTemplate, p.Dialect, p)
}
