package parse

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/Feresey/schemascript/parse/queries"
	"github.com/Feresey/schemascript/schema"
)

//go:generate mockery --name Queries --inpackage --testonly --with-expecter --quiet
type Queries interface {
	Schemas(context.Context) ([]queries.Schema, error)
	Roles(context.Context) ([]queries.Role, error)
	Users(context.Context) ([]queries.User, error)
	Tables(context.Context) ([]queries.Table, error)
	Columns(context.Context) ([]queries.Column, error)
	Constraints(context.Context) ([]queries.Constraint, error)
	Indexes(context.Context) ([]queries.Index, error)
	Modules(context.Context) ([]queries.Module, error)
	Synonyms(context.Context) ([]queries.Synonym, error)
	Permissions(context.Context) ([]queries.Permission, error)
	TableRows(ctx context.Context, table schema.Identifier, orderBy []string, hint string) (queries.Rows, error)
}

// Parser собирает модель базы данных из строк каталога.
type Parser struct {
	log     *zap.Logger
	q       Queries
	dialect *schema.Dialect
	dbName  string
}

func NewParser(
	q Queries,
	dialect *schema.Dialect,
	dbName string,
	log *zap.Logger,
) *Parser {
	return &Parser{
		log:     log.Named("parser"),
		q:       q,
		dialect: dialect,
		dbName:  dbName,
	}
}

func (p *Parser) Dialect() *schema.Dialect { return p.dialect }

// LoadDatabase читает весь каталог. Порядок важен: колонки, ограничения и
// индексы привязываются к уже загруженным таблицам.
func (p *Parser) LoadDatabase(ctx context.Context) (*schema.Database, error) {
	db := schema.NewDatabase(p.dbName, p.dialect)

	steps := []struct {
		name string
		load func(context.Context, *schema.Database) error
	}{
		{"schemas", p.loadSchemas},
		{"roles", p.loadRoles},
		{"users", p.loadUsers},
		{"tables", p.loadTables},
		{"columns", p.loadColumns},
		{"constraints", p.loadConstraints},
		{"indexes", p.loadIndexes},
		{"modules", p.loadModules},
		{"synonyms", p.loadSynonyms},
		{"permissions", p.loadPermissions},
	}
	for _, step := range steps {
		if err := step.load(ctx, db); err != nil {
			return nil, xerrors.Errorf("load %s: %w", step.name, err)
		}
	}
	return db, nil
}

// TableRows opens a cursor over the table rows ordered by the primary key.
func (p *Parser) TableRows(ctx context.Context, table *schema.Table, hint string) (queries.Rows, error) {
	rows, err := p.q.TableRows(ctx, table.Name, table.KeyColumns(), hint)
	if err != nil {
		p.logQueryError("failed to query table rows", err)
		return nil, err
	}
	return rows, nil
}

func (p *Parser) logQueryError(msg string, err error) {
	var qerr queries.Error
	if xerrors.As(err, &qerr) {
		p.log.Error(msg, zap.String("error", qerr.Pretty()))
		return
	}
	p.log.Error(msg, zap.Error(err))
}

func (p *Parser) loadSchemas(ctx context.Context, db *schema.Database) error {
	schemas, err := p.q.Schemas(ctx)
	if err != nil {
		p.logQueryError("failed to query schemas", err)
		return err
	}
	p.log.Debug("loaded schemas", zap.Int("n", len(schemas)))

	for _, dbschema := range schemas {
		s := &schema.Schema{
			Name:    schema.Identifier{Name: dbschema.Name},
			Owner:   dbschema.Owner.String,
			Dialect: p.dialect,
		}
		db.Schemas[s.Name.Key()] = s
	}
	return nil
}

func (p *Parser) loadRoles(ctx context.Context, db *schema.Database) error {
	roles, err := p.q.Roles(ctx)
	if err != nil {
		p.logQueryError("failed to query roles", err)
		return err
	}
	p.log.Debug("loaded roles", zap.Int("n", len(roles)))

	for _, dbrole := range roles {
		db.Roles[dbrole.Name] = &schema.Role{
			Name:   dbrole.Name,
			Script: p.dialect.Terminate(dbrole.Script),
		}
	}
	return nil
}

func (p *Parser) loadUsers(ctx context.Context, db *schema.Database) error {
	users, err := p.q.Users(ctx)
	if err != nil {
		p.logQueryError("failed to query users", err)
		return err
	}
	p.log.Debug("loaded users", zap.Int("n", len(users)))

	for _, dbuser := range users {
		u := &schema.User{
			Name:          schema.Identifier{Name: dbuser.Name},
			Login:         dbuser.Login.String,
			DefaultSchema: dbuser.DefaultSchema.String,
			Dialect:       p.dialect,
		}
		db.Users[u.Name.Key()] = u
	}
	return nil
}

// loadTables получает имена таблиц.
func (p *Parser) loadTables(ctx context.Context, db *schema.Database) error {
	tables, err := p.q.Tables(ctx)
	if err != nil {
		p.logQueryError("failed to query tables", err)
		return err
	}
	p.log.Debug("loaded tables", zap.Reflect("tables", tables))

	for _, dbtable := range tables {
		table := &schema.Table{
			Name:    schema.Identifier{Schema: dbtable.Schema, Name: dbtable.Name},
			Dialect: p.dialect,
		}
		db.Tables[table.Name.Key()] = table
	}
	return nil
}

func (p *Parser) getTable(db *schema.Database, schemaName, tableName string) (*schema.Table, error) {
	id := schema.Identifier{Schema: schemaName, Name: tableName}
	table := db.Table(id)
	if table == nil {
		return nil, fmt.Errorf("table %q not found", id)
	}
	return table, nil
}

// loadColumns загружает колонки таблиц в порядке объявления.
func (p *Parser) loadColumns(ctx context.Context, db *schema.Database) error {
	columns, err := p.q.Columns(ctx)
	if err != nil {
		p.logQueryError("failed to query tables columns", err)
		return err
	}
	p.log.Debug("columns loaded", zap.Int("n", len(columns)))

	for _, dbcolumn := range columns {
		table, err := p.getTable(db, dbcolumn.Schema, dbcolumn.Table)
		if err != nil {
			p.log.Error("failed to get table for column", zap.Error(err))
			return err
		}
		table.Columns = append(table.Columns, &schema.Column{
			ColNum:   dbcolumn.ColNum,
			Name:     dbcolumn.Name,
			Type:     dbcolumn.Type,
			Nullable: dbcolumn.Nullable,
			Default:  dbcolumn.Default.String,
			Identity: dbcolumn.Identity.String,
			Computed: dbcolumn.Computed.String,
		})
	}
	return nil
}

// Перевод типов ограничений каталога.
var catalogConstraintType = map[string]schema.ConstraintType{
	queries.ConstraintPrimaryKey: schema.ConstraintTypePK,
	queries.ConstraintForeignKey: schema.ConstraintTypeFK,
	queries.ConstraintCheck:      schema.ConstraintTypeCheck,
	queries.ConstraintUnique:     schema.ConstraintTypeUnique,
}

// loadConstraints загружает ограничения для всех найденных таблиц.
func (p *Parser) loadConstraints(ctx context.Context, db *schema.Database) error {
	constraints, err := p.q.Constraints(ctx)
	if err != nil {
		p.logQueryError("failed to query tables constraints", err)
		return err
	}
	p.log.Debug("loaded constraints", zap.Int("n", len(constraints)))

	for idx := range constraints {
		if err := p.makeConstraint(db, &constraints[idx]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) makeConstraint(db *schema.Database, dbconstraint *queries.Constraint) error {
	table, err := p.getTable(db, dbconstraint.Schema, dbconstraint.Table)
	if err != nil {
		return err
	}
	typ, ok := catalogConstraintType[dbconstraint.Type]
	if !ok {
		return fmt.Errorf("unsupported constraint type: %q", dbconstraint.Type)
	}

	c := &schema.Constraint{
		Name:       schema.Identifier{Schema: dbconstraint.Schema, Name: dbconstraint.Name},
		Type:       typ,
		Table:      table,
		Columns:    dbconstraint.Columns,
		Clustered:  dbconstraint.Clustered,
		Expression: dbconstraint.Definition.String,
		Dialect:    p.dialect,
	}
	for _, col := range c.Columns {
		if table.Column(col) == nil {
			return fmt.Errorf("constraint %q: column %q not found in table %q", c.Name.Name, col, table)
		}
	}

	switch typ {
	case schema.ConstraintTypePK:
		// PRIMARY KEY либо один либо нет его
		if table.PrimaryKey != nil {
			return fmt.Errorf("table %q has more than one primary key", table)
		}
		table.PrimaryKey = c
	case schema.ConstraintTypeFK:
		if !dbconstraint.RefTable.Valid {
			return fmt.Errorf("foreign key %q has no reference table", c.Name.Name)
		}
		c.Reference = schema.Identifier{
			Schema: dbconstraint.RefSchema.String,
			Name:   dbconstraint.RefTable.String,
		}
		c.ReferenceColumns = dbconstraint.RefColumns
		c.OnDelete = dbconstraint.OnDelete.String
		c.OnUpdate = dbconstraint.OnUpdate.String
		if len(c.Columns) != len(c.ReferenceColumns) {
			return fmt.Errorf("foreign key %q: %d columns reference %d columns",
				c.Name.Name, len(c.Columns), len(c.ReferenceColumns))
		}
	}

	table.Constraints = append(table.Constraints, c)
	return nil
}

func (p *Parser) loadIndexes(ctx context.Context, db *schema.Database) error {
	indexes, err := p.q.Indexes(ctx)
	if err != nil {
		p.logQueryError("failed to query indexes", err)
		return err
	}
	p.log.Debug("loaded indexes", zap.Int("n", len(indexes)))

	for _, dbindex := range indexes {
		table, err := p.getTable(db, dbindex.Schema, dbindex.Table)
		if err != nil {
			return err
		}
		table.Indexes = append(table.Indexes, &schema.Index{
			Name:       schema.Identifier{Schema: dbindex.Schema, Name: dbindex.Name},
			Table:      table,
			Columns:    dbindex.Columns,
			IsUnique:   dbindex.IsUnique,
			Clustered:  dbindex.Clustered,
			Definition: dbindex.Definition.String,
			Dialect:    p.dialect,
		})
	}
	return nil
}

// loadModules раскладывает представления, процедуры, функции и триггеры.
func (p *Parser) loadModules(ctx context.Context, db *schema.Database) error {
	modules, err := p.q.Modules(ctx)
	if err != nil {
		p.logQueryError("failed to query modules", err)
		return err
	}
	p.log.Debug("loaded modules", zap.Int("n", len(modules)))

	for _, dbmodule := range modules {
		m := schema.Module{
			Name:       schema.Identifier{Schema: dbmodule.Schema, Name: dbmodule.Name},
			Definition: dbmodule.Definition.String,
			Dialect:    p.dialect,
		}
		if !dbmodule.Definition.Valid {
			// зашифрованные модули SQL Server не отдают определение
			p.log.Warn("module definition is not available", zap.Stringer("module", m.Name))
		}

		key := m.Name.Key()
		switch dbmodule.Kind {
		case queries.ModuleView:
			db.Views[key] = &schema.View{Module: m}
		case queries.ModuleFunction:
			db.Routines[key] = &schema.Routine{Module: m, Kind: schema.RoutineKindFunction}
		case queries.ModuleProcedure:
			db.Routines[key] = &schema.Routine{Module: m, Kind: schema.RoutineKindProcedure}
		case queries.ModuleTrigger:
			trigger := &schema.Trigger{
				Module: m,
				Table: schema.Identifier{
					Schema: dbmodule.TableSchema.String,
					Name:   dbmodule.TableName.String,
				},
			}
			db.Triggers[schema.FileName(trigger)] = trigger
		default:
			return fmt.Errorf("unsupported module kind %q of %q", dbmodule.Kind, m.Name)
		}
	}
	return nil
}

func (p *Parser) loadSynonyms(ctx context.Context, db *schema.Database) error {
	synonyms, err := p.q.Synonyms(ctx)
	if err != nil {
		p.logQueryError("failed to query synonyms", err)
		return err
	}
	p.log.Debug("loaded synonyms", zap.Int("n", len(synonyms)))

	for _, dbsynonym := range synonyms {
		s := &schema.Synonym{
			Name:    schema.Identifier{Schema: dbsynonym.Schema, Name: dbsynonym.Name},
			Target:  dbsynonym.Target,
			Dialect: p.dialect,
		}
		db.Synonyms[s.Name.Key()] = s
	}
	return nil
}

// loadPermissions группирует привилегии по получателю.
func (p *Parser) loadPermissions(ctx context.Context, db *schema.Database) error {
	permissions, err := p.q.Permissions(ctx)
	if err != nil {
		p.logQueryError("failed to query permissions", err)
		return err
	}
	p.log.Debug("loaded permissions", zap.Int("n", len(permissions)))

	for _, dbperm := range permissions {
		perm, ok := db.Permissions[dbperm.Grantee]
		if !ok {
			perm = &schema.Permission{Grantee: dbperm.Grantee, Dialect: p.dialect}
			db.Permissions[dbperm.Grantee] = perm
		}
		perm.Grants = append(perm.Grants, schema.Grant{
			State:     dbperm.State,
			Privilege: dbperm.Privilege,
			Object:    schema.Identifier{Schema: dbperm.Schema, Name: dbperm.Object},

			WithGrantOption: dbperm.WithGrantOption && dbperm.State == "GRANT",
		})
	}
	return nil
}
