package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/Feresey/schemascript/db"
	"github.com/Feresey/schemascript/export"
	"github.com/Feresey/schemascript/parse"
	"github.com/Feresey/schemascript/prompt"
	"github.com/Feresey/schemascript/schema"
	"github.com/Feresey/schemascript/scriptdir"
	"github.com/Feresey/schemascript/selection"
)

type scriptFlags struct {
	flags
	conn     *cli.StringFlag
	server   *cli.StringFlag
	database *cli.StringFlag
	user     *cli.StringFlag
	password *cli.StringFlag

	dir       *cli.StringFlag
	overwrite *cli.BoolFlag

	dataTables               *cli.StringFlag
	dataTablesPattern        *cli.StringFlag
	dataTablesExcludePattern *cli.StringFlag
	tableHint                *cli.StringFlag

	filterTypes *cli.StringFlag
	onlyTypes   *cli.StringFlag
	tableList   *cli.StringFlag
	routineList *cli.StringFlag
}

func (sf *scriptFlags) Set() []cli.Flag {
	return append(sf.flags.Set(),
		sf.conn,
		sf.server,
		sf.database,
		sf.user,
		sf.password,
		sf.dir,
		sf.overwrite,
		sf.dataTables,
		sf.dataTablesPattern,
		sf.dataTablesExcludePattern,
		sf.tableHint,
		sf.filterTypes,
		sf.onlyTypes,
		sf.tableList,
		sf.routineList,
	)
}

// apply переносит заданные флаги поверх конфигурации из файла.
func (sf *scriptFlags) apply(ctx *cli.Context, cnf *AppConfig) {
	set := func(f *cli.StringFlag, dst *string) {
		if ctx.IsSet(f.Name) {
			*dst = f.Get(ctx)
		}
	}

	set(sf.conn, &cnf.DB.Conn)
	if ctx.IsSet(sf.server.Name) {
		cnf.DB.Conn = db.SQLServerURL(
			sf.server.Get(ctx),
			sf.database.Get(ctx),
			sf.user.Get(ctx),
			sf.password.Get(ctx),
		)
	}

	set(sf.dir, &cnf.Dir)
	if ctx.IsSet(sf.overwrite.Name) {
		cnf.Overwrite = sf.overwrite.Get(ctx)
	}

	opts := &cnf.Selection
	set(sf.dataTables, &opts.DataTables)
	set(sf.dataTablesPattern, &opts.DataTablesPattern)
	set(sf.dataTablesExcludePattern, &opts.DataTablesExcludePattern)
	set(sf.tableHint, &opts.TableHint)
	set(sf.filterTypes, &opts.ExcludeTypes)
	if ctx.IsSet(sf.onlyTypes.Name) {
		// --only-types="" явно исключает все категории
		onlyTypes := sf.onlyTypes.Get(ctx)
		opts.IncludeOnlyTypes = &onlyTypes
	}
	set(sf.tableList, &opts.TableList)
	set(sf.routineList, &opts.RoutineList)
}

type scriptCommand struct {
	sf    scriptFlags
	vocab *schema.Vocabulary
	BaseCommand

	sel  *selection.Selection
	dir  *scriptdir.Dir
	conn *connection
}

func NewScriptCommand(f flags, vocab *schema.Vocabulary) *scriptCommand {
	typesUsage := fmt.Sprintf("comma separated object types (%s)", vocab)
	return &scriptCommand{
		vocab: vocab,
		sf: scriptFlags{
			flags: f,
			conn: &cli.StringFlag{
				Name:    "conn",
				Usage:   "connection url (postgres://... or sqlserver://...)",
				EnvVars: []string{"SCHEMASCRIPT_CONN"},
			},
			server: &cli.StringFlag{
				Name:    "server",
				Usage:   "sql server host[:port]",
				Aliases: []string{"s"},
			},
			database: &cli.StringFlag{
				Name:    "database",
				Usage:   "database name",
				Aliases: []string{"b"},
			},
			user: &cli.StringFlag{
				Name:    "user",
				Usage:   "login name",
				Aliases: []string{"u"},
			},
			password: &cli.StringFlag{
				Name:    "password",
				Usage:   "login password",
				Aliases: []string{"p"},
			},
			dir: &cli.StringFlag{
				Name:      "dir",
				Usage:     "script directory",
				TakesFile: true,
				Aliases:   []string{"d"},
			},
			overwrite: &cli.BoolFlag{
				Name:    "overwrite",
				Usage:   "replace an existing script directory without asking",
				Aliases: []string{"o"},
			},
			dataTables: &cli.StringFlag{
				Name:  "data-tables",
				Usage: "comma separated tables to export data from ([schema.]table)",
			},
			dataTablesPattern: &cli.StringFlag{
				Name:  "data-tables-pattern",
				Usage: "regular expression for tables to export data from",
			},
			dataTablesExcludePattern: &cli.StringFlag{
				Name:  "data-tables-exclude-pattern",
				Usage: "regular expression for tables to skip when exporting data",
			},
			tableHint: &cli.StringFlag{
				Name:  "table-hint",
				Usage: "table hint (sql server) or isolation level (postgres) for data queries",
			},
			filterTypes: &cli.StringFlag{
				Name:  "filter-types",
				Usage: "exclude " + typesUsage,
			},
			onlyTypes: &cli.StringFlag{
				Name:  "only-types",
				Usage: "export only " + typesUsage,
			},
			tableList: &cli.StringFlag{
				Name:  "table-list",
				Usage: "comma separated tables to script",
			},
			routineList: &cli.StringFlag{
				Name:  "routine-list",
				Usage: "comma separated functions and procedures to script",
			},
		},
	}
}

func (s *scriptCommand) Command() *cli.Command {
	return &cli.Command{
		Name:        "script",
		Usage:       "script the database into a directory",
		Description: "writes one file per database object, grouped by object type",
		Flags:       s.sf.Set(),
		Before:      s.init,
		Action:      s.run,
		After:       s.cleanup,
	}
}

func (s *scriptCommand) init(ctx *cli.Context) error {
	base, err := NewBase(ctx, s.sf.flags)
	if err != nil {
		return cli.Exit(err, 2)
	}
	s.BaseCommand = base
	s.sf.apply(ctx, s.cnf)

	if s.cnf.Dir == "" {
		return cli.Exit("script directory is not set", 2)
	}
	driver, err := s.cnf.DB.Driver()
	if err != nil {
		return cli.Exit(err, 2)
	}

	// выборка проверяется до того, как трогать каталог и базу
	resolver := selection.NewResolver(s.log, s.vocab, dialectOf(driver).DefaultSchema)
	s.sel, err = resolver.Resolve(s.cnf.Selection)
	if err != nil {
		return cli.Exit(xerrors.Errorf("resolve selection: %w", err), 2)
	}

	s.dir = scriptdir.New(afero.NewOsFs(), s.cnf.Dir)
	state, err := s.dir.Confirm(s.cnf.Overwrite, prompt.Terminal{})
	if err != nil {
		if errors.Is(err, scriptdir.ErrAborted) {
			return cli.Exit(err, 1)
		}
		return cli.Exit(xerrors.Errorf("check script directory: %w", err), 2)
	}
	s.log.Debug("script directory checked",
		zap.String("dir", s.dir.Path()),
		zap.Stringer("state", state))

	conn, err := s.connectDB(ctx, s.sf.debug.Get(ctx))
	if err != nil {
		return cli.Exit(err, 3)
	}
	s.conn = conn
	return nil
}

func (s *scriptCommand) cleanup(ctx *cli.Context) error {
	if s.conn == nil {
		return nil
	}
	if err := s.conn.close(ctx.Context); err != nil {
		return fmt.Errorf("close database connection: %w", err)
	}
	return nil
}

func (s *scriptCommand) run(ctx *cli.Context) error {
	parser := parse.NewParser(s.conn.queries, s.conn.dialect, s.cnf.DB.Database(), s.log)
	exporter := export.NewExporter(s.log, s.vocab, parser, s.dir)

	if err := exporter.Execute(ctx.Context, s.sel); err != nil {
		return fmt.Errorf("script database: %w", err)
	}
	s.log.Info("database scripted", zap.String("dir", s.dir.Path()))
	return nil
}
