package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/Feresey/schemascript/db"
	"github.com/Feresey/schemascript/parse"
	"github.com/Feresey/schemascript/parse/queries"
	"github.com/Feresey/schemascript/schema"
)

func newLogger(debug bool) (*zap.Logger, error) {
	lc := zap.NewDevelopmentConfig()
	lc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	lc.DisableStacktrace = true
	if debug {
		lc.Level.SetLevel(zap.DebugLevel)
	} else {
		lc.Level.SetLevel(zap.InfoLevel)
	}
	return lc.Build()
}

type flags struct {
	configPath *cli.StringFlag
	debug      *cli.BoolFlag
}

func (f *flags) Set() []cli.Flag {
	return []cli.Flag{
		f.configPath,
		f.debug,
	}
}

func main() {
	f := flags{
		configPath: &cli.StringFlag{
			Name:      "config",
			Usage:     "optional config file path",
			TakesFile: true,
			Aliases:   []string{"c"},
		},
		debug: &cli.BoolFlag{
			Name:   "debug",
			Value:  false,
			Usage:  "show debug information",
			Hidden: true,
		},
	}

	vocab := schema.DefaultVocabulary()

	app := &cli.App{
		Name:        "schemascript",
		Usage:       "script database objects into files",
		Description: "exports database schema and table data into a tree of script files",
		Flags:       f.Set(),
		Commands: []*cli.Command{
			NewScriptCommand(f, vocab).Command(),
			NewTypesCommand(vocab).Command(),
		},
		ExitErrHandler: func(ctx *cli.Context, err error) {
			if err == nil {
				return
			}
			if f.debug.Get(ctx) {
				fmt.Fprintf(os.Stderr, "%+v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
			if exitErr, ok := err.(cli.ExitCoder); ok {
				os.Exit(exitErr.ExitCode())
			}
			os.Exit(1)
		},
		EnableBashCompletion: true,
	}
	if err := app.Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(2)
	}
}

type BaseCommand struct {
	log *zap.Logger
	cnf *AppConfig
}

func NewBase(ctx *cli.Context, f flags) (BaseCommand, error) {
	var empty BaseCommand
	log, err := newLogger(f.debug.Get(ctx))
	if err != nil {
		return empty, xerrors.Errorf("create logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	cnf, err := ReadConfig(f.configPath.Get(ctx))
	if err != nil {
		return empty, xerrors.Errorf("get config: %w", err)
	}
	log.Debug("config readed")

	return BaseCommand{
		log: log,
		cnf: cnf,
	}, nil
}

// connection одно открытое подключение к базе и источник каталога поверх него.
type connection struct {
	queries parse.Queries
	dialect *schema.Dialect
	close   func(context.Context) error
}

func dialectOf(driver db.Driver) *schema.Dialect {
	if driver == db.DriverSQLServer {
		return schema.SQLServer
	}
	return schema.Postgres
}

func (b *BaseCommand) connectDB(ctx *cli.Context, debug bool) (*connection, error) {
	if debug {
		b.cnf.DB.SetDebug(true)
	}
	driver, err := b.cnf.DB.Driver()
	if err != nil {
		return nil, err
	}

	var conn connection
	switch driver {
	case db.DriverPostgres:
		pgconn, err := db.NewDB(ctx.Context, b.log, b.cnf.DB)
		if err != nil {
			return nil, xerrors.Errorf("create database connection: %w", err)
		}
		conn.queries = queries.NewPostgres(pgconn)
		conn.close = pgconn.Close
	case db.DriverSQLServer:
		sqldb, err := db.NewSQLServer(ctx.Context, b.log, b.cnf.DB)
		if err != nil {
			return nil, xerrors.Errorf("create database connection: %w", err)
		}
		conn.queries = queries.NewSQLServer(sqldb)
		conn.close = func(context.Context) error { return sqldb.Close() }
	}
	conn.dialect = dialectOf(driver)
	b.log.Debug("connected to database", zap.String("driver", string(driver)))

	return &conn, nil
}
