package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Driver СУБД, выбранная по схеме URL подключения.
type Driver string

const (
	DriverPostgres  Driver = "postgres"
	DriverSQLServer Driver = "sqlserver"
)

type Config struct {
	Conn  string
	debug bool
}

func (c *Config) SetDebug(debug bool) { c.debug = debug }

// Driver returns the database kind of the connection URL.
func (c *Config) Driver() (Driver, error) {
	u, err := url.Parse(c.Conn)
	if err != nil {
		return "", fmt.Errorf("parse connection url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "sqlserver":
		return DriverSQLServer, nil
	default:
		return "", fmt.Errorf("unsupported connection scheme %q", u.Scheme)
	}
}

// Database returns the database name from the connection URL.
func (c *Config) Database() string {
	u, err := url.Parse(c.Conn)
	if err != nil {
		return ""
	}
	if name := u.Query().Get("database"); name != "" {
		return name
	}
	return strings.TrimPrefix(u.Path, "/")
}

// SQLServerURL builds a connection URL from separate connection options.
func SQLServerURL(server, database, user, password string) string {
	u := &url.URL{
		Scheme: string(DriverSQLServer),
		Host:   server,
	}
	if user != "" {
		u.User = url.UserPassword(user, password)
	}
	q := url.Values{}
	if database != "" {
		q.Set("database", database)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func NewDB(
	ctx context.Context,
	logger *zap.Logger,
	cfg Config,
) (*pgx.Conn, error) {
	cnf, err := pgx.ParseConfig(cfg.Conn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.debug {
		cnf.Tracer = &tracelog.TraceLog{
			Logger:   tracelog.LoggerFunc(queryMessageLog(logger)),
			LogLevel: tracelog.LogLevelInfo,
		}
	}

	c, err := pgx.ConnectConfig(ctx, cnf)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return c, nil
}

// Флаги журнала go-mssqldb: ошибки, сообщения сервера и текст запросов.
const mssqlLogFlags = "11"

// NewSQLServer opens a single connection to SQL Server.
func NewSQLServer(
	ctx context.Context,
	logger *zap.Logger,
	cfg Config,
) (*sql.DB, error) {
	conn := cfg.Conn
	if cfg.debug {
		u, err := url.Parse(conn)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		q := u.Query()
		if q.Get("log") == "" {
			q.Set("log", mssqlLogFlags)
		}
		u.RawQuery = q.Encode()
		conn = u.String()
		mssql.SetLogger(zap.NewStdLog(logger.Named("mssql")))
	}

	db, err := sql.Open("sqlserver", conn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// метаданные и строки таблиц читаются строго последовательно
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func queryMessageLog(log *zap.Logger) func(
	ctx context.Context,
	level tracelog.LogLevel,
	msg string,
	data map[string]any,
) {
	return func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		if msg == "Prepare" {
			return
		}
		var rawSQL *string
		fields := make([]zapcore.Field, 0, len(data))
		for k, v := range data {
			f := zap.Any(k, v)
			if f.Key == "sql" && f.Type == zapcore.StringType {
				rawSQL = &f.String
				continue
			}
			fields = append(fields, f)
		}

		var lvl zapcore.Level
		switch level {
		default:
			fallthrough
		case tracelog.LogLevelNone, tracelog.LogLevelTrace, tracelog.LogLevelDebug:
			lvl = zapcore.DebugLevel
		case tracelog.LogLevelInfo:
			lvl = zapcore.InfoLevel
		case tracelog.LogLevelWarn:
			lvl = zapcore.WarnLevel
		case tracelog.LogLevelError:
			lvl = zapcore.ErrorLevel
		}
		if rawSQL != nil {
			msg = msg + "\n" + *rawSQL
		}
		ce := log.Check(lvl, msg)
		ce.Write(fields...)
	}
}
