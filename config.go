package main

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/Feresey/schemascript/db"
	"github.com/Feresey/schemascript/selection"
)

type FileConfig struct {
	Conn      string `yaml:"conn"`
	Dir       string `yaml:"dir"`
	Overwrite bool   `yaml:"overwrite"`

	FilterTypes string  `yaml:"filter_types"`
	OnlyTypes   *string `yaml:"only_types"` // nil - ключ не задан, экспортируются все категории
	TableList   string  `yaml:"table_list"`
	RoutineList string  `yaml:"routine_list"`

	Data DataConfig `yaml:"data"`
}

type DataConfig struct {
	Tables         string `yaml:"tables"`
	Pattern        string `yaml:"pattern"`
	ExcludePattern string `yaml:"exclude_pattern"`
	TableHint      string `yaml:"table_hint"`
}

type AppConfig struct {
	DB        db.Config
	Dir       string
	Overwrite bool
	Selection selection.Options
}

func (fc FileConfig) Build() (*AppConfig, error) {
	if fc.Conn != "" {
		cfg := db.Config{Conn: fc.Conn}
		if _, err := cfg.Driver(); err != nil {
			return nil, xerrors.Errorf("check connection: %w", err)
		}
	}
	return &AppConfig{
		DB: db.Config{
			Conn: fc.Conn,
		},
		Dir:       fc.Dir,
		Overwrite: fc.Overwrite,
		Selection: selection.Options{
			ExcludeTypes:             fc.FilterTypes,
			IncludeOnlyTypes:         fc.OnlyTypes,
			DataTables:               fc.Data.Tables,
			DataTablesPattern:        fc.Data.Pattern,
			DataTablesExcludePattern: fc.Data.ExcludePattern,
			TableList:                fc.TableList,
			RoutineList:              fc.RoutineList,
			TableHint:                fc.Data.TableHint,
		},
	}, nil
}

// ReadConfig читает файл конфигурации. Пустой путь означает конфигурацию
// только из флагов.
func ReadConfig(confPath string) (*AppConfig, error) {
	var fc FileConfig
	if confPath == "" {
		return fc.Build()
	}

	file, err := os.ReadFile(confPath)
	if err != nil {
		return nil, xerrors.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &fc); err != nil {
		return nil, xerrors.Errorf("parse config: %w", err)
	}

	c, err := fc.Build()
	if err != nil {
		return nil, xerrors.Errorf("process config data: %w", err)
	}
	return c, nil
}
