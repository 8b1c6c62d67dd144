package export

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"

	"github.com/Feresey/schemascript/parse/queries"
	"github.com/Feresey/schemascript/schema"
	"github.com/Feresey/schemascript/selection"
)

// Loader читает модель базы данных и строки таблиц.
type Loader interface {
	LoadDatabase(ctx context.Context) (*schema.Database, error)
	TableRows(ctx context.Context, table *schema.Table, hint string) (queries.Rows, error)
}

// Destination is the tree the scripts are written to.
type Destination interface {
	Clear(categories []string) error
	WriteScript(category, name, script string) error
	CreateData(category, name string) (io.WriteCloser, error)
}

type Exporter struct {
	log    *zap.Logger
	vocab  *schema.Vocabulary
	loader Loader
	dest   Destination
}

func NewExporter(
	log *zap.Logger,
	vocab *schema.Vocabulary,
	loader Loader,
	dest Destination,
) *Exporter {
	return &Exporter{
		log:    log.Named("export"),
		vocab:  vocab,
		loader: loader,
		dest:   dest,
	}
}

// Execute runs one export. The database is loaded before the destination is
// touched, after that the first error stops the run and the files already
// written stay in place.
func (e *Exporter) Execute(ctx context.Context, sel *selection.Selection) error {
	log := e.log.With(zap.Stringer("run", uuid.New()))

	db, err := e.loader.LoadDatabase(ctx)
	if err != nil {
		return xerrors.Errorf("load database: %w", err)
	}
	log.Info("database loaded", zap.String("database", db.Name))

	if err := e.dest.Clear(e.vocab.All()); err != nil {
		return xerrors.Errorf("clear destination: %w", err)
	}

	for _, category := range sel.Categories.Effective() {
		if category == schema.CategoryData {
			continue
		}
		n, err := e.scriptCategory(db, category, sel)
		if err != nil {
			return xerrors.Errorf("script %s: %w", category, err)
		}
		log.Debug("category scripted", zap.String("category", category), zap.Int("n", n))
	}

	if sel.Categories.Has(schema.CategoryData) {
		if err := e.exportData(ctx, log, db, sel); err != nil {
			return xerrors.Errorf("export data: %w", err)
		}
	}

	log.Info("export finished")
	return nil
}

func (e *Exporter) scriptCategory(
	db *schema.Database,
	category string,
	sel *selection.Selection,
) (int, error) {
	var n int
	for _, obj := range db.Objects(category) {
		if !allowed(category, obj, sel) {
			continue
		}
		script, err := obj.ScriptCreate()
		if err != nil {
			return n, xerrors.Errorf("script %q: %w", schema.FileName(obj), err)
		}
		if err := e.dest.WriteScript(category, schema.FileName(obj), script); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// allowed применяет списки таблиц и процедур. Объекты таблицы следуют за
// своей таблицей.
func allowed(category string, obj schema.Scriptable, sel *selection.Selection) bool {
	if ts, ok := obj.(schema.TableScoped); ok {
		return selection.Allowed(sel.Tables, ts.Parent())
	}
	switch category {
	case schema.CategoryTables:
		return selection.Allowed(sel.Tables, obj.Ident())
	case schema.CategoryFunctions, schema.CategoryProcedures:
		return selection.Allowed(sel.Routines, obj.Ident())
	default:
		return true
	}
}

func (e *Exporter) exportData(
	ctx context.Context,
	log *zap.Logger,
	db *schema.Database,
	sel *selection.Selection,
) error {
	names := maps.Keys(sel.DataTables)
	slices.Sort(names)
	for _, name := range names {
		id := schema.Identifier{Schema: sel.DataTables[name], Name: name}
		if db.Table(id) == nil {
			log.Warn("data table not found", zap.Stringer("table", id))
		}
	}

	for _, obj := range db.Objects(schema.CategoryTables) {
		table, ok := obj.(*schema.Table)
		if !ok || !sel.DataTable(table.Name) {
			continue
		}
		n, err := e.writeData(ctx, table, sel.TableHint)
		if err != nil {
			return xerrors.Errorf("table %q: %w", table, err)
		}
		log.Info("table data exported", zap.Stringer("table", table.Name), zap.Int("rows", n))
	}
	return nil
}

func (e *Exporter) writeData(ctx context.Context, table *schema.Table, hint string) (n int, err error) {
	rows, err := e.loader.TableRows(ctx, table, hint)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	w, err := e.dest.CreateData(schema.CategoryData, schema.FileName(table))
	if err != nil {
		return 0, err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()

	return WriteRows(w, rows)
}
