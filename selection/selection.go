package selection

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"

	"github.com/Feresey/schemascript/schema"
)

// Options сырые значения опций, как их передал пользователь.
type Options struct {
	// Исключаемые категории через запятую
	ExcludeTypes string
	// Единственные экспортируемые категории через запятую. nil - все категории,
	// пустая строка - ни одной
	IncludeOnlyTypes *string

	DataTables               string
	DataTablesPattern        string
	DataTablesExcludePattern string

	TableList   string
	RoutineList string

	TableHint string
}

// Selection is the resolved, read-only filter of one export run.
type Selection struct {
	Categories Categories

	// имя таблицы -> схема
	DataTables  map[string]string
	DataInclude *regexp.Regexp
	DataExclude *regexp.Regexp

	// nil означает отсутствие ограничения
	Tables   mapset.Set[string]
	Routines mapset.Set[string]

	TableHint string
}

// Categories is the result of category resolution.
type Categories struct {
	// Все категории словаря, которые не попадают в экспорт
	Excluded mapset.Set[string]
	// Токены, не входящие в словарь
	Invalid []string

	vocab *schema.Vocabulary
}

// Effective returns the exported categories in vocabulary order.
func (c Categories) Effective() []string {
	if c.vocab == nil {
		return nil
	}
	var res []string
	for _, dir := range c.vocab.All() {
		if c.Excluded == nil || !c.Excluded.Contains(dir) {
			res = append(res, dir)
		}
	}
	return res
}

// Has reports whether the category takes part in the export.
func (c Categories) Has(category string) bool {
	return slices.Contains(c.Effective(), category)
}

type Resolver struct {
	vocab *schema.Vocabulary
	// Схема для имен таблиц без явной схемы
	DefaultSchema string
	log           *zap.Logger
}

func NewResolver(log *zap.Logger, vocab *schema.Vocabulary, defaultSchema string) *Resolver {
	if defaultSchema == "" {
		defaultSchema = schema.SQLServer.DefaultSchema
	}
	return &Resolver{
		vocab:         vocab,
		DefaultSchema: defaultSchema,
		log:           log.Named("selection"),
	}
}

// Resolve turns raw options into a Selection. Only invalid patterns and table
// hints are errors, unknown category tokens are reported and dropped.
func (r *Resolver) Resolve(opts Options) (*Selection, error) {
	include, err := r.ResolvePattern(opts.DataTablesPattern)
	if err != nil {
		return nil, xerrors.Errorf("data tables pattern: %w", err)
	}
	exclude, err := r.ResolvePattern(opts.DataTablesExcludePattern)
	if err != nil {
		return nil, xerrors.Errorf("data tables exclude pattern: %w", err)
	}
	hint, err := ResolveTableHint(opts.TableHint)
	if err != nil {
		return nil, err
	}

	return &Selection{
		Categories:  r.ResolveCategories(opts.ExcludeTypes, opts.IncludeOnlyTypes),
		DataTables:  r.ResolveDataTables(opts.DataTables),
		DataInclude: include,
		DataExclude: exclude,
		Tables:      ResolveNameList(opts.TableList),
		Routines:    ResolveNameList(opts.RoutineList),
		TableHint:   hint,
	}, nil
}

// ResolveCategories computes the excluded categories. A category is exported
// iff it is listed in includeOnly and is not listed in exclude. A nil
// includeOnly lists every category, an empty one lists none.
func (r *Resolver) ResolveCategories(exclude string, includeOnly *string) Categories {
	all := mapset.NewThreadUnsafeSet(r.vocab.All()...)

	excludeSet := mapset.NewThreadUnsafeSet(categoryTokens(exclude)...)
	includeSet := all.Clone()
	if includeOnly != nil {
		includeSet = mapset.NewThreadUnsafeSet(categoryTokens(*includeOnly)...)
	}

	invalid := excludeSet.Union(includeSet).Difference(all).ToSlice()
	slices.Sort(invalid)
	if len(invalid) != 0 {
		r.log.Warn("invalid object types are ignored",
			zap.Strings("invalid", invalid),
			zap.String("valid", r.vocab.String()))
	}

	// Excluded = All - (IncludeOnly - Exclude)
	excluded := all.Difference(includeSet.Difference(excludeSet))

	res := Categories{
		Excluded: excluded,
		Invalid:  invalid,
		vocab:    r.vocab,
	}
	if len(res.Effective()) == 0 {
		r.log.Warn("no object types selected, the export tree will be empty")
	}
	return res
}

// ResolveDataTables parses "schema.name" entries into a name -> schema map.
// Names without a schema get DefaultSchema, later entries win.
func (r *Resolver) ResolveDataTables(raw string) map[string]string {
	res := make(map[string]string)
	for _, token := range splitList(raw) {
		schemaName, name, ok := strings.Cut(token, ".")
		if !ok {
			schemaName, name = r.DefaultSchema, token
		}
		res[name] = schemaName
	}
	return res
}

// ResolveNameList returns nil when raw is empty, meaning no restriction.
func ResolveNameList(raw string) mapset.Set[string] {
	tokens := splitList(raw)
	if len(tokens) == 0 {
		return nil
	}
	return mapset.NewThreadUnsafeSet(tokens...)
}

// ResolvePattern compiles a data table pattern. Empty pattern is nil.
func (r *Resolver) ResolvePattern(raw string) (*regexp.Regexp, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	re, err := regexp.Compile(raw)
	if err != nil {
		return nil, xerrors.Errorf("compile %q: %w", raw, err)
	}
	return re, nil
}

var tableHintRe = regexp.MustCompile(`^[A-Za-z0-9_, ]*$`)

// ResolveTableHint validates the hint before it is embedded into a query.
func ResolveTableHint(raw string) (string, error) {
	hint := strings.TrimSpace(raw)
	if !tableHintRe.MatchString(hint) {
		return "", xerrors.Errorf("invalid table hint %q", raw)
	}
	return hint, nil
}

// Allowed reports whether the object passes an allow-list. The list may name
// an object either by its name or by its qualified name.
func Allowed(list mapset.Set[string], id schema.Identifier) bool {
	if list == nil {
		return true
	}
	return list.Contains(id.Name) || list.Contains(id.String())
}

// DataTable reports whether rows of the table are exported.
func (s *Selection) DataTable(id schema.Identifier) bool {
	if schemaName, ok := s.DataTables[id.Name]; ok && schemaName == id.Schema {
		return true
	}
	if s.DataInclude == nil {
		return false
	}
	qualified := id.String()
	if !s.DataInclude.MatchString(qualified) {
		return false
	}
	return s.DataExclude == nil || !s.DataExclude.MatchString(qualified)
}

func categoryTokens(raw string) []string {
	tokens := splitList(raw)
	for i, token := range tokens {
		tokens[i] = strings.ToLower(token)
	}
	return tokens
}

func splitList(raw string) []string {
	var res []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			res = append(res, token)
		}
	}
	return res
}
