package schema

import "strings"

// Категории объектов. Каждая категория одновременно является токеном фильтра
// и именем директории в дереве скриптов.
const (
	CategorySchemas          = "schemas"
	CategoryRoles            = "roles"
	CategoryUsers            = "users"
	CategoryTables           = "tables"
	CategoryForeignKeys      = "foreign_keys"
	CategoryCheckConstraints = "check_constraints"
	CategoryViews            = "views"
	CategoryFunctions        = "functions"
	CategoryProcedures       = "procedures"
	CategoryTriggers         = "triggers"
	CategorySynonyms         = "synonyms"
	CategoryPermissions      = "permissions"
	CategoryData             = "data"
)

// Vocabulary is the closed, ordered set of object categories.
// It is never mutated after construction.
type Vocabulary struct {
	dirs  []string
	index map[string]int
}

// DefaultVocabulary returns the categories in the order they are exported.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(
		CategorySchemas,
		CategoryRoles,
		CategoryUsers,
		CategoryTables,
		CategoryForeignKeys,
		CategoryCheckConstraints,
		CategoryViews,
		CategoryFunctions,
		CategoryProcedures,
		CategoryTriggers,
		CategorySynonyms,
		CategoryPermissions,
		CategoryData,
	)
}

func NewVocabulary(dirs ...string) *Vocabulary {
	v := &Vocabulary{
		dirs:  make([]string, 0, len(dirs)),
		index: make(map[string]int, len(dirs)),
	}
	for _, dir := range dirs {
		if _, ok := v.index[dir]; ok {
			continue
		}
		v.index[dir] = len(v.dirs)
		v.dirs = append(v.dirs, dir)
	}
	return v
}

// All returns a copy of the categories in vocabulary order.
func (v *Vocabulary) All() []string {
	res := make([]string, len(v.dirs))
	copy(res, v.dirs)
	return res
}

func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.index[token]
	return ok
}

// Less orders categories by their position in the vocabulary.
func (v *Vocabulary) Less(a, b string) bool {
	return v.index[a] < v.index[b]
}

func (v *Vocabulary) String() string { return strings.Join(v.dirs, ", ") }
