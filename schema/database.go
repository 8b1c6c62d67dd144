package schema

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Database отражает объекты базы данных, загруженные для одного запуска экспорта.
// После загрузки не изменяется.
type Database struct {
	Name    string   `json:"name,omitempty"`
	Dialect *Dialect `json:"-"`

	Schemas     map[string]*Schema     `json:"schemas,omitempty"`
	Roles       map[string]*Role       `json:"roles,omitempty"`
	Users       map[string]*User       `json:"users,omitempty"`
	Tables      map[string]*Table      `json:"tables,omitempty"`
	Views       map[string]*View       `json:"views,omitempty"`
	Routines    map[string]*Routine    `json:"routines,omitempty"`
	Triggers    map[string]*Trigger    `json:"triggers,omitempty"`
	Synonyms    map[string]*Synonym    `json:"synonyms,omitempty"`
	Permissions map[string]*Permission `json:"permissions,omitempty"`
}

func NewDatabase(name string, d *Dialect) *Database {
	return &Database{
		Name:        name,
		Dialect:     d,
		Schemas:     make(map[string]*Schema),
		Roles:       make(map[string]*Role),
		Users:       make(map[string]*User),
		Tables:      make(map[string]*Table),
		Views:       make(map[string]*View),
		Routines:    make(map[string]*Routine),
		Triggers:    make(map[string]*Trigger),
		Synonyms:    make(map[string]*Synonym),
		Permissions: make(map[string]*Permission),
	}
}

// Table returns the table with the given name or nil.
func (db *Database) Table(id Identifier) *Table {
	return db.Tables[id.Key()]
}

// Objects returns the objects of a category ordered by file name.
// The data category and unknown categories have no scriptable objects.
func (db *Database) Objects(category string) []Scriptable {
	var objs []Scriptable
	switch category {
	case CategorySchemas:
		objs = values(db.Schemas)
	case CategoryRoles:
		objs = values(db.Roles)
	case CategoryUsers:
		objs = values(db.Users)
	case CategoryTables:
		objs = values(db.Tables)
	case CategoryForeignKeys:
		objs = db.constraints(ConstraintTypeFK)
	case CategoryCheckConstraints:
		objs = db.constraints(ConstraintTypeCheck)
	case CategoryViews:
		objs = values(db.Views)
	case CategoryFunctions:
		objs = db.routines(RoutineKindFunction)
	case CategoryProcedures:
		objs = db.routines(RoutineKindProcedure)
	case CategoryTriggers:
		objs = values(db.Triggers)
	case CategorySynonyms:
		objs = values(db.Synonyms)
	case CategoryPermissions:
		objs = values(db.Permissions)
	}

	slices.SortFunc(objs, func(a, b Scriptable) bool {
		return FileName(a) < FileName(b)
	})
	return objs
}

func (db *Database) constraints(typ ConstraintType) []Scriptable {
	var res []Scriptable
	for _, table := range db.Tables {
		for _, c := range table.ConstraintsOf(typ) {
			res = append(res, c)
		}
	}
	return res
}

func (db *Database) routines(kind RoutineKind) []Scriptable {
	var res []Scriptable
	for _, r := range db.Routines {
		if r.Kind == kind {
			res = append(res, r)
		}
	}
	return res
}

func values[T Scriptable](m map[string]T) []Scriptable {
	keys := maps.Keys(m)
	slices.Sort(keys)
	res := make([]Scriptable, 0, len(keys))
	for _, key := range keys {
		res = append(res, m[key])
	}
	return res
}
