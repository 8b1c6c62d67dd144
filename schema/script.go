package schema

import (
	"embed"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/xerrors"
)

//go:embed templates/*.tpl
var scripttpl embed.FS

type TemplateName string

const (
	tableTemplate            TemplateName = "table.sql.tpl"
	constraintTemplate       TemplateName = "constraint.sql.tpl"
	constraintClauseTemplate TemplateName = "constraint_clause.sql.tpl"
	indexTemplate            TemplateName = "index.sql.tpl"
	schemaTemplate           TemplateName = "schema.sql.tpl"
	userTemplate             TemplateName = "user.sql.tpl"
	synonymTemplate          TemplateName = "synonym.sql.tpl"
	permissionTemplate       TemplateName = "permission.sql.tpl"
)

var templates = template.Must(
	template.New("").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(scripttpl, "templates/*.tpl"),
)

// render executes the named template. Inside templates .D is the dialect and
// .O is the rendered object.
func render(tplName TemplateName, d *Dialect, obj any) (string, error) {
	data := struct {
		D *Dialect
		O any
	}{
		D: d.orDefault(),
		O: obj,
	}

	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, string(tplName), data); err != nil {
		return "", xerrors.Errorf("render %s: %w", tplName, err)
	}
	return strings.TrimSpace(sb.String()) + "\n", nil
}
