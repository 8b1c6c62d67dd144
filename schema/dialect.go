package schema

import "strings"

// Dialect описывает правила оформления скриптов для конкретной СУБД.
type Dialect struct {
	Name string
	// Схема, в которой объекты создаются по умолчанию
	DefaultSchema string

	quoteOpen  string
	quoteClose string
	// Разделитель пакетов. Пустой разделитель означает, что инструкции
	// завершаются точкой с запятой.
	batchSeparator string
}

var (
	Postgres = &Dialect{
		Name:          "postgres",
		DefaultSchema: "public",
		quoteOpen:     `"`,
		quoteClose:    `"`,
	}
	SQLServer = &Dialect{
		Name:           "sqlserver",
		DefaultSchema:  "dbo",
		quoteOpen:      "[",
		quoteClose:     "]",
		batchSeparator: "GO",
	}
)

func (d *Dialect) orDefault() *Dialect {
	if d == nil {
		return Postgres
	}
	return d
}

func (d *Dialect) IsSQLServer() bool { return d.orDefault() == SQLServer }

// Quote returns a delimited identifier.
func (d *Dialect) Quote(name string) string {
	d = d.orDefault()
	escaped := strings.ReplaceAll(name, d.quoteClose, d.quoteClose+d.quoteClose)
	return d.quoteOpen + escaped + d.quoteClose
}

// Qualify returns schema.name with both parts quoted. Empty schema is omitted.
func (d *Dialect) Qualify(id Identifier) string {
	if id.Schema == "" {
		return d.Quote(id.Name)
	}
	return d.Quote(id.Schema) + "." + d.Quote(id.Name)
}

func (d *Dialect) QuoteList(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, d.Quote(name))
	}
	return strings.Join(quoted, ", ")
}

// End returns the terminator placed after a statement rendered from a template.
func (d *Dialect) End() string {
	d = d.orDefault()
	if d.batchSeparator != "" {
		return "\n" + d.batchSeparator
	}
	return ";"
}

// Terminate appends the statement terminator of the dialect to stmt.
func (d *Dialect) Terminate(stmt string) string {
	d = d.orDefault()
	stmt = strings.TrimRight(stmt, " \t\r\n")
	if d.batchSeparator != "" {
		return stmt + "\n" + d.batchSeparator + "\n"
	}
	if !strings.HasSuffix(stmt, ";") {
		stmt += ";"
	}
	return stmt + "\n"
}
