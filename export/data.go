package export

import (
	"database/sql/driver"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/Feresey/schemascript/parse/queries"
)

// NullValue обозначает NULL в файлах данных.
const NullValue = `\N`

// WriteRows writes the rows as tab separated values with a header line.
func WriteRows(w io.Writer, rows queries.Rows) (int, error) {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(rows.Columns()); err != nil {
		return 0, xerrors.Errorf("write header: %w", err)
	}

	var n int
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return n, xerrors.Errorf("read row %d: %w", n+1, err)
		}
		record := make([]string, 0, len(values))
		for _, v := range values {
			s, err := FormatValue(v)
			if err != nil {
				return n, xerrors.Errorf("format row %d: %w", n+1, err)
			}
			record = append(record, s)
		}
		if err := cw.Write(record); err != nil {
			return n, xerrors.Errorf("write row %d: %w", n+1, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, xerrors.Errorf("read rows: %w", err)
	}

	cw.Flush()
	return n, cw.Error()
}

// FormatValue renders one column value.
func FormatValue(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return NullValue, nil
	case string:
		return v, nil
	case []byte:
		return "0x" + hex.EncodeToString(v), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case [16]byte:
		// pgx отдает uuid массивом байт
		return uuid.UUID(v).String(), nil
	case []any:
		// массивы PostgreSQL
		return formatArray(v)
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case driver.Valuer:
		value, err := v.Value()
		if err != nil {
			return "", err
		}
		if _, ok := value.(driver.Valuer); ok {
			return fmt.Sprint(value), nil
		}
		return FormatValue(value)
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// formatArray renders a PostgreSQL array literal: {1,2,NULL,"a b"}.
func formatArray(values []any) (string, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		elem, err := formatArrayElem(v)
		if err != nil {
			return "", err
		}
		sb.WriteString(elem)
	}
	sb.WriteByte('}')
	return sb.String(), nil
}

func formatArrayElem(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quoteArrayElem(v), nil
	case []any:
		return formatArray(v)
	case []byte:
		// формат bytea внутри литерала массива
		return quoteArrayElem(`\x` + hex.EncodeToString(v)), nil
	}
	s, err := FormatValue(v)
	if err != nil {
		return "", err
	}
	if s == NullValue {
		return "NULL", nil
	}
	return quoteArrayElem(s), nil
}

var arrayElemEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoteArrayElem(s string) string {
	if s != "" && !strings.EqualFold(s, "NULL") && !strings.ContainsAny(s, "{}\",\\ \t\n\r\v\f") {
		return s
	}
	return `"` + arrayElemEscaper.Replace(s) + `"`
}
