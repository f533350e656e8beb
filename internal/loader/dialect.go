package loader

import (
	"fmt"
	"reflect"
	"strings"
)

// Dialect captures the per-engine SQL differences the loader cares about:
// driver registration name, placeholder style, identifier quoting, column
// type mapping, and whether DDL participates in transactions.
type Dialect interface {
	Name() string
	DriverName() string
	Placeholder(n int) string
	QuoteIdent(ident string) string
	ColumnType(kind reflect.Kind) (string, error)
	CreateTableSuffix() string
	TransactionalDDL() bool
}

// DialectForScheme maps a connection URI scheme to its dialect.
func DialectForScheme(scheme string) (Dialect, error) {
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return postgresDialect{}, nil
	case "clickhouse":
		return clickhouseDialect{}, nil
	case "sqlite":
		return SQLiteDialect(), nil
	default:
		return nil, fmt.Errorf("scheme %q: %w", scheme, ErrUnsupportedScheme)
	}
}

// SQLiteDialect returns the sqlite dialect. Exported because tests inject
// in-memory sqlite databases as substitute destinations.
func SQLiteDialect() Dialect {
	return sqliteDialect{}
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "postgres" }

func (postgresDialect) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (postgresDialect) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (postgresDialect) ColumnType(kind reflect.Kind) (string, error) {
	switch kind {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "BIGINT", nil
	case reflect.String:
		return "TEXT", nil
	case reflect.Float32, reflect.Float64:
		return "DOUBLE PRECISION", nil
	case reflect.Bool:
		return "BOOLEAN", nil
	default:
		return "", fmt.Errorf("no postgres column type for kind %s", kind)
	}
}

func (postgresDialect) CreateTableSuffix() string { return "" }
func (postgresDialect) TransactionalDDL() bool    { return true }

type clickhouseDialect struct{}

func (clickhouseDialect) Name() string       { return "clickhouse" }
func (clickhouseDialect) DriverName() string { return "clickhouse" }

func (clickhouseDialect) Placeholder(int) string {
	return "?"
}

func (clickhouseDialect) QuoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

func (clickhouseDialect) ColumnType(kind reflect.Kind) (string, error) {
	switch kind {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "Int64", nil
	case reflect.String:
		return "String", nil
	case reflect.Float32, reflect.Float64:
		return "Float64", nil
	case reflect.Bool:
		return "Bool", nil
	default:
		return "", fmt.Errorf("no clickhouse column type for kind %s", kind)
	}
}

func (clickhouseDialect) CreateTableSuffix() string {
	return " ENGINE = MergeTree() ORDER BY tuple()"
}

// ClickHouse DDL is not transactional; the engine's own atomic table swap is
// what makes the replace safe there.
func (clickhouseDialect) TransactionalDDL() bool { return false }

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return "sqlite" }
func (sqliteDialect) DriverName() string { return "sqlite" }

func (sqliteDialect) Placeholder(int) string {
	return "?"
}

func (sqliteDialect) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (sqliteDialect) ColumnType(kind reflect.Kind) (string, error) {
	switch kind {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "INTEGER", nil
	case reflect.String:
		return "TEXT", nil
	case reflect.Float32, reflect.Float64:
		return "REAL", nil
	case reflect.Bool:
		return "INTEGER", nil
	default:
		return "", fmt.Errorf("no sqlite column type for kind %s", kind)
	}
}

func (sqliteDialect) CreateTableSuffix() string { return "" }
func (sqliteDialect) TransactionalDDL() bool    { return true }
