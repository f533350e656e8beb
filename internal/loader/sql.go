// Package loader writes batches into relational destinations with
// create-or-replace semantics.
package loader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

// WriteMode selects how a batch lands in the destination table. Only Replace
// is implemented; the other modes exist so their failure semantics stay
// distinct from a misconfigured replace.
type WriteMode int

const (
	// Replace discards the destination table's prior contents and schema
	// and recreates it from the batch.
	Replace WriteMode = iota
	// Append would add the batch to the existing table. Not implemented.
	Append
	// Upsert would merge the batch by primary key. Not implemented.
	Upsert
)

func (m WriteMode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Append:
		return "append"
	case Upsert:
		return "upsert"
	default:
		return fmt.Sprintf("writemode(%d)", int(m))
	}
}

var (
	// ErrUnsupportedScheme means the connection string names a store this
	// loader has no driver for.
	ErrUnsupportedScheme = errors.New("unsupported destination scheme")
	// ErrUnsupportedWriteMode means a write mode other than Replace was
	// requested.
	ErrUnsupportedWriteMode = errors.New("unsupported write mode")
)

// SQL loads batches into a relational store over database/sql.
type SQL struct {
	connString string
	target     string // credential-free connection target, for diagnostics
	table      string
	mode       WriteMode
	dialect    Dialect
	db         *sql.DB
	logger     zerolog.Logger
}

// NewSQL creates a loader for the given connection string and destination
// table. The URI scheme selects the driver and dialect.
func NewSQL(connString, table string, logger zerolog.Logger) (*SQL, error) {
	scheme, rest, found := strings.Cut(connString, "://")
	if !found {
		return nil, fmt.Errorf("parse connection string: missing scheme")
	}

	dialect, err := DialectForScheme(scheme)
	if err != nil {
		return nil, err
	}

	dsn := connString
	target := connString
	if dialect.Name() == "sqlite" {
		// modernc's driver wants a bare path or :memory:, not a URI, and a
		// sqlite DSN carries no credentials to redact.
		dsn = rest
	} else {
		u, err := url.Parse(connString)
		if err != nil {
			return nil, fmt.Errorf("parse connection string: %w", err)
		}
		target = u.Redacted()
	}

	return &SQL{
		connString: dsn,
		target:     target,
		table:      table,
		mode:       Replace,
		dialect:    dialect,
		logger:     logger,
	}, nil
}

// NewSQLWithDB creates a loader over an already-open database handle. This is
// the injection point for substitute destinations in tests.
func NewSQLWithDB(db *sql.DB, dialect Dialect, table string, logger zerolog.Logger) *SQL {
	return &SQL{
		target:  dialect.Name(),
		table:   table,
		mode:    Replace,
		dialect: dialect,
		db:      db,
		logger:  logger,
	}
}

// WithWriteMode sets the write mode applied by Load.
func (l *SQL) WithWriteMode(mode WriteMode) *SQL {
	l.mode = mode
	return l
}

// Table returns the destination table name.
func (l *SQL) Table() string {
	return l.table
}

// Connect opens the connection and verifies it with a ping.
func (l *SQL) Connect(ctx context.Context) error {
	if l.db == nil {
		db, err := sql.Open(l.dialect.DriverName(), l.connString)
		if err != nil {
			return fmt.Errorf("open connection to %s: %w", l.target, err)
		}
		l.db = db
	}

	// Verify the connection
	if err := l.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", l.target, err)
	}

	l.logger.Debug().Str("target", l.target).Msg("connected to destination store")
	return nil
}

// Load writes the batch to the destination table. With Replace mode the
// table's prior contents and schema are discarded; afterwards the table holds
// exactly the batch and nothing else.
func (l *SQL) Load(ctx context.Context, batch *pipeline.Batch) error {
	if l.db == nil {
		return fmt.Errorf("load table %q on %s: connection is not initialized", l.table, l.target)
	}
	if batch == nil {
		return fmt.Errorf("load table %q on %s: nil batch", l.table, l.target)
	}

	if l.mode != Replace {
		return fmt.Errorf("load table %q on %s: mode %s: %w", l.table, l.target, l.mode, ErrUnsupportedWriteMode)
	}

	if err := l.replace(ctx, batch); err != nil {
		return fmt.Errorf("load table %q on %s: %w", l.table, l.target, err)
	}

	l.logger.Info().
		Str("table", l.table).
		Int("rows", batch.Len()).
		Msg("replaced destination table")
	return nil
}

// Close releases the connection. Safe to call after a failed Connect.
func (l *SQL) Close(context.Context) error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx so the replace sequence can
// run transactionally where the engine allows it.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (l *SQL) replace(ctx context.Context, batch *pipeline.Batch) error {
	drop, create, insert, err := l.buildReplaceStatements(batch)
	if err != nil {
		return err
	}

	if !l.dialect.TransactionalDDL() {
		return l.execReplace(ctx, l.db, batch, drop, create, insert)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := l.execReplace(ctx, tx, batch, drop, create, insert); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			l.logger.Warn().Err(rbErr).Msg("rollback after failed replace")
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func (l *SQL) buildReplaceStatements(batch *pipeline.Batch) (drop, create, insert string, err error) {
	quotedTable := l.dialect.QuoteIdent(l.table)

	schema := batch.Schema()
	columnDefs := make([]string, len(schema))
	quotedColumns := make([]string, len(schema))
	placeholders := make([]string, len(schema))
	for i, column := range schema {
		columnType, err := l.dialect.ColumnType(column.Kind)
		if err != nil {
			return "", "", "", fmt.Errorf("infer schema: %w", err)
		}
		quotedColumns[i] = l.dialect.QuoteIdent(column.Name)
		columnDefs[i] = quotedColumns[i] + " " + columnType
		placeholders[i] = l.dialect.Placeholder(i + 1)
	}

	drop = "DROP TABLE IF EXISTS " + quotedTable
	create = "CREATE TABLE " + quotedTable +
		" (" + strings.Join(columnDefs, ", ") + ")" +
		l.dialect.CreateTableSuffix()
	insert = "INSERT INTO " + quotedTable +
		" (" + strings.Join(quotedColumns, ", ") + ")" +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"
	return drop, create, insert, nil
}

func (l *SQL) execReplace(ctx context.Context, db execer, batch *pipeline.Batch, drop, create, insert string) error {
	l.logger.Debug().Str("statement", drop).Msg("drop statement")
	if _, err := db.ExecContext(ctx, drop); err != nil {
		return fmt.Errorf("drop prior table: %w", err)
	}

	l.logger.Debug().Str("statement", create).Msg("create statement")
	if _, err := db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	l.logger.Debug().Str("statement", insert).Msg("insert statement")
	for _, row := range batch.Rows() {
		if _, err := db.ExecContext(ctx, insert, row...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}
	return nil
}
