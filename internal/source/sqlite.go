package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite pages over one text column of a SQLite table in rowid order. The
// table must have a rowid, so views and WITHOUT ROWID tables are not
// supported.
type SQLite struct {
	db     *sqlx.DB
	table  string
	column string
}

// OpenSQLite opens the database at path read-only and returns a source over
// table.column.
func OpenSQLite(ctx context.Context, path, table, column string) (*SQLite, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite source: %w", err)
	}
	return NewSQLite(db, table, column), nil
}

// NewSQLite returns a source over table.column of an already open database.
func NewSQLite(db *sqlx.DB, table, column string) *SQLite {
	return &SQLite{db: db, table: table, column: column}
}

// Fetch implements Source.
func (s *SQLite) Fetch(ctx context.Context, start, limit int) (Page, error) {
	if err := checkRange(start, limit); err != nil {
		return Page{}, err
	}

	query, args, err := sq.Select(quoteIdent(s.column)).
		From(quoteIdent(s.table)).
		OrderBy("rowid").
		Limit(uint64(limit)).
		Offset(uint64(start)).
		ToSql()
	if err != nil {
		return Page{}, fmt.Errorf("failed to build page query: %w", err)
	}

	var rows []string
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return Page{}, fmt.Errorf("failed to query %s.%s: %w", s.table, s.column, err)
	}
	slog.Debug("Fetched sqlite page", "table", s.table, "start", start, "rows", len(rows))
	return shortPage(rows, limit), nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// quoteIdent quotes name as a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
