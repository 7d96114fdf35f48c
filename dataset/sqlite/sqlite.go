// Package sqlite loads datasets from a SQLite table through the pure-Go
// modernc.org/sqlite driver.
//
// The table needs the columns
//
//	item      INTEGER  row position, unique
//	features  TEXT     "0101..." or "0 1 0 1 ..."
//	label     TEXT     may be NULL
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // register the "sqlite" driver

	"github.com/hupe1980/artgo/dataset"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens the database at dsn. Pass a file path or "file::memory:?cache=shared".
func Open(dsn string) (*sql.DB, error) { return sql.Open(DriverName, dsn) }

// Load reads every row of table ordered by item and returns a validated
// matrix.
func Load(ctx context.Context, db *sql.DB, table string) (*dataset.Matrix, error) {
	query := fmt.Sprintf("SELECT item, features, label FROM %s ORDER BY item", quoteIdent(table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query %s: %w", table, err)
	}
	defer rows.Close()

	var records []dataset.Record
	for rows.Next() {
		var (
			rec   dataset.Record
			label sql.NullString
		)
		if err := rows.Scan(&rec.Item, &rec.Features, &label); err != nil {
			return nil, fmt.Errorf("sqlite: %s: %w", table, err)
		}
		rec.Label = label.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: %s: %w", table, err)
	}

	m, err := dataset.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("sqlite: %s: %w", table, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Save creates table if needed and inserts one row per item of m inside a
// single transaction.
func Save(ctx context.Context, db *sql.DB, table string, m *dataset.Matrix) error {
	if err := m.Validate(); err != nil {
		return err
	}

	name := quoteIdent(table)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (item INTEGER PRIMARY KEY, features TEXT NOT NULL, label TEXT)", name)
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("sqlite: create %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (item, features, label) VALUES (?, ?, ?)", name))
	if err != nil {
		return fmt.Errorf("sqlite: prepare %s: %w", table, err)
	}
	defer stmt.Close()

	buf := make([]byte, m.Features)
	for i, row := range m.Rows {
		for j, v := range row {
			buf[j] = '0' + v
		}

		var label sql.NullString
		if m.Labels != nil && m.Labels[i] != "" {
			label = sql.NullString{String: m.Labels[i], Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, i, string(buf), label); err != nil {
			return fmt.Errorf("sqlite: insert item %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
