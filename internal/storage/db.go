package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"gdpetl/internal"
)

type DB struct {
	conn *sql.DB
}

// QueryResult is a query's output in column order.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &DB{conn: conn}, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

// ReplaceTable drops table if it exists and recreates it holding set's
// records, one row each, without an index column.
func (d *DB) ReplaceTable(table string, set internal.RecordSet) error {
	if len(set.Fields) != 2 {
		return fmt.Errorf("replace %s: want 2 fields, got %d", table, len(set.Fields))
	}
	name := quoteIdent(table)

	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + name); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	create := fmt.Sprintf(`CREATE TABLE %s (%s TEXT, %s REAL)`, name, quoteIdent(set.Fields[0]), quoteIdent(set.Fields[1]))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?)`, name, quoteIdent(set.Fields[0]), quoteIdent(set.Fields[1])))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range set.Records {
		if _, err := stmt.Exec(rec.Country, rec.GDPUSDBillions); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// ReadRecords loads a table written by ReplaceTable back in rowid order.
func (d *DB) ReadRecords(table string) (internal.RecordSet, error) {
	rows, err := d.conn.Query(`SELECT * FROM ` + quoteIdent(table) + ` ORDER BY rowid`)
	if err != nil {
		return internal.RecordSet{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return internal.RecordSet{}, err
	}
	if len(cols) != 2 {
		return internal.RecordSet{}, fmt.Errorf("table %s has %d columns, want 2", table, len(cols))
	}

	out := internal.RecordSet{Fields: cols}
	for rows.Next() {
		var rec internal.Record
		if err := rows.Scan(&rec.Country, &rec.GDPUSDBillions); err != nil {
			return internal.RecordSet{}, err
		}
		out.Records = append(out.Records, rec)
	}
	return out, rows.Err()
}

func (d *DB) Query(query string, args ...any) (QueryResult, error) {
	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return QueryResult{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return QueryResult{}, err
	}

	out := QueryResult{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return QueryResult{}, err
		}
		out.Rows = append(out.Rows, values)
	}
	return out, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
