// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store exports gene lookups to a SQLite database. The database is
// an output sink only: lookups never read it back.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gene-mapper/pkg/types"
)

// Record is one stored mapping with the time it was written.
type Record struct {
	types.GeneMapping
	LookedUpAt time.Time `json:"looked_up_at" yaml:"looked_up_at"`
}

// Store manages the export SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and its schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS gene_mappings (
		accession TEXT PRIMARY KEY,
		gene TEXT,
		looked_up_at TEXT NOT NULL
	)`)
	return err
}

// Save upserts every mapping of lookup in a single transaction. Absent
// genes are stored as NULL. It returns the number of rows written.
func (s *Store) Save(ctx context.Context, lookup *types.GeneLookup) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO gene_mappings (accession, gene, looked_up_at)
		VALUES (?, ?, ?)
		ON CONFLICT(accession) DO UPDATE SET gene = excluded.gene, looked_up_at = excluded.looked_up_at`)
	if err != nil {
		return 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	stamp := s.now().UTC().Format(time.RFC3339Nano)
	n := 0
	for _, m := range lookup.Entries() {
		var gene sql.NullString
		if m.Gene != nil {
			gene = sql.NullString{String: *m.Gene, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, m.Accession, gene, stamp); err != nil {
			return 0, fmt.Errorf("saving %s: %w", m.Accession, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return n, nil
}

// All returns every stored mapping ordered by accession.
func (s *Store) All(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT accession, gene, looked_up_at FROM gene_mappings ORDER BY accession`)
	if err != nil {
		return nil, fmt.Errorf("querying mappings: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec   Record
			gene  sql.NullString
			stamp string
		)
		if err := rows.Scan(&rec.Accession, &gene, &stamp); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}
		if gene.Valid {
			rec.Gene = types.GeneName(gene.String)
		}
		if t, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
			rec.LookedUpAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
