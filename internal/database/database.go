// Package database provides sqlite storage for go-miniblog
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

// Database wraps the main sqlite connection pool.
// Request handlers never touch the pool directly; they check a single
// connection out per request via RequestConn.
type Database struct {
	pool   *sql.DB
	dbfile string
}

// initSchemaSQL drops and recreates the entries table. Destructive,
// only ever executed by the initdb command.
const initSchemaSQL = `
DROP TABLE IF EXISTS entries;
CREATE TABLE entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	text TEXT NOT NULL
);
`

// Open opens the sqlite database at dbfile and verifies it is reachable.
func Open(dbfile string) (*Database, error) {
	if dbfile == "" {
		return nil, fmt.Errorf("database file path is empty")
	}
	if dir := filepath.Dir(dbfile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	// Pragmas go into the DSN so every connection the pool opens gets them
	pool, err := sql.Open("sqlite3", dbfile+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbfile, err)
	}

	// sql.Open is lazy, force a connection so a bad location fails here
	if err := pool.Ping(); err != nil {
		if cerr := pool.Close(); cerr != nil {
			log.Printf("[DB]: Failed to close pool during ping error: %v", cerr)
		}
		return nil, fmt.Errorf("database %s is unreachable: %w", dbfile, err)
	}

	return &Database{pool: pool, dbfile: dbfile}, nil
}

// InitSchema drops and recreates the entries table
func (db *Database) InitSchema(ctx context.Context) error {
	if _, err := db.pool.ExecContext(ctx, initSchemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// DBFile returns the path of the underlying database file
func (db *Database) DBFile() string {
	return db.dbfile
}

// Stats returns connection pool statistics for monitoring
func (db *Database) Stats() sql.DBStats {
	return db.pool.Stats()
}

// Close closes the underlying connection pool
func (db *Database) Close() error {
	return db.pool.Close()
}
