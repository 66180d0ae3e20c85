package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// RequestConn caches at most one checked-out connection for the lifetime of
// a single request. The first Get checks a connection out of the pool,
// later calls return the same handle. Release must run on every exit path
// of the request and is idempotent.
type RequestConn struct {
	db   *Database
	conn *sql.Conn
}

// NewRequestConn creates an empty per-request connection cache.
// No connection is opened until Get is called.
func (db *Database) NewRequestConn() *RequestConn {
	return &RequestConn{db: db}
}

// Get returns the request's connection, checking one out on first use.
func (rc *RequestConn) Get(ctx context.Context) (*sql.Conn, error) {
	if rc.conn != nil {
		return rc.conn, nil
	}
	conn, err := rc.db.pool.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	rc.conn = conn
	return rc.conn, nil
}

// Release returns the connection to the pool if one was ever opened.
// Safe to call multiple times and when Get was never called.
func (rc *RequestConn) Release() {
	if rc.conn == nil {
		return
	}
	if err := rc.conn.Close(); err != nil && err != sql.ErrConnDone {
		log.Printf("[DB]: Failed to release request connection: %v", err)
	}
	rc.conn = nil
}
