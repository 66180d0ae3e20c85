package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-while/go-miniblog/internal/models"
)

// GetAllEntries returns all entries, newest first
func GetAllEntries(ctx context.Context, conn *sql.Conn) ([]*models.Entry, error) {
	rows, err := conn.QueryContext(ctx, "SELECT id, title, text FROM entries ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Text); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// InsertEntry stores a new entry. Title and text are bound as parameters,
// never interpolated. Errors propagate to the caller, there is no retry.
func InsertEntry(ctx context.Context, conn *sql.Conn, title, text string) error {
	_, err := conn.ExecContext(ctx,
		"INSERT INTO entries (title, text) VALUES (?, ?)", title, text)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}
