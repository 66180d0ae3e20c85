// Package models defines core data structures for go-miniblog
package models

// Entry represents a single blog post
type Entry struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Text  string `json:"text" db:"text"`
}
