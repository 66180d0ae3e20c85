// initdb initializes (or resets) the go-miniblog database schema.
// Destructive: drops and recreates the entries table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-while/go-miniblog/internal/config"
	"github.com/go-while/go-miniblog/internal/database"
)

var dbfile string

func main() {
	flag.StringVar(&dbfile, "dbfile", "", "Path to sqlite database file (default: from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[INITDB]: Error loading configuration: %v", err)
		os.Exit(1)
	}
	if dbfile != "" {
		cfg.Database = dbfile
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Printf("[INITDB]: Failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[INITDB]: Failed to close database: %v", err)
		}
	}()

	if err := db.InitSchema(context.Background()); err != nil {
		log.Printf("[INITDB]: Failed to initialize schema: %v", err)
		os.Exit(1)
	}

	fmt.Println("Initialized the database")
}
