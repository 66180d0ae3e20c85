// Web server for go-miniblog
package main

import (
	"flag"
	"log"

	"github.com/go-while/go-miniblog/internal/config"
	"github.com/go-while/go-miniblog/internal/database"
	"github.com/go-while/go-miniblog/internal/web"
)

var (
	// command-line flags
	dbfile      string
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	debug       bool
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.StringVar(&dbfile, "dbfile", "", "Path to sqlite database file (default: from config)")
	flag.IntVar(&webport, "webport", 0, "Web server port (default: 8080)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[WEB]: Error loading configuration: %v", err)
	}
	log.Printf("Starting go-miniblog: Web Server (version: %s)", appVersion)

	// Override config with command-line flags if provided
	if dbfile != "" {
		cfg.Database = dbfile
		log.Printf("[WEB]: Overriding database file with command-line flag: %s", cfg.Database)
	}
	if webport > 0 {
		cfg.Web.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", cfg.Web.ListenPort)
	}
	if webssl {
		cfg.Web.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		cfg.Web.CertFile = webcertFile
		log.Printf("[WEB]: SSL cert file set: %s", cfg.Web.CertFile)
	}
	if webkeyFile != "" {
		cfg.Web.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL key file set: %s", cfg.Web.KeyFile)
	}
	if debug {
		cfg.Debug = true
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("[WEB]: Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WEB]: Failed to close database: %v", err)
		}
	}()

	server := web.NewServer(db, cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("[WEB]: Server error: %v", err)
	}
}
