package main

import (
	"log"

	"github.com/Nia806/Epoch/config"
	"github.com/Nia806/Epoch/internal/database"
	"github.com/Nia806/Epoch/internal/keyvalue"
)

// Prepares the slots table in the configured relational database. Only
// needed for deployments that want the schema created ahead of first boot;
// the server runs the same migration on startup.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if _, err := keyvalue.NewGormStore(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("slots table is up to date")
}
