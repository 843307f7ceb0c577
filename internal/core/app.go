package core

import (
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"

	"github.com/moosflix/catalog/internal/config"
	"github.com/moosflix/catalog/internal/db"
)

// App holds the core components of the application that are shared
// between the server and the tests.
type App struct {
	Config *config.Config
	DB     *bolt.DB
}

// New sets up and returns a new App instance. It handles loading the
// configuration and opening the catalog database.
func New() (*App, error) {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the database and bootstrap the entity buckets
	database, err := db.Init(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Println("Core application setup complete.")
	return &App{
		Config: cfg,
		DB:     database,
	}, nil
}

// Close gracefully closes the application's resources, like the DB handle.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
