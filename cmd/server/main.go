package main // Entry point package

import (
	"context" // context bounds the schema bootstrap
	"log"     // Logging library
	"time"    // time bounds the schema bootstrap

	"github.com/joho/godotenv"    // godotenv loads a local .env file when present
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/gigboard/gigboard/internal/config"     // Internal config loader
	"github.com/gigboard/gigboard/internal/database"   // Internal database setup
	"github.com/gigboard/gigboard/internal/handler"    // Internal HTTP handlers
	"github.com/gigboard/gigboard/internal/queue"      // Internal activity consumer
	"github.com/gigboard/gigboard/internal/repository" // Internal data access layer
	"github.com/gigboard/gigboard/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Connect to MySQL
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil { // Create tables when missing
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	venueRepo := repository.NewVenueRepo(db)   // Venue persistence
	artistRepo := repository.NewArtistRepo(db) // Artist persistence
	showRepo := repository.NewShowRepo(db)     // Show persistence

	e := echo.New()          // Create Echo instance
	router.RegisterRoutes(e) // Register health route
	router.RegisterVenues(e, handler.NewVenueHandler(venueRepo, showRepo))
	router.RegisterArtists(e, handler.NewArtistHandler(artistRepo, showRepo))
	router.RegisterShows(e, handler.NewShowHandler(showRepo))

	// Consume directory activity events in the background; the consumer
	// runs its own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
