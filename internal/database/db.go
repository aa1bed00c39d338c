package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the directory tables when they do not exist yet.
// Statements are idempotent so the function is safe to run on every start.
// shows.artist_id and shows.venue_id are RESTRICT foreign keys: a venue or
// artist that still owns shows cannot be deleted out from under them.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS venues (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(120) NOT NULL,
			state VARCHAR(120) NOT NULL,
			address VARCHAR(120) NOT NULL DEFAULT '',
			phone VARCHAR(120) NOT NULL DEFAULT '',
			image_link VARCHAR(500) NOT NULL DEFAULT '',
			facebook_link VARCHAR(120) NOT NULL DEFAULT '',
			website VARCHAR(200) NOT NULL DEFAULT '',
			seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(500) NOT NULL DEFAULT '',
			genres TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS artists (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(120) NOT NULL,
			state VARCHAR(120) NOT NULL,
			phone VARCHAR(120) NOT NULL DEFAULT '',
			image_link VARCHAR(500) NOT NULL DEFAULT '',
			facebook_link VARCHAR(120) NOT NULL DEFAULT '',
			website VARCHAR(200) NOT NULL DEFAULT '',
			seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(500) NOT NULL DEFAULT '',
			genres TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS shows (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			artist_id BIGINT UNSIGNED NOT NULL,
			venue_id BIGINT UNSIGNED NOT NULL,
			start_time DATETIME NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			KEY idx_shows_artist (artist_id),
			KEY idx_shows_venue (venue_id),
			KEY idx_shows_start_time (start_time),
			CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE RESTRICT,
			CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE RESTRICT
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
