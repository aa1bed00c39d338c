// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for artists. An artist is a directory
// entry for a performer; deleting one is blocked while shows still
// reference it.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"strings"      // strings builds the case-insensitive search pattern

	"github.com/gigboard/gigboard/internal/model" // model defines the persisted entity structs
)

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// artistCols is the column list shared by every artist SELECT so that scan
// order stays consistent across methods.
const artistCols = `id, name, city, state, phone, image_link, facebook_link, website,
	seeking_venue, seeking_description, genres, created_at, updated_at`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist inside a transaction.  On success the
// artist's ID field is populated with the auto-generated value and a
// follow-up SELECT fills the DB-default timestamp fields.  On any
// failure the transaction is rolled back and no partial write is
// visible.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	const qInsert = `INSERT INTO artists
		(name, city, state, phone, image_link, facebook_link, website,
		 seeking_venue, seeking_description, genres)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink, a.Website,
		a.SeekingVenue, a.SeekingDescription, encodeGenres(a.Genres),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM artists WHERE id = ?`
	if err = tx.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return err
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}
	return nil
}

// GetByID fetches an artist by its ID.  It returns ErrArtistNotFound if
// no row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE id = ?`
	var a model.Artist
	var genresRaw string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink, &a.FacebookLink,
		&a.Website, &a.SeekingVenue, &a.SeekingDescription, &genresRaw, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	a.Genres = decodeGenres(genresRaw)
	return &a, nil
}

// ListAll returns every artist ordered by id.  When no artists exist it
// returns an empty slice and nil error.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Artist
	for rows.Next() {
		var a model.Artist
		var genresRaw string
		if err := rows.Scan(
			&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink, &a.FacebookLink,
			&a.Website, &a.SeekingVenue, &a.SeekingDescription, &genresRaw, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Genres = decodeGenres(genresRaw)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns artists whose name contains the term, matched
// case-insensitively.  An empty term matches every row.  Order is
// store-defined; no ranking is applied.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE LOWER(name) LIKE ?`
	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := r.db.QueryContext(ctx, q, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Artist
	for rows.Next() {
		var a model.Artist
		var genresRaw string
		if err := rows.Scan(
			&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink, &a.FacebookLink,
			&a.Website, &a.SeekingVenue, &a.SeekingDescription, &genresRaw, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Genres = decodeGenres(genresRaw)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the artist row identified by
// a.ID inside a transaction.  It is a full-record overwrite, not a
// partial patch.  It returns ErrArtistNotFound when the row does not
// exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, image_link = ?,
		    facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?,
		    genres = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
		encodeGenres(a.Genres), a.ID,
	)
	if err != nil {
		return err
	}
	// RowsAffected is 0 both for a missing row and for an update that
	// changed nothing, so existence is confirmed separately.
	if _, err = res.RowsAffected(); err != nil {
		return err
	}
	var one int
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	return nil
}

// Delete removes an artist provided no shows reference it.  The check
// and the delete run in one transaction.  If the artist does not exist,
// ErrArtistNotFound is returned.  If shows still reference it, the
// delete is aborted and ErrConflict is returned; shows are never
// cascade-deleted.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var one int
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	var showCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = ?`, id).Scan(&showCount); err != nil {
		return err
	}
	if showCount > 0 {
		err = ErrConflict
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
		if isMySQLErr(err, mysqlErrRowIsReferenced) {
			err = ErrConflict
		}
		return err
	}
	return nil
}
