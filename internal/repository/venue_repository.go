// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for venues. A venue is a directory
// entry for a location that hosts shows; deleting one is blocked while
// shows still reference it.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"strings"      // strings builds the case-insensitive search pattern

	"github.com/gigboard/gigboard/internal/model" // model defines the persisted entity structs
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// venueCols is the column list shared by every venue SELECT so that scan
// order stays consistent across methods.
const venueCols = `id, name, city, state, address, phone, image_link, facebook_link, website,
	seeking_talent, seeking_description, genres, created_at, updated_at`

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue inside a transaction.  On success the venue's
// ID field is populated with the auto-generated value and a follow-up
// SELECT fills the DB-default timestamp fields so that callers receive a
// fully populated record.  On any failure the transaction is rolled back
// and no partial write is visible.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
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

	const qInsert = `INSERT INTO venues
		(name, city, state, address, phone, image_link, facebook_link, website,
		 seeking_talent, seeking_description, genres)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Website,
		v.SeekingTalent, v.SeekingDescription, encodeGenres(v.Genres),
	)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	// Follow-up SELECT to populate default timestamp fields (created_at, updated_at).
	const qSelect = `SELECT created_at, updated_at FROM venues WHERE id = ?`
	if err = tx.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt); err != nil {
		return err
	}
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE id = ?`
	var v model.Venue
	var genresRaw string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink,
		&v.Website, &v.SeekingTalent, &v.SeekingDescription, &genresRaw, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	v.Genres = decodeGenres(genresRaw)
	return &v, nil
}

// ListAll returns every venue ordered by id.  When no venues exist it
// returns an empty slice and nil error.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		var v model.Venue
		var genresRaw string
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink,
			&v.Website, &v.SeekingTalent, &v.SeekingDescription, &genresRaw, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		v.Genres = decodeGenres(genresRaw)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns venues whose name contains the term, matched
// case-insensitively.  An empty term matches every row.  Order is
// store-defined; no ranking is applied.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE LOWER(name) LIKE ?`
	pattern := "%" + strings.ToLower(term) + "%"
	rows, err := r.db.QueryContext(ctx, q, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		var v model.Venue
		var genresRaw string
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink,
			&v.Website, &v.SeekingTalent, &v.SeekingDescription, &genresRaw, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		v.Genres = decodeGenres(genresRaw)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the venue row identified by
// v.ID inside a transaction.  It is a full-record overwrite, not a
// partial patch: callers must supply the complete desired state.  It
// returns ErrVenueNotFound when the row does not exist.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
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

	const q = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
		    facebook_link = ?, website = ?, seeking_talent = ?, seeking_description = ?,
		    genres = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
		encodeGenres(v.Genres), v.ID,
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
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	return nil
}

// Delete removes a venue provided no shows reference it.  The check and
// the delete run in one transaction so a show created concurrently
// cannot be orphaned.  If the venue does not exist, ErrVenueNotFound is
// returned.  If shows still reference it, the delete is aborted and
// ErrConflict is returned; shows are never cascade-deleted.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
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
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	var showCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = ?`, id).Scan(&showCount); err != nil {
		return err
	}
	if showCount > 0 {
		err = ErrConflict
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		// The FK is RESTRICT, so a show inserted after the count still
		// blocks the delete at the storage layer.
		if isMySQLErr(err, mysqlErrRowIsReferenced) {
			err = ErrConflict
		}
		return err
	}
	return nil
}
