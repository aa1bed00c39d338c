// Package repository contains data access logic for show operations. This
// file defines repository methods for shows. A show is a booking of one
// artist at one venue at a fixed start time; it is a join entity and both
// foreign keys are required.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions
	"time"         // time carries the partition instant for upcoming counts

	"github.com/gigboard/gigboard/internal/model" // model defines the persisted entity structs
)

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// DetailedShowRow is a show denormalized with both counterpart names and
// the artist image, ready for the shows listing.
type DetailedShowRow struct {
	ID              uint64    `json:"id"`
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShowRow is a show seen from its venue: it carries the artist's
// display fields so the venue page can render without further lookups.
type VenueShowRow struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShowRow is a show seen from its artist: it carries the venue's
// display fields so the artist page can render without further lookups.
type ArtistShowRow struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// Create inserts a new show inside a transaction and assigns the
// generated ID back to the show struct.  A show referencing a missing
// artist or venue fails the foreign key check and is reported as
// ErrForeignKey with nothing written.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
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

	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime)
	if err != nil {
		if isMySQLErr(err, mysqlErrNoReferencedRow) {
			err = ErrForeignKey
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	// Fetch the freshly inserted row to populate default timestamp fields.
	const sel = `SELECT created_at, updated_at FROM shows WHERE id = ?`
	if err = tx.QueryRowContext(ctx, sel, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return err
	}
	return nil
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	const q = `SELECT id, artist_id, venue_id, start_time, created_at, updated_at FROM shows WHERE id = ?`
	var s model.Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListDetailed returns every show joined with its artist and venue names
// plus the artist image, ordered by start time ascending.  When no shows
// exist it returns an empty slice and nil error.
func (r *ShowRepo) ListDetailed(ctx context.Context) ([]DetailedShowRow, error) {
	const q = `SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v  ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DetailedShowRow{}
	for rows.Next() {
		var d DetailedShowRow
		if err := rows.Scan(
			&d.ID, &d.VenueID, &d.VenueName, &d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByVenue returns all shows hosted at a venue, each denormalized with
// the performing artist's display fields, ordered by start time ascending.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]VenueShowRow, error) {
	const q = `SELECT s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VenueShowRow{}
	for rows.Next() {
		var v VenueShowRow
		if err := rows.Scan(&v.ArtistID, &v.ArtistName, &v.ArtistImageLink, &v.StartTime); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtist returns all shows played by an artist, each denormalized
// with the hosting venue's display fields, ordered by start time ascending.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT s.venue_id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ArtistShowRow{}
	for rows.Next() {
		var a ArtistShowRow
		if err := rows.Scan(&a.VenueID, &a.VenueName, &a.VenueImageLink, &a.StartTime); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountUpcomingByVenue returns, per venue id, the number of its shows
// starting at or after the given instant.  Venues with no upcoming shows
// are absent from the map.
func (r *ShowRepo) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[uint64]int, error) {
	const q = `SELECT venue_id, COUNT(*) FROM shows WHERE start_time >= ? GROUP BY venue_id`
	rows, err := r.db.QueryContext(ctx, q, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[uint64]int)
	for rows.Next() {
		var venueID uint64
		var n int
		if err := rows.Scan(&venueID, &n); err != nil {
			return nil, err
		}
		counts[venueID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Delete removes a show by id.  If the show does not exist,
// ErrShowNotFound is returned.  Shows have no dependents, so no
// conflict check is needed.
func (r *ShowRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShowNotFound
	}
	return nil
}
