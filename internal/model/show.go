package model

import "time"

// Show represents a scheduled booking of one artist at one venue
// at a fixed start time.  A show is a join entity: it has no
// meaning absent its artist and venue, and both foreign keys are
// required.  This struct corresponds to a row in the `shows` table.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – artist performing the show (must reference artists.id).
//  VenueID   – venue hosting the show (must reference venues.id).
//  StartTime – when the show begins.  A show whose start time is at
//              or after the current instant counts as upcoming,
//              otherwise it is past.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Show struct {
	ID        uint64    `json:"id"`         // shows.id
	ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
	VenueID   uint64    `json:"venue_id"`   // shows.venue_id
	StartTime time.Time `json:"start_time"` // shows.start_time
	CreatedAt time.Time `json:"created_at"` // shows.created_at
	UpdatedAt time.Time `json:"updated_at"` // shows.updated_at
}
