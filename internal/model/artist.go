package model

import "time"

// Artist represents a performer that can be booked for shows.
// An artist owns zero or more shows through shows.artist_id.
// This struct corresponds to a row in the `artists` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the artist or band.
//  City               – home city of the artist.
//  State              – two-letter state code.
//  Phone              – contact phone number (free-form).
//  ImageLink          – URL of the artist's image.
//  FacebookLink       – URL of the artist's Facebook page.
//  Website            – URL of the artist's own website.
//  SeekingVenue       – whether the artist is currently looking
//                       for venues to play at (defaults to false).
//  SeekingDescription – free-form text shown when SeekingVenue is set.
//  Genres             – ordered list of genres the artist performs.
//  CreatedAt          – timestamp when the artist was created.
//  UpdatedAt          – timestamp of last update.
type Artist struct {
	ID                 uint64    `json:"id"`                  // artists.id
	Name               string    `json:"name"`                // artists.name
	City               string    `json:"city"`                // artists.city
	State              string    `json:"state"`               // artists.state
	Phone              string    `json:"phone"`               // artists.phone
	ImageLink          string    `json:"image_link"`          // artists.image_link
	FacebookLink       string    `json:"facebook_link"`       // artists.facebook_link
	Website            string    `json:"website"`             // artists.website
	SeekingVenue       bool      `json:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string    `json:"seeking_description"` // artists.seeking_description
	Genres             []string  `json:"genres"`              // artists.genres (comma-separated in the DB)
	CreatedAt          time.Time `json:"created_at"`          // artists.created_at
	UpdatedAt          time.Time `json:"updated_at"`          // artists.updated_at
}
