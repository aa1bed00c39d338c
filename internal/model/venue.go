package model

import "time"

// Venue represents a location that can host shows.  A venue owns
// zero or more shows through shows.venue_id.  This struct
// corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City               – city where the venue is located.
//  State              – two-letter state code.
//  Address            – street address.
//  Phone              – contact phone number (free-form).
//  ImageLink          – URL of the venue's image.
//  FacebookLink       – URL of the venue's Facebook page.
//  Website            – URL of the venue's own website.
//  SeekingTalent      – whether the venue is currently looking
//                       for artists to book (defaults to false).
//  SeekingDescription – free-form text shown when SeekingTalent is set.
//  Genres             – ordered list of genres the venue hosts.
//                       Never nil for a persisted venue.
//  CreatedAt          – timestamp when the venue was created.
//  UpdatedAt          – timestamp of last update.
type Venue struct {
	ID                 uint64    `json:"id"`                  // venues.id
	Name               string    `json:"name"`                // venues.name
	City               string    `json:"city"`                // venues.city
	State              string    `json:"state"`               // venues.state
	Address            string    `json:"address"`             // venues.address
	Phone              string    `json:"phone"`               // venues.phone
	ImageLink          string    `json:"image_link"`          // venues.image_link
	FacebookLink       string    `json:"facebook_link"`       // venues.facebook_link
	Website            string    `json:"website"`             // venues.website
	SeekingTalent      bool      `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string    `json:"seeking_description"` // venues.seeking_description
	Genres             []string  `json:"genres"`              // venues.genres (comma-separated in the DB)
	CreatedAt          time.Time `json:"created_at"`          // venues.created_at
	UpdatedAt          time.Time `json:"updated_at"`          // venues.updated_at
}
