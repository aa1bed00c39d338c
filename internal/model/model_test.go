package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The API exposes these structs directly in create and edit responses,
// so their JSON keys must stay snake_case like every other view model.
func TestVenue_JSONKeysAreSnakeCase(t *testing.T) {
	venue := Venue{
		ID:                 1,
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://example.com/hop.jpg",
		FacebookLink:       "https://facebook.com/themusicalhop",
		Website:            "https://themusicalhop.com",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist.",
		Genres:             []string{"Jazz", "Reggae"},
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	data, err := json.Marshal(venue)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))

	for _, key := range []string{
		"id", "name", "city", "state", "address", "phone",
		"image_link", "facebook_link", "website",
		"seeking_talent", "seeking_description", "genres",
		"created_at", "updated_at",
	} {
		assert.Contains(t, keys, key)
	}
	assert.NotContains(t, keys, "ImageLink")
	assert.NotContains(t, keys, "SeekingTalent")
}

func TestArtist_JSONKeysAreSnakeCase(t *testing.T) {
	artist := Artist{
		ID:           2,
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		SeekingVenue: true,
		Genres:       []string{"Rock n Roll"},
	}

	data, err := json.Marshal(artist)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.Contains(t, keys, "seeking_venue")
	assert.Contains(t, keys, "image_link")
	assert.NotContains(t, keys, "SeekingVenue")
}

func TestShow_JSONKeysAreSnakeCase(t *testing.T) {
	show := Show{ID: 3, ArtistID: 2, VenueID: 1, StartTime: time.Now()}

	data, err := json.Marshal(show)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.Contains(t, keys, "artist_id")
	assert.Contains(t, keys, "venue_id")
	assert.Contains(t, keys, "start_time")
	assert.NotContains(t, keys, "ArtistID")
}
