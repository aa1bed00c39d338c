package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigboard/gigboard/internal/model"
	"github.com/gigboard/gigboard/internal/repository"
)

func TestGroupVenuesByLocation_EachVenueInExactlyOneGroup(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}
	upcoming := map[uint64]int{1: 2, 3: 1}

	groups := GroupVenuesByLocation(venues, upcoming)
	require.Len(t, groups, 2)

	// Groups appear in first-seen order over the venue list.
	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Equal(t, "CA", groups[0].State)
	assert.Equal(t, "New York", groups[1].City)

	// The union of all groups equals the full venue set.
	seen := map[uint64]int{}
	total := 0
	for _, g := range groups {
		for _, v := range g.Venues {
			seen[v.ID]++
			total++
		}
	}
	assert.Equal(t, len(venues), total)
	for _, v := range venues {
		assert.Equal(t, 1, seen[v.ID], "venue %d should appear exactly once", v.ID)
	}
}

func TestGroupVenuesByLocation_UpcomingCounts(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}
	groups := GroupVenuesByLocation(venues, map[uint64]int{1: 3})
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Venues, 2)
	assert.Equal(t, 3, groups[0].Venues[0].NumUpcomingShows)
	// A venue absent from the count map has zero upcoming shows.
	assert.Equal(t, 0, groups[0].Venues[1].NumUpcomingShows)
}

func TestGroupVenuesByLocation_SameCityDifferentState(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, Name: "Springfield Hall", City: "Springfield", State: "IL"},
		{ID: 2, Name: "Springfield Stage", City: "Springfield", State: "MA"},
	}
	groups := GroupVenuesByLocation(venues, nil)
	require.Len(t, groups, 2, "(city, state) is the group key, not city alone")
}

func TestGroupVenuesByLocation_Empty(t *testing.T) {
	groups := GroupVenuesByLocation(nil, nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestIsUpcoming_InclusiveBoundary(t *testing.T) {
	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	// A show starting exactly at the current instant is upcoming, on
	// venue and artist pages alike.
	assert.True(t, IsUpcoming(now, now))
	assert.True(t, IsUpcoming(now.Add(time.Second), now))
	assert.False(t, IsUpcoming(now.Add(-time.Second), now))
}

func TestSplitVenueShows_Partition(t *testing.T) {
	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	rows := []repository.VenueShowRow{
		{ArtistID: 1, ArtistName: "Guns N Petals", StartTime: now.Add(-48 * time.Hour)},
		{ArtistID: 2, ArtistName: "Matt Quevedo", StartTime: now},
		{ArtistID: 3, ArtistName: "The Wild Sax Band", StartTime: now.Add(24 * time.Hour)},
	}
	past, upcoming := SplitVenueShows(rows, now)

	require.Len(t, past, 1)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Guns N Petals", past[0].ArtistName)
	assert.Equal(t, "Matt Quevedo", upcoming[0].ArtistName)
	// Every show lands in exactly one partition.
	assert.Equal(t, len(rows), len(past)+len(upcoming))
}

func TestSplitArtistShows_SameRuleAsVenues(t *testing.T) {
	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	rows := []repository.ArtistShowRow{
		{VenueID: 1, VenueName: "The Musical Hop", StartTime: now},
		{VenueID: 2, VenueName: "Park Square Live Music & Coffee", StartTime: now.Add(-time.Minute)},
	}
	past, upcoming := SplitArtistShows(rows, now)
	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	// The boundary show is upcoming for the artist too, not past.
	assert.Equal(t, "The Musical Hop", upcoming[0].VenueName)
}

func TestSplitShows_EmptyInputYieldsEmptySlices(t *testing.T) {
	past, upcoming := SplitVenueShows(nil, time.Now())
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestSearchResultEnvelopes(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 4, Name: "Park Square Live Music & Coffee"},
	}
	res := VenueSearchResult(venues)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Data, 2)
	assert.Equal(t, uint64(1), res.Data[0].ID)
	assert.Equal(t, "The Musical Hop", res.Data[0].Name)

	empty := ArtistSearchResult(nil)
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Data)
}
