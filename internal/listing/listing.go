// Package listing builds read-model projections for the directory pages:
// venues grouped by location, past/upcoming show splits and search result
// envelopes. Everything here is a pure function over rows loaded by the
// repositories; the current instant is always passed in by the caller so
// the partitioning rule stays testable.
package listing

import (
	"time"

	"github.com/gigboard/gigboard/internal/model"
	"github.com/gigboard/gigboard/internal/repository"
)

// VenueSummary is one venue entry inside a location group.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueGroup collects the venues sharing one (city, state) pair.
type VenueGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// SearchItem is one row of a name-search result.
type SearchItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SearchResult is the envelope returned by the search endpoints: a match
// count plus the matched ids and names.
type SearchResult struct {
	Count int          `json:"count"`
	Data  []SearchItem `json:"data"`
}

// GroupVenuesByLocation places every venue into exactly one group keyed
// by its (city, state) pair. Groups appear in first-seen order over the
// venue list, and venues keep their input order inside each group, so
// the union of all groups equals the input set. upcoming maps venue id
// to its upcoming-show count; venues absent from the map count zero.
func GroupVenuesByLocation(venues []model.Venue, upcoming map[uint64]int) []VenueGroup {
	type key struct{ city, state string }
	index := make(map[key]int)
	groups := []VenueGroup{}
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, VenueGroup{City: v.City, State: v.State, Venues: []VenueSummary{}})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return groups
}

// IsUpcoming reports whether a show starting at start counts as upcoming
// relative to now. The rule is inclusive: a show starting exactly at the
// current instant is upcoming. The same rule applies on venue and artist
// pages.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// SplitVenueShows partitions a venue's shows into past and upcoming
// relative to now. Input order (start time ascending from the
// repository) is preserved within each partition. The returned slices
// are never nil.
func SplitVenueShows(rows []repository.VenueShowRow, now time.Time) (past, upcoming []repository.VenueShowRow) {
	past = []repository.VenueShowRow{}
	upcoming = []repository.VenueShowRow{}
	for _, r := range rows {
		if IsUpcoming(r.StartTime, now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	return past, upcoming
}

// SplitArtistShows partitions an artist's shows into past and upcoming
// relative to now, with the same inclusive rule as SplitVenueShows.
func SplitArtistShows(rows []repository.ArtistShowRow, now time.Time) (past, upcoming []repository.ArtistShowRow) {
	past = []repository.ArtistShowRow{}
	upcoming = []repository.ArtistShowRow{}
	for _, r := range rows {
		if IsUpcoming(r.StartTime, now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	return past, upcoming
}

// VenueSearchResult shapes venue search matches into the search envelope.
func VenueSearchResult(venues []model.Venue) SearchResult {
	items := make([]SearchItem, 0, len(venues))
	for _, v := range venues {
		items = append(items, SearchItem{ID: v.ID, Name: v.Name})
	}
	return SearchResult{Count: len(items), Data: items}
}

// ArtistSearchResult shapes artist search matches into the search envelope.
func ArtistSearchResult(artists []model.Artist) SearchResult {
	items := make([]SearchItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, SearchItem{ID: a.ID, Name: a.Name})
	}
	return SearchResult{Count: len(items), Data: items}
}
