// This file defines handlers for artists: the flat directory list, name
// search, the detail page with its past/upcoming show split, and the
// create, edit and delete operations.
package handler

import (
	"errors"   // errors matches repository sentinel values
	"fmt"      // fmt builds the flash-style notices
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities
	"time"     // time supplies the partition instant

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/gigboard/gigboard/internal/listing"    // listing builds the read-model projections
	"github.com/gigboard/gigboard/internal/model"      // model defines the persisted entity structs
	"github.com/gigboard/gigboard/internal/queue"      // queue names the activity actions
	"github.com/gigboard/gigboard/internal/repository" // repository holds the data access layer
)

// ArtistHandler bundles the repositories the artist pages need.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo // ArtistRepo provides artist persistence
	ShowRepo   *repository.ShowRepo   // ShowRepo provides show lookups for the split
}

// NewArtistHandler constructs an ArtistHandler and panics if any dependency is nil.
func NewArtistHandler(artistRepo *repository.ArtistRepo, showRepo *repository.ShowRepo) *ArtistHandler {
	if artistRepo == nil || showRepo == nil {
		panic("nil repository passed to NewArtistHandler")
	}
	return &ArtistHandler{ArtistRepo: artistRepo, ShowRepo: showRepo}
}

// artistForm is the typed payload bound from the artist create and edit
// forms.
type artistForm struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	Website            string   `json:"website" form:"website"`
	SeekingVenue       string   `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
	Genres             []string `json:"genres" form:"genres"`
}

// toModel converts the bound form into an artist entity, reporting the
// first missing required field or unknown genre.
func (f *artistForm) toModel() (*model.Artist, string) {
	name := strings.TrimSpace(f.Name)
	city := strings.TrimSpace(f.City)
	state := strings.TrimSpace(f.State)
	if name == "" {
		return nil, "name is required"
	}
	if city == "" {
		return nil, "city is required"
	}
	if state == "" {
		return nil, "state is required"
	}
	if !validGenres(f.Genres) {
		return nil, "unknown genre"
	}
	genres := f.Genres
	if genres == nil {
		genres = []string{}
	}
	return &model.Artist{
		Name:               name,
		City:               city,
		State:              state,
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		Website:            strings.TrimSpace(f.Website),
		SeekingVenue:       parseCheckbox(f.SeekingVenue),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
		Genres:             genres,
	}, ""
}

// artistDetail is the view model for a single artist page.
type artistDetail struct {
	ID                 uint64                     `json:"id"`
	Name               string                     `json:"name"`
	Genres             []string                   `json:"genres"`
	City               string                     `json:"city"`
	State              string                     `json:"state"`
	Phone              string                     `json:"phone"`
	Website            string                     `json:"website"`
	FacebookLink       string                     `json:"facebook_link"`
	SeekingVenue       bool                       `json:"seeking_venue"`
	SeekingDescription string                     `json:"seeking_description"`
	ImageLink          string                     `json:"image_link"`
	PastShows          []repository.ArtistShowRow `json:"past_shows"`
	UpcomingShows      []repository.ArtistShowRow `json:"upcoming_shows"`
	PastShowsCount     int                        `json:"past_shows_count"`
	UpcomingShowsCount int                        `json:"upcoming_shows_count"`
}

// Artists handles GET /artists and returns the flat artist directory.
func (h *ArtistHandler) Artists(c echo.Context) error {
	artists, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]listing.SearchItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, listing.SearchItem{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": items})
}

// SearchArtists handles POST /artists/search with a case-insensitive
// substring match on artist names. An empty term matches every artist.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	var body struct {
		SearchTerm string `json:"search_term" form:"search_term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artists, err := h.ArtistRepo.SearchByName(c.Request().Context(), body.SearchTerm)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results":     listing.ArtistSearchResult(artists),
		"search_term": body.SearchTerm,
	})
}

// ShowArtist handles GET /artists/:id and returns the artist detail view
// with shows partitioned into past and upcoming. The partition rule is
// the same inclusive one the venue page uses.
func (h *ArtistHandler) ShowArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	artist, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.ShowRepo.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	past, upcoming := listing.SplitArtistShows(rows, time.Now().UTC())
	return c.JSON(http.StatusOK, echo.Map{"artist": artistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.Genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}})
}

// CreateArtistForm handles GET /artists/create and returns the blank
// form view model together with the fixed choice lists.
func (h *ArtistHandler) CreateArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form":          artistForm{Genres: []string{}},
		"genre_choices": GenreChoices,
		"state_choices": StateChoices,
	})
}

// CreateArtist handles POST /artists/create.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var form artistForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artist, problem := form.toModel()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	if err := h.ArtistRepo.Create(c.Request().Context(), artist); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": fmt.Sprintf("An error occurred. Artist %s could not be listed.", artist.Name),
		})
	}
	publishActivity(c, "artist", artist.ID, artist.Name, queue.ActionListed)
	return c.JSON(http.StatusCreated, echo.Map{
		"notice": fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		"artist": artist,
	})
}

// DeleteArtist handles DELETE /artists/:id. Deleting an artist that
// still has shows is blocked and reported as a conflict.
func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	artist, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.ArtistRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrArtistNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{
				"notice": fmt.Sprintf("An error occurred. Artist %s still has shows and was not deleted.", artist.Name),
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"notice": fmt.Sprintf("An error occurred. Artist %s could not be deleted.", artist.Name),
			})
		}
	}
	publishActivity(c, "artist", id, artist.Name, queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{
		"notice": fmt.Sprintf("Artist %s was deleted.", artist.Name),
	})
}

// EditArtistForm handles GET /artists/:id/edit and returns the form view
// model prefilled from the stored record.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	artist, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	seeking := ""
	if artist.SeekingVenue {
		seeking = "y"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"form": artistForm{
			Name:               artist.Name,
			City:               artist.City,
			State:              artist.State,
			Phone:              artist.Phone,
			ImageLink:          artist.ImageLink,
			FacebookLink:       artist.FacebookLink,
			Website:            artist.Website,
			SeekingVenue:       seeking,
			SeekingDescription: artist.SeekingDescription,
			Genres:             artist.Genres,
		},
		"artist_id":     artist.ID,
		"genre_choices": GenreChoices,
		"state_choices": StateChoices,
	})
}

// EditArtist handles POST /artists/:id/edit as a full-record overwrite.
func (h *ArtistHandler) EditArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var form artistForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artist, problem := form.toModel()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	artist.ID = id
	if err := h.ArtistRepo.Update(c.Request().Context(), artist); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": fmt.Sprintf("Artist %s edit failed", artist.Name),
		})
	}
	updated, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		updated = artist
	}
	publishActivity(c, "artist", id, updated.Name, queue.ActionEdited)
	return c.JSON(http.StatusOK, echo.Map{
		"notice": fmt.Sprintf("Artist %s edited successfully", updated.Name),
		"artist": updated,
	})
}
