// Package handler exposes HTTP handlers for the directory pages. This file
// defines handlers for venues: the grouped directory, name search, the
// detail page with its past/upcoming show split, and the create, edit and
// delete operations. Handlers produce view models; rendering them is the
// job of the presentation layer in front of this service.
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

// VenueHandler bundles the repositories the venue pages need.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo // VenueRepo provides venue persistence
	ShowRepo  *repository.ShowRepo  // ShowRepo provides show lookups for the split and counts
}

// NewVenueHandler constructs a VenueHandler and panics if any dependency is nil.
func NewVenueHandler(venueRepo *repository.VenueRepo, showRepo *repository.ShowRepo) *VenueHandler {
	if venueRepo == nil || showRepo == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{VenueRepo: venueRepo, ShowRepo: showRepo}
}

// venueForm is the typed payload bound from the venue create and edit
// forms. Checkbox and multi-select fields arrive as strings and string
// lists; normalization happens once here at the boundary.
type venueForm struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Address            string   `json:"address" form:"address"`
	Phone              string   `json:"phone" form:"phone"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	Website            string   `json:"website" form:"website"`
	SeekingTalent      string   `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
	Genres             []string `json:"genres" form:"genres"`
}

// toModel converts the bound form into a venue entity. It returns a
// human-readable problem description when a required field is missing
// or a submitted genre is not on the choice list.
func (f *venueForm) toModel() (*model.Venue, string) {
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
	return &model.Venue{
		Name:               name,
		City:               city,
		State:              state,
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		Website:            strings.TrimSpace(f.Website),
		SeekingTalent:      parseCheckbox(f.SeekingTalent),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
		Genres:             genres,
	}, ""
}

// venueDetail is the view model for a single venue page: the full record
// plus its shows split into past and upcoming relative to the request
// instant.
type venueDetail struct {
	ID                 uint64                    `json:"id"`
	Name               string                    `json:"name"`
	Genres             []string                  `json:"genres"`
	Address            string                    `json:"address"`
	City               string                    `json:"city"`
	State              string                    `json:"state"`
	Phone              string                    `json:"phone"`
	Website            string                    `json:"website"`
	FacebookLink       string                    `json:"facebook_link"`
	SeekingTalent      bool                      `json:"seeking_talent"`
	SeekingDescription string                    `json:"seeking_description"`
	ImageLink          string                    `json:"image_link"`
	PastShows          []repository.VenueShowRow `json:"past_shows"`
	UpcomingShows      []repository.VenueShowRow `json:"upcoming_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
}

// Venues handles GET /venues and returns the directory grouped by
// distinct (city, state) pairs, each venue annotated with its
// upcoming-show count.
func (h *VenueHandler) Venues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.VenueRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	counts, err := h.ShowRepo.CountUpcomingByVenue(ctx, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": listing.GroupVenuesByLocation(venues, counts)})
}

// SearchVenues handles POST /venues/search with a case-insensitive
// substring match on venue names. An empty term matches every venue.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	var body struct {
		SearchTerm string `json:"search_term" form:"search_term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venues, err := h.VenueRepo.SearchByName(c.Request().Context(), body.SearchTerm)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results":     listing.VenueSearchResult(venues),
		"search_term": body.SearchTerm,
	})
}

// ShowVenue handles GET /venues/:id and returns the venue detail view
// with its shows partitioned into past and upcoming.
func (h *VenueHandler) ShowVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	venue, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.ShowRepo.ListByVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	past, upcoming := listing.SplitVenueShows(rows, time.Now().UTC())
	return c.JSON(http.StatusOK, echo.Map{"venue": venueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.Genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}})
}

// CreateVenueForm handles GET /venues/create and returns the blank form
// view model together with the fixed choice lists.
func (h *VenueHandler) CreateVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form":          venueForm{Genres: []string{}},
		"genre_choices": GenreChoices,
		"state_choices": StateChoices,
	})
}

// CreateVenue handles POST /venues/create. On success the created record
// is returned with a flash-style notice; any storage failure degrades to
// a generic failure notice naming the submitted venue.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var form venueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venue, problem := form.toModel()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	if err := h.VenueRepo.Create(c.Request().Context(), venue); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": fmt.Sprintf("An error occurred. Venue %s could not be listed.", venue.Name),
		})
	}
	publishActivity(c, "venue", venue.ID, venue.Name, queue.ActionListed)
	return c.JSON(http.StatusCreated, echo.Map{
		"notice": fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		"venue":  venue,
	})
}

// DeleteVenue handles DELETE /venues/:id. Deleting a venue that still
// has shows is blocked and reported as a conflict; shows are never
// cascade-deleted.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	venue, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.VenueRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{
				"notice": fmt.Sprintf("An error occurred. Venue %s still has shows and was not deleted.", venue.Name),
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"notice": fmt.Sprintf("An error occurred. Venue %s could not be deleted.", venue.Name),
			})
		}
	}
	publishActivity(c, "venue", id, venue.Name, queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{
		"notice": fmt.Sprintf("Venue %s was deleted.", venue.Name),
	})
}

// EditVenueForm handles GET /venues/:id/edit and returns the form view
// model prefilled from the stored record.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	venue, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	seeking := ""
	if venue.SeekingTalent {
		seeking = "y"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"form": venueForm{
			Name:               venue.Name,
			City:               venue.City,
			State:              venue.State,
			Address:            venue.Address,
			Phone:              venue.Phone,
			ImageLink:          venue.ImageLink,
			FacebookLink:       venue.FacebookLink,
			Website:            venue.Website,
			SeekingTalent:      seeking,
			SeekingDescription: venue.SeekingDescription,
			Genres:             venue.Genres,
		},
		"venue_id":      venue.ID,
		"genre_choices": GenreChoices,
		"state_choices": StateChoices,
	})
}

// EditVenue handles POST /venues/:id/edit as a full-record overwrite:
// the submitted form replaces every mutable field of the stored venue.
func (h *VenueHandler) EditVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var form venueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venue, problem := form.toModel()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}
	venue.ID = id
	if err := h.VenueRepo.Update(c.Request().Context(), venue); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": fmt.Sprintf("Venue %s edit failed", venue.Name),
		})
	}
	updated, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		// fallback: return the submitted record even if the re-read fails
		updated = venue
	}
	publishActivity(c, "venue", id, updated.Name, queue.ActionEdited)
	return c.JSON(http.StatusOK, echo.Map{
		"notice": fmt.Sprintf("Venue %s edited successfully", updated.Name),
		"venue":  updated,
	})
}
