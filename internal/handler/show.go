// This file defines handlers for shows: the denormalized listing, the
// booking form and its submission, and deletion. A show links one artist
// to one venue at a start time; both references must resolve or the
// booking is rejected with nothing written.
package handler

import (
	"errors"   // errors matches repository sentinel values
	"fmt"      // fmt builds the flash-style notices
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities
	"time"     // time formats the start instant in notices

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/gigboard/gigboard/internal/model"      // model defines the persisted entity structs
	"github.com/gigboard/gigboard/internal/queue"      // queue names the activity actions
	"github.com/gigboard/gigboard/internal/repository" // repository holds the data access layer
)

// ShowHandler bundles the repositories the show pages need.
type ShowHandler struct {
	ShowRepo *repository.ShowRepo // ShowRepo provides show persistence
}

// NewShowHandler constructs a ShowHandler and panics if the dependency is nil.
func NewShowHandler(showRepo *repository.ShowRepo) *ShowHandler {
	if showRepo == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{ShowRepo: showRepo}
}

// showForm is the typed payload bound from the booking form.
type showForm struct {
	ArtistID  uint64 `json:"artist_id" form:"artist_id"`
	VenueID   uint64 `json:"venue_id" form:"venue_id"`
	StartTime string `json:"start_time" form:"start_time"`
}

// Shows handles GET /shows and returns every show denormalized with both
// counterpart names and the artist image.
func (h *ShowHandler) Shows(c echo.Context) error {
	rows, err := h.ShowRepo.ListDetailed(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": rows})
}

// CreateShowForm handles GET /shows/create and returns the blank booking
// form view model.
func (h *ShowHandler) CreateShowForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"form": showForm{}})
}

// CreateShow handles POST /shows/create. A booking that references a
// missing artist or venue fails the foreign key check and nothing is
// written; the failure surfaces as the original form's generic notice.
// Double-booking (same artist or venue at an overlapping time) is
// deliberately not prevented.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	var form showForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if form.ArtistID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "artist_id is required"})
	}
	if form.VenueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id is required"})
	}
	if strings.TrimSpace(form.StartTime) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time is required"})
	}
	startTime, err := parseStartTime(form.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time format"})
	}
	show := &model.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: startTime,
	}
	if err := h.ShowRepo.Create(c.Request().Context(), show); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return c.JSON(http.StatusConflict, echo.Map{
				"notice": "An error occurred. Show could not be listed.",
				"error":  "artist or venue does not exist",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": "An error occurred. Show could not be listed.",
		})
	}
	publishActivity(c, "show", show.ID, "", queue.ActionListed)
	return c.JSON(http.StatusCreated, echo.Map{
		"notice": "Show was successfully listed!",
		"show":   show,
	})
}

// DeleteShow handles DELETE /shows/:id. The show is looked up first so
// the cancellation notice can name its start time.
func (h *ShowHandler) DeleteShow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	show, err := h.ShowRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShowNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.ShowRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrShowNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"notice": "An error occurred and the show was not deleted.",
		})
	}
	publishActivity(c, "show", id, "", queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{
		"notice": fmt.Sprintf("Show on %s was deleted.", show.StartTime.Format(time.RFC3339)),
	})
}
