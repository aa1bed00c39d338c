package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gigboard/gigboard/internal/handler"
)

// RegisterVenues registers the venue directory endpoints: grouped
// browsing, search, detail, and the create/edit/delete operations. The
// create and edit GET routes serve form view models for the
// presentation layer.
func RegisterVenues(e *echo.Echo, v *handler.VenueHandler) {
	e.GET("/venues", v.Venues)
	e.POST("/venues/search", v.SearchVenues)
	// The literal "create" segment takes precedence over the :id
	// parameter, so /venues/create never parses as an id.
	e.GET("/venues/create", v.CreateVenueForm)
	e.POST("/venues/create", v.CreateVenue)
	e.GET("/venues/:id", v.ShowVenue)
	e.DELETE("/venues/:id", v.DeleteVenue)
	e.GET("/venues/:id/edit", v.EditVenueForm)
	e.POST("/venues/:id/edit", v.EditVenue)
}

// RegisterArtists registers the artist directory endpoints, mirroring
// the venue surface.
func RegisterArtists(e *echo.Echo, a *handler.ArtistHandler) {
	e.GET("/artists", a.Artists)
	e.POST("/artists/search", a.SearchArtists)
	e.GET("/artists/create", a.CreateArtistForm)
	e.POST("/artists/create", a.CreateArtist)
	e.GET("/artists/:id", a.ShowArtist)
	e.DELETE("/artists/:id", a.DeleteArtist)
	e.GET("/artists/:id/edit", a.EditArtistForm)
	e.POST("/artists/:id/edit", a.EditArtist)
}

// RegisterShows registers the show listing and booking endpoints.
func RegisterShows(e *echo.Echo, s *handler.ShowHandler) {
	e.GET("/shows", s.Shows)
	e.GET("/shows/create", s.CreateShowForm)
	e.POST("/shows/create", s.CreateShow)
	e.DELETE("/shows/:id", s.DeleteShow)
}
