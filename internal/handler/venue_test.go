package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext builds an echo context around a recorded request. Handlers
// under test here are exercised only on their validation paths, so the
// repositories can stay nil and are never reached.
func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e := echo.New()
	return e.NewContext(req, rec), rec
}

func TestCreateVenue_MissingName(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodPost, "/venues/create", `{"city":"San Francisco","state":"CA"}`)

	require.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
}

func TestCreateVenue_MissingCityAndState(t *testing.T) {
	h := &VenueHandler{}

	c, rec := newContext(t, http.MethodPost, "/venues/create", `{"name":"The Musical Hop","state":"CA"}`)
	require.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "city is required")

	c, rec = newContext(t, http.MethodPost, "/venues/create", `{"name":"The Musical Hop","city":"San Francisco"}`)
	require.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "state is required")
}

func TestCreateVenue_UnknownGenre(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodPost, "/venues/create",
		`{"name":"The Musical Hop","city":"San Francisco","state":"CA","genres":["Polka"]}`)

	require.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown genre")
}

func TestCreateVenue_InvalidBody(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodPost, "/venues/create", `{"name":`)

	require.NoError(t, h.CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowVenue_InvalidID(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodGet, "/venues/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.ShowVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid id")
}

func TestDeleteVenue_InvalidID(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodDelete, "/venues/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.DeleteVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditVenue_ValidationRunsBeforeStorage(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodPost, "/venues/1/edit", `{"city":"San Francisco","state":"CA"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.EditVenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
}

func TestCreateVenueForm_IncludesChoices(t *testing.T) {
	h := &VenueHandler{}
	c, rec := newContext(t, http.MethodGet, "/venues/create", "")

	require.NoError(t, h.CreateVenueForm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "genre_choices")
	assert.Contains(t, rec.Body.String(), "Rock n Roll")
	assert.Contains(t, rec.Body.String(), "state_choices")
}

func TestVenueForm_ToModel(t *testing.T) {
	f := venueForm{
		Name:          "  The Musical Hop  ",
		City:          "San Francisco",
		State:         "CA",
		SeekingTalent: "y",
		Genres:        []string{"Jazz", "Reggae"},
	}
	v, problem := f.toModel()
	require.Empty(t, problem)
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, []string{"Jazz", "Reggae"}, v.Genres)

	// Omitted genres normalize to an empty list, never nil.
	v, problem = (&venueForm{Name: "X", City: "Y", State: "CA"}).toModel()
	require.Empty(t, problem)
	assert.NotNil(t, v.Genres)
	assert.False(t, v.SeekingTalent, "seeking_talent defaults to false when unset")
}
