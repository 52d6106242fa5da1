package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheckHandler(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeResponse[HealthResponse](t, rr)
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, "test", resp.Env)
}

func TestListMoviesHandler(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/movies", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse[MovieListResponse](t, rr)
	require.Len(t, resp.Movies, 3)
	assert.Equal(t, "Avengers: Endgame", resp.Movies[0].Title)
	assert.Equal(t, "Avatar: The Way of Water", resp.Movies[1].Title)
	assert.Equal(t, "The Batman", resp.Movies[2].Title)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/nope", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)

	resp := decodeResponse[ErrorResponse](t, rr)
	assert.Equal(t, "The requested resource not found", resp.Message)
}

func TestParseHolidays(t *testing.T) {
	t.Run("empty input yields no holidays", func(t *testing.T) {
		holidays, err := parseHolidays("")

		require.NoError(t, err)
		assert.Empty(t, holidays)
	})

	t.Run("parses a comma-separated list", func(t *testing.T) {
		holidays, err := parseHolidays("2026-12-25, 2027-01-01")

		require.NoError(t, err)
		require.Len(t, holidays, 2)
		assert.Equal(t, 2026, holidays[0].Year())
		assert.Equal(t, 2027, holidays[1].Year())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := parseHolidays("25/12/2026")

		assert.ErrorContains(t, err, "invalid holiday date")
	})
}
