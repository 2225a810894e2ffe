package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"
)

func newQueryContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func assertAppError(t *testing.T, err error, httpCode int, errorCode string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httpCode, appErr.HTTPCode())
	assert.Equal(t, errorCode, appErr.ErrorCode())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newQueryContext(t, "/health")

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestBindNearbyQuery_FullQuery(t *testing.T) {
	c, _ := newQueryContext(t, "/donations?latitude=12.97&longitude=77.59&radius=5&category=produce&status=available&page=2&limit=10")

	query, err := bindNearbyQuery(c)
	require.NoError(t, err)
	require.NotNil(t, query.Latitude)
	require.NotNil(t, query.Longitude)
	require.NotNil(t, query.RadiusKm)
	require.NotNil(t, query.Page)
	require.NotNil(t, query.Limit)
	assert.InDelta(t, 12.97, *query.Latitude, 1e-9)
	assert.InDelta(t, 77.59, *query.Longitude, 1e-9)
	assert.InDelta(t, 5, *query.RadiusKm, 1e-9)
	assert.Equal(t, "produce", query.Category)
	assert.Equal(t, "available", query.Status)
	assert.Equal(t, 2, *query.Page)
	assert.Equal(t, 10, *query.Limit)
}

func TestBindNearbyQuery_AbsentParamsStayNil(t *testing.T) {
	c, _ := newQueryContext(t, "/products")

	query, err := bindNearbyQuery(c)
	require.NoError(t, err)
	assert.Nil(t, query.Latitude)
	assert.Nil(t, query.Longitude)
	assert.Nil(t, query.RadiusKm)
	assert.Nil(t, query.Page)
	assert.Nil(t, query.Limit)
}

func TestBindNearbyQuery_ExplicitZerosAreKept(t *testing.T) {
	// Zeros must survive binding so the usecase rejects them instead of
	// applying defaults.
	c, _ := newQueryContext(t, "/donations?radius=0&page=0&limit=0")

	query, err := bindNearbyQuery(c)
	require.NoError(t, err)
	require.NotNil(t, query.RadiusKm)
	require.NotNil(t, query.Page)
	require.NotNil(t, query.Limit)
	assert.Zero(t, *query.RadiusKm)
	assert.Zero(t, *query.Page)
	assert.Zero(t, *query.Limit)
}

func TestBindNearbyQuery_MalformedNumbers(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"latitude", "/donations?latitude=north&longitude=77.59"},
		{"longitude", "/donations?latitude=12.97&longitude=east"},
		{"radius", "/donations?radius=wide"},
		{"page", "/donations?page=first"},
		{"limit", "/donations?limit=all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newQueryContext(t, tt.target)

			query, err := bindNearbyQuery(c)
			assert.Nil(t, query)
			assertAppError(t, err, http.StatusBadRequest, "INVALID_INPUT")
			// Nothing is written here; the centralized handler renders it.
			assert.False(t, c.Response().Committed)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestDiscoveryHandler_ListDonations_MalformedLatitude(t *testing.T) {
	// The handler must stop on a bad bind instead of passing a nil query to
	// the usecase.
	h := &DiscoveryHandler{}
	c, _ := newQueryContext(t, "/donations?latitude=north&longitude=77.59")

	var err error
	require.NotPanics(t, func() {
		err = h.ListDonations(c)
	})
	assertAppError(t, err, http.StatusBadRequest, "INVALID_INPUT")
}

func TestRequireUserID(t *testing.T) {
	t.Run("missing identity returns an error", func(t *testing.T) {
		c, _ := newQueryContext(t, "/donations")

		_, err := requireUserID(c)
		assertAppError(t, err, http.StatusUnauthorized, "INVALID_TOKEN")
		assert.False(t, c.Response().Committed)
	})

	t.Run("handlers stop before reaching the usecase", func(t *testing.T) {
		// A donation handler with no usecase wired: any call that slips past
		// the identity check would dereference nil.
		h := &DonationHandler{}
		c, _ := newQueryContext(t, "/donations/vendor/mine")

		var err error
		require.NotPanics(t, func() {
			err = h.VendorDonations(c)
		})
		assertAppError(t, err, http.StatusUnauthorized, "INVALID_TOKEN")
	})
}
