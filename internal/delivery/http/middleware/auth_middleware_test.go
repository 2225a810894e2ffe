package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/config"
	"bazaar/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/donations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mw := NewAuthMiddleware(tokenSvc, cfg)
	userID := uuid.New()

	accessToken, _, err := tokenSvc.GenerateTokens(userID, []string{"customer", "vendor"})
	require.NoError(t, err)

	t.Run("valid token sets identity", func(t *testing.T) {
		c, rec := newTestContext(t, "Bearer "+accessToken)

		err := mw.Authenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, c.Get("userID"))
		assert.Equal(t, []string{"customer", "vendor"}, c.Get("roles"))
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		c, rec := newTestContext(t, "")

		err := mw.Authenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header is rejected", func(t *testing.T) {
		c, rec := newTestContext(t, "Basic dXNlcjpwYXNz")

		err := mw.Authenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		c, rec := newTestContext(t, "Bearer not.a.token")

		err := mw.Authenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mw := NewAuthMiddleware(tokenSvc, cfg)
	userID := uuid.New()

	accessToken, _, err := tokenSvc.GenerateTokens(userID, []string{"customer"})
	require.NoError(t, err)

	t.Run("anonymous request passes through", func(t *testing.T) {
		c, rec := newTestContext(t, "")

		err := mw.OptionalAuthenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, c.Get("userID"))
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		c, rec := newTestContext(t, "Bearer "+accessToken)

		err := mw.OptionalAuthenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, c.Get("userID"))
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		c, rec := newTestContext(t, "Bearer expired.or.garbage")

		err := mw.OptionalAuthenticate(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, c.Get("userID"))
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mw := NewAuthMiddleware(tokenSvc, cfg)

	t.Run("role present", func(t *testing.T) {
		c, rec := newTestContext(t, "")
		c.Set("roles", []string{"customer", "ngo"})

		err := mw.RequireRole("ngo")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		c, rec := newTestContext(t, "")
		c.Set("roles", []string{"customer"})

		err := mw.RequireRole("vendor")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("roles not set at all", func(t *testing.T) {
		c, rec := newTestContext(t, "")

		err := mw.RequireRole("vendor")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
