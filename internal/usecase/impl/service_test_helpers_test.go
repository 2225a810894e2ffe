package impl

import (
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Geo: &config.GeoConfig{
			DefaultRadiusKm: 50,
			MaxRadiusKm:     1000,
			DefaultLimit:    20,
			MaxLimit:        50,
		},
		Donation: &config.DonationConfig{
			CompletionPoints: 10,
		},
	}

	return cfg
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}
