package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeaderboardHandlerParams holds dependencies for LeaderboardHandler, injected by Fx.
type LeaderboardHandlerParams struct {
	fx.In

	LeaderboardUC usecase.LeaderboardUsecase
	Logger        *slog.Logger
}

// LeaderboardHandler serves the vendor donation-score ranking endpoint.
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
	logger        *slog.Logger
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler.
func NewLeaderboardHandler(params LeaderboardHandlerParams) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUC: params.LeaderboardUC,
		logger:        params.Logger,
	}
}

// Leaderboard handles the ranked vendor listing, optionally windowed to the
// trailing week or month.
func (h *LeaderboardHandler) Leaderboard(c echo.Context) error {
	query := &usecase.LeaderboardQuery{
		Period: c.QueryParam("period"),
	}

	var err error
	if query.Page, err = intParam(c, "page"); err != nil {
		return invalidInput("Invalid page")
	}
	if query.Limit, err = intParam(c, "limit"); err != nil {
		return invalidInput("Invalid limit")
	}

	result, err := h.leaderboardUC.Leaderboard(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Leaderboard retrieved successfully")
}
