// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles account registration. Vendor and NGO roles require their
// profile fields in the same request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

// LoginRequest represents the request body for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the password login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetUser handles retrieving a public user profile by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// GetStats handles retrieving activity statistics for an account. Vendor
// stats are public; other accounts only see their own.
func (h *UserHandler) GetStats(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	// Anonymous callers resolve to the nil UUID; the usecase only lets them
	// see vendor stats.
	callerID, _ := c.Get("userID").(uuid.UUID)

	stats, err := h.uc.Stats(c.Request().Context(), callerID, targetID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// handleAppError maps domain errors onto the response envelope. Anything that
// is not an AppError propagates to the centralized error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// requireUserID extracts the authenticated user ID set by the auth middleware.
// The returned error is non-nil whenever the ID is missing, so callers can
// safely `return err` and stop; the centralized handler renders the envelope.
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, errMissingIdentity
	}

	return userID, nil
}

var errMissingIdentity = domainerrors.NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid user ID in token", "")

// invalidInput builds the 400 error shared by the query parameter binders.
func invalidInput(message string) error {
	return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", message, "")
}
