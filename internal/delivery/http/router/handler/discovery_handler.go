package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves the public proximity listing endpoints. All of them
// accept the same query parameters; latitude/longitude are optional as a pair
// and downgrade the query to a plain filtered listing when absent.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler.
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// ListDonations handles the donation listing/search endpoint.
func (h *DiscoveryHandler) ListDonations(c echo.Context) error {
	query, err := bindNearbyQuery(c)
	if err != nil {
		return err
	}

	result, err := h.discoveryUC.NearbyDonations(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Donations retrieved successfully")
}

// ListProducts handles the product listing/search endpoint.
func (h *DiscoveryHandler) ListProducts(c echo.Context) error {
	query, err := bindNearbyQuery(c)
	if err != nil {
		return err
	}

	result, err := h.discoveryUC.NearbyProducts(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Products retrieved successfully")
}

// NearbyVendors handles the vendor discovery endpoint.
func (h *DiscoveryHandler) NearbyVendors(c echo.Context) error {
	query, err := bindNearbyQuery(c)
	if err != nil {
		return err
	}

	result, err := h.discoveryUC.NearbyVendors(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Vendors retrieved successfully")
}

// NearbyNGOs handles the NGO discovery endpoint.
func (h *DiscoveryHandler) NearbyNGOs(c echo.Context) error {
	query, err := bindNearbyQuery(c)
	if err != nil {
		return err
	}

	result, err := h.discoveryUC.NearbyNGOs(c.Request().Context(), query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "NGOs retrieved successfully")
}

// bindNearbyQuery parses the shared proximity query parameters. Malformed
// numbers fail here with an error the centralized handler renders; range
// validation happens in the usecase. Absent parameters stay nil so the
// usecase can tell "not supplied" from an explicit zero.
func bindNearbyQuery(c echo.Context) (*usecase.NearbyQuery, error) {
	query := &usecase.NearbyQuery{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}

	var err error
	if query.Latitude, err = floatParam(c, "latitude"); err != nil {
		return nil, invalidInput("Invalid latitude")
	}
	if query.Longitude, err = floatParam(c, "longitude"); err != nil {
		return nil, invalidInput("Invalid longitude")
	}
	if query.RadiusKm, err = floatParam(c, "radius"); err != nil {
		return nil, invalidInput("Invalid radius")
	}
	if query.Page, err = intParam(c, "page"); err != nil {
		return nil, invalidInput("Invalid page")
	}
	if query.Limit, err = intParam(c, "limit"); err != nil {
		return nil, invalidInput("Invalid limit")
	}

	return query, nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &val, nil
}

func intParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &val, nil
}
