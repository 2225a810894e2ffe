package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	Logger     *slog.Logger
}

// DonationHandler holds dependencies for donation lifecycle handlers.
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	logger     *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler.
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		logger:     params.Logger,
	}
}

// Create handles posting a new donation. Requires the vendor role.
func (h *DonationHandler) Create(c echo.Context) error {
	vendorID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateDonationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	donation, err := h.donationUC.Create(c.Request().Context(), vendorID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, donation, "Donation created successfully")
}

// Get handles retrieving a single donation. Donations past their expiry are
// flipped to expired on read.
func (h *DonationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	donation, err := h.donationUC.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donation, "Donation retrieved successfully")
}

// Update handles editing an available donation owned by the caller.
func (h *DonationHandler) Update(c echo.Context) error {
	vendorID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	var input *usecase.UpdateDonationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	donation, err := h.donationUC.Update(c.Request().Context(), vendorID, id, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donation, "Donation updated successfully")
}

// Delete handles removing an available donation owned by the caller.
func (h *DonationHandler) Delete(c echo.Context) error {
	vendorID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	if err := h.donationUC.Delete(c.Request().Context(), vendorID, id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Donation deleted"}, "Donation deleted successfully")
}

// Request handles an NGO claiming an available donation. At most one NGO ever
// succeeds for a given donation.
func (h *DonationHandler) Request(c echo.Context) error {
	ngoID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	donation, err := h.donationUC.Request(c.Request().Context(), ngoID, id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donation, "Donation requested successfully")
}

// Confirm handles the vendor accepting the pending request on their donation.
func (h *DonationHandler) Confirm(c echo.Context) error {
	vendorID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	donation, err := h.donationUC.Confirm(c.Request().Context(), vendorID, id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donation, "Donation confirmed successfully")
}

// CompleteRequest represents the optional body of the completion call.
type CompleteRequest struct {
	ImpactNotes string `json:"impact_notes,omitempty"`
}

// Complete handles finishing a confirmed donation, awarding points to the
// vendor exactly once.
func (h *DonationHandler) Complete(c echo.Context) error {
	vendorID, err := requireUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	var req CompleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}

	donation, err := h.donationUC.Complete(c.Request().Context(), vendorID, id, req.ImpactNotes)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donation, "Donation completed successfully")
}

// VendorDonations lists all donations posted by the calling vendor.
func (h *DonationHandler) VendorDonations(c echo.Context) error {
	vendorID, err := requireUserID(c)
	if err != nil {
		return err
	}

	donations, err := h.donationUC.VendorDonations(c.Request().Context(), vendorID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations, "Donations retrieved successfully")
}

// NGORequests lists all donations requested by the calling NGO.
func (h *DonationHandler) NGORequests(c echo.Context) error {
	ngoID, err := requireUserID(c)
	if err != nil {
		return err
	}

	donations, err := h.donationUC.NGORequests(c.Request().Context(), ngoID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations, "Requested donations retrieved successfully")
}

// PickupQR renders the pickup claim of a donation as a PNG QR code.
func (h *DonationHandler) PickupQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	png, err := h.donationUC.PickupQR(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
