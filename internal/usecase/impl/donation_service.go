// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/geo"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// donationService implements the DonationUsecase interface.
type donationService struct {
	txManager    repository.TransactionManager
	donationRepo repository.DonationRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	points       int
	logger       *slog.Logger
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonationRepo repository.DonationRepository
	Publisher    service.EventPublisher
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDonationService is the constructor for donationService.
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	points := constants.DonationCompletionPoints
	if params.Config != nil && params.Config.Donation != nil && params.Config.Donation.CompletionPoints > 0 {
		points = params.Config.Donation.CompletionPoints
	}

	return &donationService{
		txManager:    params.TxManager,
		donationRepo: params.DonationRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		points:       points,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a new donation in the available state.
func (srv *donationService) Create(ctx context.Context, vendorID uuid.UUID, input *usecase.CreateDonationInput) (*entity.Donation, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category)
	}

	coord := geo.Coordinate{Lat: input.Latitude, Lng: input.Longitude}
	if err := coord.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	now := time.Now()
	if !input.ExpiryDate.After(now) {
		return nil, domainerrors.ErrExpiryNotInFuture
	}

	donation := &entity.Donation{
		ID:                 uuid.New(),
		VendorID:           vendorID,
		Title:              input.Title,
		Description:        input.Description,
		Category:           category,
		Quantity:           input.Quantity,
		Images:             input.Images,
		Address:            input.Address,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		ExpiryDate:         input.ExpiryDate,
		Status:             entity.DonationAvailable,
		PickupInstructions: input.PickupInstructions,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.donationRepo.Create(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to create donation")
	}

	srv.log(ctx).Debug("Donation created", slog.Any("donationID", donation.ID), slog.Any("vendorID", vendorID))

	return donation, nil
}

// Get retrieves a donation, lazily expiring it when past its expiry date.
func (srv *donationService) Get(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	donation, err := srv.findDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.expireIfDue(ctx, donation)
}

// Update mutates content fields of an available donation owned by vendorID.
func (srv *donationService) Update(ctx context.Context, vendorID, id uuid.UUID, input *usecase.UpdateDonationInput) (*entity.Donation, error) {
	donation, err := srv.findOwnedDonation(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	if !donation.Editable() {
		return nil, domainerrors.ErrDonationNotEditable
	}

	if err := srv.applyDonationUpdates(donation, input); err != nil {
		return nil, err
	}
	donation.UpdatedAt = time.Now()

	if err := srv.donationRepo.Update(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to update donation")
	}

	return donation, nil
}

// Delete removes an available donation owned by vendorID.
func (srv *donationService) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	donation, err := srv.findOwnedDonation(ctx, vendorID, id)
	if err != nil {
		return err
	}

	if !donation.Editable() {
		return domainerrors.ErrDonationNotEditable
	}

	if err := srv.donationRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete donation")
	}

	srv.log(ctx).Debug("Donation deleted", slog.Any("donationID", id), slog.Any("vendorID", vendorID))

	return nil
}

// Request claims an available donation for an NGO. The conditional write in
// the repository guarantees at most one NGO ever succeeds.
func (srv *donationService) Request(ctx context.Context, ngoID, id uuid.UUID) (*entity.Donation, error) {
	donation, err := srv.findDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if donation.Status != entity.DonationAvailable {
		return nil, domainerrors.ErrDonationConflict
	}

	now := time.Now()
	if donation.IsExpired(now) {
		srv.markExpired(ctx, donation)

		return nil, domainerrors.ErrDonationExpired
	}

	if err := srv.donationRepo.MarkRequested(ctx, id, ngoID, now); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrDonationConflict
		}

		return nil, errors.Wrap(err, "failed to mark donation requested")
	}

	srv.publishEvent(ctx, service.EventDonationRequested, donation, &ngoID, now)

	return srv.findDonation(ctx, id)
}

// Confirm accepts the pending request on a donation owned by vendorID.
func (srv *donationService) Confirm(ctx context.Context, vendorID, id uuid.UUID) (*entity.Donation, error) {
	donation, err := srv.findOwnedDonation(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	if donation.Status != entity.DonationRequested {
		return nil, domainerrors.ErrDonationConflict
	}

	now := time.Now()
	if err := srv.donationRepo.MarkConfirmed(ctx, id, now); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrDonationConflict
		}

		return nil, errors.Wrap(err, "failed to mark donation confirmed")
	}

	srv.publishEvent(ctx, service.EventDonationConfirmed, donation, donation.RequestedBy, now)

	return srv.findDonation(ctx, id)
}

// Complete finishes a confirmed donation owned by vendorID. The status write
// and the vendor score increment commit in one transaction; the conditional
// write also requires points_awarded = 0, so a retried completion can never
// award points twice.
func (srv *donationService) Complete(ctx context.Context, vendorID, id uuid.UUID, impactNotes string) (*entity.Donation, error) {
	donation, err := srv.findOwnedDonation(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	if donation.Status != entity.DonationConfirmed {
		return nil, domainerrors.ErrDonationConflict
	}

	now := time.Now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donationRepo := repoFactory.NewDonationRepository()
		userRepo := repoFactory.NewUserRepository()

		if err := donationRepo.MarkCompleted(ctx, id, now, impactNotes, srv.points); err != nil {
			return err
		}

		return userRepo.IncrementDonationScore(ctx, vendorID, srv.points, now)
	})
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrDonationConflict
		}

		srv.log(ctx).Error("Failed to execute donation completion transaction", slog.Any("donationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute donation completion transaction")
	}

	srv.publishEvent(ctx, service.EventDonationCompleted, donation, donation.RequestedBy, now)

	return srv.findDonation(ctx, id)
}

// VendorDonations lists all donations posted by a vendor, newest first.
func (srv *donationService) VendorDonations(ctx context.Context, vendorID uuid.UUID) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations by vendor")
	}

	return donations, nil
}

// NGORequests lists all donations requested by an NGO, newest first.
func (srv *donationService) NGORequests(ctx context.Context, ngoID uuid.UUID) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.ListByRequester(ctx, ngoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations by requester")
	}

	return donations, nil
}

// PickupQR renders a QR code encoding the pickup claim for a donation.
func (srv *donationService) PickupQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.findDonation(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePickupQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// findDonation loads a donation, translating the repository sentinel.
func (srv *donationService) findDonation(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	donation, err := srv.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return donation, nil
}

// findOwnedDonation loads a donation and verifies vendor ownership.
func (srv *donationService) findOwnedDonation(ctx context.Context, vendorID, id uuid.UUID) (*entity.Donation, error) {
	donation, err := srv.findDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !donation.IsOwnedBy(vendorID) {
		return nil, domainerrors.ErrDonationNotOwned
	}

	return donation, nil
}

// expireIfDue flips an available donation past its expiry date to expired.
// A conflicting concurrent transition wins silently; the reload reflects it.
func (srv *donationService) expireIfDue(ctx context.Context, donation *entity.Donation) (*entity.Donation, error) {
	if donation.Status != entity.DonationAvailable || !donation.IsExpired(time.Now()) {
		return donation, nil
	}

	srv.markExpired(ctx, donation)

	return srv.findDonation(ctx, donation.ID)
}

func (srv *donationService) markExpired(ctx context.Context, donation *entity.Donation) {
	err := srv.donationRepo.MarkExpired(ctx, donation.ID)
	if err != nil && !errors.Is(err, repository.ErrStatusConflict) {
		srv.log(ctx).Warn("Failed to expire donation", slog.Any("donationID", donation.ID), slog.Any("error", err))
	}
}

// publishEvent relays a lifecycle event best-effort; a publish failure is
// logged and never blocks the transition.
func (srv *donationService) publishEvent(ctx context.Context, eventType string, donation *entity.Donation, ngoID *uuid.UUID, at time.Time) {
	event := &service.DonationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		DonationID: donation.ID.String(),
		VendorID:   donation.VendorID.String(),
		Title:      donation.Title,
		Category:   donation.Category.String(),
		OccurredAt: at,
	}
	if ngoID != nil {
		event.NGOID = ngoID.String()
	}

	if err := srv.publisher.PublishDonationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish donation event", slog.String("eventType", eventType), slog.Any("donationID", donation.ID), slog.Any("error", err))
	}
}

// applyDonationUpdates copies the non-nil fields of the input to the donation.
func (srv *donationService) applyDonationUpdates(donation *entity.Donation, input *usecase.UpdateDonationInput) error {
	if input.Title != nil {
		donation.Title = *input.Title
	}
	if input.Description != nil {
		donation.Description = *input.Description
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown category: " + *input.Category)
		}
		donation.Category = category
	}
	if input.Quantity != nil {
		donation.Quantity = *input.Quantity
	}
	if input.Address != nil {
		donation.Address = *input.Address
	}
	if input.Latitude != nil || input.Longitude != nil {
		if input.Latitude != nil {
			donation.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			donation.Longitude = *input.Longitude
		}
		if err := donation.Location().Validate(); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}
	if input.ExpiryDate != nil {
		if !input.ExpiryDate.After(time.Now()) {
			return domainerrors.ErrExpiryNotInFuture
		}
		donation.ExpiryDate = *input.ExpiryDate
	}
	if input.PickupInstructions != nil {
		donation.PickupInstructions = *input.PickupInstructions
	}

	return nil
}
