package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/geo"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
// Every status transition is a conditional UPDATE keyed on the expected
// pre-state; a zero rows-affected result surfaces as ErrStatusConflict.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Create persists a new donation in the available state.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vendor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// FindByID retrieves a donation by its unique ID.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// Update persists content-field changes of an existing donation. Status
// transitions go through the Mark* methods instead.
func (repo *donationRepository) Update(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	// Struct-based Updates with an explicit Select so zero values are written
	// and the JSON serializer applies to Images.
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ?", donation.ID).
		Select("title", "description", "category", "quantity", "images",
			"address", "latitude", "longitude", "expiry_date",
			"pickup_instructions", "updated_at").
		Updates(donationM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// Delete removes a donation permanently.
func (repo *donationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DonationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete donation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// List retrieves donations matching the filter, newest first, paginated in the store.
func (repo *donationRepository) List(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, int64, error) {
	base := repo.filtered(ctx, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count donations")
	}

	var donationModels []*model.DonationModel
	if err := base.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&donationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list donations")
	}

	return toDonationDomains(donationModels), total, nil
}

// ListWithinBound retrieves all donations matching the filter inside the
// bounding box. The box is the index pre-filter; callers apply the exact
// radius test, so no pagination happens here.
func (repo *donationRepository) ListWithinBound(ctx context.Context, filter repository.DonationFilter, bound geo.Bound) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel
	if err := repo.filtered(ctx, filter).
		Where("latitude BETWEEN ? AND ?", bound.MinLat, bound.MaxLat).
		Where("longitude BETWEEN ? AND ?", bound.MinLng, bound.MaxLng).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations within bound")
	}

	return toDonationDomains(donationModels), nil
}

// ListByVendor retrieves all donations posted by a vendor, newest first.
func (repo *donationRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations by vendor")
	}

	return toDonationDomains(donationModels), nil
}

// ListByRequester retrieves all donations requested by an NGO, newest first.
func (repo *donationRepository) ListByRequester(ctx context.Context, ngoID uuid.UUID) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel
	if err := repo.db.WithContext(ctx).
		Where("requested_by = ?", ngoID).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations by requester")
	}

	return toDonationDomains(donationModels), nil
}

// CountByVendor counts a vendor's donations, optionally restricted to a status.
func (repo *donationRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID, status *entity.DonationStatus) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("vendor_id = ?", vendorID)
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donations by vendor")
	}

	return total, nil
}

// CountByRequester counts an NGO's requested donations, optionally restricted to a status.
func (repo *donationRepository) CountByRequester(ctx context.Context, ngoID uuid.UUID, status *entity.DonationStatus) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("requested_by = ?", ngoID)
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donations by requester")
	}

	return total, nil
}

// MarkRequested transitions available -> requested, recording the NGO and the
// request time.
func (repo *donationRepository) MarkRequested(ctx context.Context, id, ngoID uuid.UUID, at time.Time) error {
	return repo.transition(ctx, id, entity.DonationAvailable, map[string]any{
		"status":       entity.DonationRequested.String(),
		"requested_by": ngoID,
		"requested_at": at,
		"updated_at":   at,
	})
}

// MarkConfirmed transitions requested -> confirmed.
func (repo *donationRepository) MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.transition(ctx, id, entity.DonationRequested, map[string]any{
		"status":       entity.DonationConfirmed.String(),
		"confirmed_at": at,
		"updated_at":   at,
	})
}

// MarkCompleted transitions confirmed -> completed. The write additionally
// requires points_awarded = 0 so a retried completion can never award twice.
func (repo *donationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time, impactNotes string, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ? AND points_awarded = 0", id, entity.DonationConfirmed.String()).
		Updates(map[string]any{
			"status":         entity.DonationCompleted.String(),
			"completed_at":   at,
			"impact_notes":   impactNotes,
			"points_awarded": points,
			"updated_at":     at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark donation completed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// MarkExpired transitions available -> expired.
func (repo *donationRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, entity.DonationAvailable, map[string]any{
		"status":     entity.DonationExpired.String(),
		"updated_at": time.Now(),
	})
}

// transition runs a conditional status write. Zero matched rows means another
// transition won the race.
func (repo *donationRepository) transition(ctx context.Context, id uuid.UUID, from entity.DonationStatus, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition donation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// filtered is the shared base query for donation listings.
func (repo *donationRepository) filtered(ctx context.Context, filter repository.DonationFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.DonationModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}

	return query
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		Title:              data.Title,
		Description:        data.Description,
		Category:           entity.Category(data.Category),
		Quantity:           data.Quantity,
		Images:             data.Images,
		Address:            data.Address,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		ExpiryDate:         data.ExpiryDate,
		Status:             entity.DonationStatus(data.Status),
		RequestedBy:        data.RequestedBy,
		RequestedAt:        data.RequestedAt,
		ConfirmedAt:        data.ConfirmedAt,
		CompletedAt:        data.CompletedAt,
		PickupInstructions: data.PickupInstructions,
		ImpactNotes:        data.ImpactNotes,
		PointsAwarded:      data.PointsAwarded,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toDonationDomains(data []*model.DonationModel) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(data))
	for _, donationM := range data {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations
}

// fromDonationDomain converts a domain Donation entity to a GORM DonationModel.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		Title:              data.Title,
		Description:        data.Description,
		Category:           data.Category.String(),
		Quantity:           data.Quantity,
		Images:             data.Images,
		Address:            data.Address,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		ExpiryDate:         data.ExpiryDate,
		Status:             data.Status.String(),
		RequestedBy:        data.RequestedBy,
		RequestedAt:        data.RequestedAt,
		ConfirmedAt:        data.ConfirmedAt,
		CompletedAt:        data.CompletedAt,
		PickupInstructions: data.PickupInstructions,
		ImpactNotes:        data.ImpactNotes,
		PointsAwarded:      data.PointsAwarded,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
