// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user entity including its role profiles. GORM's
// Create with associations inserts users, vendor_profiles and/or ngo_profiles
// together; the unique index on email backstops concurrent registrations.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by ID, preloading role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("VendorProfile").
		Preload("NGOProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email, preloading role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("VendorProfile").
		Preload("NGOProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves the users for the given IDs. IDs without a matching
// user are skipped, not an error.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("VendorProfile").
		Preload("NGOProfile").
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CredentialByEmail returns the stored password hash for a login attempt. The
// hash stays inside the persistence layer apart from this single read path.
func (repo *userRepository) CredentialByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	var row struct {
		ID           uuid.UUID
		PasswordHash string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("id", "password_hash").
		Where("email = ?", email).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", repository.ErrUserNotFound
		}

		return uuid.Nil, "", errors.Wrap(err, "failed to look up credential by email")
	}

	return row.ID, row.PasswordHash, nil
}

// ListVendors retrieves active vendor accounts ordered by donation score
// descending then creation time descending.
func (repo *userRepository) ListVendors(ctx context.Context, page repository.PageFilter) ([]*entity.User, int64, error) {
	base := repo.vendorQuery(ctx)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vendors")
	}

	var userModels []*model.UserModel
	if err := base.
		Preload("VendorProfile").
		Order("vendor_profiles.donation_score DESC, users.created_at DESC").
		Offset((page.Page - 1) * page.Limit).
		Limit(page.Limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list vendors")
	}

	return toUserDomains(userModels), total, nil
}

// ListVendorsWithinBound retrieves all active vendors whose store location
// falls inside the bounding box. Pagination happens in the caller after the
// exact radius filter.
func (repo *userRepository) ListVendorsWithinBound(ctx context.Context, bound geo.Bound) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.vendorQuery(ctx).
		Preload("VendorProfile").
		Where("vendor_profiles.latitude BETWEEN ? AND ?", bound.MinLat, bound.MaxLat).
		Where("vendor_profiles.longitude BETWEEN ? AND ?", bound.MinLng, bound.MaxLng).
		Order("vendor_profiles.donation_score DESC, users.created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendors within bound")
	}

	return toUserDomains(userModels), nil
}

// ListNGOs retrieves active NGO accounts, newest first.
func (repo *userRepository) ListNGOs(ctx context.Context, page repository.PageFilter) ([]*entity.User, int64, error) {
	base := repo.ngoQuery(ctx)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count NGOs")
	}

	var userModels []*model.UserModel
	if err := base.
		Preload("NGOProfile").
		Order("users.created_at DESC").
		Offset((page.Page - 1) * page.Limit).
		Limit(page.Limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list NGOs")
	}

	return toUserDomains(userModels), total, nil
}

// ListNGOsWithinBound retrieves all active NGOs inside the bounding box.
func (repo *userRepository) ListNGOsWithinBound(ctx context.Context, bound geo.Bound) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.ngoQuery(ctx).
		Preload("NGOProfile").
		Where("ngo_profiles.latitude BETWEEN ? AND ?", bound.MinLat, bound.MaxLat).
		Where("ngo_profiles.longitude BETWEEN ? AND ?", bound.MinLng, bound.MaxLng).
		Order("users.created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list NGOs within bound")
	}

	return toUserDomains(userModels), nil
}

// Leaderboard retrieves active vendors with a positive donation score, ordered
// by score descending with creation time ascending as tiebreak. A non-nil
// since restricts to vendors whose score record changed at or after it.
func (repo *userRepository) Leaderboard(ctx context.Context, since *time.Time, page repository.PageFilter) ([]*entity.User, int64, error) {
	base := repo.vendorQuery(ctx).
		Where("vendor_profiles.donation_score > 0")
	if since != nil {
		base = base.Where("vendor_profiles.score_updated_at >= ?", *since)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count leaderboard vendors")
	}

	var userModels []*model.UserModel
	if err := base.
		Preload("VendorProfile").
		Order("vendor_profiles.donation_score DESC, users.created_at ASC").
		Offset((page.Page - 1) * page.Limit).
		Limit(page.Limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to query leaderboard")
	}

	return toUserDomains(userModels), total, nil
}

// IncrementDonationScore atomically adds points to a vendor's cumulative
// score. The increment runs in SQL so concurrent completions never lose a write.
func (repo *userRepository) IncrementDonationScore(ctx context.Context, vendorID uuid.UUID, points int, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("user_id = ?", vendorID).
		Updates(map[string]any{
			"donation_score":   gorm.Expr("donation_score + ?", points),
			"score_updated_at": at,
			"updated_at":       at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment donation score")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// vendorQuery is the shared base for vendor listings: active accounts joined
// to their vendor profile.
func (repo *userRepository) vendorQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN vendor_profiles ON vendor_profiles.user_id = users.id").
		Where("users.is_active = ?", true)
}

// ngoQuery is the shared base for NGO listings.
func (repo *userRepository) ngoQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN ngo_profiles ON ngo_profiles.user_id = users.id").
		Where("users.is_active = ?", true)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity. The password
// hash is deliberately not mapped.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		Phone:         data.Phone,
		IsActive:      data.IsActive,
		VendorProfile: toVendorProfileDomain(data.VendorProfile),
		NGOProfile:    toNGOProfileDomain(data.NGOProfile),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toUserDomains(data []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for _, userM := range data {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		Phone:         data.Phone,
		IsActive:      data.IsActive,
		VendorProfile: fromVendorProfileDomain(data.VendorProfile),
		NGOProfile:    fromNGOProfileDomain(data.NGOProfile),
	}
}

// toVendorProfileDomain converts a GORM VendorProfileModel to a domain VendorProfile entity.
func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		UserID:         data.UserID,
		StoreName:      data.StoreName,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		DonationScore:  data.DonationScore,
		ScoreUpdatedAt: data.ScoreUpdatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromVendorProfileDomain converts a domain VendorProfile entity to a GORM VendorProfileModel.
func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		UserID:         data.UserID,
		StoreName:      data.StoreName,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		DonationScore:  data.DonationScore,
		ScoreUpdatedAt: data.ScoreUpdatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toNGOProfileDomain converts a GORM NGOProfileModel to a domain NGOProfile entity.
func toNGOProfileDomain(data *model.NGOProfileModel) *entity.NGOProfile {
	if data == nil {
		return nil
	}

	return &entity.NGOProfile{
		UserID:       data.UserID,
		Organization: data.Organization,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromNGOProfileDomain converts a domain NGOProfile entity to a GORM NGOProfileModel.
func fromNGOProfileDomain(data *entity.NGOProfile) *model.NGOProfileModel {
	if data == nil {
		return nil
	}

	return &model.NGOProfileModel{
		UserID:       data.UserID,
		Organization: data.Organization,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		UpdatedAt:    data.UpdatedAt,
	}
}
