package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/geo"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vendor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Update persists changes to an existing product listing. The counters are
// excluded; they only move through the atomic increment methods.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	// Struct-based Updates with an explicit Select so zero values are written
	// and the JSON serializer applies to Images and Tags.
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "category", "price", "images", "address",
			"latitude", "longitude", "is_available", "eco_friendly", "tags",
			"contact_visible", "updated_at").
		Updates(productM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product listing permanently.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List retrieves products matching the filter, newest first, paginated in the store.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	base := repo.filtered(ctx, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := base.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

// ListWithinBound retrieves all products matching the filter inside the
// bounding box. Callers apply the exact radius test and paginate.
func (repo *productRepository) ListWithinBound(ctx context.Context, filter repository.ProductFilter, bound geo.Bound) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.filtered(ctx, filter).
		Where("latitude BETWEEN ? AND ?", bound.MinLat, bound.MaxLat).
		Where("longitude BETWEEN ? AND ?", bound.MinLng, bound.MaxLng).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products within bound")
	}

	return toProductDomains(productModels), nil
}

// ListByVendor retrieves all products posted by a vendor, newest first.
func (repo *productRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by vendor")
	}

	return toProductDomains(productModels), nil
}

// CountByVendor counts a vendor's product listings.
func (repo *productRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by vendor")
	}

	return total, nil
}

// IncrementViewCount atomically bumps the view counter.
func (repo *productRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return repo.increment(ctx, id, "view_count")
}

// IncrementInquiryCount atomically bumps the inquiry counter.
func (repo *productRepository) IncrementInquiryCount(ctx context.Context, id uuid.UUID) error {
	return repo.increment(ctx, id, "inquiry_count")
}

// increment bumps a counter column in SQL so concurrent reads never lose a count.
func (repo *productRepository) increment(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment "+column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// filtered is the shared base query for product listings.
func (repo *productRepository) filtered(ctx context.Context, filter repository.ProductFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	return query
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		VendorID:       data.VendorID,
		Name:           data.Name,
		Description:    data.Description,
		Category:       entity.Category(data.Category),
		Price:          data.Price,
		Images:         data.Images,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		IsAvailable:    data.IsAvailable,
		EcoFriendly:    data.EcoFriendly,
		Tags:           data.Tags,
		ContactVisible: data.ContactVisible,
		ViewCount:      data.ViewCount,
		InquiryCount:   data.InquiryCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		VendorID:       data.VendorID,
		Name:           data.Name,
		Description:    data.Description,
		Category:       data.Category.String(),
		Price:          data.Price,
		Images:         data.Images,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		IsAvailable:    data.IsAvailable,
		EcoFriendly:    data.EcoFriendly,
		Tags:           data.Tags,
		ContactVisible: data.ContactVisible,
		ViewCount:      data.ViewCount,
		InquiryCount:   data.InquiryCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
