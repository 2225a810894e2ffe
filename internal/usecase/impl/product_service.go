package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/geo"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a new product listing for a vendor.
func (srv *productService) Create(ctx context.Context, vendorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category)
	}

	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	coord := geo.Coordinate{Lat: input.Latitude, Lng: input.Longitude}
	if err := coord.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New(),
		VendorID:       vendorID,
		Name:           input.Name,
		Description:    input.Description,
		Category:       category,
		Price:          input.Price,
		Images:         input.Images,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		IsAvailable:    true,
		EcoFriendly:    input.EcoFriendly,
		Tags:           input.Tags,
		ContactVisible: input.ContactVisible,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID), slog.Any("vendorID", vendorID))

	return product, nil
}

// Get retrieves a product and bumps its view counter.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.IncrementViewCount(ctx, id); err != nil {
		// A lost view does not fail the read.
		srv.log(ctx).Warn("Failed to increment product view count", slog.Any("productID", id), slog.Any("error", err))
	} else {
		product.ViewCount++
	}

	return product, nil
}

// Update mutates a product owned by vendorID.
func (srv *productService) Update(ctx context.Context, vendorID, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findOwnedProduct(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	if err := applyProductUpdates(product, input); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product owned by vendorID.
func (srv *productService) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	if _, err := srv.findOwnedProduct(ctx, vendorID, id); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", id), slog.Any("vendorID", vendorID))

	return nil
}

// VendorProducts lists all products posted by a vendor, newest first.
func (srv *productService) VendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by vendor")
	}

	return products, nil
}

// Inquire bumps the inquiry counter of a product.
func (srv *productService) Inquire(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.findProduct(ctx, id); err != nil {
		return err
	}

	if err := srv.productRepo.IncrementInquiryCount(ctx, id); err != nil {
		return errors.Wrap(err, "failed to increment product inquiry count")
	}

	return nil
}

func (srv *productService) findProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

func (srv *productService) findOwnedProduct(ctx context.Context, vendorID, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.VendorID != vendorID {
		return nil, domainerrors.ErrProductNotOwned
	}

	return product, nil
}

// applyProductUpdates copies the non-nil fields of the input to the product.
func applyProductUpdates(product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown category: " + *input.Category)
		}
		product.Category = category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Address != nil {
		product.Address = *input.Address
	}
	if input.Latitude != nil || input.Longitude != nil {
		if input.Latitude != nil {
			product.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			product.Longitude = *input.Longitude
		}
		if err := product.Location().Validate(); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.EcoFriendly != nil {
		product.EcoFriendly = *input.EcoFriendly
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.ContactVisible != nil {
		product.ContactVisible = *input.ContactVisible
	}

	return nil
}
