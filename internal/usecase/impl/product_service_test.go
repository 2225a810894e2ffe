package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{service: service, productRepo: productRepo}
}

func availableProduct(vendorID uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        "Bamboo cutlery set",
		Category:    entity.CategoryOther,
		Price:       249,
		Latitude:    12.9716,
		Longitude:   77.5946,
		IsAvailable: true,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.Create(ctx, vendorID, &usecase.CreateProductInput{
		Name:        "Handwoven basket",
		Description: "Palm leaf, medium size",
		Category:    "decor",
		Price:       350,
		Address:     "12 Market Road",
		Latitude:    12.9716,
		Longitude:   77.5946,
		EcoFriendly: true,
		Tags:        []string{"handmade"},
	})
	require.NoError(t, err)
	assert.Equal(t, vendorID, product.VendorID)
	assert.Equal(t, entity.CategoryDecor, product.Category)
	assert.True(t, product.IsAvailable)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_Create_Validation(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	vendorID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.CreateProductInput
	}{
		{"unknown category", &usecase.CreateProductInput{Name: "x", Category: "vehicles", Latitude: 10, Longitude: 10}},
		{"negative price", &usecase.CreateProductInput{Name: "x", Category: "food", Price: -1, Latitude: 10, Longitude: 10}},
		{"bad coordinate", &usecase.CreateProductInput{Name: "x", Category: "food", Latitude: 100, Longitude: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Create(ctx, vendorID, tt.input)
			assertAppErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestProductService_Get_BumpsViewCount(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := availableProduct(uuid.New())
	product.ViewCount = 7

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().IncrementViewCount(ctx, product.ID).Return(nil)

	got, err := fx.service.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.ViewCount)
}

func TestProductService_Get_ViewCountFailureDoesNotFailRead(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := availableProduct(uuid.New())
	product.ViewCount = 7

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().IncrementViewCount(ctx, product.ID).Return(errors.New("connection reset"))

	got, err := fx.service.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ViewCount)
}

func TestProductService_Get_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Get(ctx, id)
	assertAppErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func TestProductService_Update_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	product := availableProduct(vendorID)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	newPrice := 199.0
	unavailable := false
	got, err := fx.service.Update(ctx, vendorID, product.ID, &usecase.UpdateProductInput{
		Price:       &newPrice,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, 199.0, got.Price)
	assert.False(t, got.IsAvailable)
}

func TestProductService_Update_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := availableProduct(uuid.New())

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	name := "Renamed"
	_, err := fx.service.Update(ctx, uuid.New(), product.ID, &usecase.UpdateProductInput{Name: &name})
	assertAppErrorCode(t, err, "PRODUCT_NOT_OWNED")
}

func TestProductService_Update_InvalidCoordinate(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	product := availableProduct(vendorID)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	badLat := 123.0
	_, err := fx.service.Update(ctx, vendorID, product.ID, &usecase.UpdateProductInput{Latitude: &badLat})
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestProductService_Delete_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	product := availableProduct(vendorID)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, vendorID, product.ID))
}

func TestProductService_VendorProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	products := []*entity.Product{availableProduct(vendorID), availableProduct(vendorID)}

	fx.productRepo.EXPECT().ListByVendor(ctx, vendorID).Return(products, nil)

	got, err := fx.service.VendorProducts(ctx, vendorID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProductService_Inquire(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := availableProduct(uuid.New())

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().IncrementInquiryCount(ctx, product.ID).Return(nil)

	require.NoError(t, fx.service.Inquire(ctx, product.ID))
}
