package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/geo"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type discoveryServiceFixtures struct {
	service      usecase.DiscoveryUsecase
	donationRepo *mockRepo.MockDonationRepository
	productRepo  *mockRepo.MockProductRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestDiscoveryService(t *testing.T) discoveryServiceFixtures {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewDiscoveryService(DiscoveryServiceParams{
		DonationRepo: donationRepo,
		ProductRepo:  productRepo,
		UserRepo:     userRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return discoveryServiceFixtures{
		service:      service,
		donationRepo: donationRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func donationAt(lat, lng float64) *entity.Donation {
	return &entity.Donation{
		ID:         uuid.New(),
		VendorID:   uuid.New(),
		Title:      "Surplus goods",
		Category:   entity.CategoryFood,
		Latitude:   lat,
		Longitude:  lng,
		ExpiryDate: time.Now().Add(24 * time.Hour),
		Status:     entity.DonationAvailable,
	}
}

func TestDiscoveryService_NearbyDonations_FiltersByExactRadius(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	inside := donationAt(12.98, 77.60) // about 1.2 km from the center

	fx.donationRepo.EXPECT().
		ListWithinBound(ctx, mock.AnythingOfType("repository.DonationFilter"), mock.AnythingOfType("geo.Bound")).
		Return([]*entity.Donation{inside}, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{inside.VendorID}).
		Return([]*entity.User{{ID: inside.VendorID, Name: "Corner Store"}}, nil)

	result, err := fx.service.NearbyDonations(ctx, &usecase.NearbyQuery{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		RadiusKm:  floatPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, inside.ID, result.Matches[0].Donation.ID)
	require.NotNil(t, result.Matches[0].Vendor)
	assert.Equal(t, "Corner Store", result.Matches[0].Vendor.Name)
	require.NotNil(t, result.Matches[0].DistanceKm)
	assert.InDelta(t, 1.2, *result.Matches[0].DistanceKm, 0.3)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestDiscoveryService_NearbyDonations_DropsCornerCandidates(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	// The bounding box admits corner points that the exact haversine test
	// rejects; the service must re-check every candidate.
	inside := donationAt(12.98, 77.60)
	corner := donationAt(13.06, 77.68) // ~13 km out on the diagonal of a 10 km box

	fx.donationRepo.EXPECT().
		ListWithinBound(ctx, mock.AnythingOfType("repository.DonationFilter"), mock.AnythingOfType("geo.Bound")).
		Return([]*entity.Donation{inside, corner}, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{inside.VendorID}).
		Return([]*entity.User{{ID: inside.VendorID}}, nil)

	result, err := fx.service.NearbyDonations(ctx, &usecase.NearbyQuery{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		RadiusKm:  floatPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, inside.ID, result.Matches[0].Donation.ID)
}

func TestDiscoveryService_NearbyDonations_NoCenter(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	available := entity.DonationAvailable
	donations := []*entity.Donation{donationAt(1, 1), donationAt(2, 2)}

	fx.donationRepo.EXPECT().
		List(ctx, repository.DonationFilter{Status: &available, Page: 1, Limit: 20}).
		Return(donations, int64(42), nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	result, err := fx.service.NearbyDonations(ctx, &usecase.NearbyQuery{})
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	assert.Nil(t, result.Matches[0].DistanceKm)
	assert.Equal(t, int64(42), result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 20, result.Pagination.Limit)
}

func TestDiscoveryService_NearbyDonations_GeoPagination(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	candidates := []*entity.Donation{
		donationAt(12.97, 77.59),
		donationAt(12.98, 77.60),
		donationAt(12.99, 77.61),
	}

	fx.donationRepo.EXPECT().
		ListWithinBound(ctx, mock.AnythingOfType("repository.DonationFilter"), mock.AnythingOfType("geo.Bound")).
		Return(candidates, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	result, err := fx.service.NearbyDonations(ctx, &usecase.NearbyQuery{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		RadiusKm:  floatPtr(10),
		Page:      intPtr(2),
		Limit:     intPtr(2),
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, candidates[2].ID, result.Matches[0].Donation.ID)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.Page)
}

func TestDiscoveryService_NearbyDonations_ValidationErrors(t *testing.T) {
	fx := createTestDiscoveryService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query *usecase.NearbyQuery
	}{
		{"radius too large", &usecase.NearbyQuery{Latitude: floatPtr(0), Longitude: floatPtr(0), RadiusKm: floatPtr(2000)}},
		{"radius below minimum", &usecase.NearbyQuery{Latitude: floatPtr(0), Longitude: floatPtr(0), RadiusKm: floatPtr(0.5)}},
		{"explicit zero radius", &usecase.NearbyQuery{Latitude: floatPtr(0), Longitude: floatPtr(0), RadiusKm: floatPtr(0)}},
		{"out-of-range radius without center", &usecase.NearbyQuery{RadiusKm: floatPtr(2000)}},
		{"latitude without longitude", &usecase.NearbyQuery{Latitude: floatPtr(10)}},
		{"latitude out of range", &usecase.NearbyQuery{Latitude: floatPtr(95), Longitude: floatPtr(0)}},
		{"negative page", &usecase.NearbyQuery{Page: intPtr(-1)}},
		{"explicit zero page", &usecase.NearbyQuery{Page: intPtr(0)}},
		{"limit too large", &usecase.NearbyQuery{Limit: intPtr(100)}},
		{"explicit zero limit", &usecase.NearbyQuery{Limit: intPtr(0)}},
		{"unknown status", &usecase.NearbyQuery{Status: "pending"}},
		{"unknown category", &usecase.NearbyQuery{Category: "gadgets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.NearbyDonations(ctx, tt.query)
			assertAppErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestDiscoveryService_NearbyProducts_AnnotatesDistance(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	product := &entity.Product{
		ID:          uuid.New(),
		VendorID:    uuid.New(),
		Name:        "Reusable decor set",
		Category:    entity.CategoryDecor,
		Latitude:    12.98,
		Longitude:   77.60,
		IsAvailable: true,
	}

	fx.productRepo.EXPECT().
		ListWithinBound(ctx, mock.AnythingOfType("repository.ProductFilter"), mock.AnythingOfType("geo.Bound")).
		Return([]*entity.Product{product}, nil)

	result, err := fx.service.NearbyProducts(ctx, &usecase.NearbyQuery{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		RadiusKm:  floatPtr(5),
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	require.NotNil(t, result.Matches[0].DistanceKm)
	// Display distance is rounded to one decimal.
	assert.Equal(t, *result.Matches[0].DistanceKm, geo.RoundKm(*result.Matches[0].DistanceKm))
}

func TestDiscoveryService_NearbyVendors_WithinRadius(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	vendor := &entity.User{
		ID:   uuid.New(),
		Name: "Green Grocer",
		VendorProfile: &entity.VendorProfile{
			StoreName:     "Green Grocer",
			Latitude:      12.98,
			Longitude:     77.60,
			DonationScore: 120,
		},
	}
	farVendor := &entity.User{
		ID: uuid.New(),
		VendorProfile: &entity.VendorProfile{
			Latitude:  13.30,
			Longitude: 77.90,
		},
	}

	fx.userRepo.EXPECT().
		ListVendorsWithinBound(ctx, mock.AnythingOfType("geo.Bound")).
		Return([]*entity.User{vendor, farVendor}, nil)

	result, err := fx.service.NearbyVendors(ctx, &usecase.NearbyQuery{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		RadiusKm:  floatPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, vendor.ID, result.Matches[0].User.ID)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestDiscoveryService_NearbyNGOs_NoCenter(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	ngos := []*entity.User{
		{ID: uuid.New(), NGOProfile: &entity.NGOProfile{Organization: "Food Bridge"}},
	}

	fx.userRepo.EXPECT().
		ListNGOs(ctx, repository.PageFilter{Page: 1, Limit: 20}).
		Return(ngos, int64(1), nil)

	result, err := fx.service.NearbyNGOs(ctx, &usecase.NearbyQuery{})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Nil(t, result.Matches[0].DistanceKm)
}
