package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type donationServiceFixtures struct {
	service      usecase.DonationUsecase
	txManager    *mockRepo.MockTransactionManager
	donationRepo *mockRepo.MockDonationRepository
	publisher    *mockSvc.MockEventPublisher
	qrService    *mockSvc.MockQRCodeService
}

func createTestDonationService(t *testing.T) donationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewDonationService(DonationServiceParams{
		TxManager:    txManager,
		DonationRepo: donationRepo,
		Publisher:    publisher,
		QRService:    qrService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return donationServiceFixtures{
		service:      service,
		txManager:    txManager,
		donationRepo: donationRepo,
		publisher:    publisher,
		qrService:    qrService,
	}
}

func availableDonation(vendorID uuid.UUID) *entity.Donation {
	return &entity.Donation{
		ID:         uuid.New(),
		VendorID:   vendorID,
		Title:      "Leftover catering trays",
		Category:   entity.CategoryFood,
		Quantity:   "12 trays",
		Latitude:   12.9716,
		Longitude:  77.5946,
		ExpiryDate: time.Now().Add(24 * time.Hour),
		Status:     entity.DonationAvailable,
		CreatedAt:  time.Now().Add(-time.Hour),
	}
}

func TestDonationService_Create_Success(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	input := &usecase.CreateDonationInput{
		Title:      "Leftover catering trays",
		Category:   "food",
		Quantity:   "12 trays",
		Address:    "12 MG Road",
		Latitude:   12.9716,
		Longitude:  77.5946,
		ExpiryDate: time.Now().Add(48 * time.Hour),
	}

	fx.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Return(nil)

	donation, err := fx.service.Create(ctx, vendorID, input)
	require.NoError(t, err)
	assert.Equal(t, vendorID, donation.VendorID)
	assert.Equal(t, entity.DonationAvailable, donation.Status)
	assert.Equal(t, entity.CategoryFood, donation.Category)
	assert.Zero(t, donation.PointsAwarded)
	assert.Nil(t, donation.RequestedBy)
}

func TestDonationService_Create_ExpiryNotInFuture(t *testing.T) {
	fx := createTestDonationService(t)

	input := &usecase.CreateDonationInput{
		Title:      "Stale listing",
		Category:   "food",
		Latitude:   12.9716,
		Longitude:  77.5946,
		ExpiryDate: time.Now().Add(-time.Minute),
	}

	donation, err := fx.service.Create(context.Background(), uuid.New(), input)
	assert.Nil(t, donation)
	assertAppErrorCode(t, err, "EXPIRY_NOT_IN_FUTURE")
}

func TestDonationService_Create_UnknownCategory(t *testing.T) {
	fx := createTestDonationService(t)

	input := &usecase.CreateDonationInput{
		Title:      "Mystery box",
		Category:   "gadgets",
		Latitude:   12.9716,
		Longitude:  77.5946,
		ExpiryDate: time.Now().Add(time.Hour),
	}

	_, err := fx.service.Create(context.Background(), uuid.New(), input)
	assertAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDonationService_Get_LazyExpiry(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	donation := availableDonation(uuid.New())
	donation.ExpiryDate = time.Now().Add(-time.Hour)

	expired := *donation
	expired.Status = entity.DonationExpired

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil).Once()
	fx.donationRepo.EXPECT().MarkExpired(ctx, donation.ID).Return(nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(&expired, nil).Once()

	got, err := fx.service.Get(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationExpired, got.Status)
}

func TestDonationService_Get_NotFound(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.donationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDonationNotFound)

	_, err := fx.service.Get(ctx, id)
	assertAppErrorCode(t, err, "DONATION_NOT_FOUND")
}

func TestDonationService_Request_Success(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donation := availableDonation(uuid.New())

	requested := *donation
	requested.Status = entity.DonationRequested
	requested.RequestedBy = &ngoID

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil).Once()
	fx.donationRepo.EXPECT().
		MarkRequested(ctx, donation.ID, ngoID, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Return(nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(&requested, nil).Once()

	got, err := fx.service.Request(ctx, ngoID, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationRequested, got.Status)
	require.NotNil(t, got.RequestedBy)
	assert.Equal(t, ngoID, *got.RequestedBy)
}

func TestDonationService_Request_LosesRace(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donation := availableDonation(uuid.New())

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().
		MarkRequested(ctx, donation.ID, ngoID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrStatusConflict)

	_, err := fx.service.Request(ctx, ngoID, donation.ID)
	assertAppErrorCode(t, err, "DONATION_STATE_CONFLICT")
}

func TestDonationService_Request_Expired(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	donation := availableDonation(uuid.New())
	donation.ExpiryDate = time.Now().Add(-time.Minute)

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().MarkExpired(ctx, donation.ID).Return(nil)

	_, err := fx.service.Request(ctx, uuid.New(), donation.ID)
	assertAppErrorCode(t, err, "DONATION_EXPIRED")
}

func TestDonationService_Confirm_Success(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	ngoID := uuid.New()
	donation := availableDonation(vendorID)
	donation.Status = entity.DonationRequested
	donation.RequestedBy = &ngoID

	confirmed := *donation
	confirmed.Status = entity.DonationConfirmed

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil).Once()
	fx.donationRepo.EXPECT().
		MarkConfirmed(ctx, donation.ID, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Return(nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(&confirmed, nil).Once()

	got, err := fx.service.Confirm(ctx, vendorID, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationConfirmed, got.Status)
}

func TestDonationService_Complete_AwardsPointsAtomically(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	ngoID := uuid.New()
	donation := availableDonation(vendorID)
	donation.Status = entity.DonationConfirmed
	donation.RequestedBy = &ngoID

	completed := *donation
	completed.Status = entity.DonationCompleted
	completed.PointsAwarded = 10

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txDonationRepo := mockRepo.NewMockDonationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewDonationRepository().Return(txDonationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txDonationRepo.EXPECT().
				MarkCompleted(ctx, donation.ID, mock.AnythingOfType("time.Time"), "fed 40 people", 10).
				Return(nil)
			txUserRepo.EXPECT().
				IncrementDonationScore(ctx, vendorID, 10, mock.AnythingOfType("time.Time")).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishDonationEvent(ctx, mock.AnythingOfType("*service.DonationEvent")).
		Return(nil)
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(&completed, nil).Once()

	got, err := fx.service.Complete(ctx, vendorID, donation.ID, "fed 40 people")
	require.NoError(t, err)
	assert.Equal(t, entity.DonationCompleted, got.Status)
	assert.Equal(t, 10, got.PointsAwarded)
}

func TestDonationService_Complete_AlreadyCompleted(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	donation := availableDonation(vendorID)
	donation.Status = entity.DonationCompleted
	donation.PointsAwarded = 10

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Complete(ctx, vendorID, donation.ID, "")
	assertAppErrorCode(t, err, "DONATION_STATE_CONFLICT")
}

func TestDonationService_PickupQR(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	donation := availableDonation(uuid.New())
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.qrService.EXPECT().GeneratePickupQR(donation.ID).Return(png, nil)

	got, err := fx.service.PickupQR(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestDonationService_VendorDonations(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	expected := []*entity.Donation{availableDonation(vendorID)}

	fx.donationRepo.EXPECT().ListByVendor(ctx, vendorID).Return(expected, nil)

	donations, err := fx.service.VendorDonations(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, expected, donations)
}
