package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

func TestDonationService_Update_NotOwner(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	donation := availableDonation(uuid.New())

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	newTitle := "Renamed"
	_, err := fx.service.Update(ctx, uuid.New(), donation.ID, &usecase.UpdateDonationInput{Title: &newTitle})
	assertAppErrorCode(t, err, "DONATION_NOT_OWNED")
}

func TestDonationService_Update_NotEditableAfterRequest(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	donation := availableDonation(vendorID)
	donation.Status = entity.DonationRequested

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	newTitle := "Renamed"
	_, err := fx.service.Update(ctx, vendorID, donation.ID, &usecase.UpdateDonationInput{Title: &newTitle})
	assertAppErrorCode(t, err, "DONATION_NOT_EDITABLE")
}

func TestDonationService_Update_ExpiryMustStayFuture(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	donation := availableDonation(vendorID)

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	past := time.Now().Add(-time.Hour)
	_, err := fx.service.Update(ctx, vendorID, donation.ID, &usecase.UpdateDonationInput{ExpiryDate: &past})
	assertAppErrorCode(t, err, "EXPIRY_NOT_IN_FUTURE")
}

func TestDonationService_Delete_NotEditableAfterRequest(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	donation := availableDonation(vendorID)
	donation.Status = entity.DonationConfirmed

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	err := fx.service.Delete(ctx, vendorID, donation.ID)
	assertAppErrorCode(t, err, "DONATION_NOT_EDITABLE")
}

func TestDonationService_Confirm_NotOwner(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donation := availableDonation(uuid.New())
	donation.Status = entity.DonationRequested
	donation.RequestedBy = &ngoID

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Confirm(ctx, uuid.New(), donation.ID)
	assertAppErrorCode(t, err, "DONATION_NOT_OWNED")
}

func TestDonationService_Confirm_NotRequested(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	donation := availableDonation(vendorID)

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Confirm(ctx, vendorID, donation.ID)
	assertAppErrorCode(t, err, "DONATION_STATE_CONFLICT")
}

func TestDonationService_Request_AlreadyRequested(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donation := availableDonation(uuid.New())
	donation.Status = entity.DonationRequested
	donation.RequestedBy = &ngoID

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Request(ctx, uuid.New(), donation.ID)
	assertAppErrorCode(t, err, "DONATION_STATE_CONFLICT")
}

func TestDonationService_Complete_NotConfirmed(t *testing.T) {
	fx := createTestDonationService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	donation := availableDonation(vendorID)
	donation.Status = entity.DonationRequested

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Complete(ctx, vendorID, donation.ID, "")
	assertAppErrorCode(t, err, "DONATION_STATE_CONFLICT")
}
