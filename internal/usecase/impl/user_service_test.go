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

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	donationRepo *mockRepo.MockDonationRepository
	productRepo  *mockRepo.MockProductRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	donationRepo := mockRepo.NewMockDonationRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		DonationRepo: donationRepo,
		ProductRepo:  productRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		donationRepo: donationRepo,
		productRepo:  productRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func activeUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Name:      "Test User",
		IsActive:  true,
		CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	}
}

// runRegistrationTx wires the transaction mock so the callback runs against a
// factory that hands back the given user repository.
func runRegistrationTx(ctx context.Context, t *testing.T, fx userServiceFixtures, txUserRepo *mockRepo.MockUserRepository) {
	t.Helper()

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().NewUserRepository().Return(txUserRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
}

func TestUserService_Register_CustomerSuccess(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "secret-password",
		Name:     "New User",
		Roles:    []string{"customer"},
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("$2a$hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User"), "$2a$hash").Return(nil)
	runRegistrationTx(ctx, t, fx, txUserRepo)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"customer"}).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.User.Email)
	assert.True(t, out.User.IsActive)
	assert.Nil(t, out.User.VendorProfile)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestUserService_Register_VendorBuildsProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "store@example.com",
		Password:  "secret-password",
		Name:      "Store Owner",
		Roles:     []string{"vendor"},
		StoreName: "Corner Bakery",
		Address:   "5 Main Street",
		Latitude:  12.9716,
		Longitude: 77.5946,
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("$2a$hash", nil)

	var created *entity.User
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByEmail(ctx, "store@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "$2a$hash").
		Run(func(_ context.Context, user *entity.User, _ string) {
			created = user
		}).
		Return(nil)
	runRegistrationTx(ctx, t, fx, txUserRepo)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"customer", "vendor"}).
		Return("access-token", "refresh-token", nil)

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.VendorProfile)
	assert.Equal(t, "Corner Bakery", created.VendorProfile.StoreName)
	assert.Equal(t, 12.9716, created.VendorProfile.Latitude)
	assert.Zero(t, created.VendorProfile.DonationScore)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret-password",
		Name:     "Late Arrival",
		Roles:    []string{"customer"},
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("$2a$hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(activeUser(), nil)
	runRegistrationTx(ctx, t, fx, txUserRepo)

	_, err := fx.service.Register(ctx, input)
	assertAppErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_Register_Validation(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"unknown role", &usecase.RegisterInput{Email: "a@b.c", Password: "p", Roles: []string{"admin"}}},
		{"vendor without store name", &usecase.RegisterInput{Email: "a@b.c", Password: "p", Roles: []string{"vendor"}, Latitude: 10, Longitude: 10}},
		{"ngo without organization", &usecase.RegisterInput{Email: "a@b.c", Password: "p", Roles: []string{"ngo"}, Latitude: 10, Longitude: 10}},
		{"vendor with bad coordinate", &usecase.RegisterInput{Email: "a@b.c", Password: "p", Roles: []string{"vendor"}, StoreName: "S", Latitude: 200, Longitude: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(ctx, tt.input)
			assertAppErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().CredentialByEmail(ctx, user.Email).Return(user.ID, "$2a$hash", nil)
	fx.hasher.EXPECT().Check("secret-password", "$2a$hash").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.Login(ctx, user.Email, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()

	fx.userRepo.EXPECT().CredentialByEmail(ctx, user.Email).Return(user.ID, "$2a$hash", nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$hash").Return(false)

	_, err := fx.service.Login(ctx, user.Email, "wrong")
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, "ghost@example.com").
		Return(uuid.Nil, "", repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, "ghost@example.com", "whatever")
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeUser()
	user.IsActive = false

	fx.userRepo.EXPECT().CredentialByEmail(ctx, user.Email).Return(user.ID, "$2a$hash", nil)
	fx.hasher.EXPECT().Check("secret-password", "$2a$hash").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.Login(ctx, user.Email, "secret-password")
	assertAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Get_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Get(ctx, id)
	assertAppErrorCode(t, err, "USER_NOT_FOUND")
}

func TestUserService_Stats_VendorPublic(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	vendor := activeUser()
	vendor.VendorProfile = &entity.VendorProfile{UserID: vendor.ID, StoreName: "Corner Bakery", DonationScore: 120}

	completed := entity.DonationCompleted
	fx.userRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.productRepo.EXPECT().CountByVendor(ctx, vendor.ID).Return(int64(6), nil)
	fx.donationRepo.EXPECT().CountByVendor(ctx, vendor.ID, (*entity.DonationStatus)(nil)).Return(int64(10), nil)
	fx.donationRepo.EXPECT().CountByVendor(ctx, vendor.ID, &completed).Return(int64(4), nil)

	// A stranger can read vendor stats.
	stats, err := fx.service.Stats(ctx, uuid.New(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.DonationScore)
	require.NotNil(t, stats.VendorStats)
	assert.Equal(t, int64(6), stats.VendorStats.TotalProducts)
	assert.Equal(t, int64(10), stats.VendorStats.TotalDonations)
	assert.Equal(t, int64(4), stats.VendorStats.CompletedDonations)
	assert.Equal(t, 40, stats.VendorStats.CompletionRate)
	assert.Nil(t, stats.NGOStats)
}

func TestUserService_Stats_NonVendorForbiddenToOthers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	customer := activeUser()

	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.Stats(ctx, uuid.New(), customer.ID)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestUserService_Stats_NGOSeesOwn(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	ngo := activeUser()
	ngo.NGOProfile = &entity.NGOProfile{UserID: ngo.ID, Organization: "Food Bridge"}

	completed := entity.DonationCompleted
	fx.userRepo.EXPECT().FindByID(ctx, ngo.ID).Return(ngo, nil)
	fx.donationRepo.EXPECT().CountByRequester(ctx, ngo.ID, (*entity.DonationStatus)(nil)).Return(int64(3), nil)
	fx.donationRepo.EXPECT().CountByRequester(ctx, ngo.ID, &completed).Return(int64(3), nil)

	stats, err := fx.service.Stats(ctx, ngo.ID, ngo.ID)
	require.NoError(t, err)
	require.NotNil(t, stats.NGOStats)
	assert.Equal(t, int64(3), stats.NGOStats.RequestedDonations)
	assert.Equal(t, 100, stats.NGOStats.SuccessRate)
	assert.Nil(t, stats.VendorStats)
}

func TestUserService_Stats_ZeroTotalsRateIsZero(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	vendor := activeUser()
	vendor.VendorProfile = &entity.VendorProfile{UserID: vendor.ID, StoreName: "Fresh Start"}

	completed := entity.DonationCompleted
	fx.userRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.productRepo.EXPECT().CountByVendor(ctx, vendor.ID).Return(int64(0), nil)
	fx.donationRepo.EXPECT().CountByVendor(ctx, vendor.ID, (*entity.DonationStatus)(nil)).Return(int64(0), nil)
	fx.donationRepo.EXPECT().CountByVendor(ctx, vendor.ID, &completed).Return(int64(0), nil)

	stats, err := fx.service.Stats(ctx, vendor.ID, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.VendorStats.CompletionRate)
}
