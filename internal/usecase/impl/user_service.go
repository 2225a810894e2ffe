package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
	productRepo  repository.ProductRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	DonationRepo repository.DonationRepository
	ProductRepo  repository.ProductRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		donationRepo: params.DonationRepo,
		productRepo:  params.ProductRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with the requested role profiles and logs it in.
// The duplicate-email check and the insert run in one transaction; the unique
// index on email backstops concurrent registrations.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	user, err := srv.buildAccount(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("roles", input.Roles))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		return userRepo.Create(ctx, user, hash)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return srv.issueTokens(user)
}

// Login authenticates by email and password.
func (srv *userService) Login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	userID, hash, err := srv.userRepo.CredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up credentials")
	}

	if !srv.hasher.Check(password, hash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user after login")
	}

	// Deactivated accounts are indistinguishable from bad credentials.
	if !user.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// Get retrieves a public user profile.
func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// Stats computes activity statistics for an account. Accounts always see
// their own stats; vendor statistics are public.
func (srv *userService) Stats(ctx context.Context, callerID, targetID uuid.UUID) (*usecase.UserStats, error) {
	user, err := srv.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if callerID != targetID && user.VendorProfile == nil {
		return nil, domainerrors.ErrForbidden
	}

	stats := &usecase.UserStats{
		Roles:       user.Roles().ToStrings(),
		MemberSince: user.CreatedAt,
	}
	if user.VendorProfile != nil {
		stats.DonationScore = user.VendorProfile.DonationScore

		vendorStats, err := srv.vendorStats(ctx, targetID)
		if err != nil {
			return nil, err
		}
		stats.VendorStats = vendorStats
	}
	if user.NGOProfile != nil && callerID == targetID {
		ngoStats, err := srv.ngoStats(ctx, targetID)
		if err != nil {
			return nil, err
		}
		stats.NGOStats = ngoStats
	}

	return stats, nil
}

func (srv *userService) vendorStats(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorStats, error) {
	totalProducts, err := srv.productRepo.CountByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vendor products")
	}

	totalDonations, err := srv.donationRepo.CountByVendor(ctx, vendorID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vendor donations")
	}

	completed := entity.DonationCompleted
	completedDonations, err := srv.donationRepo.CountByVendor(ctx, vendorID, &completed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed vendor donations")
	}

	return &usecase.VendorStats{
		TotalProducts:      totalProducts,
		TotalDonations:     totalDonations,
		CompletedDonations: completedDonations,
		CompletionRate:     ratePercent(completedDonations, totalDonations),
	}, nil
}

func (srv *userService) ngoStats(ctx context.Context, ngoID uuid.UUID) (*usecase.NGOStats, error) {
	requested, err := srv.donationRepo.CountByRequester(ctx, ngoID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requested donations")
	}

	completed := entity.DonationCompleted
	completedCount, err := srv.donationRepo.CountByRequester(ctx, ngoID, &completed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed requests")
	}

	return &usecase.NGOStats{
		RequestedDonations: requested,
		CompletedDonations: completedCount,
		SuccessRate:        ratePercent(completedCount, requested),
	}, nil
}

// ratePercent is completed/total as a whole percentage, 0 when total is 0.
func ratePercent(completed, total int64) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(completed) / float64(total) * 100))
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// buildAccount validates the registration input and assembles the user entity
// with the requested role profiles. The customer role is implicit.
func (srv *userService) buildAccount(input *usecase.RegisterInput) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, raw := range input.Roles {
		role := entity.Role(raw)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + raw)
		}

		switch role {
		case entity.RoleVendor:
			if user.VendorProfile != nil {
				continue
			}
			coord := geo.Coordinate{Lat: input.Latitude, Lng: input.Longitude}
			if err := coord.Validate(); err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
			}
			if input.StoreName == "" {
				return nil, domainerrors.ErrValidationFailed.WithDetails("store name is required for the vendor role")
			}
			user.VendorProfile = &entity.VendorProfile{
				UserID:    user.ID,
				StoreName: input.StoreName,
				Address:   input.Address,
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
				UpdatedAt: now,
			}
		case entity.RoleNGO:
			if user.NGOProfile != nil {
				continue
			}
			coord := geo.Coordinate{Lat: input.Latitude, Lng: input.Longitude}
			if err := coord.Validate(); err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
			}
			if input.Organization == "" {
				return nil, domainerrors.ErrValidationFailed.WithDetails("organization is required for the ngo role")
			}
			user.NGOProfile = &entity.NGOProfile{
				UserID:       user.ID,
				Organization: input.Organization,
				Address:      input.Address,
				Latitude:     input.Latitude,
				Longitude:    input.Longitude,
				UpdatedAt:    now,
			}
		case entity.RoleCustomer:
			// Implicit on every account.
		}
	}

	return user, nil
}
