package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Trailing window lengths for the periodic leaderboards.
const (
	weeklyWindow  = 7 * 24 * time.Hour
	monthlyWindow = 30 * 24 * time.Hour
)

// leaderboardService implements the LeaderboardUsecase interface.
type leaderboardService struct {
	userRepo repository.UserRepository
	geoCfg   config.GeoConfig
	logger   *slog.Logger
}

// LeaderboardServiceParams holds dependencies for LeaderboardService, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewLeaderboardService is the constructor for leaderboardService.
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	geoCfg := config.GeoConfig{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
	if params.Config != nil && params.Config.Geo != nil {
		if params.Config.Geo.DefaultLimit > 0 {
			geoCfg.DefaultLimit = params.Config.Geo.DefaultLimit
		}
		if params.Config.Geo.MaxLimit > 0 {
			geoCfg.MaxLimit = params.Config.Geo.MaxLimit
		}
	}

	return &leaderboardService{
		userRepo: params.UserRepo,
		geoCfg:   geoCfg,
		logger:   params.Logger,
	}
}

func (srv *leaderboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Leaderboard ranks active vendors with a positive donation score. Periodic
// boards restrict to vendors whose score record changed within the trailing
// window. Ranks are absolute positions in the filtered ordering.
func (srv *leaderboardService) Leaderboard(ctx context.Context, query *usecase.LeaderboardQuery) (*usecase.LeaderboardResult, error) {
	// A nil field means "not supplied"; explicit zeros fail the range check.
	page := 1
	if query.Page != nil {
		if *query.Page < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
		}
		page = *query.Page
	}

	limit := srv.geoCfg.DefaultLimit
	if query.Limit != nil {
		if *query.Limit < 1 || *query.Limit > srv.geoCfg.MaxLimit {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("limit must be between 1 and %d", srv.geoCfg.MaxLimit))
		}
		limit = *query.Limit
	}

	period := query.Period
	if period == "" {
		period = usecase.PeriodAll
	}

	var since *time.Time
	switch period {
	case usecase.PeriodAll:
	case usecase.PeriodWeekly:
		t := time.Now().Add(-weeklyWindow)
		since = &t
	case usecase.PeriodMonthly:
		t := time.Now().Add(-monthlyWindow)
		since = &t
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown period: " + query.Period)
	}

	vendors, total, err := srv.userRepo.Leaderboard(ctx, since, repository.PageFilter{Page: page, Limit: limit})
	if err != nil {
		srv.log(ctx).Error("Failed to query leaderboard", slog.String("period", period), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query leaderboard")
	}

	entries := make([]*usecase.LeaderboardEntry, 0, len(vendors))
	for i, vendor := range vendors {
		entry := &usecase.LeaderboardEntry{
			VendorID:    vendor.ID,
			Name:        vendor.Name,
			MemberSince: vendor.CreatedAt,
			Rank:        (page-1)*limit + i + 1,
		}
		if vendor.VendorProfile != nil {
			entry.StoreName = vendor.VendorProfile.StoreName
			entry.DonationScore = vendor.VendorProfile.DonationScore
		}
		entries = append(entries, entry)
	}

	return &usecase.LeaderboardResult{
		Entries:    entries,
		Period:     period,
		Pagination: usecase.Pagination{Page: page, Limit: limit, Total: total},
	}, nil
}
