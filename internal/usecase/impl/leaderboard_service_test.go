package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leaderboardServiceFixtures struct {
	service  usecase.LeaderboardUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestLeaderboardService(t *testing.T) leaderboardServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewLeaderboardService(LeaderboardServiceParams{
		UserRepo: userRepo,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return leaderboardServiceFixtures{service: service, userRepo: userRepo}
}

func rankedVendor(name string, score int) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().Add(-90 * 24 * time.Hour),
		VendorProfile: &entity.VendorProfile{
			StoreName:     name + " Store",
			DonationScore: score,
		},
	}
}

func TestLeaderboardService_AllTime(t *testing.T) {
	fixtures := createTestLeaderboardService(t)

	ctx := context.Background()
	first := rankedVendor("Asha", 300)
	second := rankedVendor("Ravi", 180)

	fixtures.userRepo.EXPECT().
		Leaderboard(ctx, (*time.Time)(nil), repository.PageFilter{Page: 1, Limit: 20}).
		Return([]*entity.User{first, second}, int64(2), nil)

	result, err := fixtures.service.Leaderboard(ctx, &usecase.LeaderboardQuery{})
	require.NoError(t, err)
	assert.Equal(t, usecase.PeriodAll, result.Period)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 1, result.Entries[0].Rank)
	assert.Equal(t, "Asha Store", result.Entries[0].StoreName)
	assert.Equal(t, 300, result.Entries[0].DonationScore)
	assert.Equal(t, 2, result.Entries[1].Rank)
	assert.Equal(t, int64(2), result.Pagination.Total)
}

func TestLeaderboardService_RankOffsetOnLaterPages(t *testing.T) {
	fixtures := createTestLeaderboardService(t)

	ctx := context.Background()
	vendor := rankedVendor("Meera", 90)

	fixtures.userRepo.EXPECT().
		Leaderboard(ctx, (*time.Time)(nil), repository.PageFilter{Page: 3, Limit: 10}).
		Return([]*entity.User{vendor}, int64(21), nil)

	result, err := fixtures.service.Leaderboard(ctx, &usecase.LeaderboardQuery{Page: intPtr(3), Limit: intPtr(10)})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 21, result.Entries[0].Rank)
}

func TestLeaderboardService_WeeklyWindow(t *testing.T) {
	fixtures := createTestLeaderboardService(t)

	ctx := context.Background()
	var captured *time.Time
	fixtures.userRepo.EXPECT().
		Leaderboard(ctx, mock.AnythingOfType("*time.Time"), repository.PageFilter{Page: 1, Limit: 20}).
		Run(func(_ context.Context, since *time.Time, _ repository.PageFilter) {
			captured = since
		}).
		Return(nil, int64(0), nil)

	result, err := fixtures.service.Leaderboard(ctx, &usecase.LeaderboardQuery{Period: usecase.PeriodWeekly})
	require.NoError(t, err)
	assert.Equal(t, usecase.PeriodWeekly, result.Period)
	require.NotNil(t, captured)
	assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), *captured, time.Minute)
}

func TestLeaderboardService_MonthlyWindow(t *testing.T) {
	fixtures := createTestLeaderboardService(t)

	ctx := context.Background()
	var captured *time.Time
	fixtures.userRepo.EXPECT().
		Leaderboard(ctx, mock.AnythingOfType("*time.Time"), repository.PageFilter{Page: 1, Limit: 20}).
		Run(func(_ context.Context, since *time.Time, _ repository.PageFilter) {
			captured = since
		}).
		Return(nil, int64(0), nil)

	_, err := fixtures.service.Leaderboard(ctx, &usecase.LeaderboardQuery{Period: usecase.PeriodMonthly})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), *captured, time.Minute)
}

func TestLeaderboardService_Validation(t *testing.T) {
	fixtures := createTestLeaderboardService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query *usecase.LeaderboardQuery
	}{
		{"unknown period", &usecase.LeaderboardQuery{Period: "yearly"}},
		{"negative page", &usecase.LeaderboardQuery{Page: intPtr(-2)}},
		{"explicit zero page", &usecase.LeaderboardQuery{Page: intPtr(0)}},
		{"limit too large", &usecase.LeaderboardQuery{Limit: intPtr(500)}},
		{"explicit zero limit", &usecase.LeaderboardQuery{Limit: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixtures.service.Leaderboard(ctx, tt.query)
			assertAppErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}
