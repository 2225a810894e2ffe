package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Leaderboard periods.
const (
	PeriodAll     = "all"
	PeriodMonthly = "monthly"
	PeriodWeekly  = "weekly"
)

// LeaderboardQuery selects a scoring window and a result page. Page and limit
// are pointers so an explicit zero is rejected instead of defaulted.
type LeaderboardQuery struct {
	Period string `json:"period,omitempty"` // all | monthly | weekly; defaults to all.
	Page   *int   `json:"page,omitempty"`   // >= 1, defaults to 1.
	Limit  *int   `json:"limit,omitempty"`  // [1,50], defaults to 20.
}

// LeaderboardEntry is one ranked vendor row.
type LeaderboardEntry struct {
	VendorID      uuid.UUID `json:"vendor_id"`
	Name          string    `json:"name"`
	StoreName     string    `json:"store_name"`
	DonationScore int       `json:"donation_score"`
	MemberSince   time.Time `json:"member_since"`
	Rank          int       `json:"rank"`
}

// LeaderboardResult is a ranked page plus pagination over the full filtered set.
type LeaderboardResult struct {
	Entries    []*LeaderboardEntry `json:"leaderboard"`
	Period     string              `json:"period"`
	Pagination Pagination          `json:"pagination"`
}

// LeaderboardUsecase ranks vendors by cumulative donation score. Ties break
// toward the earlier-created account. Ranks are page-relative-absolute:
// (page-1)*limit + position + 1.
type LeaderboardUsecase interface {
	Leaderboard(ctx context.Context, query *LeaderboardQuery) (*LeaderboardResult, error)
}
