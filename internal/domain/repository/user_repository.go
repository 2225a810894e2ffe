// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
	"bazaar/internal/geo"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// PageFilter is plain offset pagination for user listings.
type PageFilter struct {
	Page  int
	Limit int
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user entity including its role profiles. The
	// password hash travels separately; it never lives on the entity.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a single user by ID, preloading role profiles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email, preloading role profiles.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDs retrieves the users for the given IDs, preloading role
	// profiles. IDs without a matching user are skipped, not an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// CredentialByEmail returns the stored password hash for a login attempt.
	CredentialByEmail(ctx context.Context, email string) (uuid.UUID, string, error)

	// ListVendors retrieves active vendor accounts ordered by donation score
	// descending then creation time descending, paginated in the store.
	ListVendors(ctx context.Context, page PageFilter) ([]*entity.User, int64, error)

	// ListVendorsWithinBound retrieves all active vendors whose store location
	// falls inside the bounding box, same ordering as ListVendors.
	ListVendorsWithinBound(ctx context.Context, bound geo.Bound) ([]*entity.User, error)

	// ListNGOs retrieves active NGO accounts, newest first, paginated in the store.
	ListNGOs(ctx context.Context, page PageFilter) ([]*entity.User, int64, error)

	// ListNGOsWithinBound retrieves all active NGOs inside the bounding box,
	// newest first.
	ListNGOsWithinBound(ctx context.Context, bound geo.Bound) ([]*entity.User, error)

	// Leaderboard retrieves active vendors with a positive donation score,
	// ordered by score descending with creation time ascending as tiebreak.
	// A non-nil since restricts to vendors whose score record changed at or
	// after that instant. Returns the total count over the filtered set.
	Leaderboard(ctx context.Context, since *time.Time, page PageFilter) ([]*entity.User, int64, error)

	// IncrementDonationScore atomically adds points to a vendor's cumulative
	// score and stamps the score-update time. The increment must never be
	// applied as a read-modify-write in application memory.
	IncrementDonationScore(ctx context.Context, vendorID uuid.UUID, points int, at time.Time) error
}
