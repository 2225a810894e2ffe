package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput represents the input for account registration. Vendor and NGO
// details are required when the matching role is requested.
type RegisterInput struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`

	StoreName    string  `json:"store_name,omitempty"`
	Organization string  `json:"organization,omitempty"`
	Address      string  `json:"address,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// AuthOutput carries the authenticated user and the issued token pair.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// VendorStats summarizes a vendor's marketplace activity.
type VendorStats struct {
	TotalProducts      int64 `json:"total_products"`
	TotalDonations     int64 `json:"total_donations"`
	CompletedDonations int64 `json:"completed_donations"`
	CompletionRate     int   `json:"completion_rate"` // Percentage, rounded.
}

// NGOStats summarizes an NGO's donation activity.
type NGOStats struct {
	RequestedDonations int64 `json:"requested_donations"`
	CompletedDonations int64 `json:"completed_donations"`
	SuccessRate        int   `json:"success_rate"` // Percentage, rounded.
}

// UserStats is the role-aware statistics view of an account.
type UserStats struct {
	DonationScore int          `json:"donation_score"`
	Roles         []string     `json:"roles"`
	MemberSince   time.Time    `json:"member_since"`
	VendorStats   *VendorStats `json:"vendor_stats,omitempty"`
	NGOStats      *NGOStats    `json:"ngo_stats,omitempty"`
}

// UserUsecase defines account registration, login and profile use cases.
type UserUsecase interface {
	// Register creates an account with the requested role profiles and logs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates by email and password.
	Login(ctx context.Context, email, password string) (*AuthOutput, error)

	// Get retrieves a public user profile.
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Stats computes activity statistics. Accounts may view their own stats;
	// vendor stats are public.
	Stats(ctx context.Context, callerID, targetID uuid.UUID) (*UserStats, error)
}
