// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
	"bazaar/internal/geo"

	"github.com/google/uuid"
)

// Domain-specific errors for donation persistence.
var (
	// ErrDonationNotFound is returned when a donation is not found.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrStatusConflict is returned when a conditional status write matched no
	// row, meaning another transition already changed the donation's state.
	ErrStatusConflict = errors.New("donation status conflict")
)

// DonationFilter narrows donation listings. Nil fields mean "any".
type DonationFilter struct {
	Status   *entity.DonationStatus
	Category *entity.Category
	Page     int
	Limit    int
}

// DonationRepository defines the interface for donation-related database operations.
// All status transitions are conditional writes: they succeed only if the
// stored status still matches the expected pre-state, which is the one
// correctness-critical concurrency contract in the system.
type DonationRepository interface {
	// Create persists a new donation in the available state.
	Create(ctx context.Context, donation *entity.Donation) error

	// FindByID retrieves a donation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// Update persists content-field changes of an existing donation.
	// Status transitions must go through the Mark* methods instead.
	Update(ctx context.Context, donation *entity.Donation) error

	// Delete removes a donation permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves donations matching the filter, ordered by creation time
	// descending, paginated in the store. Returns the total count over the
	// full filtered set.
	List(ctx context.Context, filter DonationFilter) ([]*entity.Donation, int64, error)

	// ListWithinBound retrieves all donations matching the filter whose
	// location falls inside the bounding box, ordered by creation time
	// descending. The box is the index pre-filter; callers apply the exact
	// radius test.
	ListWithinBound(ctx context.Context, filter DonationFilter, bound geo.Bound) ([]*entity.Donation, error)

	// ListByVendor retrieves all donations posted by a vendor, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Donation, error)

	// ListByRequester retrieves all donations requested by an NGO, newest first.
	ListByRequester(ctx context.Context, ngoID uuid.UUID) ([]*entity.Donation, error)

	// CountByVendor counts a vendor's donations, optionally restricted to a status.
	CountByVendor(ctx context.Context, vendorID uuid.UUID, status *entity.DonationStatus) (int64, error)

	// CountByRequester counts an NGO's requested donations, optionally restricted to a status.
	CountByRequester(ctx context.Context, ngoID uuid.UUID, status *entity.DonationStatus) (int64, error)

	// MarkRequested transitions available -> requested, recording the NGO and
	// the request time. Returns ErrStatusConflict if the donation was not
	// available anymore.
	MarkRequested(ctx context.Context, id, ngoID uuid.UUID, at time.Time) error

	// MarkConfirmed transitions requested -> confirmed.
	MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkCompleted transitions confirmed -> completed, recording impact notes
	// and the point award. The write additionally requires points_awarded = 0
	// so that a retried completion can never award points twice.
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time, impactNotes string, points int) error

	// MarkExpired transitions available -> expired.
	MarkExpired(ctx context.Context, id uuid.UUID) error
}
