package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput represents the input for creating a product listing.
type CreateProductInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	Images         []string `json:"images,omitempty"`
	Address        string   `json:"address"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	EcoFriendly    bool     `json:"eco_friendly"`
	Tags           []string `json:"tags,omitempty"`
	ContactVisible bool     `json:"contact_visible"`
}

// UpdateProductInput represents a partial update of a product listing.
type UpdateProductInput struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Category       *string  `json:"category,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	IsAvailable    *bool    `json:"is_available,omitempty"`
	EcoFriendly    *bool    `json:"eco_friendly,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	ContactVisible *bool    `json:"contact_visible,omitempty"`
}

// ProductUsecase defines the product listing use cases. Products have no
// state machine; availability is a plain toggle and the counters only grow.
type ProductUsecase interface {
	// Create posts a new product listing for a vendor.
	Create(ctx context.Context, vendorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// Get retrieves a product and bumps its view counter.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update mutates a product owned by vendorID.
	Update(ctx context.Context, vendorID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a product owned by vendorID.
	Delete(ctx context.Context, vendorID, id uuid.UUID) error

	// VendorProducts lists all products posted by a vendor, newest first.
	VendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// Inquire bumps the inquiry counter of a product.
	Inquire(ctx context.Context, id uuid.UUID) error
}
