package service

import (
	"context"
	"time"
)

// Donation lifecycle event types relayed to the realtime layer.
const (
	EventDonationRequested = "donation.requested"
	EventDonationConfirmed = "donation.confirmed"
	EventDonationCompleted = "donation.completed"
)

// DonationEvent represents a donation lifecycle event for the pub/sub channel.
// The transport is opaque to the core; subscribers decide how to relay it.
type DonationEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	DonationID string    `json:"donation_id"`
	VendorID   string    `json:"vendor_id"`
	NGOID      string    `json:"ngo_id,omitempty"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationEvent publishes a donation lifecycle event for async relay.
	PublishDonationEvent(ctx context.Context, event *DonationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
