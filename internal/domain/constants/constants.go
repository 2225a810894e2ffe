// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers accepted by the pubsub configuration.
const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// DonationCompletionPoints is the fixed score award for a completed donation
// when no override is configured.
const DonationCompletionPoints = 10
