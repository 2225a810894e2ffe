// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
// It is handed to the callback of TransactionManager.Execute so that every
// operation inside the callback shares the same atomic scope.
type RepositoryFactory interface {
	// NewDonationRepository creates a donation repository bound to the transaction.
	NewDonationRepository() DonationRepository

	// NewUserRepository creates a user repository bound to the transaction.
	NewUserRepository() UserRepository
}

// TransactionManager runs multi-step operations inside one database transaction.
// The donation completion (status write + score increment) is the primary user:
// both writes commit together or not at all.
type TransactionManager interface {
	// Execute runs fn within a single transaction, committing on nil return
	// and rolling back on error or panic.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
