// Package commands contains the delivery lifecycle engine: one command per
// guarded state transition, validated through constructor guards and executed
// against the store as atomic conditional updates.
//
// All handlers follow a consistent shape: validate the command, open a unit
// of work, issue the conditional update, classify a zero-row result by
// re-reading the current state (NotFound before Conflict before Forbidden),
// commit, and finally trigger best-effort notifications that never affect the
// transition outcome.
package commands

import (
	"context"

	"deliveryhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names only the repositories it needs.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// BusinessRepoFactory provides access to the business repository within a transaction.
	BusinessRepoFactory interface {
		BusinessRepository() ports.BusinessRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	// Used by every state transition except creation.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CreateDeliveryUoW manages transactions for delivery creation, which also
	// reads the originating business and the optional preferred courier.
	CreateDeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		BusinessRepoFactory
		UserRepoFactory
	}

	// CreateDeliveryUoWFactory creates new creation unit of work instances.
	CreateDeliveryUoWFactory interface {
		Create() CreateDeliveryUoW
	}
)
