package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/business"
	"deliveryhub/internal/core/domain/model/kernel"
)

// BusinessRepository is the persistence contract for business entities.
// The delivery core only needs lookups: ownership and lifecycle status are
// checked before a delivery may be created.
type BusinessRepository interface {
	// Get retrieves a business by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*business.Business, error)
}
