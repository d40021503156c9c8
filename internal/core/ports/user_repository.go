package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
)

// UserRepository is the persistence contract for user entities.
// The delivery core consumes users as capability checks (role, active flag)
// and as notification recipients (phone lookup).
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
