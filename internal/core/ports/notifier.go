package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
)

// Notifier delivers user-facing messages as a side effect of state
// transitions. Dispatch is fire-and-forget: implementations own their retry
// and fallback policy, swallow failures, and never surface an error to the
// transition that triggered the message.
type Notifier interface {
	// Notify sends a message to the given user. It returns immediately;
	// delivery happens asynchronously and is best effort.
	Notify(ctx context.Context, userID kernel.UUID, message string)
}
