// Package notify implements ports.Notifier as a prioritized provider chain.
// Messages are dispatched asynchronously: the calling transition returns
// immediately and delivery failures are logged, never propagated.
package notify

import (
	"context"
	"log/slog"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"
)

// SmartNotifier resolves the recipient's phone number and walks its provider
// chain until one delivers. Each provider gets 1 + maxRetries attempts with
// retryDelay between them before the chain moves on.
type SmartNotifier struct {
	users      ports.UserRepository
	providers  []Provider
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewSmartNotifier creates a notifier over the given provider chain.
// Providers are tried in the order given.
func NewSmartNotifier(
	users ports.UserRepository,
	providers []Provider,
	maxRetries int,
	retryDelay time.Duration,
	logger *slog.Logger,
) (*SmartNotifier, error) {
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}
	if len(providers) == 0 {
		return nil, errs.NewValueIsRequiredError("providers")
	}
	if maxRetries < 0 {
		return nil, errs.NewValueIsInvalidError("maxRetries")
	}
	if retryDelay < 0 {
		return nil, errs.NewValueIsInvalidError("retryDelay")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &SmartNotifier{
		users:      users,
		providers:  providers,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		logger:     logger,
	}, nil
}

// Notify dispatches the message in a background goroutine and returns
// immediately. The goroutine outlives the caller's request context.
func (n *SmartNotifier) Notify(ctx context.Context, userID kernel.UUID, message string) {
	go n.dispatch(context.WithoutCancel(ctx), userID, message)
}

func (n *SmartNotifier) dispatch(ctx context.Context, userID kernel.UUID, message string) {
	recipient, err := n.users.Get(ctx, userID)
	if err != nil {
		n.logger.Error("notification recipient lookup failed",
			"user_id", userID.String(), "error", err)
		return
	}

	for _, provider := range n.providers {
		if n.attempt(ctx, provider, recipient.Phone(), message) {
			return
		}
	}

	n.logger.Error("all notification providers failed",
		"user_id", userID.String(), "providers", len(n.providers))
}

func (n *SmartNotifier) attempt(ctx context.Context, provider Provider, phone, message string) bool {
	attempts := 1 + n.maxRetries
	for i := 0; i < attempts; i++ {
		err := provider.Send(ctx, phone, message)
		if err == nil {
			return true
		}

		n.logger.Warn("notification attempt failed",
			"provider", provider.Name(), "attempt", i+1, "error", err)

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(n.retryDelay):
			}
		}
	}
	return false
}
