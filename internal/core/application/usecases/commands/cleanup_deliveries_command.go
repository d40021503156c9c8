package commands

import (
	"errors"

	"deliveryhub/internal/pkg/guard"
)

var (
	ErrCleanupDeliveriesCommandIsNotConstructed = errors.New(
		"CleanupDeliveriesCommand must be created via NewCleanupDeliveriesCommand constructor",
	)
)

// CleanupDeliveriesCommand triggers the periodic maintenance sweeps over stuck
// deliveries. It carries no parameters; the deadlines live in the rows and the
// stale threshold comes from the handler's timing configuration.
type CleanupDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupDeliveriesCommand creates a cleanup command.
func NewCleanupDeliveriesCommand() (CleanupDeliveriesCommand, error) {
	return CleanupDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCleanupDeliveriesCommandIsNotConstructed)
}
