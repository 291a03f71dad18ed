package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

// AdvanceOrdersCommand triggers one lifecycle tick: every non-terminal order
// moves one status forward and a notification is emitted for each.
//
// Example:
//
//	cmd := NewAdvanceOrdersCommand()
//	handler := NewAdvanceOrdersCommandHandler(store, notifications, logger)
//
//	// Run periodically by the lifecycle job
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("tick abandoned: %v", err)
//	}
//	log.Printf("advanced %d of %d orders", report.Advanced, report.Pending)
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
		"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
	)
)

// NewAdvanceOrdersCommand creates a command to run one lifecycle tick.
// This is a parameterless command that processes every order in the store.
func NewAdvanceOrdersCommand() AdvanceOrdersCommand {
	return AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}
