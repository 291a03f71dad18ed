package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
)

// RegisterAccountCommand represents a sign-up request.
//
// Example:
//
//	contact, _ := kernel.NewContactNumber("0771234567")
//	cmd, err := NewRegisterAccountCommand("Nimal", contact)
//	if err != nil {
//	    return fmt.Errorf("invalid sign-up data: %w", err)
//	}
//	acc, err := handler.Handle(ctx, cmd)
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	name    string
	contact kernel.ContactNumber

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand validates the customer's name and contact number.
func NewRegisterAccountCommand(name string, contact kernel.ContactNumber) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setContact(contact),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) Name() string {
	return c.name
}

func (c RegisterAccountCommand) Contact() kernel.ContactNumber {
	return c.contact
}

func (c *RegisterAccountCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return account.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setContact(contact kernel.ContactNumber) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}
