package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrUpdateAddressCommandIsNotConstructed = errors.New(
		"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
	)
	ErrAreaIsRequired   = errors.New("area is required")
	ErrStreetIsRequired = errors.New("street is required")
)

// UpdateAddressCommand sets an account's delivery address from a delivery
// area, a street and an optional house identifier.
//
// Example:
//
//	cmd, _ := NewUpdateAddressCommand(accountID, "Colombo 3 - Kollupitiya", "Galle Rd", "12")
//	acc, err := handler.Handle(ctx, cmd)
//	fmt.Println(acc.Address()) // Colombo 3 - Kollupitiya, Galle Rd, 12
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	accountID  kernel.ID
	area       string
	street     string
	identifier string

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand validates the address parts.
func NewUpdateAddressCommand(accountID kernel.ID, area, street, identifier string) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		identifier: strings.TrimSpace(identifier),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setArea(area),
		cmd.setStreet(street),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) AccountID() kernel.ID {
	return c.accountID
}

func (c UpdateAddressCommand) Area() string {
	return c.area
}

// Address joins the non-empty parts with ", ".
func (c UpdateAddressCommand) Address() string {
	parts := []string{c.area, c.street}
	if c.identifier != "" {
		parts = append(parts, c.identifier)
	}
	return strings.Join(parts, ", ")
}

func (c *UpdateAddressCommand) setAccountID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *UpdateAddressCommand) setArea(area string) error {
	area = strings.TrimSpace(area)
	if area == "" {
		return ErrAreaIsRequired
	}

	c.area = area
	return nil
}

func (c *UpdateAddressCommand) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}
