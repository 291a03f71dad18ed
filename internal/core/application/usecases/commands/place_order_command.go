package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrPickupAddressIsNotAllowed = errors.New("pickup orders carry no address")
)

// PlaceOrderCommand represents a customer ordering one product.
// For delivery the address may be left empty, in which case the account's
// saved address is used by the handler.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(accountID, productID, order.Delivery, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order #%s placed, status %s", o.ID(), o.Status())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.ID
	productID   kernel.ID
	fulfillment order.Fulfillment
	address     string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates identifiers and the fulfillment choice.
// An address given for pickup is rejected.
func NewPlaceOrderCommand(
	accountID kernel.ID,
	productID kernel.ID,
	fulfillment order.Fulfillment,
	address string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setProductID(productID),
		cmd.setFulfillment(fulfillment, address),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) AccountID() kernel.ID {
	return c.accountID
}

func (c PlaceOrderCommand) ProductID() kernel.ID {
	return c.productID
}

func (c PlaceOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

// Address returns the requested delivery address, empty when the saved one should be used.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

func (c *PlaceOrderCommand) setAccountID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *PlaceOrderCommand) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(fulfillment order.Fulfillment, address string) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	address = strings.TrimSpace(address)
	if fulfillment == order.Pickup && address != "" {
		return ErrPickupAddressIsNotAllowed
	}

	c.fulfillment = fulfillment
	c.address = address
	return nil
}
