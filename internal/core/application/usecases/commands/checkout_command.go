package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand pays for a placed order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(accountID, orderID, payment.Cash)
//	receipt, err := handler.Handle(ctx, cmd)
//	fmt.Printf("charged %s, %d points left", receipt.Total, receipt.PointsBalance)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.ID
	orderID   kernel.ID
	method    payment.Method

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the identifiers and the payment method.
func NewCheckoutCommand(accountID, orderID kernel.ID, method payment.Method) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) AccountID() kernel.ID {
	return c.accountID
}

func (c CheckoutCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CheckoutCommand) Method() payment.Method {
	return c.method
}

func (c *CheckoutCommand) setAccountID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *CheckoutCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CheckoutCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
