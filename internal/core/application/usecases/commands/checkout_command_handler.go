package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// CheckoutCommandHandler charges a customer for one of their orders.
//
// Processing rules:
//   - The order must belong to the paying account
//   - An order is paid at most once; a second checkout fails with InvalidStateError
//   - The best qualifying promotion applies first, then the loyalty discount
//   - Loyalty points for the charged total are spent in the same account update
//   - Payment does not affect the order lifecycle
//
// Example:
//
//	handler := NewCheckoutCommandHandler(store, accounts, promotions, services.NewPaymentCalculator(services.NewPromotionSelector()))
//	cmd, _ := NewCheckoutCommand(accountID, orderID, payment.CreditCard)
//	receipt, err := handler.Handle(ctx, cmd)
type CheckoutCommandHandler struct {
	orders     OrderReader
	accounts   ports.AccountRegistry
	promotions ports.PromotionCatalog
	calculator services.PaymentCalculator
	settled    *settlements
	now        func() time.Time
}

type settlements struct {
	mu   sync.Mutex
	refs map[kernel.ID]kernel.UUID
}

// NewCheckoutCommandHandler creates a checkout handler with an empty settlement record.
func NewCheckoutCommandHandler(
	orders OrderReader,
	accounts ports.AccountRegistry,
	promotions ports.PromotionCatalog,
	calculator services.PaymentCalculator,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		orders:     orders,
		accounts:   accounts,
		promotions: promotions,
		calculator: calculator,
		settled:    &settlements{refs: make(map[kernel.ID]kernel.UUID)},
		now:        time.Now,
	}
}

// Handle charges the order and returns the receipt.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (payment.Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Receipt{}, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return payment.Receipt{}, err
	}
	if o.AccountID() != cmd.AccountID() {
		return payment.Receipt{}, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	promotions, err := h.promotions.All(ctx)
	if err != nil {
		return payment.Receipt{}, err
	}

	h.settled.mu.Lock()
	defer h.settled.mu.Unlock()

	if ref, ok := h.settled.refs[o.ID()]; ok {
		return payment.Receipt{}, errs.NewInvalidStateErrorWithCause(
			"order",
			fmt.Errorf("order #%s is already paid, receipt %s", o.ID(), ref.Short()),
		)
	}

	var charge services.Charge
	acc, err := h.accounts.Update(ctx, cmd.AccountID(), func(a *account.Account) error {
		var chargeErr error
		charge, chargeErr = h.calculator.Charge(o, a, promotions)
		return chargeErr
	})
	if err != nil {
		return payment.Receipt{}, err
	}

	receipt := payment.Receipt{
		Reference:       kernel.NewUUID(),
		OrderID:         o.ID(),
		AccountID:       acc.ID(),
		Method:          cmd.Method(),
		Subtotal:        charge.Subtotal,
		AfterPromotion:  charge.AfterPromotion,
		LoyaltyDiscount: charge.LoyaltyDiscount,
		Total:           charge.Total,
		PointsSpent:     charge.PointsSpent,
		PointsBalance:   acc.LoyaltyPoints(),
		PaidAt:          h.now(),
	}
	if charge.Promotion != nil {
		receipt.Promotion = charge.Promotion.Description()
	}

	h.settled.refs[o.ID()] = receipt.Reference
	return receipt, nil
}
