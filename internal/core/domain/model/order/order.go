package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// DefaultFeedback is the feedback text of an order nobody has reviewed yet.
const DefaultFeedback = "none"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Item is the product line of an order. Name and price are captured when the
// order is placed so that later catalog changes do not rewrite order history.
type Item struct {
	ProductID kernel.ID
	Name      string
	Price     kernel.Money
}

// Validate checks the item refers to a stored product and has a name.
func (i Item) Validate() error {
	if err := i.ProductID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("product id", err)
	}
	if strings.TrimSpace(i.Name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	return nil
}

// Order is the aggregate root for one customer purchase. It tracks the product
// bought, how it reaches the customer and where the order is in its lifecycle.
//
// Order follows these invariants:
//   - Belongs to a registered account and references a stored product
//   - Delivery address is non-empty if and only if fulfillment is Delivery
//   - Starts at Received and moves exactly one lifecycle step at a time
//   - Once Delivered, the status never changes again
//   - Feedback and rating can only be recorded once the order is Delivered
//   - Can only be created through NewOrder constructor
//
// Order values are not safe for concurrent use. The order store hands out
// copies (see Clone) and applies every mutation under its own lock.
type Order struct {
	// id is assigned by the order store on insert (zero until then)
	id kernel.ID

	// accountID is the owning account
	accountID kernel.ID

	// item is the product snapshot taken at creation
	item Item

	// fulfillment tells whether the order is picked up or delivered
	fulfillment Fulfillment

	// address is the delivery destination (empty for pickup)
	address string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the time the order was placed
	createdAt time.Time

	// feedback is the customer's free text review
	feedback string

	// rating is the customer's score (zero until rated)
	rating kernel.Rating

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order at status Received. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - accountID: The owning account (must be assigned)
//   - item: Product snapshot (product id, name, price)
//   - fulfillment: Pickup or Delivery
//   - address: Delivery destination; must be empty for Pickup and non-empty for Delivery
//   - createdAt: Placement time
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation errors joined together if any parameter is invalid
//
// Example:
//
//	item := order.Item{ProductID: 2, Name: "Pepperoni", Price: kernel.MustMoney(12)}
//	o, err := order.NewOrder(1, item, order.Delivery, "Colombo 3 - Kollupitiya, 12 Galle Rd", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//
// The returned order has no ID; the order store assigns one on insert.
func NewOrder(
	accountID kernel.ID,
	item Item,
	fulfillment Fulfillment,
	address string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Received,
		feedback:      DefaultFeedback,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setAccountID(accountID),
		o.setItem(item),
		o.setDestination(fulfillment, address),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier, zero before the order is stored.
func (o *Order) ID() kernel.ID {
	return o.id
}

// AccountID returns the owning account.
func (o *Order) AccountID() kernel.ID {
	return o.accountID
}

// Item returns the product snapshot.
func (o *Order) Item() Item {
	return o.item
}

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() kernel.ID {
	return o.item.ProductID
}

// ProductName returns the product name captured at creation.
func (o *Order) ProductName() string {
	return o.item.Name
}

// Price returns the product price captured at creation.
func (o *Order) Price() kernel.Money {
	return o.item.Price
}

// Fulfillment returns Pickup or Delivery.
func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

// Address returns the delivery address, empty for pickup orders.
func (o *Order) Address() string {
	return o.address
}

// Destination is the address for delivery orders and PickupDestination otherwise.
func (o *Order) Destination() string {
	if o.fulfillment == Delivery {
		return o.address
	}
	return PickupDestination
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Feedback returns the customer's review, DefaultFeedback if none was given.
func (o *Order) Feedback() string {
	return o.feedback
}

// Rating returns the customer's score; check IsSet before using it.
func (o *Order) Rating() kernel.Rating {
	return o.rating
}

// AssignID sets the identifier handed out by the order store.
//
// Returns:
//   - nil on success
//   - ValueIsInvalidError if id is not positive
//   - InvalidStateError if the order already has an identifier
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id.IsAssigned() {
		return errs.NewInvalidStateErrorWithCause(
			"order",
			fmt.Errorf("id %s is already assigned", o.id),
		)
	}
	o.id = id
	return nil
}

// AdvanceTo moves the order to next, which must be the immediate successor of
// the current status.
//
// This method enforces the following business rules:
//   - Delivered orders never change status
//   - Steps cannot be skipped, repeated or reversed
//
// Returns:
//   - nil on success
//   - InvalidStateError if the order is terminal or next is not its successor
//
// Example:
//
//	if err := o.AdvanceTo(o.Status().Next()); err != nil {
//	    // Order was already delivered
//	}
func (o *Order) AdvanceTo(next Status) error {
	if err := o.status.ValidateAdvance(next); err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			return err
		}
		return errs.NewInvalidStateErrorWithCause("order", err)
	}

	o.status = next
	return nil
}

// RecordFeedback stores the customer's review and score.
//
// This method enforces the following business rules:
//   - Only Delivered orders accept feedback
//   - Rating must be within 1..5
//   - Blank text keeps DefaultFeedback
//   - A later review replaces an earlier one
//
// On error the order is left unchanged.
//
// Example:
//
//	rating, _ := kernel.NewRating(5)
//	if err := o.RecordFeedback("great", rating); err != nil {
//	    // Order not delivered yet
//	}
func (o *Order) RecordFeedback(text string, rating kernel.Rating) error {
	if o.status != Delivered {
		return errs.NewInvalidStateErrorWithCause(
			"order",
			fmt.Errorf("feedback requires status %s, order is %s", Delivered, o.status),
		)
	}
	if err := rating.Validate(); err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = DefaultFeedback
	}

	o.feedback = text
	o.rating = rating
	return nil
}

// Clone returns an independent copy. Orders hold no reference types,
// so a value copy is a deep copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// Summary renders the one-line status event used in notifications:
// "Order #<id> | <product> | <status> | <destination>".
func (o *Order) Summary() string {
	return fmt.Sprintf("Order #%s | %s | %s | %s", o.id, o.item.Name, o.status, o.Destination())
}

func (o *Order) setAccountID(accountID kernel.ID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("account id", err)
	}
	o.accountID = accountID
	return nil
}

func (o *Order) setItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.Name = strings.TrimSpace(item.Name)
	o.item = item
	return nil
}

// setDestination enforces that address is present exactly for delivery orders.
func (o *Order) setDestination(fulfillment Fulfillment, address string) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	address = strings.TrimSpace(address)
	switch {
	case fulfillment == Delivery && address == "":
		return errs.NewValueIsRequiredError("delivery address")
	case fulfillment == Pickup && address != "":
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("pickup orders carry no address, got %q", address),
		)
	}

	o.fulfillment = fulfillment
	o.address = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
