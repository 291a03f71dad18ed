package account

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// DefaultAddress is the postal address of an account that never set one.
const DefaultAddress = "Not Set"

// Domain errors for account operations.
var (
	// ErrNameIsRequired is returned when registering without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when updating to an empty address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account represents a registered customer.
// It is an aggregate root that owns the customer's identity, postal address,
// loyalty balance and favorite products.
//
// Key responsibilities:
//   - Identifying the customer by a unique contact number
//   - Holding the default delivery address
//   - Accruing and spending loyalty points
//   - Keeping an ordered list of favorite products
//
// Business rules:
//   - Name is non-empty and contact is a valid 10-digit number
//   - Address defaults to DefaultAddress until the customer sets one
//   - Loyalty balance never goes negative
//   - A product appears at most once in favorites
//
// Example usage:
//
//	contact, _ := kernel.NewContactNumber("0771234567")
//	acc, err := account.NewAccount("Nimal", contact)
//	if err != nil {
//	    // Handle construction error
//	}
type Account struct {
	// id is assigned by the account registry on register
	id kernel.ID
	// name is the display name
	name string
	// contact is the unique lookup key
	contact kernel.ContactNumber
	// address is the default delivery destination
	address string
	// loyaltyPoints is the non-negative points balance
	loyaltyPoints int64
	// favorites are product ids in the order they were added
	favorites []kernel.ID
	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewAccount creates an account with the default address, no points and no favorites.
func NewAccount(name string, contact kernel.ContactNumber) (*Account, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(nameErr, contact.Validate()); err != nil {
		return nil, err
	}

	return &Account{
		name:    name,
		contact: contact,
		address: DefaultAddress,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the account was created through NewAccount.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the registry-assigned identifier.
func (a *Account) ID() kernel.ID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Contact returns the unique contact number.
func (a *Account) Contact() kernel.ContactNumber {
	return a.contact
}

// Address returns the postal address, DefaultAddress if never set.
func (a *Account) Address() string {
	return a.address
}

// HasAddress is false until the customer sets an address.
func (a *Account) HasAddress() bool {
	return a.address != DefaultAddress
}

// LoyaltyPoints returns the current balance.
func (a *Account) LoyaltyPoints() int64 {
	return a.loyaltyPoints
}

// Favorites returns a copy of the favorite product ids.
func (a *Account) Favorites() []kernel.ID {
	return slices.Clone(a.favorites)
}

// AssignID sets the identifier handed out by the account registry. It can only be set once.
func (a *Account) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if a.id.IsAssigned() {
		return errs.NewInvalidStateErrorWithCause("account", fmt.Errorf("id %s is already assigned", a.id))
	}
	a.id = id
	return nil
}

// UpdateAddress replaces the postal address.
func (a *Account) UpdateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" || address == DefaultAddress {
		return ErrAddressIsRequired
	}
	a.address = address
	return nil
}

// AddLoyaltyPoints credits points to the balance.
func (a *Account) AddLoyaltyPoints(points int64) error {
	if points < 0 {
		return errs.NewValueIsInvalidErrorWithCause("loyalty points", fmt.Errorf("%d is negative", points))
	}
	a.loyaltyPoints += points
	return nil
}

// SpendLoyaltyPoints debits points; the balance must cover them.
func (a *Account) SpendLoyaltyPoints(points int64) error {
	if points < 0 || points > a.loyaltyPoints {
		return errs.NewValueIsOutOfRangeError("loyalty points", points, 0, a.loyaltyPoints)
	}
	a.loyaltyPoints -= points
	return nil
}

// AddFavorite appends a product to favorites.
func (a *Account) AddFavorite(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if a.IsFavorite(productID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"favorite",
			fmt.Errorf("product %s is already a favorite", productID),
		)
	}
	a.favorites = append(a.favorites, productID)
	return nil
}

// RemoveFavorite deletes a product from favorites, keeping the order of the rest.
func (a *Account) RemoveFavorite(productID kernel.ID) error {
	idx := slices.Index(a.favorites, productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("favorite", productID)
	}
	a.favorites = slices.Delete(a.favorites, idx, idx+1)
	return nil
}

// IsFavorite reports whether the product is among favorites.
func (a *Account) IsFavorite(productID kernel.ID) bool {
	return slices.Contains(a.favorites, productID)
}

// Clone returns an independent copy, including the favorites slice.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.favorites = slices.Clone(a.favorites)
	return &c
}
