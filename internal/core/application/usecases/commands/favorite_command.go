package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrFavoriteCommandIsNotConstructed = errors.New(
		"FavoriteCommand must be created via NewAddFavoriteCommand or NewRemoveFavoriteCommand constructor",
	)
)

// FavoriteCommand adds a product to, or removes it from, an account's favorites.
//
// Example:
//
//	cmd, _ := NewAddFavoriteCommand(accountID, productID)
//	acc, err := handler.Handle(ctx, cmd)
//
//	cmd, _ = NewRemoveFavoriteCommand(accountID, productID)
//	acc, err = handler.Handle(ctx, cmd)
type FavoriteCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.ID
	productID kernel.ID
	remove    bool

	guard guard.ConstructorGuard
}

// NewAddFavoriteCommand creates a command that marks productID as a favorite.
func NewAddFavoriteCommand(accountID, productID kernel.ID) (FavoriteCommand, error) {
	return newFavoriteCommand(accountID, productID, false)
}

// NewRemoveFavoriteCommand creates a command that unmarks productID.
func NewRemoveFavoriteCommand(accountID, productID kernel.ID) (FavoriteCommand, error) {
	return newFavoriteCommand(accountID, productID, true)
}

func newFavoriteCommand(accountID, productID kernel.ID, remove bool) (FavoriteCommand, error) {
	cmd := FavoriteCommand{
		remove: remove,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setProductID(productID),
	); err != nil {
		return FavoriteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c FavoriteCommand) Validate() error {
	return c.guard.Validate(ErrFavoriteCommandIsNotConstructed)
}

func (c FavoriteCommand) AccountID() kernel.ID {
	return c.accountID
}

func (c FavoriteCommand) ProductID() kernel.ID {
	return c.productID
}

// IsRemoval is true for commands created by NewRemoveFavoriteCommand.
func (c FavoriteCommand) IsRemoval() bool {
	return c.remove
}

func (c *FavoriteCommand) setAccountID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.accountID = id
	return nil
}

func (c *FavoriteCommand) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}
