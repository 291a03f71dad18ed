package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrRecordFeedbackCommandIsNotConstructed = errors.New(
		"RecordFeedbackCommand must be created via NewRecordFeedbackCommand constructor",
	)
)

// RecordFeedbackCommand carries a customer's review of a delivered order.
// Blank text is stored as the default feedback.
//
// Example:
//
//	rating, _ := kernel.NewRating(5)
//	cmd, err := NewRecordFeedbackCommand(orderID, "great", rating)
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, cmd)
//	fmt.Printf("product now rated %.2f from %d reviews", summary.Average, summary.Count)
type RecordFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	text    string
	rating  kernel.Rating

	guard guard.ConstructorGuard
}

// NewRecordFeedbackCommand validates the order identifier and the 1-5 rating.
func NewRecordFeedbackCommand(orderID kernel.ID, text string, rating kernel.Rating) (RecordFeedbackCommand, error) {
	cmd := RecordFeedbackCommand{
		text:  strings.TrimSpace(text),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRating(rating),
	); err != nil {
		return RecordFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrRecordFeedbackCommandIsNotConstructed)
}

func (c RecordFeedbackCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c RecordFeedbackCommand) Text() string {
	return c.text
}

func (c RecordFeedbackCommand) Rating() kernel.Rating {
	return c.rating
}

func (c *RecordFeedbackCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *RecordFeedbackCommand) setRating(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	c.rating = rating
	return nil
}
