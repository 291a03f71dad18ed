package kernel

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"pizzeria/internal/pkg/errs"
)

// ID identifies accounts, products and orders within one session.
// Identifiers are positive and assigned by the owning registry from a Sequence,
// so a larger ID always means a later insertion. The zero value is unassigned.
type ID int64

// ParseID converts user or URL input into an ID.
//
// Example:
//
//	id, err := kernel.ParseID("42")
//	if err != nil {
//	    // not a positive integer
//	}
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id is invalid", err)
	}

	id := ID(v)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the ID has been assigned.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// IsAssigned is true for every ID handed out by a Sequence.
func (id ID) IsAssigned() bool {
	return id > 0
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Sequence hands out strictly increasing IDs starting at 1.
// It is safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

// Next returns an ID greater than every ID previously returned by this Sequence.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}

// Last returns the most recently issued ID, or 0 when none was issued.
func (s *Sequence) Last() ID {
	return ID(s.last.Load())
}
