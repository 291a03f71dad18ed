package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery reads the notification log after a sequence number.
// A zero sequence returns the whole log.
//
// Example:
//
//	var cursor uint64
//	entries, _ := handler.Handle(ctx, NewGetNotificationsQuery(cursor))
//	for _, e := range entries {
//	    fmt.Println(e)
//	    cursor = e.Seq
//	}
type GetNotificationsQuery struct {
	since uint64
	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery(since uint64) GetNotificationsQuery {
	return GetNotificationsQuery{since: since, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) Since() uint64 {
	return q.since
}
