package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/ports"
)

type GetNotificationsQueryHandler struct {
	log ports.NotificationLog
}

func NewGetNotificationsQueryHandler(log ports.NotificationLog) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{log: log}
}

// Handle returns entries in append order.
func (h GetNotificationsQueryHandler) Handle(ctx context.Context, query GetNotificationsQuery) ([]notification.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Since() == 0 {
		return h.log.All(ctx)
	}
	return h.log.Since(ctx, query.Since())
}
