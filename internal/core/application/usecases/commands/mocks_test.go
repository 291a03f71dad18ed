package commands_test

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/notification"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/domain/model/promotion"

	"github.com/stretchr/testify/mock"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Insert(ctx context.Context, o *order.Order) (kernel.ID, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderStore) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderStore) UpdateFeedback(ctx context.Context, id kernel.ID, text string, rating kernel.Rating) error {
	args := m.Called(ctx, id, text, rating)
	return args.Error(0)
}

type MockAccountRegistry struct{ mock.Mock }

func (m *MockAccountRegistry) Register(ctx context.Context, name string, contact kernel.ContactNumber) (*account.Account, error) {
	args := m.Called(ctx, name, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRegistry) FindByContact(ctx context.Context, contact kernel.ContactNumber) (*account.Account, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRegistry) Get(ctx context.Context, id kernel.ID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// Update applies mutate to the account returned by the expectation, the way
// the registry does, so handlers see their mutations.
func (m *MockAccountRegistry) Update(
	ctx context.Context,
	id kernel.ID,
	mutate func(*account.Account) error,
) (*account.Account, error) {
	args := m.Called(ctx, id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	acc := args.Get(0).(*account.Account).Clone()
	if err := mutate(acc); err != nil {
		return nil, err
	}
	return acc, args.Error(1)
}

type MockCatalogRegistry struct{ mock.Mock }

func (m *MockCatalogRegistry) All(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockCatalogRegistry) Add(ctx context.Context, p *product.Product) (kernel.ID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockCatalogRegistry) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockCatalogRegistry) Rate(ctx context.Context, id kernel.ID, r kernel.Rating) (product.RatingSummary, error) {
	args := m.Called(ctx, id, r)
	return args.Get(0).(product.RatingSummary), args.Error(1)
}

type MockNotificationLog struct{ mock.Mock }

func (m *MockNotificationLog) Append(ctx context.Context, text string) (notification.Entry, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(notification.Entry), args.Error(1)
}

func (m *MockNotificationLog) All(ctx context.Context) ([]notification.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]notification.Entry), args.Error(1)
}

func (m *MockNotificationLog) Since(ctx context.Context, seq uint64) ([]notification.Entry, error) {
	args := m.Called(ctx, seq)
	return args.Get(0).([]notification.Entry), args.Error(1)
}

type MockPromotionCatalog struct{ mock.Mock }

func (m *MockPromotionCatalog) All(ctx context.Context) ([]promotion.Promotion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]promotion.Promotion), args.Error(1)
}
