package queries_test

import (
	"testing"
	"time"

	"pizzeria/internal/adapters/out/memory/accountrepo"
	"pizzeria/internal/adapters/out/memory/catalogrepo"
	"pizzeria/internal/adapters/out/memory/notificationlog"
	"pizzeria/internal/adapters/out/memory/orderstore"
	"pizzeria/internal/adapters/out/memory/promotionrepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/core/domain/model/promotion"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	catalog  *catalogrepo.Registry
	accounts *accountrepo.Registry
	orders   *orderstore.Store
	log      *notificationlog.Log

	customer   *account.Account
	margherita kernel.ID
	pepperoni  kernel.ID
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	ctx := suite.T().Context()
	suite.catalog = catalogrepo.NewRegistry()
	suite.accounts = accountrepo.NewRegistry()
	suite.orders = orderstore.NewStore()
	suite.log = notificationlog.NewLog()

	suite.margherita = suite.addProduct("Margherita", 10)
	suite.pepperoni = suite.addProduct("Pepperoni", 12)

	contact, err := kernel.NewContactNumber("0771234567")
	suite.Require().NoError(err)
	suite.customer, err = suite.accounts.Register(ctx, "Nimal", contact)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) addProduct(name string, price float64) kernel.ID {
	p, err := product.NewProduct(name, product.Recipe{Crust: "Thin", Sauce: "Tomato", Cheese: "Mozzarella"}, kernel.MustMoney(price))
	suite.Require().NoError(err)
	id, err := suite.catalog.Add(suite.T().Context(), p)
	suite.Require().NoError(err)
	return id
}

func (suite *QueryHandlersTestSuite) placeOrder(accountID kernel.ID) kernel.ID {
	item := order.Item{ProductID: suite.pepperoni, Name: "Pepperoni", Price: kernel.MustMoney(12)}
	o, err := order.NewOrder(accountID, item, order.Pickup, "", time.Now())
	suite.Require().NoError(err)
	id, err := suite.orders.Insert(suite.T().Context(), o)
	suite.Require().NoError(err)
	return id
}

func (suite *QueryHandlersTestSuite) TestGetProducts() {
	h := queries.NewGetProductsQueryHandler(suite.catalog)

	products, err := h.Handle(suite.T().Context(), queries.NewGetProductsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("Margherita", products[0].Name)
	suite.Equal("$12.00", products[1].BasePrice.String())
	suite.Contains(products[1].Line, "Pepperoni | Crust: Thin")
}

func (suite *QueryHandlersTestSuite) TestGetProducts_RejectsUnconstructedQuery() {
	h := queries.NewGetProductsQueryHandler(suite.catalog)

	_, err := h.Handle(suite.T().Context(), queries.GetProductsQuery{})

	suite.ErrorIs(err, queries.ErrGetProductsQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_AllAndByAccount() {
	ctx := suite.T().Context()
	mine := suite.placeOrder(suite.customer.ID())
	suite.placeOrder(suite.customer.ID() + 1)

	h := queries.NewGetOrdersQueryHandler(suite.orders)

	all, err := h.Handle(ctx, queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(all, 2)

	query, err := queries.NewGetAccountOrdersQuery(suite.customer.ID())
	suite.Require().NoError(err)
	own, err := h.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(own, 1)
	suite.Equal(mine, own[0].ID)
	suite.Equal(order.Received, own[0].Status)
	suite.Equal(order.PickupDestination, own[0].Destination)
	suite.Equal("Order #1 | Pepperoni | Received | Pickup", own[0].Summary)
}

func (suite *QueryHandlersTestSuite) TestGetOrder() {
	ctx := suite.T().Context()
	id := suite.placeOrder(suite.customer.ID())
	h := queries.NewGetOrderQueryHandler(suite.orders)

	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)
	o, err := h.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(order.DefaultFeedback, o.Feedback)

	query, err = queries.NewGetOrderQuery(id + 10)
	suite.Require().NoError(err)
	_, err = h.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetNotifications_Since() {
	ctx := suite.T().Context()
	for _, text := range []string{"first", "second", "third"} {
		_, err := suite.log.Append(ctx, text)
		suite.Require().NoError(err)
	}
	h := queries.NewGetNotificationsQueryHandler(suite.log)

	all, err := h.Handle(ctx, queries.NewGetNotificationsQuery(0))
	suite.Require().NoError(err)
	suite.Len(all, 3)

	tail, err := h.Handle(ctx, queries.NewGetNotificationsQuery(2))
	suite.Require().NoError(err)
	suite.Require().Len(tail, 1)
	suite.Equal("third", tail[0].Text)
	suite.Equal(uint64(3), tail[0].Seq)

	none, err := h.Handle(ctx, queries.NewGetNotificationsQuery(3))
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *QueryHandlersTestSuite) TestGetProfile_ResolvesFavorites() {
	ctx := suite.T().Context()
	_, err := suite.accounts.Update(ctx, suite.customer.ID(), func(a *account.Account) error {
		return a.AddFavorite(suite.pepperoni)
	})
	suite.Require().NoError(err)

	query, err := queries.NewGetProfileQuery(suite.customer.ID())
	suite.Require().NoError(err)
	profile, err := queries.NewGetProfileQueryHandler(suite.accounts, suite.catalog).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("Nimal", profile.Name)
	suite.Equal("0771234567", profile.Contact)
	suite.False(profile.HasAddress)
	suite.Equal(account.DefaultAddress, profile.Address)
	suite.Require().Len(profile.Favorites, 1)
	suite.Equal("Pepperoni", profile.Favorites[0].Name)
}

func (suite *QueryHandlersTestSuite) TestGetPromotions() {
	p, err := promotion.NewPromotion("Seasonal Special: $2 off on orders above $20", kernel.MustMoney(2), kernel.MustMoney(20))
	suite.Require().NoError(err)
	h := queries.NewGetPromotionsQueryHandler(promotionrepo.NewCatalog([]promotion.Promotion{p}))

	promotions, err := h.Handle(suite.T().Context(), queries.NewGetPromotionsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(promotions, 1)
	suite.Equal("$2.00", promotions[0].Discount.String())
	suite.Equal("$20.00", promotions[0].MinimumAmount.String())
}

func (suite *QueryHandlersTestSuite) TestConstructorsRejectUnassignedIDs() {
	_, err := queries.NewGetOrderQuery(0)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetAccountOrdersQuery(0)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetProfileQuery(-1)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}
