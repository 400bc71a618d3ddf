package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"mealdash/internal/adapters/out/postgres/orderrepo"
	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/order"
	"mealdash/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// noopTracker ignores tracking; used where tracking is not under test.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price5, err := kernel.PriceFromString("5.00")
	suite.Require().NoError(err)
	price350, err := kernel.PriceFromString("3.50")
	suite.Require().NoError(err)

	burger, err := order.NewItem(kernel.NewUUID(), 2, price5)
	suite.Require().NoError(err)
	soda, err := order.NewItem(kernel.NewUUID(), 1, price350)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{burger, soda})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.CustomerID().IsEqual(testOrder.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.Nil(loaded.Driver())
	suite.True(loaded.TotalPrice().IsEqual(testOrder.TotalPrice()))
	suite.Len(loaded.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateClaim_PendingOrder_Wins() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	outcome, err := testOrder.Claim(driverID)
	suite.Require().NoError(err)
	suite.Require().True(outcome.Applied())

	won, err := suite.repository.UpdateClaim(ctx, testOrder)
	suite.Require().NoError(err)
	suite.True(won)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivering, loaded.Status())
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(driverID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateClaim_AlreadyClaimed_ReportsLoss() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.Claim(kernel.NewUUID())
	suite.Require().NoError(err)
	won, err := suite.repository.UpdateClaim(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Require().True(won)

	// a second conditional write on the now-Delivering row matches nothing
	won, err = suite.repository.UpdateClaim(ctx, testOrder)
	suite.Require().NoError(err)
	suite.False(won)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateClaim_ConcurrentClaims_OneWinner() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const claimants = 8
	var wg sync.WaitGroup
	wins := make(chan bool, claimants)

	for range claimants {
		wg.Add(1)
		go func() {
			defer wg.Done()

			repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
			claimed, err := repo.Get(ctx, testOrder.ID())
			if err != nil {
				wins <- false
				return
			}

			outcome, err := claimed.Claim(kernel.NewUUID())
			if err != nil || !outcome.Applied() {
				wins <- false
				return
			}

			won, err := repo.UpdateClaim(ctx, claimed)
			wins <- err == nil && won
		}()
	}

	wg.Wait()
	close(wins)

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	suite.Equal(1, winners)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsConfirmations() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	customerID := testOrder.CustomerID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	_, err := testOrder.Claim(driverID)
	suite.Require().NoError(err)
	won, err := suite.repository.UpdateClaim(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Require().True(won)

	outcome, err := testOrder.ConfirmByDriver(driverID)
	suite.Require().NoError(err)
	suite.Require().True(outcome.Applied())
	outcome, err = testOrder.ConfirmByCustomer(customerID)
	suite.Require().NoError(err)
	suite.Require().True(outcome.Applied())

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
	suite.True(loaded.DriverConfirmed())
	suite.True(loaded.CustomerConfirmed())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
