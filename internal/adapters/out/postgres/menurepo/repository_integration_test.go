package menurepo_test

import (
	"context"
	"testing"
	"time"

	"mealdash/internal/adapters/out/postgres/menurepo"
	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/menu"
	"mealdash/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogIntegrationTestSuite verifies catalog persistence and lookup
// against a real PostgreSQL instance.
type CatalogIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	catalog   *menurepo.GormCatalog
}

func (suite *CatalogIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&menurepo.RestaurantDTO{}, &menurepo.MenuItemDTO{}))

	suite.catalog = menurepo.NewGormCatalog(db)
}

func (suite *CatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants").Error)
}

func (suite *CatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogIntegrationTestSuite) createMenuItem(name, price string) menu.MenuItem {
	restaurant, err := menu.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Thai Corner")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalog.AddRestaurant(context.Background(), restaurant))

	amount, err := kernel.PriceFromString(price)
	suite.Require().NoError(err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), restaurant.ID(), name, amount)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalog.AddMenuItem(context.Background(), item))
	return item
}

func (suite *CatalogIntegrationTestSuite) TestResolve_ExistingItem() {
	item := suite.createMenuItem("Pad Thai", "9.75")

	resolved, err := suite.catalog.Resolve(context.Background(), item.ID())

	suite.Require().NoError(err)
	suite.True(resolved.ID().IsEqual(item.ID()))
	suite.Equal("Pad Thai", resolved.Name())
	suite.True(resolved.Price().IsEqual(item.Price()))
}

func (suite *CatalogIntegrationTestSuite) TestResolve_UnknownItem() {
	_, err := suite.catalog.Resolve(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogIntegrationTestSuite) TestResolve_InvalidID() {
	_, err := suite.catalog.Resolve(context.Background(), kernel.UUID{})
	suite.Require().Error(err)
}

func TestCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogIntegrationTestSuite))
}
