package cmd

import (
	"log/slog"

	"mealdash/internal/adapters/out/postgres"
	"mealdash/internal/adapters/out/postgres/menurepo"
	"mealdash/internal/adapters/out/session"
	"mealdash/internal/core/application/usecases/commands"
	"mealdash/internal/core/application/usecases/queries"
	"mealdash/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *menurepo.GormCatalog
	cartStore  *session.InMemoryCartStore
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, cartStore *session.InMemoryCartStore) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    menurepo.NewGormCatalog(gormDB),
		cartStore:  cartStore,
	}
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.catalog, c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.catalog, c.cartStore)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDriverConfirmCommandHandler() commands.DriverConfirmCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDriverConfirmCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerConfirmCommandHandler() commands.CustomerConfirmCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerConfirmCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleDriverAvailabilityCommandHandler() commands.ToggleDriverAvailabilityCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleDriverAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateViewCartQueryHandler() queries.ViewCartQueryHandler {
	return queries.NewViewCartQueryHandler(c.catalog, c.cartStore)
}

func (c *CompositionRoot) CreateAvailableOrdersQueryHandler() queries.AvailableOrdersQueryHandler {
	return queries.NewAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDriverDeliveriesQueryHandler() queries.DriverDeliveriesQueryHandler {
	return queries.NewDriverDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDriverStatsQueryHandler() queries.DriverStatsQueryHandler {
	return queries.NewDriverStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerOrdersQueryHandler() queries.CustomerOrdersQueryHandler {
	return queries.NewCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRestaurantsQueryHandler() queries.RestaurantsQueryHandler {
	return queries.NewRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRestaurantMenuQueryHandler() queries.RestaurantMenuQueryHandler {
	return queries.NewRestaurantMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(jobs.NewCartJanitorJob(c.cartStore, logger))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
