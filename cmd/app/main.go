package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"mealdash/cmd"
	httpadapter "mealdash/internal/adapters/in/http"
	"mealdash/internal/adapters/out/postgres/driverrepo"
	"mealdash/internal/adapters/out/postgres/menurepo"
	"mealdash/internal/adapters/out/postgres/orderrepo"
	"mealdash/internal/adapters/out/session"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	cartStore := mustCreateCartStore(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, cartStore)

	jobManager := app.CreateJobManager(slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		CartTTLMinutes: goDotEnvVariable("CART_TTL_MINUTES"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&driverrepo.DriverProfileDTO{},
		&menurepo.RestaurantDTO{},
		&menurepo.MenuItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func mustCreateCartStore(configs cmd.Config) *session.InMemoryCartStore {
	ttlMinutes, err := strconv.Atoi(configs.CartTTLMinutes)
	if err != nil {
		log.Fatalf("Error parsing CART_TTL_MINUTES: %v", err)
	}

	cartStore, err := session.NewInMemoryCartStore(time.Duration(ttlMinutes) * time.Minute)
	if err != nil {
		log.Fatalf("Error creating cart store: %v", err)
	}
	return cartStore
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	handlers := httpadapter.Handlers{
		AddToCart:          app.CreateAddToCartCommandHandler(),
		Checkout:           app.CreateCheckoutCommandHandler(),
		ClaimOrder:         app.CreateClaimOrderCommandHandler(),
		DriverConfirm:      app.CreateDriverConfirmCommandHandler(),
		CustomerConfirm:    app.CreateCustomerConfirmCommandHandler(),
		ToggleAvailability: app.CreateToggleDriverAvailabilityCommandHandler(),

		ViewCart:         app.CreateViewCartQueryHandler(),
		AvailableOrders:  app.CreateAvailableOrdersQueryHandler(),
		DriverDeliveries: app.CreateDriverDeliveriesQueryHandler(),
		DriverStats:      app.CreateDriverStatsQueryHandler(),
		CustomerOrders:   app.CreateCustomerOrdersQueryHandler(),
		Restaurants:      app.CreateRestaurantsQueryHandler(),
		RestaurantMenu:   app.CreateRestaurantMenuQueryHandler(),
	}

	server := httpadapter.NewServer(handlers)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
