package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/cladjidane/k-stockhome/internal/api/handlers"
	"github.com/cladjidane/k-stockhome/internal/api/routes"
	"github.com/cladjidane/k-stockhome/internal/middleware"
	"github.com/cladjidane/k-stockhome/internal/utils"
	"github.com/cladjidane/k-stockhome/internal/utils/mailing"
	"github.com/cladjidane/k-stockhome/pkg/catalog"
	"github.com/cladjidane/k-stockhome/pkg/openfoodfacts"
	"github.com/cladjidane/k-stockhome/pkg/product"
	"github.com/cladjidane/k-stockhome/pkg/shoppinglist"
)

const defaultLowStockThreshold = 2

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Paris",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	lowStockThreshold := utils.GetConfigInt("LOW_STOCK_THRESHOLD", defaultLowStockThreshold)

	// utils
	lookup := openfoodfacts.NewClient(utils.GetConfig("OFF_BASE_URL"))
	mailer := mailing.Sender{}

	// Repository
	productRepository := product.NewProductRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	productService := product.NewProductService(productRepository, lookup, catalog.DefaultTaxonomy, lowStockThreshold)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, productRepository, mailer, lowStockThreshold)

	// Handler
	productHandler := handlers.NewProductHandler(productService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ProductHandler:      productHandler,
		ShoppingListHandler: shoppingListHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
