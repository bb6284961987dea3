package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cladjidane/k-stockhome/internal/api/handlers"
	"github.com/cladjidane/k-stockhome/internal/middleware"
)

type Config struct {
	App                 *fiber.App
	ProductHandler      handlers.ProductHandler
	ShoppingListHandler handlers.ShoppingListHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Products()
	c.ShoppingList()
	c.GuestRoute()
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Post("", c.ProductHandler.AddProduct)
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/grouped", c.ProductHandler.GetGroupedProducts)
		products.Get("/scan/:barcode", c.ProductHandler.ScanBarcode)
		products.Get("/check-barcode/:barcode", c.ProductHandler.CheckBarcode)
		products.Get("/:id", c.ProductHandler.GetProductDetails)
		products.Put("/:id", c.ProductHandler.UpdateProduct)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
		products.Patch("/:id/quantity", c.ProductHandler.AdjustQuantity)
	}
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list")
	{
		shoppingList.Get("", c.ShoppingListHandler.GetItems)
		shoppingList.Post("", c.ShoppingListHandler.AddItem)
		shoppingList.Get("/suggestions", c.ShoppingListHandler.GetLowStockSuggestions)
		shoppingList.Post("/share", c.ShoppingListHandler.ShareList)
		shoppingList.Patch("/:id", c.ShoppingListHandler.UpdateItem)
		shoppingList.Delete("/:id", c.ShoppingListHandler.RemoveItem)
		shoppingList.Post("/:id/purchase", c.ShoppingListHandler.ValidatePurchase)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
