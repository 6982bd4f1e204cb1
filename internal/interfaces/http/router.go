package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-management-api/internal/application/stock"
	"github.com/jhoicas/store-management-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	UserUC            *usecase.UserUseCase
	GenericUC         *usecase.GenericUseCase
	CompanyUC         *usecase.CompanyUseCase
	CategoryUC        *usecase.CategoryUseCase
	ProductUC         *usecase.ProductUseCase
	PurchaseInvoiceUC *usecase.InvoiceUseCase
	SoldInvoiceUC     *usecase.InvoiceUseCase
	StockUC           *stock.AdjustStockUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	// Stock adjustment engine (paths are part of the wire contract)
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup := app.Group("/stock")
	stockGroup.Patch("/increase", stockHandler.Increase)
	stockGroup.Patch("/decrease", stockHandler.Decrease)

	api := app.Group("/api")

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)

	// Generics
	generics := api.Group("/generics")
	genericHandler := NewGenericHandler(deps.GenericUC)
	generics.Get("/", genericHandler.List)
	generics.Post("/", genericHandler.Create)
	generics.Delete("/:id", genericHandler.Delete)

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Invoices (by-date must be registered before :id)
	purchase := api.Group("/purchase-invoices")
	purchaseHandler := NewInvoiceHandler(deps.PurchaseInvoiceUC)
	purchase.Get("/", purchaseHandler.List)
	purchase.Get("/by-date/:date", purchaseHandler.ListByDate)
	purchase.Get("/:id", purchaseHandler.GetByID)
	purchase.Post("/", purchaseHandler.Create)

	sold := api.Group("/sold-invoices")
	soldHandler := NewInvoiceHandler(deps.SoldInvoiceUC)
	sold.Get("/", soldHandler.List)
	sold.Get("/by-date/:date", soldHandler.ListByDate)
	sold.Get("/:id", soldHandler.GetByID)
	sold.Post("/", soldHandler.Create)
}
