package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *supplies.RegisterMovementUseCase
	DeleteMovement   *supplies.DeleteMovementUseCase
	Views            *supplies.ViewsUseCase
	Receipt          *supplies.ReceiptUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Todo el módulo exige Bearer Token;
// eliminar movimientos queda restringido al rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos de dotación
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Ledger de dotación
	suppliesGroup := api.Group("/supplies")
	suppliesHandler := NewSuppliesHandler(deps.RegisterMovement, deps.DeleteMovement, deps.Views, deps.Receipt)
	suppliesGroup.Post("/movements", suppliesHandler.RegisterMovement)
	suppliesGroup.Delete("/movements/:id", RequireRole("admin"), suppliesHandler.DeleteMovement)
	suppliesGroup.Get("/movements/:id/receipt", suppliesHandler.DeliveryReceipt)

	// Vistas agregadas
	suppliesGroup.Get("/stock", suppliesHandler.Stock)
	suppliesGroup.Get("/posts", suppliesHandler.StockByPost)
	suppliesGroup.Get("/posts/:id/movements", suppliesHandler.PostHistory)
	suppliesGroup.Get("/employees/:id/movements", suppliesHandler.EmployeeHistory)
	suppliesGroup.Get("/log", suppliesHandler.PurchaseDisposalLog)
	suppliesGroup.Get("/products/:id/balance", suppliesHandler.ProductBalance)
}
