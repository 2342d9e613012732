package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obratex/deposito-api/internal/application/catalog"
	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/application/separation"
	"github.com/obratex/deposito-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ComputeStock *stock.ComputeStockUseCase
	Movement     *stock.MovementUseCase
	Lists        *lists.ListUseCase
	Slots        *lists.SlotUseCase
	Planner      *separation.PlannerUseCase
	Products     *catalog.ProductUseCase
	Directory    *catalog.DirectoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock: consulta y movimientos del ledger de piso
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.ComputeStock, deps.Movement)
	stockGroup.Get("/:productId", stockHandler.GetStock)
	stockGroup.Get("/:productId/detail", stockHandler.GetStockDetail)
	stockGroup.Post("/transfers", stockHandler.Transfer)
	stockGroup.Post("/withdrawals", stockHandler.Withdraw)

	// Listas de vagas
	listGroup := api.Group("/lists")
	listHandler := NewListHandler(deps.Lists)
	listGroup.Post("/", listHandler.Create)
	listGroup.Get("/", listHandler.List)
	listGroup.Delete("/:id", listHandler.Delete)
	listGroup.Post("/:id/finalize", listHandler.Finalize)
	listGroup.Post("/:id/unfinalize", listHandler.Unfinalize)

	// Vagas
	slotGroup := api.Group("/slots")
	slotHandler := NewSlotHandler(deps.Slots)
	slotGroup.Post("/", slotHandler.Create)
	slotGroup.Post("/bulk", slotHandler.CreateBulk)
	slotGroup.Delete("/:id", slotHandler.Delete)

	// Separación (planificador, solo lectura)
	sepGroup := api.Group("/separations")
	sepHandler := NewSeparationHandler(deps.Planner)
	sepGroup.Post("/plan", sepHandler.Plan)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.Products, deps.Directory)
	products := api.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)

	buildings := api.Group("/buildings")
	buildings.Post("/", catalogHandler.CreateBuilding)
	buildings.Get("/", catalogHandler.ListBuildings)

	suppliers := api.Group("/suppliers")
	suppliers.Post("/", catalogHandler.CreateSupplier)
	suppliers.Get("/", catalogHandler.ListSuppliers)
	suppliers.Get("/:id", catalogHandler.GetSupplier)
}
