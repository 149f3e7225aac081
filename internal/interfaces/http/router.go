package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	CatalogUC        *usecase.CatalogUseCase
	SupplierUC       *usecase.SupplierUseCase
	ConversionRuleUC *usecase.ConversionRuleUseCase
	AddressingUC     *usecase.AddressingUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ConsultUC        *inventory.ConsultUseCase
	RelinkUC         *inventory.RelinkUseCase
	ReportGen        inventory.BalanceReportGenerator
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	// Escrituras: solo admin y bodeguero. Consulta accede solo a lecturas.
	writer := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writer, productHandler.Create)
	products.Put("/:id", writer, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Configuración simple por colección (grupos, locais, tipos, obras...)
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/:kind", catalogHandler.List)
	catalog.Post("/:kind", writer, catalogHandler.Create)
	catalog.Put("/:kind/:id", writer, catalogHandler.Update)
	catalog.Delete("/:kind/:id", adminOnly, catalogHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", writer, supplierHandler.Create)
	suppliers.Put("/:id", writer, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Reglas de conversión compra→stock
	rules := protected.Group("/conversion-rules")
	ruleHandler := NewConversionRuleHandler(deps.ConversionRuleUC)
	rules.Get("/", ruleHandler.List)
	rules.Post("/", writer, ruleHandler.Create)
	rules.Put("/:id", writer, ruleHandler.Update)
	rules.Delete("/:id", adminOnly, ruleHandler.Delete)

	// Endereçamientos
	addressings := protected.Group("/addressings")
	addressingHandler := NewAddressingHandler(deps.AddressingUC)
	addressings.Get("/", addressingHandler.List)
	addressings.Post("/", writer, addressingHandler.Create)
	addressings.Put("/:id", writer, addressingHandler.Update)
	addressings.Delete("/:id", adminOnly, addressingHandler.Delete)

	// Motor de inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.ConsultUC, deps.RelinkUC)
	balanceHandler := NewBalanceHandler(deps.ConsultUC, deps.ReportGen)
	invGroup.Post("/entries", writer, inventoryHandler.RegisterEntry)
	invGroup.Post("/exits", writer, inventoryHandler.RegisterExit)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/balances", balanceHandler.List)
	invGroup.Get("/balances/:id", balanceHandler.GetByProduct)
	invGroup.Get("/orphans", balanceHandler.Orphans)
	invGroup.Get("/report", balanceHandler.Report)
	// Migración de religado: una sola vez, solo admin.
	invGroup.Post("/relink-refs", adminOnly, inventoryHandler.Relink)
}
