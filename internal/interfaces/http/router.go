package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dynastyos/dynasty-ops-api/internal/application/auth"
	appinv "github.com/dynastyos/dynasty-ops-api/internal/application/inventory"
	approuting "github.com/dynastyos/dynasty-ops-api/internal/application/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/application/usecase"
	"github.com/dynastyos/dynasty-ops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	RoutingUC *approuting.OptimizeRoutesUseCase
	ReorderUC *appinv.ReorderUseCase
	POUC      *appinv.PurchaseOrderUseCase
	DocUC     *appinv.DocumentUseCase
	AIUC      *usecase.AIUseCase
	JWTSecret string
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

	// Routes: optimización y seguimiento del día (protegido)
	routes := protected.Group("/routes")
	routingHandler := NewRoutingHandler(deps.RoutingUC)
	routes.Post("/optimize", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), routingHandler.Optimize)
	routes.Get("/", routingHandler.List)
	routes.Patch("/:id/status", routingHandler.UpdateStatus)

	// Inventory: sugerencias de reposición y borradores (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ReorderUC, deps.POUC)
	invGroup.Get("/reorder-suggestions", inventoryHandler.Suggestions)
	invGroup.Post("/purchase-orders/draft", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), inventoryHandler.GenerateDrafts)

	// Purchase orders: documentos de salida (protegido)
	poGroup := protected.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.DocUC)
	poGroup.Get("/:id/pdf", poHandler.PDF)
	poGroup.Get("/:id/cxml", poHandler.CXML)

	// AI: seguimiento comercial (protegido)
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Post("/follow-up", aiHandler.SuggestFollowUp)
}
