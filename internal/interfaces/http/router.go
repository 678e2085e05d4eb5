package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Abastecimiento-api/internal/application/planner"
	"github.com/jhoicas/Abastecimiento-api/internal/application/usecase"
	"github.com/jhoicas/Abastecimiento-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	StockPointUC *usecase.StockPointUseCase
	RouteUC      *usecase.RouteUseCase
	ProjectionUC *planner.ProjectionUseCase
	ReportUC     *planner.ReportUseCase
	RequestUC    *planner.RequestUseCase
	ExecuteUC    *planner.ExecuteMoveUseCase
	JWTSecret    string
	// Now fecha base por defecto de las consultas; nil usa time.Now.
	Now func() time.Time
}

// Router registra las rutas de la API.
// Lecturas: cualquier token válido. Mutaciones: rol planner o admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	write := RequireRole(jwt.RoleAdmin, jwt.RolePlanner)

	productHandler := NewProductHandler(deps.ProductUC)
	stockPointHandler := NewStockPointHandler(deps.StockPointUC, deps.RouteUC)
	planningHandler := NewPlanningHandler(deps.ProjectionUC, deps.ReportUC, deps.RequestUC, deps.ExecuteUC, deps.Now)

	// Products
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", write, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", write, productHandler.Delete)
	products.Get("/:id/overview", planningHandler.Overview)

	// Stock points + proyección
	stockPoints := api.Group("/stock-points")
	stockPoints.Post("/", write, stockPointHandler.Create)
	stockPoints.Get("/:id", stockPointHandler.GetByID)
	stockPoints.Get("/:id/projection", planningHandler.Projection)
	stockPoints.Get("/:id/projection.pdf", planningHandler.ProjectionPDF)
	stockPoints.Get("/:id/orders", planningHandler.Orders)

	// Routes
	routes := api.Group("/routes")
	routes.Post("/", write, stockPointHandler.CreateRoute)
	routes.Post("/:id/requests", write, planningHandler.AddRequest)

	// Solicitudes y órdenes
	api.Post("/move-requests/:id/fill", write, planningHandler.FillRequest)
	orders := api.Group("/move-orders")
	orders.Post("/execute-scheduled", write, planningHandler.ExecuteScheduled)
	orders.Post("/:id/execute", write, planningHandler.Execute)
}
