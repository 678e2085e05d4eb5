package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/application/usecase"
)

// StockPointHandler alta y consulta de puntos de stock y rutas.
type StockPointHandler struct {
	stockPoints *usecase.StockPointUseCase
	routes      *usecase.RouteUseCase
}

func NewStockPointHandler(stockPoints *usecase.StockPointUseCase, routes *usecase.RouteUseCase) *StockPointHandler {
	return &StockPointHandler{stockPoints: stockPoints, routes: routes}
}

// Create godoc
// @Summary      Crear punto de stock
// @Tags         stock-points
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockPointRequest  true  "product_id, name, current_stock"
// @Success      201   {object}  dto.StockPointResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-points [post]
func (h *StockPointHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockPointRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ProductID <= 0 || in.Name == "" {
		return badRequest(c, "VALIDATION", "product_id y name son requeridos")
	}
	out, err := h.stockPoints.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener punto de stock
// @Tags         stock-points
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del punto de stock"
// @Success      200  {object}  dto.StockPointResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-points/{id} [get]
func (h *StockPointHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	out, err := h.stockPoints.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateRoute godoc
// @Summary      Crear ruta de suministro
// @Description  lead_time omitido usa 2 días.
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRouteRequest  true  "sender_id, receiver_id, capacity, lead_time"
// @Success      201   {object}  dto.RouteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/routes [post]
func (h *StockPointHandler) CreateRoute(c *fiber.Ctx) error {
	var in dto.CreateRouteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.routes.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
