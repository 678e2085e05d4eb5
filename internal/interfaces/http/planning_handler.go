package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/application/planner"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/planning"
)

// PlanningHandler consultas del motor de proyección (ATP/CTP) y operaciones sobre
// solicitudes y órdenes de movimiento.
type PlanningHandler struct {
	projection *planner.ProjectionUseCase
	report     *planner.ReportUseCase
	requests   *planner.RequestUseCase
	execution  *planner.ExecuteMoveUseCase
	now        func() time.Time
}

// NewPlanningHandler construye el handler. now fija la fecha base cuando la consulta no trae as_of.
func NewPlanningHandler(
	projection *planner.ProjectionUseCase,
	report *planner.ReportUseCase,
	requests *planner.RequestUseCase,
	execution *planner.ExecuteMoveUseCase,
	now func() time.Time,
) *PlanningHandler {
	if now == nil {
		now = time.Now
	}
	return &PlanningHandler{projection: projection, report: report, requests: requests, execution: execution, now: now}
}

// asOfAndHorizon lee ?as_of= y ?horizon=; devuelve un mensaje de validación si alguno es inválido.
func (h *PlanningHandler) asOfAndHorizon(c *fiber.Ctx) (time.Time, int, string) {
	asOf, ok := queryDate(c, "as_of", h.now())
	if !ok {
		return time.Time{}, 0, "as_of debe tener formato YYYY-MM-DD"
	}
	horizon, ok := queryHorizon(c)
	if !ok {
		return time.Time{}, 0, "horizon debe ser un entero"
	}
	return asOf, horizon, ""
}

// Projection godoc
// @Summary      Tabla de proyección del punto de stock
// @Description  Demanda, suministro, inventario proyectado, ATP y CTP por día desde as_of.
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        id       path   int     true   "ID del punto de stock"
// @Param        horizon  query  int     false  "Días (1..730)"  default(365)
// @Param        as_of    query  string  false  "Fecha base YYYY-MM-DD (hoy por defecto)"
// @Success      200  {object}  dto.ProjectionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-points/{id}/projection [get]
func (h *PlanningHandler) Projection(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	asOf, horizon, msg := h.asOfAndHorizon(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.projection.Table(c.UserContext(), id, asOf, horizon)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProjectionPDF godoc
// @Summary      Informe PDF de la proyección
// @Tags         planning
// @Security     Bearer
// @Produce      application/pdf
// @Param        id       path   int     true   "ID del punto de stock"
// @Param        horizon  query  int     false  "Días (1..730)"
// @Param        as_of    query  string  false  "Fecha base YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-points/{id}/projection.pdf [get]
func (h *PlanningHandler) ProjectionPDF(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	asOf, horizon, msg := h.asOfAndHorizon(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.report.ProjectionPDF(c.UserContext(), id, asOf, horizon)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="proyeccion-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(out)
}

// Orders godoc
// @Summary      Órdenes del punto de stock en una ventana de fechas
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        id         path   int     true   "ID del punto de stock"
// @Param        direction  query  string  false  "incoming | outgoing (ambas por defecto)"
// @Param        from       query  string  false  "Desde YYYY-MM-DD (hoy por defecto)"
// @Param        to         query  string  false  "Hasta YYYY-MM-DD (from + horizonte por defecto)"
// @Param        status     query  string  false  "pending | completed | all"  default(pending)
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-points/{id}/orders [get]
func (h *PlanningHandler) Orders(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	from, ok := queryDate(c, "from", h.now())
	if !ok {
		return badRequest(c, "VALIDATION", "from debe tener formato YYYY-MM-DD")
	}
	to, ok := queryDate(c, "to", from.AddDate(0, 0, h.projection.DefaultHorizon()))
	if !ok {
		return badRequest(c, "VALIDATION", "to debe tener formato YYYY-MM-DD")
	}
	status := c.Query("status", "pending")
	filter, err := planning.ParseStatusFilter(status)
	if err != nil {
		return writeError(c, err)
	}
	q := planner.OrderQuery{From: from, To: to, Status: filter}
	switch strings.ToLower(c.Query("direction")) {
	case "":
	case "incoming":
		q.Incoming = true
	case "outgoing":
		q.Outgoing = true
	default:
		return badRequest(c, "VALIDATION", "direction debe ser incoming u outgoing")
	}
	out, err := h.projection.ListOrders(c.UserContext(), id, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Resumen ATP/CTP de todos los puntos de un producto
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        id       path   int     true   "ID del producto"
// @Param        horizon  query  int     false  "Días (1..730)"
// @Param        as_of    query  string  false  "Fecha base YYYY-MM-DD"
// @Success      200  {object}  dto.ProductOverviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/overview [get]
func (h *PlanningHandler) Overview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	asOf, horizon, msg := h.asOfAndHorizon(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.projection.Overview(c.UserContext(), id, asOf, horizon)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddRequest godoc
// @Summary      Registrar solicitud de movimiento sobre una ruta
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path   int     true   "ID de la ruta"
// @Param        as_of  query  string  false  "Fecha de registro YYYY-MM-DD"
// @Param        body   body   dto.CreateMoveRequestRequest  true  "delivery_offset_days, quantity"
// @Success      201  {object}  dto.MoveRequestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/routes/{id}/requests [post]
func (h *PlanningHandler) AddRequest(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	var in dto.CreateMoveRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	asOf, ok := queryDate(c, "as_of", h.now())
	if !ok {
		return badRequest(c, "VALIDATION", "as_of debe tener formato YYYY-MM-DD")
	}
	out, err := h.requests.AddRequest(c.UserContext(), id, in, asOf)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// FillRequest godoc
// @Summary      Crear la orden que cubre lo pendiente de una solicitud
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      201  {object}  dto.MoveOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/move-requests/{id}/fill [post]
func (h *PlanningHandler) FillRequest(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	out, err := h.requests.FillRequest(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Execute godoc
// @Summary      Ejecutar una orden de movimiento
// @Description  Mueve el stock del emisor al receptor y marca la orden como completada en una sola transacción.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.ExecutionResult
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/move-orders/{id}/execute [post]
func (h *PlanningHandler) Execute(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "MISSING_ID", "id numérico requerido")
	}
	out, err := h.execution.Execute(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExecuteScheduled godoc
// @Summary      Ejecutar las órdenes pendientes programadas para un día
// @Description  Cada orden se ejecuta en su propia transacción; los fallos se informan sin afectar a las demás.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        day  query  string  false  "Día YYYY-MM-DD (hoy por defecto)"
// @Success      200  {object}  dto.BatchExecutionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/move-orders/execute-scheduled [post]
func (h *PlanningHandler) ExecuteScheduled(c *fiber.Ctx) error {
	day, ok := queryDate(c, "day", h.now())
	if !ok {
		return badRequest(c, "VALIDATION", "day debe tener formato YYYY-MM-DD")
	}
	out, err := h.execution.ExecuteScheduled(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
