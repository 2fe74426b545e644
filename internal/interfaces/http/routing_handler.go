package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dynastyos/dynasty-ops-api/internal/application/dto"
	approuting "github.com/dynastyos/dynasty-ops-api/internal/application/routing"
	"github.com/dynastyos/dynasty-ops-api/internal/domain"
	"github.com/dynastyos/dynasty-ops-api/internal/metrics"
)

// RoutingHandler maneja la optimización y consulta de rutas diarias.
type RoutingHandler struct {
	uc *approuting.OptimizeRoutesUseCase
}

// NewRoutingHandler construye el handler de rutas.
func NewRoutingHandler(uc *approuting.OptimizeRoutesUseCase) *RoutingHandler {
	return &RoutingHandler{uc: uc}
}

// Optimize godoc
// @Summary      Generar las rutas del día
// @Description  Rankea las paradas pendientes por urgencia, las reparte entre los
//               workers activos y secuencia cada ruta por vecino más cercano.
//               Las rutas quedan en estado planned.
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OptimizeRoutesRequest  false  "date (YYYY-MM-DD, vacío = hoy)"
// @Success      200   {object}  dto.OptimizeRoutesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/routes/optimize [post]
func (h *RoutingHandler) Optimize(c *fiber.Ctx) error {
	var in dto.OptimizeRoutesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	date, err := parseDateOrToday(in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
	}

	out, err := h.uc.Generate(c.Context(), GetCompanyID(c), date)
	if err != nil {
		if errors.Is(err, domain.ErrNoWorkersAvailable) {
			metrics.RoutesOptimized.WithLabelValues("no_workers").Inc()
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_WORKERS", Message: "no hay repartidores activos para planear rutas"})
		}
		metrics.RoutesOptimized.WithLabelValues("error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	metrics.RoutesOptimized.WithLabelValues("ok").Inc()
	metrics.RouteStopsAssigned.Observe(float64(out.TotalStops - len(out.UnassignedIDs)))
	return c.JSON(out)
}

// List godoc
// @Summary      Listar las rutas de un día
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD, vacío = hoy"
// @Success      200   {array}  dto.RouteDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/routes [get]
func (h *RoutingHandler) List(c *fiber.Ctx) error {
	date, err := parseDateOrToday(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
	}
	routes, err := h.uc.List(c.Context(), GetCompanyID(c), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(routes)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una ruta
// @Description  Solo permite el ciclo planned → in_progress → completed.
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "route id"
// @Param        body  body  dto.UpdateRouteStatusRequest  true  "status"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/routes/{id}/status [patch]
func (h *RoutingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateRouteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}

	err := h.uc.UpdateStatus(c.Context(), GetCompanyID(c), c.Params("id"), in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la ruta no existe"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la ruta pertenece a otra empresa"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDateOrToday interpreta YYYY-MM-DD; vacío = hoy (UTC, truncado al día).
func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}
