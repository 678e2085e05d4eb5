package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Abastecimiento-api/internal/application/dto"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryDate lee una fecha YYYY-MM-DD; vacía devuelve def.
func queryDate(c *fiber.Ctx, name string, def time.Time) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return entity.Day(def), true
	}
	t, err := time.ParseInLocation(dto.DateLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// queryHorizon lee ?horizon=; ausente devuelve 0 (horizonte por defecto).
func queryHorizon(c *fiber.Ctx) (int, bool) {
	v := c.Query("horizon")
	if v == "" {
		return 0, true
	}
	h, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return h, true
}
