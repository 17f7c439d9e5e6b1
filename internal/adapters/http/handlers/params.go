package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/pkg/apperr"
)

const dateLayout = "2006-01-02"

// parseIDParam reads a numeric path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, *apperr.Error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, *apperr.Error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperr.BadRequest(name + " must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}
