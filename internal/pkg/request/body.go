package request

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/pkg/apperr"
	"crewledger/internal/pkg/validation"
)

// ParseJSON decodes the request body into out. An absent or empty body is
// not an error; out keeps its zero values and validation decides whether
// anything was required. A body that fails to parse as JSON is rejected.
// Unknown extra fields are ignored, not rejected.
func ParseJSON(c *fiber.Ctx, out interface{}) *apperr.Error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperr.MalformedJSON()
	}

	return nil
}

// ParseAndValidate decodes the request body and evaluates the rules
// declared on out's validate tags. This is the entry into the request
// pipeline every write endpoint shares.
func ParseAndValidate(c *fiber.Ctx, out interface{}) *apperr.Error {
	if err := ParseJSON(c, out); err != nil {
		return err
	}
	return validation.Struct(out)
}
