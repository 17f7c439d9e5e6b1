package response

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"crewledger/internal/pkg/apperr"
)

// JSON sends a 200 response with the given payload
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 response with the given payload
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends a 200 response with a small confirmation body
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// Err sends an application error in the single error body shape:
// { "error": string, "details"?: [{field, message, value}] }
func Err(c *fiber.Ctx, e *apperr.Error) error {
	return c.Status(e.Status).JSON(e)
}

// BadRequest sends a 400 error response
func BadRequest(c *fiber.Ctx, message string) error {
	return Err(c, apperr.BadRequest(message))
}

// ValidationFailed sends a 400 response listing every violated rule
func ValidationFailed(c *fiber.Ctx, details []apperr.Detail) error {
	return Err(c, apperr.Validation(details))
}

// Unauthorized sends a 401 error response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Err(c, apperr.Unauthorized(message))
}

// Forbidden sends a 403 error response
func Forbidden(c *fiber.Ctx, message string) error {
	return Err(c, apperr.Forbidden(message))
}

// NotFound sends a 404 error response
func NotFound(c *fiber.Ctx, message string) error {
	return Err(c, apperr.NotFound(message))
}

// Conflict sends a 409 error response
func Conflict(c *fiber.Ctx, message string) error {
	return Err(c, apperr.Conflict(message))
}

// InternalServerError sends a 500 error response with a generic message
func InternalServerError(c *fiber.Ctx) error {
	return Err(c, apperr.Internal())
}

// EndpointNotFound sends the 404 body for unmatched routes
func EndpointNotFound(c *fiber.Ctx) error {
	return Err(c, apperr.NotFound(
		fmt.Sprintf("Endpoint %s %s not found", c.Method(), c.Path()),
	))
}
