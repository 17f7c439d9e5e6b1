package apperr

import "github.com/gofiber/fiber/v2"

// Detail describes one violated field rule
type Detail struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error is the one error type the HTTP layer emits. Every failure path,
// whatever its origin, ends up as an Error so that every non-2xx response
// carries the same JSON body shape.
type Error struct {
	Status  int      `json:"-"`
	Message string   `json:"error"`
	Details []Detail `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an error with an explicit status code
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest creates a 400 error
func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

// MalformedJSON creates the 400 error for unparseable request bodies
func MalformedJSON() *Error {
	return New(fiber.StatusBadRequest, "Invalid JSON format in request body")
}

// Validation creates a 400 error carrying one detail per violated rule
func Validation(details []Detail) *Error {
	return &Error{
		Status:  fiber.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

// Forbidden creates a 403 error
func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

// NotFound creates a 404 error
func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

// Conflict creates a 409 error
func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

// Internal creates a 500 error with a generic message; the underlying
// cause is logged server-side, never sent to the client
func Internal() *Error {
	return New(fiber.StatusInternalServerError, "Internal server error")
}
