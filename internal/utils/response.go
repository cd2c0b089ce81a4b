package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/types"
)

// SuccessResponse sends data as the JSON body with the given status
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, "not_found")
}

// ValidationErrorResponse sends a 400 listing every rejected field
func ValidationErrorResponse(c *fiber.Ctx, verr *types.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":    fiber.StatusBadRequest,
		"message":   verr.Error(),
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "validation",
		"fields":    verr.Fields,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int                `json:"status"`
	Message   string             `json:"message"`
	Ok        bool               `json:"ok"`
	Timestamp string             `json:"timestamp"`
	URL       string             `json:"url"`
	Type      string             `json:"type,omitempty"`
	Fields    []types.FieldError `json:"fields,omitempty"`
}
