package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/types"
)

// DefaultAPIVersion is assumed when X-Api-Version is absent
const DefaultAPIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, rejects unsupported
// major versions, and echoes the resolved version on the response
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimSpace(c.Get("X-Api-Version", DefaultAPIVersion))

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = DefaultAPIVersion
		}

		major, _, _ := strings.Cut(version, ".")
		if major != "1" {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: fmt.Sprintf("Unsupported API version %q", version),
				Type:    "version",
			}
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
