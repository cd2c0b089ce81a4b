// auth.go
//
// A personal workout tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of workout-tracker.
// workout-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// workout-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with workout-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/localnerve/workout-tracker/internal/services"
	"github.com/localnerve/workout-tracker/internal/types"
)

// userLocal is the fiber.Ctx locals key of the authenticated user
const userLocal = "user"

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"admin"}, "authorization.admin")
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"user"}, "authorization.user")
	}
}

// authorize performs the authorization check. Without AUTHZ_URL the service is open.
func authorize(c *fiber.Ctx, cfg *config.Config, roles []string, errorType string) error {
	if !cfg.AuthEnabled() {
		return c.Next()
	}

	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
		return &types.CustomError{
			Code:    fiber.StatusServiceUnavailable,
			Message: fmt.Sprintf("Authorizer unavailable: %v", err),
			Type:    errorType,
		}
	}

	user, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	c.Locals(userLocal, user)

	return c.Next()
}

// AuthenticatedUser returns the user stored by AuthUser or AuthAdmin, if any
func AuthenticatedUser(c *fiber.Ctx) (*services.AuthorizedUser, bool) {
	user, ok := c.Locals(userLocal).(*services.AuthorizedUser)
	return user, ok && user != nil
}

// EnsureUser rejects a request whose user_id is not the authenticated user.
// Requests on an open service pass.
func EnsureUser(c *fiber.Ctx, userID string) error {
	user, ok := AuthenticatedUser(c)
	if !ok {
		return nil
	}
	if user.ID != userID {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "user_id does not match the authenticated user",
			Type:    "authorization.user",
		}
	}
	return nil
}
