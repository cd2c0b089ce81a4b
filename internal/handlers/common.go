// common.go
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

package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/workout-tracker/internal/middleware"
	"github.com/localnerve/workout-tracker/internal/types"
	"gorm.io/gorm"
)

const (
	maxUserIDLength = 255
	maxUnitLength   = 16
)

// withContext binds the request context to the database handle
func withContext(db *gorm.DB, c *fiber.Ctx) *gorm.DB {
	return db.WithContext(c.UserContext())
}

// validateUserID checks user_id and that it belongs to the authenticated user
func validateUserID(c *fiber.Ctx, userID string, verr *types.ValidationError) error {
	switch {
	case strings.TrimSpace(userID) == "":
		verr.Add("user_id", "is required")
	case len(userID) > maxUserIDLength:
		verr.Add("user_id", "must be at most %d characters", maxUserIDLength)
	default:
		return middleware.EnsureUser(c, userID)
	}
	return nil
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *fiber.Ctx, name string, verr *types.ValidationError) uint64 {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		verr.Add(name, "must be a positive integer")
		return 0
	}
	return id
}

// parseOptionalID reads a positive integer query parameter, nil when absent
func parseOptionalID(c *fiber.Ctx, name string, verr *types.ValidationError) *uint64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		verr.Add(name, "must be a positive integer")
		return nil
	}
	return &id
}

// parseRequiredID reads a positive integer query parameter that must be present
func parseRequiredID(c *fiber.Ctx, name string, verr *types.ValidationError) uint64 {
	if c.Query(name) == "" {
		verr.Add(name, "is required")
		return 0
	}
	id := parseOptionalID(c, name, verr)
	if id == nil {
		return 0
	}
	return *id
}

// parsePagination reads limit (> 0) and offset (>= 0). Zero values mean the defaults.
func parsePagination(c *fiber.Ctx, verr *types.ValidationError) (limit, offset int) {
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			verr.Add("limit", "must be a positive integer")
		} else {
			limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			verr.Add("offset", "must be a non-negative integer")
		} else {
			offset = n
		}
	}
	return limit, offset
}

// parseTimestamp reads an optional RFC 3339 timestamp
func parseTimestamp(field string, raw *string, verr *types.ValidationError) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		verr.Add(field, "must be an RFC 3339 timestamp")
		return nil
	}
	t = t.UTC()
	return &t
}

// parseBody decodes the JSON request body
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		verr := &types.ValidationError{}
		verr.Add("body", "invalid JSON body: %v", err)
		return verr
	}
	return nil
}
