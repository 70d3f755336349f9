// auth.go
//
// A personal-development tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of growthdb.
// growthdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// growthdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with growthdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/growthdb/internal/services"
	"github.com/localnerve/growthdb/internal/types"
)

// UserIDKey is the fiber Locals key holding the authenticated user id.
const UserIDKey = "userID"

// AuthUser requires a valid bearer token and stores its user id in Locals.
func AuthUser(tokens *services.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, tokens, "authorization.user")
	}
}

// authorize performs the bearer token check
func authorize(c *fiber.Ctx, tokens *services.TokenIssuer, errorType string) error {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Bearer token not found",
			Type:    errorType,
		}
	}

	userID, err := tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: err.Error(),
			Type:    errorType,
		}
	}

	c.Locals(UserIDKey, userID)
	return c.Next()
}
