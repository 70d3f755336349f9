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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/growthdb/internal/services"
	"gorm.io/gorm"
)

// AuthHandler handles account registration and login
type AuthHandler struct {
	DB     *gorm.DB
	Tokens *services.TokenIssuer
}

// Routes mounts the public auth routes on r.
func (h *AuthHandler) Routes(r fiber.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create an account and return a bearer token for it
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Account details"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 429 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "auth.register")
	}

	resp, err := services.Register(c.UserContext(), h.DB, h.Tokens, in)
	if err != nil {
		return respondError(c, err, "auth.register")
	}
	return c.JSON(resp)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 429 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "auth.login")
	}

	resp, err := services.Login(c.UserContext(), h.DB, h.Tokens, in)
	if err != nil {
		return respondError(c, err, "auth.login")
	}
	return c.JSON(resp)
}
