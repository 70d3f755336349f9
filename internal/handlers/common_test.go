// common_test.go
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
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/growthdb/internal/middleware"
	"github.com/localnerve/growthdb/internal/types"
	"github.com/localnerve/growthdb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, app *fiber.App, method, path, body string) (int, utils.ErrorResponseStruct) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out utils.ErrorResponseStruct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantMsg    string
	}{
		{"fiber 404", fiber.ErrNotFound, 404, "not_found", "Not Found"},
		{"fiber 429", fiber.NewError(fiber.StatusTooManyRequests, "slow down"), 429, "unknown", "slow down"},
		{"custom", &types.CustomError{Code: 418, Message: "teapot", Type: "brew"}, 418, "brew", "teapot"},
		{"not found", fmt.Errorf("goal not found: %w", types.ErrNotFound), 404, "", "goal not found: not found"},
		{"invalid", types.Invalid("bad date"), 400, "unknown", "invalid input: bad date"},
		{"conflict", fmt.Errorf("dup: %w", types.ErrConflict), 400, "unknown", "dup: conflict"},
		{"unauthorized", fmt.Errorf("nope: %w", types.ErrUnauthorized), 401, "unknown", "nope: unauthorized"},
		{"internal", errors.New("disk on fire"), 500, "unknown", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			status, body := decodeError(t, app, "GET", "/", "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantType, body.Type)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.False(t, body.Ok)
		})
	}
}

type bindTarget struct {
	Name  string           `json:"name" validate:"required"`
	Score *int             `json:"score" validate:"omitempty,min=1,max=10"`
	Tags  types.StringList `json:"tags"`
}

func TestBind(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/", func(c *fiber.Ctx) error {
		var in bindTarget
		if err := bind(c, &in); err != nil {
			return respondError(c, err, "bind")
		}
		return c.JSON(in)
	})

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed", `{"name":`, "malformed JSON body"},
		{"missing required", `{"score":3}`, "bindTarget.name is required"},
		{"out of range", `{"name":"a","score":11}`, "bindTarget.score must satisfy max=10"},
		{"bad list", `{"name":"a","tags":[1,2]}`, "expected a list of strings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := decodeError(t, app, "POST", "/", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "bind", body.Type)
			assert.Contains(t, body.Message, tt.wantMsg)
		})
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a","tags":"solo"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var got bindTarget
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, types.StringList{"solo"}, got.Tags)
}

func TestGetUserID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/anon", func(c *fiber.Ctx) error {
		_, err := getUserID(c)
		return err
	})
	app.Get("/known", func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "u-1")
		id, err := getUserID(c)
		if err != nil {
			return err
		}
		return c.SendString(id)
	})

	status, body := decodeError(t, app, "GET", "/anon", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "authorization.user", body.Type)

	resp, err := app.Test(httptest.NewRequest("GET", "/known", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(NotFound)

	status, body := decodeError(t, app, "GET", "/missing", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "[404] Resource Not Found", body.Message)
	assert.Equal(t, "/missing", body.URL)
}
