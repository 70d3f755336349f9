// common.go
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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/growthdb/internal/middleware"
	"github.com/localnerve/growthdb/internal/types"
	"github.com/localnerve/growthdb/internal/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names in validation errors.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// getUserID extracts user ID from context (set by auth middleware)
func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "user not found in context",
			Type:    "authorization.user",
		}
	}
	return userID, nil
}

// bind decodes the JSON body into dest and validates it.
func bind(c *fiber.Ctx, dest interface{}) error {
	if err := c.App().Config().JSONDecoder(c.Body(), dest); err != nil {
		if errors.Is(err, types.ErrInvalidInput) {
			return err
		}
		return types.Invalid("malformed JSON body: %v", err)
	}
	if err := validate.Struct(dest); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return types.Invalid("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
		}
	}
	return types.Invalid("%s", strings.Join(msgs, "; "))
}

// respondError maps service errors onto HTTP responses.
func respondError(c *fiber.Ctx, err error, errorType string) error {
	var custom *types.CustomError
	switch {
	case errors.As(err, &custom):
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	case errors.Is(err, types.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, types.ErrInvalidInput), errors.Is(err, types.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType)
	case errors.Is(err, types.ErrUnauthorized):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, errorType)
	}
	return utils.ErrorResponse(c, "internal server error", fiber.StatusInternalServerError, errorType)
}

// ErrorHandler renders errors returned from middleware and handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		errorType := "unknown"
		if fe.Code == fiber.StatusNotFound {
			errorType = "not_found"
		}
		return utils.ErrorResponse(c, fe.Message, fe.Code, errorType)
	}
	return respondError(c, err, "unknown")
}

// NotFound handles requests no route matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
