// desire.go
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
)

// SaveDesire handles POST /api/burning-desire
// @Summary Set the burning desire
// @Description Creates the user's burning desire or replaces the existing one.
// @Tags BurningDesire
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DesireInput true "Desire"
// @Success 200 {object} models.BurningDesire
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /burning-desire [post]
func (h *TrackerHandler) SaveDesire(c *fiber.Ctx) error {
	var in services.DesireInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "desire.save")
	}

	desire, err := services.SaveDesire(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "desire.save")
	}
	return c.JSON(desire)
}

// GetDesire handles GET /api/burning-desire
// @Summary Get the burning desire
// @Tags BurningDesire
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BurningDesire
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /burning-desire [get]
func (h *TrackerHandler) GetDesire(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "desire.get")
	}

	desire, err := services.GetDesire(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "desire.get")
	}
	return c.JSON(desire)
}

// UpdateDesire handles PUT /api/burning-desire
// @Summary Update the burning desire
// @Tags BurningDesire
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DesireUpdate true "Fields to change"
// @Success 200 {object} models.BurningDesire
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /burning-desire [put]
func (h *TrackerHandler) UpdateDesire(c *fiber.Ctx) error {
	var upd services.DesireUpdate
	userID, err := userAndBody(c, &upd)
	if err != nil {
		return respondError(c, err, "desire.update")
	}

	desire, err := services.UpdateDesire(c.UserContext(), h.DB, userID, upd)
	if err != nil {
		return respondError(c, err, "desire.update")
	}
	return c.JSON(desire)
}

// AddVisualization handles POST /api/burning-desire/visualizations
// @Summary Log a visualization session
// @Tags BurningDesire
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.VisualizationInput true "Session"
// @Success 200 {object} models.DesireVisualization
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /burning-desire/visualizations [post]
func (h *TrackerHandler) AddVisualization(c *fiber.Ctx) error {
	var in services.VisualizationInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "desire.visualization")
	}

	viz, err := services.AddVisualization(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "desire.visualization")
	}
	return c.JSON(viz)
}

// ListVisualizations handles GET /api/burning-desire/visualizations
// @Summary List recent visualization sessions
// @Tags BurningDesire
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DesireVisualization
// @Router /burning-desire/visualizations [get]
func (h *TrackerHandler) ListVisualizations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "desire.visualization")
	}

	list, err := services.ListVisualizations(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "desire.visualization")
	}
	return c.JSON(list)
}

// SaveLegacy handles POST /api/legacy
// @Summary Set the legacy statement
// @Tags Legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.LegacyInput true "Legacy statement"
// @Success 200 {object} models.LegacyStatement
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /legacy [post]
func (h *TrackerHandler) SaveLegacy(c *fiber.Ctx) error {
	var in services.LegacyInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "legacy.save")
	}

	legacy, err := services.SaveLegacy(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "legacy.save")
	}
	return c.JSON(legacy)
}

// GetLegacy handles GET /api/legacy
// @Summary Get the legacy statement
// @Tags Legacy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LegacyStatement
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /legacy [get]
func (h *TrackerHandler) GetLegacy(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "legacy.get")
	}

	legacy, err := services.GetLegacy(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "legacy.get")
	}
	return c.JSON(legacy)
}
