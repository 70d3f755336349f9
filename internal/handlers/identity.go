// identity.go
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
	"github.com/localnerve/growthdb/internal/utils"
)

// CreateIdentity handles POST /api/identity/statements
// @Summary Declare an identity shift
// @Tags Identity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.IdentityInput true "Old and new identity"
// @Success 200 {object} models.IdentityStatement
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /identity/statements [post]
func (h *TrackerHandler) CreateIdentity(c *fiber.Ctx) error {
	var in services.IdentityInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "identity.create")
	}

	statement, err := services.CreateIdentity(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "identity.create")
	}
	return c.JSON(statement)
}

// ListIdentities handles GET /api/identity/statements
// @Summary List identity statements
// @Tags Identity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.IdentityStatement
// @Router /identity/statements [get]
func (h *TrackerHandler) ListIdentities(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "identity.list")
	}

	statements, err := services.ListIdentities(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "identity.list")
	}
	return c.JSON(statements)
}

// AddEvidence handles POST /api/identity/evidence
// @Summary Log evidence for an identity
// @Description Each piece of evidence adds two points of strength, up to 100.
// @Tags Identity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EvidenceInput true "Evidence"
// @Success 200 {object} models.IdentityEvidence
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /identity/evidence [post]
func (h *TrackerHandler) AddEvidence(c *fiber.Ctx) error {
	var in services.EvidenceInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "identity.evidence")
	}

	evidence, err := services.AddEvidence(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "identity.evidence")
	}
	return c.JSON(evidence)
}

// ListEvidence handles GET /api/identity/evidence/:identity_id
// @Summary List evidence for an identity
// @Tags Identity
// @Produce json
// @Security BearerAuth
// @Param identity_id path string true "Identity statement ID"
// @Success 200 {array} models.IdentityEvidence
// @Router /identity/evidence/{identity_id} [get]
func (h *TrackerHandler) ListEvidence(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "identity.evidence")
	}

	evidence, err := services.ListEvidence(c.UserContext(), h.DB, userID, c.Params("identity_id"))
	if err != nil {
		return respondError(c, err, "identity.evidence")
	}
	return c.JSON(evidence)
}

// CreateObstacle handles POST /api/obstacles
// @Summary Record an obstacle
// @Tags Obstacles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ObstacleInput true "Obstacle"
// @Success 200 {object} models.Obstacle
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /obstacles [post]
func (h *TrackerHandler) CreateObstacle(c *fiber.Ctx) error {
	var in services.ObstacleInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "obstacles.create")
	}

	obstacle, err := services.CreateObstacle(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "obstacles.create")
	}
	return c.JSON(obstacle)
}

// ListObstacles handles GET /api/obstacles
// @Summary List obstacles, newest first
// @Tags Obstacles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Obstacle
// @Router /obstacles [get]
func (h *TrackerHandler) ListObstacles(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "obstacles.list")
	}

	obstacles, err := services.ListObstacles(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "obstacles.list")
	}
	return c.JSON(obstacles)
}

// UpdateObstacle handles PUT /api/obstacles/:id
// @Summary Work an obstacle
// @Description Filling in perception, action and will transforms the obstacle.
// @Tags Obstacles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Obstacle ID"
// @Param body body services.ObstacleUpdate true "Fields to change"
// @Success 200 {object} models.Obstacle
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /obstacles/{id} [put]
func (h *TrackerHandler) UpdateObstacle(c *fiber.Ctx) error {
	var upd services.ObstacleUpdate
	userID, err := userAndBody(c, &upd)
	if err != nil {
		return respondError(c, err, "obstacles.update")
	}

	obstacle, err := services.UpdateObstacle(c.UserContext(), h.DB, userID, c.Params("id"), h.now(), upd)
	if err != nil {
		return respondError(c, err, "obstacles.update")
	}
	return c.JSON(obstacle)
}

// DeleteObstacle handles DELETE /api/obstacles/:id
// @Summary Delete an obstacle
// @Tags Obstacles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Obstacle ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /obstacles/{id} [delete]
func (h *TrackerHandler) DeleteObstacle(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "obstacles.delete")
	}

	if err := services.DeleteObstacle(c.UserContext(), h.DB, userID, c.Params("id")); err != nil {
		return respondError(c, err, "obstacles.delete")
	}
	return utils.MessageResponse(c, "Obstacle deleted")
}
