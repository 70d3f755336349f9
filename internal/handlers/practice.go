// practice.go
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

// CreatePremeditatio handles POST /api/premeditatio
// @Summary Rehearse a difficult scenario
// @Tags Premeditatio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PremeditatioInput true "Scenario"
// @Success 200 {object} models.PremeditatioPractice
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /premeditatio [post]
func (h *TrackerHandler) CreatePremeditatio(c *fiber.Ctx) error {
	var in services.PremeditatioInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "premeditatio.create")
	}

	practice, err := services.CreatePremeditatio(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "premeditatio.create")
	}
	return c.JSON(practice)
}

// ListPremeditatio handles GET /api/premeditatio
// @Summary List rehearsed scenarios
// @Tags Premeditatio
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PremeditatioPractice
// @Router /premeditatio [get]
func (h *TrackerHandler) ListPremeditatio(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "premeditatio.list")
	}

	list, err := services.ListPremeditatio(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "premeditatio.list")
	}
	return c.JSON(list)
}

// UpdatePremeditatio handles PUT /api/premeditatio/:id
// @Summary Record the outcome of a scenario
// @Tags Premeditatio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Practice ID"
// @Param body body services.PremeditatioUpdate true "Outcome"
// @Success 200 {object} models.PremeditatioPractice
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /premeditatio/{id} [put]
func (h *TrackerHandler) UpdatePremeditatio(c *fiber.Ctx) error {
	var upd services.PremeditatioUpdate
	userID, err := userAndBody(c, &upd)
	if err != nil {
		return respondError(c, err, "premeditatio.update")
	}

	practice, err := services.UpdatePremeditatio(c.UserContext(), h.DB, userID, c.Params("id"), upd)
	if err != nil {
		return respondError(c, err, "premeditatio.update")
	}
	return c.JSON(practice)
}

// CreateChain handles POST /api/habit-stacking
// @Summary Create a habit chain
// @Tags HabitStacking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChainInput true "Chain"
// @Success 200 {object} models.HabitChain
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /habit-stacking [post]
func (h *TrackerHandler) CreateChain(c *fiber.Ctx) error {
	var in services.ChainInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "chains.create")
	}

	chain, err := services.CreateChain(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "chains.create")
	}
	return c.JSON(chain)
}

// ListChains handles GET /api/habit-stacking
// @Summary List habit chains
// @Tags HabitStacking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HabitChain
// @Router /habit-stacking [get]
func (h *TrackerHandler) ListChains(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "chains.list")
	}

	chains, err := services.ListChains(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "chains.list")
	}
	return c.JSON(chains)
}

// CompleteChain handles POST /api/habit-stacking/complete
// @Summary Record a chain attempt
// @Description Records success or failure and recomputes the chain strength.
// @Tags HabitStacking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChainCompletionInput true "Attempt"
// @Success 200 {object} services.ChainCompletion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /habit-stacking/complete [post]
func (h *TrackerHandler) CompleteChain(c *fiber.Ctx) error {
	var in services.ChainCompletionInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "chains.complete")
	}

	result, err := services.CompleteChain(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "chains.complete")
	}
	return c.JSON(result)
}

// CreateJourneyMilestone handles POST /api/journey/milestones
// @Summary Add a journey milestone
// @Tags Journey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.JourneyInput true "Milestone"
// @Success 200 {object} models.JourneyMilestone
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /journey/milestones [post]
func (h *TrackerHandler) CreateJourneyMilestone(c *fiber.Ctx) error {
	var in services.JourneyInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "journey.create")
	}

	milestone, err := services.CreateJourneyMilestone(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "journey.create")
	}
	return c.JSON(milestone)
}

// ListJourneyMilestones handles GET /api/journey/milestones
// @Summary List journey milestones, newest first
// @Tags Journey
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JourneyMilestone
// @Router /journey/milestones [get]
func (h *TrackerHandler) ListJourneyMilestones(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "journey.list")
	}

	list, err := services.ListJourneyMilestones(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "journey.list")
	}
	return c.JSON(list)
}

// DeleteJourneyMilestone handles DELETE /api/journey/milestones/:id
// @Summary Delete a journey milestone
// @Tags Journey
// @Produce json
// @Security BearerAuth
// @Param id path string true "Milestone ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /journey/milestones/{id} [delete]
func (h *TrackerHandler) DeleteJourneyMilestone(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "journey.delete")
	}

	if err := services.DeleteJourneyMilestone(c.UserContext(), h.DB, userID, c.Params("id")); err != nil {
		return respondError(c, err, "journey.delete")
	}
	return utils.MessageResponse(c, "Milestone deleted")
}

// CreateRoutine handles POST /api/morning-algorithm
// @Summary Design a morning routine
// @Tags MorningAlgorithm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RoutineInput true "Routine"
// @Success 200 {object} models.MorningRoutine
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /morning-algorithm [post]
func (h *TrackerHandler) CreateRoutine(c *fiber.Ctx) error {
	var in services.RoutineInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "routines.create")
	}

	routine, err := services.CreateRoutine(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "routines.create")
	}
	return c.JSON(routine)
}

// ListRoutines handles GET /api/morning-algorithm
// @Summary List morning routines
// @Tags MorningAlgorithm
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MorningRoutine
// @Router /morning-algorithm [get]
func (h *TrackerHandler) ListRoutines(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "routines.list")
	}

	routines, err := services.ListRoutines(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "routines.list")
	}
	return c.JSON(routines)
}

// CompleteRoutine handles POST /api/morning-algorithm/complete
// @Summary Complete a morning routine
// @Description Records the run and advances the routine streak.
// @Tags MorningAlgorithm
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RoutineCompletionInput true "Run"
// @Success 200 {object} services.HabitCompletion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /morning-algorithm/complete [post]
func (h *TrackerHandler) CompleteRoutine(c *fiber.Ctx) error {
	var in services.RoutineCompletionInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "routines.complete")
	}

	result, err := services.CompleteRoutine(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "routines.complete")
	}
	return c.JSON(result)
}
