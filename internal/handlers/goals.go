// goals.go
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

// CreateGoal handles POST /api/goals
// @Summary Create a goal
// @Description Create a goal. Progress is derived from the milestone list.
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.GoalInput true "Goal"
// @Success 200 {object} models.Goal
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /goals [post]
func (h *TrackerHandler) CreateGoal(c *fiber.Ctx) error {
	var in services.GoalInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "goals.create")
	}

	goal, err := services.CreateGoal(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "goals.create")
	}
	return c.JSON(goal)
}

// ListGoals handles GET /api/goals
// @Summary List goals
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Goal
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /goals [get]
func (h *TrackerHandler) ListGoals(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "goals.list")
	}

	goals, err := services.ListGoals(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "goals.list")
	}
	return c.JSON(goals)
}

// UpdateGoal handles PUT /api/goals/:id
// @Summary Update a goal
// @Description Partially update a goal. A milestone list recomputes progress and may complete the goal.
// @Tags Goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param body body services.GoalUpdate true "Fields to change"
// @Success 200 {object} models.Goal
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /goals/{id} [put]
func (h *TrackerHandler) UpdateGoal(c *fiber.Ctx) error {
	var upd services.GoalUpdate
	userID, err := userAndBody(c, &upd)
	if err != nil {
		return respondError(c, err, "goals.update")
	}

	goal, err := services.UpdateGoal(c.UserContext(), h.DB, userID, c.Params("id"), upd)
	if err != nil {
		return respondError(c, err, "goals.update")
	}
	return c.JSON(goal)
}

// DeleteGoal handles DELETE /api/goals/:id
// @Summary Delete a goal
// @Tags Goals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /goals/{id} [delete]
func (h *TrackerHandler) DeleteGoal(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "goals.delete")
	}

	if err := services.DeleteGoal(c.UserContext(), h.DB, userID, c.Params("id")); err != nil {
		return respondError(c, err, "goals.delete")
	}
	return utils.MessageResponse(c, "Goal deleted")
}

// CreateHabit handles POST /api/habits
// @Summary Create a habit
// @Tags Habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.HabitInput true "Habit"
// @Success 200 {object} models.Habit
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /habits [post]
func (h *TrackerHandler) CreateHabit(c *fiber.Ctx) error {
	var in services.HabitInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "habits.create")
	}

	habit, err := services.CreateHabit(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "habits.create")
	}
	return c.JSON(habit)
}

// ListHabits handles GET /api/habits
// @Summary List habits
// @Tags Habits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Habit
// @Router /habits [get]
func (h *TrackerHandler) ListHabits(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "habits.list")
	}

	habits, err := services.ListHabits(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "habits.list")
	}
	return c.JSON(habits)
}

// UpdateHabit handles PUT /api/habits/:id
// @Summary Update a habit
// @Description Change name, description or frequency. Streak counters are not editable.
// @Tags Habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Param body body services.HabitUpdate true "Fields to change"
// @Success 200 {object} models.Habit
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /habits/{id} [put]
func (h *TrackerHandler) UpdateHabit(c *fiber.Ctx) error {
	var upd services.HabitUpdate
	userID, err := userAndBody(c, &upd)
	if err != nil {
		return respondError(c, err, "habits.update")
	}

	habit, err := services.UpdateHabit(c.UserContext(), h.DB, userID, c.Params("id"), upd)
	if err != nil {
		return respondError(c, err, "habits.update")
	}
	return c.JSON(habit)
}

// DeleteHabit handles DELETE /api/habits/:id
// @Summary Delete a habit
// @Tags Habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /habits/{id} [delete]
func (h *TrackerHandler) DeleteHabit(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "habits.delete")
	}

	if err := services.DeleteHabit(c.UserContext(), h.DB, userID, c.Params("id")); err != nil {
		return respondError(c, err, "habits.delete")
	}
	return utils.MessageResponse(c, "Habit deleted")
}

// CompleteHabit handles POST /api/habits/:id/complete
// @Summary Complete a habit for today
// @Description Record today's completion and advance the streak. Repeating on the same day changes nothing.
// @Tags Habits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Habit ID"
// @Success 200 {object} services.HabitCompletion
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /habits/{id}/complete [post]
func (h *TrackerHandler) CompleteHabit(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "habits.complete")
	}

	result, err := services.CompleteHabit(c.UserContext(), h.DB, userID, c.Params("id"), h.today())
	if err != nil {
		return respondError(c, err, "habits.complete")
	}
	return c.JSON(result)
}
