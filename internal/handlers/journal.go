// journal.go
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

// CreateVisionItem handles POST /api/vision-board
// @Summary Pin a vision board item
// @Tags VisionBoard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.VisionItemInput true "Item"
// @Success 200 {object} models.VisionBoardItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /vision-board [post]
func (h *TrackerHandler) CreateVisionItem(c *fiber.Ctx) error {
	var in services.VisionItemInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "vision.create")
	}

	item, err := services.CreateVisionItem(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "vision.create")
	}
	return c.JSON(item)
}

// ListVisionItems handles GET /api/vision-board
// @Summary List vision board items
// @Tags VisionBoard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.VisionBoardItem
// @Router /vision-board [get]
func (h *TrackerHandler) ListVisionItems(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "vision.list")
	}

	items, err := services.ListVisionItems(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "vision.list")
	}
	return c.JSON(items)
}

// DeleteVisionItem handles DELETE /api/vision-board/:id
// @Summary Remove a vision board item
// @Tags VisionBoard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /vision-board/{id} [delete]
func (h *TrackerHandler) DeleteVisionItem(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "vision.delete")
	}

	if err := services.DeleteVisionItem(c.UserContext(), h.DB, userID, c.Params("id")); err != nil {
		return respondError(c, err, "vision.delete")
	}
	return utils.MessageResponse(c, "Item deleted")
}

// CreateJournalEntry handles POST /api/journal
// @Summary Write a journal entry
// @Description Gratitude may be a list of strings or a single string.
// @Tags Journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.JournalInput true "Entry"
// @Success 200 {object} models.JournalEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /journal [post]
func (h *TrackerHandler) CreateJournalEntry(c *fiber.Ctx) error {
	var in services.JournalInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "journal.create")
	}

	entry, err := services.CreateJournalEntry(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "journal.create")
	}
	return c.JSON(entry)
}

// ListJournalEntries handles GET /api/journal
// @Summary List journal entries, newest first
// @Tags Journal
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JournalEntry
// @Router /journal [get]
func (h *TrackerHandler) ListJournalEntries(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "journal.list")
	}

	entries, err := services.ListJournalEntries(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "journal.list")
	}
	return c.JSON(entries)
}

// CreateExercise handles POST /api/exercises
// @Summary Log a completed exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ExerciseInput true "Exercise"
// @Success 200 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /exercises [post]
func (h *TrackerHandler) CreateExercise(c *fiber.Ctx) error {
	var in services.ExerciseInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "exercises.create")
	}

	exercise, err := services.CreateExercise(c.UserContext(), h.DB, userID, h.today(), in)
	if err != nil {
		return respondError(c, err, "exercises.create")
	}
	return c.JSON(exercise)
}

// ListExercises handles GET /api/exercises
// @Summary List exercises, newest first
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Exercise
// @Router /exercises [get]
func (h *TrackerHandler) ListExercises(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "exercises.list")
	}

	exercises, err := services.ListExercises(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "exercises.list")
	}
	return c.JSON(exercises)
}

// AnalyticsOverview handles GET /api/analytics/overview
// @Summary Progress overview
// @Description Goal, habit, journal and exercise statistics computed from the user's full history.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} scoring.Analytics
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /analytics/overview [get]
func (h *TrackerHandler) AnalyticsOverview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "analytics.overview")
	}

	overview, err := services.Analytics(c.UserContext(), h.DB, userID, h.today())
	if err != nil {
		return respondError(c, err, "analytics.overview")
	}
	return c.JSON(overview)
}

// CompleteRitual handles POST /api/rituals/complete
// @Summary Record a completed ritual
// @Tags Rituals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RitualInput true "Ritual"
// @Success 200 {object} services.Created
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /rituals/complete [post]
func (h *TrackerHandler) CompleteRitual(c *fiber.Ctx) error {
	var in services.RitualInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "rituals.complete")
	}

	created, err := services.CompleteRitual(c.UserContext(), h.DB, userID, in)
	if err != nil {
		return respondError(c, err, "rituals.complete")
	}
	return c.JSON(created)
}

// ListRituals handles GET /api/rituals/completed
// @Summary List the latest ritual completions
// @Tags Rituals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RitualCompletion
// @Router /rituals/completed [get]
func (h *TrackerHandler) ListRituals(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "rituals.list")
	}

	rituals, err := services.ListRituals(c.UserContext(), h.DB, userID)
	if err != nil {
		return respondError(c, err, "rituals.list")
	}
	return c.JSON(rituals)
}
