// wisdom.go
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

// NotificationResponse acknowledges a notification preference change
type NotificationResponse struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

// ListQuotes handles GET /api/wisdom/quotes
// @Summary Browse the quote library
// @Tags Wisdom
// @Produce json
// @Security BearerAuth
// @Param philosophy query string false "Philosophy key"
// @Param category query string false "Quote category"
// @Success 200 {array} models.Quote
// @Router /wisdom/quotes [get]
func (h *TrackerHandler) ListQuotes(c *fiber.Ctx) error {
	return c.JSON(h.Quotes.Quotes(c.Query("philosophy"), c.Query("category")))
}

// AddFavorite handles POST /api/wisdom/favorites
// @Summary Favorite a quote
// @Tags Wisdom
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FavoriteInput true "Quote reference"
// @Success 200 {object} services.Created
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /wisdom/favorites [post]
func (h *TrackerHandler) AddFavorite(c *fiber.Ctx) error {
	var in services.FavoriteInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "wisdom.favorite")
	}

	created, err := services.AddFavorite(c.UserContext(), h.DB, h.Quotes, userID, in)
	if err != nil {
		return respondError(c, err, "wisdom.favorite")
	}
	return c.JSON(created)
}

// ListFavorites handles GET /api/wisdom/favorites
// @Summary List favorite quotes
// @Tags Wisdom
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.WisdomFavorite
// @Router /wisdom/favorites [get]
func (h *TrackerHandler) ListFavorites(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "wisdom.favorites")
	}

	favs, err := services.ListFavorites(c.UserContext(), h.DB, h.Quotes, userID)
	if err != nil {
		return respondError(c, err, "wisdom.favorites")
	}
	return c.JSON(favs)
}

// RemoveFavorite handles DELETE /api/wisdom/favorites/:quote_id
// @Summary Unfavorite a quote
// @Tags Wisdom
// @Produce json
// @Security BearerAuth
// @Param quote_id path string true "Quote ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /wisdom/favorites/{quote_id} [delete]
func (h *TrackerHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondError(c, err, "wisdom.unfavorite")
	}

	if err := services.RemoveFavorite(c.UserContext(), h.DB, userID, c.Params("quote_id")); err != nil {
		return respondError(c, err, "wisdom.unfavorite")
	}
	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}

// SetNotifications handles POST /api/wisdom/notifications
// @Summary Toggle daily wisdom notifications
// @Tags Wisdom
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.NotificationInput true "Preference"
// @Success 200 {object} NotificationResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /wisdom/notifications [post]
func (h *TrackerHandler) SetNotifications(c *fiber.Ctx) error {
	var in services.NotificationInput
	userID, err := userAndBody(c, &in)
	if err != nil {
		return respondError(c, err, "wisdom.notifications")
	}

	if err := services.SetWisdomNotifications(c.UserContext(), h.DB, userID, *in.Enabled); err != nil {
		return respondError(c, err, "wisdom.notifications")
	}
	return c.JSON(NotificationResponse{
		Message: "Notification preferences updated",
		Enabled: *in.Enabled,
	})
}
