// tracker.go
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
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/growthdb/internal/middleware"
	"github.com/localnerve/growthdb/internal/services"
	"github.com/localnerve/growthdb/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TrackerHandler serves the per-user tracking resources.
// Every route requires a bearer token.
type TrackerHandler struct {
	DB     *gorm.DB
	Log    *zap.Logger
	Tokens *services.TokenIssuer
	Quotes *services.QuoteLibrary

	// Now is the clock used for "today". Defaults to time.Now.
	Now func() time.Time
}

func (h *TrackerHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

func (h *TrackerHandler) today() string {
	return types.Today(h.now())
}

// Routes mounts the authenticated tracking routes on r.
func (h *TrackerHandler) Routes(r fiber.Router) {
	auth := middleware.AuthUser(h.Tokens)

	r.Post("/goals", auth, h.CreateGoal)
	r.Get("/goals", auth, h.ListGoals)
	r.Put("/goals/:id", auth, h.UpdateGoal)
	r.Delete("/goals/:id", auth, h.DeleteGoal)

	r.Post("/habits", auth, h.CreateHabit)
	r.Get("/habits", auth, h.ListHabits)
	r.Put("/habits/:id", auth, h.UpdateHabit)
	r.Delete("/habits/:id", auth, h.DeleteHabit)
	r.Post("/habits/:id/complete", auth, h.CompleteHabit)

	r.Post("/vision-board", auth, h.CreateVisionItem)
	r.Get("/vision-board", auth, h.ListVisionItems)
	r.Delete("/vision-board/:id", auth, h.DeleteVisionItem)

	r.Post("/journal", auth, h.CreateJournalEntry)
	r.Get("/journal", auth, h.ListJournalEntries)

	r.Post("/exercises", auth, h.CreateExercise)
	r.Get("/exercises", auth, h.ListExercises)

	r.Get("/analytics/overview", auth, h.AnalyticsOverview)

	r.Post("/rituals/complete", auth, h.CompleteRitual)
	r.Get("/rituals/completed", auth, h.ListRituals)

	r.Get("/wisdom/quotes", auth, h.ListQuotes)
	r.Post("/wisdom/favorites", auth, h.AddFavorite)
	r.Get("/wisdom/favorites", auth, h.ListFavorites)
	r.Delete("/wisdom/favorites/:quote_id", auth, h.RemoveFavorite)
	r.Post("/wisdom/notifications", auth, h.SetNotifications)

	r.Post("/identity/statements", auth, h.CreateIdentity)
	r.Get("/identity/statements", auth, h.ListIdentities)
	r.Post("/identity/evidence", auth, h.AddEvidence)
	r.Get("/identity/evidence/:identity_id", auth, h.ListEvidence)

	r.Post("/obstacles", auth, h.CreateObstacle)
	r.Get("/obstacles", auth, h.ListObstacles)
	r.Put("/obstacles/:id", auth, h.UpdateObstacle)
	r.Delete("/obstacles/:id", auth, h.DeleteObstacle)

	r.Post("/burning-desire", auth, h.SaveDesire)
	r.Get("/burning-desire", auth, h.GetDesire)
	r.Put("/burning-desire", auth, h.UpdateDesire)
	r.Post("/burning-desire/visualizations", auth, h.AddVisualization)
	r.Get("/burning-desire/visualizations", auth, h.ListVisualizations)

	r.Post("/premeditatio", auth, h.CreatePremeditatio)
	r.Get("/premeditatio", auth, h.ListPremeditatio)
	r.Put("/premeditatio/:id", auth, h.UpdatePremeditatio)

	r.Post("/habit-stacking", auth, h.CreateChain)
	r.Get("/habit-stacking", auth, h.ListChains)
	r.Post("/habit-stacking/complete", auth, h.CompleteChain)

	r.Post("/journey/milestones", auth, h.CreateJourneyMilestone)
	r.Get("/journey/milestones", auth, h.ListJourneyMilestones)
	r.Delete("/journey/milestones/:id", auth, h.DeleteJourneyMilestone)

	r.Post("/legacy", auth, h.SaveLegacy)
	r.Get("/legacy", auth, h.GetLegacy)

	r.Post("/morning-algorithm", auth, h.CreateRoutine)
	r.Get("/morning-algorithm", auth, h.ListRoutines)
	r.Post("/morning-algorithm/complete", auth, h.CompleteRoutine)
}

// userAndBody resolves the caller and binds the request body.
func userAndBody(c *fiber.Ctx, dest interface{}) (string, error) {
	userID, err := getUserID(c)
	if err != nil {
		return "", err
	}
	if err := bind(c, dest); err != nil {
		return "", err
	}
	return userID, nil
}
