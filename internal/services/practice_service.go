// practice_service.go
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

package services

import (
	"context"
	"fmt"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/scoring"
	"github.com/localnerve/growthdb/internal/types"
	"gorm.io/gorm"
)

// PremeditatioInput is the body of POST /api/premeditatio.
type PremeditatioInput struct {
	Scenario           string           `json:"scenario" validate:"required"`
	PotentialObstacles types.StringList `json:"potential_obstacles"`
	PlannedResponses   types.StringList `json:"planned_responses"`
}

// PremeditatioUpdate records how a rehearsed scenario actually went.
type PremeditatioUpdate struct {
	ResilienceScore *int    `json:"resilience_score" validate:"omitempty,min=1,max=10"`
	ActualOutcome   *string `json:"actual_outcome"`
	LessonsLearned  *string `json:"lessons_learned"`
}

func (u PremeditatioUpdate) Apply(p *models.PremeditatioPractice) {
	if u.ResilienceScore != nil {
		p.ResilienceScore = u.ResilienceScore
	}
	if u.ActualOutcome != nil {
		p.ActualOutcome = u.ActualOutcome
	}
	if u.LessonsLearned != nil {
		p.LessonsLearned = u.LessonsLearned
	}
}

// ChainInput is the body of POST /api/habit-stacking.
type ChainInput struct {
	Name          string             `json:"name" validate:"required"`
	ExistingHabit string             `json:"existing_habit" validate:"required"`
	NewHabit      string             `json:"new_habit" validate:"required"`
	ChainItems    []models.ChainItem `json:"chain_items"`
}

// ChainCompletionInput is the body of POST /api/habit-stacking/complete.
type ChainCompletionInput struct {
	ChainID string  `json:"chain_id" validate:"required"`
	Success *bool   `json:"success" validate:"required"`
	Date    *string `json:"date"`
}

// ChainCompletion is the outcome of a chain attempt.
type ChainCompletion struct {
	Message       string `json:"message"`
	ChainStrength int    `json:"chain_strength"`
}

// JourneyInput is the body of POST /api/journey/milestones.
type JourneyInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Emotion     *string `json:"emotion"`
	Date        *string `json:"date"`
}

// RoutineInput is the body of POST /api/morning-algorithm.
type RoutineInput struct {
	RoutineName   string               `json:"routine_name" validate:"required"`
	Philosophy    string               `json:"philosophy" validate:"required"`
	Steps         []models.RoutineStep `json:"steps" validate:"dive"`
	TotalDuration int                  `json:"total_duration" validate:"min=0"`
}

// RoutineCompletionInput is the body of POST /api/morning-algorithm/complete.
type RoutineCompletionInput struct {
	RoutineID      string           `json:"routine_id" validate:"required"`
	CompletedSteps types.StringList `json:"completed_steps"`
	Date           *string          `json:"date"`
}

func CreatePremeditatio(ctx context.Context, db *gorm.DB, userID, today string, in PremeditatioInput) (*models.PremeditatioPractice, error) {
	practice := &models.PremeditatioPractice{
		Scenario:           in.Scenario,
		PotentialObstacles: models.JSONList[string](in.PotentialObstacles.Slice()),
		PlannedResponses:   models.JSONList[string](in.PlannedResponses.Slice()),
		Date:               today,
	}
	practice.UserID = userID

	if err := db.WithContext(ctx).Create(practice).Error; err != nil {
		return nil, fmt.Errorf("failed to create premeditatio practice: %w", err)
	}
	return practice, nil
}

func ListPremeditatio(ctx context.Context, db *gorm.DB, userID string) ([]models.PremeditatioPractice, error) {
	return listOwned[models.PremeditatioPractice](ctx, db, userID, "created_at desc", defaultListLimit)
}

func UpdatePremeditatio(ctx context.Context, db *gorm.DB, userID, id string, upd PremeditatioUpdate) (*models.PremeditatioPractice, error) {
	var practice models.PremeditatioPractice
	if err := firstOwned(ctx, db, userID, id, &practice, "premeditatio practice"); err != nil {
		return nil, err
	}

	upd.Apply(&practice)

	if err := db.WithContext(ctx).Save(&practice).Error; err != nil {
		return nil, fmt.Errorf("failed to update premeditatio practice: %w", err)
	}
	return &practice, nil
}

func CreateChain(ctx context.Context, db *gorm.DB, userID string, in ChainInput) (*models.HabitChain, error) {
	items := in.ChainItems
	if items == nil {
		items = []models.ChainItem{}
	}
	chain := &models.HabitChain{
		Name:          in.Name,
		ExistingHabit: in.ExistingHabit,
		NewHabit:      in.NewHabit,
		ChainItems:    models.JSONList[models.ChainItem](items),
	}
	chain.UserID = userID

	if err := db.WithContext(ctx).Create(chain).Error; err != nil {
		return nil, fmt.Errorf("failed to create habit chain: %w", err)
	}
	return chain, nil
}

func ListChains(ctx context.Context, db *gorm.DB, userID string) ([]models.HabitChain, error) {
	return listOwned[models.HabitChain](ctx, db, userID, "created_at", defaultListLimit)
}

// CompleteChain counts an attempt, rescores the chain and logs the attempt.
func CompleteChain(ctx context.Context, db *gorm.DB, userID, today string, in ChainCompletionInput) (ChainCompletion, error) {
	date, err := dateOrToday(in.Date, today)
	if err != nil {
		return ChainCompletion{}, err
	}

	var chain models.HabitChain
	if err := firstOwned(ctx, db, userID, in.ChainID, &chain, "habit chain"); err != nil {
		return ChainCompletion{}, err
	}

	success := *in.Success
	chain.TotalAttempts++
	if success {
		chain.SuccessCount++
	}
	chain.ChainStrength = scoring.ChainStrength(chain.SuccessCount, chain.TotalAttempts)

	if err := db.WithContext(ctx).Save(&chain).Error; err != nil {
		return ChainCompletion{}, fmt.Errorf("failed to update habit chain: %w", err)
	}

	attempt := &models.HabitChainCompletion{ChainID: chain.ID, Success: success, Date: date}
	attempt.UserID = userID
	if err := db.WithContext(ctx).Create(attempt).Error; err != nil {
		return ChainCompletion{}, fmt.Errorf("failed to log habit chain attempt: %w", err)
	}

	return ChainCompletion{Message: "Chain completion recorded", ChainStrength: chain.ChainStrength}, nil
}

func CreateJourneyMilestone(ctx context.Context, db *gorm.DB, userID, today string, in JourneyInput) (*models.JourneyMilestone, error) {
	date, err := dateOrToday(in.Date, today)
	if err != nil {
		return nil, err
	}

	milestone := &models.JourneyMilestone{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Emotion:     in.Emotion,
		Date:        date,
	}
	milestone.UserID = userID

	if err := db.WithContext(ctx).Create(milestone).Error; err != nil {
		return nil, fmt.Errorf("failed to create journey milestone: %w", err)
	}
	return milestone, nil
}

// ListJourneyMilestones returns the timeline, newest date first.
func ListJourneyMilestones(ctx context.Context, db *gorm.DB, userID string) ([]models.JourneyMilestone, error) {
	return listOwned[models.JourneyMilestone](ctx, db, userID, "date desc, created_at desc", journeyListLimit)
}

func DeleteJourneyMilestone(ctx context.Context, db *gorm.DB, userID, id string) error {
	return deleteOwned(ctx, db, &models.JourneyMilestone{}, userID, id, "journey milestone")
}

// CreateRoutine stores a morning routine. A zero total duration is filled in
// from the step durations.
func CreateRoutine(ctx context.Context, db *gorm.DB, userID string, in RoutineInput) (*models.MorningRoutine, error) {
	steps := in.Steps
	if steps == nil {
		steps = []models.RoutineStep{}
	}
	total := in.TotalDuration
	if total == 0 {
		for _, s := range steps {
			total += s.DurationMinutes
		}
	}

	routine := &models.MorningRoutine{
		RoutineName:   in.RoutineName,
		Philosophy:    in.Philosophy,
		Steps:         models.JSONList[models.RoutineStep](steps),
		TotalDuration: total,
	}
	routine.UserID = userID

	if err := db.WithContext(ctx).Create(routine).Error; err != nil {
		return nil, fmt.Errorf("failed to create morning routine: %w", err)
	}
	return routine, nil
}

func ListRoutines(ctx context.Context, db *gorm.DB, userID string) ([]models.MorningRoutine, error) {
	return listOwned[models.MorningRoutine](ctx, db, userID, "created_at", defaultListLimit)
}

// CompleteRoutine advances the routine streak against today and logs the
// completed steps. last_completed takes the date sent by the client, which
// defaults to today.
func CompleteRoutine(ctx context.Context, db *gorm.DB, userID, today string, in RoutineCompletionInput) (HabitCompletion, error) {
	date, err := dateOrToday(in.Date, today)
	if err != nil {
		return HabitCompletion{}, err
	}

	var routine models.MorningRoutine
	if err := firstOwned(ctx, db, userID, in.RoutineID, &routine, "morning routine"); err != nil {
		return HabitCompletion{}, err
	}

	streak, best, err := scoring.AdvanceStreak(routine.LastCompleted, today, routine.Streak, routine.BestStreak)
	if err != nil {
		return HabitCompletion{}, fmt.Errorf("routine %s has a bad last completion: %w", routine.ID, err)
	}
	routine.Streak = streak
	routine.BestStreak = best
	routine.LastCompleted = &date

	if err := db.WithContext(ctx).Save(&routine).Error; err != nil {
		return HabitCompletion{}, fmt.Errorf("failed to update morning routine: %w", err)
	}

	log := &models.MorningRoutineCompletion{
		RoutineID:      routine.ID,
		CompletedSteps: models.JSONList[string](in.CompletedSteps.Slice()),
		Date:           date,
	}
	log.UserID = userID
	if err := db.WithContext(ctx).Create(log).Error; err != nil {
		return HabitCompletion{}, fmt.Errorf("failed to log morning routine: %w", err)
	}

	return HabitCompletion{Message: "Routine completed", Streak: streak, BestStreak: best}, nil
}
