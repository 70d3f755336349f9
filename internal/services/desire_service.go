// desire_service.go
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
	"github.com/localnerve/growthdb/internal/types"
	"gorm.io/gorm"
)

const defaultIntensity = 10

// DesireInput is the body of POST /api/burning-desire.
type DesireInput struct {
	DesireText string `json:"desire_text" validate:"required"`
	WhyText    string `json:"why_text" validate:"required"`
	VisionText string `json:"vision_text" validate:"required"`
	Intensity  *int   `json:"intensity" validate:"omitempty,min=1,max=10"`
}

// DesireUpdate is the body of PUT /api/burning-desire.
type DesireUpdate struct {
	DesireText *string `json:"desire_text"`
	WhyText    *string `json:"why_text"`
	VisionText *string `json:"vision_text"`
	Intensity  *int    `json:"intensity" validate:"omitempty,min=1,max=10"`
}

// Apply merges the update into d.
func (u DesireUpdate) Apply(d *models.BurningDesire) {
	setString(&d.DesireText, u.DesireText)
	setString(&d.WhyText, u.WhyText)
	setString(&d.VisionText, u.VisionText)
	if u.Intensity != nil {
		d.Intensity = *u.Intensity
	}
}

// VisualizationInput is the body of POST /api/burning-desire/visualizations.
type VisualizationInput struct {
	DesireID        string  `json:"desire_id" validate:"required"`
	IntensityRating int     `json:"intensity_rating" validate:"required,min=1,max=10"`
	Emotion         string  `json:"emotion" validate:"required"`
	Notes           *string `json:"notes"`
}

// LegacyInput is the body of POST /api/legacy.
type LegacyInput struct {
	LegacyText       string           `json:"legacy_text" validate:"required"`
	Values           types.StringList `json:"values"`
	ImpactAreas      types.StringList `json:"impact_areas"`
	FutureSelfLetter *string          `json:"future_self_letter"`
	MissionStatement *string          `json:"mission_statement"`
}

// SaveDesire creates the user's burning desire, or replaces it in place when
// one already exists.
func SaveDesire(ctx context.Context, db *gorm.DB, userID string, in DesireInput) (*models.BurningDesire, error) {
	var desire models.BurningDesire
	err := firstForUser(ctx, db, userID, &desire, "burning desire")
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	desire.UserID = userID
	desire.DesireText = in.DesireText
	desire.WhyText = in.WhyText
	desire.VisionText = in.VisionText
	desire.Intensity = defaultIntensity
	if in.Intensity != nil {
		desire.Intensity = *in.Intensity
	}

	if err := db.WithContext(ctx).Save(&desire).Error; err != nil {
		return nil, fmt.Errorf("failed to save burning desire: %w", err)
	}
	return &desire, nil
}

func GetDesire(ctx context.Context, db *gorm.DB, userID string) (*models.BurningDesire, error) {
	var desire models.BurningDesire
	if err := firstForUser(ctx, db, userID, &desire, "burning desire"); err != nil {
		return nil, err
	}
	return &desire, nil
}

// UpdateDesire partially updates the user's existing burning desire.
func UpdateDesire(ctx context.Context, db *gorm.DB, userID string, upd DesireUpdate) (*models.BurningDesire, error) {
	desire, err := GetDesire(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	upd.Apply(desire)

	if err := db.WithContext(ctx).Save(desire).Error; err != nil {
		return nil, fmt.Errorf("failed to update burning desire: %w", err)
	}
	return desire, nil
}

// AddVisualization logs a visualization session against the user's desire.
func AddVisualization(ctx context.Context, db *gorm.DB, userID, today string, in VisualizationInput) (*models.DesireVisualization, error) {
	var desire models.BurningDesire
	if err := firstOwned(ctx, db, userID, in.DesireID, &desire, "burning desire"); err != nil {
		return nil, err
	}

	viz := &models.DesireVisualization{
		DesireID:        desire.ID,
		IntensityRating: in.IntensityRating,
		Emotion:         in.Emotion,
		Notes:           in.Notes,
		Date:            today,
	}
	viz.UserID = userID

	if err := db.WithContext(ctx).Create(viz).Error; err != nil {
		return nil, fmt.Errorf("failed to add visualization: %w", err)
	}
	return viz, nil
}

// ListVisualizations returns the most recent visualization sessions.
func ListVisualizations(ctx context.Context, db *gorm.DB, userID string) ([]models.DesireVisualization, error) {
	return listOwned[models.DesireVisualization](ctx, db, userID, "created_at desc", visualizationListLimit)
}

// SaveLegacy creates the user's legacy statement or replaces it in place.
func SaveLegacy(ctx context.Context, db *gorm.DB, userID string, in LegacyInput) (*models.LegacyStatement, error) {
	var legacy models.LegacyStatement
	err := firstForUser(ctx, db, userID, &legacy, "legacy statement")
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	legacy.UserID = userID
	legacy.LegacyText = in.LegacyText
	legacy.Values = models.JSONList[string](in.Values.Slice())
	legacy.ImpactAreas = models.JSONList[string](in.ImpactAreas.Slice())
	legacy.FutureSelfLetter = in.FutureSelfLetter
	legacy.MissionStatement = in.MissionStatement

	if err := db.WithContext(ctx).Save(&legacy).Error; err != nil {
		return nil, fmt.Errorf("failed to save legacy statement: %w", err)
	}
	return &legacy, nil
}

func GetLegacy(ctx context.Context, db *gorm.DB, userID string) (*models.LegacyStatement, error) {
	var legacy models.LegacyStatement
	if err := firstForUser(ctx, db, userID, &legacy, "legacy statement"); err != nil {
		return nil, err
	}
	return &legacy, nil
}
