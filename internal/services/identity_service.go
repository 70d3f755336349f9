// identity_service.go
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
	"time"

	"github.com/localnerve/growthdb/internal/models"
	"github.com/localnerve/growthdb/internal/scoring"
	"gorm.io/gorm"
)

// IdentityInput is the body of POST /api/identity/statements.
type IdentityInput struct {
	OldIdentity string `json:"old_identity" validate:"required"`
	NewIdentity string `json:"new_identity" validate:"required"`
}

// EvidenceInput is the body of POST /api/identity/evidence.
type EvidenceInput struct {
	IdentityID   string `json:"identity_id" validate:"required"`
	EvidenceText string `json:"evidence_text" validate:"required"`
}

// ObstacleInput is the body of POST /api/obstacles.
type ObstacleInput struct {
	ObstacleText string `json:"obstacle_text" validate:"required"`
}

// ObstacleUpdate is the body of PUT /api/obstacles/:id.
type ObstacleUpdate struct {
	Perception *string `json:"perception"`
	Action     *string `json:"action"`
	Will       *string `json:"will"`
	Status     *string `json:"status" validate:"omitempty,oneof=active transformed archived"`
}

// Apply merges the update into o. Once perception, action and will are all
// filled in, counting stored values for fields the update omits, an obstacle
// that is not yet transformed becomes transformed at now.
func (u ObstacleUpdate) Apply(o *models.Obstacle, now time.Time) {
	transforms := scoring.Transforms(o.Status,
		scoring.Coalesce(u.Perception, o.Perception),
		scoring.Coalesce(u.Action, o.Action),
		scoring.Coalesce(u.Will, o.Will),
	)

	if u.Perception != nil {
		o.Perception = u.Perception
	}
	if u.Action != nil {
		o.Action = u.Action
	}
	if u.Will != nil {
		o.Will = u.Will
	}
	setString(&o.Status, u.Status)

	if transforms {
		o.Status = models.ObstacleStatusTransformed
		stamp := now.UTC()
		o.TransformedAt = &stamp
	}
}

func CreateIdentity(ctx context.Context, db *gorm.DB, userID string, in IdentityInput) (*models.IdentityStatement, error) {
	identity := &models.IdentityStatement{OldIdentity: in.OldIdentity, NewIdentity: in.NewIdentity}
	identity.UserID = userID

	if err := db.WithContext(ctx).Create(identity).Error; err != nil {
		return nil, fmt.Errorf("failed to create identity statement: %w", err)
	}
	return identity, nil
}

func ListIdentities(ctx context.Context, db *gorm.DB, userID string) ([]models.IdentityStatement, error) {
	return listOwned[models.IdentityStatement](ctx, db, userID, "created_at", defaultListLimit)
}

// AddEvidence casts a vote for an identity, then recounts all of its
// evidence and rescores it.
func AddEvidence(ctx context.Context, db *gorm.DB, userID, today string, in EvidenceInput) (*models.IdentityEvidence, error) {
	var identity models.IdentityStatement
	if err := firstOwned(ctx, db, userID, in.IdentityID, &identity, "identity statement"); err != nil {
		return nil, err
	}

	evidence := &models.IdentityEvidence{
		IdentityID:   identity.ID,
		EvidenceText: in.EvidenceText,
		Date:         today,
	}
	evidence.UserID = userID
	if err := db.WithContext(ctx).Create(evidence).Error; err != nil {
		return nil, fmt.Errorf("failed to add identity evidence: %w", err)
	}

	var count int64
	err := db.WithContext(ctx).Model(&models.IdentityEvidence{}).
		Where("user_id = ? AND identity_id = ?", userID, identity.ID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count identity evidence: %w", err)
	}

	identity.EvidenceCount = int(count)
	identity.StrengthScore = scoring.StrengthScore(int(count))
	if err := db.WithContext(ctx).Save(&identity).Error; err != nil {
		return nil, fmt.Errorf("failed to rescore identity statement: %w", err)
	}
	return evidence, nil
}

// ListEvidence returns the evidence recorded for one identity, newest first.
func ListEvidence(ctx context.Context, db *gorm.DB, userID, identityID string) ([]models.IdentityEvidence, error) {
	rows := make([]models.IdentityEvidence, 0)
	err := db.WithContext(ctx).
		Where("user_id = ? AND identity_id = ?", userID, identityID).
		Order("created_at desc").
		Limit(defaultListLimit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list identity evidence: %w", err)
	}
	return rows, nil
}

func CreateObstacle(ctx context.Context, db *gorm.DB, userID string, in ObstacleInput) (*models.Obstacle, error) {
	obstacle := &models.Obstacle{ObstacleText: in.ObstacleText, Status: models.ObstacleStatusActive}
	obstacle.UserID = userID

	if err := db.WithContext(ctx).Create(obstacle).Error; err != nil {
		return nil, fmt.Errorf("failed to create obstacle: %w", err)
	}
	return obstacle, nil
}

func ListObstacles(ctx context.Context, db *gorm.DB, userID string) ([]models.Obstacle, error) {
	return listOwned[models.Obstacle](ctx, db, userID, "created_at desc", defaultListLimit)
}

// UpdateObstacle applies a reframing update to one of the user's obstacles.
func UpdateObstacle(ctx context.Context, db *gorm.DB, userID, id string, now time.Time, upd ObstacleUpdate) (*models.Obstacle, error) {
	var obstacle models.Obstacle
	if err := firstOwned(ctx, db, userID, id, &obstacle, "obstacle"); err != nil {
		return nil, err
	}

	upd.Apply(&obstacle, now)

	if err := db.WithContext(ctx).Save(&obstacle).Error; err != nil {
		return nil, fmt.Errorf("failed to update obstacle: %w", err)
	}
	return &obstacle, nil
}

func DeleteObstacle(ctx context.Context, db *gorm.DB, userID, id string) error {
	return deleteOwned(ctx, db, &models.Obstacle{}, userID, id, "obstacle")
}
