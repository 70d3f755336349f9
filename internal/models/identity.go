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

package models

import "time"

const (
	ObstacleStatusActive      = "active"
	ObstacleStatusTransformed = "transformed"
	ObstacleStatusArchived    = "archived"
)

// IdentityStatement contrasts an old self-image with the one being built.
type IdentityStatement struct {
	Record
	OldIdentity   string    `json:"old_identity"`
	NewIdentity   string    `json:"new_identity"`
	EvidenceCount int       `gorm:"not null;default:0" json:"evidence_count"`
	StrengthScore int       `gorm:"not null;default:0" json:"strength_score"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IdentityEvidence is one vote cast for a new identity.
type IdentityEvidence struct {
	Record
	IdentityID   string `gorm:"size:36;not null;index" json:"identity_id"`
	EvidenceText string `json:"evidence_text"`
	Date         string `gorm:"size:10;not null" json:"date"`
}

// Obstacle is reframed through perception, action and will.
type Obstacle struct {
	Record
	ObstacleText  string     `json:"obstacle_text"`
	Perception    *string    `json:"perception"`
	Action        *string    `json:"action"`
	Will          *string    `json:"will"`
	Status        string     `gorm:"size:16;not null;default:active" json:"status"`
	TransformedAt *time.Time `json:"transformed_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName overrides the table name for IdentityEvidence
func (IdentityEvidence) TableName() string {
	return "identity_evidence"
}
