// desire.go
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

// BurningDesire is the single definite aim a user holds.
type BurningDesire struct {
	Singleton
	DesireText string `json:"desire_text"`
	WhyText    string `json:"why_text"`
	VisionText string `json:"vision_text"`
	Intensity  int    `gorm:"not null;default:10" json:"intensity"`
}

// DesireVisualization tracks a daily visualization of the burning desire.
type DesireVisualization struct {
	Record
	DesireID        string  `gorm:"size:36;not null;index" json:"desire_id"`
	IntensityRating int     `json:"intensity_rating"`
	Emotion         string  `gorm:"size:64" json:"emotion"`
	Notes           *string `json:"notes"`
	Date            string  `gorm:"size:10;not null" json:"date"`
}

// LegacyStatement is the single legacy a user intends to leave.
type LegacyStatement struct {
	Singleton
	LegacyText       string           `json:"legacy_text"`
	Values           JSONList[string] `json:"values"`
	ImpactAreas      JSONList[string] `json:"impact_areas"`
	FutureSelfLetter *string          `json:"future_self_letter"`
	MissionStatement *string          `json:"mission_statement"`
}
