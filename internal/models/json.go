// json.go
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

import (
	"database/sql/driver"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// jsonColumnType picks a JSON-capable column type for each database driver.
// MSSQL has no json type, so it falls back to NVARCHAR(MAX).
func jsonColumnType(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// JSONList stores a slice as a JSON array column. A nil list is written as [].
type JSONList[T any] []T

// Value implements driver.Valuer.
func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		l = JSONList[T]{}
	}
	return datatypes.JSONSlice[T](l).Value()
}

// Scan implements sql.Scanner.
func (l *JSONList[T]) Scan(value interface{}) error {
	if value == nil {
		*l = JSONList[T]{}
		return nil
	}
	var s datatypes.JSONSlice[T]
	if err := s.Scan(value); err != nil {
		return fmt.Errorf("scan json list: %w", err)
	}
	*l = JSONList[T](s)
	return nil
}

// GormDataType implements schema.GormDataTypeInterface.
func (JSONList[T]) GormDataType() string {
	return "json"
}

// GormDBDataType implements migrator.GormDataTypeInterface per dialect.
func (JSONList[T]) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonColumnType(db)
}

// JSONObject stores a free-form JSON object column.
type JSONObject map[string]interface{}

// Value implements driver.Valuer.
func (o JSONObject) Value() (driver.Value, error) {
	return datatypes.JSONMap(o).Value()
}

// Scan implements sql.Scanner.
func (o *JSONObject) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	var m datatypes.JSONMap
	if err := m.Scan(value); err != nil {
		return fmt.Errorf("scan json object: %w", err)
	}
	*o = JSONObject(m)
	return nil
}

// GormDataType implements schema.GormDataTypeInterface.
func (JSONObject) GormDataType() string {
	return "json"
}

// GormDBDataType implements migrator.GormDataTypeInterface per dialect.
func (JSONObject) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonColumnType(db)
}
