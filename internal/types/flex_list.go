// flex_list.go
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

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList decodes either a JSON array of strings or a single string.
// Blank entries are dropped so "" and [] both decode to an empty list.
type StringList []string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (l *StringList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*l = StringList{}
		return nil
	}

	var raw []string
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: expected a list of strings", ErrInvalidInput)
		}
	} else {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("%w: expected a string or a list of strings", ErrInvalidInput)
		}
		raw = []string{single}
	}

	out := make(StringList, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// Slice converts the list back to a plain []string, never nil.
func (l StringList) Slice() []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
