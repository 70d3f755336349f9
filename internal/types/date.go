// date.go
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
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for every stored date string.
const DateLayout = "2006-01-02"

// Today returns the UTC calendar date of now.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// ParseDate parses an ISO calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, s)
	}
	return t, nil
}

// DaysBetween returns the number of whole calendar days from earlier to later.
func DaysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

// AddDays shifts an ISO date string by n calendar days.
func AddDays(s string, n int) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}
