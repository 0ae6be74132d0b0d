package schedule

import "strings"

// FilterAll disables a criterion
const FilterAll = "all"

// Criteria narrows the schedule. Zero values and FilterAll match everything.
type Criteria struct {
	Search string
	Type   string
}

// Filter returns the courses matching every set criterion.
// Search is a case-insensitive substring match over name, code and instructor.
func Filter(courses []Course, crit Criteria) []Course {
	search := strings.ToLower(crit.Search)
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if search != "" {
			hay := strings.ToLower(c.Name + " " + c.Code + " " + c.Instructor)
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if crit.Type != "" && crit.Type != FilterAll && c.Type != crit.Type {
			continue
		}
		out = append(out, c)
	}
	return out
}

//   This project is the monolithic backend API for the Smart Campus portal. Announcements, events, dining menus, course schedules, transport, file sharing, notifications and the campus chatbot webhook for our apps.
//   API Copyright (C) 2025 Smart Campus
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
