package announcements

import "strings"

// FilterAll is the sentinel that bypasses a categorical filter
const FilterAll = "all"

// Criteria is the conjunction of predicates for the list view
type Criteria struct {
	Search   string
	Priority string
	Category string
}

// Filter returns the announcements matching every criterion. The
// search term matches case-insensitively against title or content;
// empty or "all" criteria are no-ops. Never mutates items.
func Filter(items []Announcement, crit Criteria) []Announcement {
	search := strings.ToLower(crit.Search)
	out := make([]Announcement, 0, len(items))
	for _, a := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Content), search) {
			continue
		}
		if crit.Priority != "" && crit.Priority != FilterAll && a.Priority != crit.Priority {
			continue
		}
		if crit.Category != "" && crit.Category != FilterAll && a.Category != crit.Category {
			continue
		}
		out = append(out, a)
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
