package events

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel that bypasses a categorical filter
const FilterAll = "all"

// Criteria is the conjunction of predicates for the list view
type Criteria struct {
	Search   string
	Category string
}

// Filter returns the events matching every criterion, sorted
// ascending by date. The search term matches case-insensitively
// against title, description or location. The sort is stable and
// computed on a copy; the collection order is never touched.
// Dates are ISO (2006-01-02), so the lexical order is chronological.
func Filter(items []Event, crit Criteria) []Event {
	search := strings.ToLower(crit.Search)
	out := make([]Event, 0, len(items))
	for _, e := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) &&
			!strings.Contains(strings.ToLower(e.Location), search) {
			continue
		}
		if crit.Category != "" && crit.Category != FilterAll && e.Category != crit.Category {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
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
