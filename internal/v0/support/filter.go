package support

import "strings"

// FilterAll disables a criterion
const FilterAll = "all"

// Criteria narrows the ticket list. Zero values and FilterAll match everything.
type Criteria struct {
	Search   string
	Category string
	Status   string
}

// Filter returns the tickets matching every set criterion.
// Search is a case-insensitive substring match over title, description and location.
func Filter(tickets []SupportTicket, crit Criteria) []SupportTicket {
	search := strings.ToLower(crit.Search)
	out := make([]SupportTicket, 0, len(tickets))
	for _, t := range tickets {
		if search != "" {
			hay := strings.ToLower(t.Title + " " + t.Description + " " + t.Location)
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if crit.Category != "" && crit.Category != FilterAll && t.Category != crit.Category {
			continue
		}
		if crit.Status != "" && crit.Status != FilterAll && t.Status != crit.Status {
			continue
		}
		out = append(out, t)
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
