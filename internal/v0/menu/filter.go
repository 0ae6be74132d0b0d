package menu

import "strings"

// Dietary filter sentinels. "all" bypasses, the other two narrow to
// the matching boolean flag.
const (
	FilterAll        = "all"
	FilterVegetarian = "vegetarian"
	FilterAvailable  = "available"
)

// Criteria is the conjunction of predicates for one meal's item list
type Criteria struct {
	Search string
	Filter string
}

// Filter returns the dishes matching every criterion. The search
// term matches case-insensitively against name or description.
func Filter(items []MenuItem, crit Criteria) []MenuItem {
	search := strings.ToLower(crit.Search)
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		switch crit.Filter {
		case "", FilterAll:
		case FilterVegetarian:
			if !item.IsVegetarian {
				continue
			}
		case FilterAvailable:
			if !item.IsAvailable {
				continue
			}
		default:
			continue
		}
		out = append(out, item)
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
