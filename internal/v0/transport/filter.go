package transport

import "strings"

// FilterAll disables a criterion
const FilterAll = "all"

// Criteria narrows the route list. Zero values and FilterAll match everything.
type Criteria struct {
	Search string
	Type   string
}

// Filter returns the routes matching every set criterion.
// Search is a case-insensitive substring match over the name and the stop list.
func Filter(routes []TransportRoute, crit Criteria) []TransportRoute {
	search := strings.ToLower(crit.Search)
	out := make([]TransportRoute, 0, len(routes))
	for _, r := range routes {
		if search != "" {
			hay := strings.ToLower(r.Name + " " + strings.Join(r.Route, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if crit.Type != "" && crit.Type != FilterAll && r.Type != crit.Type {
			continue
		}
		out = append(out, r)
	}
	return out
}

// OccupancyPercentage reports how full a route is, 0 for unknown capacity
func OccupancyPercentage(r TransportRoute) int {
	if r.Capacity <= 0 {
		return 0
	}
	return r.Occupancy * 100 / r.Capacity
}

// NextDeparture picks the first departure after now ("HH:MM"),
// wrapping to the first one of the next day when the schedule is over
func NextDeparture(schedule []string, now string) (string, bool) {
	if len(schedule) == 0 {
		return "", false
	}
	for _, t := range schedule {
		if t > now {
			return t, true
		}
	}
	return schedule[0], true
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
