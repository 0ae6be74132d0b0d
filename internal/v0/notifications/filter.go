package notifications

import "strings"

// Status filter sentinels
const (
	FilterAll    = "all"
	StatusRead   = "read"
	StatusUnread = "unread"
)

// Criteria narrows the inbox. Zero values and FilterAll match everything.
type Criteria struct {
	Search string
	Type   string
	Status string
}

// Filter returns the notifications matching every set criterion.
// Search is a case-insensitive substring match over title, message and course code.
func Filter(items []Notification, crit Criteria) []Notification {
	search := strings.ToLower(crit.Search)
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		if search != "" {
			hay := strings.ToLower(n.Title + " " + n.Message + " " + n.CourseCode)
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if crit.Type != "" && crit.Type != FilterAll && n.Type != crit.Type {
			continue
		}
		switch crit.Status {
		case StatusRead:
			if !n.IsRead {
				continue
			}
		case StatusUnread:
			if n.IsRead {
				continue
			}
		}
		out = append(out, n)
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
