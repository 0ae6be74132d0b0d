package files

import "strings"

// FilterAll disables a criterion
const FilterAll = "all"

// Criteria narrows the file listing. Zero values and FilterAll match everything.
type Criteria struct {
	Search     string
	Category   string
	CourseCode string
}

// Filter returns the visible files matching every set criterion.
// Search is a case-insensitive substring match over title, course name and code.
func Filter(files []CourseFile, crit Criteria) []CourseFile {
	search := strings.ToLower(crit.Search)
	out := make([]CourseFile, 0, len(files))
	for _, f := range files {
		if !f.IsVisible {
			continue
		}
		if search != "" {
			hay := strings.ToLower(f.Title + " " + f.CourseName + " " + f.CourseCode)
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if crit.Category != "" && crit.Category != FilterAll && f.Category != crit.Category {
			continue
		}
		if crit.CourseCode != "" && crit.CourseCode != FilterAll && f.CourseCode != crit.CourseCode {
			continue
		}
		out = append(out, f)
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
