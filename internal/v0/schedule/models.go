package schedule

// Course types
const (
	TypeMandatory       = "mandatory"
	TypeElective        = "elective"
	TypeExtracurricular = "extracurricular"
)

// Course is one weekly course slot. Day runs 0-6, Monday first.
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Instructor  string `json:"instructor"`
	Room        string `json:"room"`
	Day         int    `json:"day"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Credits     int    `json:"credits"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// CreateRequest is the request body for posting a course
type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
	Room        string `json:"room" binding:"required"`
	Day         int    `json:"day" binding:"min=0,max=6"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Credits     int    `json:"credits" binding:"omitempty,min=1"`
	Type        string `json:"type" binding:"omitempty,oneof=mandatory elective extracurricular"`
	Description string `json:"description"`
}

// UpdateRequest is the request body for patching a course.
// Nil fields are left untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Instructor  *string `json:"instructor"`
	Room        *string `json:"room"`
	Day         *int    `json:"day" binding:"omitempty,min=0,max=6"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Credits     *int    `json:"credits"`
	Type        *string `json:"type" binding:"omitempty,oneof=mandatory elective extracurricular"`
	Description *string `json:"description"`
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
