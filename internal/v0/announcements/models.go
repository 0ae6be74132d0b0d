package announcements

// Priority levels for an announcement
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Announcement is one portal announcement
type Announcement struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	IsRead   bool   `json:"isRead"`
}

// CreateRequest is the request body for posting an announcement
type CreateRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Category string `json:"category"`
}

// UpdateRequest is the request body for patching an announcement.
// Nil fields are left untouched.
type UpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Priority *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Category *string `json:"category"`
}

// Stats summarizes the collection for the portal header
type Stats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
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
