package events

// Event is one campus event
type Event struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Organizer   string   `json:"organizer"`
	Capacity    int      `json:"capacity"`
	Registered  int      `json:"registered"`
	IsFavorite  bool     `json:"isFavorite"`
	Tags        []string `json:"tags"`
}

// CreateRequest is the request body for posting an event
type CreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
}

// UpdateRequest is the request body for patching an event.
// Nil fields are left untouched.
type UpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Location    *string   `json:"location"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Capacity    *int      `json:"capacity"`
	Tags        *[]string `json:"tags"`
}

// Stats summarizes the collection for the portal header
type Stats struct {
	Total     int `json:"total"`
	Favorites int `json:"favorites"`
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
