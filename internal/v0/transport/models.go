package transport

// Route types
const (
	TypeRing      = "ring"
	TypeCity      = "city"
	TypeIntercity = "intercity"
	TypeMetro     = "metro"
	TypeTaxi      = "taxi"
)

// TransportRoute is one bus, metro or taxi line serving the campus
type TransportRoute struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Route           []string `json:"route"`
	Schedule        []string `json:"schedule"`
	Price           string   `json:"price"`
	Duration        string   `json:"duration"`
	Frequency       string   `json:"frequency"`
	Capacity        int      `json:"capacity"`
	Occupancy       int      `json:"occupancy"`
	IsActive        bool     `json:"isActive"`
	Color           string   `json:"color"`
	CurrentLocation string   `json:"currentLocation,omitempty"`
}

// BusStop is a physical stop with the lines passing through it
type BusStop struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Routes     []string `json:"routes"`
	HasWifi    bool     `json:"hasWifi"`
	HasShelter bool     `json:"hasShelter"`
}

// CreateRequest is the request body for posting a route
type CreateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type" binding:"omitempty,oneof=ring city intercity metro taxi"`
	Route     []string `json:"route" binding:"required,min=2"`
	Schedule  []string `json:"schedule"`
	Price     string   `json:"price"`
	Duration  string   `json:"duration"`
	Frequency string   `json:"frequency"`
	Capacity  int      `json:"capacity" binding:"omitempty,min=1"`
	Color     string   `json:"color"`
}

// UpdateRequest is the request body for patching a route.
// Nil fields are left untouched.
type UpdateRequest struct {
	Name            *string   `json:"name"`
	Type            *string   `json:"type" binding:"omitempty,oneof=ring city intercity metro taxi"`
	Route           *[]string `json:"route"`
	Schedule        *[]string `json:"schedule"`
	Price           *string   `json:"price"`
	Duration        *string   `json:"duration"`
	Frequency       *string   `json:"frequency"`
	Capacity        *int      `json:"capacity"`
	Occupancy       *int      `json:"occupancy"`
	Color           *string   `json:"color"`
	CurrentLocation *string   `json:"currentLocation"`
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
