package support

// Ticket statuses
const (
	StatusPending   = "pending"
	StatusReviewing = "reviewing"
	StatusResolving = "resolving"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

// Ticket priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Ticket categories
const (
	CategoryElectrical = "electrical"
	CategoryInternet   = "internet"
	CategoryRoadwork   = "roadwork"
	CategoryComputer   = "computer"
	CategoryCafeteria  = "cafeteria"
	CategorySecurity   = "security"
	CategoryCleaning   = "cleaning"
	CategoryHVAC       = "hvac"
	CategoryPhone      = "phone"
	CategoryGeneral    = "general"
)

// TicketResponse is one staff reply on a ticket
type TicketResponse struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// SupportTicket is one reported campus problem
type SupportTicket struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Priority    string           `json:"priority"`
	Location    string           `json:"location"`
	Status      string           `json:"status"`
	ReportDate  string           `json:"reportDate"`
	ReportedBy  string           `json:"reportedBy"`
	Responses   []TicketResponse `json:"responses"`
}

// CreateRequest is the request body for opening a ticket
type CreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"omitempty,oneof=electrical internet roadwork computer cafeteria security cleaning hvac phone general"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Location    string `json:"location" binding:"required"`
	ReportedBy  string `json:"reportedBy"`
}

// ResponseRequest is the request body for replying to a ticket
type ResponseRequest struct {
	Author  string `json:"author"`
	Message string `json:"message" binding:"required"`
}

// StatusRequest is the request body for moving a ticket between statuses
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewing resolving done cancelled"`
}

// Stats counts the tickets per status
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewing int `json:"reviewing"`
	Resolving int `json:"resolving"`
	Done      int `json:"done"`
	Cancelled int `json:"cancelled"`
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
