package notifications

// Notification types
const (
	TypeCourseChange = "course_change"
	TypeGrade        = "grade"
	TypeExam         = "exam"
	TypeEvent        = "event"
	TypeSystem       = "system"
	TypeEmergency    = "emergency"
	TypeGeneral      = "general"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification is one inbox entry. The optional fields carry
// type-specific details and stay off the wire when empty.
type Notification struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Sender      string `json:"sender"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsRead      bool   `json:"isRead"`
	Priority    string `json:"priority"`
	CourseCode  string `json:"courseCode,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	Location    string `json:"location,omitempty"`
	NewLocation string `json:"newLocation,omitempty"`
	ExamDate    string `json:"examDate,omitempty"`
	EventDate   string `json:"eventDate,omitempty"`
	Grade       string `json:"grade,omitempty"`
	RelatedInfo string `json:"relatedInfo,omitempty"`
}

// CreateRequest is the request body for pushing a notification
type CreateRequest struct {
	Type        string `json:"type" binding:"omitempty,oneof=course_change grade exam event system emergency general"`
	Title       string `json:"title" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Sender      string `json:"sender"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	CourseCode  string `json:"courseCode"`
	CourseName  string `json:"courseName"`
	Location    string `json:"location"`
	NewLocation string `json:"newLocation"`
	ExamDate    string `json:"examDate"`
	EventDate   string `json:"eventDate"`
	Grade       string `json:"grade"`
	RelatedInfo string `json:"relatedInfo"`
}

// DeleteSelectedRequest carries the ids of a bulk delete
type DeleteSelectedRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// Stats summarises the inbox for the badge counters
type Stats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Urgent int `json:"urgent"`
	Today  int `json:"today"`
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
