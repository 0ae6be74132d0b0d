package files

// File categories
const (
	CategoryLectureNotes = "lecture_notes"
	CategorySlides       = "slides"
	CategoryAssignment   = "assignment"
	CategoryExam         = "exam"
	CategoryLab          = "lab"
	CategoryProject      = "project"
)

// CourseFile is one shared document attached to a course
type CourseFile struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	FileName      string `json:"fileName"`
	FileSize      string `json:"fileSize"`
	FileType      string `json:"fileType"`
	Category      string `json:"category"`
	CourseCode    string `json:"courseCode"`
	CourseName    string `json:"courseName"`
	UploadedBy    string `json:"uploadedBy"`
	UploadDate    string `json:"uploadDate"`
	DownloadCount int    `json:"downloadCount"`
	IsVisible     bool   `json:"isVisible"`
	ShareCode     string `json:"shareCode"`
}

// CreateRequest is the request body for sharing a file
type CreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileName    string `json:"fileName" binding:"required"`
	FileSize    string `json:"fileSize"`
	FileType    string `json:"fileType"`
	Category    string `json:"category" binding:"omitempty,oneof=lecture_notes slides assignment exam lab project"`
	CourseCode  string `json:"courseCode" binding:"required"`
	CourseName  string `json:"courseName" binding:"required"`
	UploadedBy  string `json:"uploadedBy"`
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
