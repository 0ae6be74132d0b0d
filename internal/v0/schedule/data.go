package schedule

import (
	"math/rand"
	"sort"

	"campus/internal/storage"
)

// StorageKey is the slot the weekly schedule is persisted under
const StorageKey = "courses"

// colorPalette holds the colors assigned to newly created courses
var colorPalette = []string{
	"#2196F3", "#FF4081", "#4CAF50", "#FF9800", "#9C27B0", "#00BCD4", "#F44336",
}

// Seed returns the schedule served before anyone edits it
func Seed() []Course {
	return []Course{
		{ID: 1, Name: "Matematik I", Code: "MAT101", Instructor: "Prof. Dr. Ahmet Yılmaz", Room: "A-201", Day: 0, StartTime: "09:00", EndTime: "11:00", Credits: 4, Type: TypeMandatory, Color: "#2196F3", Description: "Limit, türev ve integral konuları"},
		{ID: 2, Name: "Fizik II", Code: "FIZ202", Instructor: "Doç. Dr. Ayşe Kaya", Room: "B-105", Day: 1, StartTime: "13:00", EndTime: "15:00", Credits: 3, Type: TypeMandatory, Color: "#FF4081", Description: "Elektrik ve manyetizma"},
		{ID: 3, Name: "Programlamaya Giriş", Code: "BIL101", Instructor: "Dr. Öğr. Üyesi Mehmet Demir", Room: "Lab-3", Day: 2, StartTime: "10:00", EndTime: "12:00", Credits: 4, Type: TypeMandatory, Color: "#4CAF50", Description: "Algoritma ve temel programlama"},
		{ID: 4, Name: "İngilizce I", Code: "ING101", Instructor: "Okt. Zeynep Arslan", Room: "C-302", Day: 3, StartTime: "09:00", EndTime: "10:00", Credits: 2, Type: TypeElective, Color: "#FF9800"},
		{ID: 5, Name: "Fotoğrafçılık", Code: "SAN201", Instructor: "Öğr. Gör. Can Öztürk", Room: "Sanat Atölyesi", Day: 4, StartTime: "15:00", EndTime: "17:00", Credits: 2, Type: TypeExtracurricular, Color: "#9C27B0", Description: "Temel kompozisyon ve ışık"},
	}
}

// Store keeps the weekly schedule on a durable slot
type Store struct {
	coll *storage.Collection[Course]
}

func NewStore(slot storage.Slot) *Store {
	return &Store{coll: storage.NewCollection(slot, StorageKey, Seed)}
}

// All returns every course in insertion order
func (s *Store) All() []Course {
	return s.coll.Items()
}

// Create appends a new course with the next free numeric id
// and a color picked from the palette
func (s *Store) Create(req CreateRequest) Course {
	course := Course{
		Name:        req.Name,
		Code:        req.Code,
		Instructor:  req.Instructor,
		Room:        req.Room,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Credits:     req.Credits,
		Type:        req.Type,
		Color:       colorPalette[rand.Intn(len(colorPalette))],
		Description: req.Description,
	}
	if course.Credits == 0 {
		course.Credits = 3
	}
	if course.Type == "" {
		course.Type = TypeMandatory
	}
	s.coll.Mutate(func(items []Course) []Course {
		course.ID = storage.NextID(items, func(c Course) int { return c.ID })
		return append(items, course)
	})
	return course
}

// Update patches the course with the given id. Missing ids are a no-op.
func (s *Store) Update(id int, req UpdateRequest) bool {
	return s.coll.Update(
		func(c Course) bool { return c.ID == id },
		func(c *Course) {
			if req.Name != nil {
				c.Name = *req.Name
			}
			if req.Code != nil {
				c.Code = *req.Code
			}
			if req.Instructor != nil {
				c.Instructor = *req.Instructor
			}
			if req.Room != nil {
				c.Room = *req.Room
			}
			if req.Day != nil {
				c.Day = *req.Day
			}
			if req.StartTime != nil {
				c.StartTime = *req.StartTime
			}
			if req.EndTime != nil {
				c.EndTime = *req.EndTime
			}
			if req.Credits != nil {
				c.Credits = *req.Credits
			}
			if req.Type != nil {
				c.Type = *req.Type
			}
			if req.Description != nil {
				c.Description = *req.Description
			}
		},
	)
}

func (s *Store) Delete(id int) bool {
	return s.coll.Delete(func(c Course) bool { return c.ID == id })
}

// CoursesForDay returns the courses on one weekday ordered by start time
func (s *Store) CoursesForDay(day int) []Course {
	var out []Course
	for _, c := range s.coll.Items() {
		if c.Day == day {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// CourseAt finds the course covering a time slot on a weekday,
// e.g. CourseAt(0, "10:00") matches a 09:00-11:00 Monday course.
func (s *Store) CourseAt(day int, timeSlot string) (Course, bool) {
	for _, c := range s.coll.Items() {
		if c.Day == day && c.StartTime <= timeSlot && c.EndTime > timeSlot {
			return c, true
		}
	}
	return Course{}, false
}

// TotalCredits sums the credits of the whole schedule
func (s *Store) TotalCredits() int {
	total := 0
	for _, c := range s.coll.Items() {
		total += c.Credits
	}
	return total
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
