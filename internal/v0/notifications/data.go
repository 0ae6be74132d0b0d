package notifications

import (
	"time"

	"campus/internal/storage"
)

// StorageKey is the slot the inbox is persisted under
const StorageKey = "notifications"

// Seed returns the inbox served before anyone touches it
func Seed() []Notification {
	return []Notification{
		{
			ID: "1706000700000", Type: TypeCourseChange, Priority: PriorityHigh,
			Title: "Derslik Değişikliği", Message: "Matematik I dersi bugün A-201 yerine B-104'te yapılacaktır.",
			Sender: "Dr. Ahmet Yılmaz",
			Date: "2024-01-23", Time: "08:15",
			CourseCode: "MAT101", CourseName: "Matematik I", Location: "A-201", NewLocation: "B-104",
		},
		{
			ID: "1706000600000", Type: TypeGrade, Priority: PriorityMedium,
			Title: "Not Açıklandı", Message: "Fizik II vize sonuçları açıklandı.",
			Sender: "Prof. Dr. Ayşe Demir",
			Date: "2024-01-22", Time: "16:40",
			CourseCode: "FIZ202", CourseName: "Fizik II", Grade: "AA",
		},
		{
			ID: "1706000500000", Type: TypeExam, Priority: PriorityUrgent,
			Title: "Sınav Hatırlatması", Message: "Programlamaya Giriş final sınavı yarın saat 10:00'da Lab-3'te.",
			Sender: "Dr. Mehmet Kaya",
			Date: "2024-01-22", Time: "09:00",
			CourseCode: "BIL101", CourseName: "Programlamaya Giriş", ExamDate: "2024-01-23", Location: "Lab-3",
		},
		{
			ID: "1706000400000", Type: TypeEvent, Priority: PriorityLow,
			Title: "Etkinlik Yaklaşıyor", Message: "Kariyer Günleri bu cuma başlıyor, kayıtlar devam ediyor.",
			Sender: "Öğrenci Toplulukları",
			Date: "2024-01-21", Time: "14:20",
			EventDate: "2024-01-26",
		},
		{
			ID: "1706000300000", Type: TypeSystem, Priority: PriorityLow, IsRead: true,
			Title: "Planlı Bakım", Message: "Öğrenci bilgi sistemi pazar gecesi 02:00-04:00 arası bakımda olacak.",
			Sender: "Bilgi İşlem Merkezi",
			Date: "2024-01-20", Time: "11:00",
		},
		{
			ID: "1706000200000", Type: TypeEmergency, Priority: PriorityUrgent,
			Title: "Hava Koşulları", Message: "Yoğun kar nedeniyle kampüs servisleri gecikmeli çalışmaktadır.",
			Sender: "Öğrenci İşleri Daire Başkanlığı",
			Date: "2024-01-19", Time: "07:30",
			RelatedInfo: "Ring seferleri 15 dk gecikmeli",
		},
		{
			ID: "1706000100000", Type: TypeGeneral, Priority: PriorityMedium, IsRead: true,
			Title: "Kütüphane Duyurusu", Message: "Sınav haftası boyunca kütüphane 7/24 açık olacaktır.",
			Sender: "Öğrenci İşleri",
			Date: "2024-01-18", Time: "10:10",
		},
	}
}

// Store keeps the inbox on a durable slot
type Store struct {
	coll *storage.Collection[Notification]
}

func NewStore(slot storage.Slot) *Store {
	return &Store{coll: storage.NewCollection(slot, StorageKey, Seed)}
}

// All returns every notification, newest first
func (s *Store) All() []Notification {
	return s.coll.Items()
}

// Create prepends a new notification with a timestamp id
func (s *Store) Create(req CreateRequest) Notification {
	now := time.Now()
	n := Notification{
		ID:          storage.TimestampID(),
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Sender:      req.Sender,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04"),
		Priority:    req.Priority,
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Location:    req.Location,
		NewLocation: req.NewLocation,
		ExamDate:    req.ExamDate,
		EventDate:   req.EventDate,
		Grade:       req.Grade,
		RelatedInfo: req.RelatedInfo,
	}
	if n.Type == "" {
		n.Type = TypeGeneral
	}
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	if n.Sender == "" {
		n.Sender = "Sistem"
	}
	s.coll.Prepend(n)
	return n
}

func (s *Store) MarkRead(id string) bool {
	return s.coll.Update(
		func(n Notification) bool { return n.ID == id },
		func(n *Notification) { n.IsRead = true },
	)
}

func (s *Store) MarkUnread(id string) bool {
	return s.coll.Update(
		func(n Notification) bool { return n.ID == id },
		func(n *Notification) { n.IsRead = false },
	)
}

// MarkAllRead clears the unread badge in one write
func (s *Store) MarkAllRead() {
	s.coll.Mutate(func(items []Notification) []Notification {
		for i := range items {
			items[i].IsRead = true
		}
		return items
	})
}

func (s *Store) Delete(id string) bool {
	return s.coll.Delete(func(n Notification) bool { return n.ID == id })
}

// DeleteSelected removes a batch of ids in one write
func (s *Store) DeleteSelected(ids []string) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	s.coll.Mutate(func(items []Notification) []Notification {
		out := items[:0]
		for _, n := range items {
			if !wanted[n.ID] {
				out = append(out, n)
			}
		}
		return out
	})
}

// Stats counts the inbox for the badge counters.
// Urgent covers both urgent and high priority entries.
func (s *Store) Stats() Stats {
	today := time.Now().Format("2006-01-02")
	var stats Stats
	for _, n := range s.coll.Items() {
		stats.Total++
		if !n.IsRead {
			stats.Unread++
		}
		if n.Priority == PriorityUrgent || n.Priority == PriorityHigh {
			stats.Urgent++
		}
		if n.Date == today {
			stats.Today++
		}
	}
	return stats
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
