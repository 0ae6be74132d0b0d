package announcements

import (
	"time"

	"campus/internal/storage"
)

// StorageKey is the durable slot holding the collection
const StorageKey = "announcements"

// Store owns the announcement collection. New announcements are
// prepended so the freshest one renders first.
type Store struct {
	coll *storage.Collection[Announcement]
}

// NewStore loads the persisted collection, seeding it on first use
func NewStore(slot storage.Slot) *Store {
	return &Store{coll: storage.NewCollection(slot, StorageKey, Seed)}
}

// Seed is the default dataset used when nothing is persisted yet
func Seed() []Announcement {
	return []Announcement{
		{
			ID:       1,
			Title:    "Yeni Dönem Kayıtları Başladı",
			Content:  "Güz dönemi kayıtları 15 Ocak tarihinde başlamıştır. Tüm öğrencilerin ders kayıtlarını zamanında yapması gerekmektedir.",
			Priority: PriorityHigh,
			Category: "Akademik",
			Author:   "Öğrenci İşleri",
			Date:     "2024-01-15",
			IsRead:   false,
		},
		{
			ID:       2,
			Title:    "Kampüs WiFi Güncellemesi",
			Content:  "Kampüs genelinde WiFi altyapısı güncellenmektedir. Geçici kesintiler yaşanabilir.",
			Priority: PriorityMedium,
			Category: "Teknoloji",
			Author:   "BİT Müdürlüğü",
			Date:     "2024-01-14",
			IsRead:   true,
		},
		{
			ID:       3,
			Title:    "Kütüphane Çalışma Saatleri",
			Content:  "Kütüphane hafta sonu çalışma saatleri güncellendi. Yeni saatler 09:00-22:00 olarak belirlenmiştir.",
			Priority: PriorityLow,
			Category: "Genel",
			Author:   "Kütüphane",
			Date:     "2024-01-13",
			IsRead:   true,
		},
	}
}

// All returns the current collection, newest first
func (s *Store) All() []Announcement {
	return s.coll.Items()
}

// Create assigns the next id, stamps the announcement and prepends it
func (s *Store) Create(req CreateRequest) Announcement {
	a := Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		Category: req.Category,
		Author:   "Yönetim",
		Date:     time.Now().Format("2006-01-02"),
		IsRead:   false,
	}
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	if a.Category == "" {
		a.Category = "Genel"
	}
	s.coll.Mutate(func(items []Announcement) []Announcement {
		a.ID = storage.NextID(items, func(x Announcement) int { return x.ID })
		return append([]Announcement{a}, items...)
	})
	return a
}

// Update shallow-merges the patch into the announcement with id.
// Missing ids are a silent no-op.
func (s *Store) Update(id int, patch UpdateRequest) bool {
	return s.coll.Update(
		func(a Announcement) bool { return a.ID == id },
		func(a *Announcement) {
			if patch.Title != nil {
				a.Title = *patch.Title
			}
			if patch.Content != nil {
				a.Content = *patch.Content
			}
			if patch.Priority != nil {
				a.Priority = *patch.Priority
			}
			if patch.Category != nil {
				a.Category = *patch.Category
			}
		},
	)
}

// Delete removes the announcement with id
func (s *Store) Delete(id int) bool {
	return s.coll.Delete(func(a Announcement) bool { return a.ID == id })
}

// MarkRead flags the announcement with id as read
func (s *Store) MarkRead(id int) bool {
	return s.coll.Update(
		func(a Announcement) bool { return a.ID == id },
		func(a *Announcement) { a.IsRead = true },
	)
}

// Stats counts the collection and its unread portion
func (s *Store) Stats() Stats {
	items := s.coll.Items()
	stats := Stats{Total: len(items)}
	for _, a := range items {
		if !a.IsRead {
			stats.Unread++
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
