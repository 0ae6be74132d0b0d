package events

import (
	"campus/internal/storage"
)

// StorageKey is the durable slot holding the collection
const StorageKey = "events"

// Store owns the event collection. New events are appended, keeping
// the original creation order.
type Store struct {
	coll *storage.Collection[Event]
}

// NewStore loads the persisted collection, seeding it on first use
func NewStore(slot storage.Slot) *Store {
	return &Store{coll: storage.NewCollection(slot, StorageKey, Seed)}
}

// Seed is the default dataset used when nothing is persisted yet
func Seed() []Event {
	return []Event{
		{
			ID:          1,
			Title:       "Kariyer Günleri 2024",
			Description: "Sektörün önde gelen firmalarıyla tanışma, staj ve iş imkanları hakkında bilgi alma fırsatı.",
			Category:    "Kariyer",
			Location:    "Konferans Salonu",
			Date:        "2024-01-20",
			Time:        "09:00",
			Organizer:   "Kariyer Merkezi",
			Capacity:    500,
			Registered:  234,
			IsFavorite:  false,
			Tags:        []string{"İş", "Kariyer", "Networking"},
		},
		{
			ID:          2,
			Title:       "Bilim Fuarı",
			Description: "Öğrencilerin bilim projelerini sergileyeceği, interaktif deneyimler sunacağı fuar etkinliği.",
			Category:    "Akademik",
			Location:    "Ana Kampüs",
			Date:        "2024-01-25",
			Time:        "10:00",
			Organizer:   "Fen Fakültesi",
			Capacity:    1000,
			Registered:  567,
			IsFavorite:  true,
			Tags:        []string{"Bilim", "Proje", "Sergi"},
		},
		{
			ID:          3,
			Title:       "Mezuniyet Töreni",
			Description: "2023-2024 akademik yılı mezuniyet töreni. Mezunlarımızı kutluyoruz!",
			Category:    "Tören",
			Location:    "Spor Kompleksi",
			Date:        "2024-02-01",
			Time:        "14:00",
			Organizer:   "Rektörlük",
			Capacity:    2000,
			Registered:  1850,
			IsFavorite:  false,
			Tags:        []string{"Mezuniyet", "Kutlama", "Tören"},
		},
		{
			ID:          4,
			Title:       "Müzik Konseri",
			Description: "Üniversite müzik topluluğunun düzenlediği yılsonu konseri.",
			Category:    "Kültür",
			Location:    "Amfi Tiyatro",
			Date:        "2024-01-28",
			Time:        "19:00",
			Organizer:   "Müzik Topluluğu",
			Capacity:    300,
			Registered:  189,
			IsFavorite:  true,
			Tags:        []string{"Müzik", "Konser", "Sanat"},
		},
	}
}

// All returns the current collection in creation order
func (s *Store) All() []Event {
	return s.coll.Items()
}

// Create assigns the next id and appends the event
func (s *Store) Create(req CreateRequest) Event {
	e := Event{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Organizer:   "Yönetim",
		Capacity:    req.Capacity,
		Registered:  0,
		IsFavorite:  false,
		Tags:        []string{},
	}
	if e.Category == "" {
		e.Category = "Akademik"
	}
	if e.Capacity == 0 {
		e.Capacity = 100
	}
	s.coll.Mutate(func(items []Event) []Event {
		e.ID = storage.NextID(items, func(x Event) int { return x.ID })
		return append(items, e)
	})
	return e
}

// Update shallow-merges the patch into the event with id
func (s *Store) Update(id int, patch UpdateRequest) bool {
	return s.coll.Update(
		func(e Event) bool { return e.ID == id },
		func(e *Event) {
			if patch.Title != nil {
				e.Title = *patch.Title
			}
			if patch.Description != nil {
				e.Description = *patch.Description
			}
			if patch.Category != nil {
				e.Category = *patch.Category
			}
			if patch.Location != nil {
				e.Location = *patch.Location
			}
			if patch.Date != nil {
				e.Date = *patch.Date
			}
			if patch.Time != nil {
				e.Time = *patch.Time
			}
			if patch.Capacity != nil {
				e.Capacity = *patch.Capacity
			}
			if patch.Tags != nil {
				e.Tags = *patch.Tags
			}
		},
	)
}

// Delete removes the event with id
func (s *Store) Delete(id int) bool {
	return s.coll.Delete(func(e Event) bool { return e.ID == id })
}

// ToggleFavorite flips the favorite flag of the event with id
func (s *Store) ToggleFavorite(id int) bool {
	return s.coll.Update(
		func(e Event) bool { return e.ID == id },
		func(e *Event) { e.IsFavorite = !e.IsFavorite },
	)
}

// Register adds one registration to the event with id. A full event
// leaves the count untouched.
func (s *Store) Register(id int) bool {
	return s.coll.Update(
		func(e Event) bool { return e.ID == id && e.Registered < e.Capacity },
		func(e *Event) { e.Registered++ },
	)
}

// Stats counts the collection and its favorites
func (s *Store) Stats() Stats {
	items := s.coll.Items()
	stats := Stats{Total: len(items)}
	for _, e := range items {
		if e.IsFavorite {
			stats.Favorites++
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
