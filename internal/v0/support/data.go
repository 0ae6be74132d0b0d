package support

import (
	"time"

	"campus/internal/storage"
)

// StorageKey is the slot the tickets are persisted under
const StorageKey = "supportTickets"

// Seed returns the tickets served before anyone reports a new problem
func Seed() []SupportTicket {
	return []SupportTicket{
		{
			ID: "1705926600000", Title: "Yurt koridorunda elektrik kesintisi",
			Description: "B blok 3. kat koridorundaki lambalar iki gündür yanmıyor.",
			Category:    CategoryElectrical, Priority: PriorityMedium, Location: "B Blok 3. Kat",
			Status: StatusReviewing, ReportDate: "2024-01-22", ReportedBy: "Öğrenci",
			Responses: []TicketResponse{
				{ID: "1705930200000", Author: "Teknik Servis", Message: "Arıza kaydınız alındı, ekip yönlendirildi.", Date: "2024-01-22"},
			},
		},
		{
			ID: "1705840200000", Title: "Kütüphane wifi çok yavaş",
			Description: "Kütüphane 2. katta eduroam bağlantısı sürekli kopuyor.",
			Category:    CategoryInternet, Priority: PriorityHigh, Location: "Merkez Kütüphane",
			Status: StatusPending, ReportDate: "2024-01-21", ReportedBy: "Öğrenci",
			Responses: []TicketResponse{},
		},
		{
			ID: "1705753800000", Title: "Yemekhane önünde çukur",
			Description: "Yemekhane girişindeki kaldırımda derin bir çukur var, yağmurda su doluyor.",
			Category:    CategoryRoadwork, Priority: PriorityMedium, Location: "Merkez Yemekhane",
			Status: StatusDone, ReportDate: "2024-01-20", ReportedBy: "Personel",
			Responses: []TicketResponse{
				{ID: "1705757400000", Author: "Yapı İşleri", Message: "Bölge güvenlik şeridine alındı.", Date: "2024-01-20"},
				{ID: "1705843800000", Author: "Yapı İşleri", Message: "Çukur kapatıldı.", Date: "2024-01-21"},
			},
		},
	}
}

// Store keeps the tickets on a durable slot
type Store struct {
	coll *storage.Collection[SupportTicket]
}

func NewStore(slot storage.Slot) *Store {
	return &Store{coll: storage.NewCollection(slot, StorageKey, Seed)}
}

// All returns every ticket, newest first
func (s *Store) All() []SupportTicket {
	return s.coll.Items()
}

// Create prepends a new ticket with a timestamp id, starting as pending
func (s *Store) Create(req CreateRequest) SupportTicket {
	ticket := SupportTicket{
		ID:          storage.TimestampID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Location:    req.Location,
		Status:      StatusPending,
		ReportDate:  time.Now().Format("2006-01-02"),
		ReportedBy:  req.ReportedBy,
		Responses:   []TicketResponse{},
	}
	if ticket.Category == "" {
		ticket.Category = CategoryGeneral
	}
	if ticket.Priority == "" {
		ticket.Priority = PriorityMedium
	}
	if ticket.ReportedBy == "" {
		ticket.ReportedBy = "Anonim"
	}
	s.coll.Prepend(ticket)
	return ticket
}

func (s *Store) Delete(id string) bool {
	return s.coll.Delete(func(t SupportTicket) bool { return t.ID == id })
}

// AddResponse appends a reply to a ticket. Missing ids are a no-op.
func (s *Store) AddResponse(id string, req ResponseRequest) bool {
	author := req.Author
	if author == "" {
		author = "Destek Ekibi"
	}
	return s.coll.Update(
		func(t SupportTicket) bool { return t.ID == id },
		func(t *SupportTicket) {
			t.Responses = append(t.Responses, TicketResponse{
				ID:      storage.TimestampID(),
				Author:  author,
				Message: req.Message,
				Date:    time.Now().Format("2006-01-02"),
			})
		},
	)
}

// SetStatus moves a ticket to a new status
func (s *Store) SetStatus(id, status string) bool {
	return s.coll.Update(
		func(t SupportTicket) bool { return t.ID == id },
		func(t *SupportTicket) { t.Status = status },
	)
}

// Stats counts the tickets per status
func (s *Store) Stats() Stats {
	var stats Stats
	for _, t := range s.coll.Items() {
		stats.Total++
		switch t.Status {
		case StatusPending:
			stats.Pending++
		case StatusReviewing:
			stats.Reviewing++
		case StatusResolving:
			stats.Resolving++
		case StatusDone:
			stats.Done++
		case StatusCancelled:
			stats.Cancelled++
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
