package transport

import (
	"campus/internal/storage"
)

// Storage keys for the two transport collections
const (
	StorageKey      = "transportRoutes"
	StopsStorageKey = "transportBusStops"
)

// Seed returns the routes served before anyone edits them
func Seed() []TransportRoute {
	return []TransportRoute{
		{
			ID:   1,
			Name: "Kampüs Ring",
			Type: TypeRing,
			Route: []string{
				"Merkez Kampüs", "Mühendislik Fakültesi", "Kütüphane", "Yurtlar", "Merkez Kampüs",
			},
			Schedule: []string{
				"07:30", "08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00",
				"11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00",
				"15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
			},
			Price:           "Ücretsiz",
			Duration:        "20 dk",
			Frequency:       "30 dk",
			Capacity:        40,
			Occupancy:       25,
			IsActive:        true,
			Color:           "#2196F3",
			CurrentLocation: "Kütüphane",
		},
		{
			ID:   2,
			Name: "42 Şehir Merkezi",
			Type: TypeCity,
			Route: []string{
				"Kampüs Kapısı", "Devlet Hastanesi", "Belediye", "Şehir Merkezi",
			},
			Schedule:  []string{"07:00", "07:45", "08:30", "09:15", "10:00", "12:00", "14:00", "16:00", "17:30", "19:00"},
			Price:     "15 TL",
			Duration:  "35 dk",
			Frequency: "45 dk",
			Capacity:  60,
			Occupancy: 48,
			IsActive:  true,
			Color:     "#4CAF50",
		},
		{
			ID:   3,
			Name: "M2 Metro Hattı",
			Type: TypeMetro,
			Route: []string{
				"Üniversite", "Sanayi", "Otogar", "Gar",
			},
			Schedule:  []string{"06:00", "06:15", "06:30", "06:45", "07:00"},
			Price:     "12 TL",
			Duration:  "18 dk",
			Frequency: "15 dk",
			Capacity:  300,
			Occupancy: 180,
			IsActive:  true,
			Color:     "#FF9800",
		},
		{
			ID:   4,
			Name: "Kampüs Taksi",
			Type: TypeTaxi,
			Route: []string{
				"Kampüs Kapısı", "İstediğiniz Yer",
			},
			Schedule:  []string{},
			Price:     "Taksimetre",
			Duration:  "Değişken",
			Frequency: "Çağrı üzerine",
			Capacity:  4,
			Occupancy: 0,
			IsActive:  false,
			Color:     "#9C27B0",
		},
	}
}

// SeedStops returns the stops served before anyone edits them
func SeedStops() []BusStop {
	return []BusStop{
		{ID: 1, Name: "Merkez Kampüs", Location: "Rektörlük önü", Routes: []string{"Kampüs Ring", "42 Şehir Merkezi"}, HasWifi: true, HasShelter: true},
		{ID: 2, Name: "Kütüphane", Location: "Merkez kütüphane girişi", Routes: []string{"Kampüs Ring"}, HasWifi: true, HasShelter: false},
		{ID: 3, Name: "Yurtlar", Location: "Öğrenci yurtları kavşağı", Routes: []string{"Kampüs Ring"}, HasWifi: false, HasShelter: true},
	}
}

// Store keeps the routes and stops on durable slots
type Store struct {
	routes *storage.Collection[TransportRoute]
	stops  *storage.Collection[BusStop]
}

func NewStore(slot storage.Slot) *Store {
	return &Store{
		routes: storage.NewCollection(slot, StorageKey, Seed),
		stops:  storage.NewCollection(slot, StopsStorageKey, SeedStops),
	}
}

// All returns every route in insertion order
func (s *Store) All() []TransportRoute {
	return s.routes.Items()
}

// Stops returns every bus stop
func (s *Store) Stops() []BusStop {
	return s.stops.Items()
}

// Create appends a new route with the next free numeric id
func (s *Store) Create(req CreateRequest) TransportRoute {
	route := TransportRoute{
		Name:      req.Name,
		Type:      req.Type,
		Route:     req.Route,
		Schedule:  req.Schedule,
		Price:     req.Price,
		Duration:  req.Duration,
		Frequency: req.Frequency,
		Capacity:  req.Capacity,
		IsActive:  true,
		Color:     req.Color,
	}
	if route.Type == "" {
		route.Type = TypeCity
	}
	if route.Schedule == nil {
		route.Schedule = []string{}
	}
	if route.Capacity == 0 {
		route.Capacity = 40
	}
	if route.Color == "" {
		route.Color = "#2196F3"
	}
	s.routes.Mutate(func(items []TransportRoute) []TransportRoute {
		route.ID = storage.NextID(items, func(r TransportRoute) int { return r.ID })
		return append(items, route)
	})
	return route
}

// Update patches the route with the given id. Missing ids are a no-op.
func (s *Store) Update(id int, req UpdateRequest) bool {
	return s.routes.Update(
		func(r TransportRoute) bool { return r.ID == id },
		func(r *TransportRoute) {
			if req.Name != nil {
				r.Name = *req.Name
			}
			if req.Type != nil {
				r.Type = *req.Type
			}
			if req.Route != nil {
				r.Route = *req.Route
			}
			if req.Schedule != nil {
				r.Schedule = *req.Schedule
			}
			if req.Price != nil {
				r.Price = *req.Price
			}
			if req.Duration != nil {
				r.Duration = *req.Duration
			}
			if req.Frequency != nil {
				r.Frequency = *req.Frequency
			}
			if req.Capacity != nil {
				r.Capacity = *req.Capacity
			}
			if req.Occupancy != nil {
				r.Occupancy = *req.Occupancy
			}
			if req.Color != nil {
				r.Color = *req.Color
			}
			if req.CurrentLocation != nil {
				r.CurrentLocation = *req.CurrentLocation
			}
		},
	)
}

func (s *Store) Delete(id int) bool {
	return s.routes.Delete(func(r TransportRoute) bool { return r.ID == id })
}

// ToggleActive flips a route in or out of service
func (s *Store) ToggleActive(id int) bool {
	return s.routes.Update(
		func(r TransportRoute) bool { return r.ID == id },
		func(r *TransportRoute) { r.IsActive = !r.IsActive },
	)
}

// RingTimes returns the schedule of the first active ring route,
// empty when no ring service is running
func (s *Store) RingTimes() []string {
	for _, r := range s.routes.Items() {
		if r.Type == TypeRing && r.IsActive {
			return r.Schedule
		}
	}
	return nil
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
