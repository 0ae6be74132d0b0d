package menu

import (
	"strings"

	"campus/internal/storage"
)

// Durable slots for the weekly menu and the favorite dish ids
const (
	StorageKey          = "weeklyMenu"
	FavoritesStorageKey = "menuFavorites"
)

// Store owns the weekly menu and the favorite dish ids
type Store struct {
	week      *storage.Collection[DayMenu]
	favorites *storage.Collection[int64]
}

// NewStore loads both collections, seeding them on first use
func NewStore(slot storage.Slot) *Store {
	return &Store{
		week:      storage.NewCollection(slot, StorageKey, Seed),
		favorites: storage.NewCollection(slot, FavoritesStorageKey, func() []int64 { return []int64{} }),
	}
}

// Seed is the default dataset used when nothing is persisted yet
func Seed() []DayMenu {
	return []DayMenu{
		{
			Date: "2024-01-15",
			Breakfast: []MenuItem{
				{
					ID:           1,
					Name:         "Menemen",
					Description:  "Taze domates, biber ve yumurta ile hazırlanan geleneksel lezzet",
					Category:     CategoryBreakfast,
					Price:        25,
					Calories:     280,
					Rating:       4.5,
					IsVegetarian: true,
					IsAvailable:  true,
					Ingredients:  []string{"Yumurta", "Domates", "Biber", "Soğan"},
					Allergens:    []string{"Yumurta"},
				},
				{
					ID:           2,
					Name:         "Börek",
					Description:  "El açması su böreği, peynir ve ıspanak seçenekleriyle",
					Category:     CategoryBreakfast,
					Price:        20,
					Calories:     320,
					Rating:       4.2,
					IsVegetarian: true,
					IsAvailable:  true,
					Ingredients:  []string{"Yufka", "Peynir", "Yumurta", "Süt"},
					Allergens:    []string{"Gluten", "Süt", "Yumurta"},
				},
			},
			Lunch: []MenuItem{
				{
					ID:           3,
					Name:         "Tavuk Şiş",
					Description:  "Marine edilmiş tavuk parçaları, pilav ve salata ile",
					Category:     CategoryLunch,
					Price:        45,
					Calories:     520,
					Rating:       4.7,
					IsVegetarian: false,
					IsAvailable:  true,
					Ingredients:  []string{"Tavuk", "Pilav", "Salata", "Baharatlar"},
					Allergens:    []string{},
				},
				{
					ID:           4,
					Name:         "Mercimek Çorbası",
					Description:  "Vitamin deposu kırmızı mercimek çorbası",
					Category:     CategoryLunch,
					Price:        15,
					Calories:     180,
					Rating:       4.3,
					IsVegetarian: true,
					IsAvailable:  true,
					Ingredients:  []string{"Kırmızı mercimek", "Sebze", "Baharatlar"},
					Allergens:    []string{},
				},
			},
			Dinner: []MenuItem{
				{
					ID:           5,
					Name:         "Köfte",
					Description:  "Ev yapımı köfte, patates kızartması ve ayran ile",
					Category:     CategoryDinner,
					Price:        40,
					Calories:     480,
					Rating:       4.4,
					IsVegetarian: false,
					IsAvailable:  true,
					Ingredients:  []string{"Dana eti", "Patates", "Ayran"},
					Allergens:    []string{"Süt"},
				},
			},
			Snacks: []MenuItem{
				{
					ID:           6,
					Name:         "Tost",
					Description:  "Kaşar peynirli tost",
					Category:     CategorySnack,
					Price:        18,
					Calories:     250,
					Rating:       4.0,
					IsVegetarian: true,
					IsAvailable:  true,
					Ingredients:  []string{"Ekmek", "Kaşar peyniri"},
					Allergens:    []string{"Gluten", "Süt"},
				},
			},
		},
	}
}

// Week returns every day currently on the menu
func (s *Store) Week() []DayMenu {
	return s.week.Items()
}

// Day returns the menu of one day by index
func (s *Store) Day(index int) (DayMenu, bool) {
	days := s.week.Items()
	if index < 0 || index >= len(days) {
		return DayMenu{}, false
	}
	return days[index], true
}

// AddItem appends a dish to one meal of one day. The id is the
// current epoch millis, the scheme the menu has always used.
func (s *Store) AddItem(dayIndex int, meal string, req CreateItemRequest) (MenuItem, bool) {
	item := MenuItem{
		ID:           storage.TimestampNumericID(),
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Calories:     req.Calories,
		Rating:       0,
		IsVegetarian: req.IsVegetarian,
		IsAvailable:  true,
		Ingredients:  splitList(req.Ingredients),
		Allergens:    splitList(req.Allergens),
	}
	if item.Category == "" {
		item.Category = CategoryLunch
	}

	added := false
	s.week.Mutate(func(days []DayMenu) []DayMenu {
		if dayIndex < 0 || dayIndex >= len(days) {
			return days
		}
		items, ok := days[dayIndex].Meal(meal)
		if !ok {
			return days
		}
		days[dayIndex].setMeal(meal, append(items, item))
		added = true
		return days
	})
	return item, added
}

// DeleteItem removes a dish from one meal of one day
func (s *Store) DeleteItem(dayIndex int, meal string, id int64) bool {
	removed := false
	s.week.Mutate(func(days []DayMenu) []DayMenu {
		if dayIndex < 0 || dayIndex >= len(days) {
			return days
		}
		items, ok := days[dayIndex].Meal(meal)
		if !ok {
			return days
		}
		kept := make([]MenuItem, 0, len(items))
		for _, item := range items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		removed = len(kept) != len(items)
		days[dayIndex].setMeal(meal, kept)
		return days
	})
	return removed
}

// SetAvailable flags a dish as available or sold out
func (s *Store) SetAvailable(dayIndex int, meal string, id int64, available bool) bool {
	changed := false
	s.week.Mutate(func(days []DayMenu) []DayMenu {
		if dayIndex < 0 || dayIndex >= len(days) {
			return days
		}
		items, ok := days[dayIndex].Meal(meal)
		if !ok {
			return days
		}
		for i := range items {
			if items[i].ID == id {
				items[i].IsAvailable = available
				changed = true
			}
		}
		days[dayIndex].setMeal(meal, items)
		return days
	})
	return changed
}

// Favorites returns the favorite dish ids
func (s *Store) Favorites() []int64 {
	return s.favorites.Items()
}

// ToggleFavorite adds or removes a dish id from the favorites
func (s *Store) ToggleFavorite(id int64) {
	s.favorites.Mutate(func(ids []int64) []int64 {
		for i, fav := range ids {
			if fav == id {
				return append(ids[:i], ids[i+1:]...)
			}
		}
		return append(ids, id)
	})
}

// MealsOn feeds the chatbot: the item names of the lunch and dinner
// served on date, reported as missing when the date is not on the menu.
func (s *Store) MealsOn(date string) (lunch, dinner []string, ok bool) {
	for _, day := range s.week.Items() {
		if day.Date != date {
			continue
		}
		for _, item := range day.Lunch {
			if item.IsAvailable {
				lunch = append(lunch, item.Name)
			}
		}
		for _, item := range day.Dinner {
			if item.IsAvailable {
				dinner = append(dinner, item.Name)
			}
		}
		return lunch, dinner, true
	}
	return nil, nil, false
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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
