package menu

// Dish categories
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
)

// Meal keys within a day
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

// MenuItem is one dish on the dining menu. Ids are epoch millis,
// so uniqueness is only as strong as the interactive write rate.
type MenuItem struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Calories     int      `json:"calories"`
	Rating       float64  `json:"rating"`
	IsVegetarian bool     `json:"isVegetarian"`
	IsAvailable  bool     `json:"isAvailable"`
	Ingredients  []string `json:"ingredients"`
	Allergens    []string `json:"allergens"`
}

// DayMenu groups one day's dishes by meal
type DayMenu struct {
	Date      string     `json:"date"`
	Breakfast []MenuItem `json:"breakfast"`
	Lunch     []MenuItem `json:"lunch"`
	Dinner    []MenuItem `json:"dinner"`
	Snacks    []MenuItem `json:"snacks"`
}

// Meal returns the item list of one meal of the day
func (d DayMenu) Meal(meal string) ([]MenuItem, bool) {
	switch meal {
	case MealBreakfast:
		return d.Breakfast, true
	case MealLunch:
		return d.Lunch, true
	case MealDinner:
		return d.Dinner, true
	case MealSnacks:
		return d.Snacks, true
	}
	return nil, false
}

func (d *DayMenu) setMeal(meal string, items []MenuItem) {
	switch meal {
	case MealBreakfast:
		d.Breakfast = items
	case MealLunch:
		d.Lunch = items
	case MealDinner:
		d.Dinner = items
	case MealSnacks:
		d.Snacks = items
	}
}

// CreateItemRequest is the request body for adding a dish
type CreateItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Price        float64 `json:"price" binding:"omitempty,min=0"`
	Calories     int     `json:"calories" binding:"omitempty,min=0"`
	IsVegetarian bool    `json:"isVegetarian"`
	// comma separated, split and trimmed by the store
	Ingredients string `json:"ingredients"`
	Allergens   string `json:"allergens"`
}

// AvailableRequest is the request body for marking a dish available
// or sold out. A pointer so an explicit false still binds.
type AvailableRequest struct {
	Available *bool `json:"available" binding:"required"`
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
