package menu

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type memSlot map[string][]byte

func (m memSlot) Read(key string) ([]byte, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return nil, storage.ErrNotFound
}

func (m memSlot) Write(key string, value []byte) error {
	m[key] = value
	return nil
}

func TestSeedWeekShape(t *testing.T) {
	store := NewStore(memSlot{})
	week := store.Week()
	if assert.Len(t, week, 1) {
		assert.Len(t, week[0].Breakfast, 2)
		assert.Len(t, week[0].Lunch, 2)
		assert.Len(t, week[0].Dinner, 1)
		assert.Len(t, week[0].Snacks, 1)
	}
}

func TestFilterVegetarianOnly(t *testing.T) {
	store := NewStore(memSlot{})
	day, _ := store.Day(0)
	got := Filter(day.Lunch, Criteria{Filter: FilterVegetarian})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Mercimek Çorbası", got[0].Name)
	}
}

func TestFilterAllIsNoop(t *testing.T) {
	store := NewStore(memSlot{})
	day, _ := store.Day(0)
	assert.Equal(t, day.Breakfast, Filter(day.Breakfast, Criteria{Filter: FilterAll}))
}

func TestFilterSearchName(t *testing.T) {
	store := NewStore(memSlot{})
	day, _ := store.Day(0)
	got := Filter(day.Breakfast, Criteria{Search: "menemen"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(1), got[0].ID)
	}
}

func TestAddItemSplitsLists(t *testing.T) {
	store := NewStore(memSlot{})
	item, ok := store.AddItem(0, MealSnacks, CreateItemRequest{
		Name:        "Simit",
		Ingredients: "Un, Susam",
		Allergens:   "Gluten",
	})
	assert.True(t, ok)
	assert.Equal(t, []string{"Un", "Susam"}, item.Ingredients)
	assert.Equal(t, []string{"Gluten"}, item.Allergens)
	assert.True(t, item.IsAvailable)
	assert.NotZero(t, item.ID)

	day, _ := store.Day(0)
	assert.Len(t, day.Snacks, 2)
}

func TestAddItemUnknownMeal(t *testing.T) {
	store := NewStore(memSlot{})
	_, ok := store.AddItem(0, "brunch", CreateItemRequest{Name: "x"})
	assert.False(t, ok)
	_, ok = store.AddItem(5, MealLunch, CreateItemRequest{Name: "x"})
	assert.False(t, ok)
}

func TestDeleteItem(t *testing.T) {
	store := NewStore(memSlot{})
	assert.True(t, store.DeleteItem(0, MealDinner, 5))
	day, _ := store.Day(0)
	assert.Empty(t, day.Dinner)

	// deleting again is a no-op
	assert.False(t, store.DeleteItem(0, MealDinner, 5))
}

func TestToggleFavoriteDoubleNegation(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.ToggleFavorite(3)
	assert.Equal(t, []int64{3}, store.Favorites())
	store.ToggleFavorite(3)
	assert.Empty(t, store.Favorites())
}

func TestMealsOn(t *testing.T) {
	store := NewStore(memSlot{})

	lunch, dinner, ok := store.MealsOn("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, []string{"Tavuk Şiş", "Mercimek Çorbası"}, lunch)
	assert.Equal(t, []string{"Köfte"}, dinner)

	_, _, ok = store.MealsOn("2024-01-16")
	assert.False(t, ok)
}

func TestMealsOnSkipsUnavailable(t *testing.T) {
	store := NewStore(memSlot{})
	assert.True(t, store.SetAvailable(0, MealLunch, 3, false))
	lunch, _, _ := store.MealsOn("2024-01-15")
	assert.Equal(t, []string{"Mercimek Çorbası"}, lunch)
}

func newTestRouter(store *Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v0"), NewHandler(store))
	return router
}

func TestPostAvailableMarksSoldOut(t *testing.T) {
	store := NewStore(memSlot{})
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/menu/days/0/meals/lunch/3/available", strings.NewReader(`{"available": false}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	day, _ := store.Day(0)
	for _, item := range day.Lunch {
		if item.ID == 3 {
			assert.False(t, item.IsAvailable)
		}
	}
}

func TestPostAvailableUnknownDish(t *testing.T) {
	router := newTestRouter(NewStore(memSlot{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v0/menu/days/0/meals/lunch/99/available", strings.NewReader(`{"available": true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostAvailableMissingBody(t *testing.T) {
	router := newTestRouter(NewStore(memSlot{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v0/menu/days/0/meals/lunch/3/available", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeekRoundTrip(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.AddItem(0, MealLunch, CreateItemRequest{Name: "Pilav"})

	reloaded := NewStore(slot)
	assert.Equal(t, store.Week(), reloaded.Week())
}
