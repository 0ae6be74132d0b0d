package events

import (
	"testing"

	"campus/internal/storage"

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

func TestFilterSortsByDateAscending(t *testing.T) {
	store := NewStore(memSlot{})
	got := Filter(store.All(), Criteria{})
	dates := make([]string, len(got))
	for i, e := range got {
		dates[i] = e.Date
	}
	assert.Equal(t, []string{"2024-01-20", "2024-01-25", "2024-01-28", "2024-02-01"}, dates)
}

func TestFilterDoesNotReorderCollection(t *testing.T) {
	store := NewStore(memSlot{})
	Filter(store.All(), Criteria{})
	assert.Equal(t, 1, store.All()[0].ID)
}

func TestFilterSearchMatchesLocation(t *testing.T) {
	store := NewStore(memSlot{})
	got := Filter(store.All(), Criteria{Search: "amfi"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Müzik Konseri", got[0].Title)
	}
}

func TestFilterCategoryWithAllSentinel(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Len(t, Filter(store.All(), Criteria{Category: "all"}), 4)
	assert.Len(t, Filter(store.All(), Criteria{Category: "Kariyer"}), 1)
}

func TestCreateAppendsWithDefaults(t *testing.T) {
	store := NewStore(memSlot{})
	created := store.Create(CreateRequest{
		Title:       "Bahar Şenliği",
		Description: "Geleneksel bahar şenliği",
		Location:    "Ana Kampüs",
		Date:        "2024-05-10",
		Time:        "12:00",
	})

	assert.Equal(t, 5, created.ID)
	assert.Equal(t, 100, created.Capacity)
	assert.Equal(t, 0, created.Registered)
	all := store.All()
	assert.Equal(t, created.ID, all[len(all)-1].ID)
}

func TestRegisterStopsAtCapacity(t *testing.T) {
	store := NewStore(memSlot{})
	created := store.Create(CreateRequest{
		Title:       "Atölye",
		Description: "Sınırlı kontenjan",
		Location:    "C301",
		Date:        "2024-03-01",
		Time:        "10:00",
		Capacity:    100,
	})

	for i := 0; i < 100; i++ {
		store.Register(created.ID)
	}
	// the 101st registration is a no-op
	store.Register(created.ID)

	for _, e := range store.All() {
		if e.ID == created.ID {
			assert.Equal(t, 100, e.Registered)
			return
		}
	}
	t.Fatal("created event not found")
}

func TestToggleFavoriteDoubleNegation(t *testing.T) {
	store := NewStore(memSlot{})
	store.ToggleFavorite(1)
	store.ToggleFavorite(1)
	assert.False(t, store.All()[0].IsFavorite)
	assert.Equal(t, 2, store.Stats().Favorites)
}

func TestRoundTripThroughSlot(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.Register(1)

	reloaded := NewStore(slot)
	assert.Equal(t, store.All(), reloaded.All())
}
