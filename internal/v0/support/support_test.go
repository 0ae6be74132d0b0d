package support

import (
	"encoding/json"
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

func TestSeedTickets(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Len(t, store.All(), 3)
	assert.Len(t, store.All()[2].Responses, 2)
	assert.Equal(t, PriorityHigh, store.All()[1].Priority)
	for _, ticket := range store.All() {
		assert.NotEmpty(t, ticket.Priority)
		assert.NotEmpty(t, ticket.ReportDate)
	}
}

func TestFilterByStatusAndCategory(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Len(t, Filter(store.All(), Criteria{Status: "all", Category: "all"}), 3)
	assert.Len(t, Filter(store.All(), Criteria{Status: StatusPending}), 1)
	assert.Len(t, Filter(store.All(), Criteria{Category: CategoryInternet, Status: StatusDone}), 0)
}

func TestFilterSearchMatchesLocation(t *testing.T) {
	store := NewStore(memSlot{})
	got := Filter(store.All(), Criteria{Search: "kütüphane"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, CategoryInternet, got[0].Category)
	}
}

func TestCreateStartsPending(t *testing.T) {
	store := NewStore(memSlot{})
	created := store.Create(CreateRequest{
		Title:       "Kalorifer çalışmıyor",
		Description: "A blok 2. kat derslikler çok soğuk.",
		Category:    CategoryHVAC,
		Location:    "A Blok",
	})

	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, PriorityMedium, created.Priority)
	assert.Equal(t, "Anonim", created.ReportedBy)
	assert.NotEmpty(t, created.ReportDate)
	assert.NotNil(t, created.Responses)
	assert.Equal(t, created.ID, store.All()[0].ID)
}

func TestCreateKeepsPriority(t *testing.T) {
	store := NewStore(memSlot{})
	created := store.Create(CreateRequest{
		Title:       "Asansör arızalı",
		Description: "C blok asansörü 1. katta kalıyor.",
		Priority:    PriorityUrgent,
		Location:    "C Blok",
	})
	assert.Equal(t, PriorityUrgent, created.Priority)
}

func TestPersistedTicketFields(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.SetStatus(store.All()[0].ID, StatusResolving)

	var persisted []map[string]interface{}
	assert.NoError(t, json.Unmarshal(slot[StorageKey], &persisted))
	if assert.NotEmpty(t, persisted) {
		assert.Equal(t, "medium", persisted[0]["priority"])
		assert.Equal(t, "2024-01-22", persisted[0]["reportDate"])
		assert.NotContains(t, persisted[0], "date")
	}
}

func TestAddResponse(t *testing.T) {
	store := NewStore(memSlot{})
	id := store.All()[1].ID

	assert.True(t, store.AddResponse(id, ResponseRequest{Message: "Modem yeniden başlatıldı."}))
	responses := store.All()[1].Responses
	if assert.Len(t, responses, 1) {
		assert.Equal(t, "Destek Ekibi", responses[0].Author)
	}

	assert.False(t, store.AddResponse("missing", ResponseRequest{Message: "x"}))
}

func TestSetStatus(t *testing.T) {
	store := NewStore(memSlot{})
	id := store.All()[1].ID

	assert.True(t, store.SetStatus(id, StatusResolving))
	assert.Equal(t, StatusResolving, store.All()[1].Status)
}

func TestStatsPerStatus(t *testing.T) {
	store := NewStore(memSlot{})
	stats := store.Stats()

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Reviewing)
	assert.Equal(t, 1, stats.Done)
	assert.Equal(t, 0, stats.Cancelled)
}

func TestRoundTripThroughSlot(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.SetStatus(store.All()[0].ID, StatusDone)

	reloaded := NewStore(slot)
	assert.Equal(t, store.All(), reloaded.All())
}
