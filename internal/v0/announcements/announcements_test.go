package announcements

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type memSlot struct {
	values map[string][]byte
}

func newMemSlot() *memSlot { return &memSlot{values: map[string][]byte{}} }

func (m *memSlot) Read(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (m *memSlot) Write(key string, value []byte) error {
	m.values[key] = value
	return nil
}

func TestStoreSeedsThreeAnnouncements(t *testing.T) {
	store := NewStore(newMemSlot())
	all := store.All()
	assert.Len(t, all, 3)
	assert.Equal(t, 1, store.Stats().Unread)
}

func TestFilterSearchKutuphane(t *testing.T) {
	store := NewStore(newMemSlot())
	got := Filter(store.All(), Criteria{Search: "kütüphane"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, 3, got[0].ID)
	}
}

func TestFilterEmptyCriteriaIsNoop(t *testing.T) {
	store := NewStore(newMemSlot())
	all := store.All()
	got := Filter(all, Criteria{Search: "", Priority: "all", Category: "all"})
	assert.Equal(t, all, got)
}

func TestFilterConjunction(t *testing.T) {
	store := NewStore(newMemSlot())
	all := store.All()

	tests := []struct {
		name string
		crit Criteria
		want []int
	}{
		{name: "priority only", crit: Criteria{Priority: PriorityHigh}, want: []int{1}},
		{name: "category only", crit: Criteria{Category: "Genel"}, want: []int{3}},
		{name: "search and priority", crit: Criteria{Search: "kampüs", Priority: PriorityMedium}, want: []int{2}},
		{name: "disjoint criteria", crit: Criteria{Search: "kampüs", Category: "Genel"}, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.crit)
			ids := make([]int, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCreatePrependsWithNextID(t *testing.T) {
	store := NewStore(newMemSlot())
	created := store.Create(CreateRequest{Title: "Sınav Takvimi", Content: "Final takvimi yayınlandı."})

	assert.Equal(t, 4, created.ID)
	assert.Equal(t, PriorityMedium, created.Priority)
	all := store.All()
	assert.Equal(t, created.ID, all[0].ID)
	assert.False(t, all[0].IsRead)
}

func TestUpdateMergesPatch(t *testing.T) {
	store := NewStore(newMemSlot())
	title := "Kayıtlar Uzatıldı"
	priority := PriorityLow

	found := store.Update(1, UpdateRequest{Title: &title, Priority: &priority})
	assert.True(t, found)

	a := store.All()[0]
	assert.Equal(t, "Kayıtlar Uzatıldı", a.Title)
	assert.Equal(t, PriorityLow, a.Priority)
	// untouched fields survive the merge
	assert.Equal(t, "Akademik", a.Category)
	assert.Equal(t, "Öğrenci İşleri", a.Author)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	store := NewStore(newMemSlot())
	title := "nope"
	assert.False(t, store.Update(42, UpdateRequest{Title: &title}))
	assert.Len(t, store.All(), 3)
}

func TestMarkRead(t *testing.T) {
	store := NewStore(newMemSlot())
	store.MarkRead(1)
	assert.Equal(t, 0, store.Stats().Unread)
	// marking an already read announcement stays read
	store.MarkRead(1)
	assert.Equal(t, 0, store.Stats().Unread)
}

func TestRoundTripThroughSlot(t *testing.T) {
	slot := newMemSlot()
	store := NewStore(slot)
	store.Create(CreateRequest{Title: "a", Content: "b"})

	reloaded := NewStore(slot)
	assert.Equal(t, store.All(), reloaded.All())
}

func newTestRouter(store *Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v0"), NewHandler(store))
	return router
}

func TestPostAnnouncementValidation(t *testing.T) {
	router := newTestRouter(NewStore(newMemSlot()))

	body, _ := json.Marshal(map[string]string{"title": "only a title"})
	req := httptest.NewRequest(http.MethodPost, "/api/v0/announcements", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnnouncementsFiltered(t *testing.T) {
	router := newTestRouter(NewStore(newMemSlot()))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/announcements?priority=high", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []Announcement `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp.Data, 1) {
		assert.Equal(t, 1, resp.Data[0].ID)
	}
}

func TestDeleteUnknownIDStillSucceeds(t *testing.T) {
	store := NewStore(newMemSlot())
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/announcements/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, store.All(), 3)
}
