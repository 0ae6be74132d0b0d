package webhook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubMeals struct {
	lunch  []string
	dinner []string
	ok     bool
}

func (s stubMeals) MealsOn(string) (lunch, dinner []string, ok bool) {
	return s.lunch, s.dinner, s.ok
}

type stubDepartures []string

func (s stubDepartures) RingTimes() []string { return s }

func TestDispatchTodayMenuUsesLiveData(t *testing.T) {
	d := NewDispatcher(stubMeals{
		lunch:  []string{"Mercimek Çorbası", "Tavuk Sote"},
		dinner: []string{"Et Güveç"},
		ok:     true,
	}, stubDepartures(nil))

	got := d.Dispatch("menu.today")
	assert.Contains(t, got, "Bugünün Menüsü")
	assert.Contains(t, got, "• Mercimek Çorbası")
	assert.Contains(t, got, "• Et Güveç")
	assert.Contains(t, got, "Afiyet olsun")
}

func TestDispatchTodayMenuWithoutData(t *testing.T) {
	d := NewDispatcher(stubMeals{}, stubDepartures(nil))
	got := d.Dispatch("menu.today")
	assert.Contains(t, got, "menü bilgisi bulunamadı")
}

func TestDispatchRingScheduleListsTimes(t *testing.T) {
	d := NewDispatcher(stubMeals{}, stubDepartures{"08:00", "08:30", "09:00", "09:30"})
	got := d.Dispatch("transport.ring")
	assert.Contains(t, got, "Ring Sefer Saatleri")
	assert.Contains(t, got, "08:00")
	assert.Contains(t, got, "09:30")
}

func TestDispatchRingScheduleWhenServiceDown(t *testing.T) {
	d := NewDispatcher(stubMeals{}, stubDepartures(nil))
	got := d.Dispatch("transport.ring")
	assert.Contains(t, got, "hizmet vermiyor")
}

func TestDispatchCannedIntents(t *testing.T) {
	d := NewDispatcher(stubMeals{}, stubDepartures(nil))

	tests := []struct {
		intent string
		want   string
	}{
		{intent: "menu.tomorrow", want: "henüz hazırlanmadı"},
		{intent: "transport.general", want: "Kampüs Ulaşım Bilgileri"},
		{intent: "schedule.today", want: "Ders Programım"},
		{intent: "library.hours", want: "Kütüphane Çalışma Saatleri"},
		{intent: "contact.info", want: "İletişim Bilgileri"},
		{intent: "campus.info", want: "Kampüs Bilgileri"},
		{intent: "help.general", want: "Nasıl Yardımcı Olabilirim"},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			assert.Contains(t, d.Dispatch(tt.intent), tt.want)
		})
	}
}

func TestDispatchUnknownIntentApologizes(t *testing.T) {
	d := NewDispatcher(stubMeals{}, stubDepartures(nil))
	assert.Contains(t, d.Dispatch("weather.today"), "Üzgünüm")
}

func TestPostWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(NewDispatcher(stubMeals{}, stubDepartures(nil)))
	RegisterRoutes(router.Group(""), h)

	body, _ := json.Marshal(Request{
		QueryResult: QueryResult{
			QueryText: "kütüphane kaçta açık",
			Intent:    Intent{DisplayName: "library.hours"},
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.FulfillmentText, "Merkez Kütüphane")
}

func TestPostWebhookRejectsBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(NewDispatcher(stubMeals{}, stubDepartures(nil)))
	RegisterRoutes(router.Group(""), h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
