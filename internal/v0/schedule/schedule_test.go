package schedule

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

func TestSeedHasFiveCourses(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Len(t, store.All(), 5)
	assert.Equal(t, "MAT101", store.All()[0].Code)
}

func TestFilterSearchMatchesInstructor(t *testing.T) {
	store := NewStore(memSlot{})
	got := Filter(store.All(), Criteria{Search: "kaya"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "FIZ202", got[0].Code)
	}
}

func TestFilterTypeWithAllSentinel(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Len(t, Filter(store.All(), Criteria{Type: "all"}), 5)
	assert.Len(t, Filter(store.All(), Criteria{Type: TypeMandatory}), 3)
	assert.Len(t, Filter(store.All(), Criteria{Type: TypeExtracurricular}), 1)
}

func TestCreateAppendsWithDefaults(t *testing.T) {
	store := NewStore(memSlot{})
	created := store.Create(CreateRequest{
		Name:       "Veri Yapıları",
		Code:       "BIL203",
		Instructor: "Dr. Öğr. Üyesi Elif Şahin",
		Room:       "Lab-1",
		Day:        2,
		StartTime:  "13:00",
		EndTime:    "15:00",
	})

	assert.Equal(t, 6, created.ID)
	assert.Equal(t, 3, created.Credits)
	assert.Equal(t, TypeMandatory, created.Type)
	assert.Contains(t, colorPalette, created.Color)
	all := store.All()
	assert.Equal(t, created.ID, all[len(all)-1].ID)
}

func TestUpdateKeepsUntouchedFields(t *testing.T) {
	store := NewStore(memSlot{})
	room := "B-210"
	assert.True(t, store.Update(2, UpdateRequest{Room: &room}))

	c := store.All()[1]
	assert.Equal(t, "B-210", c.Room)
	assert.Equal(t, "Doç. Dr. Ayşe Kaya", c.Instructor)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	store := NewStore(memSlot{})
	name := "yok"
	assert.False(t, store.Update(99, UpdateRequest{Name: &name}))
	assert.Len(t, store.All(), 5)
}

func TestCoursesForDaySortedByStartTime(t *testing.T) {
	store := NewStore(memSlot{})
	store.Create(CreateRequest{
		Name: "Lineer Cebir", Code: "MAT102", Instructor: "Prof. Dr. Ahmet Yılmaz",
		Room: "A-203", Day: 0, StartTime: "08:00", EndTime: "09:00",
	})

	day := store.CoursesForDay(0)
	if assert.Len(t, day, 2) {
		assert.Equal(t, "MAT102", day[0].Code)
		assert.Equal(t, "MAT101", day[1].Code)
	}
}

func TestCourseAtCoversTheWholeSlot(t *testing.T) {
	store := NewStore(memSlot{})

	c, ok := store.CourseAt(0, "10:00")
	assert.True(t, ok)
	assert.Equal(t, "MAT101", c.Code)

	// end time is exclusive
	_, ok = store.CourseAt(0, "11:00")
	assert.False(t, ok)

	_, ok = store.CourseAt(5, "10:00")
	assert.False(t, ok)
}

func TestTotalCredits(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Equal(t, 15, store.TotalCredits())

	store.Delete(1)
	assert.Equal(t, 11, store.TotalCredits())
}

func TestRoundTripThroughSlot(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.Delete(5)

	reloaded := NewStore(slot)
	assert.Equal(t, store.All(), reloaded.All())
}
