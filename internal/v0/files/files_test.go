package files

import (
	"encoding/json"
	"strings"
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

func TestGenerateShareCodeFormat(t *testing.T) {
	code, err := GenerateShareCode()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, ShareCodePrefix))
	assert.Len(t, code, len(ShareCodePrefix)+shareCodeLength)

	other, err := GenerateShareCode()
	assert.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestCreatePrependsWithFreshCode(t *testing.T) {
	store := NewStore(memSlot{})
	created, err := store.Create(CreateRequest{
		Title:      "Vize Çözümleri",
		FileName:   "vize-cozumleri.pdf",
		FileSize:   "1.2 MB",
		FileType:   "pdf",
		Category:   CategoryExam,
		CourseCode: "FIZ202",
		CourseName: "Fizik II",
	})

	assert.NoError(t, err)
	assert.Equal(t, created.ID, store.All()[0].ID)
	assert.Equal(t, "vize-cozumleri.pdf", created.FileName)
	assert.True(t, created.IsVisible)
	assert.True(t, strings.HasPrefix(created.ShareCode, ShareCodePrefix))
	assert.Len(t, store.All(), 3)
}

func TestCreateDefaults(t *testing.T) {
	store := NewStore(memSlot{})
	created, err := store.Create(CreateRequest{
		Title:      "Ödev 1",
		FileName:   "odev1.pdf",
		CourseCode: "MAT101",
		CourseName: "Matematik I",
	})

	assert.NoError(t, err)
	assert.Equal(t, CategoryLectureNotes, created.Category)
	assert.Equal(t, "Anonim", created.UploadedBy)
}

func TestLoadKeepsEveryPersistedField(t *testing.T) {
	slot := memSlot{}
	slot[StorageKey] = []byte(`[{
		"id": "1",
		"title": "JavaScript Temelleri",
		"description": "JavaScript programlama dilinin temel konuları",
		"fileName": "javascript-temelleri.pdf",
		"fileSize": "2.5 MB",
		"fileType": "pdf",
		"category": "lecture_notes",
		"courseCode": "CSE101",
		"courseName": "Programlama Temelleri",
		"uploadedBy": "Dr. Ahmet Yılmaz",
		"uploadDate": "2024-01-15",
		"downloadCount": 45,
		"isVisible": true
	}]`)

	store := NewStore(slot)
	store.IncrementDownload("1")

	var persisted []map[string]interface{}
	assert.NoError(t, json.Unmarshal(slot[StorageKey], &persisted))
	if assert.Len(t, persisted, 1) {
		assert.Equal(t, "JavaScript programlama dilinin temel konuları", persisted[0]["description"])
		assert.Equal(t, "javascript-temelleri.pdf", persisted[0]["fileName"])
		assert.Equal(t, "2.5 MB", persisted[0]["fileSize"])
		assert.Equal(t, float64(46), persisted[0]["downloadCount"])
	}
}

func TestFilterSkipsHiddenFiles(t *testing.T) {
	store := NewStore(memSlot{})
	id := store.All()[0].ID
	store.ToggleVisible(id)

	got := Filter(store.All(), Criteria{})
	assert.Len(t, got, 1)

	store.ToggleVisible(id)
	assert.Len(t, Filter(store.All(), Criteria{}), 2)
}

func TestFilterByCourseCode(t *testing.T) {
	store := NewStore(memSlot{})
	assert.Len(t, Filter(store.All(), Criteria{CourseCode: "all"}), 2)

	got := Filter(store.All(), Criteria{CourseCode: "BIL101"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Lab 2 - Döngüler", got[0].Title)
	}
}

func TestFilterSearchMatchesCourseName(t *testing.T) {
	store := NewStore(memSlot{})
	got := Filter(store.All(), Criteria{Search: "matematik"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "MAT101", got[0].CourseCode)
	}
}

func TestIncrementDownload(t *testing.T) {
	store := NewStore(memSlot{})
	id := store.All()[0].ID
	before := store.All()[0].DownloadCount

	assert.True(t, store.IncrementDownload(id))
	assert.Equal(t, before+1, store.All()[0].DownloadCount)

	assert.False(t, store.IncrementDownload("missing"))
}

func TestByShareCode(t *testing.T) {
	store := NewStore(memSlot{})

	f, ok := store.ByShareCode("cmp_8fKq2ZnR4w")
	assert.True(t, ok)
	assert.Equal(t, "MAT101", f.CourseCode)

	_, ok = store.ByShareCode("cmp_nope")
	assert.False(t, ok)
}

func TestCourseCodesDistinctSorted(t *testing.T) {
	store := NewStore(memSlot{})
	_, err := store.Create(CreateRequest{
		Title:      "Slaytlar",
		FileName:   "slaytlar.pptx",
		Category:   CategorySlides,
		CourseCode: "MAT101",
		CourseName: "Matematik I",
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"BIL101", "MAT101"}, store.CourseCodes())
}

func TestRoundTripThroughSlot(t *testing.T) {
	slot := memSlot{}
	store := NewStore(slot)
	store.IncrementDownload(store.All()[0].ID)

	reloaded := NewStore(slot)
	assert.Equal(t, store.All(), reloaded.All())
}
