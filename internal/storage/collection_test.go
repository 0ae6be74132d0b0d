package storage

import (
	"errors"
	"testing"
)

type note struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	IsRead bool   `json:"isRead"`
}

func seedNotes() []note {
	return []note{
		{ID: 1, Title: "first", IsRead: false},
		{ID: 2, Title: "second", IsRead: true},
	}
}

// memSlot is an in-memory slot with switchable write failures,
// standing in for a storage backend that runs out of quota.
type memSlot struct {
	values    map[string][]byte
	failWrite bool
}

func newMemSlot() *memSlot {
	return &memSlot{values: map[string][]byte{}}
}

func (m *memSlot) Read(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memSlot) Write(key string, value []byte) error {
	if m.failWrite {
		return errors.New("quota exceeded")
	}
	m.values[key] = value
	return nil
}

func TestCollectionSeedsWhenSlotEmpty(t *testing.T) {
	c := NewCollection(newMemSlot(), "notes", seedNotes)
	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestCollectionSeedsWhenSlotCorrupt(t *testing.T) {
	slot := newMemSlot()
	slot.values["notes"] = []byte("{not json")
	c := NewCollection(slot, "notes", seedNotes)
	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want seed length 2", got)
	}
	// corrupt value must not be repaired until the next mutation
	if string(slot.values["notes"]) != "{not json" {
		t.Fatal("load must not write the seed back")
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	slot := newMemSlot()
	c := NewCollection(slot, "notes", seedNotes)
	c.Append(note{ID: 3, Title: "third"})

	reloaded := NewCollection(slot, "notes", func() []note { return nil })
	items := reloaded.Items()
	if len(items) != 3 {
		t.Fatalf("reloaded %d items, want 3", len(items))
	}
	if items[2].Title != "third" {
		t.Errorf("items[2].Title = %q, want %q", items[2].Title, "third")
	}
}

func TestCollectionPrependOrder(t *testing.T) {
	c := NewCollection(newMemSlot(), "notes", seedNotes)
	c.Prepend(note{ID: 3, Title: "newest"})
	items := c.Items()
	if items[0].ID != 3 {
		t.Errorf("items[0].ID = %d, want 3", items[0].ID)
	}
	if items[1].ID != 1 {
		t.Errorf("items[1].ID = %d, want 1", items[1].ID)
	}
}

func TestCollectionUpdateMissingIsNoop(t *testing.T) {
	slot := newMemSlot()
	c := NewCollection(slot, "notes", seedNotes)
	before := c.Items()

	found := c.Update(
		func(n note) bool { return n.ID == 99 },
		func(n *note) { n.IsRead = true },
	)
	if found {
		t.Fatal("Update reported a match for a missing id")
	}
	after := c.Items()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("collection changed at %d: %+v != %+v", i, before[i], after[i])
		}
	}
}

func TestCollectionDeleteMissingIsNoop(t *testing.T) {
	c := NewCollection(newMemSlot(), "notes", seedNotes)
	if c.Delete(func(n note) bool { return n.ID == 99 }) {
		t.Fatal("Delete reported a match for a missing id")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestCollectionCreateDeleteInverse(t *testing.T) {
	c := NewCollection(newMemSlot(), "notes", seedNotes)
	before := c.Items()

	c.Append(note{ID: 3, Title: "temp"})
	c.Delete(func(n note) bool { return n.ID == 3 })

	after := c.Items()
	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("collection changed at %d", i)
		}
	}
}

func TestCollectionToggleDoubleNegation(t *testing.T) {
	c := NewCollection(newMemSlot(), "notes", seedNotes)
	toggle := func() {
		c.Update(
			func(n note) bool { return n.ID == 1 },
			func(n *note) { n.IsRead = !n.IsRead },
		)
	}
	toggle()
	toggle()
	if c.Items()[0].IsRead {
		t.Fatal("double toggle did not restore the original flag")
	}
}

func TestCollectionWriteFailureKeepsMemoryState(t *testing.T) {
	slot := newMemSlot()
	c := NewCollection(slot, "notes", seedNotes)
	c.Append(note{ID: 3, Title: "persisted"})

	// every write from here on fails, like a full storage backend
	slot.failWrite = true
	c.Append(note{ID: 4, Title: "lost"})

	// the mutation is visible in memory
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}

	// a reload sees the last successfully persisted version
	reloaded := NewCollection(slot, "notes", func() []note { return nil })
	items := reloaded.Items()
	if len(items) != 3 {
		t.Fatalf("reloaded %d items, want 3", len(items))
	}
	if items[2].Title != "persisted" {
		t.Errorf("items[2].Title = %q, want %q", items[2].Title, "persisted")
	}
}

func TestCollectionMutateAllocatesIDs(t *testing.T) {
	c := NewCollection(newMemSlot(), "notes", seedNotes)
	var created note
	c.Mutate(func(items []note) []note {
		created = note{ID: NextID(items, func(n note) int { return n.ID }), Title: "next"}
		return append(items, created)
	})
	if created.ID != 3 {
		t.Errorf("created.ID = %d, want 3", created.ID)
	}
}
